package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Load cultural entities and resources from a JSON file",
	Example: `  # Load records into the configured database
  searchctl seed ./testdata/records.json

  # Load records into a scratch database
  searchctl seed ./records.json --db /tmp/search.db`,
	Args: cobra.ExactArgs(1),
	RunE: seedCmdRun,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seedCmdRun(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("unable to open seed file: %w", err)
	}
	defer f.Close()

	a, ctx, cancel, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer a.Close()

	stats, err := a.DB.Seed(ctx, f)
	if err != nil {
		return err
	}

	printTable(cmd.OutOrStdout(), []string{"table", "rows"}, [][]string{
		{"cultural_entities", fmt.Sprint(stats.Entities)},
		{"crawled_images", fmt.Sprint(stats.Images)},
		{"aigc_cultural_entities", fmt.Sprint(stats.AIGCEntities)},
		{"cultural_resources", fmt.Sprint(stats.Resources)},
	})
	return nil
}
