package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the search tables and fulltext indexes",
	Args:  cobra.NoArgs,
	RunE:  migrateCmdRun,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func migrateCmdRun(cmd *cobra.Command, args []string) error {
	a, ctx, cancel, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer a.Close()

	cmd.Println(`✔`, "Database migrated:", a.Config.Database.Path)
	cmd.Println(`✔`, "Fulltext available:", a.Search.FulltextAvailable(ctx))
	return nil
}
