package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess [query]",
	Short: "Show the keywords and synonym variants derived from a query",
	Args:  cobra.ExactArgs(1),
	RunE:  preprocessCmdRun,
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
}

func preprocessCmdRun(cmd *cobra.Command, args []string) error {
	a, _, cancel, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer a.Close()

	p := a.Search.Preprocess(args[0])
	printTable(cmd.OutOrStdout(), []string{"field", "value"}, [][]string{
		{"original", p.Original},
		{"cleaned", p.Cleaned},
		{"keywords", strings.Join(p.Keywords, ", ")},
		{"expanded", strings.Join(p.Expanded, " | ")},
	})
	return nil
}
