package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cultural-search-api/core/domain"
	"cultural-search-api/pkg/utils/html"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a full-text search with synonym expansion",
	Example: `  # Search every source for a festival
  searchctl search 春节

  # Fetch the second page of ten results
  searchctl search 灯会 --page 2 --page-size 10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, args[0], false)
	},
}

var aiSearchCmd = &cobra.Command{
	Use:   "ai-search [query]",
	Short: "Run a search guided by AI keyword hints",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, args[0], true)
	},
}

type searchFlags struct {
	page     int
	pageSize int
}

var searchArgs searchFlags

func init() {
	for _, c := range []*cobra.Command{searchCmd, aiSearchCmd} {
		c.Flags().IntVar(&searchArgs.page, "page", 1, "Page number, starting at 1.")
		c.Flags().IntVar(&searchArgs.pageSize, "page-size", 0,
			"Results per page, 0 uses the configured default.")
		rootCmd.AddCommand(c)
	}
}

func runSearch(cmd *cobra.Command, query string, ai bool) error {
	a, ctx, cancel, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer a.Close()

	search := a.Search.FullTextSearch
	if ai {
		search = a.Search.AISearch
	}
	result, err := search(ctx, query, searchArgs.page, searchArgs.pageSize)
	if err != nil {
		return err
	}

	if result.Hint != nil {
		printHint(cmd, result.Hint)
	}
	printResult(cmd, result)
	return nil
}

func printHint(cmd *cobra.Command, hint *domain.Hint) {
	cmd.Println("keywords:", strings.Join(hint.Keywords, ", "))
	if hint.SearchQuery != "" {
		cmd.Println("search query:", hint.SearchQuery)
	}
}

func printResult(cmd *cobra.Command, result *domain.SearchResult) {
	rows := make([][]string, 0, len(result.Items))
	offset := (result.Page - 1) * result.PageSize
	for i, item := range result.Items {
		rows = append(rows, []string{
			strconv.Itoa(offset + i + 1),
			item.Title,
			item.Origin,
			strconv.FormatFloat(item.FinalScore, 'f', 3, 64),
			html.Snippet(item.Description, 40),
		})
	}
	printTable(cmd.OutOrStdout(), []string{"rank", "title", "origin", "score", "description"}, rows)
	cmd.Println(fmt.Sprintf("page %d/%d, %d results", result.Page, result.TotalPages, result.Total))
}
