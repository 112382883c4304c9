// ABOUTME: Entry point for searchctl, the command line companion of the search API
// ABOUTME: Manages the search database and runs searches without the HTTP server

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"cultural-search-api/internal/app"
	logruslogger "cultural-search-api/infrastructure/logger/logrus"
	"cultural-search-api/pkg/config"
	"cultural-search-api/pkg/featureflags"
)

var rootCmd = &cobra.Command{
	Use:           "searchctl",
	Short:         "Command line tool for the cultural search database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

type rootFlags struct {
	database string
	logLevel string
	timeout  time.Duration
}

const defaultTimeout = time.Minute

var rootArgs = rootFlags{timeout: defaultTimeout}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootArgs.database, "db", "",
		"Path to the SQLite database, overrides DATABASE_PATH.")
	rootCmd.PersistentFlags().StringVar(&rootArgs.logLevel, "log-level", "warn",
		"Log level written to stderr.")
	rootCmd.PersistentFlags().DurationVar(&rootArgs.timeout, "timeout", defaultTimeout,
		"Timeout for the whole operation.")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗", err)
		os.Exit(1)
	}
}

// openApp loads the environment configuration, applies the command line
// overrides and wires the application
func openApp(cmd *cobra.Command) (*app.App, context.Context, context.CancelFunc, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, nil, err
	}
	if rootArgs.database != "" {
		cfg.Database.Path = rootArgs.database
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logruslogger.NewWithWriter(cmd.ErrOrStderr(), rootArgs.logLevel)
	flags := featureflags.NewEnvManager("")

	ctx, cancel := context.WithTimeout(context.Background(), rootArgs.timeout)
	ctx = featureflags.WithManager(ctx, flags)

	a, err := app.New(ctx, cfg, logger, flags)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return a, ctx, cancel, nil
}

func printTable(writer io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(rows)
	table.Render()
}
