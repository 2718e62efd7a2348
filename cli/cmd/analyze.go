package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fluxbase-eu/fluxpack/cli/output"
	"github.com/fluxbase-eu/fluxpack/internal/bundler"
	"github.com/fluxbase-eu/fluxpack/internal/config"
)

var analyzeDetails bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [entry]",
	Short: "Inspect the dependency graph of an entry module",
	Long: `Analyze builds the dependency graph without writing an artifact and prints
a per-module size breakdown: code bytes after transformation, share of the
total bundle, and import counts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeDetails, "details", false,
		"show the plain-text breakdown instead of the table")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Entry = args[0]
	}
	if cfg.Entry == "" {
		return &config.ConfigError{Field: "entry", Reason: "is required"}
	}

	graph, err := bundler.BuildGraph(cfg.Entry)
	if err != nil {
		return err
	}

	result := bundler.Analyze(graph)

	if analyzeDetails {
		bundler.DisplayAnalysis(os.Stdout, result)
		return nil
	}

	if formatter.Format != output.FormatTable {
		return formatter.Print(result)
	}

	table := output.TableData{
		Headers: []string{"MODULE", "SIZE", "SHARE", "IMPORTS"},
	}
	for _, mod := range result.Modules {
		name := mod.Path
		if mod.IsEntry {
			name += " (entry)"
		}
		table.Rows = append(table.Rows, []string{
			name,
			fmt.Sprintf("%d B", mod.Bytes),
			fmt.Sprintf("%.1f%%", mod.Percentage),
			fmt.Sprintf("%d", mod.ImportCount),
		})
	}
	formatter.PrintTable(table)
	formatter.Success("\n%d modules, %d bytes total", result.ModuleCount, result.TotalBytes)
	return nil
}
