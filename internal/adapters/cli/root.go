package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "x4empire",
		Short: "x4empire - production analysis for X4 Foundations save games",
		Long: `x4empire reads an X4 Foundations save file and analyzes your empire:
stations, production modules, assigned ships, per-ware supply balance,
and the impact of planned expansions.

Examples:
  x4empire analyze
  x4empire analyze ~/.config/EgoSoft/X4/12345/save/quicksave.xml.gz
  x4empire stats --status shortage
  x4empire expansion hullparts --modules 2
  x4empire export --format csv --output report.csv
  x4empire compare save_001.xml.gz save_002.xml.gz
  x4empire history list`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml, ~/.config/x4empire/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable progress output while parsing")

	rootCmd.AddCommand(NewAnalyzeCommand())
	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewExpansionCommand())
	rootCmd.AddCommand(NewExportCommand())
	rootCmd.AddCommand(NewCompareCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
