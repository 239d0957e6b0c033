package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/x4empire/internal/infrastructure/config"
	"github.com/andrescamacho/x4empire/pkg/utils"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and diagnose configuration",
		Long: `Config shows the resolved configuration and which paths were
auto-detected. Configuration comes from (highest priority first)
X4_* environment variables, the config file, and built-in defaults.

Examples:
  x4empire config show
  x4empire config detect`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigDetectCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			w := newTabWriter()
			fmt.Fprintf(w, "Save directory:\t%s\n", orUnset(cfg.Paths.SaveDirectory))
			fmt.Fprintf(w, "Game directory:\t%s\n", orUnset(cfg.Paths.GameDirectory))
			fmt.Fprintf(w, "Cache directory:\t%s\n", cfg.Paths.CacheDirectory)
			fmt.Fprintf(w, "History database:\t%s\n", cfg.Database.Path)
			fmt.Fprintf(w, "Rate overrides:\t%s\n", orUnset(cfg.Analysis.RateOverridesFile))
			fmt.Fprintf(w, "History limit:\t%d\n", cfg.Analysis.HistoryLimit)
			return w.Flush()
		},
	}
}

func newConfigDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Run path auto-detection and report the findings",
		RunE: func(cmd *cobra.Command, args []string) error {
			saveDir := config.DetectSaveDirectory()
			gameDir := config.DetectGameDirectory()

			fmt.Printf("Save directory: %s\n", orUnset(saveDir))
			fmt.Printf("Game directory: %s\n", orUnset(gameDir))

			if saveDir != "" {
				saves := config.RecentSaves(saveDir, 5)
				if len(saves) > 0 {
					printSection("RECENT SAVES")
					for _, save := range saves {
						size := ""
						if info, err := os.Stat(save); err == nil {
							size = utils.FormatBytes(info.Size())
						}
						fmt.Printf(" %s  %s\n", save, size)
					}
				}
			}
			return nil
		},
	}
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
