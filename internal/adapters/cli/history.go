package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/x4empire/internal/adapters/persistence"
	"github.com/andrescamacho/x4empire/internal/infrastructure/config"
)

// NewHistoryCommand creates the history command with subcommands
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded analysis runs",
		Long: `Every analyze run is recorded in a local sqlite database. The history
commands list past runs, show the stored per-ware results of one run,
and delete runs that are no longer interesting.

Run IDs may be abbreviated to any unique prefix.

Examples:
  x4empire history list
  x4empire history show 3f2a81c0
  x4empire history delete 3f2a81c0-...`,
	}

	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryShowCommand())
	cmd.AddCommand(newHistoryDeleteCommand())

	return cmd
}

func openRunRepository() (*persistence.GormRunRepository, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := persistence.OpenDatabase(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	return persistence.NewGormRunRepository(db), cfg, nil
}

func newHistoryListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, cfg, err := openRunRepository()
			if err != nil {
				return err
			}
			if limit == 0 {
				limit = cfg.Analysis.HistoryLimit
			}

			runs, err := repo.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}

			w := newTabWriter()
			fmt.Fprintln(w, "RUN\tANALYZED\tSAVE TIME\tCOMMANDER\tSTATIONS\tMODULES\tSHIPS")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
					run.ID[:8],
					run.AnalyzedAt.Format("2006-01-02 15:04"),
					run.SaveTime.Format("2006-01-02 15:04"),
					run.PlayerName, run.StationCount, run.ModuleCount, run.ShipCount)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of runs to list")
	return cmd
}

func newHistoryShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the stored per-ware results of one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := openRunRepository()
			if err != nil {
				return err
			}

			run, err := repo.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Run:       %s\n", run.ID)
			fmt.Printf("Save:      %s\n", run.SavePath)
			fmt.Printf("Commander: %s\n", run.PlayerName)
			fmt.Printf("Analyzed:  %s\n", run.AnalyzedAt.Format("2006-01-02 15:04:05"))
			fmt.Printf("Stations:  %d, modules: %d, ships: %d\n",
				run.StationCount, run.ModuleCount, run.ShipCount)
			if !run.HadRateData {
				fmt.Println("Rates:     storage estimates")
			}

			printSection("WARES")
			w := newTabWriter()
			fmt.Fprintln(w, "WARE\tCATEGORY\tMODULES\tPROD/H\tCONS/H\tSTATUS")
			for _, ws := range run.Wares {
				fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\t%.1f\t%s\n",
					ws.WareName, ws.Category, ws.ModuleCount,
					ws.ProductionRate, ws.ConsumptionRate, ws.SupplyStatus)
			}
			return w.Flush()
		},
	}
}

func newHistoryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := openRunRepository()
			if err != nil {
				return err
			}

			run, err := repo.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := repo.DeleteRun(cmd.Context(), run.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted run %s\n", run.ID)
			return nil
		},
	}
}
