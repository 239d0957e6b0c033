package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/x4empire/internal/application/analyzer"
)

// NewAnalyzeCommand creates the analyze command
func NewAnalyzeCommand() *cobra.Command {
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "analyze [save-file]",
		Short: "Analyze a save file and print the empire overview",
		Long: `Analyze parses a save file, aggregates per-ware production and
consumption across the whole empire, and prints an overview with supply
problems first. Without an argument, the newest save in the configured
save directory is used.

The run is recorded in the local history database so it can be listed
and inspected later with the history command.

Examples:
  x4empire analyze
  x4empire analyze ~/save/quicksave.xml.gz
  x4empire analyze --no-history`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, optionalArg(args), noHistory)
		},
	}

	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run in history")

	return cmd
}

func runAnalyze(cmd *cobra.Command, saveArg string, noHistory bool) error {
	service, _, err := newService(!noHistory)
	if err != nil {
		return err
	}
	savePath, err := service.ResolveSavePath(saveArg)
	if err != nil {
		return err
	}

	result, err := service.Analyze(cmd.Context(), savePath)
	if err != nil {
		return err
	}

	printOverview(result, savePath)
	return nil
}

func printOverview(result *analyzer.Result, savePath string) {
	snap, report := result.Snapshot, result.Report

	fmt.Printf("Save:          %s\n", savePath)
	fmt.Printf("Commander:     %s\n", snap.PlayerName)
	if !snap.SaveTime.IsZero() {
		fmt.Printf("Save time:     %s\n", snap.SaveTime.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Printf("Stations:      %d\n", len(snap.Stations))
	fmt.Printf("Prod modules:  %d\n", snap.TotalProductionModules())
	fmt.Printf("Ships:         %d (%d unassigned)\n", len(snap.AllShips()), len(snap.UnassignedShips))
	if result.RateTable == nil {
		fmt.Println("Rates:         storage estimates (no game data found)")
	}
	if result.RunID != "" {
		fmt.Printf("Run ID:        %s\n", result.RunID[:8])
	}

	if shortages := report.Shortages(); len(shortages) > 0 {
		printSection(fmt.Sprintf("SHORTAGES (%d)", len(shortages)))
		w := newTabWriter()
		fmt.Fprintln(w, "WARE\tMODULES\tPROD/H\tCONS/H\tBALANCE")
		for _, stats := range shortages {
			fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%+.1f\n",
				stats.Ware.Name, stats.ModuleCount,
				stats.ProductionRate, stats.ConsumptionRate, stats.Balance())
		}
		w.Flush()
	}

	if surpluses := report.Surpluses(); len(surpluses) > 0 {
		printSection(fmt.Sprintf("SURPLUSES (%d)", len(surpluses)))
		w := newTabWriter()
		fmt.Fprintln(w, "WARE\tMODULES\tPROD/H\tCONS/H\tBALANCE")
		for _, stats := range surpluses {
			fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%+.1f\n",
				stats.Ware.Name, stats.ModuleCount,
				stats.ProductionRate, stats.ConsumptionRate, stats.Balance())
		}
		w.Flush()
	}

	printSection("STATIONS")
	w := newTabWriter()
	fmt.Fprintln(w, "NAME\tSECTOR\tTYPE\tMODULES\tSHIPS")
	for _, station := range snap.Stations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			station.Name, station.Sector, station.Type,
			len(station.ProductionModules()), len(station.Ships))
	}
	w.Flush()
}
