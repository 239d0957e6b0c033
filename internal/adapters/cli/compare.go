package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/x4empire/internal/domain/compare"
)

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <old-save> <new-save>",
		Short: "Compare two save files",
		Long: `Compare analyzes two save files and reports what changed in between:
per-ware supply transitions, stations added or removed, and headline
alerts for anything that dropped into shortage.

Examples:
  x4empire compare save_001.xml.gz save_002.xml.gz`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args[0], args[1])
		},
	}
	return cmd
}

func runCompare(cmd *cobra.Command, oldPath, newPath string) error {
	service, _, err := newService(false)
	if err != nil {
		return err
	}

	oldResult, err := service.Analyze(cmd.Context(), oldPath)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", oldPath, err)
	}
	newResult, err := service.Analyze(cmd.Context(), newPath)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", newPath, err)
	}

	cmp := compare.Compare(
		compare.Snapshots{Snapshot: oldResult.Snapshot, Report: oldResult.Report},
		compare.Snapshots{Snapshot: newResult.Snapshot, Report: newResult.Report},
	)
	printComparison(cmp)
	return nil
}

func printComparison(cmp *compare.Comparison) {
	fmt.Printf("Comparing %s -> %s\n", cmp.OldSaveTime, cmp.NewSaveTime)
	fmt.Printf("Wares: %d compared, %d improved, %d degraded, %d new, %d stopped, %d unchanged\n",
		cmp.WaresCompared, cmp.Improved, cmp.Degraded, cmp.NewProduction, cmp.Stopped, cmp.Unchanged)
	fmt.Printf("Stations: %+d modules, %d added, %d removed\n",
		cmp.TotalModulesDelta, cmp.StationsAdded, cmp.StationsRemoved)

	if len(cmp.Alerts) > 0 {
		printSection("ALERTS")
		for _, alert := range cmp.Alerts {
			fmt.Printf(" ! %s\n", alert)
		}
	}

	if len(cmp.WareChanges) > 0 {
		printSection("WARE CHANGES")
		w := newTabWriter()
		fmt.Fprintln(w, "WARE\tCHANGE\tSTATUS\tMODULES\tBALANCE/H")
		for _, wc := range cmp.WareChanges {
			fmt.Fprintf(w, "%s\t%s\t%s -> %s\t%+d\t%+.1f\n",
				wc.Ware.Name, wc.Change, wc.OldStatus, wc.NewStatus,
				wc.ModuleDelta, wc.BalanceDelta)
		}
		w.Flush()
	}

	if len(cmp.StationChanges) > 0 {
		printSection("STATION CHANGES")
		w := newTabWriter()
		fmt.Fprintln(w, "STATION\tCHANGE\tMODULES")
		for _, sc := range cmp.StationChanges {
			fmt.Fprintf(w, "%s\t%s\t%+d\n", sc.Name, sc.Change, sc.ModuleDelta)
		}
		w.Flush()
	}
}
