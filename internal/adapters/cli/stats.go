package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

var statusFilters = map[string]analysis.SupplyStatus{
	"surplus":   analysis.StatusSurplus,
	"balanced":  analysis.StatusBalanced,
	"shortage":  analysis.StatusShortage,
	"no_demand": analysis.StatusNoDemand,
}

var categoryFilters = map[string]empire.WareCategory{
	"raw":     empire.CategoryRaw,
	"tier1":   empire.CategoryTier1,
	"tier2":   empire.CategoryTier2,
	"tier3":   empire.CategoryTier3,
	"unknown": empire.CategoryUnknown,
}

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	var (
		saveFile string
		status   string
		category string
	)

	cmd := &cobra.Command{
		Use:   "stats [query]",
		Short: "Per-ware production statistics",
		Long: `Stats prints the aggregated production table, one row per ware.
An optional query filters by ware name or ID; --status and --category
narrow the table further.

Statuses: surplus, balanced, shortage, no_demand
Categories: raw, tier1, tier2, tier3, unknown

Examples:
  x4empire stats
  x4empire stats hull
  x4empire stats --status shortage
  x4empire stats --category raw --save ~/save/quicksave.xml.gz`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, optionalArg(args), saveFile, status, category)
		},
	}

	cmd.Flags().StringVar(&saveFile, "save", "", "Save file to analyze (default: newest)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by supply status")
	cmd.Flags().StringVar(&category, "category", "", "Filter by ware category")

	return cmd
}

func runStats(cmd *cobra.Command, query, saveFile, status, category string) error {
	var wantStatus analysis.SupplyStatus
	if status != "" {
		var ok bool
		if wantStatus, ok = statusFilters[status]; !ok {
			return fmt.Errorf("unknown status %q (use surplus, balanced, shortage or no_demand)", status)
		}
	}
	var wantCategory empire.WareCategory
	if category != "" {
		var ok bool
		if wantCategory, ok = categoryFilters[category]; !ok {
			return fmt.Errorf("unknown category %q (use raw, tier1, tier2, tier3 or unknown)", category)
		}
	}

	service, _, err := newService(false)
	if err != nil {
		return err
	}
	savePath, err := service.ResolveSavePath(saveFile)
	if err != nil {
		return err
	}

	result, err := service.Analyze(cmd.Context(), savePath)
	if err != nil {
		return err
	}

	all := result.Report.All()
	if query != "" {
		all = result.Report.Search(query)
	}

	w := newTabWriter()
	fmt.Fprintln(w, "WARE\tCATEGORY\tMODULES\tSTOCK\tCAPACITY\tPROD/H\tCONS/H\tMINERS\tSTATUS")
	rows := 0
	for _, stats := range all {
		if status != "" && stats.SupplyStatus() != wantStatus {
			continue
		}
		if category != "" && stats.Ware.Category != wantCategory {
			continue
		}
		rows++
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.1f\t%.1f\t%d\t%s\n",
			stats.Ware.Name, stats.Ware.Category, stats.ModuleCount,
			stats.TotalStock, stats.TotalCapacity,
			stats.ProductionRate, stats.ConsumptionRate,
			stats.MinerCount, stats.SupplyStatus())
	}
	w.Flush()
	if rows == 0 {
		fmt.Println("No wares match the given filters.")
	}

	if result.RateTable == nil {
		fmt.Println("\nNote: rates are storage estimates; configure the game directory for real rates.")
	}
	return nil
}
