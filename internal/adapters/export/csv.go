package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/andrescamacho/x4empire/internal/domain/analysis"
)

func writeCSV(w io.Writer, report *analysis.Report) error {
	cw := csv.NewWriter(w)
	header := []string{
		"Ware", "Category", "Modules", "Stock", "Capacity", "Stock %",
		"Production Rate", "Consumption Rate", "Balance", "Supply Status",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, stats := range report.All() {
		row := []string{
			stats.Ware.Name,
			string(stats.Ware.Category),
			strconv.Itoa(stats.ModuleCount),
			strconv.Itoa(stats.TotalStock),
			strconv.Itoa(stats.TotalCapacity),
			fmt.Sprintf("%.2f", stats.CapacityPercent()),
			fmt.Sprintf("%.1f", stats.ProductionRate),
			fmt.Sprintf("%.1f", stats.ConsumptionRate),
			fmt.Sprintf("%.1f", stats.Balance()),
			string(stats.SupplyStatus()),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
