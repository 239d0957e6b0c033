package export

import (
	"fmt"
	"io"

	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

func writeText(w io.Writer, snap *empire.Snapshot, report *analysis.Report) error {
	p := &textPrinter{w: w}

	p.line("X4 EMPIRE PRODUCTION REPORT")
	p.line("===========================")
	p.line("")
	p.linef("Commander:    %s", snap.PlayerName)
	if !snap.SaveTime.IsZero() {
		p.linef("Save time:    %s", snap.SaveTime.Format("2006-01-02 15:04:05 MST"))
	}
	p.linef("Stations:     %d", len(snap.Stations))
	p.linef("Prod modules: %d", snap.TotalProductionModules())
	p.line("")

	p.line("PRODUCTION OVERVIEW")
	p.line("-------------------")
	for _, stats := range report.All() {
		p.linef("%-24s %-10s modules=%-3d prod=%8.1f/h cons=%8.1f/h  %s",
			stats.Ware.Name, stats.Ware.Category, stats.ModuleCount,
			stats.ProductionRate, stats.ConsumptionRate, stats.SupplyStatus())
	}
	p.line("")

	if shortages := report.Shortages(); len(shortages) > 0 {
		p.line("SHORTAGES")
		p.line("---------")
		for _, stats := range shortages {
			p.linef("%-24s deficit %.1f/h", stats.Ware.Name, -stats.Balance())
		}
		p.line("")
	}

	p.line("STATIONS")
	p.line("--------")
	for _, station := range snap.Stations {
		p.linef("%s (%s, %s): %d production modules, %d ships (%d traders, %d miners)",
			station.Name, station.Sector, station.Type,
			len(station.ProductionModules()), len(station.Ships),
			len(station.Traders()), len(station.Miners()))
	}

	return p.err
}

// textPrinter collects the first write error so the report body stays free
// of error plumbing.
type textPrinter struct {
	w   io.Writer
	err error
}

func (p *textPrinter) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s+"\n")
}

func (p *textPrinter) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}
