package analysis

import (
	"sort"
	"strings"

	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

// storageEstimateFallback is the assumed per-module output when neither rate
// data nor a storage capacity is known.
const storageEstimateFallback = 1000

// Aggregator turns a snapshot into per-ware production statistics.
//
// This is a pure domain service: no I/O, deterministic for a given snapshot
// and rate table. The table may be nil, in which case rates degrade to
// storage-based estimates.
type Aggregator struct {
	registry *empire.WareRegistry
	table    RateTable
}

// NewAggregator creates an aggregator. A nil table is valid and selects the
// storage-estimate path.
func NewAggregator(registry *empire.WareRegistry, table RateTable) *Aggregator {
	return &Aggregator{registry: registry, table: table}
}

// Aggregate computes the production report for a snapshot.
func (a *Aggregator) Aggregate(snap *empire.Snapshot) *Report {
	report := &Report{stats: make(map[string]*ProductionStats)}

	for _, station := range snap.Stations {
		a.aggregateStation(report, station)
	}
	a.attributeMiners(report, snap)

	return report
}

func (a *Aggregator) aggregateStation(report *Report, station *empire.Station) {
	for _, module := range station.ProductionModules() {
		if module.OutputWare == nil {
			continue
		}
		stats := report.ensure(module.OutputWare)
		stats.ModuleCount++
		if module.Output != nil {
			stats.TotalStock += module.Output.Amount
			stats.TotalCapacity += module.Output.Capacity
		}

		if method, ok := a.lookupMethod(module.OutputWare.ID); ok {
			rate := method.UnitsPerHour()
			stats.ProductionRate += rate
			stats.ProductionByStation[station.ID] += rate
			stats.HasRateData = true

			for _, res := range method.Resources {
				input := report.ensure(a.registry.Get(res.WareID))
				consumption := method.ResourcePerHour(res.WareID)
				input.ConsumptionRate += consumption
				input.ConsumptionByStation[station.ID] += consumption
				input.HasRateData = true
			}
			continue
		}

		// No rate data for this ware: estimate output from storage capacity.
		estimate := float64(storageEstimateFallback)
		if module.Output != nil && module.Output.Capacity > 0 {
			estimate = float64(module.Output.Capacity)
		}
		stats.ProductionRate += estimate
		stats.ProductionByStation[station.ID] += estimate
	}

	// Buy-order demand is captured even at stations without production
	// modules: shipyards consume components without producing a ware.
	for wareID, desired := range station.InputDemands {
		input := report.ensure(a.registry.Get(wareID))
		input.TotalDemand += desired
		if a.table == nil {
			input.ConsumptionRate += float64(desired)
			input.ConsumptionByStation[station.ID] += float64(desired)
		}
	}
}

func (a *Aggregator) lookupMethod(wareID string) (*ProductionMethod, bool) {
	if a.table == nil {
		return nil, false
	}
	return a.table.Method(wareID)
}

// attributeMiners assigns mining capacity to raw wares. A miner counts toward
// a ware only when its station consumes that ware and its cargo pool (solid
// vs liquid) matches the ware's transport kind.
func (a *Aggregator) attributeMiners(report *Report, snap *empire.Snapshot) {
	for _, station := range snap.Stations {
		var solidCount, liquidCount, solidCap, liquidCap int
		for _, miner := range station.Miners() {
			if miner.MiningCargoKind() == empire.CargoLiquid {
				liquidCount++
				liquidCap += miner.CargoCapacity
			} else {
				solidCount++
				solidCap += miner.CargoCapacity
			}
		}
		if solidCount == 0 && liquidCount == 0 {
			continue
		}

		for _, stats := range report.stats {
			if !stats.Ware.IsRaw() || !station.ConsumesWare(stats.Ware.ID) {
				continue
			}
			if rawWareCargoKind(stats.Ware.ID) == empire.CargoLiquid {
				stats.MinerCount += liquidCount
				stats.MiningCargoCapacity += liquidCap
			} else {
				stats.MinerCount += solidCount
				stats.MiningCargoCapacity += solidCap
			}
		}
	}
}

// rawWareCargoKind partitions raw wares into mining pools: the gases travel
// in liquid storage, everything else is solid.
func rawWareCargoKind(wareID string) empire.CargoKind {
	switch wareID {
	case "hydrogen", "helium", "methane":
		return empire.CargoLiquid
	}
	return empire.CargoSolid
}

// Report holds the per-ware statistics of one aggregation run, keyed by
// canonical ware ID.
type Report struct {
	stats map[string]*ProductionStats
}

func (r *Report) ensure(ware *empire.Ware) *ProductionStats {
	if stats, ok := r.stats[ware.ID]; ok {
		return stats
	}
	stats := newProductionStats(ware)
	r.stats[ware.ID] = stats
	return stats
}

// Get returns the stats entry for a ware ID (any spelling).
func (r *Report) Get(wareID string) (*ProductionStats, bool) {
	stats, ok := r.stats[empire.NormalizeWareID(wareID)]
	return stats, ok
}

// Len returns the number of ware entries.
func (r *Report) Len() int {
	return len(r.stats)
}

// All returns every entry, sorted by module count descending then ware name
// for deterministic output.
func (r *Report) All() []*ProductionStats {
	all := make([]*ProductionStats, 0, len(r.stats))
	for _, stats := range r.stats {
		all = append(all, stats)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].ModuleCount != all[j].ModuleCount {
			return all[i].ModuleCount > all[j].ModuleCount
		}
		return all[i].Ware.Name < all[j].Ware.Name
	})
	return all
}

// ByCategory groups entries by ware category, each group sorted like All.
func (r *Report) ByCategory() map[empire.WareCategory][]*ProductionStats {
	grouped := make(map[empire.WareCategory][]*ProductionStats)
	for _, stats := range r.All() {
		grouped[stats.Ware.Category] = append(grouped[stats.Ware.Category], stats)
	}
	return grouped
}

// Shortages returns entries classified as shortages.
func (r *Report) Shortages() []*ProductionStats {
	return r.withStatus(StatusShortage)
}

// Surpluses returns entries classified as surpluses.
func (r *Report) Surpluses() []*ProductionStats {
	return r.withStatus(StatusSurplus)
}

func (r *Report) withStatus(status SupplyStatus) []*ProductionStats {
	var matched []*ProductionStats
	for _, stats := range r.All() {
		if stats.SupplyStatus() == status {
			matched = append(matched, stats)
		}
	}
	return matched
}

// Search returns entries whose ware ID or display name contains the query,
// case-insensitively.
func (r *Report) Search(query string) []*ProductionStats {
	query = strings.ToLower(query)
	var matched []*ProductionStats
	for _, stats := range r.All() {
		if strings.Contains(strings.ToLower(stats.Ware.Name), query) ||
			strings.Contains(stats.Ware.ID, query) {
			matched = append(matched, stats)
		}
	}
	return matched
}
