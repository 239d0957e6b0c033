package analysis

import "github.com/andrescamacho/x4empire/internal/domain/empire"

// ProductionStats is the aggregated view of one ware across the whole empire.
// Entries exist for every ware that is produced, consumed, or demanded; a ware
// that is bought in but never produced still gets a row so it appears in all
// downstream views.
type ProductionStats struct {
	Ware *empire.Ware

	ModuleCount   int
	TotalStock    int
	TotalCapacity int

	// Rates in units/hr, keyed by station ID. Empire-wide totals are the
	// ProductionRate / ConsumptionRate fields.
	ProductionByStation  map[string]float64
	ConsumptionByStation map[string]float64
	ProductionRate       float64
	ConsumptionRate      float64

	// HasRateData is true when the rates come from the game's reference
	// table. False means storage-based estimates, which use the same
	// thresholds but different semantics; both paths are kept deliberately.
	HasRateData bool

	// TotalDemand is the sum of buy-order desired amounts across stations —
	// a stock buffer, not a rate.
	TotalDemand int

	// Mining capacity attributed to this ware via station assignment.
	MinerCount          int
	MiningCargoCapacity int
}

func newProductionStats(ware *empire.Ware) *ProductionStats {
	return &ProductionStats{
		Ware:                 ware,
		ProductionByStation:  make(map[string]float64),
		ConsumptionByStation: make(map[string]float64),
	}
}

// CapacityPercent returns aggregate stock as a percentage of aggregate
// storage capacity.
func (s *ProductionStats) CapacityPercent() float64 {
	if s.TotalCapacity == 0 {
		return 0
	}
	return float64(s.TotalStock) / float64(s.TotalCapacity) * 100
}

// Balance returns production minus consumption in units/hr.
func (s *ProductionStats) Balance() float64 {
	return s.ProductionRate - s.ConsumptionRate
}

// MiningCoverage rates the attributed mining capacity against consumption.
// Only meaningful for raw wares with no module production.
func (s *ProductionStats) MiningCoverage() MiningCoverage {
	if !s.Ware.IsRaw() || s.ProductionRate > 0 {
		return CoverageNotApplicable
	}
	return ClassifyMiningCoverage(s.MiningCargoCapacity, s.ConsumptionRate)
}

// SupplyStatus classifies this ware, applying the mining-coverage override:
// a raw ware with zero production but enough assigned mining capacity is
// Balanced rather than Shortage.
func (s *ProductionStats) SupplyStatus() SupplyStatus {
	status := ClassifySupply(s.ProductionRate, s.ConsumptionRate)
	if status != StatusShortage {
		return status
	}

	switch s.MiningCoverage() {
	case CoverageSufficient, CoverageMarginal:
		return StatusBalanced
	}
	return status
}
