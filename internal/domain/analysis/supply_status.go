package analysis

// SupplyStatus classifies a ware's empire-wide production/consumption balance.
type SupplyStatus string

const (
	StatusSurplus  SupplyStatus = "Surplus"
	StatusBalanced SupplyStatus = "Balanced"
	StatusShortage SupplyStatus = "Shortage"
	StatusNoDemand SupplyStatus = "No Demand"
)

// Classification thresholds on the consumption/production ratio. Both
// boundaries are inclusive on the Balanced side.
const (
	surplusRatio  = 0.8
	shortageRatio = 1.2
)

// ClassifySupply maps a production and consumption rate pair to a supply
// status. Zero production with nonzero consumption is a shortage here; the
// mining-coverage override for raw wares is applied by ProductionStats, which
// knows the mining capacity.
func ClassifySupply(production, consumption float64) SupplyStatus {
	if production == 0 {
		if consumption > 0 {
			return StatusShortage
		}
		return StatusNoDemand
	}
	if consumption == 0 {
		return StatusSurplus
	}

	ratio := consumption / production
	switch {
	case ratio < surplusRatio:
		return StatusSurplus
	case ratio <= shortageRatio:
		return StatusBalanced
	default:
		return StatusShortage
	}
}

// MiningCoverage rates how well assigned mining capacity covers the
// consumption of a raw ware that is not produced by any module.
type MiningCoverage string

const (
	CoverageSufficient    MiningCoverage = "Sufficient"
	CoverageMarginal      MiningCoverage = "Marginal"
	CoverageInsufficient  MiningCoverage = "Insufficient"
	CoverageNotApplicable MiningCoverage = "N/A"
)

// Coverage thresholds: mining cargo capacity relative to hourly consumption.
const (
	sufficientCoverage = 1.5
	marginalCoverage   = 1.0
)

// ClassifyMiningCoverage compares aggregate mining cargo capacity against a
// consumption rate. Boundary values resolve upward: exactly 1.5x is
// Sufficient, exactly 1.0x is Marginal.
func ClassifyMiningCoverage(miningCapacity int, consumption float64) MiningCoverage {
	if consumption <= 0 || miningCapacity <= 0 {
		return CoverageNotApplicable
	}
	ratio := float64(miningCapacity) / consumption
	switch {
	case ratio >= sufficientCoverage:
		return CoverageSufficient
	case ratio >= marginalCoverage:
		return CoverageMarginal
	default:
		return CoverageInsufficient
	}
}
