package planning

import "github.com/andrescamacho/x4empire/internal/domain/empire"

// InputStatus rates one input ware's availability after a proposed expansion.
type InputStatus string

const (
	InputSufficient   InputStatus = "sufficient"
	InputMarginal     InputStatus = "marginal"
	InputInsufficient InputStatus = "insufficient"
)

// InputRequirement is the impact of an expansion on a single input ware.
// All rates are units/hr.
type InputRequirement struct {
	Ware               *empire.Ware
	CurrentConsumption float64 // consumed empire-wide today
	NewConsumption     float64 // after the expansion
	DeltaConsumption   float64 // additional demand from the new modules
	CurrentProduction  float64
	NetAvailable       float64 // production minus existing consumption
	SurplusOrDeficit   float64 // net available minus delta; negative = deficit
	Status             InputStatus
}

// SolutionType names a way to resolve a bottleneck.
type SolutionType string

const (
	SolutionExpandProduction SolutionType = "expand_production"
	SolutionAssignMiners     SolutionType = "assign_miners"
	SolutionPurchaseMarket   SolutionType = "purchase_market"
)

// BottleneckSolution is one concrete remediation option for a bottleneck.
type BottleneckSolution struct {
	Type           SolutionType
	Description    string
	ModulesNeeded  int // for expand_production
	MinersNeeded   int // for assign_miners
	Feasible       bool
	BlockingIssues []string
}

// Severity bands a bottleneck by how much of the total need is missing.
type Severity string

const (
	SeverityCritical Severity = "critical" // deficit > 50% of total need
	SeverityHigh     Severity = "high"     // 20-50%
	SeverityMedium   Severity = "medium"   // < 20%
)

// Bottleneck is an input ware whose availability cannot support the proposed
// expansion, with ranked remediation options.
type Bottleneck struct {
	Ware        *empire.Ware
	Deficit     float64 // units/hr shortfall
	Severity    Severity
	Solutions   []*BottleneckSolution
	Recommended *BottleneckSolution
}

// ExpansionPlan is the full impact analysis of adding production modules for
// one ware.
type ExpansionPlan struct {
	TargetWare      *empire.Ware
	CurrentModules  int
	PlannedModules  int
	CurrentRate     float64
	PlannedRate     float64
	IncreaseAmount  float64
	IncreasePercent float64

	Inputs          []*InputRequirement
	Bottlenecks     []*Bottleneck
	Recommendations []string

	// Feasible is true iff the expansion produced no bottlenecks.
	Feasible bool
}
