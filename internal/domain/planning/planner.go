package planning

import (
	"fmt"
	"math"

	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

// marginalBuffer is the fraction of the added demand that must remain as
// surplus for an input to count as comfortably sufficient.
const marginalBuffer = 0.1

// avgMinerThroughput is the assumed hourly throughput of one mining ship,
// used to size the assign-miners remediation.
const avgMinerThroughput = 10000

// Severity bands as percentages of the total need that is missing.
const (
	criticalDeficitPercent = 50
	highDeficitPercent     = 20
)

// Planner simulates adding production capacity for one ware and analyzes the
// downstream input impact against the current production report.
type Planner struct {
	registry *empire.WareRegistry
	table    analysis.RateTable
	report   *analysis.Report
}

// NewPlanner creates a planner over an aggregated report. The rate table is
// required: expansion math needs real per-module rates, not storage estimates.
func NewPlanner(registry *empire.WareRegistry, table analysis.RateTable, report *analysis.Report) *Planner {
	return &Planner{registry: registry, table: table, report: report}
}

// PlanExpansion computes the impact of adding additionalModules production
// modules for the target ware. Returns NoProductionDataError when the rate
// table has no method for the ware.
func (p *Planner) PlanExpansion(wareID string, additionalModules int) (*ExpansionPlan, error) {
	if additionalModules <= 0 {
		return nil, fmt.Errorf("additional modules must be positive, got %d", additionalModules)
	}

	ware := p.registry.Get(wareID)
	method, ok := p.methodFor(ware.ID)
	if !ok {
		return nil, NewNoProductionDataError(ware.ID)
	}

	currentRate := 0.0
	currentModules := 0
	if stats, ok := p.report.Get(ware.ID); ok {
		currentRate = stats.ProductionRate
		currentModules = stats.ModuleCount
	}

	moduleRate := method.UnitsPerHour()
	increase := float64(additionalModules) * moduleRate
	increasePercent := 100.0
	if currentRate > 0 {
		increasePercent = increase / currentRate * 100
	}

	plan := &ExpansionPlan{
		TargetWare:      ware,
		CurrentModules:  currentModules,
		PlannedModules:  currentModules + additionalModules,
		CurrentRate:     currentRate,
		PlannedRate:     currentRate + increase,
		IncreaseAmount:  increase,
		IncreasePercent: increasePercent,
	}

	for _, res := range method.Resources {
		input := p.analyzeInput(res.WareID, method, additionalModules)
		plan.Inputs = append(plan.Inputs, input)

		if input.Status == InputInsufficient {
			plan.Bottlenecks = append(plan.Bottlenecks, p.buildBottleneck(input.Ware, -input.SurplusOrDeficit))
		}
	}

	plan.Feasible = len(plan.Bottlenecks) == 0
	plan.Recommendations = p.recommendations(plan, additionalModules)

	return plan, nil
}

func (p *Planner) methodFor(wareID string) (*analysis.ProductionMethod, bool) {
	if p.table == nil {
		return nil, false
	}
	return p.table.Method(wareID)
}

// analyzeInput computes one input's post-expansion availability with a 10%
// buffer between sufficient and marginal.
func (p *Planner) analyzeInput(inputWareID string, method *analysis.ProductionMethod, additionalModules int) *InputRequirement {
	ware := p.registry.Get(inputWareID)
	delta := float64(additionalModules) * method.ResourcePerHour(inputWareID)

	var currentConsumption, currentProduction float64
	if stats, ok := p.report.Get(ware.ID); ok {
		currentConsumption = stats.ConsumptionRate
		currentProduction = stats.ProductionRate
	}

	netAvailable := currentProduction - currentConsumption
	surplusOrDeficit := netAvailable - delta

	status := InputSufficient
	switch {
	case surplusOrDeficit < 0:
		status = InputInsufficient
	case surplusOrDeficit < delta*marginalBuffer:
		status = InputMarginal
	}

	return &InputRequirement{
		Ware:               ware,
		CurrentConsumption: currentConsumption,
		NewConsumption:     currentConsumption + delta,
		DeltaConsumption:   delta,
		CurrentProduction:  currentProduction,
		NetAvailable:       netAvailable,
		SurplusOrDeficit:   surplusOrDeficit,
		Status:             status,
	}
}

// buildBottleneck grades a deficit and assembles the remediation options.
func (p *Planner) buildBottleneck(ware *empire.Ware, deficit float64) *Bottleneck {
	currentProduction := 0.0
	if stats, ok := p.report.Get(ware.ID); ok {
		currentProduction = stats.ProductionRate
	}

	totalNeed := currentProduction + deficit
	deficitPercent := 100.0
	if totalNeed > 0 {
		deficitPercent = deficit / totalNeed * 100
	}

	severity := SeverityMedium
	switch {
	case deficitPercent > criticalDeficitPercent:
		severity = SeverityCritical
	case deficitPercent > highDeficitPercent:
		severity = SeverityHigh
	}

	bottleneck := &Bottleneck{
		Ware:     ware,
		Deficit:  deficit,
		Severity: severity,
	}

	if sol := p.expandProductionSolution(ware, deficit); sol != nil {
		bottleneck.Solutions = append(bottleneck.Solutions, sol)
	}
	if ware.IsRaw() {
		bottleneck.Solutions = append(bottleneck.Solutions, minerSolution(ware, deficit))
	}
	bottleneck.Solutions = append(bottleneck.Solutions, marketSolution(deficit))

	bottleneck.Recommended = recommendSolution(bottleneck.Solutions)
	return bottleneck
}

// expandProductionSolution proposes adding modules for the bottleneck ware
// itself, checking whether that would starve a secondary input. Returns nil
// when the ware has no production method.
func (p *Planner) expandProductionSolution(ware *empire.Ware, deficit float64) *BottleneckSolution {
	method, ok := p.methodFor(ware.ID)
	if !ok {
		return nil
	}

	moduleRate := method.UnitsPerHour()
	modulesNeeded := 1
	if moduleRate > 0 {
		modulesNeeded = int(math.Ceil(deficit / moduleRate))
	}

	var blocking []string
	for _, res := range method.Resources {
		stats, ok := p.report.Get(res.WareID)
		if !ok {
			continue
		}
		available := stats.ProductionRate - stats.ConsumptionRate
		needed := float64(modulesNeeded) * method.ResourcePerHour(res.WareID)
		if available < needed {
			blocking = append(blocking, fmt.Sprintf("%s also needs expansion", p.registry.Get(res.WareID).Name))
		}
	}

	return &BottleneckSolution{
		Type:           SolutionExpandProduction,
		Description:    fmt.Sprintf("Add %d %s production %s", modulesNeeded, ware.Name, plural("module", modulesNeeded)),
		ModulesNeeded:  modulesNeeded,
		Feasible:       len(blocking) == 0,
		BlockingIssues: blocking,
	}
}

func minerSolution(ware *empire.Ware, deficit float64) *BottleneckSolution {
	minersNeeded := int(math.Ceil(deficit / avgMinerThroughput))
	return &BottleneckSolution{
		Type:           SolutionAssignMiners,
		Description:    fmt.Sprintf("Assign %d additional %s for %s", minersNeeded, plural("miner", minersNeeded), ware.Name),
		MinersNeeded:   minersNeeded,
		Feasible:       true,
		BlockingIssues: []string{"Requires available miners in fleet"},
	}
}

func marketSolution(deficit float64) *BottleneckSolution {
	return &BottleneckSolution{
		Type:           SolutionPurchaseMarket,
		Description:    fmt.Sprintf("Purchase ~%d/hr from NPC stations", int(deficit)),
		Feasible:       true,
		BlockingIssues: []string{"Ongoing cost - not self-sufficient"},
	}
}

// recommendSolution picks the best option: feasible expansion beats mining
// beats infeasible expansion beats market purchase.
func recommendSolution(solutions []*BottleneckSolution) *BottleneckSolution {
	for _, sol := range solutions {
		if sol.Type == SolutionExpandProduction && sol.Feasible {
			return sol
		}
	}
	for _, sol := range solutions {
		if sol.Type == SolutionAssignMiners {
			return sol
		}
	}
	for _, sol := range solutions {
		if sol.Type == SolutionExpandProduction {
			return sol
		}
	}
	for _, sol := range solutions {
		if sol.Type == SolutionPurchaseMarket {
			return sol
		}
	}
	return nil
}

func (p *Planner) recommendations(plan *ExpansionPlan, additionalModules int) []string {
	var recs []string

	if len(plan.Bottlenecks) == 0 {
		recs = append(recs,
			"Expansion is feasible - all input requirements can be met",
			fmt.Sprintf("You can safely add %d %s %s", additionalModules, plan.TargetWare.Name, plural("module", additionalModules)),
		)
	} else {
		recs = append(recs, fmt.Sprintf("%d %s must be resolved first:", len(plan.Bottlenecks), plural("bottleneck", len(plan.Bottlenecks))))
		for _, b := range plan.Bottlenecks {
			if b.Recommended == nil {
				continue
			}
			recs = append(recs, fmt.Sprintf("  %s: %s", b.Ware.Name, b.Recommended.Description))
			if !b.Recommended.Feasible {
				for _, issue := range b.Recommended.BlockingIssues {
					recs = append(recs, fmt.Sprintf("    (Note: %s)", issue))
				}
			}
		}
	}

	var marginal []*InputRequirement
	for _, in := range plan.Inputs {
		if in.Status == InputMarginal {
			marginal = append(marginal, in)
		}
	}
	if len(marginal) > 0 {
		recs = append(recs, "Marginal supplies (tight buffer):")
		for _, in := range marginal {
			recs = append(recs, fmt.Sprintf("  %s: only %.0f/hr surplus after expansion", in.Ware.Name, in.SurplusOrDeficit))
		}
	}

	return recs
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
