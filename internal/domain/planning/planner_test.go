package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
	"github.com/andrescamacho/x4empire/internal/domain/planning"
)

type fixedTable map[string]*analysis.ProductionMethod

func (t fixedTable) Method(wareID string) (*analysis.ProductionMethod, bool) {
	m, ok := t[wareID]
	return m, ok
}

func sampleTable() fixedTable {
	return fixedTable{
		"energycells": {MethodID: "default", CycleSeconds: 60, AmountPerCycle: 175},
		"hullparts": {MethodID: "default", CycleSeconds: 600, AmountPerCycle: 100,
			Resources: []analysis.ResourceRequirement{{WareID: "energycells", Amount: 200}}},
		"refinedmetals": {MethodID: "default", CycleSeconds: 300, AmountPerCycle: 100,
			Resources: []analysis.ResourceRequirement{{WareID: "ore", Amount: 120}}},
	}
}

// sampleReport aggregates an empire producing 10500/hr energy cells and
// running two hull part modules that consume 2400/hr of them.
func sampleReport(t *testing.T, registry *empire.WareRegistry, table analysis.RateTable) *analysis.Report {
	t.Helper()
	cells := registry.Get("energycells")
	hull := registry.Get("hullparts")
	station := &empire.Station{
		ID: "st-1",
		Modules: []*empire.ProductionModule{
			{ID: "st-1/0", Macro: "prod_gen_energycells_macro", OutputWare: cells},
			{ID: "st-1/1", Macro: "prod_arg_hullparts_macro", OutputWare: hull},
			{ID: "st-1/2", Macro: "prod_arg_hullparts_macro", OutputWare: hull},
		},
	}
	snap := &empire.Snapshot{Stations: []*empire.Station{station}}
	return analysis.NewAggregator(registry, table).Aggregate(snap)
}

func TestPlanner_PlanExpansion_Feasible(t *testing.T) {
	// Arrange
	registry := empire.NewWareRegistry()
	table := sampleTable()
	report := sampleReport(t, registry, table)
	planner := planning.NewPlanner(registry, table, report)

	// Act
	plan, err := planner.PlanExpansion("hullparts", 2)

	// Assert
	require.NoError(t, err)
	assert.True(t, plan.Feasible)
	assert.Empty(t, plan.Bottlenecks)
	assert.Equal(t, 2, plan.CurrentModules)
	assert.Equal(t, 4, plan.PlannedModules)
	assert.InDelta(t, 1200, plan.CurrentRate, 0.001)
	assert.InDelta(t, 2400, plan.PlannedRate, 0.001)
	assert.InDelta(t, 1200, plan.IncreaseAmount, 0.001)
	assert.InDelta(t, 100, plan.IncreasePercent, 0.001)

	require.Len(t, plan.Inputs, 1)
	input := plan.Inputs[0]
	assert.Equal(t, "energycells", input.Ware.ID)
	assert.InDelta(t, 2400, input.DeltaConsumption, 0.001) // 2 modules x 1200/hr
	assert.InDelta(t, 8100, input.NetAvailable, 0.001)     // 10500 - 2400 existing
	assert.InDelta(t, 5700, input.SurplusOrDeficit, 0.001)
	assert.Equal(t, planning.InputSufficient, input.Status)

	require.NotEmpty(t, plan.Recommendations)
	assert.Contains(t, plan.Recommendations[0], "feasible")
}

func TestPlanner_PlanExpansion_Bottleneck(t *testing.T) {
	// Arrange
	registry := empire.NewWareRegistry()
	table := sampleTable()
	report := sampleReport(t, registry, table)
	planner := planning.NewPlanner(registry, table, report)

	// Act — eight extra modules need 9600/hr of cells against 8100 available.
	plan, err := planner.PlanExpansion("hullparts", 8)

	// Assert
	require.NoError(t, err)
	assert.False(t, plan.Feasible)
	require.Len(t, plan.Bottlenecks, 1)

	bottleneck := plan.Bottlenecks[0]
	assert.Equal(t, "energycells", bottleneck.Ware.ID)
	assert.InDelta(t, 1500, bottleneck.Deficit, 0.001)
	// 1500 missing out of 12000 total need is a 12.5% gap.
	assert.Equal(t, planning.SeverityMedium, bottleneck.Severity)

	require.NotNil(t, bottleneck.Recommended)
	assert.Equal(t, planning.SolutionExpandProduction, bottleneck.Recommended.Type)
	assert.True(t, bottleneck.Recommended.Feasible)
	assert.Equal(t, 1, bottleneck.Recommended.ModulesNeeded) // one cell module covers 10500/hr
}

func TestPlanner_PlanExpansion_SeverityBands(t *testing.T) {
	// Arrange
	registry := empire.NewWareRegistry()
	table := sampleTable()
	report := sampleReport(t, registry, table)
	planner := planning.NewPlanner(registry, table, report)

	// Act — nine modules add 10800/hr of cell demand against 8100 available:
	// a 2700/hr deficit out of 13200 total need, just over the 20% band.
	plan, err := planner.PlanExpansion("hullparts", 9)

	// Assert
	require.NoError(t, err)
	require.Len(t, plan.Bottlenecks, 1)
	assert.InDelta(t, 2700, plan.Bottlenecks[0].Deficit, 0.001)
	assert.Equal(t, planning.SeverityHigh, plan.Bottlenecks[0].Severity)
}

func TestPlanner_UnsuppliedInputEndToEnd(t *testing.T) {
	// Arrange — two quantum tube modules consume graphene that nothing
	// produces; graphene has no recipe and is not mineable.
	registry := empire.NewWareRegistry()
	table := fixedTable{
		"quantumtubes": {MethodID: "default", CycleSeconds: 60, AmountPerCycle: 10,
			Resources: []analysis.ResourceRequirement{{WareID: "graphene", Amount: 5}}},
	}
	tubes := registry.Get("quantumtubes")
	station := &empire.Station{
		ID: "st-1",
		Modules: []*empire.ProductionModule{
			{ID: "st-1/0", Macro: "prod_gen_quantumtubes_macro", OutputWare: tubes},
			{ID: "st-1/1", Macro: "prod_gen_quantumtubes_macro", OutputWare: tubes},
		},
	}
	report := analysis.NewAggregator(registry, table).Aggregate(&empire.Snapshot{Stations: []*empire.Station{station}})

	// Assert — aggregation side
	tubeStats, ok := report.Get("quantumtubes")
	require.True(t, ok)
	assert.InDelta(t, 1200, tubeStats.ProductionRate, 0.001)

	graphene, ok := report.Get("graphene")
	require.True(t, ok)
	assert.InDelta(t, 600, graphene.ConsumptionRate, 0.001)
	assert.Equal(t, analysis.StatusShortage, graphene.SupplyStatus())

	// Act — a third module deepens the unsupplied input into a bottleneck.
	plan, err := planning.NewPlanner(registry, table, report).PlanExpansion("quantumtubes", 1)

	// Assert — planner side
	require.NoError(t, err)
	assert.False(t, plan.Feasible)
	require.Len(t, plan.Bottlenecks, 1)
	bottleneck := plan.Bottlenecks[0]
	assert.Equal(t, "graphene", bottleneck.Ware.ID)
	assert.Equal(t, planning.SeverityCritical, bottleneck.Severity)
	// No recipe and not mineable leaves the market as the only option.
	require.NotNil(t, bottleneck.Recommended)
	assert.Equal(t, planning.SolutionPurchaseMarket, bottleneck.Recommended.Type)
}

func TestPlanner_PlanExpansion_RawWareRecommendsMiners(t *testing.T) {
	// Arrange — nothing mines or produces ore yet.
	registry := empire.NewWareRegistry()
	table := sampleTable()
	report := analysis.NewAggregator(registry, table).Aggregate(&empire.Snapshot{})
	planner := planning.NewPlanner(registry, table, report)

	// Act
	plan, err := planner.PlanExpansion("refinedmetals", 1)

	// Assert
	require.NoError(t, err)
	assert.False(t, plan.Feasible)
	require.Len(t, plan.Bottlenecks, 1)

	bottleneck := plan.Bottlenecks[0]
	assert.Equal(t, "ore", bottleneck.Ware.ID)
	assert.InDelta(t, 1440, bottleneck.Deficit, 0.001)
	assert.Equal(t, planning.SeverityCritical, bottleneck.Severity)

	// Ore has no production recipe, so mining is the only self-sufficient fix.
	require.NotNil(t, bottleneck.Recommended)
	assert.Equal(t, planning.SolutionAssignMiners, bottleneck.Recommended.Type)
	assert.Equal(t, 1, bottleneck.Recommended.MinersNeeded)

	types := make([]planning.SolutionType, 0, len(bottleneck.Solutions))
	for _, sol := range bottleneck.Solutions {
		types = append(types, sol.Type)
	}
	assert.NotContains(t, types, planning.SolutionExpandProduction)
	assert.Contains(t, types, planning.SolutionPurchaseMarket)
}

func TestPlanner_PlanExpansion_MarginalInput(t *testing.T) {
	// Arrange — one cell module and no hull production yet: 10500/hr free.
	registry := empire.NewWareRegistry()
	table := sampleTable()
	cells := registry.Get("energycells")
	station := &empire.Station{
		ID:      "st-1",
		Modules: []*empire.ProductionModule{{ID: "st-1/0", Macro: "prod_gen_energycells_macro", OutputWare: cells}},
	}
	report := analysis.NewAggregator(registry, table).Aggregate(&empire.Snapshot{Stations: []*empire.Station{station}})
	planner := planning.NewPlanner(registry, table, report)

	// Act — 7 modules leave 2100/hr over an 840/hr buffer: comfortable.
	plan, err := planner.PlanExpansion("hullparts", 7)

	// Assert
	require.NoError(t, err)
	assert.True(t, plan.Feasible)
	require.Len(t, plan.Inputs, 1)
	assert.Equal(t, planning.InputSufficient, plan.Inputs[0].Status)

	// Eight modules still fit, but the 900/hr surplus dips under the 10%
	// buffer of the 9600/hr they add.
	plan, err = planner.PlanExpansion("hullparts", 8)
	require.NoError(t, err)
	assert.True(t, plan.Feasible)
	require.Len(t, plan.Inputs, 1)
	assert.Equal(t, planning.InputMarginal, plan.Inputs[0].Status)
}

func TestPlanner_PlanExpansion_NoProductionData(t *testing.T) {
	// Arrange
	registry := empire.NewWareRegistry()
	table := sampleTable()
	report := analysis.NewAggregator(registry, table).Aggregate(&empire.Snapshot{})
	planner := planning.NewPlanner(registry, table, report)

	// Act
	_, err := planner.PlanExpansion("ore", 1)

	// Assert
	var noData *planning.NoProductionDataError
	require.ErrorAs(t, err, &noData)
	assert.Equal(t, "ore", noData.WareID)
}

func TestPlanner_PlanExpansion_RejectsNonPositiveModules(t *testing.T) {
	// Arrange
	registry := empire.NewWareRegistry()
	table := sampleTable()
	report := analysis.NewAggregator(registry, table).Aggregate(&empire.Snapshot{})
	planner := planning.NewPlanner(registry, table, report)

	// Act / Assert
	_, err := planner.PlanExpansion("hullparts", 0)
	assert.Error(t, err)
	_, err = planner.PlanExpansion("hullparts", -3)
	assert.Error(t, err)
}
