package analysis

// ResourceRequirement is one input of a production method: the ware consumed
// and the units needed per cycle.
type ResourceRequirement struct {
	WareID string
	Amount int
}

// ProductionMethod is a recipe from the game's reference data: how long one
// cycle takes, how many units it yields, and what it consumes.
type ProductionMethod struct {
	MethodID       string
	CycleSeconds   float64
	AmountPerCycle int
	Resources      []ResourceRequirement
}

// UnitsPerHour returns the output rate of one module running this method,
// 0 when the cycle time is unknown or invalid.
func (m *ProductionMethod) UnitsPerHour() float64 {
	if m.CycleSeconds <= 0 {
		return 0
	}
	return 3600 / m.CycleSeconds * float64(m.AmountPerCycle)
}

// ResourcePerHour returns the consumption rate of a single input ware for one
// module running this method.
func (m *ProductionMethod) ResourcePerHour(wareID string) float64 {
	if m.CycleSeconds <= 0 {
		return 0
	}
	for _, res := range m.Resources {
		if res.WareID == wareID {
			return 3600 / m.CycleSeconds * float64(res.Amount)
		}
	}
	return 0
}

// RateTable supplies production methods from the game's reference data. The
// table is a read-only snapshot taken once per analysis run; a nil table
// degrades the aggregator to storage-based estimates.
type RateTable interface {
	// Method returns the default production method for a ware, or false when
	// the ware has no known method.
	Method(wareID string) (*ProductionMethod, bool)
}
