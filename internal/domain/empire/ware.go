package empire

// WareCategory groups wares by their position in the production chain.
type WareCategory string

const (
	CategoryRaw     WareCategory = "Raw Materials"
	CategoryTier1   WareCategory = "Tier 1 - Processed"
	CategoryTier2   WareCategory = "Tier 2 - Components"
	CategoryTier3   WareCategory = "Tier 3 - Advanced"
	CategoryUnknown WareCategory = "Unknown"
)

// Ware represents a tradeable or producible commodity.
//
// Two wares are the same ware iff their IDs match. The registry hands out one
// canonical *Ware per ID, so pointer comparison works for registry-issued
// wares, but map keys should always be the ID string.
type Ware struct {
	ID       string
	Name     string
	Category WareCategory
}

// IsRaw reports whether this ware is a mineable raw material.
func (w *Ware) IsRaw() bool {
	return w.Category == CategoryRaw
}

// TradeResource is a ware plus its current stock and storage capacity at some
// module or station.
type TradeResource struct {
	Ware     *Ware
	Amount   int
	Capacity int
}

// CapacityPercent returns the fill level as a percentage, 0 when the
// capacity is unknown.
func (r TradeResource) CapacityPercent() float64 {
	if r.Capacity == 0 {
		return 0
	}
	return float64(r.Amount) / float64(r.Capacity) * 100
}
