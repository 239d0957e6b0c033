package compare

import (
	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

// ChangeType classifies how a ware's supply situation moved between two
// analyzed snapshots.
type ChangeType string

const (
	ChangeImproved  ChangeType = "improved"
	ChangeDegraded  ChangeType = "degraded"
	ChangeNew       ChangeType = "new"     // production appeared
	ChangeStopped   ChangeType = "stopped" // production disappeared
	ChangeUnchanged ChangeType = "unchanged"
)

// WareChange is the delta for a single ware between two reports.
type WareChange struct {
	Ware *empire.Ware

	OldStatus analysis.SupplyStatus
	NewStatus analysis.SupplyStatus
	Change    ChangeType

	OldModules  int
	NewModules  int
	ModuleDelta int

	OldProductionRate  float64
	NewProductionRate  float64
	OldConsumptionRate float64
	NewConsumptionRate float64

	OldBalance   float64
	NewBalance   float64
	BalanceDelta float64
}

// StationChange records a station appearing, disappearing, or changing its
// module count between snapshots.
type StationChange struct {
	Name        string
	Change      string // "added", "removed", "modified"
	OldModules  int
	NewModules  int
	ModuleDelta int
}

// Comparison is the full diff between two analyzed snapshots.
type Comparison struct {
	OldSaveTime string
	NewSaveTime string

	WaresCompared int
	Improved      int
	Degraded      int
	NewProduction int
	Stopped       int
	Unchanged     int

	StationsAdded     int
	StationsRemoved   int
	TotalModulesDelta int

	WareChanges    []*WareChange // only non-unchanged entries
	StationChanges []*StationChange
	Alerts         []string
}
