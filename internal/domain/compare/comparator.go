package compare

import (
	"fmt"

	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

// statusRank orders supply statuses from worst to best so transitions can be
// classified as improvements or regressions.
var statusRank = map[analysis.SupplyStatus]int{
	analysis.StatusShortage: 0,
	analysis.StatusBalanced: 1,
	analysis.StatusNoDemand: 2,
	analysis.StatusSurplus:  2,
}

// Snapshots pairs a snapshot with its aggregated report for comparison.
type Snapshots struct {
	Snapshot *empire.Snapshot
	Report   *analysis.Report
}

// Compare diffs two analyzed snapshots: per-ware status transitions, station
// additions/removals, and headline alerts. Old is the earlier save.
func Compare(old, new Snapshots) *Comparison {
	cmp := &Comparison{
		OldSaveTime: old.Snapshot.SaveTime.Format("2006-01-02 15:04:05"),
		NewSaveTime: new.Snapshot.SaveTime.Format("2006-01-02 15:04:05"),
	}

	compareWares(cmp, old.Report, new.Report)
	compareStations(cmp, old.Snapshot, new.Snapshot)
	buildAlerts(cmp)

	return cmp
}

func compareWares(cmp *Comparison, oldReport, newReport *analysis.Report) {
	seen := make(map[string]bool)

	for _, newStats := range newReport.All() {
		seen[newStats.Ware.ID] = true
		cmp.WaresCompared++

		oldStats, existed := oldReport.Get(newStats.Ware.ID)
		if !existed {
			cmp.NewProduction++
			cmp.WareChanges = append(cmp.WareChanges, wareChange(nil, newStats, ChangeNew))
			continue
		}

		change := classifyTransition(oldStats.SupplyStatus(), newStats.SupplyStatus())
		switch change {
		case ChangeImproved:
			cmp.Improved++
		case ChangeDegraded:
			cmp.Degraded++
		default:
			cmp.Unchanged++
			continue
		}
		cmp.WareChanges = append(cmp.WareChanges, wareChange(oldStats, newStats, change))
	}

	for _, oldStats := range oldReport.All() {
		if seen[oldStats.Ware.ID] {
			continue
		}
		cmp.WaresCompared++
		cmp.Stopped++
		cmp.WareChanges = append(cmp.WareChanges, wareChange(oldStats, nil, ChangeStopped))
	}
}

func classifyTransition(oldStatus, newStatus analysis.SupplyStatus) ChangeType {
	oldRank, newRank := statusRank[oldStatus], statusRank[newStatus]
	switch {
	case newRank > oldRank:
		return ChangeImproved
	case newRank < oldRank:
		return ChangeDegraded
	default:
		return ChangeUnchanged
	}
}

func wareChange(oldStats, newStats *analysis.ProductionStats, change ChangeType) *WareChange {
	wc := &WareChange{Change: change}
	if oldStats != nil {
		wc.Ware = oldStats.Ware
		wc.OldStatus = oldStats.SupplyStatus()
		wc.OldModules = oldStats.ModuleCount
		wc.OldProductionRate = oldStats.ProductionRate
		wc.OldConsumptionRate = oldStats.ConsumptionRate
		wc.OldBalance = oldStats.Balance()
	}
	if newStats != nil {
		wc.Ware = newStats.Ware
		wc.NewStatus = newStats.SupplyStatus()
		wc.NewModules = newStats.ModuleCount
		wc.NewProductionRate = newStats.ProductionRate
		wc.NewConsumptionRate = newStats.ConsumptionRate
		wc.NewBalance = newStats.Balance()
	}
	wc.ModuleDelta = wc.NewModules - wc.OldModules
	wc.BalanceDelta = wc.NewBalance - wc.OldBalance
	return wc
}

func compareStations(cmp *Comparison, oldSnap, newSnap *empire.Snapshot) {
	oldByID := make(map[string]*empire.Station, len(oldSnap.Stations))
	for _, st := range oldSnap.Stations {
		oldByID[st.ID] = st
	}

	for _, newStation := range newSnap.Stations {
		oldStation, existed := oldByID[newStation.ID]
		if !existed {
			cmp.StationsAdded++
			modules := len(newStation.ProductionModules())
			cmp.TotalModulesDelta += modules
			cmp.StationChanges = append(cmp.StationChanges, &StationChange{
				Name: newStation.Name, Change: "added", NewModules: modules, ModuleDelta: modules,
			})
			continue
		}
		delete(oldByID, newStation.ID)

		oldModules := len(oldStation.ProductionModules())
		newModules := len(newStation.ProductionModules())
		if oldModules != newModules {
			cmp.TotalModulesDelta += newModules - oldModules
			cmp.StationChanges = append(cmp.StationChanges, &StationChange{
				Name: newStation.Name, Change: "modified",
				OldModules: oldModules, NewModules: newModules, ModuleDelta: newModules - oldModules,
			})
		}
	}

	for _, oldStation := range oldByID {
		cmp.StationsRemoved++
		modules := len(oldStation.ProductionModules())
		cmp.TotalModulesDelta -= modules
		cmp.StationChanges = append(cmp.StationChanges, &StationChange{
			Name: oldStation.Name, Change: "removed", OldModules: modules, ModuleDelta: -modules,
		})
	}
}

func buildAlerts(cmp *Comparison) {
	for _, wc := range cmp.WareChanges {
		switch {
		case wc.Change == ChangeDegraded && wc.NewStatus == analysis.StatusShortage:
			cmp.Alerts = append(cmp.Alerts, fmt.Sprintf("%s dropped into shortage (%s -> %s)", wc.Ware.Name, wc.OldStatus, wc.NewStatus))
		case wc.Change == ChangeStopped:
			cmp.Alerts = append(cmp.Alerts, fmt.Sprintf("%s production stopped (%d modules removed)", wc.Ware.Name, wc.OldModules))
		}
	}
	if cmp.StationsRemoved > 0 {
		cmp.Alerts = append(cmp.Alerts, fmt.Sprintf("%d station(s) no longer present", cmp.StationsRemoved))
	}
}
