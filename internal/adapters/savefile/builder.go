package savefile

import (
	"fmt"
	"time"

	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

// builder turns raw parse records into the domain snapshot: station types get
// classified, module macros become production modules with canonical wares,
// and linked ships land on their stations.
type builder struct {
	registry *empire.WareRegistry
}

func (b *builder) build(result *parseResult) *empire.Snapshot {
	snap := &empire.Snapshot{
		PlayerName: result.PlayerName,
	}
	if result.SaveDate > 0 {
		sec := int64(result.SaveDate)
		nsec := int64((result.SaveDate - float64(sec)) * float64(time.Second))
		snap.SaveTime = time.Unix(sec, nsec).UTC()
	}

	stations := make(map[string]*empire.Station, len(result.Stations))
	for _, ps := range result.Stations {
		st := b.buildStation(ps)
		stations[ps.ID] = st
		snap.Stations = append(snap.Stations, st)
	}

	assigned := linkShips(result)
	for _, psh := range result.Ships {
		ship := b.buildShip(psh)
		owner, ok := assigned[psh.ID]
		if !ok {
			snap.UnassignedShips = append(snap.UnassignedShips, ship)
			continue
		}
		st := stations[owner.ID]
		ship.AssignedStationID = st.ID
		st.Ships = append(st.Ships, ship)
	}

	return snap
}

func (b *builder) buildStation(ps *parsedStation) *empire.Station {
	st := &empire.Station{
		ID:           ps.ID,
		Name:         stationName(ps),
		Sector:       ps.Sector,
		Type:         empire.StationProduction,
		InputDemands: make(map[string]int, len(ps.InputDesired)),
	}

	trades := make(map[string]*parsedTrade, len(ps.TradeWares))
	for ware, tr := range ps.TradeWares {
		trades[empire.NormalizeWareID(ware)] = tr
	}

	// Station trade stock is recorded per ware, not per module. Attach each
	// ware's stock to the first module producing it so station totals are
	// counted once.
	attached := make(map[string]bool)

	for i, macro := range ps.ModuleMacros {
		if t, ok := empire.ClassifyStationType(macro); ok {
			st.Type = t
		}

		module := &empire.ProductionModule{
			ID:    fmt.Sprintf("%s/%d", ps.ID, i),
			Macro: macro,
		}
		if wareID := empire.WareIDFromMacro(macro); wareID != "" {
			ware := b.registry.Get(wareID)
			module.OutputWare = ware
			if tr, ok := trades[ware.ID]; ok && !attached[ware.ID] {
				attached[ware.ID] = true
				capacity := tr.Desired
				if capacity == 0 {
					capacity = tr.Amount * 2
				}
				module.Output = &empire.TradeResource{
					Ware:     ware,
					Amount:   tr.Amount,
					Capacity: capacity,
				}
			}
		}
		st.Modules = append(st.Modules, module)
	}

	for ware, desired := range ps.InputDesired {
		st.InputDemands[empire.NormalizeWareID(ware)] += desired
	}

	return st
}

func (b *builder) buildShip(ps *parsedShip) *empire.Ship {
	return &empire.Ship{
		ID:            ps.ID,
		Name:          shipName(ps),
		Class:         ps.Class,
		Macro:         ps.Macro,
		Role:          empire.ClassifyShipRole(ps.Purpose, ps.Macro),
		CargoCapacity: ps.CargoCapacity,
		CargoTags:     ps.CargoTags,
	}
}

// stationName prefers the player-given name, then the in-game code, then a
// stable placeholder so every station stays addressable.
func stationName(ps *parsedStation) string {
	switch {
	case ps.Name != "":
		return ps.Name
	case ps.Code != "":
		return "Station " + ps.Code
	}
	return "Station " + ps.ID
}

func shipName(ps *parsedShip) string {
	switch {
	case ps.Name != "":
		return ps.Name
	case ps.Code != "":
		return ps.Code
	}
	return "Ship " + ps.ID
}
