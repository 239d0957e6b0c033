package empire

import "strings"

// StationType is the inferred kind of a station, derived from its
// construction-entry macros.
type StationType string

const (
	StationProduction    StationType = "production"
	StationWharf         StationType = "wharf"
	StationShipyard      StationType = "shipyard"
	StationEquipmentDock StationType = "equipmentdock"
	StationDefence       StationType = "defence"
)

// Station is a player-owned facility: its modules, its assigned ships, and the
// input demand it declares through buy orders. InputDemands is captured even
// for stations without production modules — shipyards consume components
// without producing any ware.
type Station struct {
	ID           string
	Name         string
	Sector       string
	Type         StationType
	Modules      []*ProductionModule
	Ships        []*Ship
	InputDemands map[string]int // ware ID -> desired amount
}

// ProductionModules returns only the modules whose macro marks them as
// production.
func (s *Station) ProductionModules() []*ProductionModule {
	var prod []*ProductionModule
	for _, m := range s.Modules {
		if m.IsProduction() {
			prod = append(prod, m)
		}
	}
	return prod
}

// Traders returns the assigned ships with the trader role.
func (s *Station) Traders() []*Ship {
	return s.shipsByRole(RoleTrader)
}

// Miners returns the assigned ships with the miner role.
func (s *Station) Miners() []*Ship {
	return s.shipsByRole(RoleMiner)
}

func (s *Station) shipsByRole(role ShipRole) []*Ship {
	var ships []*Ship
	for _, ship := range s.Ships {
		if ship.Role == role {
			ships = append(ships, ship)
		}
	}
	return ships
}

// TotalCargoCapacity sums the cargo capacity of every assigned ship.
func (s *Station) TotalCargoCapacity() int {
	total := 0
	for _, ship := range s.Ships {
		total += ship.CargoCapacity
	}
	return total
}

// UniqueProducts returns the distinct output wares of the station's
// production modules.
func (s *Station) UniqueProducts() []*Ware {
	seen := make(map[string]bool)
	var products []*Ware
	for _, m := range s.ProductionModules() {
		if m.OutputWare == nil || seen[m.OutputWare.ID] {
			continue
		}
		seen[m.OutputWare.ID] = true
		products = append(products, m.OutputWare)
	}
	return products
}

// ConsumesWare reports whether the station declares buy-order demand for the
// ware, or any of its production modules lists it as an input.
func (s *Station) ConsumesWare(wareID string) bool {
	if _, ok := s.InputDemands[wareID]; ok {
		return true
	}
	for _, m := range s.Modules {
		for _, in := range m.Inputs {
			if in.Ware != nil && in.Ware.ID == wareID {
				return true
			}
		}
	}
	return false
}

// BuildsShips reports whether the station is a ship-building facility.
func (s *Station) BuildsShips() bool {
	return s.Type == StationWharf || s.Type == StationShipyard
}

// ClassifyStationType infers the station kind from a construction-entry
// macro. Stations start as production; the first macro that names a
// ship-building or defence facility reclassifies them.
func ClassifyStationType(macro string) (StationType, bool) {
	macro = strings.ToLower(macro)
	switch {
	case strings.Contains(macro, "shipyard"):
		return StationShipyard, true
	case strings.Contains(macro, "wharf"):
		return StationWharf, true
	case strings.Contains(macro, "equipmentdock"):
		return StationEquipmentDock, true
	case strings.Contains(macro, "defence"), strings.Contains(macro, "pier"):
		return StationDefence, true
	}
	return StationProduction, false
}
