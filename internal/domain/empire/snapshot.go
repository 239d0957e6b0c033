package empire

import "time"

// Snapshot is the normalized model of a single parsed save: every player
// station with its modules and assigned ships, plus the player ships that
// resolved to no station. Built once by the extractor; analysis never
// mutates it.
type Snapshot struct {
	PlayerName      string
	SaveTime        time.Time
	Stations        []*Station
	UnassignedShips []*Ship
}

// TotalProductionModules counts production modules across all stations.
func (s *Snapshot) TotalProductionModules() int {
	total := 0
	for _, st := range s.Stations {
		total += len(st.ProductionModules())
	}
	return total
}

// AssignedShips returns every ship assigned to any station.
func (s *Snapshot) AssignedShips() []*Ship {
	var ships []*Ship
	for _, st := range s.Stations {
		ships = append(ships, st.Ships...)
	}
	return ships
}

// AllShips returns assigned and unassigned player ships.
func (s *Snapshot) AllShips() []*Ship {
	return append(s.AssignedShips(), s.UnassignedShips...)
}

// StationByID returns the station with the given ID, or nil.
func (s *Snapshot) StationByID(id string) *Station {
	for _, st := range s.Stations {
		if st.ID == id {
			return st
		}
	}
	return nil
}
