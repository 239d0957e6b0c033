package empire

import "strings"

// ShipRole is the inferred duty of a ship.
type ShipRole string

const (
	RoleTrader  ShipRole = "trader"
	RoleMiner   ShipRole = "miner"
	RoleBuilder ShipRole = "builder"
	RoleCombat  ShipRole = "combat"
	RoleOther   ShipRole = "other"
)

// CargoKind partitions mining cargo into the pools that matter for coverage:
// solid (ore, silicon) versus liquid (gases and liquids share a pool in X4).
type CargoKind string

const (
	CargoSolid  CargoKind = "solid"
	CargoLiquid CargoKind = "liquid"
)

// Ship is a player-owned mobile unit, optionally assigned to a station.
type Ship struct {
	ID                string
	Name              string
	Class             string // component class tag, e.g. "ship_m"
	Macro             string
	Role              ShipRole
	CargoCapacity     int
	CargoTags         string // raw tags from the save, e.g. "solid", "liquid"
	AssignedStationID string // empty when unassigned
}

// IsMiner reports whether the ship's inferred role is mining.
func (s *Ship) IsMiner() bool {
	return s.Role == RoleMiner
}

// MiningCargoKind returns the cargo pool this ship mines into. The cargo tags
// from the save win; ships without tags fall back to a macro-name heuristic
// and finally default to solid.
func (s *Ship) MiningCargoKind() CargoKind {
	tags := strings.ToLower(s.CargoTags)
	switch {
	case strings.Contains(tags, "liquid"), strings.Contains(tags, "gas"):
		return CargoLiquid
	case strings.Contains(tags, "solid"):
		return CargoSolid
	}

	macro := strings.ToLower(s.Macro)
	if strings.Contains(macro, "liquid") || strings.Contains(macro, "gas") {
		return CargoLiquid
	}
	return CargoSolid
}

// ClassifyShipRole infers a ship's role from its purpose tag first (the save's
// own statement of intent) and falls back to macro-name matching. This is
// heuristic by nature; anything unrecognized is RoleOther rather than a guess.
func ClassifyShipRole(purpose, macro string) ShipRole {
	purpose = strings.ToLower(purpose)
	macro = strings.ToLower(macro)

	switch {
	case strings.Contains(purpose, "trade"):
		return RoleTrader
	case strings.Contains(purpose, "mine"):
		return RoleMiner
	case strings.Contains(purpose, "build"), strings.Contains(purpose, "moveto"):
		return RoleBuilder
	}

	switch {
	case strings.Contains(macro, "trans"), strings.Contains(macro, "freighter"), strings.Contains(macro, "hauler"):
		return RoleTrader
	case strings.Contains(macro, "miner"), strings.Contains(macro, "mining"):
		return RoleMiner
	case strings.Contains(macro, "builder"), strings.Contains(macro, "construct"):
		return RoleBuilder
	case strings.Contains(macro, "fighter"), strings.Contains(macro, "corvette"), strings.Contains(macro, "frigate"),
		strings.Contains(macro, "carrier"), strings.Contains(macro, "destroyer"), strings.Contains(macro, "battleship"):
		return RoleCombat
	}

	return RoleOther
}
