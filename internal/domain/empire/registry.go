package empire

import "strings"

// WareRegistry returns a single canonical *Ware per normalized ware ID.
//
// Lookups for wares outside the built-in database synthesize an Unknown-
// category entry once and return the same instance on every later call, so a
// ware seen under several raw spellings never produces duplicate identities
// downstream.
type WareRegistry struct {
	wares map[string]*Ware
}

// NewWareRegistry creates a registry seeded with the built-in ware database.
func NewWareRegistry() *WareRegistry {
	r := &WareRegistry{wares: make(map[string]*Ware, len(builtinWares))}
	for _, w := range builtinWares {
		ware := w
		r.wares[ware.ID] = &ware
	}
	return r
}

// NormalizeWareID lowercases a raw ware ID and strips underscores and spaces.
// X4 ware IDs are lowercase without separators ("energycells",
// "refinedmetals"); save files and macros occasionally carry either.
func NormalizeWareID(id string) string {
	id = strings.ToLower(id)
	id = strings.ReplaceAll(id, "_", "")
	return strings.ReplaceAll(id, " ", "")
}

// Get returns the canonical ware for an ID, synthesizing an Unknown entry for
// IDs outside the database.
func (r *WareRegistry) Get(id string) *Ware {
	normalized := NormalizeWareID(id)
	if ware, ok := r.wares[normalized]; ok {
		return ware
	}

	ware := &Ware{
		ID:       normalized,
		Name:     titleFromID(id),
		Category: CategoryUnknown,
	}
	r.wares[normalized] = ware
	return ware
}

// Known reports whether the ID resolves to a built-in or previously
// synthesized ware without creating one.
func (r *WareRegistry) Known(id string) bool {
	_, ok := r.wares[NormalizeWareID(id)]
	return ok
}

// titleFromID turns a raw ware ID into a readable display name
// ("hull_parts" -> "Hull Parts").
func titleFromID(id string) string {
	words := strings.FieldsFunc(strings.ToLower(id), func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return id
	}
	return strings.Join(words, " ")
}

// builtinWares is the tier-based X4 ware database. Raw materials are the
// mineable tier; everything above is produced from the tier below it.
var builtinWares = []Ware{
	// Raw (mined or collected)
	{"helium", "Helium", CategoryRaw},
	{"hydrogen", "Hydrogen", CategoryRaw},
	{"ice", "Ice", CategoryRaw},
	{"methane", "Methane", CategoryRaw},
	{"ore", "Ore", CategoryRaw},
	{"rawscrap", "Raw Scrap", CategoryRaw},
	{"silicon", "Silicon", CategoryRaw},
	{"nividium", "Nividium", CategoryRaw},

	// Tier 1 - basic processed materials
	{"antimattercells", "Antimatter Cells", CategoryTier1},
	{"computronicsubstrate", "Computronic Substrate", CategoryTier1},
	{"energycells", "Energy Cells", CategoryTier1},
	{"graphene", "Graphene", CategoryTier1},
	{"metallicmicrolattice", "Metallic Microlattice", CategoryTier1},
	{"proteinpaste", "Protein Paste", CategoryTier1},
	{"refinedmetals", "Refined Metals", CategoryTier1},
	{"scrapmetal", "Scrap Metal", CategoryTier1},
	{"siliconwafers", "Silicon Wafers", CategoryTier1},
	{"stimulants", "Stimulants", CategoryTier1},
	{"superfluidcoolant", "Superfluid Coolant", CategoryTier1},
	{"teladianium", "Teladianium", CategoryTier1},
	{"water", "Water", CategoryTier1},

	// Tier 2 - components and intermediate goods
	{"advancedcomposites", "Advanced Composites", CategoryTier2},
	{"bogas", "BoGas", CategoryTier2},
	{"cheltmeat", "Chelt Meat", CategoryTier2},
	{"engineparts", "Engine Parts", CategoryTier2},
	{"hullparts", "Hull Parts", CategoryTier2},
	{"majasnails", "Maja Snails", CategoryTier2},
	{"meat", "Meat", CategoryTier2},
	{"microchips", "Microchips", CategoryTier2},
	{"plankton", "Plankton", CategoryTier2},
	{"plasmaconductors", "Plasma Conductors", CategoryTier2},
	{"quantumtubes", "Quantum Tubes", CategoryTier2},
	{"scanningarrays", "Scanning Arrays", CategoryTier2},
	{"scruffinfruit", "Scruffin Fruit", CategoryTier2},
	{"siliconcarbide", "Silicon Carbide", CategoryTier2},
	{"smartchips", "Smart Chips", CategoryTier2},
	{"sojabeans", "Soja Beans", CategoryTier2},
	{"spices", "Spices", CategoryTier2},
	{"sunriseflowers", "Sunrise Flowers", CategoryTier2},
	{"swampplant", "Swamp Plant", CategoryTier2},
	{"terranmre", "Terran MRE", CategoryTier2},
	{"wheat", "Wheat", CategoryTier2},

	// Tier 3 - advanced products
	{"advancedelectronics", "Advanced Electronics", CategoryTier3},
	{"antimatterconverters", "Antimatter Converters", CategoryTier3},
	{"bofu", "BoFu", CategoryTier3},
	{"claytronics", "Claytronics", CategoryTier3},
	{"dronecomponents", "Drone Components", CategoryTier3},
	{"fieldcoils", "Field Coils", CategoryTier3},
	{"foodrations", "Food Rations", CategoryTier3},
	{"majadust", "Maja Dust", CategoryTier3},
	{"medicalsupplies", "Medical Supplies", CategoryTier3},
	{"missilecomponents", "Missile Components", CategoryTier3},
	{"nostropolil", "Nostrop Oil", CategoryTier3},
	{"shieldcomponents", "Shield Components", CategoryTier3},
	{"sojahusk", "Soja Husk", CategoryTier3},
	{"spacefuel", "Spacefuel", CategoryTier3},
	{"spaceweed", "Spaceweed", CategoryTier3},
	{"turretcomponents", "Turret Components", CategoryTier3},
	{"weaponcomponents", "Weapon Components", CategoryTier3},
}
