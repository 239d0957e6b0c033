package savefile

// Element and attribute names of the X4 save format. These are a fixed
// external contract; keep every literal here rather than scattered through
// the extractor.
const (
	elemSave         = "save"
	elemInfo         = "info"
	elemPlayer       = "player"
	elemComponent    = "component"
	elemConnection   = "connection"
	elemConnected    = "connected"
	elemConstruction = "construction"
	elemSequence     = "sequence"
	elemEntry        = "entry"
	elemTrade        = "trade"
	elemCargo        = "cargo"

	attrClass      = "class"
	attrOwner      = "owner"
	attrCode       = "code"
	attrID         = "id"
	attrName       = "name"
	attrMacro      = "macro"
	attrPurpose    = "purpose"
	attrConnection = "connection"
	attrWare       = "ware"
	attrAmount     = "amount"
	attrDesired    = "desired"
	attrSeller     = "seller"
	attrBuyer      = "buyer"
	attrMax        = "max"
	attrTags       = "tags"
	attrDate       = "date"
)

// Component classes and connection kinds that the extractor reacts to.
const (
	classStation = "station"
	classSector  = "sector"

	ownerPlayer = "player"

	connSubordinates = "subordinates"
	connCommander    = "commander"
)

// shipClasses are the component classes that identify mobile units. Docking
// bays and station modules use other classes and must not match.
var shipClasses = map[string]bool{
	"ship_xs": true,
	"ship_s":  true,
	"ship_m":  true,
	"ship_l":  true,
	"ship_xl": true,
}
