package savefile

// parsedStation is the raw station record accumulated during the streaming
// pass, before classification and ware normalization happen in the builder.
type parsedStation struct {
	ID           string
	Code         string
	Name         string
	Sector       string
	Macro        string
	ModuleMacros []string
	TradeWares   map[string]*parsedTrade
	InputDesired map[string]int

	// Connection ids of this station's subordinates groups. Ships whose
	// commander reference names one of these ids belong to this station.
	SubordinateConns []string
}

// parsedTrade is the first sell offer observed for one ware at a station.
// The save carries no explicit per-ware storage figure; the offer's desired
// level doubles as the capacity, with amount*2 as the fallback when desired
// is absent.
type parsedTrade struct {
	Ware    string
	Amount  int
	Desired int
}

// parsedShip is the raw ship record from the streaming pass.
type parsedShip struct {
	ID            string
	Code          string
	Name          string
	Class         string
	Macro         string
	Purpose       string
	CargoCapacity int
	CargoTags     string

	// CommanderConn is the connection id named by this ship's commander
	// reference, or empty for an unassigned ship.
	CommanderConn string
}

// parseResult is everything one streaming pass yields. Linking and model
// building operate on this, never on the XML again.
type parseResult struct {
	PlayerName string
	SaveDate   float64
	Stations   []*parsedStation
	Ships      []*parsedShip
	Elements   int
}

func newParsedStation(id string) *parsedStation {
	return &parsedStation{
		ID:           id,
		TradeWares:   make(map[string]*parsedTrade),
		InputDesired: make(map[string]int),
	}
}
