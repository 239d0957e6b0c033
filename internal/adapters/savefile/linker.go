package savefile

// linkShips resolves commander references into station assignments. The
// save can list a ship before or after the station owning its subordinates
// group, so linking runs as a separate pass over the finished records and
// the outcome never depends on document order. Running it twice is a no-op.
func linkShips(result *parseResult) map[string]*parsedStation {
	connToStation := make(map[string]*parsedStation)
	for _, st := range result.Stations {
		for _, conn := range st.SubordinateConns {
			connToStation[conn] = st
		}
	}

	assigned := make(map[string]*parsedStation)
	for _, sh := range result.Ships {
		if sh.CommanderConn == "" {
			continue
		}
		if st, ok := connToStation[sh.CommanderConn]; ok {
			assigned[sh.ID] = st
		}
	}
	return assigned
}
