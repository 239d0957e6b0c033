package savefile

import (
	"context"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

// progressEvery is how many XML elements pass between progress callbacks.
const progressEvery = 50000

// extractor runs a single forward pass over the save XML and accumulates
// raw station and ship records. It never buffers the document; state is a
// stack of element frames mirroring the open elements.
type extractor struct {
	reporter ProgressReporter

	frames []frame
	result *parseResult

	sector string
}

// frame is one open element. Component frames additionally own the station
// or ship record being filled while they are open.
type frame struct {
	name string

	station *parsedStation
	ship    *parsedShip

	inInfo         bool
	inConstruction bool
	inCommander    bool
}

// extract parses the save at path into raw records. The reporter may be nil.
func extract(ctx context.Context, path string, reporter ProgressReporter) (*parseResult, error) {
	r, err := openSave(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if reporter == nil {
		reporter = NopReporter{}
	}
	ex := &extractor{
		reporter: reporter,
		result:   &parseResult{},
	}
	if err := ex.run(ctx, r); err != nil {
		return nil, err
	}
	return ex.result, nil
}

func (ex *extractor) run(ctx context.Context, r io.Reader) error {
	dec := xml.NewDecoder(r)
	for {
		if ex.result.Elements%progressEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return empire.NewMalformedSaveError(ex.currentPath(), err.Error())
		}
		switch t := tok.(type) {
		case xml.StartElement:
			ex.start(t)
		case xml.EndElement:
			ex.end()
		}
	}
	ex.reporter.Progress("done", ex.result.Elements)
	return nil
}

func (ex *extractor) start(el xml.StartElement) {
	ex.result.Elements++
	if ex.result.Elements%progressEvery == 0 {
		ex.reporter.Progress(el.Name.Local, ex.result.Elements)
	}

	f := frame{name: el.Name.Local}
	if n := len(ex.frames); n > 0 {
		parent := ex.frames[n-1]
		f.station = parent.station
		f.ship = parent.ship
		f.inInfo = parent.inInfo
		f.inConstruction = parent.inConstruction
		f.inCommander = parent.inCommander
	}

	switch el.Name.Local {
	case elemInfo:
		f.inInfo = true
	case elemSave:
		if f.inInfo {
			if v := attr(el, attrDate); v != "" {
				ex.result.SaveDate, _ = strconv.ParseFloat(v, 64)
			}
		}
	case elemPlayer:
		if f.inInfo && ex.result.PlayerName == "" {
			ex.result.PlayerName = attr(el, attrName)
		}
	case elemComponent:
		ex.startComponent(el, &f)
	case elemConnection:
		ex.startConnection(el, &f)
	case elemConnected:
		if f.inCommander && f.ship != nil && f.ship.CommanderConn == "" {
			f.ship.CommanderConn = attr(el, attrConnection)
		}
	case elemConstruction, elemSequence:
		if f.station != nil {
			f.inConstruction = true
		}
	case elemEntry:
		if f.inConstruction && f.station != nil {
			if m := attr(el, attrMacro); m != "" {
				f.station.ModuleMacros = append(f.station.ModuleMacros, m)
			}
		}
	case elemTrade:
		ex.startTrade(el, &f)
	case elemCargo:
		if f.ship != nil {
			if v := attr(el, attrMax); v != "" {
				f.ship.CargoCapacity, _ = strconv.Atoi(v)
			}
			if tags := attr(el, attrTags); tags != "" {
				f.ship.CargoTags = tags
			}
		}
	}

	ex.frames = append(ex.frames, f)
}

func (ex *extractor) startComponent(el xml.StartElement, f *frame) {
	class := attr(el, attrClass)
	owner := attr(el, attrOwner)

	switch {
	case class == classSector:
		name := attr(el, attrName)
		if name == "" {
			name = attr(el, attrMacro)
		}
		ex.sector = name
	case class == classStation && owner == ownerPlayer:
		st := newParsedStation(componentID(el))
		st.Code = attr(el, attrCode)
		st.Name = attr(el, attrName)
		st.Macro = attr(el, attrMacro)
		st.Sector = ex.sector
		f.station = st
		f.ship = nil
		ex.result.Stations = append(ex.result.Stations, st)
	case shipClasses[class] && owner == ownerPlayer:
		sh := &parsedShip{
			ID:      componentID(el),
			Code:    attr(el, attrCode),
			Name:    attr(el, attrName),
			Class:   class,
			Macro:   attr(el, attrMacro),
			Purpose: attr(el, attrPurpose),
		}
		f.ship = sh
		f.station = nil
		ex.result.Ships = append(ex.result.Ships, sh)
	}
}

func (ex *extractor) startConnection(el xml.StartElement, f *frame) {
	kind := attr(el, attrConnection)
	switch kind {
	case connSubordinates:
		if f.station != nil {
			if id := attr(el, attrID); id != "" {
				f.station.SubordinateConns = append(f.station.SubordinateConns, id)
			}
		}
	case connCommander:
		if f.ship != nil {
			f.inCommander = true
		}
	}
}

// startTrade records one trade offer. A seller offer carries the ware's
// current stock and desired level; a buyer offer feeds the station's input
// demand, preferring desired over the listed amount. Offers with neither
// role are reservations and are skipped.
func (ex *extractor) startTrade(el xml.StartElement, f *frame) {
	if f.station == nil {
		return
	}
	ware := attr(el, attrWare)
	if ware == "" {
		return
	}
	amount, _ := strconv.Atoi(attr(el, attrAmount))
	desired, _ := strconv.Atoi(attr(el, attrDesired))

	switch {
	case attr(el, attrSeller) != "":
		// Only the first sell offer per ware counts; later offers for the
		// same ware restate the same storage.
		if _, seen := f.station.TradeWares[ware]; seen {
			return
		}
		f.station.TradeWares[ware] = &parsedTrade{Ware: ware, Amount: amount, Desired: desired}
	case attr(el, attrBuyer) != "":
		demand := desired
		if demand == 0 {
			demand = amount
		}
		if demand > 0 {
			f.station.InputDesired[ware] += demand
		}
	}
}

func (ex *extractor) end() {
	if n := len(ex.frames); n > 0 {
		ex.frames = ex.frames[:n-1]
	}
}

func (ex *extractor) currentPath() string {
	if len(ex.frames) == 0 {
		return elemSave
	}
	return ex.frames[len(ex.frames)-1].name
}

// componentID prefers the save's numeric component id and falls back to the
// human-visible code when a modded save omits it.
func componentID(el xml.StartElement) string {
	if id := attr(el, attrID); id != "" {
		return id
	}
	return attr(el, attrCode)
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
