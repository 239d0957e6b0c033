package gamedata

import (
	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

// ProductionData is the reference record for one ware from the game files:
// identity, display name, transport class, and its production methods.
type ProductionData struct {
	WareID         string                      `json:"ware_id"`
	Name           string                      `json:"name"`
	TransportClass string                      `json:"transport_class"`
	Volume         int                         `json:"volume"`
	PriceMin       int                         `json:"price_min"`
	PriceAvg       int                         `json:"price_avg"`
	PriceMax       int                         `json:"price_max"`
	Methods        []analysis.ProductionMethod `json:"production_methods"`
}

// DefaultMethod returns the method tagged "default", falling back to the
// first listed method. Nil when the ware is not producible.
func (d *ProductionData) DefaultMethod() *analysis.ProductionMethod {
	for i := range d.Methods {
		if d.Methods[i].MethodID == "default" {
			return &d.Methods[i]
		}
	}
	if len(d.Methods) > 0 {
		return &d.Methods[0]
	}
	return nil
}

// Table is a read-only rate table backed by extracted game data. It
// implements analysis.RateTable.
type Table struct {
	wares map[string]*ProductionData
}

func NewTable(wares map[string]*ProductionData) *Table {
	t := &Table{wares: make(map[string]*ProductionData, len(wares))}
	for id, data := range wares {
		t.wares[empire.NormalizeWareID(id)] = data
	}
	return t
}

// Method returns the default production method for a ware, or false for
// wares that are unknown or not producible.
func (t *Table) Method(wareID string) (*analysis.ProductionMethod, bool) {
	data, ok := t.wares[empire.NormalizeWareID(wareID)]
	if !ok {
		return nil, false
	}
	method := data.DefaultMethod()
	if method == nil {
		return nil, false
	}
	return method, true
}

// Ware returns the full reference record for a ware.
func (t *Table) Ware(wareID string) (*ProductionData, bool) {
	data, ok := t.wares[empire.NormalizeWareID(wareID)]
	return data, ok
}

// Len returns the number of wares in the table.
func (t *Table) Len() int {
	return len(t.wares)
}

// set replaces or inserts a ware record. Used by the override loader.
func (t *Table) set(data *ProductionData) {
	t.wares[empire.NormalizeWareID(data.WareID)] = data
}
