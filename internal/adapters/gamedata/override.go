package gamedata

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

// overrideFile is the YAML shape for user-supplied rate overrides:
//
//	wares:
//	  energycells:
//	    time: 60
//	    amount: 175
//	  hullparts:
//	    time: 900
//	    amount: 295
//	    resources:
//	      energycells: 240
//	      refinedmetals: 280
type overrideFile struct {
	Wares map[string]overrideWare `yaml:"wares"`
}

type overrideWare struct {
	Name      string         `yaml:"name"`
	Time      float64        `yaml:"time"`
	Amount    int            `yaml:"amount"`
	Resources map[string]int `yaml:"resources"`
}

// ApplyOverrides loads a YAML override file and replaces the default
// production method of each listed ware. Wares absent from the table are
// added, so overrides also work without any game directory at all.
func ApplyOverrides(table *Table, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse overrides %s: %w", path, err)
	}

	for wareID, o := range file.Wares {
		if o.Time <= 0 || o.Amount <= 0 {
			return fmt.Errorf("override for %s: time and amount must be positive", wareID)
		}

		method := analysis.ProductionMethod{
			MethodID:       "default",
			CycleSeconds:   o.Time,
			AmountPerCycle: o.Amount,
		}
		resIDs := make([]string, 0, len(o.Resources))
		for resID := range o.Resources {
			resIDs = append(resIDs, resID)
		}
		sort.Strings(resIDs)
		for _, resID := range resIDs {
			method.Resources = append(method.Resources, analysis.ResourceRequirement{
				WareID: empire.NormalizeWareID(resID),
				Amount: o.Resources[resID],
			})
		}

		name := o.Name
		if name == "" {
			name = wareID
		}
		if existing, ok := table.Ware(wareID); ok {
			existing.Methods = []analysis.ProductionMethod{method}
			continue
		}
		table.set(&ProductionData{
			WareID:         empire.NormalizeWareID(wareID),
			Name:           name,
			TransportClass: "container",
			Volume:         1,
			Methods:        []analysis.ProductionMethod{method},
		})
	}
	return nil
}
