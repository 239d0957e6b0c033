package gamedata

import (
	"encoding/xml"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

// waresPath is where the game stores its ware reference data inside the
// catalogs.
const waresPath = "libraries/wares.xml"

// Extractor builds a rate table from the game's reference data, going
// through the cache when the game version fingerprint still matches.
type Extractor struct {
	gameDir string
	cache   *Cache
}

// NewExtractor creates an extractor for a game directory. A nil cache
// disables caching entirely.
func NewExtractor(gameDir string, cache *Cache) *Extractor {
	return &Extractor{gameDir: gameDir, cache: cache}
}

// Extract returns the rate table for the configured game directory. The
// cache is consulted first; on a miss the catalogs are read, parsed and the
// result written back under the current fingerprint.
func (e *Extractor) Extract() (*Table, error) {
	fingerprint := Fingerprint(e.gameDir)

	if e.cache != nil {
		if wares, ok := e.cache.Load(e.gameDir, fingerprint); ok {
			log.Printf("loaded %d wares from cache", len(wares))
			return NewTable(wares), nil
		}
	}

	wares, err := e.extractFromGameFiles()
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Save(e.gameDir, fingerprint, wares); err != nil {
			log.Printf("could not write wares cache: %v", err)
		}
	}
	return NewTable(wares), nil
}

func (e *Extractor) extractFromGameFiles() (map[string]*ProductionData, error) {
	data, resolver, err := e.readWaresXML()
	if err != nil {
		return nil, err
	}

	wares, err := parseWaresXML(data, resolver)
	if err != nil {
		return nil, err
	}
	log.Printf("extracted %d wares from game files", len(wares))
	return wares, nil
}

// readWaresXML locates wares.xml: the catalogs first (base version over
// diffs), then a direct file for unpacked installations.
func (e *Extractor) readWaresXML() ([]byte, func(string) string, error) {
	catalog, catErr := OpenCatalog(e.gameDir)
	if catErr == nil {
		if data, err := catalog.ReadBaseFile(waresPath); err == nil {
			return data, NewTextResolver(catalog).Resolve, nil
		}
		if data, err := catalog.ReadFile(waresPath); err == nil {
			return data, NewTextResolver(catalog).Resolve, nil
		}
	}

	direct := filepath.Join(e.gameDir, filepath.FromSlash(waresPath))
	if data, err := os.ReadFile(direct); err == nil {
		// No catalogs means no localization files either; names stay as
		// their references.
		return data, func(s string) string { return s }, nil
	}

	if catErr != nil {
		return nil, nil, fmt.Errorf("locate %s: %w", waresPath, catErr)
	}
	return nil, nil, fmt.Errorf("%s not found in %s", waresPath, e.gameDir)
}

type waresDocument struct {
	Wares []wareElement `xml:"ware"`
}

type wareElement struct {
	ID        string `xml:"id,attr"`
	Name      string `xml:"name,attr"`
	Transport string `xml:"transport,attr"`
	Volume    int    `xml:"volume,attr"`
	Price     *struct {
		Min     int `xml:"min,attr"`
		Average int `xml:"average,attr"`
		Max     int `xml:"max,attr"`
	} `xml:"price"`
	Production []struct {
		Method  string  `xml:"method,attr"`
		Time    float64 `xml:"time,attr"`
		Amount  int     `xml:"amount,attr"`
		Primary *struct {
			Wares []struct {
				Ware   string `xml:"ware,attr"`
				Amount int    `xml:"amount,attr"`
			} `xml:"ware"`
		} `xml:"primary"`
	} `xml:"production"`
}

func parseWaresXML(data []byte, resolve func(string) string) (map[string]*ProductionData, error) {
	var doc waresDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", waresPath, err)
	}

	wares := make(map[string]*ProductionData, len(doc.Wares))
	for _, w := range doc.Wares {
		if w.ID == "" {
			continue
		}

		name := w.Name
		if strings.HasPrefix(name, "{") {
			name = resolve(name)
		}
		if name == "" {
			name = w.ID
		}

		transport := w.Transport
		if transport == "" {
			transport = "container"
		}
		volume := w.Volume
		if volume <= 0 {
			volume = 1
		}

		ware := &ProductionData{
			WareID:         w.ID,
			Name:           name,
			TransportClass: transport,
			Volume:         volume,
		}
		if w.Price != nil {
			ware.PriceMin = w.Price.Min
			ware.PriceAvg = w.Price.Average
			ware.PriceMax = w.Price.Max
		}

		for _, p := range w.Production {
			methodID := p.Method
			if methodID == "" {
				methodID = "default"
			}
			amount := p.Amount
			if amount <= 0 {
				amount = 1
			}
			method := analysis.ProductionMethod{
				MethodID:       methodID,
				CycleSeconds:   p.Time,
				AmountPerCycle: amount,
			}
			if p.Primary != nil {
				for _, res := range p.Primary.Wares {
					if res.Ware == "" {
						continue
					}
					resAmount := res.Amount
					if resAmount <= 0 {
						resAmount = 1
					}
					method.Resources = append(method.Resources, analysis.ResourceRequirement{
						WareID: empire.NormalizeWareID(res.Ware),
						Amount: resAmount,
					})
				}
			}
			ware.Methods = append(ware.Methods, method)
		}

		wares[empire.NormalizeWareID(w.ID)] = ware
	}
	return wares, nil
}
