package gamedata

import (
	"encoding/xml"
	"fmt"
	"log"
	"strings"
)

// englishLanguage is X4's language code for English localization files.
const englishLanguage = 44

// TextResolver resolves the game's {pageID,textID} references against the
// localization files (t/XXXX-lNNN.xml). Texts load lazily on the first
// resolve and stay cached for the resolver's lifetime.
type TextResolver struct {
	catalog  *Catalog
	language int
	pages    map[int]map[int]string
	loaded   bool
}

func NewTextResolver(catalog *Catalog) *TextResolver {
	return &TextResolver{catalog: catalog, language: englishLanguage}
}

// Resolve turns a "{page,id}" reference into its localized text. Plain
// strings and unknown references pass through unchanged, so callers can feed
// every name attribute through here.
func (r *TextResolver) Resolve(ref string) string {
	page, id, ok := parseTextRef(ref)
	if !ok {
		return ref
	}

	r.load()
	if text, ok := r.pages[page][id]; ok {
		return text
	}
	return ref
}

func (r *TextResolver) load() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.pages = make(map[int]map[int]string)

	suffix := fmt.Sprintf("-l%03d.xml", r.language)
	files := 0
	for _, name := range r.catalog.ListFiles("t/*.xml") {
		if !strings.Contains(name, suffix) {
			continue
		}
		if err := r.loadFile(name); err != nil {
			log.Printf("skipping localization file %s: %v", name, err)
			continue
		}
		files++
	}
	log.Printf("loaded %d localization pages from %d files", len(r.pages), files)
}

func (r *TextResolver) loadFile(name string) error {
	data, err := r.catalog.ReadBaseFile(name)
	if err != nil {
		return err
	}

	var doc struct {
		Pages []struct {
			ID    int `xml:"id,attr"`
			Texts []struct {
				ID   int    `xml:"id,attr"`
				Text string `xml:",chardata"`
			} `xml:"t"`
		} `xml:"page"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return err
	}

	for _, page := range doc.Pages {
		texts := r.pages[page.ID]
		if texts == nil {
			texts = make(map[int]string)
			r.pages[page.ID] = texts
		}
		for _, t := range page.Texts {
			texts[t.ID] = t.Text
		}
	}
	return nil
}

// parseTextRef accepts "{page,id}" and rejects everything else.
func parseTextRef(ref string) (page, id int, ok bool) {
	if len(ref) < 5 || ref[0] != '{' || ref[len(ref)-1] != '}' {
		return 0, 0, false
	}
	body := ref[1 : len(ref)-1]
	comma := strings.IndexByte(body, ',')
	if comma < 0 {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(body[:comma], "%d", &page); err != nil {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(body[comma+1:], "%d", &id); err != nil {
		return 0, 0, false
	}
	return page, id, true
}
