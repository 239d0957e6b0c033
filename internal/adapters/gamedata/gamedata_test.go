package gamedata

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/x4empire/internal/domain/analysis"
)

const sampleWaresXML = `<wares>
  <ware id="energycells" name="{20201,701}" transport="container" volume="1">
    <price min="10" average="16" max="22"/>
    <production time="60" amount="175" method="default"/>
  </ware>
  <ware id="hullparts" name="Hull Parts" transport="container" volume="12">
    <production time="900" amount="295" method="default">
      <primary>
        <ware ware="energycells" amount="240"/>
        <ware ware="refinedmetals" amount="280"/>
      </primary>
    </production>
  </ware>
  <ware id="ore" name="Ore" transport="solid" volume="10"/>
</wares>`

const sampleTextXML = `<language id="44">
  <page id="20201">
    <t id="701">Energy Cells</t>
  </page>
</language>`

// writeCatalogPair writes a .cat/.dat pair holding the given files in order.
func writeCatalogPair(t *testing.T, dir, name string, files map[string]string, order []string) {
	t.Helper()
	var cat, dat []byte
	for _, fname := range order {
		content := files[fname]
		cat = append(cat, []byte(fmt.Sprintf("%s %d 1700000000 da39a3ee\n", fname, len(content)))...)
		dat = append(dat, []byte(content)...)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".cat"), cat, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".dat"), dat, 0o644))
}

func writeGameDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeCatalogPair(t, dir, "01", map[string]string{
		"t/0001-l044.xml": sampleTextXML,
	}, []string{"t/0001-l044.xml"})
	writeCatalogPair(t, dir, "08", map[string]string{
		"libraries/wares.xml": sampleWaresXML,
	}, []string{"libraries/wares.xml"})
	return dir
}

func TestCatalog_ReadFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeCatalogPair(t, dir, "01", map[string]string{
		"libraries/wares.xml": "<wares/>",
		"t/0001-l044.xml":     sampleTextXML,
	}, []string{"libraries/wares.xml", "t/0001-l044.xml"})

	// Act
	catalog, err := OpenCatalog(dir)
	require.NoError(t, err)

	// Assert
	data, err := catalog.ReadFile("libraries/wares.xml")
	require.NoError(t, err)
	assert.Equal(t, "<wares/>", string(data))

	data, err = catalog.ReadFile(`t\0001-l044.xml`)
	require.NoError(t, err)
	assert.Equal(t, sampleTextXML, string(data))

	_, err = catalog.ReadFile("libraries/missing.xml")
	assert.Error(t, err)
}

func TestCatalog_LaterCatalogOverrides(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeCatalogPair(t, dir, "01", map[string]string{"libraries/wares.xml": "old"}, []string{"libraries/wares.xml"})
	writeCatalogPair(t, dir, "02", map[string]string{"libraries/wares.xml": "new"}, []string{"libraries/wares.xml"})

	// Act
	catalog, err := OpenCatalog(dir)
	require.NoError(t, err)
	data, err := catalog.ReadFile("libraries/wares.xml")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCatalog_ReadBaseFileSkipsDiffs(t *testing.T) {
	// Arrange: the extension ships a <diff> patch; the base file is larger.
	dir := t.TempDir()
	base := "<wares>" + sampleWaresXML + "</wares>"
	writeCatalogPair(t, dir, "01", map[string]string{"libraries/wares.xml": base}, []string{"libraries/wares.xml"})
	writeCatalogPair(t, dir, "02", map[string]string{"libraries/wares.xml": `<diff><add sel="/wares"/></diff>`}, []string{"libraries/wares.xml"})

	// Act
	catalog, err := OpenCatalog(dir)
	require.NoError(t, err)
	data, err := catalog.ReadBaseFile("libraries/wares.xml")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, base, string(data))
}

func TestTextResolver_Resolve(t *testing.T) {
	// Arrange
	dir := writeGameDir(t)
	catalog, err := OpenCatalog(dir)
	require.NoError(t, err)
	resolver := NewTextResolver(catalog)

	// Act & Assert
	assert.Equal(t, "Energy Cells", resolver.Resolve("{20201,701}"))
	assert.Equal(t, "{99999,1}", resolver.Resolve("{99999,1}"))
	assert.Equal(t, "Plain Name", resolver.Resolve("Plain Name"))
}

func TestExtractor_Extract(t *testing.T) {
	// Arrange
	dir := writeGameDir(t)
	extractor := NewExtractor(dir, nil)

	// Act
	table, err := extractor.Extract()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	method, ok := table.Method("energycells")
	require.True(t, ok)
	assert.InDelta(t, 10500.0, method.UnitsPerHour(), 0.001) // 3600/60 * 175

	method, ok = table.Method("hullparts")
	require.True(t, ok)
	assert.InDelta(t, 1180.0, method.UnitsPerHour(), 0.001) // 3600/900 * 295
	assert.InDelta(t, 960.0, method.ResourcePerHour("energycells"), 0.001)

	// Raw wares have no production method.
	_, ok = table.Method("ore")
	assert.False(t, ok)

	// Names resolve through the localization files.
	ware, ok := table.Ware("energycells")
	require.True(t, ok)
	assert.Equal(t, "Energy Cells", ware.Name)
}

func TestExtractor_CacheRoundTrip(t *testing.T) {
	// Arrange
	gameDir := writeGameDir(t)
	cacheDir := t.TempDir()
	cache := NewCache(cacheDir)

	// Act: first run extracts and populates the cache.
	table, err := NewExtractor(gameDir, cache).Extract()
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	// Assert: the cache now hits for the same fingerprint...
	fingerprint := Fingerprint(gameDir)
	wares, ok := cache.Load(gameDir, fingerprint)
	require.True(t, ok)
	assert.Len(t, wares, 3)

	// ...and a second extraction through the cache matches the first.
	cached, err := NewExtractor(gameDir, cache).Extract()
	require.NoError(t, err)
	method, ok := cached.Method("hullparts")
	require.True(t, ok)
	assert.InDelta(t, 1180.0, method.UnitsPerHour(), 0.001)
}

func TestCache_FingerprintMismatch(t *testing.T) {
	// Arrange
	gameDir := writeGameDir(t)
	cache := NewCache(t.TempDir())
	require.NoError(t, cache.Save(gameDir, "fp-old", map[string]*ProductionData{
		"ore": {WareID: "ore", Name: "Ore"},
	}))

	// Act
	_, okSame := cache.Load(gameDir, "fp-old")
	_, okChanged := cache.Load(gameDir, "fp-new")
	_, okOtherDir := cache.Load("/elsewhere", "fp-old")

	// Assert
	assert.True(t, okSame)
	assert.False(t, okChanged)
	assert.False(t, okOtherDir)
}

func TestApplyOverrides(t *testing.T) {
	// Arrange
	table := NewTable(map[string]*ProductionData{
		"energycells": {
			WareID: "energycells",
			Name:   "Energy Cells",
			Methods: []analysis.ProductionMethod{
				{MethodID: "default", CycleSeconds: 60, AmountPerCycle: 175},
			},
		},
	})
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`wares:
  energycells:
    time: 30
    amount: 175
  claytronics:
    time: 900
    amount: 108
    resources:
      energycells: 140
`), 0o644))

	// Act
	err := ApplyOverrides(table, path)

	// Assert
	require.NoError(t, err)

	method, ok := table.Method("energycells")
	require.True(t, ok)
	assert.InDelta(t, 21000.0, method.UnitsPerHour(), 0.001)

	method, ok = table.Method("claytronics")
	require.True(t, ok)
	assert.InDelta(t, 432.0, method.UnitsPerHour(), 0.001)
	assert.InDelta(t, 560.0, method.ResourcePerHour("energycells"), 0.001)
}

func TestApplyOverrides_RejectsInvalid(t *testing.T) {
	// Arrange
	table := NewTable(nil)
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`wares:
  energycells:
    time: 0
    amount: 175
`), 0o644))

	// Act
	err := ApplyOverrides(table, path)

	// Assert
	assert.Error(t, err)
}