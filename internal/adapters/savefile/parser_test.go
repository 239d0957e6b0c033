package savefile_test

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/x4empire/internal/adapters/savefile"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

const sampleSave = `<savegame>
  <info>
    <save date="1700000000"/>
    <player name="Nikolaus Kahler"/>
  </info>
  <universe>
    <component class="sector" macro="cluster_14_sector001_macro" name="Argon Prime">
      <component class="station" owner="player" id="st-1" code="QUX-221" name="Hull Forge">
        <connection connection="subordinates" id="grp-1"/>
        <construction>
          <sequence>
            <entry macro="prod_gen_energycells_macro"/>
            <entry macro="prod_arg_hullparts_macro"/>
            <entry macro="storage_arg_l_container_01_macro"/>
          </sequence>
        </construction>
        <offers>
          <production>
            <trade seller="st-1" ware="energycells" amount="500" desired="10000"/>
            <trade seller="st-1" ware="energycells" amount="50" desired="400"/>
            <trade seller="st-1" ware="hullparts" amount="40"/>
          </production>
          <trade ware="energycells" amount="999"/>
          <trade buyer="st-1" ware="ore" desired="300"/>
          <trade buyer="st-1" ware="silicon" amount="150"/>
        </offers>
      </component>
      <component class="ship_l" owner="player" id="ship-1" code="MIN-1" name="Digger"
                 macro="ship_arg_l_miner_solid_01_a_macro" purpose="mine">
        <cargo max="4000" tags="solid"/>
        <connection connection="commander">
          <connected connection="grp-1"/>
        </connection>
      </component>
      <component class="ship_s" owner="player" id="ship-2" code="SCT-7" name="Scout"
                 macro="ship_arg_s_fighter_01_a_macro" purpose="fight"/>
      <component class="station" owner="enemy" id="st-x" code="XEN-1" name="Xenon Outpost">
        <construction>
          <sequence>
            <entry macro="prod_gen_energycells_macro"/>
          </sequence>
        </construction>
      </component>
    </component>
  </universe>
</savegame>`

func writeGzipSave(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quicksave.xml.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}

func newParser() *savefile.Parser {
	return savefile.NewParser(empire.NewWareRegistry(), nil)
}

func TestParser_Parse(t *testing.T) {
	// Arrange
	path := writeGzipSave(t, sampleSave)
	parser := newParser()

	// Act
	snap, err := parser.Parse(context.Background(), path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Nikolaus Kahler", snap.PlayerName)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), snap.SaveTime)

	// Only the player station survives extraction.
	require.Len(t, snap.Stations, 1)
	st := snap.Stations[0]
	assert.Equal(t, "Hull Forge", st.Name)
	assert.Equal(t, "Argon Prime", st.Sector)
	assert.Equal(t, empire.StationProduction, st.Type)
	assert.Len(t, st.Modules, 3)
	assert.Len(t, st.ProductionModules(), 2)
	assert.Equal(t, map[string]int{"ore": 300, "silicon": 150}, st.InputDemands)

	prod := st.ProductionModules()
	assert.Equal(t, "energycells", prod[0].OutputWare.ID)
	require.NotNil(t, prod[0].Output)
	// The first sell offer wins: the restated 50/400 offer and the roleless
	// reservation entry must not disturb stock or capacity.
	assert.Equal(t, 500, prod[0].Output.Amount)
	assert.Equal(t, 10000, prod[0].Output.Capacity)

	// Without a desired level the capacity degrades to twice the stock.
	assert.Equal(t, "hullparts", prod[1].OutputWare.ID)
	require.NotNil(t, prod[1].Output)
	assert.Equal(t, 40, prod[1].Output.Amount)
	assert.Equal(t, 80, prod[1].Output.Capacity)

	// The miner links to the station via its commander connection.
	require.Len(t, st.Ships, 1)
	miner := st.Ships[0]
	assert.Equal(t, "Digger", miner.Name)
	assert.Equal(t, empire.RoleMiner, miner.Role)
	assert.Equal(t, 4000, miner.CargoCapacity)
	assert.Equal(t, st.ID, miner.AssignedStationID)

	require.Len(t, snap.UnassignedShips, 1)
	assert.Equal(t, "Scout", snap.UnassignedShips[0].Name)
}

func TestParser_Parse_ShipBeforeStation(t *testing.T) {
	// Arrange: the ship's commander reference appears in the document before
	// the station that owns the subordinates group.
	const save = `<savegame>
  <info><save date="1000"/><player name="P"/></info>
  <universe>
    <component class="sector" macro="sec_macro" name="Somewhere">
      <component class="ship_m" owner="player" id="ship-1" code="TRD-1" purpose="trade" macro="ship_arg_m_trans_01_macro">
        <connection connection="commander">
          <connected connection="grp-9"/>
        </connection>
      </component>
      <component class="station" owner="player" id="st-9" code="ST-9" name="Late Station">
        <connection connection="subordinates" id="grp-9"/>
      </component>
    </component>
  </universe>
</savegame>`
	path := writeGzipSave(t, save)
	parser := newParser()

	// Act
	snap, err := parser.Parse(context.Background(), path)

	// Assert
	require.NoError(t, err)
	require.Len(t, snap.Stations, 1)
	require.Len(t, snap.Stations[0].Ships, 1)
	assert.Equal(t, "st-9", snap.Stations[0].Ships[0].AssignedStationID)
	assert.Empty(t, snap.UnassignedShips)
}

func TestParser_Parse_SellOfferCapacity(t *testing.T) {
	// Arrange: a sell offer directly under the station component, outside any
	// offers wrapper, with the desired level carrying the storage figure.
	const save = `<savegame>
  <info><save date="1000"/><player name="P"/></info>
  <universe>
    <component class="sector" macro="sec_macro" name="Somewhere">
      <component class="station" owner="player" id="st-1" code="ST-1" name="Plant">
        <construction><sequence>
          <entry macro="prod_gen_energycells_macro"/>
        </sequence></construction>
        <trade seller="st-1" ware="energycells" amount="500" desired="10000"/>
      </component>
    </component>
  </universe>
</savegame>`
	path := writeGzipSave(t, save)
	parser := newParser()

	// Act
	snap, err := parser.Parse(context.Background(), path)

	// Assert
	require.NoError(t, err)
	require.Len(t, snap.Stations, 1)
	prod := snap.Stations[0].ProductionModules()
	require.Len(t, prod, 1)
	require.NotNil(t, prod[0].Output)
	assert.Equal(t, 500, prod[0].Output.Amount)
	assert.Equal(t, 10000, prod[0].Output.Capacity)
}

func TestParser_Parse_Deterministic(t *testing.T) {
	// Arrange
	path := writeGzipSave(t, sampleSave)
	parser := newParser()

	// Act
	first, err := parser.Parse(context.Background(), path)
	require.NoError(t, err)
	second, err := parser.Parse(context.Background(), path)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, first, second)
}

func TestParser_Parse_PlainXML(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "quicksave.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSave), 0o644))

	// Act
	snap, err := newParser().Parse(context.Background(), path)

	// Assert
	require.NoError(t, err)
	assert.Len(t, snap.Stations, 1)
}

func TestParser_Parse_LZ4(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "quicksave.xml.lz4")
	f, err := os.Create(path)
	require.NoError(t, err)
	lw := lz4.NewWriter(f)
	_, err = lw.Write([]byte(sampleSave))
	require.NoError(t, err)
	require.NoError(t, lw.Close())
	require.NoError(t, f.Close())

	// Act
	snap, err := newParser().Parse(context.Background(), path)

	// Assert
	require.NoError(t, err)
	assert.Len(t, snap.Stations, 1)
}

func TestParser_Parse_NotFound(t *testing.T) {
	// Act
	_, err := newParser().Parse(context.Background(), filepath.Join(t.TempDir(), "missing.xml.gz"))

	// Assert
	var notFound *empire.SaveNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestParser_Parse_UnsupportedCompression(t *testing.T) {
	// Arrange: neither a known compression signature nor XML.
	path := filepath.Join(t.TempDir(), "quicksave.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01, 0x02, 0x03, 0x04}, 0o644))

	// Act
	_, err := newParser().Parse(context.Background(), path)

	// Assert
	var unsupported *empire.UnsupportedCompressionError
	require.ErrorAs(t, err, &unsupported)
}

func TestParser_Parse_MalformedXML(t *testing.T) {
	// Arrange
	path := writeGzipSave(t, "<savegame><info><save date=oops></savegame>")

	// Act
	_, err := newParser().Parse(context.Background(), path)

	// Assert
	var malformed *empire.MalformedSaveError
	require.ErrorAs(t, err, &malformed)
}

func TestParser_Parse_Cancelled(t *testing.T) {
	// Arrange
	path := writeGzipSave(t, sampleSave)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	_, err := newParser().Parse(ctx, path)

	// Assert
	require.ErrorIs(t, err, context.Canceled)
}