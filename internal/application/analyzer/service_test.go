package analyzer_test

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/x4empire/internal/application/analyzer"
	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/infrastructure/config"
)

const sampleSave = `<savegame>
 <info>
  <save date="1700000000"/>
  <player name="Commander"/>
 </info>
 <universe>
  <component class="sector" name="Argon Prime">
   <component class="station" owner="player" code="ST-001" name="Power Plant" id="st-1">
    <construction>
     <sequence>
      <entry macro="prod_gen_energycells_macro"/>
     </sequence>
    </construction>
   </component>
  </component>
 </universe>
</savegame>`

const sampleOverrides = `wares:
  energycells:
    time: 60
    amount: 175
`

func writeSave(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(sampleSave))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func testConfig(dir string) *config.Config {
	cfg := &config.Config{}
	cfg.Paths.SaveDirectory = dir
	cfg.Analysis.DisableCache = true
	return cfg
}

func TestService_Analyze_WithOverridesOnly(t *testing.T) {
	// Arrange — no game directory: rates come from the override file alone.
	dir := t.TempDir()
	savePath := writeSave(t, dir, "quicksave.xml.gz")
	overridesPath := filepath.Join(dir, "rates.yaml")
	require.NoError(t, os.WriteFile(overridesPath, []byte(sampleOverrides), 0o644))

	cfg := testConfig(dir)
	cfg.Analysis.RateOverridesFile = overridesPath
	service := analyzer.NewService(cfg, nil, nil)

	// Act
	result, err := service.Analyze(context.Background(), savePath)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result.RateTable)
	assert.Empty(t, result.RunID)
	assert.Equal(t, "Commander", result.Snapshot.PlayerName)

	stats, ok := result.Report.Get("energycells")
	require.True(t, ok)
	assert.True(t, stats.HasRateData)
	assert.InDelta(t, 10500, stats.ProductionRate, 0.001)
}

func TestService_Analyze_NoGameData(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	savePath := writeSave(t, dir, "quicksave.xml.gz")
	service := analyzer.NewService(testConfig(dir), nil, nil)

	// Act
	result, err := service.Analyze(context.Background(), savePath)

	// Assert — storage estimates only.
	require.NoError(t, err)
	assert.Nil(t, result.RateTable)

	stats, ok := result.Report.Get("energycells")
	require.True(t, ok)
	assert.False(t, stats.HasRateData)
	assert.Equal(t, analysis.StatusSurplus, stats.SupplyStatus())
}

func TestService_ResolveSavePath(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	older := writeSave(t, dir, "save_001.xml.gz")
	newer := writeSave(t, dir, "quicksave.xml.gz")
	base := time.Now()
	require.NoError(t, os.Chtimes(older, base.Add(-2*time.Hour), base.Add(-2*time.Hour)))
	require.NoError(t, os.Chtimes(newer, base, base))

	service := analyzer.NewService(testConfig(dir), nil, nil)

	// Act / Assert — explicit argument wins.
	path, err := service.ResolveSavePath("/tmp/explicit.xml.gz")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/explicit.xml.gz", path)

	// Otherwise the newest save in the configured directory.
	path, err = service.ResolveSavePath("")
	require.NoError(t, err)
	assert.Equal(t, newer, path)

	// No directory configured at all is an error.
	service = analyzer.NewService(&config.Config{}, nil, nil)
	_, err = service.ResolveSavePath("")
	assert.Error(t, err)
}
