package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4/v4"
)

const cacheFilename = "wares_cache.json.lz4"

// Cache stores an extracted rate table as lz4-compressed JSON. Entries are
// valid only for the exact fingerprint they were written with; callers pass
// the current game-version fingerprint and a stale or foreign cache simply
// misses.
type Cache struct {
	dir string
}

func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

type cachePayload struct {
	GameDirectory string                     `json:"game_directory"`
	Fingerprint   string                     `json:"game_version_fingerprint"`
	Wares         map[string]*ProductionData `json:"wares"`
}

// Load returns the cached wares when the cache exists and matches both the
// game directory and the fingerprint. Any read or decode failure is treated
// as a miss; the cache is a shortcut, never a source of errors.
func (c *Cache) Load(gameDir, fingerprint string) (map[string]*ProductionData, bool) {
	f, err := os.Open(c.path())
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var payload cachePayload
	if err := json.NewDecoder(lz4.NewReader(f)).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.GameDirectory != gameDir || payload.Fingerprint != fingerprint {
		return nil, false
	}
	return payload.Wares, true
}

// Save writes the wares under the given fingerprint, replacing any previous
// cache atomically.
func (c *Cache) Save(gameDir, fingerprint string, wares map[string]*ProductionData) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, "wares_cache-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	lw := lz4.NewWriter(tmp)
	payload := cachePayload{
		GameDirectory: gameDir,
		Fingerprint:   fingerprint,
		Wares:         wares,
	}
	if err := json.NewEncoder(lw).Encode(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("encode wares cache: %w", err)
	}
	if err := lw.Close(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), c.path())
}

func (c *Cache) path() string {
	return filepath.Join(c.dir, cacheFilename)
}

// Fingerprint derives a game-version key from the modification times of the
// catalogs that carry the reference data. When the game updates, these files
// change and every older cache entry stops matching.
func Fingerprint(gameDir string) string {
	fingerprint := ""
	for _, name := range []string{"01.cat", "08.cat"} {
		info, err := os.Stat(filepath.Join(gameDir, name))
		if err != nil {
			continue
		}
		if fingerprint != "" {
			fingerprint += "|"
		}
		fingerprint += fmt.Sprintf("%s:%d", name, info.ModTime().Unix())
	}
	return fingerprint
}
