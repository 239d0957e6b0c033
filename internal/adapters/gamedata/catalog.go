package gamedata

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// catalogEntry is one file listed by a .cat index. Offsets are implicit in
// the format: each entry starts where the previous one ended in the paired
// .dat file.
type catalogEntry struct {
	Name   string
	Offset int64
	Size   int64
	Dat    string
}

// Catalog reads X4's paired .cat/.dat archives. The .cat file is a text
// index of "name size timestamp hash" lines; the .dat file holds the raw
// bytes back to back. Later catalogs (higher numbers, then extensions)
// override earlier ones for the same path.
type Catalog struct {
	gameDir string
	latest  map[string]catalogEntry
	all     map[string][]catalogEntry
}

// OpenCatalog indexes every catalog pair under the game directory and its
// extensions folder. Indexing reads only the .cat files; .dat files are
// opened lazily per read.
func OpenCatalog(gameDir string) (*Catalog, error) {
	c := &Catalog{
		gameDir: gameDir,
		latest:  make(map[string]catalogEntry),
		all:     make(map[string][]catalogEntry),
	}

	catFiles, err := filepath.Glob(filepath.Join(gameDir, "*.cat"))
	if err != nil {
		return nil, err
	}
	sort.Strings(catFiles)

	extDirs, _ := filepath.Glob(filepath.Join(gameDir, "extensions", "*"))
	sort.Strings(extDirs)
	for _, dir := range extDirs {
		extCats, _ := filepath.Glob(filepath.Join(dir, "*.cat"))
		sort.Strings(extCats)
		catFiles = append(catFiles, extCats...)
	}

	if len(catFiles) == 0 {
		return nil, fmt.Errorf("no catalog files under %s", gameDir)
	}

	for _, cat := range catFiles {
		if err := c.indexCatalog(cat); err != nil {
			return nil, fmt.Errorf("index %s: %w", cat, err)
		}
	}
	return c, nil
}

func (c *Catalog) indexCatalog(catPath string) error {
	datPath := strings.TrimSuffix(catPath, ".cat") + ".dat"
	if _, err := os.Stat(datPath); err != nil {
		// A .cat without its .dat is unusable but not fatal; the base game
		// never ships one, extensions occasionally do.
		return nil
	}

	content, err := os.ReadFile(catPath)
	if err != nil {
		return err
	}

	var offset int64
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Names may contain spaces; size, timestamp and hash never do, so
		// split from the right.
		parts := splitRight(line, 3)
		if len(parts) != 4 {
			continue
		}
		size, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			continue
		}
		entry := catalogEntry{
			Name:   parts[0],
			Offset: offset,
			Size:   size,
			Dat:    datPath,
		}
		offset += size

		key := normalizePath(entry.Name)
		c.latest[key] = entry
		c.all[key] = append(c.all[key], entry)
	}
	return nil
}

// ListFiles returns the indexed paths matching the glob pattern, sorted.
func (c *Catalog) ListFiles(pattern string) []string {
	var names []string
	for key := range c.latest {
		if ok, _ := filepath.Match(pattern, key); ok {
			names = append(names, key)
		}
	}
	sort.Strings(names)
	return names
}

// ReadFile returns the newest version of a catalog file, decompressed if the
// stored bytes are gzip.
func (c *Catalog) ReadFile(name string) ([]byte, error) {
	entry, ok := c.latest[normalizePath(name)]
	if !ok {
		return nil, fmt.Errorf("%s not found in catalogs", name)
	}
	return readEntry(entry)
}

// ReadBaseFile returns the base (non-diff) version of a file. Extensions
// patch XML files with <diff> documents; for reference data we want the
// original. Versions are tried largest first since base files dwarf their
// patches; if every version is a diff the largest one is returned anyway.
func (c *Catalog) ReadBaseFile(name string) ([]byte, error) {
	versions := c.all[normalizePath(name)]
	if len(versions) == 0 {
		return nil, fmt.Errorf("%s not found in catalogs", name)
	}

	sorted := make([]catalogEntry, len(versions))
	copy(sorted, versions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })

	var firstErr error
	for _, entry := range sorted {
		data, err := readEntry(entry)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !isDiffDocument(data) {
			return data, nil
		}
	}

	data, err := readEntry(sorted[0])
	if err != nil {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, err
	}
	return data, nil
}

func readEntry(entry catalogEntry) ([]byte, error) {
	f, err := os.Open(entry.Dat)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := make([]byte, entry.Size)
	if _, err := f.ReadAt(data, entry.Offset); err != nil && err != io.EOF {
		return nil, fmt.Errorf("read %s from %s: %w", entry.Name, entry.Dat, err)
	}

	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(gz)
	}
	return data, nil
}

func isDiffDocument(data []byte) bool {
	head := data
	if len(head) > 100 {
		head = head[:100]
	}
	return bytes.Contains(head, []byte("<diff>")) || bytes.Contains(head, []byte("<diff "))
}

// splitRight splits a line on spaces from the right, at most n times.
func splitRight(s string, n int) []string {
	var tail []string
	for i := 0; i < n; i++ {
		idx := strings.LastIndexByte(s, ' ')
		if idx < 0 {
			break
		}
		tail = append([]string{s[idx+1:]}, tail...)
		s = s[:idx]
	}
	return append([]string{s}, tail...)
}

func normalizePath(p string) string {
	return strings.ToLower(strings.ReplaceAll(p, `\`, "/"))
}
