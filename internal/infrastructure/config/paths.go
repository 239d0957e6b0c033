package config

import (
	"os"
	"path/filepath"
	"sort"
)

// PathsConfig locates the save files, the game installation, and this tool's
// own directories. Empty save/game paths trigger auto-detection.
type PathsConfig struct {
	SaveDirectory  string `mapstructure:"save_directory"`
	GameDirectory  string `mapstructure:"game_directory"`
	CacheDirectory string `mapstructure:"cache_directory"`
	LastSaveFile   string `mapstructure:"last_save_file"`
}

// steamAppID is X4 Foundations' Steam application ID, used in Proton
// compatdata paths.
const steamAppID = "392160"

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "x4empire")
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cache"
	}
	return filepath.Join(home, ".cache", "x4empire")
}

// saveDirCandidates are the known locations of the X4 save folder across
// Windows, native Linux, Proton and Flatpak installs.
func saveDirCandidates(home string) []string {
	protonSuffix := filepath.Join("steamapps", "compatdata", steamAppID,
		"pfx", "drive_c", "users", "steamuser", "Documents", "Egosoft", "X4", "save")
	return []string{
		filepath.Join(home, "Documents", "Egosoft", "X4", "save"),
		filepath.Join(home, ".config", "EgoSoft", "X4", "save"),
		filepath.Join(home, ".steam", "steam", protonSuffix),
		filepath.Join(home, ".local", "share", "Steam", protonSuffix),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam", protonSuffix),
	}
}

func gameDirCandidates(home string) []string {
	return []string{
		`C:\Program Files (x86)\Steam\steamapps\common\X4 Foundations`,
		`C:\Program Files\Steam\steamapps\common\X4 Foundations`,
		filepath.Join(home, ".steam", "steam", "steamapps", "common", "X4 Foundations"),
		filepath.Join(home, ".local", "share", "Steam", "steamapps", "common", "X4 Foundations"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam", "steamapps", "common", "X4 Foundations"),
		`C:\GOG Games\X4 Foundations`,
		filepath.Join(home, "GOG Games", "X4 Foundations"),
	}
}

// DetectSaveDirectory returns the first directory that actually contains
// save files. On Linux, saves live under an account-specific subfolder
// (~/.config/EgoSoft/X4/{accountID}/save), so those are scanned too.
func DetectSaveDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	for _, dir := range saveDirCandidates(home) {
		if hasSaveFiles(dir) {
			return dir
		}
	}

	base := filepath.Join(home, ".config", "EgoSoft", "X4")
	entries, err := os.ReadDir(base)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(base, entry.Name(), "save")
		if hasSaveFiles(dir) {
			return dir
		}
	}
	return ""
}

// DetectGameDirectory returns the first directory that looks like an X4
// installation, verified by the presence of catalog files.
func DetectGameDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, dir := range gameDirCandidates(home) {
		cats, _ := filepath.Glob(filepath.Join(dir, "*.cat"))
		if len(cats) > 0 {
			return dir
		}
	}
	return ""
}

var saveGlobs = []string{"save_*.xml.gz", "quicksave*.xml.gz", "save_*.xml", "quicksave*.xml"}

func hasSaveFiles(dir string) bool {
	for _, glob := range saveGlobs {
		matches, _ := filepath.Glob(filepath.Join(dir, glob))
		if len(matches) > 0 {
			return true
		}
	}
	return false
}

// RecentSaves lists save files in a directory, newest first by modification
// time, at most limit entries.
func RecentSaves(dir string, limit int) []string {
	var saves []string
	for _, glob := range []string{"save_*.xml.gz", "quicksave*.xml.gz"} {
		matches, _ := filepath.Glob(filepath.Join(dir, glob))
		saves = append(saves, matches...)
	}

	sort.Slice(saves, func(i, j int) bool {
		fi, errI := os.Stat(saves[i])
		fj, errJ := os.Stat(saves[j])
		if errI != nil || errJ != nil {
			return saves[i] < saves[j]
		}
		return fi.ModTime().After(fj.ModTime())
	})

	if limit > 0 && len(saves) > limit {
		saves = saves[:limit]
	}
	return saves
}
