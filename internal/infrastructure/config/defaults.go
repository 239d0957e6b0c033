package config

import "path/filepath"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Path defaults
	if cfg.Paths.SaveDirectory == "" {
		cfg.Paths.SaveDirectory = DetectSaveDirectory()
	}
	if cfg.Paths.GameDirectory == "" {
		cfg.Paths.GameDirectory = DetectGameDirectory()
	}
	if cfg.Paths.CacheDirectory == "" {
		cfg.Paths.CacheDirectory = defaultCacheDir()
	}

	// Database defaults
	if cfg.Database.Path == "" {
		cfg.Database.Path = filepath.Join(defaultConfigDir(), "history.db")
	}

	// Analysis defaults
	if cfg.Analysis.HistoryLimit == 0 {
		cfg.Analysis.HistoryLimit = 20
	}
}
