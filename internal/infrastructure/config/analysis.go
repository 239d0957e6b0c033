package config

// AnalysisConfig tunes the analysis run.
type AnalysisConfig struct {
	// RateOverridesFile is an optional YAML file replacing production
	// methods from the game data.
	RateOverridesFile string `mapstructure:"rate_overrides_file"`

	// DisableCache skips the wares cache entirely.
	DisableCache bool `mapstructure:"disable_cache"`

	// HistoryLimit caps how many runs `history` lists by default.
	HistoryLimit int `mapstructure:"history_limit" validate:"min=1"`
}
