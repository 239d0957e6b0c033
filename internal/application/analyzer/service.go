package analyzer

import (
	"context"
	"fmt"
	"log"

	"github.com/andrescamacho/x4empire/internal/adapters/gamedata"
	"github.com/andrescamacho/x4empire/internal/adapters/persistence"
	"github.com/andrescamacho/x4empire/internal/adapters/savefile"
	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
	"github.com/andrescamacho/x4empire/internal/infrastructure/config"
)

// Result bundles the artifacts of one analysis run.
type Result struct {
	Snapshot *empire.Snapshot
	Report   *analysis.Report

	// RateTable is nil when no game data was available; the report then
	// carries storage-based estimates.
	RateTable analysis.RateTable

	// RunID is set when the run was persisted to history.
	RunID string
}

// Service orchestrates a full analysis: parse the save, load the rate table,
// aggregate, and optionally record the run in history.
type Service struct {
	cfg      *config.Config
	registry *empire.WareRegistry
	parser   *savefile.Parser
	runRepo  *persistence.GormRunRepository
}

// NewService creates an analysis service. The run repository may be nil to
// skip history recording.
func NewService(cfg *config.Config, reporter savefile.ProgressReporter, runRepo *persistence.GormRunRepository) *Service {
	registry := empire.NewWareRegistry()
	return &Service{
		cfg:      cfg,
		registry: registry,
		parser:   savefile.NewParser(registry, reporter),
		runRepo:  runRepo,
	}
}

// Registry exposes the canonical ware registry used by this service.
func (s *Service) Registry() *empire.WareRegistry {
	return s.registry
}

// Analyze runs the full pipeline on one save file.
func (s *Service) Analyze(ctx context.Context, savePath string) (*Result, error) {
	snap, err := s.parser.Parse(ctx, savePath)
	if err != nil {
		return nil, err
	}

	table := s.LoadRateTable()
	report := analysis.NewAggregator(s.registry, table).Aggregate(snap)

	result := &Result{Snapshot: snap, Report: report, RateTable: table}

	if s.runRepo != nil {
		run, err := s.runRepo.RecordRun(ctx, savePath, snap, report)
		if err != nil {
			// History is a convenience; a failed insert must not void the
			// analysis itself.
			log.Printf("could not record run in history: %v", err)
		} else {
			result.RunID = run.ID
		}
	}
	return result, nil
}

// LoadRateTable builds the rate table from game data plus overrides. Every
// failure degrades to a smaller table rather than failing the analysis; with
// neither game data nor overrides the result is nil.
func (s *Service) LoadRateTable() analysis.RateTable {
	var table *gamedata.Table

	if gameDir := s.cfg.Paths.GameDirectory; gameDir != "" {
		var cache *gamedata.Cache
		if !s.cfg.Analysis.DisableCache {
			cache = gamedata.NewCache(s.cfg.Paths.CacheDirectory)
		}
		extracted, err := gamedata.NewExtractor(gameDir, cache).Extract()
		if err != nil {
			log.Printf("game data unavailable, falling back to storage estimates: %v", err)
		} else {
			table = extracted
		}
	}

	if overrides := s.cfg.Analysis.RateOverridesFile; overrides != "" {
		if table == nil {
			table = gamedata.NewTable(nil)
		}
		if err := gamedata.ApplyOverrides(table, overrides); err != nil {
			log.Printf("ignoring rate overrides: %v", err)
		}
	}

	if table == nil {
		return nil
	}
	return table
}

// ResolveSavePath turns a user argument into a concrete save file path: an
// explicit path wins, otherwise the newest save in the configured directory.
func (s *Service) ResolveSavePath(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	dir := s.cfg.Paths.SaveDirectory
	if dir == "" {
		return "", fmt.Errorf("no save file given and no save directory configured")
	}
	saves := config.RecentSaves(dir, 1)
	if len(saves) == 0 {
		return "", fmt.Errorf("no save files found in %s", dir)
	}
	return saves[0], nil
}
