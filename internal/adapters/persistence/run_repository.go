package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

// Run is one stored analysis: the run header plus its per-ware results.
type Run struct {
	ID           string
	SavePath     string
	PlayerName   string
	SaveTime     time.Time
	AnalyzedAt   time.Time
	StationCount int
	ModuleCount  int
	ShipCount    int
	HadRateData  bool
	Wares        []WareStat
}

// WareStat is the persisted aggregation result for one ware in one run.
type WareStat struct {
	WareID              string
	WareName            string
	Category            string
	ModuleCount         int
	TotalStock          int
	TotalCapacity       int
	ProductionRate      float64
	ConsumptionRate     float64
	SupplyStatus        string
	MinerCount          int
	MiningCargoCapacity int
}

// GormRunRepository stores analysis runs using GORM.
type GormRunRepository struct {
	db *gorm.DB
}

// NewGormRunRepository creates a new GORM run repository.
func NewGormRunRepository(db *gorm.DB) *GormRunRepository {
	return &GormRunRepository{db: db}
}

// RecordRun persists a finished analysis under a fresh run ID.
func (r *GormRunRepository) RecordRun(
	ctx context.Context,
	savePath string,
	snap *empire.Snapshot,
	report *analysis.Report,
) (*Run, error) {
	runModel := &AnalysisRunModel{
		ID:           uuid.New().String(),
		SavePath:     savePath,
		PlayerName:   snap.PlayerName,
		SaveTime:     snap.SaveTime,
		AnalyzedAt:   time.Now().UTC(),
		StationCount: len(snap.Stations),
		ModuleCount:  snap.TotalProductionModules(),
		ShipCount:    len(snap.AllShips()),
	}

	stats := report.All()
	wareModels := make([]WareStatModel, 0, len(stats))
	for _, s := range stats {
		if s.HasRateData {
			runModel.HadRateData = 1
		}
		wareModels = append(wareModels, WareStatModel{
			RunID:               runModel.ID,
			WareID:              s.Ware.ID,
			WareName:            s.Ware.Name,
			Category:            string(s.Ware.Category),
			ModuleCount:         s.ModuleCount,
			TotalStock:          s.TotalStock,
			TotalCapacity:       s.TotalCapacity,
			ProductionRate:      s.ProductionRate,
			ConsumptionRate:     s.ConsumptionRate,
			SupplyStatus:        string(s.SupplyStatus()),
			MinerCount:          s.MinerCount,
			MiningCargoCapacity: s.MiningCargoCapacity,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(runModel).Error; err != nil {
			return err
		}
		if len(wareModels) == 0 {
			return nil
		}
		return tx.Create(&wareModels).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record analysis run: %w", err)
	}

	return r.modelToRun(runModel, wareModels), nil
}

// ListRuns returns run headers newest first, without their ware rows.
func (r *GormRunRepository) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	var models []AnalysisRunModel
	query := r.db.WithContext(ctx).Order("analyzed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list analysis runs: %w", err)
	}

	runs := make([]*Run, 0, len(models))
	for i := range models {
		runs = append(runs, r.modelToRun(&models[i], nil))
	}
	return runs, nil
}

// GetRun returns a run with its ware rows. The ID may be a unique prefix of
// the full uuid.
func (r *GormRunRepository) GetRun(ctx context.Context, id string) (*Run, error) {
	var models []AnalysisRunModel
	err := r.db.WithContext(ctx).
		Where("id LIKE ?", id+"%").
		Limit(2).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis run: %w", err)
	}
	switch len(models) {
	case 0:
		return nil, fmt.Errorf("no analysis run matches %q", id)
	case 1:
	default:
		return nil, fmt.Errorf("run ID %q is ambiguous", id)
	}

	var wareModels []WareStatModel
	err = r.db.WithContext(ctx).
		Where("run_id = ?", models[0].ID).
		Order("ware_id ASC").
		Find(&wareModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ware stats: %w", err)
	}

	return r.modelToRun(&models[0], wareModels), nil
}

// DeleteRun removes a run and its ware rows.
func (r *GormRunRepository) DeleteRun(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", id).Delete(&WareStatModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ware stats: %w", err)
		}
		result := tx.Where("id = ?", id).Delete(&AnalysisRunModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete analysis run: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("no analysis run matches %q", id)
		}
		return nil
	})
}

func (r *GormRunRepository) modelToRun(model *AnalysisRunModel, wares []WareStatModel) *Run {
	run := &Run{
		ID:           model.ID,
		SavePath:     model.SavePath,
		PlayerName:   model.PlayerName,
		SaveTime:     model.SaveTime,
		AnalyzedAt:   model.AnalyzedAt,
		StationCount: model.StationCount,
		ModuleCount:  model.ModuleCount,
		ShipCount:    model.ShipCount,
		HadRateData:  model.HadRateData != 0,
	}
	for _, w := range wares {
		run.Wares = append(run.Wares, WareStat{
			WareID:              w.WareID,
			WareName:            w.WareName,
			Category:            w.Category,
			ModuleCount:         w.ModuleCount,
			TotalStock:          w.TotalStock,
			TotalCapacity:       w.TotalCapacity,
			ProductionRate:      w.ProductionRate,
			ConsumptionRate:     w.ConsumptionRate,
			SupplyStatus:        w.SupplyStatus,
			MinerCount:          w.MinerCount,
			MiningCargoCapacity: w.MiningCargoCapacity,
		})
	}
	return run
}
