package persistence

import (
	"time"
)

// AnalysisRunModel represents the analysis_runs table: one row per analyzed
// save file.
type AnalysisRunModel struct {
	ID           string    `gorm:"column:id;primaryKey"` // uuid
	SavePath     string    `gorm:"column:save_path;not null"`
	PlayerName   string    `gorm:"column:player_name"`
	SaveTime     time.Time `gorm:"column:save_time"`
	AnalyzedAt   time.Time `gorm:"column:analyzed_at;not null"`
	StationCount int       `gorm:"column:station_count;not null"`
	ModuleCount  int       `gorm:"column:module_count;not null"`
	ShipCount    int       `gorm:"column:ship_count;not null"`
	HadRateData  int       `gorm:"column:had_rate_data;not null;default:0"` // 0 or 1 (SQLite compatible)
}

func (AnalysisRunModel) TableName() string {
	return "analysis_runs"
}

// WareStatModel represents the ware_stats table: the per-ware aggregation
// result of one run.
type WareStatModel struct {
	ID                  int     `gorm:"column:id;primaryKey;autoIncrement"`
	RunID               string  `gorm:"column:run_id;index;not null;constraint:OnDelete:CASCADE;"`
	Run                 *AnalysisRunModel `gorm:"foreignKey:RunID;references:ID"`
	WareID              string  `gorm:"column:ware_id;not null"`
	WareName            string  `gorm:"column:ware_name"`
	Category            string  `gorm:"column:category"`
	ModuleCount         int     `gorm:"column:module_count;not null"`
	TotalStock          int     `gorm:"column:total_stock;not null"`
	TotalCapacity       int     `gorm:"column:total_capacity;not null"`
	ProductionRate      float64 `gorm:"column:production_rate;not null"`
	ConsumptionRate     float64 `gorm:"column:consumption_rate;not null"`
	SupplyStatus        string  `gorm:"column:supply_status;not null"`
	MinerCount          int     `gorm:"column:miner_count;not null;default:0"`
	MiningCargoCapacity int     `gorm:"column:mining_cargo_capacity;not null;default:0"`
}

func (WareStatModel) TableName() string {
	return "ware_stats"
}
