package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

type jsonReport struct {
	Empire     jsonEmpire    `json:"empire"`
	Production []jsonWare    `json:"production"`
	Stations   []jsonStation `json:"stations"`
}

type jsonEmpire struct {
	Player        string    `json:"player"`
	SaveTime      time.Time `json:"save_time"`
	TotalStations int       `json:"total_stations"`
	TotalModules  int       `json:"total_modules"`
}

type jsonWare struct {
	WareID           string             `json:"ware_id"`
	WareName         string             `json:"ware_name"`
	Category         string             `json:"category"`
	ModuleCount      int                `json:"module_count"`
	TotalStock       int                `json:"total_stock"`
	TotalCapacity    int                `json:"total_capacity"`
	CapacityPercent  float64            `json:"capacity_percent"`
	ProductionRate   float64            `json:"production_rate"`
	ConsumptionRate  float64            `json:"consumption_rate"`
	HasRateData      bool               `json:"has_rate_data"`
	SupplyStatus     string             `json:"supply_status"`
	ProducingByID    map[string]float64 `json:"producing_stations"`
	ConsumingByID    map[string]float64 `json:"consuming_stations"`
	MinerCount       int                `json:"miner_count,omitempty"`
	MiningCargoSpace int                `json:"mining_cargo_capacity,omitempty"`
}

type jsonStation struct {
	StationID         string         `json:"station_id"`
	Name              string         `json:"name"`
	Sector            string         `json:"sector"`
	StationType       string         `json:"station_type"`
	ProductionModules int            `json:"production_modules"`
	Products          []string       `json:"products"`
	AssignedShips     int            `json:"assigned_ships"`
	Traders           int            `json:"traders"`
	Miners            int            `json:"miners"`
	CargoCapacity     int            `json:"cargo_capacity"`
	InputDemands      map[string]int `json:"input_demands,omitempty"`
}

func writeJSON(w io.Writer, snap *empire.Snapshot, report *analysis.Report) error {
	doc := jsonReport{
		Empire: jsonEmpire{
			Player:        snap.PlayerName,
			SaveTime:      snap.SaveTime,
			TotalStations: len(snap.Stations),
			TotalModules:  snap.TotalProductionModules(),
		},
		Production: make([]jsonWare, 0, report.Len()),
		Stations:   make([]jsonStation, 0, len(snap.Stations)),
	}

	for _, stats := range report.All() {
		doc.Production = append(doc.Production, jsonWare{
			WareID:           stats.Ware.ID,
			WareName:         stats.Ware.Name,
			Category:         string(stats.Ware.Category),
			ModuleCount:      stats.ModuleCount,
			TotalStock:       stats.TotalStock,
			TotalCapacity:    stats.TotalCapacity,
			CapacityPercent:  round2(stats.CapacityPercent()),
			ProductionRate:   round2(stats.ProductionRate),
			ConsumptionRate:  round2(stats.ConsumptionRate),
			HasRateData:      stats.HasRateData,
			SupplyStatus:     string(stats.SupplyStatus()),
			ProducingByID:    stats.ProductionByStation,
			ConsumingByID:    stats.ConsumptionByStation,
			MinerCount:       stats.MinerCount,
			MiningCargoSpace: stats.MiningCargoCapacity,
		})
	}

	for _, station := range snap.Stations {
		products := make([]string, 0)
		for _, ware := range station.UniqueProducts() {
			products = append(products, ware.Name)
		}
		doc.Stations = append(doc.Stations, jsonStation{
			StationID:         station.ID,
			Name:              station.Name,
			Sector:            station.Sector,
			StationType:       string(station.Type),
			ProductionModules: len(station.ProductionModules()),
			Products:          products,
			AssignedShips:     len(station.Ships),
			Traders:           len(station.Traders()),
			Miners:            len(station.Miners()),
			CargoCapacity:     station.TotalCargoCapacity(),
			InputDemands:      station.InputDemands,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
