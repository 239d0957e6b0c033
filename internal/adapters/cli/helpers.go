package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/andrescamacho/x4empire/internal/adapters/persistence"
	"github.com/andrescamacho/x4empire/internal/adapters/savefile"
	"github.com/andrescamacho/x4empire/internal/application/analyzer"
	"github.com/andrescamacho/x4empire/internal/infrastructure/config"
)

func loadConfig() (*config.Config, error) {
	return config.LoadConfig(configPath)
}

func progressReporter() savefile.ProgressReporter {
	if verbose {
		return savefile.NewLogReporter()
	}
	return savefile.NopReporter{}
}

// newService builds the analysis service. withHistory opens the sqlite
// history store; commands that only read the save skip it.
func newService(withHistory bool) (*analyzer.Service, *persistence.GormRunRepository, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	var runRepo *persistence.GormRunRepository
	if withHistory {
		db, err := persistence.OpenDatabase(cfg.Database.Path)
		if err != nil {
			return nil, nil, err
		}
		runRepo = persistence.NewGormRunRepository(db)
	}

	return analyzer.NewService(cfg, progressReporter(), runRepo), runRepo, nil
}

func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func printSection(title string) {
	fmt.Printf("\n%s\n", title)
	for range title {
		fmt.Print("-")
	}
	fmt.Println()
}
