package savefile

import (
	"context"

	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

// Parser reads X4 save files into empire snapshots. It is safe to reuse for
// multiple saves; each Parse call is independent.
type Parser struct {
	registry *empire.WareRegistry
	reporter ProgressReporter
}

// NewParser creates a parser. The reporter may be nil to disable progress
// output.
func NewParser(registry *empire.WareRegistry, reporter ProgressReporter) *Parser {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Parser{registry: registry, reporter: reporter}
}

// Parse streams the save at path and returns the resulting snapshot. Large
// saves take a while; the context cancels the parse between elements.
func (p *Parser) Parse(ctx context.Context, path string) (*empire.Snapshot, error) {
	result, err := extract(ctx, path, p.reporter)
	if err != nil {
		return nil, err
	}
	b := &builder{registry: p.registry}
	return b.build(result), nil
}
