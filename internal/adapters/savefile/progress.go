package savefile

import (
	"log"

	"golang.org/x/time/rate"
)

// ProgressReporter receives periodic updates while a save is being parsed.
// Implementations must return quickly; the extractor calls them inline on
// the parse path. Extraction results never depend on what a reporter does.
type ProgressReporter interface {
	Progress(stage string, elements int)
}

// NopReporter discards all progress updates.
type NopReporter struct{}

func (NopReporter) Progress(string, int) {}

// LogReporter writes progress lines to the standard logger, throttled so a
// multi-gigabyte save does not flood the output. The limiter drops updates
// rather than blocking the parse.
type LogReporter struct {
	limiter *rate.Limiter
}

func NewLogReporter() *LogReporter {
	return &LogReporter{limiter: rate.NewLimiter(rate.Limit(2), 1)}
}

func (r *LogReporter) Progress(stage string, elements int) {
	if !r.limiter.Allow() {
		return
	}
	log.Printf("parsing save: %s (%d elements)", stage, elements)
}
