// Package esrs runs the sustainability reporting pipeline: collect the
// input workbooks, aggregate category metrics and render the report.
package esrs

import (
	"log/slog"
	"time"
)

// Options configures a pipeline run.
type Options struct {
	// SaveProcessed also writes the combined table of every category to
	// the processed folder.
	SaveProcessed bool
	// Logger receives progress. If nil, slog.Default() is used.
	Logger *slog.Logger
	// Now returns the run time. If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
