package esrs

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/aggregator"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/collector"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/config"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/models"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/render"
)

// Result summarizes a completed run.
type Result struct {
	Buckets        models.Buckets
	Metrics        aggregator.Results
	ProcessedFiles []string
	ReportPath     string
}

// Run executes collect, aggregate and render in sequence. It returns
// ErrNoData, before aggregating, when no sheet matched a category. Stage
// failures carry a stack trace; no report is written after a failure.
func Run(cfg *config.Config, opts Options) (*Result, error) {
	logger := opts.logger()
	now := opts.now()

	coll := collector.New(cfg, logger)
	books, err := coll.CollectAll()
	if err != nil {
		return nil, errors.WithStack(NewStageError(StageCollect, err))
	}
	buckets := coll.Classify(books)
	if buckets.Empty() {
		return &Result{Buckets: buckets}, ErrNoData
	}
	result := &Result{Buckets: buckets}

	if opts.SaveProcessed {
		paths, err := coll.SaveProcessed(buckets, now)
		if err != nil {
			return nil, errors.WithStack(NewStageError(StageSave, err))
		}
		result.ProcessedFiles = paths
	}

	metrics, err := aggregator.New(cfg, logger).CalculateAll(buckets)
	if err != nil {
		return nil, errors.WithStack(NewStageError(StageAggregate, err))
	}
	result.Metrics = metrics
	for _, code := range cfg.Modules {
		set, ok := metrics[code]
		if !ok || len(set) == 0 {
			continue
		}
		attrs := make([]any, 0, len(set)+1)
		attrs = append(attrs, slog.String("category", code))
		for _, m := range set {
			attrs = append(attrs, slog.Any(m.Name, m.Value))
		}
		logger.Info("calculated metrics", attrs...)
	}

	path, err := render.New(cfg, logger).Generate(metrics, now)
	if err != nil {
		return nil, errors.WithStack(NewStageError(StageRender, err))
	}
	result.ReportPath = path
	return result, nil
}
