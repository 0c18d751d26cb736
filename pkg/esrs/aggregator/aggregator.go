// Package aggregator combines the sheets of each category and computes the
// category metrics from a declarative rule table.
package aggregator

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/esrsreport-go/pkg/esrs/config"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/models"
)

// Results maps a category code to its metrics. Only categories that
// received at least one sheet have an entry.
type Results map[string]models.MetricSet

// Aggregator evaluates a RuleSet over category tables.
type Aggregator struct {
	cfg    *config.Config
	rules  RuleSet
	logger *slog.Logger
}

// New creates an Aggregator using DefaultRules.
func New(cfg *config.Config, logger *slog.Logger) *Aggregator {
	return NewWithRules(cfg, DefaultRules(), logger)
}

// NewWithRules creates an Aggregator with a custom rule table.
func NewWithRules(cfg *config.Config, rules RuleSet, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{cfg: cfg, rules: rules, logger: logger}
}

// CalculateAll concatenates the tables of every non-empty bucket, in
// configured category order, and computes its metrics.
func (a *Aggregator) CalculateAll(buckets models.Buckets) (Results, error) {
	results := make(Results)
	for _, code := range a.cfg.Modules {
		if len(buckets[code]) == 0 {
			continue
		}
		combined := models.ConcatTables(buckets.Tables(code)...)
		a.logger.Debug("combined category table",
			slog.String("category", code),
			slog.Int("sheets", len(buckets[code])),
			slog.Int("rows", combined.Len()))

		metrics, err := a.Calculate(code, combined)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", code, err)
		}
		results[code] = metrics
	}
	return results, nil
}

// Calculate evaluates the rules of one category against its table.
// A category without rules, or an empty table, yields an empty set.
func (a *Aggregator) Calculate(code string, table *models.Table) (models.MetricSet, error) {
	metrics := models.MetricSet{}
	if table.Len() == 0 {
		return metrics, nil
	}

	for _, rule := range a.rules[code] {
		value, ok, err := a.evaluate(code, rule, Inputs{Table: table, Metrics: metrics})
		if err != nil {
			return nil, fmt.Errorf("metric %s: %w", rule.Metric, err)
		}
		if ok {
			metrics = append(metrics, models.Metric{Name: rule.Metric, Value: value})
		}
	}
	return metrics, nil
}

func (a *Aggregator) evaluate(code string, rule Rule, in Inputs) (interface{}, bool, error) {
	for _, c := range rule.Columns {
		if !in.Table.HasColumn(c) {
			return nil, false, nil
		}
	}
	for _, n := range rule.Needs {
		if !in.Metrics.Has(n) {
			return nil, false, nil
		}
	}
	if rule.Guard != nil {
		ok, note := rule.Guard(in)
		if !ok {
			if note != "" {
				a.logger.Warn("metric skipped",
					slog.String("category", code),
					slog.String("metric", rule.Metric),
					slog.String("reason", note))
			}
			return nil, false, nil
		}
	}

	value, err := rule.Agg(in)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}
