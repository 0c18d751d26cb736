// Package render assembles the report document from category metrics and
// writes it as a PDF.
package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukaji3/esrsreport-go/pkg/esrs/config"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/models"
)

const (
	// ReportTitle heads the cover page.
	ReportTitle = "ESRS Sustainability Report"
	// SummaryTitle heads the executive summary page.
	SummaryTitle = "Executive Summary"
	// NoDataText replaces the metric table of a section without metrics.
	NoDataText = "No data available for this module."

	// DateLayout is substituted for config.DateToken in output file names.
	DateLayout = "20060102"
	// GeneratedLayout is the cover page date format.
	GeneratedLayout = "January 02, 2006"

	summaryFormat = "This report presents the sustainability performance of %s " +
		"for the period %s in accordance with the European " +
		"Sustainability Reporting Standards (ESRS)."
)

// Renderer turns category metrics into the report artifact.
type Renderer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Renderer. A nil logger falls back to slog.Default().
func New(cfg *config.Config, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{cfg: cfg, logger: logger}
}

// Build assembles the document in memory. Sections follow the configured
// category order; categories without metrics are left out.
func (r *Renderer) Build(metrics map[string]models.MetricSet, now time.Time) *models.Report {
	report := &models.Report{
		Title:        ReportTitle,
		Organization: r.cfg.Report.CompanyName,
		Period:       r.cfg.Report.ReportingPeriod,
		GeneratedAt:  now,
		SummaryTitle: SummaryTitle,
		Summary:      fmt.Sprintf(summaryFormat, r.cfg.Report.CompanyName, r.cfg.Report.ReportingPeriod),
	}

	for _, code := range r.cfg.Modules {
		set, ok := metrics[code]
		if !ok || len(set) == 0 {
			continue
		}
		report.Sections = append(report.Sections, BuildSection(code, set))
	}
	return report
}

// BuildSection formats one category. An empty set produces the placeholder.
func BuildSection(code string, set models.MetricSet) models.Section {
	section := models.Section{Code: code, Title: SectionTitle(code)}
	if len(set) == 0 {
		section.Placeholder = NoDataText
		return section
	}
	for _, m := range set {
		section.Rows = append(section.Rows, models.MetricRow{
			Name:  Humanize(m.Name),
			Value: FormatValue(m.Value),
		})
	}
	return section
}

// OutputPath returns the artifact path for a run on the given day.
func (r *Renderer) OutputPath(now time.Time) string {
	name := strings.ReplaceAll(r.cfg.Report.OutputFilename, config.DateToken, now.Format(DateLayout))
	return filepath.Join(r.cfg.Report.OutputFolder, name)
}

// Generate builds the report and writes it under the output folder,
// creating the folder if needed. It returns the written path.
func (r *Renderer) Generate(metrics map[string]models.MetricSet, now time.Time) (string, error) {
	report := r.Build(metrics, now)

	if err := os.MkdirAll(r.cfg.Report.OutputFolder, 0755); err != nil {
		return "", err
	}

	path := r.OutputPath(now)
	style := Style{
		TitleFontSize:   r.cfg.PDF.TitleFontSize,
		HeadingFontSize: r.cfg.PDF.HeadingFontSize,
	}
	if err := WritePDF(report, style, path); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}

	r.logger.Info("report generated",
		slog.String("path", path),
		slog.Int("sections", len(report.Sections)))
	return path, nil
}
