package models

import "time"

// Report is the fully assembled document, ready to be drawn.
type Report struct {
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	Period       string    `json:"period"`
	GeneratedAt  time.Time `json:"generated_at"`
	// SummaryTitle and Summary make up the executive summary page.
	SummaryTitle string    `json:"summary_title"`
	Summary      string    `json:"summary"`
	Sections     []Section `json:"sections"`
}

// Section is the report part for one category.
type Section struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	// Rows holds the formatted metric table. Empty when Placeholder is set.
	Rows        []MetricRow `json:"rows,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
}

// MetricRow is one formatted line of a section table.
type MetricRow struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
