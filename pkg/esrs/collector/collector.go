// Package collector finds input workbooks, reads every sheet and sorts the
// sheets into the configured category buckets.
package collector

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/config"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/models"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/parser"
	"github.com/xuri/excelize/v2"
)

// ProcessedTimestampLayout names processed workbooks, e.g. 20250131_142500.
const ProcessedTimestampLayout = "20060102_150405"

// Collector reads workbooks from the configured input folder.
type Collector struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Collector. A nil logger falls back to slog.Default().
func New(cfg *config.Config, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{cfg: cfg, logger: logger}
}

// FindFiles returns the files in the input folder matching the file pattern,
// sorted by path.
func (c *Collector) FindFiles() ([]string, error) {
	pattern := filepath.Join(c.cfg.DataSources.ExcelFolder, c.cfg.DataSources.FilePattern)
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("bad file pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)
	c.logger.Info("found input files", slog.Int("count", len(matches)), slog.String("pattern", pattern))
	return matches, nil
}

// ReadWorkbook reads every sheet of the workbook at path, in workbook order.
func ReadWorkbook(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &models.Workbook{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		table, err := parser.ReadSheet(f, sheetName)
		if err != nil {
			return nil, &SheetError{SheetName: sheetName, Err: err}
		}
		wb.Sheets = append(wb.Sheets, models.Sheet{Name: sheetName, Table: table})
	}
	return wb, nil
}

// CollectAll reads every matching workbook. A workbook that cannot be opened
// or parsed is logged and skipped; the remaining files are still read.
func (c *Collector) CollectAll() ([]models.Workbook, error) {
	files, err := c.FindFiles()
	if err != nil {
		return nil, err
	}

	var books []models.Workbook
	for _, path := range files {
		name := filepath.Base(path)
		c.logger.Info("processing file", slog.String("file", name))

		wb, err := ReadWorkbook(path)
		if err != nil {
			c.logger.Warn("skipping unreadable file",
				slog.String("file", name),
				slog.String("error", err.Error()))
			continue
		}
		for _, s := range wb.Sheets {
			c.logger.Info("loaded sheet",
				slog.String("file", name),
				slog.String("sheet", s.Name),
				slog.Int("rows", s.Table.Len()))
		}
		books = append(books, *wb)
	}
	return books, nil
}

// Classify assigns each sheet to the first configured category code found
// in its name, compared case-insensitively. Codes are tried in configured
// order, so the list order decides ties. Sheets matching no code are dropped.
// The result has an entry for every configured code.
func (c *Collector) Classify(books []models.Workbook) models.Buckets {
	buckets := make(models.Buckets, len(c.cfg.Modules))
	for _, code := range c.cfg.Modules {
		buckets[code] = []models.RawSheet{}
	}

	for _, wb := range books {
		for _, s := range wb.Sheets {
			code, ok := MatchCategory(s.Name, c.cfg.Modules)
			if !ok {
				c.logger.Debug("sheet matches no category",
					slog.String("file", wb.BookName),
					slog.String("sheet", s.Name))
				continue
			}
			c.logger.Debug("sheet classified",
				slog.String("file", wb.BookName),
				slog.String("sheet", s.Name),
				slog.String("category", code))
			buckets[code] = append(buckets[code], models.RawSheet{
				Source: wb.BookName,
				Sheet:  s.Name,
				Table:  s.Table,
			})
		}
	}
	return buckets
}

// MatchCategory returns the first code contained in sheetName, ignoring case.
func MatchCategory(sheetName string, codes []string) (string, bool) {
	upper := strings.ToUpper(sheetName)
	for _, code := range codes {
		if strings.Contains(upper, strings.ToUpper(code)) {
			return code, true
		}
	}
	return "", false
}

// SaveProcessed writes the concatenated table of every non-empty bucket to
// <processed_folder>/<CODE>_processed_<timestamp>.xlsx and returns the paths
// in configured order.
func (c *Collector) SaveProcessed(buckets models.Buckets, now time.Time) ([]string, error) {
	dir := c.cfg.DataSources.ProcessedFolder
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	timestamp := now.Format(ProcessedTimestampLayout)
	var paths []string
	for _, code := range c.cfg.Modules {
		if len(buckets[code]) == 0 {
			continue
		}
		combined := models.ConcatTables(buckets.Tables(code)...)
		path := filepath.Join(dir, fmt.Sprintf("%s_processed_%s.xlsx", code, timestamp))
		if err := parser.WriteTable(path, code, combined); err != nil {
			return paths, fmt.Errorf("save %s data: %w", code, err)
		}
		c.logger.Info("saved processed data", slog.String("category", code), slog.String("path", path))
		paths = append(paths, path)
	}
	return paths, nil
}
