package render

import (
	"bytes"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/models"
)

// Style holds the configurable font sizes in points.
type Style struct {
	TitleFontSize   float64
	HeadingFontSize float64
}

type rgb struct{ r, g, b int }

var (
	titleColor    = rgb{0x1f, 0x47, 0x88}
	headingColor  = rgb{0x2e, 0x5c, 0x8a}
	headerText    = rgb{245, 245, 245}
	black         = rgb{0, 0, 0}
	rowBackground = []rgb{{255, 255, 255}, {0xf0, 0xf0, 0xf0}}
)

// Layout in millimetres.
const (
	fontFamily   = "Helvetica"
	bodySize     = 10
	tableHeadSz  = 12
	nameColWidth = 100
	valColWidth  = 50
	headRowH     = 9
	bodyRowH     = 7
	lineH        = 5
	margin       = 20
)

// WritePDF draws the report on A4 pages and saves it to path. Nothing is
// written unless the whole document renders.
func WritePDF(report *models.Report, style Style, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetCreationDate(report.GeneratedAt)
	pdf.SetModificationDate(report.GeneratedAt)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(report.Title), false)
	pdf.SetAuthor(tr(report.Organization), false)

	d := &drawer{pdf: pdf, tr: tr, style: style}
	d.cover(report)
	d.summary(report)
	if len(report.Sections) > 0 {
		pdf.AddPage()
		for _, s := range report.Sections {
			d.section(s)
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

type drawer struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	style Style
}

func (d *drawer) color(c rgb) {
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

func (d *drawer) title(text string) {
	d.pdf.SetFont(fontFamily, "B", d.style.TitleFontSize)
	d.color(titleColor)
	d.pdf.CellFormat(0, d.style.TitleFontSize*0.5, d.tr(text), "", 1, "C", false, 0, "")
	d.pdf.Ln(10)
	d.color(black)
}

func (d *drawer) cover(r *models.Report) {
	d.pdf.AddPage()
	d.pdf.Ln(30)
	d.title(r.Title)

	d.pdf.SetFont(fontFamily, "B", bodySize)
	d.pdf.CellFormat(0, lineH, d.tr(r.Organization), "", 1, "L", false, 0, "")
	d.pdf.SetFont(fontFamily, "", bodySize)
	d.pdf.CellFormat(0, lineH, d.tr("Reporting Period: "+r.Period), "", 1, "L", false, 0, "")
	d.pdf.Ln(20)
	d.pdf.CellFormat(0, lineH, d.tr("Generated on: "+r.GeneratedAt.Format(GeneratedLayout)), "", 1, "L", false, 0, "")
}

func (d *drawer) summary(r *models.Report) {
	d.pdf.AddPage()
	d.title(r.SummaryTitle)
	d.pdf.SetFont(fontFamily, "", bodySize)
	d.pdf.MultiCell(0, lineH, d.tr(r.Summary), "", "L", false)
}

func (d *drawer) section(s models.Section) {
	d.pdf.Ln(4)
	d.pdf.SetFont(fontFamily, "B", d.style.HeadingFontSize)
	d.color(headingColor)
	d.pdf.CellFormat(0, d.style.HeadingFontSize*0.5, d.tr(s.Title), "", 1, "L", false, 0, "")
	d.color(black)
	d.pdf.Ln(3)

	if s.Placeholder != "" {
		d.pdf.SetFont(fontFamily, "", bodySize)
		d.pdf.MultiCell(0, lineH, d.tr(s.Placeholder), "", "L", false)
	} else {
		d.table(s.Rows)
	}
	d.pdf.Ln(10)
}

func (d *drawer) table(rows []models.MetricRow) {
	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetLineWidth(0.3)

	d.pdf.SetFont(fontFamily, "B", tableHeadSz)
	d.pdf.SetFillColor(headingColor.r, headingColor.g, headingColor.b)
	d.color(headerText)
	d.pdf.CellFormat(nameColWidth, headRowH, "Metric", "1", 0, "L", true, 0, "")
	d.pdf.CellFormat(valColWidth, headRowH, "Value", "1", 1, "L", true, 0, "")

	d.pdf.SetFont(fontFamily, "", bodySize)
	d.color(black)
	for i, row := range rows {
		bg := rowBackground[i%len(rowBackground)]
		d.pdf.SetFillColor(bg.r, bg.g, bg.b)
		d.pdf.CellFormat(nameColWidth, bodyRowH, d.tr(row.Name), "1", 0, "L", true, 0, "")
		d.pdf.CellFormat(valColWidth, bodyRowH, d.tr(row.Value), "1", 1, "L", true, 0, "")
	}
}
