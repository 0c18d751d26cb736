package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// sectionTitles holds the display heading of each ESRS topical standard.
var sectionTitles = map[string]string{
	"E1": "E1 - Climate Change",
	"E2": "E2 - Pollution",
	"E3": "E3 - Water and Marine Resources",
	"E4": "E4 - Biodiversity and Ecosystems",
	"E5": "E5 - Resource Use and Circular Economy",
	"S1": "S1 - Own Workforce",
	"S2": "S2 - Workers in the Value Chain",
	"S3": "S3 - Affected Communities",
	"S4": "S4 - Consumers and End-users",
	"G1": "G1 - Business Conduct",
}

// SectionTitle returns the heading for a category, or the code itself.
func SectionTitle(code string) string {
	if title, ok := sectionTitles[code]; ok {
		return title
	}
	return code
}

// Humanize turns a metric name like "total_scope1" into "Total Scope1".
// Every run of letters is title-cased on its own, so a letter after a digit
// starts a new word: "scope1a" becomes "Scope1A".
func Humanize(name string) string {
	caser := cases.Title(language.English)
	s := strings.ReplaceAll(name, "_", " ")

	var b strings.Builder
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}

// FormatValue renders floats as thousands-separated numbers with two
// decimals and everything else as plain text.
func FormatValue(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return message.NewPrinter(language.English).Sprintf("%.2f", n)
	case float32:
		return message.NewPrinter(language.English).Sprintf("%.2f", n)
	case int64:
		return strconv.FormatInt(n, 10)
	case string:
		return n
	default:
		return fmt.Sprint(v)
	}
}
