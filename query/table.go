package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatStatisticsTable renders report as a fixed-width two-column table,
// padding the value column on display width rather than byte length so it
// stays aligned under CLI rendering of wide characters.
func FormatStatisticsTable(report StatisticsReport) string {
	rows := [][2]string{
		{"total persons", strconv.Itoa(report.TotalPersons)},
		{"total families", strconv.Itoa(report.TotalFamilies)},
		{"orphans", strconv.Itoa(report.Orphans)},
		{"roots", strconv.Itoa(report.Roots)},
		{"avg sibship size", strconv.FormatFloat(report.AverageSibshipSize, 'f', 2, 64)},
		{"max generation depth", strconv.FormatUint(report.MaxGenerationDepth, 10)},
		{"mean consanguinity", strconv.FormatFloat(report.MeanConsanguinity, 'f', 4, 64)},
		{"max consanguinity", strconv.FormatFloat(report.MaxConsanguinity, 'f', 4, 64)},
	}

	labelWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for _, row := range rows {
		pad := labelWidth - runewidth.StringWidth(row[0])
		fmt.Fprintf(&b, "%s%s  %s\n", row[0], strings.Repeat(" ", pad), row[1])
	}
	return b.String()
}
