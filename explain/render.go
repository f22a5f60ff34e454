package explain

import (
	"fmt"
	"strconv"
	"strings"
)

// renderReportText derives the text form of a report. Record headings are
// indented one tab, everything under them two tabs; sections are separated by
// a blank line.
func renderReportText(report *Report) string {
	var b strings.Builder
	for _, section := range report.Sections {
		b.WriteString(fmt.Sprintf("\t%s%d of %d\n\n",
			headingPrefix(section.Rank.Prefix), section.Rank.Rank, section.Rank.Total))

		if pv := section.PredictedValues; pv != nil {
			if pv.Probabilities != nil {
				pairs := make([]string, len(pv.Probabilities))
				for i, p := range pv.Probabilities {
					pairs[i] = fmt.Sprintf("%s: %s", p.ClassName, formatFloat(p.Probability))
				}
				b.WriteString(fmt.Sprintf("\t\tPredicted Probabilities: [%s]\n", strings.Join(pairs, ", ")))
			}
			b.WriteString(fmt.Sprintf("\t\tPredicted Value: %s\n", pv.PredictedValue))
			b.WriteString(fmt.Sprintf("\t\tTarget Value: %s\n", pv.TargetValue))
			b.WriteString(fmt.Sprintf("\t\t%s: %s\n\n", pv.ErrorName, formatFloat(pv.ErrorValue)))
		}

		for _, line := range strings.Split(renderTablesText(section.Tables), "\n") {
			b.WriteString("\t\t" + line + "\n")
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

func headingPrefix(prefix string) string {
	switch prefix {
	case "best":
		return "Best "
	case "worst":
		return "Worst "
	default:
		return ""
	}
}

// formatFloat prints v in the shortest form that round-trips, so a
// display-rounded 0.5 renders as "0.5" rather than "0.500".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
