package explain

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/sparkpoints/evalml/core/model"
	"github.com/sparkpoints/evalml/pkg/errors"
)

// bucketWidth is the magnitude per contribution symbol. A normalized value v
// displays min(floor(|v|/0.2)+1, 5) repetitions of "+" or "-". The
// boundaries 0.2/0.4/0.6/0.8/1.0 map to 1/2/3/4/5 symbols and are fixed.
const bucketWidth = 0.2

const maxSymbols = 5

// contributionSymbol encodes the sign and bucketed magnitude of a normalized
// attribution value. A value of exactly zero displays "+".
func contributionSymbol(value float64) string {
	symbol := "+"
	if value < 0 {
		symbol = "-"
	}
	count := int(math.Floor(math.Abs(value)/bucketWidth)) + 1
	if count > maxSymbols {
		count = maxSymbols
	}
	return strings.Repeat(symbol, count)
}

// makeRows ranks the features of one attribution set and produces the table
// rows to display. Features are sorted by (normalized value, name) ascending;
// with 2*topK or fewer features every feature is shown highest-first,
// otherwise the topK highest (descending) are followed by the topK lowest
// (descending among themselves).
func makeRows(attr, normalized Attribution, topK int, includeShapValues bool) []Row {
	type ranked struct {
		value float64
		name  string
	}
	tuples := make([]ranked, 0, len(normalized))
	for name, values := range normalized {
		tuples = append(tuples, ranked{value: values[0], name: name})
	}
	sort.Slice(tuples, func(i, j int) bool {
		if tuples[i].value != tuples[j].value {
			return tuples[i].value < tuples[j].value
		}
		return tuples[i].name < tuples[j].name
	})

	var display []ranked
	if len(tuples) <= 2*topK {
		display = make([]ranked, len(tuples))
		for i, t := range tuples {
			display[len(tuples)-1-i] = t
		}
	} else {
		display = make([]ranked, 0, 2*topK)
		for i := len(tuples) - 1; i >= len(tuples)-topK; i-- {
			display = append(display, tuples[i])
		}
		for i := topK - 1; i >= 0; i-- {
			display = append(display, tuples[i])
		}
	}

	rows := make([]Row, 0, len(display))
	for _, t := range display {
		row := Row{FeatureName: t.name, Qualitative: contributionSymbol(t.value)}
		if includeShapValues {
			raw := roundTo(attr[t.name][0], 2)
			row.Quantitative = &raw
		}
		rows = append(rows, row)
	}
	return rows
}

// makeSinglePredictionTables builds the attribution tables for one record,
// dispatched on the problem type: one table for regression, the
// positive-class table for binary problems, and one labeled table per class
// for multiclass problems.
func makeSinglePredictionTables(m model.Fitted, attrs, normalized ClassAttributions, topK int, includeShapValues bool) ([]TableData, error) {
	switch m.ProblemType() {
	case model.Regression:
		if len(attrs) < 1 {
			return nil, errors.NewValueError("makeSinglePredictionTables", "no attribution set for regression problem")
		}
		return []TableData{{Rows: makeRows(attrs[0], normalized[0], topK, includeShapValues)}}, nil

	case model.Binary:
		// The attribution algorithm returns one set per class; by
		// convention only the positive class (index 1) is displayed.
		if len(attrs) < 2 {
			return nil, errors.NewValueError("makeSinglePredictionTables", "binary problem requires attribution sets for both classes")
		}
		return []TableData{{Rows: makeRows(attrs[1], normalized[1], topK, includeShapValues)}}, nil

	case model.Multiclass:
		classes := m.Classes()
		if len(attrs) != len(classes) {
			return nil, errors.NewDimensionError("makeSinglePredictionTables", len(classes), len(attrs), 0)
		}
		tables := make([]TableData, 0, len(classes))
		for k, class := range classes {
			tables = append(tables, TableData{
				ClassName: class,
				Rows:      makeRows(attrs[k], normalized[k], topK, includeShapValues),
			})
		}
		return tables, nil

	default:
		return nil, errors.NewConfigurationError("makeSinglePredictionTables",
			fmt.Sprintf("problem_type=%s", m.ProblemType()))
	}
}

// renderTableText renders one attribution table as text.
func renderTableText(td TableData) string {
	includeShapValues := len(td.Rows) > 0 && td.Rows[0].Quantitative != nil

	headers := []string{"Feature Name", "Contribution to Prediction"}
	if includeShapValues {
		headers = append(headers, "SHAP Value")
	}

	var buf strings.Builder
	table := newTextTable(headers, &buf)
	for _, row := range td.Rows {
		cells := []string{row.FeatureName, row.Qualitative}
		if row.Quantitative != nil {
			cells = append(cells, fmt.Sprintf("%.2f", *row.Quantitative))
		}
		_ = table.Append(cells)
	}
	_ = table.Render()
	return strings.TrimRight(buf.String(), "\n")
}

// renderTablesText renders a record's tables. Multiclass tables are preceded
// by a class label line and separated by blank lines.
func renderTablesText(tables []TableData) string {
	if len(tables) == 1 && tables[0].ClassName == "" {
		return renderTableText(tables[0])
	}

	var parts []string
	for _, td := range tables {
		parts = append(parts, fmt.Sprintf("Class: %s\n", td.ClassName))
		parts = append(parts, strings.Split(renderTableText(td), "\n")...)
		parts = append(parts, "\n")
	}
	return strings.Join(parts, "\n")
}

// newTextTable creates a table writer with the fixed report formatting:
// centered cells, headers kept verbatim, no row wrapping.
func newTextTable(headers []string, w *strings.Builder) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignCenter},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
		Behavior: tw.Behavior{TrimSpace: tw.On},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
