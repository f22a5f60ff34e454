package explain

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sparkpoints/evalml/core/model"
	"github.com/sparkpoints/evalml/pkg/errors"
)

// SaveAttributionPlot writes a bar chart of one record's per-feature
// attribution values to path; the image format follows the file extension.
// Features are ordered highest attribution first. For binary problems the
// positive-class attributions are plotted; for multiclass, the predicted
// class's attributions.
func SaveAttributionPlot(m model.Fitted, record Features, path string, opts ...Option) error {
	cfg := newConfig(opts...)
	if record.NumRows() != 1 {
		return errors.NewValidationError("input_features",
			"must contain exactly one row", record.NumRows())
	}

	attrs, err := cfg.attributor.Attributions(m, record, cfg.background())
	if err != nil {
		return err
	}

	var classIndex int
	switch m.ProblemType() {
	case model.Regression:
		classIndex = 0
	case model.Binary:
		classIndex = 1
	case model.Multiclass:
		pred, err := m.Predict(record.Matrix())
		if err != nil {
			return err
		}
		classIndex = int(pred.AtVec(0))
	default:
		return errors.NewConfigurationError("SaveAttributionPlot",
			fmt.Sprintf("problem_type=%s", m.ProblemType()))
	}
	if classIndex >= len(attrs) {
		return errors.NewDimensionError("SaveAttributionPlot", classIndex+1, len(attrs), 0)
	}
	attr := attrs[classIndex]

	type ranked struct {
		value float64
		name  string
	}
	tuples := make([]ranked, 0, len(attr))
	for name, values := range attr {
		tuples = append(tuples, ranked{value: values[0], name: name})
	}
	sort.Slice(tuples, func(i, j int) bool {
		if tuples[i].value != tuples[j].value {
			return tuples[i].value > tuples[j].value
		}
		return tuples[i].name < tuples[j].name
	})

	names := make([]string, len(tuples))
	values := make(plotter.Values, len(tuples))
	for i, t := range tuples {
		names[i] = t.name
		values[i] = t.value
	}

	p := plot.New()
	p.Title.Text = "Feature Attributions"
	p.Y.Label.Text = "Contribution to Prediction"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return errors.Wrap(err, "build attribution bar chart")
	}
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "save attribution plot")
	}
	return nil
}
