package explain

import (
	"fmt"

	"github.com/sparkpoints/evalml/pkg/errors"
)

// reportType selects one of the two report families.
type reportType string

const (
	reportTypeExplainPredictions reportType = "explain_predictions"
	reportTypeBestWorst          reportType = "explain_predictions_best_worst"
)

// newSectionComposer wires the section makers matching (report type, problem
// type). Every polymorphism decision lives here so the composer and makers
// stay variant-agnostic; an unrecognized combination is a programming defect
// and fails with a configuration error rather than falling back.
func newSectionComposer(rt reportType, cfg *config, data *reportData) (*sectionComposer, error) {
	tables := newTableMaker(cfg)

	switch rt {
	case reportTypeExplainPredictions:
		return &sectionComposer{
			heading:         newIndexHeadingMaker(len(data.indexList)),
			predictedValues: emptyPredictedValuesMaker,
			tables:          tables,
		}, nil

	case reportTypeBestWorst:
		predictedValues := newRegressionPredictedValuesMaker(data.metricName)
		if data.model.ProblemType().IsClassification() {
			predictedValues = newClassificationPredictedValuesMaker(data.metricName)
		}
		return &sectionComposer{
			heading:         newBestWorstHeadingMaker(cfg.numToExplain),
			predictedValues: predictedValues,
			tables:          tables,
		}, nil

	default:
		return nil, errors.NewConfigurationError("newSectionComposer",
			fmt.Sprintf("report_type=%s problem_type=%s", rt, data.model.ProblemType()))
	}
}
