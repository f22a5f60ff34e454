package explain

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sparkpoints/evalml/core/model"
)

// reportData is the immutable bundle of everything needed to build one
// report. It is created once per top-level call and read-only thereafter.
type reportData struct {
	model      model.Fitted
	features   Features
	yTrue      *mat.VecDense
	yPred      *mat.VecDense
	yProba     *mat.Dense
	scores     *mat.VecDense
	indexList  []int
	metricName string
}

// A report section has three parts, each produced by a single-purpose maker:
// the heading, the predicted values (possibly omitted), and the attribution
// tables. The factory picks one maker per part for the requested report and
// problem type; adding a variant means adding a maker and a factory entry.

// headingMaker produces the rank information for the record at the given
// position of the report's index list.
type headingMaker func(rank, index int) RankInfo

// predictedValuesMaker summarizes the model output for one record, or
// returns nil for reports that omit the summary.
type predictedValuesMaker func(index int, data *reportData) *PredictedValues

// tableMaker builds the attribution tables for one record.
type tableMaker func(index int, data *reportData) ([]TableData, error)

// newIndexHeadingMaker numbers records "1 of N" through "N of N" for reports
// over caller-chosen indices.
func newIndexHeadingMaker(total int) headingMaker {
	return func(rank, index int) RankInfo {
		return RankInfo{Rank: rank + 1, Index: index, Total: total}
	}
}

// newBestWorstHeadingMaker labels the first numToExplain records "Best r of
// n" and the rest "Worst r of n", ranks counted per half.
func newBestWorstHeadingMaker(numToExplain int) headingMaker {
	return func(rank, index int) RankInfo {
		if rank < numToExplain {
			return RankInfo{Prefix: "best", Rank: rank + 1, Index: index, Total: numToExplain}
		}
		return RankInfo{Prefix: "worst", Rank: rank - numToExplain + 1, Index: index, Total: numToExplain}
	}
}

// emptyPredictedValuesMaker omits the predicted-value summary. Reports over
// caller-chosen indices have no ground truth to compare against.
func emptyPredictedValuesMaker(index int, data *reportData) *PredictedValues {
	return nil
}

// newRegressionPredictedValuesMaker summarizes a regression record:
// predicted value, target value, and the per-record error, all rounded to 3
// decimals.
func newRegressionPredictedValuesMaker(metricName string) predictedValuesMaker {
	errorName := displayErrorName(metricName)
	return func(index int, data *reportData) *PredictedValues {
		return &PredictedValues{
			PredictedValue: formatFloat(roundTo(data.yPred.AtVec(index), 3)),
			TargetValue:    formatFloat(roundTo(data.yTrue.AtVec(index), 3)),
			ErrorName:      errorName,
			ErrorValue:     roundTo(data.scores.AtVec(index), 3),
		}
	}
}

// newClassificationPredictedValuesMaker summarizes a classification record:
// the predicted probability per class, the predicted and target labels, and
// the per-record error.
func newClassificationPredictedValuesMaker(metricName string) predictedValuesMaker {
	errorName := displayErrorName(metricName)
	return func(index int, data *reportData) *PredictedValues {
		classes := data.model.Classes()
		probabilities := make([]ClassProbability, len(classes))
		for k, class := range classes {
			probabilities[k] = ClassProbability{
				ClassName:   class,
				Probability: roundTo(data.yProba.At(index, k), 3),
			}
		}
		return &PredictedValues{
			Probabilities:  probabilities,
			PredictedValue: classes[int(data.yPred.AtVec(index))],
			TargetValue:    classes[int(data.yTrue.AtVec(index))],
			ErrorName:      errorName,
			ErrorValue:     roundTo(data.scores.AtVec(index), 3),
		}
	}
}

// newTableMaker slices the input down to one record, runs the attribution
// algorithm on it, and builds the problem-type-specific tables.
func newTableMaker(cfg *config) tableMaker {
	background := cfg.background()
	return func(index int, data *reportData) ([]TableData, error) {
		record := data.features.Row(index)
		attrs, err := cfg.attributor.Attributions(data.model, record, background)
		if err != nil {
			return nil, err
		}
		normalized := NormalizeAttributions(attrs)
		return makeSinglePredictionTables(data.model, attrs, normalized, cfg.topK, cfg.includeShapValues)
	}
}
