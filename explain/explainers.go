package explain

import (
	"fmt"
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/sparkpoints/evalml/core/model"
	"github.com/sparkpoints/evalml/pkg/errors"
	"github.com/sparkpoints/evalml/pkg/log"
)

// ExplainPrediction explains a single record: the topK positive and topK
// negative contributing features to its prediction. The input must contain
// exactly one row.
func ExplainPrediction(m model.Fitted, record Features, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	if err := validateOutputFormat(cfg.outputFormat); err != nil {
		return nil, err
	}
	if record.NumRows() != 1 {
		return nil, errors.NewValidationError("input_features",
			"must contain exactly one row", record.NumRows())
	}

	slog.Debug("explaining single prediction",
		slog.String(log.OperationKey, "explain_prediction"),
		slog.String(log.ProblemTypeKey, m.ProblemType().String()),
		slog.Int(log.FeaturesKey, record.NumFeatures()),
		slog.String(log.OutputFormatKey, string(cfg.outputFormat)),
		slog.Int(log.TopKKey, cfg.topK))

	attrs, err := cfg.attributor.Attributions(m, record, cfg.background())
	if err != nil {
		return nil, err
	}
	normalized := NormalizeAttributions(attrs)
	tables, err := makeSinglePredictionTables(m, attrs, normalized, cfg.topK, cfg.includeShapValues)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Format: cfg.outputFormat,
		Report: &Report{Sections: []RecordSection{{Tables: tables}}},
	}
	if cfg.outputFormat == OutputText {
		result.Text = renderTablesText(tables)
	}
	return result, nil
}

// ExplainPredictions explains every record of the input, in original order,
// with no label or error context.
func ExplainPredictions(m model.Fitted, features Features, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	if err := validateOutputFormat(cfg.outputFormat); err != nil {
		return nil, err
	}
	if features.NumRows() == 0 {
		return nil, errors.NewValidationError("input_features",
			"must be non-empty", features.NumRows())
	}

	slog.Debug("explaining predictions",
		slog.String(log.OperationKey, "explain_predictions"),
		slog.String(log.ProblemTypeKey, m.ProblemType().String()),
		slog.Int(log.SamplesKey, features.NumRows()),
		slog.Int(log.FeaturesKey, features.NumFeatures()),
		slog.String(log.OutputFormatKey, string(cfg.outputFormat)),
		slog.Int(log.TopKKey, cfg.topK))

	indexList := make([]int, features.NumRows())
	for i := range indexList {
		indexList[i] = i
	}
	data := &reportData{
		model:     m,
		features:  features,
		indexList: indexList,
	}
	return buildResult(reportTypeExplainPredictions, cfg, data)
}

// ExplainPredictionsBestWorst scores every record of the input against its
// true label, then explains the numToExplain lowest-error records followed by
// the numToExplain highest-error records. For classification problems yTrue
// holds encoded class indices.
func ExplainPredictionsBestWorst(m model.Fitted, features Features, yTrue *mat.VecDense, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	if err := validateOutputFormat(cfg.outputFormat); err != nil {
		return nil, err
	}
	rows := features.NumRows()
	if rows < 2*cfg.numToExplain {
		return nil, errors.NewValidationError("input_features",
			fmt.Sprintf("must contain at least %d rows; select a smaller num_to_explain if you do not have enough data", 2*cfg.numToExplain),
			rows)
	}
	if yTrue == nil {
		return nil, errors.NewValidationError("y_true", "must be provided", nil)
	}
	if yTrue.Len() != rows {
		return nil, errors.NewValidationError("y_true",
			fmt.Sprintf("must have the same number of data points as input_features (%d)", rows),
			yTrue.Len())
	}

	metric := defaultMetric(m.ProblemType())
	if cfg.metric != nil {
		metric = *cfg.metric
	}

	slog.Debug("explaining best and worst predictions",
		slog.String(log.OperationKey, "explain_predictions_best_worst"),
		slog.String(log.ProblemTypeKey, m.ProblemType().String()),
		slog.String(log.MetricKey, metric.Name),
		slog.Int(log.SamplesKey, rows),
		slog.Int(log.FeaturesKey, features.NumFeatures()),
		slog.String(log.OutputFormatKey, string(cfg.outputFormat)),
		slog.Int(log.TopKKey, cfg.topK),
		slog.Int(log.NumToExplainKey, cfg.numToExplain))

	yPred, yProba, scores, err := scoreRecords(m, features, yTrue, metric)
	if err != nil {
		return nil, err
	}

	indexList := selectBestWorst(scores, cfg.numToExplain)
	data := &reportData{
		model:      m,
		features:   features,
		yTrue:      yTrue,
		yPred:      yPred,
		yProba:     yProba,
		scores:     scores,
		indexList:  indexList,
		metricName: metric.Name,
	}
	return buildResult(reportTypeBestWorst, cfg, data)
}

func validateOutputFormat(format OutputFormat) error {
	switch format {
	case OutputText, OutputDict:
		return nil
	default:
		return errors.NewValidationError("output_format",
			"must be either text or dict", string(format))
	}
}

// scoreRecords runs the model and the metric over the whole dataset. Any
// failure, error or panic, is wrapped into a ScoreError keyed by the metric
// name; the underlying error never propagates raw.
func scoreRecords(m model.Fitted, features Features, yTrue *mat.VecDense, metric Metric) (*mat.VecDense, *mat.Dense, *mat.VecDense, error) {
	var (
		yPred  *mat.VecDense
		yProba *mat.Dense
		scores *mat.VecDense
	)
	scoreErr := errors.SafeExecute("score", func() error {
		var err error
		if m.ProblemType().IsClassification() {
			yProba, err = m.PredictProba(features.Matrix())
			if err != nil {
				return err
			}
			yPred, err = m.Predict(features.Matrix())
			if err != nil {
				return err
			}
			scores, err = metric.Score(yTrue, yPred, yProba)
			return err
		}
		yPred, err = m.Predict(features.Matrix())
		if err != nil {
			return err
		}
		scores, err = metric.Score(yTrue, yPred, nil)
		return err
	})
	if scoreErr != nil {
		return nil, nil, nil, errors.NewScoreError(metric.Name, scoreErr, fmt.Sprintf("%+v", scoreErr))
	}
	return yPred, yProba, scores, nil
}

// selectBestWorst returns the indices of the numToExplain lowest-error
// records followed by the numToExplain highest-error records. The sort is
// stable over (score, original index), so ties resolve to the earlier record.
func selectBestWorst(scores *mat.VecDense, numToExplain int) []int {
	order := make([]int, scores.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores.AtVec(order[i]) < scores.AtVec(order[j])
	})

	indexList := make([]int, 0, 2*numToExplain)
	indexList = append(indexList, order[:numToExplain]...)
	indexList = append(indexList, order[len(order)-numToExplain:]...)
	return indexList
}

// buildResult wires the composer for the requested report family, builds the
// structured report, and derives the text form when requested.
func buildResult(rt reportType, cfg *config, data *reportData) (*Result, error) {
	composer, err := newSectionComposer(rt, cfg, data)
	if err != nil {
		return nil, err
	}
	report, err := composer.compose(data)
	if err != nil {
		return nil, err
	}
	result := &Result{Format: cfg.outputFormat, Report: report}
	if cfg.outputFormat == OutputText {
		result.Text = renderReportText(report)
	}
	return result, nil
}
