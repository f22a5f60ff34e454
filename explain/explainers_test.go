package explain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/mat"

	"github.com/sparkpoints/evalml/linear"
	"github.com/sparkpoints/evalml/pkg/errors"
)

func regressionDataset(t *testing.T) (*linear.Regressor, Features, *mat.VecDense) {
	t.Helper()
	m := linear.NewRegressor([]float64{1}, 0, nil)

	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	f, err := NewFeatures([]string{"x"}, mat.NewDense(10, 1, x))
	require.NoError(t, err)

	// Absolute errors per record: 5, 0.1, 3, 0.2, 4, 0.3, 2, 0.4, 1, 0.5.
	deltas := []float64{5, 0.1, 3, 0.2, 4, 0.3, 2, 0.4, 1, 0.5}
	yTrue := mat.NewVecDense(10, nil)
	for i := range x {
		yTrue.SetVec(i, x[i]+deltas[i])
	}
	return m, f, yTrue
}

func TestExplainPredictionRegression(t *testing.T) {
	m := linear.NewRegressor([]float64{0.5, -0.9, 0.1}, 0, nil)
	record := singleRecord(t, []string{"a", "b", "c"}, []float64{1, 1, 1})

	result, err := ExplainPrediction(m, record)

	require.NoError(t, err)
	require.NotNil(t, result.Report)
	require.Len(t, result.Report.Sections, 1)

	rows := result.Report.Sections[0].Tables[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[0].FeatureName)
	assert.Equal(t, "c", rows[1].FeatureName)
	assert.Equal(t, "b", rows[2].FeatureName)
	assert.Equal(t, "++", rows[0].Qualitative)
	assert.Equal(t, "+", rows[1].Qualitative)

	assert.Contains(t, result.Text, "Feature Name")
	assert.Contains(t, result.Text, "Contribution to Prediction")
}

func TestExplainPredictionDictFormat(t *testing.T) {
	m := linear.NewRegressor([]float64{1}, 0, nil)
	record := singleRecord(t, []string{"a"}, []float64{2})

	result, err := ExplainPrediction(m, record, WithOutputFormat(OutputDict))

	require.NoError(t, err)
	assert.Empty(t, result.Text)
	require.NotNil(t, result.Report)

	raw, err := json.Marshal(result.Report)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"explanations"`)
	assert.Contains(t, string(raw), `"feature_name"`)
}

func TestExplainPredictionValidation(t *testing.T) {
	m := linear.NewRegressor([]float64{1}, 0, nil)
	two, err := NewFeatures([]string{"a"}, mat.NewDense(2, 1, []float64{1, 2}))
	require.NoError(t, err)

	t.Run("more than one row", func(t *testing.T) {
		_, err := ExplainPrediction(m, two)
		var valErr *errors.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "input_features", valErr.ParamName)
	})

	t.Run("zero rows", func(t *testing.T) {
		_, err := ExplainPrediction(m, Features{})
		var valErr *errors.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "input_features", valErr.ParamName)
	})

	t.Run("invalid output format", func(t *testing.T) {
		record := singleRecord(t, []string{"a"}, []float64{1})
		_, err := ExplainPrediction(m, record, WithOutputFormat("json"))
		var valErr *errors.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "output_format", valErr.ParamName)
		assert.Equal(t, "json", valErr.Value)
	})
}

func TestExplainPredictionsNumbersEveryRecord(t *testing.T) {
	m := linear.NewRegressor([]float64{1}, 0, nil)
	f, err := NewFeatures([]string{"x"}, mat.NewDense(3, 1, []float64{1, 2, 3}))
	require.NoError(t, err)

	result, err := ExplainPredictions(m, f)

	require.NoError(t, err)
	require.Len(t, result.Report.Sections, 3)
	for i, section := range result.Report.Sections {
		assert.Empty(t, section.Rank.Prefix)
		assert.Equal(t, i+1, section.Rank.Rank)
		assert.Equal(t, i, section.Rank.Index)
		assert.Equal(t, 3, section.Rank.Total)
		assert.Nil(t, section.PredictedValues)
	}
	assert.Contains(t, result.Text, "\t1 of 3\n")
	assert.Contains(t, result.Text, "\t3 of 3\n")
}

func TestExplainPredictionsValidation(t *testing.T) {
	m := linear.NewRegressor([]float64{1}, 0, nil)

	t.Run("empty input", func(t *testing.T) {
		_, err := ExplainPredictions(m, Features{})
		var valErr *errors.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "input_features", valErr.ParamName)
	})

	t.Run("invalid output format", func(t *testing.T) {
		f, err := NewFeatures([]string{"x"}, mat.NewDense(1, 1, []float64{1}))
		require.NoError(t, err)
		_, err = ExplainPredictions(m, f, WithOutputFormat("yaml"))
		var valErr *errors.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "output_format", valErr.ParamName)
	})
}

func TestExplainPredictionsBestWorstRegression(t *testing.T) {
	m, f, yTrue := regressionDataset(t)

	result, err := ExplainPredictionsBestWorst(m, f, yTrue, WithNumToExplain(2))

	require.NoError(t, err)
	require.Len(t, result.Report.Sections, 4)

	indices := make([]int, 4)
	for i, section := range result.Report.Sections {
		indices[i] = section.Rank.Index
	}
	assert.Equal(t, []int{1, 3, 4, 0}, indices)

	best1 := result.Report.Sections[0]
	assert.Equal(t, "best", best1.Rank.Prefix)
	assert.Equal(t, 1, best1.Rank.Rank)
	assert.Equal(t, 2, best1.Rank.Total)
	require.NotNil(t, best1.PredictedValues)
	assert.Equal(t, "1", best1.PredictedValues.PredictedValue)
	assert.Equal(t, "1.1", best1.PredictedValues.TargetValue)
	assert.Equal(t, "Absolute Difference", best1.PredictedValues.ErrorName)
	assert.InDelta(t, 0.1, best1.PredictedValues.ErrorValue, 1e-12)

	worst2 := result.Report.Sections[3]
	assert.Equal(t, "worst", worst2.Rank.Prefix)
	assert.Equal(t, 2, worst2.Rank.Rank)
	assert.Equal(t, 0, worst2.Rank.Index)

	assert.Contains(t, result.Text, "\tBest 1 of 2\n")
	assert.Contains(t, result.Text, "\tWorst 2 of 2\n")
	assert.Contains(t, result.Text, "\t\tPredicted Value: 1\n")
	assert.Contains(t, result.Text, "\t\tAbsolute Difference: 0.1\n")
}

func TestExplainPredictionsBestWorstValidation(t *testing.T) {
	m, f, yTrue := regressionDataset(t)

	t.Run("too few rows", func(t *testing.T) {
		_, err := ExplainPredictionsBestWorst(m, f, yTrue, WithNumToExplain(6))
		var valErr *errors.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "input_features", valErr.ParamName)
	})

	t.Run("missing labels", func(t *testing.T) {
		_, err := ExplainPredictionsBestWorst(m, f, nil)
		var valErr *errors.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "y_true", valErr.ParamName)
	})

	t.Run("label length mismatch", func(t *testing.T) {
		short := mat.NewVecDense(3, []float64{1, 2, 3})
		_, err := ExplainPredictionsBestWorst(m, f, short)
		var valErr *errors.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "y_true", valErr.ParamName)
	})

	t.Run("invalid output format", func(t *testing.T) {
		_, err := ExplainPredictionsBestWorst(m, f, yTrue, WithOutputFormat("html"))
		var valErr *errors.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "output_format", valErr.ParamName)
	})
}

func TestExplainPredictionsBestWorstBinary(t *testing.T) {
	m := linear.NewBinaryClassifier([]float64{1}, 0, "no", "yes", nil)
	f, err := NewFeatures([]string{"x"}, mat.NewDense(4, 1, []float64{-2, -1, 1, 2}))
	require.NoError(t, err)
	yTrue := mat.NewVecDense(4, []float64{0, 0, 1, 1})

	result, err := ExplainPredictionsBestWorst(m, f, yTrue, WithNumToExplain(1))

	require.NoError(t, err)
	require.Len(t, result.Report.Sections, 2)

	// Records 0 and 3 tie on the lowest error; the stable sort keeps
	// record 0 first. Records 1 and 2 tie on the highest.
	best := result.Report.Sections[0]
	assert.Equal(t, "best", best.Rank.Prefix)
	assert.Equal(t, 0, best.Rank.Index)
	worst := result.Report.Sections[1]
	assert.Equal(t, "worst", worst.Rank.Prefix)
	assert.Equal(t, 2, worst.Rank.Index)

	require.NotNil(t, best.PredictedValues)
	require.Len(t, best.PredictedValues.Probabilities, 2)
	assert.Equal(t, "no", best.PredictedValues.Probabilities[0].ClassName)
	assert.Equal(t, "yes", best.PredictedValues.Probabilities[1].ClassName)
	assert.Equal(t, "no", best.PredictedValues.PredictedValue)
	assert.Equal(t, "no", best.PredictedValues.TargetValue)
	assert.Equal(t, "Cross Entropy", best.PredictedValues.ErrorName)

	assert.Contains(t, result.Text, "Predicted Probabilities: [no: 0.982, yes: 0.018]")
	assert.Contains(t, result.Text, "\t\tCross Entropy: 0.018\n")
}

func TestExplainPredictionsBestWorstWrapsMetricError(t *testing.T) {
	m, f, yTrue := regressionDataset(t)
	failing := Metric{
		Name: "boom_metric",
		Score: func(_, _ *mat.VecDense, _ *mat.Dense) (*mat.VecDense, error) {
			return nil, errors.New("metric exploded")
		},
	}

	_, err := ExplainPredictionsBestWorst(m, f, yTrue, WithMetric(failing))

	var scoreErr *errors.ScoreError
	require.True(t, errors.As(err, &scoreErr))
	failure, ok := scoreErr.Exceptions["boom_metric"]
	require.True(t, ok)
	assert.ErrorContains(t, failure.Err, "metric exploded")
	assert.NotEmpty(t, failure.Stack)
}

func TestExplainPredictionsBestWorstWrapsMetricPanic(t *testing.T) {
	m, f, yTrue := regressionDataset(t)
	panicking := Metric{
		Name: "panic_metric",
		Score: func(_, _ *mat.VecDense, _ *mat.Dense) (*mat.VecDense, error) {
			panic("index out of range")
		},
	}

	_, err := ExplainPredictionsBestWorst(m, f, yTrue, WithMetric(panicking))

	var scoreErr *errors.ScoreError
	require.True(t, errors.As(err, &scoreErr))
	var panicErr *errors.PanicError
	require.True(t, errors.As(err, &panicErr))
	assert.Equal(t, "index out of range", panicErr.PanicValue)
}

func TestSelectBestWorstStableTies(t *testing.T) {
	scores := mat.NewVecDense(4, []float64{1, 1, 2, 2})

	assert.Equal(t, []int{0, 3}, selectBestWorst(scores, 1))
	assert.Equal(t, []int{0, 1, 2, 3}, selectBestWorst(scores, 2))
}

func TestBestWorstTextDeterministic(t *testing.T) {
	m, f, yTrue := regressionDataset(t)

	first, err := ExplainPredictionsBestWorst(m, f, yTrue, WithNumToExplain(2), WithIncludeShapValues(true))
	require.NoError(t, err)
	second, err := ExplainPredictionsBestWorst(m, f, yTrue, WithNumToExplain(2), WithIncludeShapValues(true))
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
}

func TestSectionComposerFactoryRejectsUnknownReportType(t *testing.T) {
	m := linear.NewRegressor([]float64{1}, 0, nil)
	data := &reportData{model: m}

	_, err := newSectionComposer(reportType("bogus"), newConfig(), data)

	var cfgErr *errors.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
}
