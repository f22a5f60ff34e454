package explain

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sparkpoints/evalml/core/model"
	"github.com/sparkpoints/evalml/metrics"
)

// Metric scores every record of a dataset; lower scores are better. The
// score function receives the true labels (encoded class indices for
// classification), the predicted values, and the predicted probabilities
// (nil for regression).
type Metric struct {
	Name  string
	Score func(yTrue, yPred *mat.VecDense, proba *mat.Dense) (*mat.VecDense, error)
}

// AbsErrorMetric is the default best/worst ranking metric for regression.
func AbsErrorMetric() Metric {
	return Metric{
		Name: "abs_error",
		Score: func(yTrue, yPred *mat.VecDense, _ *mat.Dense) (*mat.VecDense, error) {
			return metrics.AbsError(yTrue, yPred)
		},
	}
}

// CrossEntropyMetric is the default best/worst ranking metric for
// classification.
func CrossEntropyMetric() Metric {
	return Metric{
		Name: "cross_entropy",
		Score: func(yTrue, _ *mat.VecDense, proba *mat.Dense) (*mat.VecDense, error) {
			return metrics.CrossEntropy(yTrue, proba)
		},
	}
}

func defaultMetric(problemType model.ProblemType) Metric {
	if problemType.IsClassification() {
		return CrossEntropyMetric()
	}
	return AbsErrorMetric()
}

// displayErrorName maps the default metric names to their human-readable
// report labels. Custom metric names pass through unchanged.
func displayErrorName(name string) string {
	switch name {
	case "cross_entropy":
		return "Cross Entropy"
	case "abs_error":
		return "Absolute Difference"
	default:
		return name
	}
}
