// Package evalml provides a model-understanding layer for machine learning
// pipelines: human-readable explanations of individual predictions built from
// per-feature attribution values.
//
// Reports come in two families. The first explains every requested record;
// the second scores a dataset against its true labels and explains the best
// and worst predictions. Both are available as formatted text and as a
// structured report derived from the same representation.
//
// # Quick Start
//
// Explaining a single prediction of a fitted linear model:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/sparkpoints/evalml/explain"
//	    "github.com/sparkpoints/evalml/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    m := linear.NewRegressor([]float64{1.2, -0.8}, 5.0, nil)
//
//	    record, err := explain.NewFeatures(
//	        []string{"sqft", "age"},
//	        mat.NewDense(1, 2, []float64{14, 8}),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result, err := explain.ExplainPrediction(m, record)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Text)
//	}
//
// # Packages
//
//   - explain: report generation for prediction explanations
//   - linear: fitted linear estimator wrappers (regression and classification)
//   - metrics: per-record error metrics (absolute error, cross entropy)
//   - preprocessing: label encoding for classification targets
//   - core/model: estimator state and the fitted-model capability interfaces
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: structured logging helpers
package evalml
