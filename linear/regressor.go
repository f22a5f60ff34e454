// Package linear provides fitted linear estimator wrappers. Models are
// constructed from parameters learned elsewhere (coefficients, intercepts,
// class labels) and expose the prediction capabilities the reporting layer
// consumes.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sparkpoints/evalml/core/model"
	"github.com/sparkpoints/evalml/pkg/errors"
)

// Regressor is a fitted linear regression model: y = Xw + b.
type Regressor struct {
	model.BaseEstimator
	Coef      *mat.VecDense
	Intercept float64

	// featureMeans holds per-feature training means, used as the default
	// background for attribution computation.
	featureMeans []float64
}

// NewRegressor creates a fitted regressor from learned parameters.
// featureMeans may be nil, in which case a zero background is assumed.
func NewRegressor(coef []float64, intercept float64, featureMeans []float64) *Regressor {
	r := &Regressor{
		Coef:         mat.NewVecDense(len(coef), append([]float64(nil), coef...)),
		Intercept:    intercept,
		featureMeans: append([]float64(nil), featureMeans...),
	}
	r.SetFitted()
	return r
}

// ProblemType returns model.Regression.
func (r *Regressor) ProblemType() model.ProblemType {
	return model.Regression
}

// Predict returns one predicted value per row of X.
func (r *Regressor) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Regressor", "Predict")
	}

	rows, cols := X.Dims()
	if cols != r.Coef.Len() {
		return nil, errors.NewDimensionError("Regressor.Predict", r.Coef.Len(), cols, 1)
	}

	out := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		sum := r.Intercept
		for j := 0; j < cols; j++ {
			sum += X.At(i, j) * r.Coef.AtVec(j)
		}
		out.SetVec(i, sum)
	}
	return out, nil
}

// PredictProba is not supported for regression models.
func (r *Regressor) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	return nil, errors.NewValueError("Regressor.PredictProba", "probabilities are not defined for regression")
}

// Classes returns nil; regression models have no class list.
func (r *Regressor) Classes() []string {
	return nil
}

// Coefficients returns a 1xF matrix of the learned coefficients.
func (r *Regressor) Coefficients() *mat.Dense {
	out := mat.NewDense(1, r.Coef.Len(), nil)
	for j := 0; j < r.Coef.Len(); j++ {
		out.Set(0, j, r.Coef.AtVec(j))
	}
	return out
}

// TrainingMeans returns the per-feature training means, or nil if unknown.
func (r *Regressor) TrainingMeans() []float64 {
	if len(r.featureMeans) == 0 {
		return nil
	}
	return append([]float64(nil), r.featureMeans...)
}
