package explain

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sparkpoints/evalml/core/model"
	"github.com/sparkpoints/evalml/pkg/errors"
)

// Attribution maps each feature name of one record to its attribution
// values. The first element of each slice is the scalar used for ranking and
// display; later elements may carry auxiliary data from the algorithm.
type Attribution map[string][]float64

// ClassAttributions holds one Attribution per class: a single entry for
// regression, two for binary classification (index 1 is the positive class),
// and one per class for multiclass problems.
type ClassAttributions []Attribution

// Attributor computes per-feature attribution values for a single record.
// Implementations treat the model as a black box or exploit its structure;
// the reporting layer only depends on this interface.
type Attributor interface {
	// Attributions explains the single record in features. background, when
	// non-nil, supplies the per-feature reference point.
	Attributions(m model.Fitted, features Features, background []float64) (ClassAttributions, error)
}

// NormalizeAttributions rescales each class's values by the sum of the
// absolute first-values of that class, for display purposes. A zero sum
// leaves the values unchanged. The input is not modified.
func NormalizeAttributions(attrs ClassAttributions) ClassAttributions {
	out := make(ClassAttributions, len(attrs))
	for c, attr := range attrs {
		var total float64
		for _, values := range attr {
			if len(values) > 0 {
				total += math.Abs(values[0])
			}
		}

		normalized := make(Attribution, len(attr))
		for name, values := range attr {
			scaled := append([]float64(nil), values...)
			if total != 0 {
				for i := range scaled {
					scaled[i] /= total
				}
			}
			normalized[name] = scaled
		}
		out[c] = normalized
	}
	return out
}

// coefficientModel is the structural hook LinearSHAP needs: per-class
// coefficients and, when known, the per-feature training means used as the
// default background.
type coefficientModel interface {
	Coefficients() *mat.Dense
	TrainingMeans() []float64
}

// LinearSHAP computes exact SHAP values for linear models: the attribution
// of feature j toward class k is coef(k,j) * (x_j - background_j). For
// feature-independent linear models this is the closed-form Shapley value.
type LinearSHAP struct{}

// Attributions implements Attributor.
func (LinearSHAP) Attributions(m model.Fitted, features Features, background []float64) (ClassAttributions, error) {
	if features.NumRows() != 1 {
		return nil, errors.NewDimensionError("LinearSHAP.Attributions", 1, features.NumRows(), 0)
	}

	cm, ok := m.(coefficientModel)
	if !ok {
		return nil, errors.NewValueError("LinearSHAP.Attributions", "model does not expose linear coefficients")
	}

	coef := cm.Coefficients()
	nClasses, nFeatures := coef.Dims()
	if nFeatures != features.NumFeatures() {
		return nil, errors.NewDimensionError("LinearSHAP.Attributions", nFeatures, features.NumFeatures(), 1)
	}

	if background == nil {
		background = cm.TrainingMeans()
	}
	if background == nil {
		background = make([]float64, nFeatures)
	}
	if len(background) != nFeatures {
		return nil, errors.NewDimensionError("LinearSHAP.Attributions", nFeatures, len(background), 1)
	}

	names := features.Names()
	out := make(ClassAttributions, nClasses)
	for k := 0; k < nClasses; k++ {
		attr := make(Attribution, nFeatures)
		for j := 0; j < nFeatures; j++ {
			attr[names[j]] = []float64{coef.At(k, j) * (features.Matrix().At(0, j) - background[j])}
		}
		out[k] = attr
	}
	return out, nil
}
