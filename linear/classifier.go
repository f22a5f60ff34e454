package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sparkpoints/evalml/core/model"
	"github.com/sparkpoints/evalml/pkg/errors"
)

// Classifier is a fitted linear classifier. Probabilities come from a
// softmax over per-class linear scores; Predict returns the index of the
// highest-probability class.
type Classifier struct {
	model.BaseEstimator
	Coef       *mat.Dense // classes x features
	Intercepts []float64  // one per class
	classNames []string

	featureMeans []float64
}

// NewClassifier creates a fitted classifier from learned parameters. coef
// holds one row of coefficients per class, in the order of classNames.
// featureMeans may be nil.
func NewClassifier(coef *mat.Dense, intercepts []float64, classNames []string, featureMeans []float64) (*Classifier, error) {
	rows, _ := coef.Dims()
	if len(classNames) < 2 {
		return nil, errors.NewValueError("NewClassifier", "at least two classes are required")
	}
	if rows != len(classNames) {
		return nil, errors.NewDimensionError("NewClassifier", len(classNames), rows, 0)
	}
	if len(intercepts) != len(classNames) {
		return nil, errors.NewDimensionError("NewClassifier", len(classNames), len(intercepts), 0)
	}

	c := &Classifier{
		Coef:         mat.DenseCopyOf(coef),
		Intercepts:   append([]float64(nil), intercepts...),
		classNames:   append([]string(nil), classNames...),
		featureMeans: append([]float64(nil), featureMeans...),
	}
	c.SetFitted()
	return c, nil
}

// NewBinaryClassifier creates a fitted two-class classifier from a single
// coefficient vector for the positive class. The negative class mirrors it.
func NewBinaryClassifier(coef []float64, intercept float64, negative, positive string, featureMeans []float64) *Classifier {
	full := mat.NewDense(2, len(coef), nil)
	intercepts := []float64{-intercept, intercept}
	for j, v := range coef {
		full.Set(0, j, -v)
		full.Set(1, j, v)
	}
	c, _ := NewClassifier(full, intercepts, []string{negative, positive}, featureMeans)
	return c
}

// ProblemType returns Binary for two classes and Multiclass otherwise.
func (c *Classifier) ProblemType() model.ProblemType {
	if len(c.classNames) == 2 {
		return model.Binary
	}
	return model.Multiclass
}

// Classes returns the class labels in PredictProba column order.
func (c *Classifier) Classes() []string {
	return append([]string(nil), c.classNames...)
}

// PredictProba returns one row of class probabilities per sample.
func (c *Classifier) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	if !c.IsFitted() {
		return nil, errors.NewNotFittedError("Classifier", "PredictProba")
	}

	rows, cols := X.Dims()
	nClasses, nFeatures := c.Coef.Dims()
	if cols != nFeatures {
		return nil, errors.NewDimensionError("Classifier.PredictProba", nFeatures, cols, 1)
	}

	out := mat.NewDense(rows, nClasses, nil)
	scores := make([]float64, nClasses)
	for i := 0; i < rows; i++ {
		maxScore := math.Inf(-1)
		for k := 0; k < nClasses; k++ {
			sum := c.Intercepts[k]
			for j := 0; j < nFeatures; j++ {
				sum += X.At(i, j) * c.Coef.At(k, j)
			}
			scores[k] = sum
			if sum > maxScore {
				maxScore = sum
			}
		}

		// Softmax with the max subtracted for numerical stability.
		var total float64
		for k := 0; k < nClasses; k++ {
			scores[k] = math.Exp(scores[k] - maxScore)
			total += scores[k]
		}
		for k := 0; k < nClasses; k++ {
			out.Set(i, k, scores[k]/total)
		}
	}
	return out, nil
}

// Predict returns the encoded index of the most probable class per sample.
func (c *Classifier) Predict(X mat.Matrix) (*mat.VecDense, error) {
	proba, err := c.PredictProba(X)
	if err != nil {
		return nil, err
	}

	rows, nClasses := proba.Dims()
	out := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		best := 0
		for k := 1; k < nClasses; k++ {
			if proba.At(i, k) > proba.At(i, best) {
				best = k
			}
		}
		out.SetVec(i, float64(best))
	}
	return out, nil
}

// Coefficients returns the classes x features coefficient matrix.
func (c *Classifier) Coefficients() *mat.Dense {
	return mat.DenseCopyOf(c.Coef)
}

// TrainingMeans returns the per-feature training means, or nil if unknown.
func (c *Classifier) TrainingMeans() []float64 {
	if len(c.featureMeans) == 0 {
		return nil
	}
	return append([]float64(nil), c.featureMeans...)
}
