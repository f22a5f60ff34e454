package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sparkpoints/evalml/pkg/errors"
)

// probEps is the clipping floor applied before taking logarithms, matching
// the scikit-learn log-loss convention.
const probEps = 1e-15

// CrossEntropy computes the cross-entropy loss for each record. yTrue holds
// encoded class indices; proba holds one column of predicted probabilities
// per class.
func CrossEntropy(yTrue *mat.VecDense, proba mat.Matrix) (*mat.VecDense, error) {
	n := yTrue.Len()
	if n == 0 {
		return nil, errors.NewValueError("CrossEntropy", "empty vector")
	}
	rows, cols := proba.Dims()
	if rows != n {
		return nil, errors.NewDimensionError("CrossEntropy", n, rows, 0)
	}

	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		class := int(yTrue.AtVec(i))
		if class < 0 || class >= cols {
			return nil, errors.NewValueError("CrossEntropy", "true label index out of range of probability columns")
		}
		p := proba.At(i, class)
		if p < probEps {
			p = probEps
		}
		out.SetVec(i, -math.Log(p))
	}
	return out, nil
}

// LogLoss computes the mean cross-entropy loss over all records.
func LogLoss(yTrue *mat.VecDense, proba mat.Matrix) (float64, error) {
	perRecord, err := CrossEntropy(yTrue, proba)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < perRecord.Len(); i++ {
		sum += perRecord.AtVec(i)
	}
	return sum / float64(perRecord.Len()), nil
}
