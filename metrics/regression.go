// Package metrics computes per-record and aggregate error metrics on gonum
// vectors. The per-record variants feed the best/worst record ranking in the
// explain package.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sparkpoints/evalml/pkg/errors"
)

// AbsError computes the absolute error for each record.
func AbsError(yTrue, yPred *mat.VecDense) (*mat.VecDense, error) {
	n := yTrue.Len()
	if n == 0 {
		return nil, errors.NewValueError("AbsError", "empty vector")
	}
	if yPred.Len() != n {
		return nil, errors.NewDimensionError("AbsError", n, yPred.Len(), 0)
	}

	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, math.Abs(yTrue.AtVec(i)-yPred.AtVec(i)))
	}
	return out, nil
}

// MAE computes the mean absolute error.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	perRecord, err := AbsError(yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < perRecord.Len(); i++ {
		sum += perRecord.AtVec(i)
	}
	return sum / float64(perRecord.Len()), nil
}

// MSE computes the mean squared error.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}
