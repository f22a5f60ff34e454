package model

import (
	"gonum.org/v1/gonum/mat"
)

// ProblemType identifies the kind of supervised problem a model solves.
// Report formatting decisions are dispatched on this value.
type ProblemType int

const (
	// Regression predicts a continuous value.
	Regression ProblemType = iota
	// Binary predicts one of two classes.
	Binary
	// Multiclass predicts one of three or more classes.
	Multiclass
)

// String returns the lower-case name used in logs and error messages.
func (p ProblemType) String() string {
	switch p {
	case Regression:
		return "regression"
	case Binary:
		return "binary"
	case Multiclass:
		return "multiclass"
	default:
		return "unknown"
	}
}

// IsClassification reports whether the problem type has a class list.
func (p ProblemType) IsClassification() bool {
	return p == Binary || p == Multiclass
}

// Predictor is the interface for models that predict a single value per row.
// For classifiers the returned vector holds encoded class indices.
type Predictor interface {
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// ProbabilisticClassifier is the interface for classifiers that expose
// per-class probabilities.
type ProbabilisticClassifier interface {
	// PredictProba returns one row per sample and one column per class.
	PredictProba(X mat.Matrix) (*mat.Dense, error)

	// Classes returns the class labels in column order of PredictProba.
	Classes() []string
}

// Fitted is the capability set the reporting layer needs from a model.
// Classes returns nil and PredictProba an error for regression models.
type Fitted interface {
	Predictor
	ProbabilisticClassifier
	ProblemType() ProblemType
}
