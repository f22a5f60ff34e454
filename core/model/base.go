// Package model provides the capability interfaces and shared state for
// fitted estimator wrappers.
package model

// EstimatorState represents whether a model holds fitted parameters.
type EstimatorState int

const (
	// StateNotFitted means the model has no usable parameters yet.
	StateNotFitted EstimatorState = iota
	// StateFitted means the model is ready for prediction.
	StateFitted
)

// BaseEstimator is embedded by every estimator wrapper to track fitted state.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the model holds fitted parameters.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == StateFitted
}

// SetFitted marks the model as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = StateFitted
}

// Reset returns the model to the unfitted state.
func (e *BaseEstimator) Reset() {
	e.state = StateNotFitted
}
