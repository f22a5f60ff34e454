// Package errors provides the structured error types used across the library.
// Every constructor attaches a stack trace via cockroachdb/errors so failures
// surfaced to callers can be traced back to the offending call site.
package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ValidationError reports malformed caller input: wrong shape, wrong type,
// an invalid enum value, or mismatched lengths. It is raised at the public
// function boundary before any computation happens.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("evalml: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// DimensionError reports an input whose dimensions differ from what the
// operation expects.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("evalml: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is invalid for the operation,
// for example a non-positive display budget.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("evalml: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// NotFittedError is returned when Predict or PredictProba is called on an
// estimator wrapper that has not been given fitted parameters.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("evalml: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// ScoreFailure captures one failed metric or prediction call: the underlying
// error and the stack captured at the failure point.
type ScoreFailure struct {
	Err   error
	Stack string
}

// ScoreError aggregates every failure hit while scoring records for a
// best/worst report, keyed by metric name. The underlying errors never
// propagate raw; callers always see this uniform shape.
type ScoreError struct {
	Exceptions map[string]ScoreFailure
}

func (e *ScoreError) Error() string {
	names := make([]string, 0, len(e.Exceptions))
	for name := range e.Exceptions {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %v", name, e.Exceptions[name].Err))
	}
	return fmt.Sprintf("evalml: scoring failed: [%s]", strings.Join(parts, ", "))
}

// Unwrap returns the first wrapped failure in metric-name order so that
// errors.Is and errors.As can reach the original cause.
func (e *ScoreError) Unwrap() error {
	names := make([]string, 0, len(e.Exceptions))
	for name := range e.Exceptions {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil
	}
	return e.Exceptions[names[0]].Err
}

// MarshalZerologObject adds the structured fields to a zerolog event.
func (e *ScoreError) MarshalZerologObject(event *zerolog.Event) {
	metrics := make([]string, 0, len(e.Exceptions))
	for name := range e.Exceptions {
		metrics = append(metrics, name)
	}
	sort.Strings(metrics)
	event.Strs("metrics", metrics).
		Str("type", "ScoreError")
}

// NewScoreError creates a ScoreError for a single failed metric.
func NewScoreError(metricName string, cause error, stack string) error {
	err := &ScoreError{Exceptions: map[string]ScoreFailure{
		metricName: {Err: cause, Stack: stack},
	}}
	return errors.WithStack(err)
}

// ConfigurationError reports an unsupported internal selection, such as a
// (report type, output format) combination the report-creator factory has no
// entry for. It indicates a programming defect rather than bad user input.
type ConfigurationError struct {
	Op          string
	Combination string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("evalml: %s: unsupported configuration: %s", e.Op, e.Combination)
}

// MarshalZerologObject adds the structured fields to a zerolog event.
func (e *ConfigurationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("combination", e.Combination).
		Str("type", "ConfigurationError")
}

// NewConfigurationError creates a ConfigurationError with a stack trace.
func NewConfigurationError(op, combination string) error {
	err := &ConfigurationError{Op: op, Combination: combination}
	return errors.WithStack(err)
}

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ErrEmptyData is returned when empty data is passed to an operation.
var ErrEmptyData = New("empty data")
