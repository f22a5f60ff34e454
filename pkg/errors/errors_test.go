package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		reason  string
		value   interface{}
		wantMsg string
	}{
		{
			name:    "invalid output format",
			param:   "output_format",
			reason:  "must be either text or dict",
			value:   "yaml",
			wantMsg: "evalml: validation failed for parameter 'output_format': must be either text or dict (got: yaml)",
		},
		{
			name:    "wrong row count",
			param:   "input_features",
			reason:  "must contain exactly one row",
			value:   3,
			wantMsg: "evalml: validation failed for parameter 'input_features': must contain exactly one row (got: 3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.param, tt.reason, tt.value)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var valErr *ValidationError
			if !As(err, &valErr) {
				t.Error("Error should be castable to *ValidationError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("CrossEntropy", 10, 7, 0)

	want := "evalml: CrossEntropy: dimension mismatch on axis 0 (rows). Expected 10, got 7"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestScoreError(t *testing.T) {
	cause := New("probability matrix contains NaN")
	err := NewScoreError("cross_entropy", cause, "stack goes here")

	var scoreErr *ScoreError
	if !As(err, &scoreErr) {
		t.Fatal("Error should be castable to *ScoreError")
	}

	failure, ok := scoreErr.Exceptions["cross_entropy"]
	if !ok {
		t.Fatal("Exceptions should be keyed by metric name")
	}
	if failure.Stack != "stack goes here" {
		t.Errorf("Stack = %q, want %q", failure.Stack, "stack goes here")
	}
	if !Is(err, cause) {
		t.Error("ScoreError should unwrap to the original cause")
	}
	if !strings.Contains(err.Error(), "cross_entropy") {
		t.Errorf("Error() = %q, should mention the metric name", err.Error())
	}
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("reportCreatorFactory", "report_type=explain_predictions output_format=yaml")

	want := "evalml: reportCreatorFactory: unsupported configuration: report_type=explain_predictions output_format=yaml"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var cfgErr *ConfigurationError
	if !As(err, &cfgErr) {
		t.Error("Error should be castable to *ConfigurationError")
	}
}

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("Regressor", "Predict")

	want := "evalml: Regressor: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}
