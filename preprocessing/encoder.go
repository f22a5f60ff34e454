// Package preprocessing holds the data preparation helpers that sit in front
// of the estimator wrappers. Classification targets arrive as raw string
// labels; the explain entry points and metrics work on encoded class indices.
package preprocessing

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/sparkpoints/evalml/core/model"
	"github.com/sparkpoints/evalml/pkg/errors"
)

// LabelEncoder maps raw class labels to the integer indices the metrics and
// report makers expect. Classes are stored sorted, so the encoding is
// deterministic for a given label set.
type LabelEncoder struct {
	model.BaseEstimator

	classes []string
	index   map[string]int
}

// NewLabelEncoder creates an unfitted LabelEncoder.
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{}
}

// Fit learns the sorted set of distinct labels.
func (e *LabelEncoder) Fit(labels []string) error {
	if len(labels) == 0 {
		return errors.NewValueError("LabelEncoder.Fit", "labels must be non-empty")
	}

	seen := make(map[string]struct{}, len(labels))
	classes := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		classes = append(classes, label)
	}
	sort.Strings(classes)

	e.classes = classes
	e.index = make(map[string]int, len(classes))
	for i, class := range classes {
		e.index[class] = i
	}
	e.SetFitted()
	return nil
}

// Classes returns the learned labels in encoding order.
func (e *LabelEncoder) Classes() []string {
	return append([]string(nil), e.classes...)
}

// Transform encodes labels as a vector of class indices. Labels not seen
// during Fit are rejected.
func (e *LabelEncoder) Transform(labels []string) (*mat.VecDense, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "Transform")
	}

	out := mat.NewVecDense(len(labels), nil)
	for i, label := range labels {
		idx, ok := e.index[label]
		if !ok {
			return nil, errors.NewValueError("LabelEncoder.Transform",
				fmt.Sprintf("label %q was not seen during Fit", label))
		}
		out.SetVec(i, float64(idx))
	}
	return out, nil
}

// FitTransform fits on labels and encodes them in one step.
func (e *LabelEncoder) FitTransform(labels []string) (*mat.VecDense, error) {
	if err := e.Fit(labels); err != nil {
		return nil, err
	}
	return e.Transform(labels)
}

// InverseTransform decodes class indices back into labels.
func (e *LabelEncoder) InverseTransform(encoded *mat.VecDense) ([]string, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "InverseTransform")
	}

	out := make([]string, encoded.Len())
	for i := 0; i < encoded.Len(); i++ {
		idx := int(encoded.AtVec(i))
		if idx < 0 || idx >= len(e.classes) {
			return nil, errors.NewValueError("LabelEncoder.InverseTransform",
				fmt.Sprintf("index %d is out of range for %d classes", idx, len(e.classes)))
		}
		out[i] = e.classes[idx]
	}
	return out, nil
}
