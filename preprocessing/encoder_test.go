package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/mat"

	"github.com/sparkpoints/evalml/pkg/errors"
)

func TestLabelEncoderRoundTrip(t *testing.T) {
	enc := NewLabelEncoder()
	labels := []string{"malignant", "benign", "malignant", "benign"}

	encoded, err := enc.FitTransform(labels)
	require.NoError(t, err)

	// Classes sort alphabetically, so benign encodes to 0.
	assert.Equal(t, []string{"benign", "malignant"}, enc.Classes())
	assert.Equal(t, []float64{1, 0, 1, 0}, encoded.RawVector().Data)

	decoded, err := enc.InverseTransform(encoded)
	require.NoError(t, err)
	assert.Equal(t, labels, decoded)
}

func TestLabelEncoderRejectsUnseenLabel(t *testing.T) {
	enc := NewLabelEncoder()
	require.NoError(t, enc.Fit([]string{"a", "b"}))

	_, err := enc.Transform([]string{"a", "c"})

	var valErr *errors.ValueError
	require.True(t, errors.As(err, &valErr))
}

func TestLabelEncoderNotFitted(t *testing.T) {
	enc := NewLabelEncoder()

	_, err := enc.Transform([]string{"a"})
	var notFitted *errors.NotFittedError
	require.True(t, errors.As(err, &notFitted))

	_, err = enc.InverseTransform(mat.NewVecDense(1, []float64{0}))
	require.True(t, errors.As(err, &notFitted))
}

func TestLabelEncoderEmptyInput(t *testing.T) {
	enc := NewLabelEncoder()

	err := enc.Fit(nil)

	var valErr *errors.ValueError
	require.True(t, errors.As(err, &valErr))
}

func TestLabelEncoderIndexOutOfRange(t *testing.T) {
	enc := NewLabelEncoder()
	require.NoError(t, enc.Fit([]string{"a", "b"}))

	_, err := enc.InverseTransform(mat.NewVecDense(1, []float64{5}))

	var valErr *errors.ValueError
	require.True(t, errors.As(err, &valErr))
}
