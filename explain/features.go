// Package explain generates human-readable explanations of individual
// predictions from per-feature attribution values. Reports come in two
// families (explain every requested record, or the best/worst records of a
// dataset ranked by error) and two output formats (text, structured), built
// from one structured representation so the two formats cannot drift apart.
package explain

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sparkpoints/evalml/pkg/errors"
)

// Features is a named feature matrix: one column per feature, one row per
// record. It is the input shape all explain entry points accept.
type Features struct {
	names []string
	x     *mat.Dense
}

// NewFeatures creates a Features set. The number of names must match the
// number of columns of X.
func NewFeatures(names []string, X *mat.Dense) (Features, error) {
	_, cols := X.Dims()
	if cols != len(names) {
		return Features{}, errors.NewDimensionError("NewFeatures", len(names), cols, 1)
	}
	return Features{names: append([]string(nil), names...), x: X}, nil
}

// Names returns the feature names in column order.
func (f Features) Names() []string {
	return f.names
}

// Matrix returns the underlying feature matrix.
func (f Features) Matrix() *mat.Dense {
	return f.x
}

// NumRows returns the number of records.
func (f Features) NumRows() int {
	if f.x == nil {
		return 0
	}
	rows, _ := f.x.Dims()
	return rows
}

// NumFeatures returns the number of feature columns.
func (f Features) NumFeatures() int {
	return len(f.names)
}

// Row returns a single-record view of row i. The view shares the names and
// copies the one row of data.
func (f Features) Row(i int) Features {
	row := mat.NewDense(1, f.NumFeatures(), nil)
	for j := 0; j < f.NumFeatures(); j++ {
		row.Set(0, j, f.x.At(i, j))
	}
	return Features{names: f.names, x: row}
}
