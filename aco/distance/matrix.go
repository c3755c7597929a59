// Package distance holds the symmetric cost model the colony walks over.
//
// A Matrix is built once, either generated at random or read from a
// precomputed source, and is read-only afterwards. All walkers share it.
package distance

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidSize     = errors.New("distance: size must be positive")
	ErrInvalidBounds   = errors.New("distance: invalid cost bounds")
	ErrNotSquare       = errors.New("distance: matrix is not square")
	ErrAsymmetric      = errors.New("distance: matrix is not symmetric")
	ErrNonZeroDiagonal = errors.New("distance: diagonal entry is not zero")
	ErrNonPositive     = errors.New("distance: off-diagonal cost must be positive and finite")
)

// symTol is the tolerance used when checking symmetry and the diagonal.
const symTol = 1e-12

// Matrix is an N×N symmetric cost table stored row-major.
type Matrix struct {
	n    int
	data []float64
}

// New returns an n×n matrix with all entries zero.
func New(n int) (*Matrix, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	return &Matrix{n: n, data: make([]float64, n*n)}, nil
}

// FromRows copies rows into a new Matrix and validates it.
func FromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidSize
	}
	m := &Matrix{n: n, data: make([]float64, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Size returns the number of vertices.
func (m *Matrix) Size() int { return m.n }

// At returns the cost of travelling from i to j.
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// setPair writes v to both (i, j) and (j, i).
func (m *Matrix) setPair(i, j int, v float64) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}

// Rows returns a deep copy of the matrix as nested slices.
func (m *Matrix) Rows() [][]float64 {
	rows := make([][]float64, m.n)
	for i := range rows {
		rows[i] = make([]float64, m.n)
		copy(rows[i], m.data[i*m.n:(i+1)*m.n])
	}
	return rows
}

// Validate checks the matrix invariants: zero diagonal, symmetric, and
// strictly positive finite costs off the diagonal.
func (m *Matrix) Validate() error {
	if m == nil || m.n < 1 {
		return ErrInvalidSize
	}
	// n*n can overflow for a decoded n, so compare by division.
	if len(m.data)%m.n != 0 || len(m.data)/m.n != m.n {
		return ErrNotSquare
	}
	for i := 0; i < m.n; i++ {
		if d := m.At(i, i); math.IsNaN(d) || math.Abs(d) > symTol {
			return fmt.Errorf("%w: (%d,%d)=%v", ErrNonZeroDiagonal, i, i, d)
		}
		for j := i + 1; j < m.n; j++ {
			a, b := m.At(i, j), m.At(j, i)
			if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
				return fmt.Errorf("%w: (%d,%d)=%v", ErrNonPositive, i, j, a)
			}
			if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 {
				return fmt.Errorf("%w: (%d,%d)=%v", ErrNonPositive, j, i, b)
			}
			if math.Abs(a-b) > symTol {
				return fmt.Errorf("%w: (%d,%d)=%v, (%d,%d)=%v", ErrAsymmetric, i, j, a, j, i, b)
			}
		}
	}
	return nil
}
