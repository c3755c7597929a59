package aco

import (
	"errors"
	"fmt"

	"github.com/baldhumanity/antcolony-go/aco/distance"
)

// ErrInvalidPath is returned by Path.Validate.
var ErrInvalidPath = errors.New("invalid path")

// Path is an open visiting order: every vertex exactly once, no return to
// the first vertex.
type Path []int

// Cost sums the distances between consecutive vertices.
func (p Path) Cost(d *distance.Matrix) float64 {
	cost := 0.0
	for i := 1; i < len(p); i++ {
		cost += d.At(p[i-1], p[i])
	}
	return cost
}

// Uses reports whether j immediately follows i somewhere in the path.
func (p Path) Uses(i, j int) bool {
	for k := 1; k < len(p); k++ {
		if p[k-1] == i && p[k] == j {
			return true
		}
	}
	return false
}

// Edges calls fn for each directed edge of the path in order.
func (p Path) Edges(fn func(from, to int)) {
	for k := 1; k < len(p); k++ {
		fn(p[k-1], p[k])
	}
}

// Clone returns an independent copy.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Validate checks that p is a permutation of [0, n).
func (p Path) Validate(n int) error {
	if len(p) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidPath, len(p), n)
	}
	seen := make([]bool, n)
	for idx, v := range p {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: vertex %d at position %d out of range", ErrInvalidPath, v, idx)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %d repeated at position %d", ErrInvalidPath, v, idx)
		}
		seen[v] = true
	}
	return nil
}
