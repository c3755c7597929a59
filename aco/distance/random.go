package distance

import (
	"math"
	"math/rand"
)

func checkBounds(n int, minCost, maxCost float64) error {
	if n < 1 {
		return ErrInvalidSize
	}
	if math.IsNaN(minCost) || math.IsNaN(maxCost) || minCost <= 0 || minCost > maxCost || math.IsInf(maxCost, 0) {
		return ErrInvalidBounds
	}
	return nil
}

// Random draws every unordered pair once, uniformly from [minCost, maxCost],
// and mirrors it. The diagonal stays zero.
func Random(n int, minCost, maxCost float64, rng *rand.Rand) (*Matrix, error) {
	if err := checkBounds(n, minCost, maxCost); err != nil {
		return nil, err
	}
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	span := maxCost - minCost
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.setPair(i, j, minCost+rng.Float64()*span)
		}
	}
	return m, nil
}

// RandomIntegral is like Random but draws whole-number costs from
// {ceil(minCost), ..., floor(maxCost)}.
func RandomIntegral(n int, minCost, maxCost float64, rng *rand.Rand) (*Matrix, error) {
	if err := checkBounds(n, minCost, maxCost); err != nil {
		return nil, err
	}
	lo, hi := int64(math.Ceil(minCost)), int64(math.Floor(maxCost))
	if lo > hi {
		return nil, ErrInvalidBounds
	}
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.setPair(i, j, float64(lo+rng.Int63n(hi-lo+1)))
		}
	}
	return m, nil
}
