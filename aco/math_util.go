package aco

import (
	"math"
	"slices"
)

// Sum adds up costs.
func Sum(costs []float64) float64 {
	var total float64
	for _, c := range costs {
		total += c
	}
	return total
}

// Mean is 0 for no costs.
func Mean(costs []float64) float64 {
	if len(costs) == 0 {
		return 0
	}
	return Sum(costs) / float64(len(costs))
}

// Stdev is the sample standard deviation, accumulated with Welford's
// recurrence. Fewer than two costs give 0.
func Stdev(costs []float64) float64 {
	if len(costs) < 2 {
		return 0
	}
	var mean, m2 float64
	for k, c := range costs {
		delta := c - mean
		mean += delta / float64(k+1)
		m2 += delta * (c - mean)
	}
	return math.Sqrt(m2 / float64(len(costs)-1))
}

// MinFloat returns +Inf for no costs.
func MinFloat(costs []float64) float64 {
	lo := math.Inf(1)
	for _, c := range costs {
		lo = math.Min(lo, c)
	}
	return lo
}

// MaxFloat returns -Inf for no costs.
func MaxFloat(costs []float64) float64 {
	hi := math.Inf(-1)
	for _, c := range costs {
		hi = math.Max(hi, c)
	}
	return hi
}

// Median leaves costs untouched and returns NaN when it is empty.
func Median(costs []float64) float64 {
	if len(costs) == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(costs)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// GenerationStats summarises the walker costs of one generation.
type GenerationStats struct {
	Generation int
	Costs      []float64 // indexed by walker
	Min        float64
	Max        float64
	Mean       float64
	Median     float64
	Stdev      float64
}

func newGenerationStats(generation int, costs []float64) GenerationStats {
	return GenerationStats{
		Generation: generation,
		Costs:      costs,
		Min:        MinFloat(costs),
		Max:        MaxFloat(costs),
		Mean:       Mean(costs),
		Median:     Median(costs),
		Stdev:      Stdev(costs),
	}
}
