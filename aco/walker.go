package aco

import (
	"math"
	"math/rand"

	"github.com/baldhumanity/antcolony-go/aco/distance"
)

// Heuristic holds the scoring parameters fixed for a run.
type Heuristic struct {
	Alpha     float64 // pheromone exponent
	Beta      float64 // inverse-distance exponent
	Selection string  // SelectArgmax or SelectRoulette
}

// Walker builds one candidate path at a time. A Walker is not safe for
// concurrent use, but distinct walkers may build concurrently over the same
// matrix and snapshot.
type Walker struct {
	distances  *distance.Matrix
	pheromones *Snapshot
	heuristic  Heuristic
	start      int
	rng        *rand.Rand

	path    Path
	cost    float64
	visited []bool

	// scratch for guided selection
	candidates []int
	scores     []float64
}

// NewWalker creates a walker starting at start. A nil rng selects the
// default deterministic stream.
func NewWalker(d *distance.Matrix, start int, h Heuristic, rng *rand.Rand) *Walker {
	if rng == nil {
		rng = newRNG(0)
	}
	n := d.Size()
	return &Walker{
		distances:  d,
		heuristic:  h,
		start:      start,
		rng:        rng,
		path:       make(Path, 0, n),
		visited:    make([]bool, n),
		candidates: make([]int, 0, n),
		scores:     make([]float64, 0, n),
	}
}

// Start returns the vertex every path of this walker begins at.
func (w *Walker) Start() int { return w.start }

// Path returns the most recently built path. The slice is owned by the
// walker and is replaced by the next build; use Clone to keep it.
func (w *Walker) Path() Path { return w.path }

// Cost returns the total cost of the most recent path.
func (w *Walker) Cost() float64 { return w.cost }

// Uses reports whether the most recent path traverses i→j.
func (w *Walker) Uses(i, j int) bool { return w.path.Uses(i, j) }

// BuildRandom visits the remaining vertices in uniformly random order.
func (w *Walker) BuildRandom() Path {
	w.reset()
	remaining := make([]int, 0, len(w.visited))
	for v := range w.visited {
		if !w.visited[v] {
			remaining = append(remaining, v)
		}
	}
	for len(remaining) > 0 {
		k := w.rng.Intn(len(remaining))
		w.visit(remaining[k])
		remaining[k] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}
	return w.finish()
}

// BuildGreedy always moves to the nearest unvisited vertex. Ties go to the
// lowest index, so the result depends only on the matrix and the start.
func (w *Walker) BuildGreedy() Path {
	w.reset()
	n := len(w.visited)
	for len(w.path) < n {
		current := w.path[len(w.path)-1]
		next := -1
		for v := 0; v < n; v++ {
			if w.visited[v] {
				continue
			}
			if next == -1 || w.distances.At(current, v) < w.distances.At(current, next) {
				next = v
			}
		}
		w.visit(next)
	}
	return w.finish()
}

// BuildGuided builds a path scored against snapshot s:
//
//	score(c, v) = τ[c][v]^α · (1/d[c][v])^β
//
// and chooses among unvisited candidates according to the selection policy.
func (w *Walker) BuildGuided(s *Snapshot) Path {
	w.pheromones = s
	w.reset()
	n := len(w.visited)
	for len(w.path) < n {
		w.visit(w.pickGuided())
	}
	return w.finish()
}

func (w *Walker) pickGuided() int {
	current := w.path[len(w.path)-1]
	w.candidates = w.candidates[:0]
	w.scores = w.scores[:0]
	total := 0.0
	for v := range w.visited {
		if w.visited[v] {
			continue
		}
		score := w.score(current, v)
		w.candidates = append(w.candidates, v)
		w.scores = append(w.scores, score)
		total += score
	}

	if w.heuristic.Selection == SelectRoulette {
		return w.sample(total)
	}

	// The normalising denominator is shared, so the highest probability is
	// the highest score. First encountered wins ties.
	best, bestScore := 0, -1.0
	for k, score := range w.scores {
		if score > bestScore {
			best, bestScore = k, score
		}
	}
	return w.candidates[best]
}

// sample draws a candidate with probability score/total. A degenerate total
// falls back to a uniform draw.
func (w *Walker) sample(total float64) int {
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return w.candidates[w.rng.Intn(len(w.candidates))]
	}
	r := w.rng.Float64() * total
	acc := 0.0
	for k, score := range w.scores {
		acc += score
		if r < acc {
			return w.candidates[k]
		}
	}
	return w.candidates[len(w.candidates)-1]
}

func (w *Walker) score(from, to int) float64 {
	tau := w.pheromones.At(from, to)
	eta := 1 / w.distances.At(from, to)
	return math.Pow(tau, w.heuristic.Alpha) * math.Pow(eta, w.heuristic.Beta)
}

func (w *Walker) reset() {
	w.path = make(Path, 0, len(w.visited))
	w.cost = 0
	for i := range w.visited {
		w.visited[i] = false
	}
	if len(w.visited) > 0 {
		w.visit(w.start)
	}
}

func (w *Walker) visit(v int) {
	w.path = append(w.path, v)
	w.visited[v] = true
}

func (w *Walker) finish() Path {
	w.cost = w.path.Cost(w.distances)
	return w.path
}
