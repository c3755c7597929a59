package aco

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/baldhumanity/antcolony-go/aco/distance"
)

// ErrGenerationsExhausted is returned by RunGeneration once every
// configured generation has run.
var ErrGenerationsExhausted = errors.New("colony has run all generations")

// Stream ids reserved next to the per-walker ids 0..num_ants-1.
const (
	baselineStream  = math.MaxUint64
	distancesStream = math.MaxUint64 - 1
)

// BestResult is the cheapest path observed so far.
type BestResult struct {
	Path       Path
	Cost       float64
	Generation int // generation it was found in
	Walker     int // index of the walker that built it
}

// Colony holds the state of an ant colony run.
type Colony struct {
	Config     *Config
	Distances  *distance.Matrix
	Walkers    []*Walker
	Pheromones *PheromoneField
	Reporters  ReporterSet

	// LMin is the greedy baseline cost used to normalise deposits.
	LMin float64
	// RandomCost is the cost of one random construction, for reporting.
	RandomCost float64

	generation int
	best       *BestResult
	pool       *ants.Pool
}

// NewDistances builds the distance model described by config: the file when
// one is configured, a random matrix otherwise.
func NewDistances(config *Config) (*distance.Matrix, error) {
	if config.Distances.File != "" {
		return distance.Load(config.Distances.File)
	}
	seed := config.Colony.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := newRNG(mixSeed(seed, distancesStream))
	dc := config.Distances
	if dc.IntegerCosts {
		return distance.RandomIntegral(dc.NumVertices, dc.MinCost, dc.MaxCost, rng)
	}
	return distance.Random(dc.NumVertices, dc.MinCost, dc.MaxCost, rng)
}

// NewColony validates config and d, computes the baselines, initialises the
// pheromone field and places the walkers. The vertex count is taken from d.
// Call Close when done to release the worker pool.
func NewColony(config *Config, d *distance.Matrix, reporters ...Reporter) (*Colony, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("invalid distance model: %w", distance.ErrInvalidSize)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid distance model: %w", err)
	}

	n := d.Size()
	h := Heuristic{
		Alpha:     config.Heuristic.Alpha,
		Beta:      config.Heuristic.Beta,
		Selection: config.Colony.Selection,
	}
	rng := newRNG(config.Colony.Seed)

	c := &Colony{
		Config:     config,
		Distances:  d,
		Pheromones: NewPheromoneField(n),
		Reporters:  ReporterSet(reporters),
	}

	baseline := NewWalker(d, rng.Intn(n), h, deriveRNG(rng, baselineStream))
	baseline.BuildRandom()
	c.RandomCost = baseline.Cost()
	baseline.BuildGreedy()
	c.LMin = baseline.Cost()

	c.Walkers = make([]*Walker, config.Colony.NumAnts)
	for i := range c.Walkers {
		c.Walkers[i] = NewWalker(d, rng.Intn(n), h, deriveRNG(rng, uint64(i)))
	}

	if config.Colony.Workers > 1 {
		pool, err := ants.NewPool(config.Colony.Workers)
		if err != nil {
			return nil, fmt.Errorf("failed to create walker pool: %w", err)
		}
		c.pool = pool
	}

	c.Reporters.Baseline(c.RandomCost, c.LMin)
	return c, nil
}

// Close releases the worker pool, if any.
func (c *Colony) Close() {
	if c.pool != nil {
		c.pool.Release()
		c.pool = nil
	}
}

// Generation returns the number of generations run so far.
func (c *Colony) Generation() int { return c.generation }

// Best returns a copy of the best result so far; ok is false before the
// first generation.
func (c *Colony) Best() (best BestResult, ok bool) {
	if c.best == nil {
		return BestResult{}, false
	}
	best = *c.best
	best.Path = c.best.Path.Clone()
	return best, true
}

// RunGeneration runs one generation: every walker builds a guided path on
// the current snapshot, the best result is updated on strict improvement,
// and unless this is the final generation the next snapshot is appended.
func (c *Colony) RunGeneration() error {
	total := c.Config.Colony.Generations
	if c.generation >= total {
		return ErrGenerationsExhausted
	}
	t := c.generation
	c.Reporters.StartGeneration(t)

	if err := c.buildAll(c.Pheromones.Generation(t)); err != nil {
		return fmt.Errorf("generation %d: %w", t, err)
	}

	costs := make([]float64, len(c.Walkers))
	cheapest := 0
	for i, w := range c.Walkers {
		costs[i] = w.Cost()
		c.Reporters.AntCompleted(t, i, costs[i])
		if costs[i] < costs[cheapest] {
			cheapest = i
		}
	}

	improved := false
	if c.best == nil || costs[cheapest] < c.best.Cost {
		c.best = &BestResult{
			Path:       c.Walkers[cheapest].Path().Clone(),
			Cost:       costs[cheapest],
			Generation: t,
			Walker:     cheapest,
		}
		improved = true
	}

	if t+1 < total {
		c.Pheromones.Advance(c.Config.Heuristic.Evaporation, c.deposit())
	}
	c.generation++

	best, _ := c.Best()
	c.Reporters.EndGeneration(newGenerationStats(t, costs), best, improved)
	return nil
}

// Run executes the remaining generations and returns the best result.
func (c *Colony) Run() (BestResult, error) {
	for c.generation < c.Config.Colony.Generations {
		if err := c.RunGeneration(); err != nil {
			best, _ := c.Best()
			return best, err
		}
	}
	best, _ := c.Best()
	c.Reporters.Complete(best)
	return best, nil
}

// deposit sums L_min/cost(a) over the walkers that used each edge.
func (c *Colony) deposit() *Deposit {
	dep := NewDeposit(c.Distances.Size())
	for _, w := range c.Walkers {
		// Only a single-vertex path costs 0, and it has no edges.
		if w.Cost() > 0 {
			dep.Add(w.Path(), c.LMin/w.Cost())
		}
	}
	return dep
}

// buildAll runs every walker on s. With a pool the walkers build
// concurrently and the call returns once all of them are done.
func (c *Colony) buildAll(s *Snapshot) error {
	if c.pool == nil {
		for _, w := range c.Walkers {
			w.BuildGuided(s)
		}
		return nil
	}

	var wg sync.WaitGroup
	for _, w := range c.Walkers {
		w := w // per-iteration copy; go.mod targets go 1.21 loop semantics
		wg.Add(1)
		if err := c.pool.Submit(func() {
			defer wg.Done()
			w.BuildGuided(s)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("failed to submit walker: %w", err)
		}
	}
	wg.Wait()
	return nil
}
