package aco

// InitialPheromone is the generation-0 value of every off-diagonal edge.
const InitialPheromone = 1.0

// Snapshot is the pheromone matrix of one generation. It is never written
// after the field appends it, so walkers may read it concurrently.
type Snapshot struct {
	n      int
	values []float64
}

// At returns the pheromone on the directed edge i→j.
func (s *Snapshot) At(i, j int) float64 { return s.values[i*s.n+j] }

// Size returns the number of vertices.
func (s *Snapshot) Size() int { return s.n }

// Rows returns a copy of the snapshot as nested slices.
func (s *Snapshot) Rows() [][]float64 {
	rows := make([][]float64, s.n)
	for i := range rows {
		rows[i] = make([]float64, s.n)
		copy(rows[i], s.values[i*s.n:(i+1)*s.n])
	}
	return rows
}

// Deposit accumulates Δ(i, j) for one generation.
type Deposit struct {
	n      int
	values []float64
}

// NewDeposit returns an empty n×n accumulator.
func NewDeposit(n int) *Deposit {
	return &Deposit{n: n, values: make([]float64, n*n)}
}

// Add adds amount to every directed edge of path.
func (d *Deposit) Add(path Path, amount float64) {
	path.Edges(func(from, to int) {
		d.values[from*d.n+to] += amount
	})
}

// At returns the accumulated deposit on i→j.
func (d *Deposit) At(i, j int) float64 { return d.values[i*d.n+j] }

// PheromoneField is the append-only history of snapshots, one per generation.
type PheromoneField struct {
	n         int
	snapshots []*Snapshot
}

// NewPheromoneField creates the field with its uniform generation-0 snapshot.
func NewPheromoneField(n int) *PheromoneField {
	s := &Snapshot{n: n, values: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				s.values[i*n+j] = InitialPheromone
			}
		}
	}
	return &PheromoneField{n: n, snapshots: []*Snapshot{s}}
}

// Len returns the number of generations recorded.
func (f *PheromoneField) Len() int { return len(f.snapshots) }

// Generation returns the snapshot of generation t.
func (f *PheromoneField) Generation(t int) *Snapshot { return f.snapshots[t] }

// Latest returns the most recent snapshot.
func (f *PheromoneField) Latest() *Snapshot { return f.snapshots[len(f.snapshots)-1] }

// Advance derives and appends the next snapshot:
//
//	τ'[i][j] = (1-ρ)·τ[i][j] + Δ(i, j),  i ≠ j
//
// The diagonal stays 0. A nil deposit means evaporation only.
func (f *PheromoneField) Advance(rho float64, deposit *Deposit) *Snapshot {
	prev := f.Latest()
	next := &Snapshot{n: f.n, values: make([]float64, f.n*f.n)}
	keep := 1 - rho
	for i := 0; i < f.n; i++ {
		for j := 0; j < f.n; j++ {
			if i == j {
				continue
			}
			idx := i*f.n + j
			v := keep * prev.values[idx]
			if deposit != nil {
				v += deposit.values[idx]
			}
			next.values[idx] = v
		}
	}
	f.snapshots = append(f.snapshots, next)
	return next
}
