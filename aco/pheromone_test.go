package aco_test

import (
	"testing"

	"github.com/baldhumanity/antcolony-go/aco"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPheromoneField_Initial(t *testing.T) {
	f := aco.NewPheromoneField(5)
	require.Equal(t, 1, f.Len())

	s := f.Generation(0)
	require.Same(t, s, f.Latest())
	require.Equal(t, 5, s.Size())
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i == j {
				assert.Equal(t, 0.0, s.At(i, j))
			} else {
				assert.Equal(t, aco.InitialPheromone, s.At(i, j))
			}
		}
	}
}

func TestDeposit_SharedEdge(t *testing.T) {
	// Two ants cross 1→2 with costs 10 and 20, L_min = 10.
	const lMin = 10.0
	dep := aco.NewDeposit(4)
	dep.Add(aco.Path{0, 1, 2, 3}, lMin/10)
	dep.Add(aco.Path{3, 1, 2, 0}, lMin/20)

	require.Equal(t, 1.5, dep.At(1, 2))
	require.Equal(t, 1.0, dep.At(0, 1))
	require.Equal(t, 0.5, dep.At(3, 1))
	require.Equal(t, 0.0, dep.At(2, 1), "deposits are directed")
}

func TestAdvance_UpdateRule(t *testing.T) {
	const rho = 0.4
	f := aco.NewPheromoneField(4)
	dep := aco.NewDeposit(4)
	dep.Add(aco.Path{0, 1, 2, 3}, 0.75)

	prev := f.Latest()
	next := f.Advance(rho, dep)
	require.Equal(t, 2, f.Len())
	require.Same(t, next, f.Generation(1))

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				assert.Equal(t, 0.0, next.At(i, j))
				continue
			}
			assert.Equal(t, (1-rho)*prev.At(i, j)+dep.At(i, j), next.At(i, j))
		}
	}
}

func TestAdvance_EvaporationOnly(t *testing.T) {
	const rho = 0.3
	f := aco.NewPheromoneField(6)
	for g := 0; g < 10; g++ {
		dep := aco.NewDeposit(6)
		dep.Add(aco.Path{0, 1, 2}, 0.9)

		prev := f.Latest()
		next := f.Advance(rho, dep)
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				if i == j || dep.At(i, j) != 0 {
					continue
				}
				require.Equal(t, (1-rho)*prev.At(i, j), next.At(i, j))
			}
		}
	}

	// nil deposit: pure evaporation everywhere
	prev := f.Latest()
	next := f.Advance(rho, nil)
	require.Equal(t, (1-rho)*prev.At(3, 4), next.At(3, 4))
}

func TestAdvance_SnapshotsAreImmutable(t *testing.T) {
	f := aco.NewPheromoneField(3)
	before := f.Generation(0).Rows()

	dep := aco.NewDeposit(3)
	dep.Add(aco.Path{0, 1, 2}, 5)
	f.Advance(0.5, dep)
	f.Advance(0.5, dep)

	require.Equal(t, before, f.Generation(0).Rows())
	require.Equal(t, 3, f.Len())
}

func TestAdvance_NonNegativeZeroDiagonal(t *testing.T) {
	f := aco.NewPheromoneField(5)
	for g := 0; g < 200; g++ {
		dep := aco.NewDeposit(5)
		if g%3 == 0 {
			dep.Add(aco.Path{4, 3, 2, 1, 0}, 0.2)
		}
		f.Advance(0.9, dep)
	}
	for g := 0; g < f.Len(); g++ {
		s := f.Generation(g)
		for i := 0; i < 5; i++ {
			require.Equal(t, 0.0, s.At(i, i))
			for j := 0; j < 5; j++ {
				require.GreaterOrEqual(t, s.At(i, j), 0.0)
			}
		}
	}
}
