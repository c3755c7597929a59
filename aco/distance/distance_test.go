package distance_test

import (
	"encoding/gob"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/baldhumanity/antcolony-go/aco/distance"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m, err := distance.Random(30, 5, 50, rng)
	require.NoError(t, err)
	require.Equal(t, 30, m.Size())
	require.NoError(t, m.Validate())

	for i := 0; i < m.Size(); i++ {
		assert.Equal(t, 0.0, m.At(i, i))
		for j := 0; j < m.Size(); j++ {
			if i == j {
				continue
			}
			assert.Equal(t, m.At(i, j), m.At(j, i))
			assert.GreaterOrEqual(t, m.At(i, j), 5.0)
			assert.LessOrEqual(t, m.At(i, j), 50.0)
		}
	}
}

func TestRandomIntegral_WholeNumbers(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m, err := distance.RandomIntegral(20, 5, 8, rng)
	require.NoError(t, err)
	for i := 0; i < m.Size(); i++ {
		for j := i + 1; j < m.Size(); j++ {
			v := m.At(i, j)
			assert.Equal(t, math.Trunc(v), v)
			assert.GreaterOrEqual(t, v, 5.0)
			assert.LessOrEqual(t, v, 8.0)
		}
	}
}

func TestRandom_EqualBounds(t *testing.T) {
	m, err := distance.Random(4, 9, 9, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j {
				assert.Equal(t, 9.0, m.At(i, j))
			}
		}
	}
}

func TestRandom_RejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := distance.Random(0, 1, 2, rng)
	require.ErrorIs(t, err, distance.ErrInvalidSize)

	_, err = distance.Random(3, 10, 2, rng)
	require.ErrorIs(t, err, distance.ErrInvalidBounds)

	_, err = distance.Random(3, 0, 2, rng)
	require.ErrorIs(t, err, distance.ErrInvalidBounds)

	_, err = distance.RandomIntegral(3, 1.2, 1.8, rng)
	require.ErrorIs(t, err, distance.ErrInvalidBounds)
}

func TestSingleVertex(t *testing.T) {
	m, err := distance.Random(1, 1, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 1, m.Size())
	require.Equal(t, 0.0, m.At(0, 0))
	require.NoError(t, m.Validate())
}

func TestFromRows_Validation(t *testing.T) {
	_, err := distance.FromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	_, err = distance.FromRows(nil)
	require.ErrorIs(t, err, distance.ErrInvalidSize)

	_, err = distance.FromRows([][]float64{{0, 1, 2}, {1, 0}})
	require.ErrorIs(t, err, distance.ErrNotSquare)

	_, err = distance.FromRows([][]float64{{0, 1}, {2, 0}})
	require.ErrorIs(t, err, distance.ErrAsymmetric)

	_, err = distance.FromRows([][]float64{{1, 1}, {1, 0}})
	require.ErrorIs(t, err, distance.ErrNonZeroDiagonal)

	_, err = distance.FromRows([][]float64{{0, 0}, {0, 0}})
	require.ErrorIs(t, err, distance.ErrNonPositive)

	_, err = distance.FromRows([][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}})
	require.ErrorIs(t, err, distance.ErrNonPositive)
}

func TestRows_IsCopy(t *testing.T) {
	m, err := distance.FromRows([][]float64{{0, 3}, {3, 0}})
	require.NoError(t, err)

	rows := m.Rows()
	rows[0][1] = 100
	require.Equal(t, 3.0, m.At(0, 1))
}

func TestSaveLoad(t *testing.T) {
	m, err := distance.RandomIntegral(12, 5, 50, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "distances.gz")
	require.NoError(t, distance.Save(path, m))

	loaded, err := distance.Load(path)
	require.NoError(t, err)
	require.Equal(t, m.Rows(), loaded.Rows())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := distance.Load(filepath.Join(dir, "missing.gz"))
	require.Error(t, err)

	garbage := filepath.Join(dir, "garbage.gz")
	require.NoError(t, os.WriteFile(garbage, []byte("not gzip"), 0o644))
	_, err = distance.Load(garbage)
	require.Error(t, err)
}

// writeRaw stores an arbitrary size/data pair in the distance file format.
func writeRaw(t *testing.T, n int, data []float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raw.gz")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	require.NoError(t, gob.NewEncoder(gzWriter).Encode(struct {
		N    int
		Data []float64
	}{N: n, Data: data}))
	require.NoError(t, gzWriter.Close())
	return path
}

func TestLoad_RejectsBadSize(t *testing.T) {
	tests := []struct {
		name string
		n    int
		data []float64
		want error
	}{
		{"zero size", 0, nil, distance.ErrInvalidSize},
		{"negative size", -2, []float64{0, 1, 1, 0}, distance.ErrInvalidSize},
		{"short data", 3, []float64{0, 1, 1, 0}, distance.ErrNotSquare},
		{"overflowing size", 1 << 32, nil, distance.ErrNotSquare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := distance.Load(writeRaw(t, tt.n, tt.data))
			require.ErrorIs(t, err, tt.want)
		})
	}
}
