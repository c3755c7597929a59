package distance

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
)

// fileData is the on-disk form of a Matrix. Matrix fields are unexported,
// so gob needs an exported mirror.
type fileData struct {
	N    int
	Data []float64
}

// Save writes m to filePath as a gzip-compressed gob stream.
func Save(filePath string, m *Matrix) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid matrix: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create distance file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	if err := gob.NewEncoder(gzWriter).Encode(fileData{N: m.n, Data: m.data}); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode distance matrix: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush distance file '%s': %w", filePath, err)
	}
	return file.Close()
}

// Load reads a matrix written by Save and validates it.
func Load(filePath string) (*Matrix, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open distance file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for distance file: %w", err)
	}
	defer gzReader.Close()

	var fd fileData
	if err := gob.NewDecoder(gzReader).Decode(&fd); err != nil {
		return nil, fmt.Errorf("failed to decode distance matrix: %w", err)
	}

	m := &Matrix{n: fd.N, data: fd.Data}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("distance file '%s': %w", filePath, err)
	}
	return m, nil
}
