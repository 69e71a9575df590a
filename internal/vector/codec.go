package vector

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"
)

// IndexVersion is the schema version written into new index files.
const IndexVersion = 1

// IndexMeta is the JSON half of the embedding file pair. It describes the
// geometry of the binary vector file and maps catalog ids to row positions.
type IndexMeta struct {
	Version     int            `json:"version"`
	Model       string         `json:"model"`
	Dimension   int            `json:"dimension"`
	Count       int            `json:"count"`
	GeneratedAt time.Time      `json:"generatedAt"`
	IDToIndex   map[string]int `json:"idToIndex"`
	IndexToID   []string       `json:"indexToId"`
}

// EncodeIndex marshals meta as indented JSON.
func EncodeIndex(meta *IndexMeta) ([]byte, error) {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal index: %w", err)
	}
	return data, nil
}

// DecodeIndex parses the JSON index file.
func DecodeIndex(data []byte) (*IndexMeta, error) {
	var meta IndexMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	return &meta, nil
}

// EncodeVectors packs a row-major float32 buffer as little-endian bytes.
func EncodeVectors(buf []float32) []byte {
	const size = 4
	out := make([]byte, len(buf)*size)
	for i, v := range buf {
		binary.LittleEndian.PutUint32(out[i*size:(i+1)*size], math.Float32bits(v))
	}
	return out
}

// DecodeVectors unpacks little-endian float32 bytes. The length must be a
// multiple of 4.
func DecodeVectors(data []byte) ([]float32, error) {
	const size = 4
	if len(data)%size != 0 {
		return nil, fmt.Errorf("vector file length %d is not a multiple of %d", len(data), size)
	}
	out := make([]float32, len(data)/size)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*size : (i+1)*size]))
	}
	return out, nil
}

// WriteFiles persists the embedding file pair, creating parent directories
// as needed. buf must hold meta.Count rows of meta.Dimension values.
func WriteFiles(indexPath, vectorPath string, meta *IndexMeta, buf []float32) error {
	if len(buf) != meta.Count*meta.Dimension {
		return fmt.Errorf("buffer length %d does not match count %d x dimension %d", len(buf), meta.Count, meta.Dimension)
	}
	indexBytes, err := EncodeIndex(meta)
	if err != nil {
		return err
	}
	for _, path := range []string{indexPath, vectorPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("create index dir: %w", err)
		}
	}
	if err := os.WriteFile(indexPath, indexBytes, 0644); err != nil {
		return fmt.Errorf("write index file: %w", err)
	}
	if err := os.WriteFile(vectorPath, EncodeVectors(buf), 0644); err != nil {
		return fmt.Errorf("write vector file: %w", err)
	}
	return nil
}
