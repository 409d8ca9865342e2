package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/beamphys/beamgen/internal/phasespace"
)

const (
	metaFile = "metadata.json"
	distFile = "distribution.csv"
)

// Store keeps generated beams on disk, one directory per run holding
// metadata.json and distribution.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a stored beam. Params carries the generator
// inputs (Twiss or sigma entries) for provenance.
type RunMetadata struct {
	ID        string             `json:"id"`
	Species   string             `json:"species"`
	Source    string             `json:"source"`
	Particles int                `json:"particles"`
	Dims      int                `json:"dims"`
	Slices    int                `json:"slices"`
	Seed      uint64             `json:"seed"`
	Momentum  float64            `json:"momentum,omitempty"`
	Brho      float64            `json:"brho,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Params    map[string]float64 `json:"params,omitempty"`
}

// Save writes a run directory for the distribution. An empty meta.ID
// gets a generated "<species>_<unix>" ID; particle and dimension counts
// are filled from the table. The run ID is returned.
func (s *Store) Save(meta RunMetadata, t *phasespace.Table) (string, error) {
	if t == nil {
		return "", fmt.Errorf("storage: nil distribution")
	}
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%d", meta.Species, time.Now().Unix())
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	meta.Particles = t.NumRows()
	meta.Dims = t.NumCols()

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, metaFile))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := t.WriteCSVFile(filepath.Join(runDir, distFile)); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// List reads the metadata of every stored run. Entries that are not
// run directories are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), metaFile))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metaFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadDistribution reads a stored run's particle table.
func (s *Store) LoadDistribution(runID string) (*phasespace.Table, error) {
	return phasespace.ReadCSVFile(filepath.Join(s.baseDir, runID, distFile))
}
