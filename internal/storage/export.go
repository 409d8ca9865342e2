package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/beamphys/beamgen/internal/phasespace"
)

// ExportData is the JSON export shape: run metadata flattened alongside
// the full particle table.
type ExportData struct {
	RunMetadata
	Columns []string    `json:"columns"`
	Rows    [][]float64 `json:"rows"`
}

func writeExport(w io.Writer, meta RunMetadata, t *phasespace.Table) error {
	data := ExportData{
		RunMetadata: meta,
		Columns:     t.Labels(),
		Rows:        t.Rows(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSON writes a run's metadata and particles to path.
func ExportJSON(path string, meta RunMetadata, t *phasespace.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeExport(f, meta, t)
}

// ExportJSONStdout writes a run's metadata and particles to stdout.
func ExportJSONStdout(meta RunMetadata, t *phasespace.Table) error {
	return writeExport(os.Stdout, meta, t)
}
