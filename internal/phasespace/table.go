package phasespace

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Dim is the number of tracked phase-space coordinates per particle.
const Dim = 5

// Columns5 holds the canonical coordinate labels, in order: horizontal
// position, horizontal angle, vertical position, vertical angle,
// relative momentum offset.
var Columns5 = []string{"Y", "T", "Z", "P", "D"}

// Table is a labeled, row-major table of float64 samples. Rows are
// particles, columns are coordinates.
type Table struct {
	labels []string
	rows   [][]float64
}

// New builds a table from column labels and rows. Every row must have
// exactly one value per label and at least one row is required.
func New(labels []string, rows [][]float64) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no column labels", ErrShape)
	}
	for i, r := range rows {
		if len(r) != len(labels) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, i, len(r), len(labels))
		}
	}
	return &Table{labels: slices.Clone(labels), rows: rows}, nil
}

// FromRows builds a table with generated labels. Five-column data gets
// the canonical [Columns5] labels, any other width gets x0..x{k-1}.
func FromRows(rows [][]float64) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	width := len(rows[0])
	if width == Dim {
		return New(Columns5, rows)
	}
	labels := make([]string, width)
	for i := range labels {
		labels[i] = fmt.Sprintf("x%d", i)
	}
	return New(labels, rows)
}

// NumRows reports the number of particles in the table.
func (t *Table) NumRows() int { return len(t.rows) }

// NumCols reports the number of coordinates per particle.
func (t *Table) NumCols() int { return len(t.labels) }

// Labels returns a copy of the column labels.
func (t *Table) Labels() []string { return slices.Clone(t.labels) }

// At returns the value at row i, column j.
func (t *Table) At(i, j int) float64 { return t.rows[i][j] }

// Row returns the backing storage of row i. Callers must not mutate it
// unless they own every view of the table.
func (t *Table) Row(i int) []float64 { return t.rows[i] }

// Rows returns the backing row storage. Same ownership caveat as [Table.Row].
func (t *Table) Rows() [][]float64 { return t.rows }

// ColumnAt returns a copy of column j.
func (t *Table) ColumnAt(j int) []float64 {
	col := make([]float64, len(t.rows))
	for i, r := range t.rows {
		col[i] = r[j]
	}
	return col
}

// Column returns a copy of the column with the given label.
func (t *Table) Column(label string) ([]float64, error) {
	for j, l := range t.labels {
		if l == label {
			return t.ColumnAt(j), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoColumn, label)
}

// Slice returns a view of rows [i, j). Bounds are clamped to the valid
// range, so out-of-range requests yield an empty view rather than a
// panic. The view shares row storage with the parent.
func (t *Table) Slice(i, j int) *Table {
	n := len(t.rows)
	if i < 0 {
		i = 0
	}
	if j < 0 {
		j = 0
	}
	if j > n {
		j = n
	}
	if i > j {
		i = j
	}
	return &Table{labels: t.labels, rows: t.rows[i:j]}
}

// Head returns a view of the first n rows. A negative n, or an n at or
// beyond the row count, returns the table unchanged.
func (t *Table) Head(n int) *Table {
	if n < 0 || n >= len(t.rows) {
		return t
	}
	return t.Slice(0, n)
}

// WithLabels returns a view of the table under new column labels. The
// label count must match the column count.
func (t *Table) WithLabels(labels ...string) (*Table, error) {
	if len(labels) != len(t.labels) {
		return nil, fmt.Errorf("%w: %d labels for %d columns", ErrShape, len(labels), len(t.labels))
	}
	return &Table{labels: slices.Clone(labels), rows: t.rows}, nil
}

// Matrix copies the table into a dense rows×cols matrix. An empty table
// yields nil.
func (t *Table) Matrix() *mat.Dense {
	r, c := len(t.rows), len(t.labels)
	if r == 0 || c == 0 {
		return nil
	}
	m := mat.NewDense(r, c, nil)
	for i, row := range t.rows {
		m.SetRow(i, row)
	}
	return m
}
