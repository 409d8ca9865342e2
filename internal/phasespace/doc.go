// Package phasespace provides the labeled particle table that beam
// generators produce and consumers slice.
//
// A [Table] is a row-major collection of particle coordinates with named
// columns. The canonical five-column layout [Columns5] is
//
//	Y  horizontal position
//	T  horizontal angle
//	Z  vertical position
//	P  vertical angle
//	D  relative momentum offset dp/p
//
// Tables read from and write to headered CSV ([ReadCSV], [Table.WriteCSV])
// and convert to dense matrices for numerical work.
//
// # Views
//
// [Table.Slice], [Table.Head] and [Table.WithLabels] return views that
// share row storage with the parent table. Mutating row data through one
// view is visible through all of them.
package phasespace
