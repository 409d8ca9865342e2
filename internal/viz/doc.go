// Package viz renders beam distributions in the terminal.
//
// Plots draw into a braille [Canvas], which packs 2x4 dots per
// character cell:
//
//   - [Scatter]: phase-space projection of two table columns
//   - [HistogramPlot]: ascii line chart of a column profile
//   - [Explorer]: interactive Bubble Tea UI over a beam and its slices
//
// # Key Bindings
//
//	Tab   - Cycle phase-space plane (Y-T, Z-P, Y-Z, T-P, Y-D)
//	[ ]   - Previous/next slice page
//	P     - Toggle column profile view
//	C     - Cycle profile column
//	Q     - Quit
package viz
