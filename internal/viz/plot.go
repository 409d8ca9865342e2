package viz

import (
	"github.com/beamphys/beamgen/internal/analysis"
	"github.com/guptarohit/asciigraph"
)

// HistogramPlot bins xs and renders the bin counts as an ascii line
// chart. It returns an empty string when xs cannot be binned.
func HistogramPlot(xs []float64, bins, width, height int, caption string) string {
	counts, _ := analysis.Histogram(xs, bins)
	if counts == nil {
		return ""
	}
	return asciigraph.Plot(counts,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
