package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/beamphys/beamgen/internal/phasespace"
	"gonum.org/v1/gonum/floats"
)

// ScatterSVG renders two columns of a table as an SVG scatter plot:
// dark background, zero axes when they fall inside the data range, one
// circle per particle.
func ScatterSVG(t *phasespace.Table, xcol, ycol string, width, height int) (string, error) {
	xs, err := t.Column(xcol)
	if err != nil {
		return "", err
	}
	ys, err := t.Column(ycol)
	if err != nil {
		return "", err
	}
	if len(xs) == 0 {
		return "", fmt.Errorf("svg %s vs %s: %w", ycol, xcol, phasespace.ErrEmpty)
	}
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}

	xmin, xmax := span(floats.Min(xs), floats.Max(xs))
	ymin, ymax := span(floats.Min(ys), floats.Max(ys))
	px := func(x float64) float64 { return (x - xmin) / (xmax - xmin) * float64(width) }
	py := func(y float64) float64 { return (ymax - y) / (ymax - ymin) * float64(height) }

	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	if xmin < 0 && xmax > 0 {
		fmt.Fprintf(&b, `<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#333333"/>
`, px(0), px(0), height)
	}
	if ymin < 0 && ymax > 0 {
		fmt.Fprintf(&b, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#333333"/>
`, py(0), width, py(0))
	}

	b.WriteString("<g fill=\"#00ff00\">\n")
	for i := range xs {
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="1.5"/>
`, px(xs[i]), py(ys[i]))
	}
	b.WriteString("</g>\n</svg>")
	return b.String(), nil
}

// WriteScatterSVG renders the scatter plot straight to a file.
func WriteScatterSVG(path string, t *phasespace.Table, xcol, ycol string, width, height int) error {
	svg, err := ScatterSVG(t, xcol, ycol, width, height)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

// span widens a data range by 10% per side, opening degenerate ranges
// to a unit interval.
func span(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	m := (hi - lo) * 0.1
	return lo - m, hi + m
}
