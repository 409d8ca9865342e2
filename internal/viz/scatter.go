package viz

import (
	"fmt"
	"strings"

	"github.com/beamphys/beamgen/internal/phasespace"
	"gonum.org/v1/gonum/floats"
)

const (
	defaultPlotWidth  = 60
	defaultPlotHeight = 16
)

// Scatter renders two columns of a table as a braille scatter plot.
// Zero axes are drawn when they fall inside the data range, and the
// plot is framed by a title line and the axis ranges. The row label of
// the plot is ycol, the column label xcol.
func Scatter(t *phasespace.Table, xcol, ycol string, width, height int) (string, error) {
	xs, err := t.Column(xcol)
	if err != nil {
		return "", err
	}
	ys, err := t.Column(ycol)
	if err != nil {
		return "", err
	}
	if len(xs) == 0 {
		return "", fmt.Errorf("scatter %s vs %s: %w", ycol, xcol, phasespace.ErrEmpty)
	}
	if width < 8 {
		width = defaultPlotWidth
	}
	if height < 4 {
		height = defaultPlotHeight
	}

	xmin, xmax := pad(floats.Min(xs), floats.Max(xs))
	ymin, ymax := pad(floats.Min(ys), floats.Max(ys))

	c := NewCanvas(width, height)
	dw, dh := c.Size()
	px := func(x float64) int { return int((x - xmin) / (xmax - xmin) * float64(dw-1)) }
	py := func(y float64) int { return int((ymax - y) / (ymax - ymin) * float64(dh-1)) }

	if xmin < 0 && xmax > 0 {
		c.DrawLine(px(0), 0, px(0), dh-1)
	}
	if ymin < 0 && ymax > 0 {
		c.DrawLine(0, py(0), dw-1, py(0))
	}
	for i := range xs {
		c.Set(px(xs[i]), py(ys[i]))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s\n", ycol, xcol)
	b.WriteString(c.String())
	fmt.Fprintf(&b, "%s [%.3g, %.3g]  %s [%.3g, %.3g]\n", xcol, xmin, xmax, ycol, ymin, ymax)
	return b.String(), nil
}

// pad widens a data range by 5% on each side so edge particles do not
// sit on the frame. Degenerate ranges widen to a unit interval.
func pad(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	m := (hi - lo) * 0.05
	return lo - m, hi + m
}
