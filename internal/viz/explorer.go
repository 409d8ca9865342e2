package viz

import (
	"fmt"
	"strings"

	"github.com/beamphys/beamgen/internal/analysis"
	"github.com/beamphys/beamgen/internal/beam"
	"github.com/beamphys/beamgen/internal/phasespace"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	plotWidth  = 56
	plotHeight = 16
)

var (
	plotStyle = lipgloss.NewStyle().
			Padding(1, 2)

	sideStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(42)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

// planes lists the phase-space projections the explorer cycles
// through, as (x, y) column pairs.
var planes = [][2]string{
	{"Y", "T"},
	{"Z", "P"},
	{"Y", "Z"},
	{"T", "P"},
	{"Y", "D"},
}

// Explorer is a terminal UI for paging through a beam's slices and
// phase-space projections. Page 0 shows the full distribution, pages
// 1..n the slices.
type Explorer struct {
	species string
	pages   []*phasespace.Table
	page    int
	plane   int
	profile bool
	column  int
}

// NewExplorer materializes the beam's slices into explorer pages.
func NewExplorer(b *beam.Beam) (Explorer, error) {
	if b.Empty() {
		return Explorer{}, beam.ErrNoDistribution
	}
	full := b.Distribution()
	if full.NumCols() == phasespace.Dim {
		if labeled, err := full.WithLabels(phasespace.Columns5...); err == nil {
			full = labeled
		}
	}
	pages := []*phasespace.Table{full}
	if b.SliceCount() > 1 {
		seq, err := b.Slices()
		if err != nil {
			return Explorer{}, err
		}
		for chunk := range seq {
			pages = append(pages, chunk)
		}
	}
	return Explorer{species: b.Species().Name, pages: pages}, nil
}

func (e Explorer) Init() tea.Cmd { return nil }

func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return e, tea.Quit
		case "tab":
			e.plane = (e.plane + 1) % len(planes)
		case "shift+tab":
			e.plane = (e.plane + len(planes) - 1) % len(planes)
		case "]", "right":
			e.page = (e.page + 1) % len(e.pages)
		case "[", "left":
			e.page = (e.page + len(e.pages) - 1) % len(e.pages)
		case "p":
			e.profile = !e.profile
		case "c":
			e.column = (e.column + 1) % len(phasespace.Columns5)
		}
	}
	return e, nil
}

func (e Explorer) View() string {
	page := e.pages[e.page]

	var plot string
	if e.profile {
		label := phasespace.Columns5[e.column]
		if xs, err := page.Column(label); err != nil {
			plot = errorStyle.Render(err.Error())
		} else {
			plot = HistogramPlot(xs, 40, plotWidth, plotHeight, label+" profile")
		}
	} else {
		pair := planes[e.plane]
		s, err := Scatter(page, pair[0], pair[1], plotWidth, plotHeight)
		if err != nil {
			plot = errorStyle.Render(err.Error())
		} else {
			plot = s
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(e.species)+" BEAM") + "\n")
	if e.page == 0 {
		fmt.Fprintf(&b, "full distribution, %d particles\n\n", page.NumRows())
	} else {
		fmt.Fprintf(&b, "slice %d of %d, %d particles\n\n", e.page, len(e.pages)-1, page.NumRows())
	}

	for _, cs := range analysis.Summarize(page) {
		b.WriteString(labelStyle.Render(cs.Label))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%11.4e ± %.4e", cs.Mean, cs.Sigma)))
		b.WriteByte('\n')
	}
	if est, err := analysis.EstimateTwiss(page); err == nil {
		b.WriteByte('\n')
		rows := []struct {
			label string
			value float64
		}{
			{"emit x", est.EmitX},
			{"beta x", est.BetaX},
			{"alpha x", est.AlphaX},
			{"emit y", est.EmitY},
			{"beta y", est.BetaY},
			{"alpha y", est.AlphaY},
		}
		for _, r := range rows {
			b.WriteString(labelStyle.Render(r.label))
			b.WriteString(valueStyle.Render(fmt.Sprintf("%.4e", r.value)))
			b.WriteByte('\n')
		}
	}
	b.WriteString(helpStyle.Render("Tab: plane  [ ]: slice  P: profile  C: column  Q: quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		plotStyle.Render(plot),
		sideStyle.Render(b.String()),
	)
}
