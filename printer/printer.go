// Package printer renders graph contents, solver results and menus on a console.
package printer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvtsp/core"
	"github.com/katalvlaran/lvtsp/tsp"
)

// Palette
var (
	ColorTitle = lipgloss.Color("#2CD7C7")
	ColorLabel = lipgloss.Color("#2C4A54")
	ColorValue = lipgloss.Color("#20B9B4")
	ColorError = lipgloss.Color("#E74C3C")
)

// Console messages for the solver failure sentinels.
const (
	MsgNotFullyConnected = "Our algorithm doesn't work with graphs not fully connected."
	MsgNoTour            = "No Hamiltonian cycle exists over the direct edges of this graph."
)

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	err   lipgloss.Style
}

// Printer writes styled text to w.
// Styling follows the color profile of w, so redirected output is plain text.
type Printer struct {
	w  io.Writer
	st styles
}

// New returns a Printer bound to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w: w,
		st: styles{
			title: r.NewStyle().Bold(true).Foreground(ColorTitle),
			label: r.NewStyle().Foreground(ColorLabel),
			value: r.NewStyle().Foreground(ColorValue),
			err:   r.NewStyle().Foreground(ColorError),
		},
	}
}

// Title prints text as a heading.
func (p *Printer) Title(text string) {
	fmt.Fprintln(p.w, p.st.title.Render(text))
}

// Menu prints a heading and the options numbered from 1.
func (p *Printer) Menu(title string, options []string) {
	if title != "" {
		p.Title(title)
	}
	for i, o := range options {
		fmt.Fprintf(p.w, "%s %s\n", p.st.label.Render("["+strconv.Itoa(i+1)+"]"), o)
	}
}

// Content lists every coordinate and half-edge of g in ascending vertex ID,
// followed by the half-edge and vertex totals.
func (p *Printer) Content(g *core.Graph) {
	m := 0
	for _, v := range g.Vertices() {
		if c, ok := v.Coords(); ok {
			fmt.Fprintf(p.w, "%s %d %s %s %s %s\n",
				p.st.label.Render("NODE:"), v.ID(),
				p.st.label.Render("|| LATITUDE:"), formatNumber(c.Latitude),
				p.st.label.Render("|| LONGITUDE:"), formatNumber(c.Longitude))
		}
		for _, e := range v.Edges() {
			fmt.Fprintf(p.w, "%s %d %s %d %s %s\n",
				p.st.label.Render("SOURCE:"), e.From,
				p.st.label.Render("|| DEST:"), e.To,
				p.st.label.Render("|| DISTANCE:"), formatNumber(e.Weight))
			m++
		}
	}
	fmt.Fprintf(p.w, "%s %d %s %d\n",
		p.st.label.Render("Edges count:"), m,
		p.st.label.Render("|| VERTICES:"), g.VertexCount())
}

// Result prints the tour, its cost and the elapsed wall time in milliseconds.
func (p *Printer) Result(title string, res tsp.TSResult, elapsed time.Duration) {
	if title != "" {
		p.Title(title)
	}
	fmt.Fprintf(p.w, "%s %s\n", p.st.label.Render("Path:"), tsp.FormatTour(res.Tour))
	fmt.Fprintf(p.w, "%s %s\n", p.st.label.Render("Cost:"), p.st.value.Render(formatNumber(res.Cost)))
	fmt.Fprintf(p.w, "%s %d milliseconds\n", p.st.label.Render("Execution time:"), elapsed.Milliseconds())
}

// Failure prints the console message for a solver error.
func (p *Printer) Failure(title string, err error) {
	if title != "" {
		p.Title(title)
	}

	var msg string
	switch {
	case errors.Is(err, tsp.ErrNotFullyConnected):
		msg = MsgNotFullyConnected
	case errors.Is(err, tsp.ErrNoTour):
		msg = MsgNoTour
	default:
		msg = "Error: " + err.Error()
	}
	fmt.Fprintln(p.w, p.st.err.Render(msg))
}

// formatNumber prints integers without a fractional part and everything
// else with at most three decimals.
func formatNumber(x float64) string {
	if x == float64(int64(x)) {
		return strconv.FormatInt(int64(x), 10)
	}

	return strconv.FormatFloat(x, 'f', 3, 64)
}
