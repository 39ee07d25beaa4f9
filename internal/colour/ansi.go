package colour

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const defaultWidth = 8

// Previewer renders solid colour blocks for terminal output.
type Previewer struct {
	renderer *lipgloss.Renderer
}

// NewPreviewer creates a Previewer writing to w. When force is set, truecolor
// escapes are emitted even if w is not a terminal.
func NewPreviewer(w io.Writer, force bool) *Previewer {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.TrueColor)
	}
	return &Previewer{renderer: r}
}

// Block returns a solid block of width cells in colour c.
func (p *Previewer) Block(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return p.renderer.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}

// Label returns text centred on a block of colour c, in whichever of black
// or white contrasts better.
func (p *Previewer) Label(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	fg := "#000000"
	if TextColour(c) == "white" {
		fg = "#ffffff"
	}
	return p.renderer.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg)).
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}

// Strip returns the colours rendered side by side as blocks.
func (p *Previewer) Strip(hexes []string, width int) string {
	var b strings.Builder
	for _, h := range hexes {
		c, err := ParseColour(h)
		if err != nil {
			continue
		}
		b.WriteString(p.Block(FromColorful(c), width))
	}
	return b.String()
}
