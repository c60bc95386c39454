package plot

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// TermGeometry is the terminal chart size in canvas sub-pixels:
// 60x20 character cells.
var TermGeometry = Geometry{Width: 120, Height: 80, Padding: 4}

var (
	termLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	termErrorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("210")).
			Padding(0, 1)
)

// Terminal renders a directive payload as a Braille-canvas block for
// the chat view. Accent colors the curve frame and label; a bad
// expression yields an alert panel, an unusable or empty directive
// yields the empty string.
func Terminal(payload, accent string) string {
	if accent == "" {
		accent = DefaultAccent
	}
	p, err := Build(payload)
	var parseErr *ParseError
	switch {
	case errors.As(err, &parseErr):
		return ""
	case err != nil:
		return termErrorStyle.Render(err.Error())
	case p.Empty():
		return ""
	}
	return chartTerminal(p, accent)
}

func chartTerminal(p *Plot, accent string) string {
	g := TermGeometry
	b := p.Bounds
	canvas := NewCanvas(int(g.Width)/2, int(g.Height)/4)

	if b.MinX < 0 && b.MaxX > 0 {
		x0 := int(g.MapX(b, 0))
		canvas.DrawDashedLine(x0, int(g.Padding), x0, int(g.Height-g.Padding), 2, 3)
	}
	if b.MinY < 0 && b.MaxY > 0 {
		y0 := int(g.MapY(b, 0))
		canvas.DrawDashedLine(int(g.Padding), y0, int(g.Width-g.Padding), y0, 2, 3)
	}

	device := g.MapPoints(b, p.Points)
	for i := 1; i < len(device); i++ {
		canvas.DrawLine(
			int(device[i-1].X), int(device[i-1].Y),
			int(device[i].X), int(device[i].Y),
		)
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(0, 1)
	label := termLabelStyle.Render(fmt.Sprintf("y = %s   x ∈ [%g, %g]",
		p.Directive.Expression, b.MinX, b.MaxX))
	return frame.Render(canvas.String()) + "\n" + label
}
