package plot

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultAccent is used when the caller passes no display hint.
const DefaultAccent = "#00ccff"

// SVG renders a directive payload as standalone SVG markup: the chart
// on success, an inline error panel for a bad expression, and the empty
// string when there is nothing worth drawing. It never panics past this
// boundary.
func SVG(payload, accent string) string {
	if accent == "" {
		accent = DefaultAccent
	}
	p, err := Build(payload)
	var parseErr *ParseError
	switch {
	case errors.As(err, &parseErr):
		return ""
	case err != nil:
		return errorPanelSVG(err.Error())
	case p.Empty():
		return ""
	}
	return chartSVG(p, accent)
}

func chartSVG(p *Plot, accent string) string {
	g := SVGGeometry
	b := p.Bounds
	device := g.MapPoints(b, p.Points)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a14" rx="6"/>
`, g.Width, g.Height, g.Width, g.Height))

	// Dashed axis guides, clipped to the padded interior. A guide is
	// skipped when 0 falls outside the domain.
	if b.MinX < 0 && b.MaxX > 0 {
		x0 := g.MapX(b, 0)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444466" stroke-dasharray="4 4"/>
`, x0, g.Padding, x0, g.Height-g.Padding))
	}
	if b.MinY < 0 && b.MaxY > 0 {
		y0 := g.MapY(b, 0)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444466" stroke-dasharray="4 4"/>
`, g.Padding, y0, g.Width-g.Padding, y0))
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, accent))
	for i, dp := range device {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", dp.X, dp.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", dp.X, dp.Y))
		}
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="16" fill="#ccccdd" font-family="monospace" font-size="12">y = %s</text>
`, g.Padding, escapeXML(p.Directive.Expression)))
	sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.0f" fill="#666688" font-family="monospace" font-size="10">x</text>
`, g.Width-g.Padding+8, g.Height-g.Padding+4))
	sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.0f" fill="#666688" font-family="monospace" font-size="10">y</text>
`, g.Padding-14, g.Padding+4))

	sb.WriteString("</svg>")
	return sb.String()
}

func errorPanelSVG(msg string) string {
	g := SVGGeometry
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="48" viewBox="0 0 %.0f 48">
<rect width="100%%" height="100%%" fill="#2d1616" stroke="#ff4444" rx="6"/>
<text x="12" y="28" fill="#ff8888" font-family="monospace" font-size="12">%s</text>
</svg>`, g.Width, g.Width, escapeXML(msg))
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeXML(s string) string { return xmlEscaper.Replace(s) }
