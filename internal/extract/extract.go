// Package extract splits tutor output into renderable segments,
// separating prose from inline [PLOT: ...] directives.
package extract

import "strings"

const (
	plotOpen  = "[PLOT:"
	plotClose = "]"
)

// SegmentKind discriminates the two segment variants.
type SegmentKind int

const (
	KindText SegmentKind = iota
	KindPlot
)

// Segment is either a run of prose or a plot directive payload.
type Segment struct {
	Kind    SegmentKind
	Text    string // prose, when Kind == KindText
	Payload string // directive payload, when Kind == KindPlot
}

// Split scans text for plot directives and returns the interleaved
// segments in order. An unterminated directive is kept as prose rather
// than swallowed.
func Split(text string) []Segment {
	var segments []Segment
	for {
		open := strings.Index(text, plotOpen)
		if open < 0 {
			break
		}
		end := strings.Index(text[open+len(plotOpen):], plotClose)
		if end < 0 {
			break
		}
		end += open + len(plotOpen)

		if prose := text[:open]; strings.TrimSpace(prose) != "" {
			segments = append(segments, Segment{Kind: KindText, Text: prose})
		}
		payload := strings.TrimSpace(text[open+len(plotOpen) : end])
		segments = append(segments, Segment{Kind: KindPlot, Payload: payload})
		text = text[end+len(plotClose):]
	}
	if strings.TrimSpace(text) != "" {
		segments = append(segments, Segment{Kind: KindText, Text: text})
	}
	return segments
}
