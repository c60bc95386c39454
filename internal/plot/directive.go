package plot

import (
	"strconv"
	"strings"
)

// Default evaluation domain when the directive omits bounds.
const (
	DefaultDomainMin = -5.0
	DefaultDomainMax = 5.0
)

// Directive is a parsed plotting instruction.
type Directive struct {
	Expression string
	DomainMin  float64
	DomainMax  float64
}

// ParseError means the directive has no usable expression or domain.
// Nothing is rendered in its place.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// ParseDirective splits a raw directive payload into expression and
// optional domain bounds. Unparsable numeric fields fall back to the
// default domain silently; only a missing expression is an error.
func ParseDirective(payload string) (Directive, error) {
	d := Directive{DomainMin: DefaultDomainMin, DomainMax: DefaultDomainMax}

	fields := strings.Split(payload, ",")
	d.Expression = strings.TrimSpace(fields[0])
	if d.Expression == "" {
		return Directive{}, &ParseError{Msg: "plot directive has no expression"}
	}
	if len(fields) > 1 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64); err == nil {
			d.DomainMin = v
		}
	}
	if len(fields) > 2 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64); err == nil {
			d.DomainMax = v
		}
	}
	if d.DomainMin >= d.DomainMax {
		return Directive{}, &ParseError{Msg: "plot directive has an empty domain"}
	}
	return d, nil
}

var normalizer = strings.NewReplacer(
	`\left`, "",
	`\right`, "",
	`\times`, "*",
	`\cdot`, "*",
	`\div`, "/",
	`\pi`, "pi",
	"×", "*",
	"·", "*",
	"{", "(",
	"}", ")",
)

// normalize rewrites LaTeX-flavored notation the model tends to emit
// into the evaluator's syntax.
func normalize(expression string) string {
	return normalizer.Replace(expression)
}
