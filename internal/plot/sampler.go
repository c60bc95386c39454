package plot

import (
	"fmt"
	"math"

	"github.com/sakibmehfuz10-bot/Socratica/internal/expr"
)

// SampleCount is the fixed number of evaluation points across the
// domain, endpoints included.
const SampleCount = 140

// Point is one evaluated (x, y) sample.
type Point struct {
	X, Y float64
}

// CompileError means the expression is not syntactically valid. It is
// rendered as an inline error panel scoped to the one plot.
type CompileError struct {
	Expr string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("cannot plot %q: %v", e.Expr, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Plot is a fully evaluated directive: the surviving samples and the
// view bounds derived from them. Fewer than 2 surviving samples leaves
// an empty plot, which renders as nothing.
type Plot struct {
	Directive Directive
	Points    []Point
	Bounds    Bounds
}

// Empty reports whether there are too few samples to draw a line.
func (p *Plot) Empty() bool { return len(p.Points) < 2 }

// Build parses the directive payload, compiles the expression and
// samples it across the domain. Errors are *ParseError (no usable
// directive) or *CompileError (bad expression); a defined-nowhere
// expression is not an error, just an empty plot.
func Build(payload string) (*Plot, error) {
	d, err := ParseDirective(payload)
	if err != nil {
		return nil, err
	}
	compiled, err := expr.Compile(normalize(d.Expression))
	if err != nil {
		return nil, &CompileError{Expr: d.Expression, Err: err}
	}

	p := &Plot{Directive: d, Points: sample(compiled, d.DomainMin, d.DomainMax)}
	if !p.Empty() {
		p.Bounds = computeBounds(p.Points, d.DomainMin, d.DomainMax)
	}
	return p, nil
}

// sample evaluates the compiled expression at SampleCount evenly spaced
// x-values. Non-finite results (poles, domain errors) are dropped so a
// discontinuity breaks the data, not the render.
func sample(e *expr.Expr, min, max float64) []Point {
	step := (max - min) / float64(SampleCount-1)
	points := make([]Point, 0, SampleCount)
	for i := 0; i < SampleCount; i++ {
		x := min + float64(i)*step
		if i == SampleCount-1 {
			x = max
		}
		y := e.Eval(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points
}
