// Package expr compiles small mathematical expressions in one free
// variable x into an evaluable form.
//
// An expression is compiled once with [Compile] and then evaluated any
// number of times by substituting x. Evaluation is side-effect-free and
// never fails: domain errors (log of a negative, division by zero) come
// back as NaN or ±Inf per the math package, for the caller to filter.
package expr

import "math"

// Expr is a compiled expression. Safe for concurrent use.
type Expr struct {
	src  string
	root node
}

// Source returns the original expression text.
func (e *Expr) Source() string { return e.src }

// Eval evaluates the expression at x.
func (e *Expr) Eval(x float64) float64 { return e.root.eval(x) }

// Compile parses src into an evaluable expression. A syntax error is
// returned as *SyntaxError.
func Compile(src string) (*Expr, error) {
	p := newParser(src)
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Expr{src: src, root: root}, nil
}

type node interface {
	eval(x float64) float64
}

type numNode float64

func (n numNode) eval(float64) float64 { return float64(n) }

type varNode struct{}

func (varNode) eval(x float64) float64 { return x }

type negNode struct {
	operand node
}

func (n negNode) eval(x float64) float64 { return -n.operand.eval(x) }

type binNode struct {
	op          byte
	left, right node
}

func (n binNode) eval(x float64) float64 {
	l := n.left.eval(x)
	r := n.right.eval(x)
	switch n.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	case '^':
		return math.Pow(l, r)
	}
	return math.NaN()
}

type callNode struct {
	name string
	fn   func(float64) float64
	arg  node
}

func (n callNode) eval(x float64) float64 { return n.fn(n.arg.eval(x)) }

var functions = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"round": math.Round,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log,
	"log2":  math.Log2,
	"log10": math.Log10,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}
