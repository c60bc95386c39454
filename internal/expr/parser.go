package expr

import "strings"

// Operator precedence. Implicit multiplication ("2x", "3sin(x)") binds
// like '*'; '^' is right-associative and binds tighter than unary minus,
// so -x^2 parses as -(x^2).
const (
	precAdd = 1
	precMul = 2
	precPow = 3
)

type parser struct {
	lex  lexer
	tok  token
	held bool
}

func newParser(src string) *parser {
	return &parser{lex: lexer{src: src}}
}

func (p *parser) peek() (token, error) {
	if !p.held {
		t, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.tok = t
		p.held = true
	}
	return p.tok, nil
}

func (p *parser) advance() { p.held = false }

func (p *parser) parse() (node, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}
	if t.kind == tokEOF {
		return nil, p.lex.errf(0, "empty expression")
	}
	root, err := p.parseBinary(precAdd)
	if err != nil {
		return nil, err
	}
	t, err = p.peek()
	if err != nil {
		return nil, err
	}
	if t.kind != tokEOF {
		return nil, p.lex.errf(t.pos, "unexpected trailing input")
	}
	return root, nil
}

func (p *parser) parseBinary(minPrec int) (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}

		var op byte
		var prec int
		implicit := false
		switch t.kind {
		case tokOp:
			op = t.op
			switch op {
			case '+', '-':
				prec = precAdd
			case '*', '/':
				prec = precMul
			case '^':
				prec = precPow
			}
		case tokNumber, tokIdent, tokLParen:
			op, prec, implicit = '*', precMul, true
		default:
			return left, nil
		}
		if prec < minPrec {
			return left, nil
		}
		if !implicit {
			p.advance()
		}

		nextMin := prec + 1
		if op == '^' {
			nextMin = prec // right-associative
		}
		right, err := p.parseBinary(nextMin)
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, left: left, right: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}
	if t.kind == tokOp && (t.op == '-' || t.op == '+') {
		p.advance()
		operand, err := p.parseUnaryOperand()
		if err != nil {
			return nil, err
		}
		if t.op == '-' {
			return negNode{operand: operand}, nil
		}
		return operand, nil
	}
	return p.parsePrimary()
}

// parseUnaryOperand lets exponentiation bind tighter than the sign.
func (p *parser) parseUnaryOperand() (node, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}
	if t.kind == tokOp && (t.op == '-' || t.op == '+') {
		return p.parseUnary()
	}
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	t, err = p.peek()
	if err != nil {
		return nil, err
	}
	if t.kind == tokOp && t.op == '^' {
		p.advance()
		exp, err := p.parseBinary(precPow)
		if err != nil {
			return nil, err
		}
		return binNode{op: '^', left: base, right: exp}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (node, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch t.kind {
	case tokNumber:
		p.advance()
		return numNode(t.num), nil
	case tokLParen:
		p.advance()
		inner, err := p.parseBinary(precAdd)
		if err != nil {
			return nil, err
		}
		t, err = p.peek()
		if err != nil {
			return nil, err
		}
		if t.kind != tokRParen {
			return nil, p.lex.errf(t.pos, "missing closing parenthesis")
		}
		p.advance()
		return inner, nil
	case tokIdent:
		p.advance()
		return p.parseIdent(t)
	case tokOp:
		return nil, p.lex.errf(t.pos, "unexpected operator %q", string(t.op))
	case tokRParen:
		return nil, p.lex.errf(t.pos, "unexpected closing parenthesis")
	}
	return nil, p.lex.errf(t.pos, "unexpected end of expression")
}

func (p *parser) parseIdent(t token) (node, error) {
	name := strings.ToLower(t.text)
	if name == "x" {
		return varNode{}, nil
	}
	if v, ok := constants[name]; ok {
		return numNode(v), nil
	}
	fn, ok := functions[name]
	if !ok {
		return nil, p.lex.errf(t.pos, "unknown identifier %q", t.text)
	}
	nt, err := p.peek()
	if err != nil {
		return nil, err
	}
	if nt.kind != tokLParen {
		return nil, p.lex.errf(nt.pos, "expected '(' after %q", t.text)
	}
	p.advance()
	arg, err := p.parseBinary(precAdd)
	if err != nil {
		return nil, err
	}
	nt, err = p.peek()
	if err != nil {
		return nil, err
	}
	if nt.kind != tokRParen {
		return nil, p.lex.errf(nt.pos, "missing closing parenthesis in call to %q", t.text)
	}
	p.advance()
	return callNode{name: name, fn: fn, arg: arg}, nil
}
