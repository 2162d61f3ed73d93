package reader

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/njchilds90/mathworld/algebra"
)

// parser is a recursive-descent parser over normalised tokens:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "^" unary ]
//	primary = number | symbol | function "(" expr ")" | "(" expr ")"
type parser struct {
	toks []token
	pos  int
}

func parseTokens(toks []token) (algebra.Expr, error) {
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidExpression)
	}
	p := &parser{toks: toks}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		return nil, p.unexpected()
	}
	return e, nil
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) peekOp(ops ...string) (string, bool) {
	t, ok := p.peek()
	if !ok || t.kind != kOp {
		return "", false
	}
	for _, op := range ops {
		if t.text == op {
			return op, true
		}
	}
	return "", false
}

func (p *parser) unexpected() error {
	t, ok := p.peek()
	if !ok {
		return fmt.Errorf("%w: unexpected end of input", ErrInvalidExpression)
	}
	return fmt.Errorf("%w: unexpected %q at %d", ErrInvalidExpression, t.text, t.pos)
}

func (p *parser) expr() (algebra.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp("+", "-")
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == "-" {
			right = algebra.NegOf(right)
		}
		left = algebra.AddOf(left, right)
	}
}

func (p *parser) term() (algebra.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp("*", "/")
		if !ok {
			return left, nil
		}
		at := p.toks[p.pos].pos
		p.pos++
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == "/" {
			if algebra.IsZero(right) {
				return nil, fmt.Errorf("%w: division by zero at %d", ErrInvalidExpression, at)
			}
			left = algebra.DivOf(left, right)
			continue
		}
		left = algebra.MulOf(left, right)
	}
}

func (p *parser) unary() (algebra.Expr, error) {
	if op, ok := p.peekOp("+", "-"); ok {
		p.pos++
		e, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == "-" {
			return algebra.NegOf(e), nil
		}
		return e, nil
	}
	return p.power()
}

func (p *parser) power() (algebra.Expr, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if _, ok := p.peekOp("^"); !ok {
		return base, nil
	}
	at := p.toks[p.pos].pos
	p.pos++
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	if algebra.IsZero(base) {
		if s, ok := algebra.Sign(exp); ok && s < 0 {
			return nil, fmt.Errorf("%w: division by zero at %d", ErrInvalidExpression, at)
		}
	}
	return algebra.PowOf(base, exp), nil
}

func (p *parser) primary() (algebra.Expr, error) {
	t, ok := p.peek()
	if !ok {
		return nil, p.unexpected()
	}
	switch t.kind {
	case kNum:
		p.pos++
		return parseNumber(t)
	case kSym:
		p.pos++
		return algebra.S(t.text), nil
	case kFunc:
		p.pos++
		arg, err := p.group()
		if err != nil {
			return nil, err
		}
		return applyFunc(t.text, arg), nil
	case kLParen:
		return p.group()
	}
	return nil, p.unexpected()
}

// group parses "(" expr ")".
func (p *parser) group() (algebra.Expr, error) {
	t, ok := p.peek()
	if !ok || t.kind != kLParen {
		return nil, p.unexpected()
	}
	p.pos++
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	t, ok = p.peek()
	if !ok || t.kind != kRParen {
		return nil, p.unexpected()
	}
	p.pos++
	return e, nil
}

func parseNumber(t token) (algebra.Expr, error) {
	s := t.text
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	q, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: bad number %q at %d", ErrInvalidExpression, t.text, t.pos)
	}
	return algebra.NRat(q), nil
}

func applyFunc(name string, arg algebra.Expr) algebra.Expr {
	switch name {
	case "sqrt":
		return algebra.SqrtOf(arg)
	case "log":
		return algebra.LnOf(arg)
	}
	return algebra.FuncOf(name, arg)
}
