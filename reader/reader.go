// Package reader turns user text and Go values into exact algebra
// expressions and equations.
//
// Input is normalised before parsing: brackets and braces become
// parentheses, "^" and "**" both mean power, and implicit
// multiplication is made explicit, so "2x(y+1)" reads as "2*x*(y+1)"
// and "xy" as "x*y". Every letter outside a function name is a symbol
// of its own.
package reader

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/njchilds90/mathworld/algebra"
)

var (
	ErrInvalidValueType  = errors.New("reader: invalid value type")
	ErrInvalidExpression = errors.New("reader: invalid expression")
	ErrInvalidEquation   = errors.New("reader: invalid equation")
)

var tok = regexp.MustCompile(`^(\d+(?:\.\d*)?|\.\d+|[a-zA-Z]+|\*\*|[-+*/^=()\[\]{}]|\s+)`)

type kind int

const (
	kNum kind = iota
	kSym
	kFunc
	kOp
	kLParen
	kRParen
)

type token struct {
	kind kind
	text string
	pos  int
}

// Reader parses text with a fixed configuration. A Reader is immutable
// and safe for concurrent use.
type Reader struct {
	opts options
}

// New returns a Reader configured by opts.
func New(opts ...Option) *Reader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.lowercase {
		fns := make(map[string]struct{}, len(o.functions))
		for f := range o.functions {
			fns[strings.ToLower(f)] = struct{}{}
		}
		o.functions = fns
	}
	return &Reader{opts: o}
}

var defaultReader = New()

// Parsed is the result of Read: exactly one of Expr and Equation is set.
type Parsed struct {
	Expr     algebra.Expr
	Equation *algebra.Equation
}

// IsEquation reports whether the input contained "=".
func (p Parsed) IsEquation() bool { return p.Equation != nil }

func (p Parsed) String() string {
	if p.Equation != nil {
		return p.Equation.String()
	}
	if p.Expr == nil {
		return ""
	}
	return p.Expr.String()
}

// split tokenizes text, splitting letter runs into symbols and function
// names and inserting implicit multiplication.
func (r *Reader) split(text string) ([]token, error) {
	var raw []token
	for i := 0; i < len(text); {
		loc := tok.FindStringIndex(text[i:])
		if loc == nil {
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidExpression, text[i:i+1], i)
		}
		s := text[i : i+loc[1]]
		switch {
		case strings.TrimSpace(s) == "":
		case s[0] >= '0' && s[0] <= '9' || s[0] == '.':
			raw = append(raw, token{kind: kNum, text: s, pos: i})
		case isLetter(s[0]):
			if r.opts.lowercase {
				s = strings.ToLower(s)
			}
			raw = append(raw, token{kind: kSym, text: s, pos: i})
		case s == "(" || s == "[" || s == "{":
			raw = append(raw, token{kind: kLParen, text: "(", pos: i})
		case s == ")" || s == "]" || s == "}":
			raw = append(raw, token{kind: kRParen, text: ")", pos: i})
		case s == "**":
			raw = append(raw, token{kind: kOp, text: "^", pos: i})
		default:
			raw = append(raw, token{kind: kOp, text: s, pos: i})
		}
		i += loc[1]
	}

	var words []token
	for j, t := range raw {
		if t.kind != kSym {
			words = append(words, t)
			continue
		}
		call := j+1 < len(raw) && raw[j+1].kind == kLParen
		words = append(words, r.splitWord(t, call)...)
	}

	out := make([]token, 0, len(words))
	for j, t := range words {
		if j > 0 && implicitMul(words[j-1], t) {
			out = append(out, token{kind: kOp, text: "*", pos: t.pos})
		}
		out = append(out, t)
	}
	return out, nil
}

// splitWord breaks a letter run into single-letter symbols, keeping a
// trailing function name when the run is followed by "(".
func (r *Reader) splitWord(t token, call bool) []token {
	fn := len(t.text)
	if call {
		for i := 0; i < len(t.text); i++ {
			if _, ok := r.opts.functions[t.text[i:]]; ok {
				fn = i
				break
			}
		}
	}
	out := make([]token, 0, fn+1)
	for i := 0; i < fn; i++ {
		out = append(out, token{kind: kSym, text: t.text[i : i+1], pos: t.pos + i})
	}
	if fn < len(t.text) {
		out = append(out, token{kind: kFunc, text: t.text[fn:], pos: t.pos + fn})
	}
	return out
}

func implicitMul(prev, next token) bool {
	switch prev.kind {
	case kNum:
		return next.kind == kSym || next.kind == kFunc || next.kind == kLParen
	case kSym, kRParen:
		return next.kind == kNum || next.kind == kSym || next.kind == kFunc || next.kind == kLParen
	}
	return false
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

// Normalize returns text in explicit form: parentheses only, "^" for
// power and "*" for every multiplication. Malformed input is returned
// unchanged.
func (r *Reader) Normalize(text string) string {
	toks, err := r.split(text)
	if err != nil {
		return text
	}
	var sb strings.Builder
	for i, t := range toks {
		if i > 0 && t.kind == kNum && toks[i-1].kind == kNum {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.text)
	}
	return sb.String()
}

// ParseExpression parses text that must not contain "=".
func (r *Reader) ParseExpression(text string) (algebra.Expr, error) {
	toks, err := r.split(text)
	if err != nil {
		return nil, err
	}
	for _, t := range toks {
		if t.kind == kOp && t.text == "=" {
			return nil, fmt.Errorf("%w: unexpected \"=\" at %d", ErrInvalidExpression, t.pos)
		}
	}
	return parseTokens(toks)
}

// ParseEquation parses text with exactly one "=".
func (r *Reader) ParseEquation(text string) (*algebra.Equation, error) {
	toks, err := r.split(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEquation, err)
	}
	eq := -1
	for i, t := range toks {
		if t.kind == kOp && t.text == "=" {
			if eq >= 0 {
				return nil, fmt.Errorf("%w: more than one \"=\"", ErrInvalidEquation)
			}
			eq = i
		}
	}
	if eq < 0 {
		return nil, fmt.Errorf("%w: missing \"=\"", ErrInvalidEquation)
	}
	lhs, err := parseTokens(toks[:eq])
	if err != nil {
		return nil, fmt.Errorf("%w: left side: %w", ErrInvalidEquation, err)
	}
	rhs, err := parseTokens(toks[eq+1:])
	if err != nil {
		return nil, fmt.Errorf("%w: right side: %w", ErrInvalidEquation, err)
	}
	return algebra.Eq(lhs, rhs), nil
}

// Read parses an equation when text contains "=" and an expression
// otherwise.
func (r *Reader) Read(text string) (Parsed, error) {
	if strings.Contains(text, "=") {
		eq, err := r.ParseEquation(text)
		if err != nil {
			return Parsed{}, err
		}
		return Parsed{Equation: eq}, nil
	}
	e, err := r.ParseExpression(text)
	if err != nil {
		return Parsed{}, err
	}
	return Parsed{Expr: e}, nil
}

// ParseValue converts Go numbers, math/big values, expressions and
// expression text into an exact expression. Floats are read through
// their shortest decimal form, so 0.1 becomes 1/10.
func (r *Reader) ParseValue(v any) (algebra.Expr, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrInvalidValueType)
	case algebra.Expr:
		if x == nil || reflect.ValueOf(x).IsNil() {
			return nil, fmt.Errorf("%w: nil expression", ErrInvalidValueType)
		}
		return x.Simplify(), nil
	case string:
		return r.ParseExpression(x)
	case *big.Int:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *big.Int", ErrInvalidValueType)
		}
		return algebra.NInt(x), nil
	case *big.Rat:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *big.Rat", ErrInvalidValueType)
		}
		return algebra.NRat(x), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return algebra.N(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return algebra.NInt(new(big.Int).SetUint64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValueType, f)
		}
		bits := 64
		if rv.Kind() == reflect.Float32 {
			bits = 32
		}
		q, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, bits))
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValueType, f)
		}
		return algebra.NRat(q), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidValueType, v)
}

// ============================================================
// Package-level helpers using the default configuration
// ============================================================

func Normalize(text string) string { return defaultReader.Normalize(text) }

func ParseExpression(text string) (algebra.Expr, error) { return defaultReader.ParseExpression(text) }

func ParseEquation(text string) (*algebra.Equation, error) { return defaultReader.ParseEquation(text) }

func Read(text string) (Parsed, error) { return defaultReader.Read(text) }

func ParseValue(v any) (algebra.Expr, error) { return defaultReader.ParseValue(v) }
