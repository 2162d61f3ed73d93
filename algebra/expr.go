// Package algebra is the exact symbolic kernel behind mathworld.
//
// Design goals:
//   - Exact arithmetic over rationals extended with square roots
//     (math/big), never floating point for decisions
//   - Deterministic canonical form: Simplify expands into a sparse
//     polynomial over atoms and rebuilds a stable expression
//   - Small capability surface: substitution, differentiation,
//     coefficient extraction, real-root solving, JSON
package algebra

import (
	"strings"
)

// ============================================================
// Core Interface
// ============================================================

type Expr interface {
	Simplify() Expr
	String() string
	LaTeX() string
	Sub(varName string, value Expr) Expr
	Diff(varName string) Expr
	Eval() (*Num, bool)
	Equal(other Expr) bool
	exprType() string
	toJSON() map[string]interface{}
}

// ============================================================
// Sym: symbolic variable
// ============================================================

type Sym struct{ name string }

func S(name string) *Sym      { return &Sym{name: name} }
func (s *Sym) Simplify() Expr { return s }
func (s *Sym) String() string { return s.name }
func (s *Sym) LaTeX() string  { return s.name }
func (s *Sym) Eval() (*Num, bool) {
	return nil, false
}
func (s *Sym) Equal(other Expr) bool { o, ok := other.(*Sym); return ok && s.name == o.name }
func (s *Sym) exprType() string      { return "sym" }
func (s *Sym) Name() string          { return s.name }
func (s *Sym) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "sym", "name": s.name}
}
func (s *Sym) Sub(varName string, value Expr) Expr {
	if s.name == varName {
		return value
	}
	return s
}
func (s *Sym) Diff(varName string) Expr {
	if s.name == varName {
		return N(1)
	}
	return N(0)
}

// ============================================================
// Inf: the infinite sentinel
// ============================================================

// Inf marks an undefined, unbounded value such as the slope of a
// vertical line. It takes no part in arithmetic.
type Inf struct{}

// Infinity is the only Inf value.
var Infinity = &Inf{}

func (i *Inf) Simplify() Expr        { return i }
func (i *Inf) String() string        { return "oo" }
func (i *Inf) LaTeX() string         { return "\\infty" }
func (i *Inf) Sub(string, Expr) Expr { return i }
func (i *Inf) Diff(string) Expr      { return N(0) }
func (i *Inf) Eval() (*Num, bool)    { return nil, false }
func (i *Inf) Equal(other Expr) bool { _, ok := other.(*Inf); return ok }
func (i *Inf) exprType() string      { return "inf" }
func (i *Inf) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "inf"}
}

// IsInfinite reports whether e is the infinite sentinel.
func IsInfinite(e Expr) bool {
	_, ok := e.(*Inf)
	return ok
}

// ============================================================
// Add: sum of terms
// ============================================================

type Add struct{ terms []Expr }

func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

func (a *Add) Simplify() Expr { return Canonical(a) }

func (a *Add) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range a.terms {
		s := t.String()
		switch {
		case i == 0:
			sb.WriteString(s)
		case strings.HasPrefix(s, "-"):
			sb.WriteString(" - " + s[1:])
		default:
			sb.WriteString(" + " + s)
		}
	}
	return sb.String()
}

func (a *Add) LaTeX() string {
	var sb strings.Builder
	for i, t := range a.terms {
		s := t.LaTeX()
		switch {
		case i == 0:
			sb.WriteString(s)
		case strings.HasPrefix(s, "-"):
			sb.WriteString(" - " + s[1:])
		default:
			sb.WriteString(" + " + s)
		}
	}
	return sb.String()
}

func (a *Add) Sub(varName string, value Expr) Expr {
	newTerms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		newTerms[i] = t.Sub(varName, value)
	}
	return AddOf(newTerms...)
}

func (a *Add) Diff(varName string) Expr {
	dTerms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		dTerms[i] = t.Diff(varName)
	}
	return AddOf(dTerms...)
}

func (a *Add) Eval() (*Num, bool) { return toPoly(a).constant() }

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) exprType() string { return "add" }
func (a *Add) toJSON() map[string]interface{} {
	ts := make([]map[string]interface{}, len(a.terms))
	for i, t := range a.terms {
		ts[i] = t.toJSON()
	}
	return map[string]interface{}{"type": "add", "terms": ts}
}
func (a *Add) Terms() []Expr { return a.terms }

// ============================================================
// Mul: product of factors
// ============================================================

type Mul struct{ factors []Expr }

func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

func (m *Mul) Simplify() Expr { return Canonical(m) }

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, 0, len(m.factors))
	sign := ""
	for i, f := range m.factors {
		if n, ok := f.(*Num); ok && i == 0 && len(m.factors) > 1 {
			if n.IsNegOne() {
				sign = "-"
				continue
			}
		}
		parts = append(parts, factorString(f))
	}
	return sign + strings.Join(parts, "*")
}

func factorString(f Expr) string {
	switch v := f.(type) {
	case *Add:
		return "(" + v.String() + ")"
	case *Num:
		if len(v.terms) > 1 {
			return "(" + v.String() + ")"
		}
	}
	return f.String()
}

func (m *Mul) LaTeX() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		_, isAdd := f.(*Add)
		n, isNum := f.(*Num)
		if isAdd || (isNum && len(n.terms) > 1) {
			parts[i] = "\\left(" + f.LaTeX() + "\\right)"
		} else {
			parts[i] = f.LaTeX()
		}
	}
	return strings.Join(parts, " ")
}

func (m *Mul) Sub(varName string, value Expr) Expr {
	newFactors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		newFactors[i] = f.Sub(varName, value)
	}
	return MulOf(newFactors...)
}

func (m *Mul) Diff(varName string) Expr {
	terms := make([]Expr, len(m.factors))
	for i, fi := range m.factors {
		dfi := fi.Diff(varName)
		others := make([]Expr, 0, len(m.factors)-1)
		for j, fj := range m.factors {
			if j != i {
				others = append(others, fj)
			}
		}
		if len(others) == 0 {
			terms[i] = dfi
		} else {
			terms[i] = MulOf(append([]Expr{dfi}, others...)...)
		}
	}
	return AddOf(terms...)
}

func (m *Mul) Eval() (*Num, bool) { return toPoly(m).constant() }

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) exprType() string { return "mul" }
func (m *Mul) toJSON() map[string]interface{} {
	fs := make([]map[string]interface{}, len(m.factors))
	for i, f := range m.factors {
		fs[i] = f.toJSON()
	}
	return map[string]interface{}{"type": "mul", "factors": fs}
}
func (m *Mul) Factors() []Expr { return m.factors }

// ============================================================
// Pow: base^exponent
// ============================================================

type Pow struct{ base, exp Expr }

func PowOf(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

func (p *Pow) Simplify() Expr { return Canonical(p) }

func (p *Pow) String() string {
	if isHalf(p.exp) {
		return "sqrt(" + p.base.String() + ")"
	}
	baseStr := p.base.String()
	switch v := p.base.(type) {
	case *Add, *Mul, *Pow:
		baseStr = "(" + baseStr + ")"
	case *Num:
		if !v.IsInteger() || v.IsNegative() {
			baseStr = "(" + baseStr + ")"
		}
	}
	expStr := p.exp.String()
	if n, ok := p.exp.(*Num); !ok || !n.IsInteger() || n.IsNegative() {
		if _, isSym := p.exp.(*Sym); !isSym {
			expStr = "(" + expStr + ")"
		}
	}
	return baseStr + "^" + expStr
}

func (p *Pow) LaTeX() string {
	if isHalf(p.exp) {
		return "\\sqrt{" + p.base.LaTeX() + "}"
	}
	baseStr := p.base.LaTeX()
	_, baseIsAdd := p.base.(*Add)
	_, baseIsMul := p.base.(*Mul)
	if baseIsAdd || baseIsMul {
		baseStr = "\\left(" + baseStr + "\\right)"
	}
	return baseStr + "^{" + p.exp.LaTeX() + "}"
}

func isHalf(e Expr) bool {
	n, ok := e.(*Num)
	return ok && numEqual(n, F(1, 2))
}

func (p *Pow) Sub(varName string, value Expr) Expr {
	return PowOf(p.base.Sub(varName, value), p.exp.Sub(varName, value))
}

func (p *Pow) Diff(varName string) Expr {
	du := p.base.Diff(varName)
	dv := p.exp.Diff(varName)
	_, expIsNum := p.exp.(*Num)
	if expIsNum {
		newExp := AddOf(p.exp, N(-1))
		return MulOf(p.exp, PowOf(p.base, newExp), du)
	}
	_, baseIsNum := p.base.(*Num)
	if baseIsNum {
		return MulOf(PowOf(p.base, p.exp), LnOf(p.base), dv)
	}
	logTerm := MulOf(dv, LnOf(p.base))
	divTerm := MulOf(p.exp, du, PowOf(p.base, N(-1)))
	return MulOf(PowOf(p.base, p.exp), AddOf(logTerm, divTerm))
}

func (p *Pow) Eval() (*Num, bool) { return toPoly(p).constant() }

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Pow) exprType() string { return "pow" }
func (p *Pow) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "pow", "base": p.base.toJSON(), "exp": p.exp.toJSON()}
}
func (p *Pow) Base() Expr    { return p.base }
func (p *Pow) ExpExpr() Expr { return p.exp }

// ============================================================
// Equation
// ============================================================

type Equation struct{ LHS, RHS Expr }

func Eq(lhs, rhs Expr) *Equation { return &Equation{LHS: lhs, RHS: rhs} }
func (e *Equation) String() string {
	return e.LHS.String() + " = " + e.RHS.String()
}
func (e *Equation) LaTeX() string { return e.LHS.LaTeX() + " = " + e.RHS.LaTeX() }

// Residual returns LHS - RHS in canonical form.
func (e *Equation) Residual() Expr {
	return AddOf(e.LHS, MulOf(N(-1), e.RHS))
}

// Sub substitutes value for varName on both sides.
func (e *Equation) Sub(varName string, value Expr) *Equation {
	return Eq(Sub(e.LHS, varName, value), Sub(e.RHS, varName, value))
}

// ============================================================
// Top-level convenience functions
// ============================================================

func Simplify(e Expr) Expr { return e.Simplify() }
func String(e Expr) string { return e.String() }
func LaTeX(e Expr) string  { return e.LaTeX() }

func Sub(expr Expr, varName string, value Expr) Expr {
	return expr.Sub(varName, value).Simplify()
}

func Diff(expr Expr, varName string) Expr {
	return expr.Diff(varName).Simplify()
}

// Expand is Canonical under the name callers of symbolic kernels expect.
func Expand(e Expr) Expr { return Canonical(e) }

// NegOf returns -e.
func NegOf(e Expr) Expr { return MulOf(N(-1), e) }

// DivOf returns num/denom. Division by an exact zero is left unevaluated
// as denom^-1.
func DivOf(num, denom Expr) Expr { return MulOf(num, PowOf(denom, N(-1))) }

// IsZero reports whether e is identically zero. Sums under negative
// powers are cleared by cross-multiplication first.
func IsZero(e Expr) bool {
	p := toPoly(e)
	if p.isZero() {
		return true
	}
	if !p.hasFractions() {
		return false
	}
	num, den := ratOf(e)
	if den.isZero() {
		return false
	}
	return num.isZero()
}

// Equal reports whether a - b is identically zero.
func Equal(a, b Expr) bool {
	if IsInfinite(a) || IsInfinite(b) {
		return IsInfinite(a) && IsInfinite(b)
	}
	return IsZero(AddOf(a, NegOf(b)))
}

// Sign returns the exact sign of a constant expression. ok is false when
// e depends on free symbols or is not a field element.
func Sign(e Expr) (sign int, ok bool) {
	n, ok := e.Eval()
	if !ok {
		return 0, false
	}
	return n.Sign(), true
}

// Cmp compares two constant expressions exactly.
func Cmp(a, b Expr) (int, bool) {
	if IsInfinite(a) || IsInfinite(b) {
		return 0, false
	}
	return Sign(AddOf(a, NegOf(b)))
}

// ============================================================
// Free Symbols
// ============================================================

func FreeSymbols(e Expr) map[string]struct{} {
	result := map[string]struct{}{}
	collectSymbols(e, result)
	return result
}

// DependsOn reports whether any of names occurs free in e.
func DependsOn(e Expr, names ...string) bool {
	free := FreeSymbols(e)
	for _, n := range names {
		if _, ok := free[n]; ok {
			return true
		}
	}
	return false
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *Func:
		collectSymbols(v.arg, out)
	}
}
