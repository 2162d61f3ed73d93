package algebra

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// ============================================================
// Canonical polynomial form
// ============================================================

// factor is atom^exp inside a monomial. Atoms are symbols, function
// applications, or powers and sums that cannot be expanded further.
type factor struct {
	key  string
	base Expr
	exp  int
}

type pterm struct {
	factors []factor // sorted by key
	coeff   *Num
}

func (t *pterm) key() string {
	parts := make([]string, len(t.factors))
	for i, f := range t.factors {
		parts[i] = f.key + "^" + strconv.Itoa(f.exp)
	}
	return strings.Join(parts, "*")
}

func (t *pterm) degree() int {
	d := 0
	for _, f := range t.factors {
		d += f.exp
	}
	return d
}

// poly is a sparse sum of monomials with field coefficients.
type poly struct{ terms map[string]*pterm }

func newPoly() *poly { return &poly{terms: map[string]*pterm{}} }

func constPoly(n *Num) *poly {
	p := newPoly()
	if !n.IsZero() {
		p.terms[""] = &pterm{coeff: n}
	}
	return p
}

func atomPoly(key string, base Expr, exp int) *poly {
	p := newPoly()
	t := &pterm{factors: []factor{{key: key, base: base, exp: exp}}, coeff: N(1)}
	p.terms[t.key()] = t
	return p
}

func (p *poly) isZero() bool { return len(p.terms) == 0 }

// constant returns the value of p when it has no atoms.
func (p *poly) constant() (*Num, bool) {
	switch len(p.terms) {
	case 0:
		return N(0), true
	case 1:
		if t, ok := p.terms[""]; ok {
			return t.coeff, true
		}
	}
	return nil, false
}

func (p *poly) addTerm(t *pterm) {
	k := t.key()
	if cur, ok := p.terms[k]; ok {
		c := numAdd(cur.coeff, t.coeff)
		if c.IsZero() {
			delete(p.terms, k)
			return
		}
		p.terms[k] = &pterm{factors: cur.factors, coeff: c}
		return
	}
	if !t.coeff.IsZero() {
		p.terms[k] = t
	}
}

func polyAdd(a, b *poly) *poly {
	out := newPoly()
	for _, t := range a.terms {
		out.addTerm(t)
	}
	for _, t := range b.terms {
		out.addTerm(t)
	}
	return out
}

func polyScale(a *poly, c *Num) *poly {
	out := newPoly()
	for _, t := range a.terms {
		out.addTerm(&pterm{factors: t.factors, coeff: numMul(t.coeff, c)})
	}
	return out
}

func mulFactors(a, b []factor) []factor {
	out := make([]factor, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i].key < b[j].key):
			out = append(out, a[i])
			i++
		case i == len(a) || b[j].key < a[i].key:
			out = append(out, b[j])
			j++
		default:
			if e := a[i].exp + b[j].exp; e != 0 {
				out = append(out, factor{key: a[i].key, base: a[i].base, exp: e})
			}
			i++
			j++
		}
	}
	return out
}

func polyMul(a, b *poly) *poly {
	out := newPoly()
	for _, s := range a.terms {
		for _, t := range b.terms {
			out.addReduced(&pterm{factors: mulFactors(s.factors, t.factors), coeff: numMul(s.coeff, t.coeff)})
		}
	}
	return out
}

// rootBase returns b when f is a power of the square root atom sqrt(b).
func rootBase(f factor) (Expr, bool) {
	p, ok := f.base.(*Pow)
	if !ok || !isHalf(p.exp) {
		return nil, false
	}
	return p.base, true
}

// addReduced adds t after folding sqrt(b)^(2q+r) into b^q * sqrt(b)^r
// with |r| <= 1.
func (p *poly) addReduced(t *pterm) {
	for i, f := range t.factors {
		base, ok := rootBase(f)
		if !ok || (f.exp < 2 && f.exp > -2) {
			continue
		}
		rest := make([]factor, 0, len(t.factors))
		rest = append(rest, t.factors[:i]...)
		if r := f.exp % 2; r != 0 {
			rest = append(rest, factor{key: f.key, base: f.base, exp: r})
		}
		rest = append(rest, t.factors[i+1:]...)
		head := newPoly()
		head.addTerm(&pterm{factors: rest, coeff: t.coeff})
		for _, rt := range polyMul(head, polyPowInt(toPoly(base), int64(f.exp/2))).terms {
			p.addTerm(rt)
		}
		return
	}
	p.addTerm(t)
}

// maxExpand bounds the exponent to which a sum is multiplied out.
const maxExpand = 64

func polyPowInt(p *poly, k int64) *poly {
	if k == 0 {
		return constPoly(N(1))
	}
	if c, ok := p.constant(); ok {
		if v, ok := numPow(c, k); ok {
			return constPoly(v)
		}
		// 0^-k stays symbolic
		return atomPoly("~p:"+c.String()+"^"+strconv.FormatInt(k, 10), &Pow{base: c, exp: N(k)}, 1)
	}
	if len(p.terms) == 1 {
		for _, t := range p.terms {
			c, ok := numPow(t.coeff, k)
			if !ok {
				break
			}
			fs := make([]factor, len(t.factors))
			for i, f := range t.factors {
				fs[i] = factor{key: f.key, base: f.base, exp: f.exp * int(k)}
			}
			out := newPoly()
			out.addReduced(&pterm{factors: fs, coeff: c})
			return out
		}
	}
	if k > 0 && k <= maxExpand {
		out := constPoly(N(1))
		for i := int64(0); i < k; i++ {
			out = polyMul(out, p)
		}
		return out
	}
	// Keep the sum as an atom, monic so equal sums share a key.
	lead := p.sorted()[0].coeff
	inv, ok := numInv(lead)
	if !ok {
		lead, inv = N(1), N(1)
	}
	base := fromPoly(polyScale(p, inv))
	c, ok := numPow(lead, k)
	if !ok {
		c = N(1)
	}
	return polyScale(atomPoly("~a:("+base.String()+")", base, int(k)), c)
}

// sorted orders terms by descending degree, then key; the constant
// comes last.
func (p *poly) sorted() []*pterm {
	out := make([]*pterm, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (len(a.factors) == 0) != (len(b.factors) == 0) {
			return len(b.factors) == 0
		}
		if da, db := a.degree(), b.degree(); da != db {
			return da > db
		}
		return monoLess(a.factors, b.factors)
	})
	return out
}

// monoLess is lexicographic order: earlier atoms first, higher powers of
// the same atom first.
func monoLess(a, b []factor) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].key != b[i].key {
			return a[i].key < b[i].key
		}
		if a[i].exp != b[i].exp {
			return a[i].exp > b[i].exp
		}
	}
	return len(a) > len(b)
}

// toPoly converts e into canonical polynomial form without calling
// Simplify on e itself.
func toPoly(e Expr) *poly {
	switch v := e.(type) {
	case *Num:
		return constPoly(v)
	case *Sym:
		return atomPoly(v.name, v, 1)
	case *Inf:
		return atomPoly("~oo", v, 1)
	case *Add:
		out := newPoly()
		for _, t := range v.terms {
			out = polyAdd(out, toPoly(t))
		}
		return out
	case *Mul:
		out := constPoly(N(1))
		for _, f := range v.factors {
			out = polyMul(out, toPoly(f))
			if out.isZero() {
				return out
			}
		}
		return out
	case *Pow:
		return powPoly(v)
	case *Func:
		s := v.Simplify()
		f, ok := s.(*Func)
		if !ok {
			return toPoly(s)
		}
		return atomPoly("~f:"+f.String(), f, 1)
	}
	panic(fmt.Sprintf("algebra: unknown expression %T", e))
}

func powPoly(v *Pow) *poly {
	bp := toPoly(v.base)
	ep := toPoly(v.exp)
	exp, ok := ep.constant()
	if ok {
		if r, isRat := exp.Rat(); isRat {
			if r.IsInt() && r.Num().IsInt64() {
				return polyPowInt(bp, r.Num().Int64())
			}
			if c, isConst := bp.constant(); isConst {
				if out, ok := numPowRat(c, exp); ok {
					return constPoly(out)
				}
			}
			if r.Denom().Cmp(bigTwo) == 0 && r.Num().IsInt64() {
				return halfPowPoly(bp, r.Num().Int64())
			}
		}
	}
	base, ex := fromPoly(bp), fromPoly(ep)
	p := &Pow{base: base, exp: ex}
	return atomPoly("~p:"+p.String(), p, 1)
}

// halfPowPoly returns sqrt(b)^k for odd k as sqrt(b)^sign(k) times an
// integer power of b.
func halfPowPoly(bp *poly, k int64) *poly {
	sign := int64(1)
	if k < 0 {
		sign = -1
	}
	whole := (k - sign) / 2
	base := fromPoly(bp)
	root := &Pow{base: base, exp: F(1, 2)}
	out := atomPoly("~p:"+root.String(), root, int(sign))
	if whole != 0 {
		out = polyMul(out, polyPowInt(bp, whole))
	}
	return out
}

// fromPoly rebuilds an expression tree from p without simplifying.
func fromPoly(p *poly) Expr {
	ts := p.sorted()
	if len(ts) == 0 {
		return N(0)
	}
	terms := make([]Expr, len(ts))
	for i, t := range ts {
		terms[i] = termExpr(t)
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return &Add{terms: terms}
}

func termExpr(t *pterm) Expr {
	if len(t.factors) == 0 {
		return t.coeff
	}
	fs := make([]Expr, 0, len(t.factors)+1)
	if !t.coeff.IsOne() {
		fs = append(fs, t.coeff)
	}
	for _, f := range t.factors {
		if f.exp == 1 {
			fs = append(fs, f.base)
			continue
		}
		fs = append(fs, &Pow{base: f.base, exp: N(int64(f.exp))})
	}
	if len(fs) == 1 {
		return fs[0]
	}
	return &Mul{factors: fs}
}

// Canonical returns the expanded canonical form of e. Two expressions
// that are equal as polynomials over the same atoms have identical
// canonical forms.
func Canonical(e Expr) Expr {
	if _, ok := e.(*Inf); ok {
		return e
	}
	return fromPoly(toPoly(e))
}

// ============================================================
// Rational form
// ============================================================

// ratOf writes e as num/den. Negative powers of sums become
// denominators instead of opaque atoms, so identities that need
// cross-multiplication reduce to a polynomial zero test.
func ratOf(e Expr) (num, den *poly) {
	switch v := e.(type) {
	case *Add:
		num, den = newPoly(), constPoly(N(1))
		for _, t := range v.terms {
			n, d := ratOf(t)
			if polyEqual(d, den) {
				num = polyAdd(num, n)
				continue
			}
			num = polyAdd(polyMul(num, d), polyMul(n, den))
			den = polyMul(den, d)
		}
		return reduceRat(num, den)
	case *Mul:
		num, den = constPoly(N(1)), constPoly(N(1))
		for _, f := range v.factors {
			n, d := ratOf(f)
			num, den = polyMul(num, n), polyMul(den, d)
			if num.isZero() {
				return num, constPoly(N(1))
			}
		}
		return reduceRat(num, den)
	case *Pow:
		return ratPow(v)
	}
	return toPoly(e), constPoly(N(1))
}

func ratPow(v *Pow) (num, den *poly) {
	exp, ok := toPoly(v.exp).constant()
	if !ok {
		return toPoly(v), constPoly(N(1))
	}
	r, ok := exp.Rat()
	if !ok || !r.Num().IsInt64() || r.Num().Int64() > maxExpand || r.Num().Int64() < -maxExpand {
		return toPoly(v), constPoly(N(1))
	}
	k := r.Num().Int64()
	switch {
	case r.IsInt():
		n, d := ratOf(v.base)
		if k < 0 {
			if n.isZero() {
				return toPoly(v), constPoly(N(1))
			}
			n, d, k = d, n, -k
		}
		return reduceRat(polyPowInt(n, k), polyPowInt(d, k))
	case r.Denom().Cmp(bigTwo) == 0:
		n, d := ratOf(v.base)
		if c, ok := constRatio(n, d); ok {
			if out, ok := numPowRat(c, exp); ok {
				return constPoly(out), constPoly(N(1))
			}
		}
		root := toPoly(&Pow{base: v.base, exp: F(1, 2)})
		if k < 0 {
			return constPoly(N(1)), polyPowInt(root, -k)
		}
		return polyPowInt(root, k), constPoly(N(1))
	}
	return toPoly(v), constPoly(N(1))
}

// hasFractions reports whether p has negative powers or radicals, the
// atoms ratOf can rewrite.
func (p *poly) hasFractions() bool {
	for _, t := range p.terms {
		for _, f := range t.factors {
			if _, ok := f.base.(*Pow); ok || f.exp < 0 {
				return true
			}
		}
	}
	return false
}

// reduceRat folds a constant denominator into the numerator.
func reduceRat(num, den *poly) (*poly, *poly) {
	if c, ok := den.constant(); ok {
		if inv, ok := numInv(c); ok {
			return polyScale(num, inv), constPoly(N(1))
		}
	}
	return num, den
}

// constRatio returns c when num = c*den.
func constRatio(num, den *poly) (*Num, bool) {
	if den.isZero() {
		return nil, false
	}
	if num.isZero() {
		return N(0), true
	}
	lead := den.sorted()[0]
	t, ok := num.terms[lead.key()]
	if !ok {
		return nil, false
	}
	inv, ok := numInv(lead.coeff)
	if !ok {
		return nil, false
	}
	c := numMul(t.coeff, inv)
	if !polyAdd(num, polyScale(den, numNeg(c))).isZero() {
		return nil, false
	}
	return c, true
}

func polyEqual(a, b *poly) bool {
	return polyAdd(a, polyScale(b, N(-1))).isZero()
}

// ============================================================
// Coefficients
// ============================================================

var ErrNotLinear = errors.New("algebra: expression is not linear")

// LinearCoeffs splits e into sum(coeffs[i]*vars[i]) + rest. Coefficients
// and rest are free of vars.
func LinearCoeffs(e Expr, vars ...string) (coeffs []Expr, rest Expr, err error) {
	acc := make([]*poly, len(vars))
	for i := range acc {
		acc[i] = newPoly()
	}
	restP := newPoly()
	index := map[string]int{}
	for i, v := range vars {
		index[v] = i
	}
	for _, t := range toPoly(e).terms {
		which := -1
		others := make([]factor, 0, len(t.factors))
		for _, f := range t.factors {
			if s, ok := f.base.(*Sym); ok {
				if i, isVar := index[s.name]; isVar {
					if which >= 0 || f.exp != 1 {
						return nil, nil, fmt.Errorf("%w: %s", ErrNotLinear, e)
					}
					which = i
					continue
				}
			} else if DependsOn(f.base, vars...) {
				return nil, nil, fmt.Errorf("%w: %s", ErrNotLinear, e)
			}
			others = append(others, f)
		}
		rt := &pterm{factors: others, coeff: t.coeff}
		if which < 0 {
			restP.addTerm(rt)
		} else {
			acc[which].addTerm(rt)
		}
	}
	coeffs = make([]Expr, len(vars))
	for i, p := range acc {
		coeffs[i] = fromPoly(p)
	}
	return coeffs, fromPoly(restP), nil
}

// PolyCoeffsResult maps a degree to its coefficient.
type PolyCoeffsResult map[int]Expr

// PolyCoeffs returns the coefficients of e as a polynomial in varName.
// Negative powers of varName and atoms depending on it are rejected.
func PolyCoeffs(expr Expr, varName string) (PolyCoeffsResult, error) {
	acc := map[int]*poly{}
	for _, t := range toPoly(expr).terms {
		deg := 0
		others := make([]factor, 0, len(t.factors))
		for _, f := range t.factors {
			if s, ok := f.base.(*Sym); ok && s.name == varName {
				if f.exp < 0 {
					return nil, fmt.Errorf("%w: %s is not a polynomial in %s", ErrUnsupported, expr, varName)
				}
				deg = f.exp
				continue
			}
			if DependsOn(f.base, varName) {
				return nil, fmt.Errorf("%w: %s is not a polynomial in %s", ErrUnsupported, expr, varName)
			}
			others = append(others, f)
		}
		if acc[deg] == nil {
			acc[deg] = newPoly()
		}
		acc[deg].addTerm(&pterm{factors: others, coeff: t.coeff})
	}
	out := PolyCoeffsResult{}
	for d, p := range acc {
		if !p.isZero() {
			out[d] = fromPoly(p)
		}
	}
	return out, nil
}

// Coeff returns the coefficient of degree d, or 0.
func (r PolyCoeffsResult) Coeff(d int) Expr {
	if c, ok := r[d]; ok {
		return c
	}
	return N(0)
}

// Degree returns the highest degree present, or -1 for the zero
// polynomial.
func (r PolyCoeffsResult) Degree() int {
	d := -1
	for k := range r {
		if k > d {
			d = k
		}
	}
	return d
}

// Degree returns the degree of expr in varName, 0 for expressions free of
// it and -1 when expr is not a polynomial in varName.
func Degree(expr Expr, varName string) int {
	pc, err := PolyCoeffs(expr, varName)
	if err != nil {
		return -1
	}
	if d := pc.Degree(); d > 0 {
		return d
	}
	return 0
}

// DenominatorLCM returns the least common multiple of the denominators
// of every rational coefficient in the canonical form of e.
func DenominatorLCM(e Expr) *big.Int {
	var dens []*big.Int
	for _, t := range toPoly(e).terms {
		for _, s := range t.coeff.terms {
			dens = append(dens, s.coeff.Denom())
		}
	}
	return LCM(dens...)
}
