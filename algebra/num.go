package algebra

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// ============================================================
// Num: exact real number in a quadratic surd field
// ============================================================

// surd is one term q*sqrt(rad) of a Num. rad is squarefree and
// shared between values, so it is never mutated.
type surd struct {
	rad   *big.Int
	coeff *big.Rat
}

// Num is an exact real number q0 + q1*sqrt(s1) + ... + qn*sqrt(sn) with
// rational q and distinct squarefree radicands. Terms are kept sorted by
// radicand; radicand 1 is the rational part. The zero value is 0.
type Num struct{ terms []surd }

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

func N(n int64) *Num { return NRat(new(big.Rat).SetInt64(n)) }

func F(p, q int64) *Num {
	if q == 0 {
		panic("algebra: denominator is zero")
	}
	return NRat(new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q)))
}

// NRat returns the exact value of r. r is copied.
func NRat(r *big.Rat) *Num {
	if r.Sign() == 0 {
		return &Num{}
	}
	return &Num{terms: []surd{{rad: bigOne, coeff: new(big.Rat).Set(r)}}}
}

// NInt returns the exact value of i. i is copied.
func NInt(i *big.Int) *Num { return NRat(new(big.Rat).SetInt(i)) }

func (n *Num) Simplify() Expr        { return n }
func (n *Num) Sub(string, Expr) Expr { return n }
func (n *Num) Diff(string) Expr      { return N(0) }
func (n *Num) Eval() (*Num, bool)    { return n, true }
func (n *Num) Equal(other Expr) bool { o, ok := other.(*Num); return ok && numEqual(n, o) }
func (n *Num) exprType() string      { return "num" }
func (n *Num) IsZero() bool          { return len(n.terms) == 0 }
func (n *Num) IsOne() bool           { return numEqual(n, N(1)) }
func (n *Num) IsNegOne() bool        { return numEqual(n, N(-1)) }
func (n *Num) IsPositive() bool      { return n.Sign() > 0 }
func (n *Num) IsNegative() bool      { return n.Sign() < 0 }

// IsRational reports whether n has no irrational part.
func (n *Num) IsRational() bool {
	return len(n.terms) == 0 || (len(n.terms) == 1 && n.terms[0].rad.Cmp(bigOne) == 0)
}

func (n *Num) IsInteger() bool {
	r, ok := n.Rat()
	return ok && r.IsInt()
}

// Rat returns a copy of n as a big.Rat when n is rational.
func (n *Num) Rat() (*big.Rat, bool) {
	if !n.IsRational() {
		return nil, false
	}
	if len(n.terms) == 0 {
		return new(big.Rat), true
	}
	return new(big.Rat).Set(n.terms[0].coeff), true
}

// Sign returns -1, 0 or +1. Zero is decided exactly from the canonical
// form; the sign of a non-zero irrational value is read from an
// approximation whose error bound is below its magnitude.
func (n *Num) Sign() int {
	switch {
	case len(n.terms) == 0:
		return 0
	case len(n.terms) == 1:
		return n.terms[0].coeff.Sign()
	}
	var v *big.Float
	for prec := uint(128); prec <= 1<<14; prec *= 2 {
		var bound *big.Float
		v, bound = n.approx(prec)
		if new(big.Float).Abs(v).Cmp(bound) > 0 {
			break
		}
	}
	return v.Sign()
}

// approx evaluates n with the given precision and returns an upper
// bound on the absolute error.
func (n *Num) approx(prec uint) (v, bound *big.Float) {
	v = new(big.Float).SetPrec(prec)
	mag := new(big.Float).SetPrec(prec)
	for _, t := range n.terms {
		x := new(big.Float).SetPrec(prec).SetRat(t.coeff)
		if t.rad.Cmp(bigOne) != 0 {
			r := new(big.Float).SetPrec(prec).SetInt(t.rad)
			x.Mul(x, r.Sqrt(r))
		}
		v.Add(v, x)
		mag.Add(mag, new(big.Float).Abs(x))
	}
	bound = new(big.Float).SetMantExp(mag, -int(prec)+8)
	return v, bound
}

func (n *Num) Float64() float64 {
	v, _ := n.approx(128)
	f, _ := v.Float64()
	return f
}

// Sqrt returns the exact square root of n when it lies in the field:
// for non-negative rationals, and for a + b*sqrt(r) when it denests.
func (n *Num) Sqrt() (*Num, bool) {
	r, ok := n.Rat()
	if !ok {
		return n.denest()
	}
	if r.Sign() < 0 {
		return nil, false
	}
	if r.Sign() == 0 {
		return N(0), true
	}
	// sqrt(p/q) = sqrt(p*q)/q
	pq := new(big.Int).Mul(r.Num(), r.Denom())
	k, s := squarefree(pq)
	coeff := new(big.Rat).SetFrac(k, r.Denom())
	return &Num{terms: []surd{{rad: s, coeff: coeff}}}, true
}

// denest takes sqrt(a + b*sqrt(r)) = sqrt(x) ± sqrt(y) with
// x, y = (a ± sqrt(a² - b²r))/2 when a² - b²r is a rational square.
func (n *Num) denest() (*Num, bool) {
	if len(n.terms) != 2 || n.terms[0].rad.Cmp(bigOne) != 0 || n.Sign() < 0 {
		return nil, false
	}
	a := n.terms[0].coeff
	b := n.terms[1].coeff
	d := new(big.Rat).Mul(a, a)
	b2r := new(big.Rat).Mul(b, b)
	b2r.Mul(b2r, new(big.Rat).SetInt(n.terms[1].rad))
	d.Sub(d, b2r)
	sd, ok := NRat(d).Sqrt()
	if !ok || !sd.IsRational() {
		return nil, false
	}
	half := big.NewRat(1, 2)
	x := numScale(numAdd(NRat(a), sd), half)
	y := numScale(numSub(NRat(a), sd), half)
	if x.Sign() < 0 || y.Sign() < 0 {
		return nil, false
	}
	sx, ok := x.Sqrt()
	if !ok {
		return nil, false
	}
	sy, ok := y.Sqrt()
	if !ok {
		return nil, false
	}
	if b.Sign() < 0 {
		return numSub(sx, sy), true
	}
	return numAdd(sx, sy), true
}

func (n *Num) String() string {
	if len(n.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range n.terms {
		s := surdString(t)
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

func surdString(t surd) string {
	if t.rad.Cmp(bigOne) == 0 {
		if t.coeff.IsInt() {
			return t.coeff.Num().String()
		}
		return t.coeff.RatString()
	}
	sign := ""
	num := new(big.Int).Set(t.coeff.Num())
	if num.Sign() < 0 {
		sign = "-"
		num.Neg(num)
	}
	s := sign
	if num.Cmp(bigOne) != 0 {
		s += num.String() + "*"
	}
	s += "sqrt(" + t.rad.String() + ")"
	if !t.coeff.IsInt() {
		s += "/" + t.coeff.Denom().String()
	}
	return s
}

func (n *Num) LaTeX() string {
	if len(n.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(n.terms))
	for i, t := range n.terms {
		parts[i] = surdLaTeX(t)
	}
	out := parts[0]
	for _, p := range parts[1:] {
		if strings.HasPrefix(p, "-") {
			out += " - " + p[1:]
		} else {
			out += " + " + p
		}
	}
	return out
}

func surdLaTeX(t surd) string {
	sign := ""
	v := new(big.Rat).Set(t.coeff)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	body := ""
	if t.rad.Cmp(bigOne) != 0 {
		body = "\\sqrt{" + t.rad.String() + "}"
	}
	num := v.Num().String()
	if body != "" && v.Num().Cmp(bigOne) == 0 {
		num = ""
	}
	if v.IsInt() {
		if num == "" {
			return sign + body
		}
		if body == "" {
			return sign + num
		}
		return sign + num + " " + body
	}
	top := strings.TrimSpace(num + " " + body)
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, top, v.Denom().String())
}

func (n *Num) toJSON() map[string]interface{} {
	if n.IsRational() {
		return map[string]interface{}{"type": "num", "value": n.String()}
	}
	return n.asExpr().toJSON()
}

// asExpr spells an irrational n as an unsimplified sum of q*s^(1/2)
// terms, which simplifies back to n.
func (n *Num) asExpr() Expr {
	terms := make([]Expr, len(n.terms))
	for i, t := range n.terms {
		c := NRat(t.coeff)
		if t.rad.Cmp(bigOne) == 0 {
			terms[i] = c
			continue
		}
		terms[i] = &Mul{factors: []Expr{c, &Pow{base: NInt(t.rad), exp: F(1, 2)}}}
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return &Add{terms: terms}
}

// ============================================================
// Field arithmetic
// ============================================================

func normalize(terms []surd) *Num {
	terms = refineRadicands(terms)
	acc := map[string]*surd{}
	keys := []string{}
	for _, t := range terms {
		k := t.rad.String()
		if s, ok := acc[k]; ok {
			s.coeff.Add(s.coeff, t.coeff)
			continue
		}
		acc[k] = &surd{rad: t.rad, coeff: new(big.Rat).Set(t.coeff)}
		keys = append(keys, k)
	}
	out := make([]surd, 0, len(keys))
	for _, k := range keys {
		if s := acc[k]; s.coeff.Sign() != 0 {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].rad.Cmp(out[j].rad) < 0 })
	return &Num{terms: out}
}

func numEqual(a, b *Num) bool {
	if len(a.terms) != len(b.terms) {
		return false
	}
	for i := range a.terms {
		if a.terms[i].rad.Cmp(b.terms[i].rad) != 0 || a.terms[i].coeff.Cmp(b.terms[i].coeff) != 0 {
			return false
		}
	}
	return true
}

func numAdd(a, b *Num) *Num {
	terms := make([]surd, 0, len(a.terms)+len(b.terms))
	terms = append(terms, a.terms...)
	terms = append(terms, b.terms...)
	return normalize(terms)
}

func numNeg(a *Num) *Num {
	out := make([]surd, len(a.terms))
	for i, t := range a.terms {
		out[i] = surd{rad: t.rad, coeff: new(big.Rat).Neg(t.coeff)}
	}
	return &Num{terms: out}
}

func numSub(a, b *Num) *Num { return numAdd(a, numNeg(b)) }

func numMul(a, b *Num) *Num {
	terms := make([]surd, 0, len(a.terms)*len(b.terms))
	for _, s := range a.terms {
		for _, t := range b.terms {
			// sqrt(r1)*sqrt(r2) = g*sqrt(r1/g * r2/g) with g = gcd(r1, r2)
			g := new(big.Int).GCD(nil, nil, s.rad, t.rad)
			rad := new(big.Int).Quo(s.rad, g)
			rad.Mul(rad, new(big.Int).Quo(t.rad, g))
			coeff := new(big.Rat).Mul(s.coeff, t.coeff)
			coeff.Mul(coeff, new(big.Rat).SetInt(g))
			if rad.Cmp(bigOne) == 0 {
				rad = bigOne
			}
			terms = append(terms, surd{rad: rad, coeff: coeff})
		}
	}
	return normalize(terms)
}

func numScale(a *Num, r *big.Rat) *Num {
	return numMul(a, NRat(r))
}

// numInv returns 1/a. Irrational values are rationalised by multiplying
// with their conjugates over each generator of the radicands.
func numInv(a *Num) (*Num, bool) {
	if a.IsZero() {
		return nil, false
	}
	if r, ok := a.Rat(); ok {
		return NRat(r.Inv(r)), true
	}
	w, c := a, N(1)
	for _, g := range radicandBasis(a) {
		conj := conjugate(w, g)
		c = numMul(c, conj)
		w = numMul(w, conj)
	}
	r, ok := w.Rat()
	if !ok || r.Sign() == 0 {
		return nil, false
	}
	return numScale(c, r.Inv(r)), true
}

func numDiv(a, b *Num) (*Num, bool) {
	inv, ok := numInv(b)
	if !ok {
		return nil, false
	}
	return numMul(a, inv), true
}

func numAbs(a *Num) *Num {
	if a.Sign() < 0 {
		return numNeg(a)
	}
	return a
}

// numPow raises a to an integer power.
func numPow(a *Num, e int64) (*Num, bool) {
	if e < 0 {
		inv, ok := numInv(a)
		if !ok {
			return nil, false
		}
		a, e = inv, -e
	}
	result := N(1)
	for base := a; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = numMul(result, base)
		}
		if e > 1 {
			base = numMul(base, base)
		}
	}
	return result, true
}

// numPowRat evaluates a^e exactly when e has denominator 1 or 2 and the
// result stays in the field.
func numPowRat(a *Num, e *Num) (*Num, bool) {
	r, ok := e.Rat()
	if !ok {
		return nil, false
	}
	if r.IsInt() {
		if !r.Num().IsInt64() {
			return nil, false
		}
		return numPow(a, r.Num().Int64())
	}
	if r.Denom().Cmp(bigTwo) != 0 || !r.Num().IsInt64() {
		return nil, false
	}
	root, ok := a.Sqrt()
	if !ok {
		return nil, false
	}
	return numPow(root, r.Num().Int64())
}

// conjugate flips the sign of every term whose radicand is divisible by g.
func conjugate(a *Num, g *big.Int) *Num {
	out := make([]surd, len(a.terms))
	m := new(big.Int)
	for i, t := range a.terms {
		out[i] = t
		if t.rad.Cmp(bigOne) != 0 && m.Rem(t.rad, g).Sign() == 0 {
			out[i] = surd{rad: t.rad, coeff: new(big.Rat).Neg(t.coeff)}
		}
	}
	return &Num{terms: out}
}

// radicandBasis returns pairwise coprime integers > 1 such that every
// radicand of a is a product of some of them.
func radicandBasis(a *Num) []*big.Int {
	var rads []*big.Int
	for _, t := range a.terms {
		if t.rad.Cmp(bigOne) != 0 {
			rads = append(rads, t.rad)
		}
	}
	return coprimeBasis(rads)
}

// refineRadicands rewrites every radicand over the coprime basis of all
// radicands in terms and moves square factors into the coefficient. A
// square of a prime beyond the trial division limit is found this way
// as soon as another radicand shares the cofactor.
func refineRadicands(terms []surd) []surd {
	var rads []*big.Int
	for _, t := range terms {
		if t.rad.Cmp(bigOne) != 0 {
			rads = append(rads, t.rad)
		}
	}
	if len(rads) == 0 {
		return terms
	}
	basis := coprimeBasis(rads)
	roots := make([]*big.Int, len(basis))
	for i, b := range basis {
		if r := new(big.Int).Sqrt(b); new(big.Int).Mul(r, r).Cmp(b) == 0 {
			roots[i] = r
		}
	}
	out := make([]surd, len(terms))
	q, rem := new(big.Int), new(big.Int)
	for i, t := range terms {
		if t.rad.Cmp(bigOne) == 0 {
			out[i] = t
			continue
		}
		m := new(big.Int).Set(t.rad)
		rad := big.NewInt(1)
		coeff := new(big.Rat).Set(t.coeff)
		for j, b := range basis {
			e := 0
			for {
				q.QuoRem(m, b, rem)
				if rem.Sign() != 0 {
					break
				}
				m.Set(q)
				e++
			}
			for ; e >= 2; e -= 2 {
				coeff.Mul(coeff, new(big.Rat).SetInt(b))
			}
			switch {
			case e == 0:
			case roots[j] != nil:
				coeff.Mul(coeff, new(big.Rat).SetInt(roots[j]))
			default:
				rad.Mul(rad, b)
			}
		}
		rad.Mul(rad, m)
		if rad.Cmp(bigOne) == 0 {
			rad = bigOne
		}
		out[i] = surd{rad: rad, coeff: coeff}
	}
	return out
}

// coprimeBasis splits vals into pairwise coprime factors > 1 by repeated
// gcd refinement. vals are not modified.
func coprimeBasis(vals []*big.Int) []*big.Int {
	work := make([]*big.Int, len(vals))
	for i, v := range vals {
		work[i] = new(big.Int).Set(v)
	}
	for changed := true; changed; {
		changed = false
	outer:
		for i := 0; i < len(work); i++ {
			for j := i + 1; j < len(work); j++ {
				g := new(big.Int).GCD(nil, nil, work[i], work[j])
				if g.Cmp(bigOne) == 0 {
					continue
				}
				if work[i].Cmp(work[j]) == 0 {
					work = append(work[:j], work[j+1:]...)
					changed = true
					break outer
				}
				a := new(big.Int).Quo(work[i], g)
				b := new(big.Int).Quo(work[j], g)
				next := make([]*big.Int, 0, len(work)+1)
				for k, w := range work {
					if k != i && k != j {
						next = append(next, w)
					}
				}
				for _, v := range []*big.Int{a, b, g} {
					if v.Cmp(bigOne) != 0 {
						next = append(next, v)
					}
				}
				work = next
				changed = true
				break outer
			}
		}
	}
	sort.Slice(work, func(i, j int) bool { return work[i].Cmp(work[j]) < 0 })
	return work
}

// squarefreeTrialLimit bounds trial division. A cofactor left over is
// kept whole unless it is a perfect square.
const squarefreeTrialLimit = 1 << 16

// squarefree splits n > 0 into k*k*s with s squarefree.
func squarefree(n *big.Int) (k, s *big.Int) {
	k, s = big.NewInt(1), big.NewInt(1)
	m := new(big.Int).Set(n)
	q, r, pp := new(big.Int), new(big.Int), new(big.Int)
	for p := int64(2); p <= squarefreeTrialLimit; p++ {
		bp := big.NewInt(p)
		if pp.Mul(bp, bp).Cmp(m) > 0 {
			break
		}
		e := 0
		for {
			q.QuoRem(m, bp, r)
			if r.Sign() != 0 {
				break
			}
			m.Set(q)
			e++
		}
		for ; e >= 2; e -= 2 {
			k.Mul(k, bp)
		}
		if e == 1 {
			s.Mul(s, bp)
		}
	}
	if m.Cmp(bigOne) > 0 {
		root := new(big.Int).Sqrt(m)
		if new(big.Int).Mul(root, root).Cmp(m) == 0 {
			k.Mul(k, root)
		} else {
			s.Mul(s, m)
		}
	}
	if s.Cmp(bigOne) == 0 {
		s = bigOne
	}
	return k, s
}

// LCM returns the least common multiple of the absolute values of vals,
// or 1 when vals is empty.
func LCM(vals ...*big.Int) *big.Int {
	out := big.NewInt(1)
	for _, v := range vals {
		if v.Sign() == 0 {
			continue
		}
		a := new(big.Int).Abs(v)
		g := new(big.Int).GCD(nil, nil, out, a)
		out.Mul(out, new(big.Int).Quo(a, g))
	}
	return out
}
