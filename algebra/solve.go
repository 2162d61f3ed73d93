package algebra

import (
	"errors"
	"fmt"
	"sort"
)

// ============================================================
// Solvers
// ============================================================

var (
	ErrNoSolution        = errors.New("algebra: no solution")
	ErrInfiniteSolutions = errors.New("algebra: infinitely many solutions")
	ErrSingular          = errors.New("algebra: system is singular")
	ErrUnsupported       = errors.New("algebra: unsupported equation")
)

// SolveLinear solves a*x + b = 0.
func SolveLinear(a, b Expr) (Expr, error) {
	if IsZero(a) {
		if IsZero(b) {
			return nil, ErrInfiniteSolutions
		}
		return nil, ErrNoSolution
	}
	an, aok := a.Eval()
	bn, bok := b.Eval()
	if aok && bok {
		if q, ok := numDiv(numNeg(bn), an); ok {
			return q, nil
		}
	}
	return DivOf(NegOf(b), a), nil
}

// SolveQuadratic returns the real roots of a*x^2 + b*x + c = 0 in
// ascending order. Roots of symbolic coefficients cannot be filtered and
// are returned in closed form.
func SolveQuadratic(a, b, c Expr) ([]Expr, error) {
	if IsZero(a) {
		x, err := SolveLinear(b, c)
		if err != nil {
			return nil, err
		}
		return []Expr{x}, nil
	}
	disc := AddOf(PowOf(b, N(2)), MulOf(N(-4), a, c))
	twoA := MulOf(N(2), a)
	negB := NegOf(b)
	if IsZero(disc) {
		return []Expr{DivOf(negB, twoA)}, nil
	}
	if sign, ok := Sign(disc); ok && sign < 0 {
		return []Expr{}, nil
	}
	sq := SqrtOf(disc)
	roots := []Expr{
		DivOf(AddOf(negB, NegOf(sq)), twoA),
		DivOf(AddOf(negB, sq), twoA),
	}
	if cmp, ok := Cmp(roots[0], roots[1]); ok && cmp > 0 {
		roots[0], roots[1] = roots[1], roots[0]
	}
	return roots, nil
}

// SolveLinearSystem2x2 solves a1*x + b1*y = c1, a2*x + b2*y = c2.
func SolveLinearSystem2x2(a1, b1, c1, a2, b2, c2 Expr) (xSol, ySol Expr, err error) {
	det := AddOf(MulOf(a1, b2), MulOf(N(-1), MulOf(a2, b1)))
	if IsZero(det) {
		return nil, nil, ErrSingular
	}
	dx := AddOf(MulOf(c1, b2), MulOf(N(-1), MulOf(c2, b1)))
	dy := AddOf(MulOf(a1, c2), MulOf(N(-1), MulOf(a2, c1)))
	return DivOf(dx, det), DivOf(dy, det), nil
}

// Solve returns the real solutions of a linear or quadratic equation in
// varName.
func Solve(eq *Equation, varName string) ([]Expr, error) {
	residual := eq.Residual()
	pc, err := PolyCoeffs(residual, varName)
	if err != nil {
		return nil, err
	}
	switch d := pc.Degree(); {
	case d <= 0:
		if IsZero(residual) {
			return nil, ErrInfiniteSolutions
		}
		return nil, ErrNoSolution
	case d == 1:
		x, err := SolveLinear(pc.Coeff(1), pc.Coeff(0))
		if err != nil {
			return nil, err
		}
		return []Expr{x}, nil
	case d == 2:
		return SolveQuadratic(pc.Coeff(2), pc.Coeff(1), pc.Coeff(0))
	default:
		return nil, fmt.Errorf("%w: degree %d in %s", ErrUnsupported, d, varName)
	}
}

// Solution assigns a value to each unknown.
type Solution map[string]Expr

// SolveSystem solves two equations in x and y where at least one is
// linear and the other is linear or quadratic. Only real solutions are
// returned; duplicates are dropped.
func SolveSystem(eqs []*Equation, x, y string) ([]Solution, error) {
	if len(eqs) != 2 {
		return nil, fmt.Errorf("%w: need 2 equations, got %d", ErrUnsupported, len(eqs))
	}
	r1, r2 := eqs[0].Residual(), eqs[1].Residual()
	c1, rest1, err1 := LinearCoeffs(r1, x, y)
	c2, rest2, err2 := LinearCoeffs(r2, x, y)
	if err1 == nil && err2 == nil {
		return solveLinearPair(c1, rest1, c2, rest2, x, y)
	}
	linC, linRest, other := c1, rest1, r2
	if err1 != nil {
		if err2 != nil {
			return nil, fmt.Errorf("%w: no linear equation in system", ErrUnsupported)
		}
		linC, linRest, other = c2, rest2, r1
	}

	// Eliminate one unknown through the linear equation.
	solveFor, free := y, x
	coeff, freeCoeff := linC[1], linC[0]
	if IsZero(coeff) {
		solveFor, free = x, y
		coeff, freeCoeff = linC[0], linC[1]
	}
	if IsZero(coeff) {
		if IsZero(linRest) {
			return nil, ErrInfiniteSolutions
		}
		return nil, ErrNoSolution
	}
	// solveFor = -(freeCoeff*free + rest)/coeff
	elim := DivOf(NegOf(AddOf(MulOf(freeCoeff, S(free)), linRest)), coeff)
	reduced := Sub(other, solveFor, elim)
	roots, err := Solve(Eq(reduced, N(0)), free)
	if err != nil {
		return nil, err
	}
	var out []Solution
	for _, r := range roots {
		out = appendSolution(out, Solution{free: r, solveFor: Sub(elim, free, r)})
	}
	sortSolutions(out, x, y)
	return out, nil
}

func solveLinearPair(c1 []Expr, rest1 Expr, c2 []Expr, rest2 Expr, x, y string) ([]Solution, error) {
	xs, ys, err := SolveLinearSystem2x2(c1[0], c1[1], NegOf(rest1), c2[0], c2[1], NegOf(rest2))
	if err == nil {
		return []Solution{{x: xs, y: ys}}, nil
	}
	// Singular: the equations are proportional or contradictory.
	for _, eq := range [][]Expr{{c1[0], c1[1], rest1}, {c2[0], c2[1], rest2}} {
		if IsZero(eq[0]) && IsZero(eq[1]) && !IsZero(eq[2]) {
			return nil, ErrNoSolution
		}
	}
	cross := []Expr{
		AddOf(MulOf(c1[0], rest2), NegOf(MulOf(c2[0], rest1))),
		AddOf(MulOf(c1[1], rest2), NegOf(MulOf(c2[1], rest1))),
	}
	if IsZero(cross[0]) && IsZero(cross[1]) {
		return nil, ErrInfiniteSolutions
	}
	return nil, ErrNoSolution
}

func appendSolution(sols []Solution, s Solution) []Solution {
	for _, o := range sols {
		same := true
		for k, v := range s {
			if !Equal(o[k], v) {
				same = false
				break
			}
		}
		if same {
			return sols
		}
	}
	return append(sols, s)
}

// sortSolutions orders solutions by x then y when comparable.
func sortSolutions(sols []Solution, x, y string) {
	sort.SliceStable(sols, func(i, j int) bool {
		for _, k := range []string{x, y} {
			if c, ok := Cmp(sols[i][k], sols[j][k]); ok && c != 0 {
				return c < 0
			}
		}
		return false
	})
}
