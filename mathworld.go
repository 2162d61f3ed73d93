// Package mathworld is an analytic-geometry toolkit over exact symbolic
// algebra.
//
// Points, lines and segments hold exact values from the algebra package:
// rationals, square roots of rationals and symbolic expressions. Every
// decision (incidence, parallelism, signs, bounding boxes) is an exact
// test; floats appear only in the explicit approximate exports.
//
// Lines are built from equation text or from parameters:
//
//	l, err := mathworld.NewLine("y = 2x + 3")
//	m, err := mathworld.FindLine(mathworld.Through(mathworld.Pt(1, 2), mathworld.Pt(3, 4)))
//	p, err := l.IntersectionWith(m)
//
// All values are immutable and safe for concurrent use.
package mathworld

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/njchilds90/mathworld/algebra"
	"github.com/njchilds90/mathworld/reader"
)

// Scalar is a constraint for the Go numeric types Pt accepts.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Pt is shorthand for a point with numeric coordinates. It panics on NaN
// or infinite floats.
func Pt[T Scalar](x, y T) Point {
	return MustPoint(x, y)
}

// The free variables of line equations. Coordinates may not use them.
const (
	varX = "x"
	varY = "y"
)

var (
	symX = algebra.S(varX)
	symY = algebra.S(varY)
)

// coordinate converts v into an exact coordinate value.
func coordinate(v any) (algebra.Expr, error) {
	e, err := reader.ParseValue(v)
	if err != nil {
		return nil, err
	}
	if algebra.IsInfinite(e) {
		return nil, fmt.Errorf("%w: infinite coordinate", ErrInvalidValueType)
	}
	if algebra.DependsOn(e, varX, varY) {
		return nil, fmt.Errorf("%w: coordinate %s uses a line variable", ErrInvalidValueType, e)
	}
	return e, nil
}

// value converts v into an exact scalar such as a slope or a distance.
func value(v any) (algebra.Expr, error) {
	e, err := reader.ParseValue(v)
	if err != nil {
		return nil, err
	}
	if !algebra.IsInfinite(e) && algebra.DependsOn(e, varX, varY) {
		return nil, fmt.Errorf("%w: %s uses a line variable", ErrInvalidValueType, e)
	}
	return e, nil
}

// nonNegative reports whether e is provably >= 0. Symbolic values are
// given the benefit of the doubt.
func nonNegative(e algebra.Expr) bool {
	s, ok := algebra.Sign(e)
	return !ok || s >= 0
}

// between reports whether v lies in the closed interval spanned by a and
// b. Undecidable comparisons answer false.
func between(v, a, b algebra.Expr) bool {
	prod := algebra.MulOf(algebra.AddOf(v, algebra.NegOf(a)), algebra.AddOf(v, algebra.NegOf(b)))
	if algebra.IsZero(prod) {
		return true
	}
	s, ok := algebra.Sign(prod)
	return ok && s <= 0
}
