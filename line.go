package mathworld

import (
	"errors"
	"fmt"
	"sync"

	"github.com/njchilds90/mathworld/algebra"
	"github.com/njchilds90/mathworld/reader"
)

// Line is a straight line in the plane. It keeps the equation it was
// built from, the explicit form (y = slope*x + intercept, or x = k for a
// vertical line) and the implicit form a*x + b*y + c = 0.
//
// Implicit coefficients are scaled to clear rational denominators. b is
// positive for non-vertical lines; vertical lines have b = 0 and a > 0
// when a is a number.
type Line struct {
	equation  *algebra.Equation
	explicit  *algebra.Equation
	slope     algebra.Expr
	intercept algebra.Expr
	a, b, c   algebra.Expr
}

// NewLine builds a line from equation text such as "2x + 3y = 6" or from
// an *algebra.Equation in x and y.
func NewLine(eq any) (*Line, error) {
	var e *algebra.Equation
	switch v := eq.(type) {
	case string:
		parsed, err := reader.ParseEquation(v)
		if err != nil {
			return nil, fmt.Errorf("mathworld: line %q: %w", v, err)
		}
		e = parsed
	case *algebra.Equation:
		if v == nil {
			return nil, fmt.Errorf("mathworld: line: %w: nil equation", ErrInvalidValueType)
		}
		e = v
	default:
		return nil, fmt.Errorf("mathworld: line: %w: %T", ErrInvalidValueType, eq)
	}
	return newLine(e)
}

// MustLine is like NewLine but panics on error.
func MustLine(eq any) *Line {
	l, err := NewLine(eq)
	if err != nil {
		panic(err)
	}
	return l
}

func newLine(eq *algebra.Equation) (*Line, error) {
	coeffs, rest, err := algebra.LinearCoeffs(eq.Residual(), varX, varY)
	if err != nil {
		return nil, fmt.Errorf("mathworld: line %s: %w: %w", eq, ErrNotLinear, err)
	}
	ca, cb := coeffs[0], coeffs[1]
	l := &Line{equation: eq}
	var implicit algebra.Expr
	switch {
	case !algebra.IsZero(cb):
		rhs := algebra.DivOf(algebra.NegOf(algebra.AddOf(algebra.MulOf(ca, symX), rest)), cb)
		l.explicit = algebra.Eq(symY, rhs)
		l.slope = algebra.Diff(rhs, varX)
		l.intercept = algebra.Sub(rhs, varX, algebra.N(0))
		implicit = algebra.AddOf(symY, algebra.NegOf(rhs))
	case !algebra.IsZero(ca):
		k := algebra.DivOf(algebra.NegOf(rest), ca)
		l.explicit = algebra.Eq(symX, k)
		l.slope = algebra.Infinity
		implicit = algebra.AddOf(symX, algebra.NegOf(k))
	default:
		return nil, fmt.Errorf("mathworld: line %s: %w", eq, ErrDegenerateLine)
	}
	lcm := algebra.DenominatorLCM(implicit)
	implicit = algebra.Expand(algebra.MulOf(algebra.NInt(lcm), implicit))
	coeffs, l.c, err = algebra.LinearCoeffs(implicit, varX, varY)
	if err != nil {
		return nil, fmt.Errorf("mathworld: line %s: %w: %w", eq, ErrNotLinear, err)
	}
	l.a, l.b = coeffs[0], coeffs[1]
	Logger().Debug("mathworld: line", "equation", eq.String(), "explicit", l.explicit.String(),
		"a", l.a.String(), "b", l.b.String(), "c", l.c.String())
	return l, nil
}

// mustLine is used where the equation is linear by construction.
func mustLine(eq *algebra.Equation) *Line {
	l, err := newLine(eq)
	if err != nil {
		panic(err)
	}
	return l
}

// Equation returns the equation the line was built from.
func (l *Line) Equation() *algebra.Equation { return l.equation }

// Explicit returns y = slope*x + intercept, or x = k for a vertical line.
func (l *Line) Explicit() *algebra.Equation { return l.explicit }

// ImplicitEquation returns a*x + b*y + c = 0.
func (l *Line) ImplicitEquation() *algebra.Equation {
	return algebra.Eq(l.value(Point{x: symX, y: symY}), algebra.N(0))
}

// Slope returns the slope, or algebra.Infinity for a vertical line.
func (l *Line) Slope() algebra.Expr { return l.slope }

// Intercept returns the y-intercept. ok is false for a vertical line.
func (l *Line) Intercept() (algebra.Expr, bool) {
	return l.intercept, l.intercept != nil
}

// Coefficients returns a, b and c of a*x + b*y + c = 0.
func (l *Line) Coefficients() (a, b, c algebra.Expr) { return l.a, l.b, l.c }

func (l *Line) String() string {
	if l == nil {
		return "<nil>"
	}
	return l.explicit.String()
}

// value evaluates a*x + b*y + c at p.
func (l *Line) value(p Point) algebra.Expr {
	return algebra.AddOf(algebra.MulOf(l.a, p.X()), algebra.MulOf(l.b, p.Y()), l.c)
}

func (l *Line) IsVertical() bool { return algebra.IsInfinite(l.slope) }

func (l *Line) IsHorizontal() bool { return !l.IsVertical() && algebra.IsZero(l.slope) }

// IsParallelTo reports equal slopes. A line is parallel to itself and two
// vertical lines are parallel.
func (l *Line) IsParallelTo(o *Line) bool {
	if l.IsVertical() || o.IsVertical() {
		return l.IsVertical() && o.IsVertical()
	}
	return algebra.Equal(l.slope, o.slope)
}

// IsPerpendicularTo reports whether the slopes multiply to -1. A
// horizontal line is perpendicular to a vertical one.
func (l *Line) IsPerpendicularTo(o *Line) bool {
	switch {
	case l.IsVertical():
		return o.IsHorizontal()
	case o.IsVertical():
		return l.IsHorizontal()
	}
	return algebra.Equal(algebra.MulOf(l.slope, o.slope), algebra.N(-1))
}

// Contains reports whether p satisfies the line equation exactly.
func (l *Line) Contains(p Point) bool { return algebra.IsZero(l.value(p)) }

func (l *Line) contains(p Point) bool { return l != nil && l.Contains(p) }

// Equal reports whether l and o describe the same line, whatever the
// scale and sign of their coefficients.
func (l *Line) Equal(o *Line) bool {
	cross := func(p, q, r, s algebra.Expr) bool {
		return algebra.IsZero(algebra.AddOf(algebra.MulOf(p, q), algebra.NegOf(algebra.MulOf(r, s))))
	}
	return cross(l.a, o.b, o.a, l.b) && cross(l.a, o.c, o.a, l.c) && cross(l.b, o.c, o.b, l.c)
}

// IntersectionWith returns the single common point of l and o.
func (l *Line) IntersectionWith(o *Line) (Point, error) {
	x, y, err := algebra.SolveLinearSystem2x2(l.a, l.b, algebra.NegOf(l.c), o.a, o.b, algebra.NegOf(o.c))
	if err != nil {
		return Point{}, fmt.Errorf("mathworld: intersection of %s and %s: %w: %w", l, o, ErrNoUniqueIntersection, err)
	}
	return newPoint(x, y), nil
}

// direction returns a non-zero vector along l.
func (l *Line) direction() (dx, dy algebra.Expr) {
	return l.b, algebra.NegOf(l.a)
}

// IsBisector reports whether l bisects an angle formed by l1 and l2: it
// passes through their intersection and a second point of l is
// equidistant from both. For parallel l1 and l2, l must be the parallel
// line midway between them.
func (l *Line) IsBisector(l1, l2 *Line) (bool, error) {
	if l1.Equal(l2) {
		return false, fmt.Errorf("mathworld: bisector of %s and itself: %w", l1, ErrNoUniqueIntersection)
	}
	var p Point
	if l1.IsParallelTo(l2) {
		if !l.IsParallelTo(l1) {
			return false, nil
		}
		p = l.pointOn()
	} else {
		i, err := l1.IntersectionWith(l2)
		if err != nil {
			return false, err
		}
		if !l.Contains(i) {
			return false, nil
		}
		dx, dy := l.direction()
		p = newPoint(algebra.AddOf(i.X(), dx), algebra.AddOf(i.Y(), dy))
	}
	// |v1|/|n1| = |v2|/|n2| compared as v1²|n2|² = v2²|n1|²
	two := algebra.N(2)
	lhs := algebra.MulOf(algebra.PowOf(l1.value(p), two), l2.normSquared())
	rhs := algebra.MulOf(algebra.PowOf(l2.value(p), two), l1.normSquared())
	return algebra.Equal(lhs, rhs), nil
}

// pointOn returns some point of l.
func (l *Line) pointOn() Point {
	if l.IsVertical() {
		return newPoint(l.explicit.RHS, algebra.N(0))
	}
	return newPoint(algebra.N(0), l.intercept)
}

// FindParallelThrough returns the line through p parallel to l.
func (l *Line) FindParallelThrough(p Point) *Line {
	if l.IsVertical() {
		return mustLine(algebra.Eq(symX, p.X()))
	}
	return lineThrough(p, l.slope)
}

// FindPerpendicularThrough returns the line through p perpendicular to l.
func (l *Line) FindPerpendicularThrough(p Point) *Line {
	switch {
	case l.IsVertical():
		return mustLine(algebra.Eq(symY, p.Y()))
	case l.IsHorizontal():
		return mustLine(algebra.Eq(symX, p.X()))
	}
	return lineThrough(p, algebra.NegOf(algebra.PowOf(l.slope, algebra.N(-1))))
}

// lineThrough returns y = slope*x + (p.y - slope*p.x).
func lineThrough(p Point, slope algebra.Expr) *Line {
	intercept := algebra.AddOf(p.Y(), algebra.NegOf(algebra.MulOf(slope, p.X())))
	return mustLine(algebra.Eq(symY, algebra.AddOf(algebra.MulOf(slope, symX), intercept)))
}

// FindBisectors returns the angle bisectors of l and o: the loci where
// the signed normalised distances to both lines are equal or opposite.
// Intersecting lines have two bisectors. Parallel lines have one, the
// line midway between them.
func (l *Line) FindBisectors(o *Line) ([]*Line, error) {
	if l.Equal(o) {
		return nil, fmt.Errorf("mathworld: bisectors of %s and itself: %w", l, ErrNoUniqueIntersection)
	}
	at := Point{x: symX, y: symY}
	e1 := algebra.DivOf(l.value(at), l.norm())
	e2 := algebra.DivOf(o.value(at), o.norm())
	var out []*Line
	for _, residual := range []algebra.Expr{
		algebra.AddOf(e1, algebra.NegOf(e2)),
		algebra.AddOf(e1, e2),
	} {
		b, err := newLine(algebra.Eq(residual, algebra.N(0)))
		if errors.Is(err, ErrDegenerateLine) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	Logger().Debug("mathworld: bisectors", "l1", l.String(), "l2", o.String(), "count", len(out))
	return out, nil
}

// norm returns sqrt(a² + b²).
func (l *Line) norm() algebra.Expr { return algebra.SqrtOf(l.normSquared()) }

func (l *Line) normSquared() algebra.Expr {
	return algebra.AddOf(algebra.PowOf(l.a, algebra.N(2)), algebra.PowOf(l.b, algebra.N(2)))
}

// IsAxisOf reports whether l is the perpendicular bisector of s.
func (l *Line) IsAxisOf(s *Segment) bool { return s != nil && l.Equal(s.axis) }

var (
	// XAxis returns the line y = 0.
	XAxis = sync.OnceValue(func() *Line { return mustLine(algebra.Eq(symY, algebra.N(0))) })
	// YAxis returns the line x = 0.
	YAxis = sync.OnceValue(func() *Line { return mustLine(algebra.Eq(symX, algebra.N(0))) })
	// Bisector13 returns y = x, the bisector of the first and third
	// quadrants.
	Bisector13 = sync.OnceValue(func() *Line { return mustLine(algebra.Eq(symY, symX)) })
	// Bisector24 returns y = -x.
	Bisector24 = sync.OnceValue(func() *Line { return mustLine(algebra.Eq(symY, algebra.NegOf(symX))) })
)
