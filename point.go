package mathworld

import (
	"fmt"

	"github.com/njchilds90/mathworld/algebra"
)

// Quadrant identifies one of the four open quadrants of the plane.
type Quadrant int

const (
	// NoQuadrant marks points on an axis and points whose coordinate signs
	// cannot be decided.
	NoQuadrant Quadrant = iota
	First
	Second
	Third
	Fourth
)

func (q Quadrant) String() string {
	switch q {
	case First:
		return "I"
	case Second:
		return "II"
	case Third:
		return "III"
	case Fourth:
		return "IV"
	}
	return "none"
}

// Element is a geometric object a point can lie on: a Point, a *Line or a
// *Segment.
type Element interface {
	fmt.Stringer
	contains(p Point) bool
}

// Point is a pair of exact coordinates. The zero value is the origin.
type Point struct {
	x, y     algebra.Expr
	quadrant Quadrant
}

// NewPoint builds a point from anything reader.ParseValue accepts: Go
// numbers, math/big values, expressions and expression text. Coordinates
// may be symbolic but may not use the line variables x and y.
func NewPoint(x, y any) (Point, error) {
	xe, err := coordinate(x)
	if err != nil {
		return Point{}, fmt.Errorf("mathworld: point x: %w", err)
	}
	ye, err := coordinate(y)
	if err != nil {
		return Point{}, fmt.Errorf("mathworld: point y: %w", err)
	}
	return newPoint(xe, ye), nil
}

// MustPoint is like NewPoint but panics on error.
func MustPoint(x, y any) Point {
	p, err := NewPoint(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// Origin returns the point (0, 0).
func Origin() Point { return Point{} }

func newPoint(x, y algebra.Expr) Point {
	return Point{x: x, y: y, quadrant: quadrantOf(x, y)}
}

func quadrantOf(x, y algebra.Expr) Quadrant {
	sx, okx := algebra.Sign(x)
	sy, oky := algebra.Sign(y)
	if !okx || !oky {
		return NoQuadrant
	}
	switch {
	case sx > 0 && sy > 0:
		return First
	case sx < 0 && sy > 0:
		return Second
	case sx < 0 && sy < 0:
		return Third
	case sx > 0 && sy < 0:
		return Fourth
	}
	return NoQuadrant
}

func (p Point) X() algebra.Expr {
	if p.x == nil {
		return algebra.N(0)
	}
	return p.x
}

func (p Point) Y() algebra.Expr {
	if p.y == nil {
		return algebra.N(0)
	}
	return p.y
}

func (p Point) Quadrant() Quadrant { return p.quadrant }

func (p Point) IsOrigin() bool { return p.IsOnXAxis() && p.IsOnYAxis() }

// IsOnXAxis reports whether y is identically zero.
func (p Point) IsOnXAxis() bool { return algebra.IsZero(p.Y()) }

// IsOnYAxis reports whether x is identically zero.
func (p Point) IsOnYAxis() bool { return algebra.IsZero(p.X()) }

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool {
	return algebra.Equal(p.X(), q.X()) && algebra.Equal(p.Y(), q.Y())
}

// DistanceTo returns the exact Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) algebra.Expr {
	dx := algebra.AddOf(q.X(), algebra.NegOf(p.X()))
	dy := algebra.AddOf(q.Y(), algebra.NegOf(p.Y()))
	return algebra.SqrtOf(algebra.AddOf(algebra.PowOf(dx, algebra.N(2)), algebra.PowOf(dy, algebra.N(2))))
}

// DistanceToLine returns |a*x + b*y + c| / sqrt(a² + b²) for the implicit
// coefficients of l.
func (p Point) DistanceToLine(l *Line) (algebra.Expr, error) {
	if l == nil {
		return nil, fmt.Errorf("mathworld: distance to line: %w: nil line", ErrInvalidValueType)
	}
	norm := algebra.AddOf(algebra.PowOf(l.a, algebra.N(2)), algebra.PowOf(l.b, algebra.N(2)))
	if algebra.IsZero(norm) {
		return nil, fmt.Errorf("mathworld: distance to %s: %w", l, ErrDegenerateLine)
	}
	return algebra.DivOf(algebra.AbsOf(l.value(p)), algebra.SqrtOf(norm)), nil
}

// LiesOn reports whether p lies on e. For a segment p must be on its line
// and inside the closed bounding box of the endpoints.
func (p Point) LiesOn(e Element) bool {
	if e == nil {
		return false
	}
	return e.contains(p)
}

func (p Point) contains(q Point) bool { return p.Equal(q) }

func (p Point) String() string {
	return "(" + p.X().String() + ", " + p.Y().String() + ")"
}

// LaTeX renders p as \left(x, y\right).
func (p Point) LaTeX() string {
	return "\\left(" + p.X().LaTeX() + ", " + p.Y().LaTeX() + "\\right)"
}
