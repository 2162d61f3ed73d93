package mathworld

import (
	"fmt"

	"github.com/njchilds90/mathworld/algebra"
)

// LineParam supplies one parameter to FindLine.
//
// Example:
//
//	// The line through (1, 2) with slope 3
//	l, err := mathworld.FindLine(mathworld.Through(mathworld.Pt(1, 2)), mathworld.WithSlope(3))
type LineParam func(*lineParams)

type lineParams struct {
	points    []Point
	slope     algebra.Expr
	intercept algebra.Expr
	vertical  bool
	err       error
}

// Through adds points the line passes through, in order.
func Through(points ...Point) LineParam {
	return func(p *lineParams) {
		p.points = append(p.points, points...)
	}
}

// WithSlope sets the slope. algebra.Infinity asks for a vertical line.
func WithSlope(v any) LineParam {
	return func(p *lineParams) {
		s, err := value(v)
		if err != nil {
			p.fail(fmt.Errorf("slope: %w", err))
			return
		}
		p.slope = s
	}
}

// WithIntercept sets the y-intercept, or the x-intercept of a vertical
// line.
func WithIntercept(v any) LineParam {
	return func(p *lineParams) {
		q, err := value(v)
		if err != nil {
			p.fail(fmt.Errorf("intercept: %w", err))
			return
		}
		if algebra.IsInfinite(q) {
			p.fail(fmt.Errorf("intercept: %w: infinite", ErrInvalidValueType))
			return
		}
		p.intercept = q
	}
}

// Vertical asks for a vertical line.
func Vertical() LineParam {
	return func(p *lineParams) {
		p.vertical = true
	}
}

func (p *lineParams) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// distinctPoints drops repeated points, keeping the first occurrence.
func (p *lineParams) distinctPoints() []Point {
	var out []Point
	for _, q := range p.points {
		dup := false
		for _, o := range out {
			if o.Equal(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, q)
		}
	}
	return out
}

// FindLine builds the line determined by params:
//   - two points;
//   - a point and a slope;
//   - a point and an intercept;
//   - a slope and an intercept.
//
// The line is vertical when Vertical is given, when the slope is
// algebra.Infinity or when the points share their x coordinate; it then
// needs a point or an (x-)intercept. Parameters beyond the ones needed
// must agree with the result.
func FindLine(params ...LineParam) (*Line, error) {
	var p lineParams
	for _, param := range params {
		param(&p)
	}
	if p.err != nil {
		return nil, fmt.Errorf("mathworld: find line: %w", p.err)
	}
	pts := p.distinctPoints()
	vertical := p.vertical ||
		(p.slope != nil && algebra.IsInfinite(p.slope)) ||
		(len(pts) >= 2 && algebra.Equal(pts[0].X(), pts[1].X()))

	var l *Line
	if vertical {
		var k algebra.Expr
		switch {
		case len(pts) > 0:
			k = pts[0].X()
		case p.intercept != nil:
			k = p.intercept
		default:
			return nil, fmt.Errorf("mathworld: find line: vertical line needs a point or an intercept: %w", ErrInsufficientParameters)
		}
		l = mustLine(algebra.Eq(symX, k))
	} else {
		var slope, intercept algebra.Expr
		switch {
		case len(pts) >= 2:
			p1, p2 := pts[0], pts[1]
			slope = algebra.DivOf(
				algebra.AddOf(p2.Y(), algebra.NegOf(p1.Y())),
				algebra.AddOf(p2.X(), algebra.NegOf(p1.X())))
		case len(pts) == 1 && p.slope != nil:
			slope = p.slope
		case len(pts) == 1 && p.intercept != nil:
			p1 := pts[0]
			if algebra.IsZero(p1.X()) {
				return nil, fmt.Errorf("mathworld: find line: slope from intercept through %s: %w", p1, ErrDivisionByZero)
			}
			slope = algebra.DivOf(algebra.AddOf(p1.Y(), algebra.NegOf(p.intercept)), p1.X())
			intercept = p.intercept
		case p.slope != nil && p.intercept != nil:
			slope, intercept = p.slope, p.intercept
		default:
			return nil, fmt.Errorf("mathworld: find line: %w", ErrInsufficientParameters)
		}
		if intercept == nil {
			l = lineThrough(pts[0], slope)
		} else {
			l = mustLine(algebra.Eq(symY, algebra.AddOf(algebra.MulOf(slope, symX), intercept)))
		}
	}
	if err := p.check(l); err != nil {
		return nil, fmt.Errorf("mathworld: find line %s: %w", l, err)
	}
	return l, nil
}

// check verifies that every supplied parameter agrees with l.
func (p *lineParams) check(l *Line) error {
	for _, q := range p.points {
		if !l.Contains(q) {
			return fmt.Errorf("%w: %s", ErrPointNotOnLine, q)
		}
	}
	if p.slope != nil && !algebra.Equal(p.slope, l.slope) {
		return fmt.Errorf("%w: slope %s", ErrConflictingParameters, p.slope)
	}
	if p.intercept != nil {
		want := l.intercept
		if l.IsVertical() {
			want = l.explicit.RHS
		}
		if !algebra.Equal(p.intercept, want) {
			return fmt.Errorf("%w: intercept %s", ErrConflictingParameters, p.intercept)
		}
	}
	return nil
}
