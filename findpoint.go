package mathworld

import (
	"errors"
	"fmt"

	"github.com/njchilds90/mathworld/algebra"
)

// FindPoint returns the points of l at the given distance from p, which
// must lie on l. The result holds two points ordered by x then y, or p
// alone when distance is zero.
func FindPoint(l *Line, p Point, distance any) ([]Point, error) {
	if l == nil {
		return nil, fmt.Errorf("mathworld: find point: %w: nil line", ErrInvalidValueType)
	}
	d, err := value(distance)
	if err != nil {
		return nil, fmt.Errorf("mathworld: find point: distance: %w", err)
	}
	if algebra.IsInfinite(d) || !nonNegative(d) {
		return nil, fmt.Errorf("mathworld: find point: %w: %s", ErrInvalidDistance, d)
	}
	if !l.Contains(p) {
		return nil, fmt.Errorf("mathworld: find point: %s on %s: %w", p, l, ErrPointNotOnLine)
	}
	if algebra.IsZero(d) {
		return []Point{p}, nil
	}

	dx := algebra.AddOf(symX, algebra.NegOf(p.X()))
	dy := algebra.AddOf(symY, algebra.NegOf(p.Y()))
	circle := algebra.Eq(
		algebra.AddOf(algebra.PowOf(dx, algebra.N(2)), algebra.PowOf(dy, algebra.N(2))),
		algebra.PowOf(d, algebra.N(2)))
	sols, err := algebra.SolveSystem([]*algebra.Equation{circle, l.ImplicitEquation()}, varX, varY)
	switch {
	case errors.Is(err, algebra.ErrNoSolution):
		return nil, fmt.Errorf("mathworld: find point: %w", ErrNoRealSolution)
	case err != nil:
		return nil, fmt.Errorf("mathworld: find point: %w", err)
	case len(sols) == 0:
		return nil, fmt.Errorf("mathworld: find point: %w", ErrNoRealSolution)
	}
	out := make([]Point, len(sols))
	for i, s := range sols {
		out[i] = newPoint(s[varX], s[varY])
	}
	Logger().Debug("mathworld: find point", "line", l.String(), "from", p.String(),
		"distance", d.String(), "found", len(out))
	return out, nil
}
