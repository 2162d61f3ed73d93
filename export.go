package mathworld

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/njchilds90/mathworld/algebra"
)

// Approximate exports. These are the only places floats appear; nothing
// in the package decides anything on them.

// Float64 approximates both coordinates. ok is false when either has free
// symbols.
func (p Point) Float64() (x, y float64, ok bool) {
	x, okx := algebra.Float64(p.X())
	y, oky := algebra.Float64(p.Y())
	return x, y, okx && oky
}

// R2 approximates p as an r2.Point.
func (p Point) R2() (r2.Point, bool) {
	x, y, ok := p.Float64()
	return r2.Point{X: x, Y: y}, ok
}

// Geom approximates p as a 2D geom.Point.
func (p Point) Geom() (*geom.Point, error) {
	x, y, ok := p.Float64()
	if !ok {
		return nil, fmt.Errorf("mathworld: %s: %w", p, ErrNotNumeric)
	}
	return geom.NewPointFlat(geom.XY, []float64{x, y}), nil
}

// Geom approximates s as a two-vertex line string.
func (s *Segment) Geom() (*geom.LineString, error) {
	x1, y1, ok1 := s.p1.Float64()
	x2, y2, ok2 := s.p2.Float64()
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("mathworld: %s: %w", s, ErrNotNumeric)
	}
	return geom.NewLineStringFlat(geom.XY, []float64{x1, y1, x2, y2}), nil
}

// Bounds returns the approximate bounding rectangle of s.
func (s *Segment) Bounds() (r2.Rect, bool) {
	a, ok1 := s.p1.R2()
	b, ok2 := s.p2.R2()
	if !ok1 || !ok2 {
		return r2.EmptyRect(), false
	}
	return r2.RectFromPoints(a, b), true
}

// Clip approximates the part of l between from and to as a line string.
// The range bounds x for a non-vertical line and y for a vertical one.
func (l *Line) Clip(from, to float64) (*geom.LineString, error) {
	if from > to {
		from, to = to, from
	}
	lo, err := coordinate(from)
	if err != nil {
		return nil, fmt.Errorf("mathworld: clip %s: %w", l, err)
	}
	hi, err := coordinate(to)
	if err != nil {
		return nil, fmt.Errorf("mathworld: clip %s: %w", l, err)
	}
	var p1, p2 Point
	if l.IsVertical() {
		p1 = newPoint(l.explicit.RHS, lo)
		p2 = newPoint(l.explicit.RHS, hi)
	} else {
		p1 = newPoint(lo, algebra.Sub(l.explicit.RHS, varX, lo))
		p2 = newPoint(hi, algebra.Sub(l.explicit.RHS, varX, hi))
	}
	x1, y1, ok1 := p1.Float64()
	x2, y2, ok2 := p2.Float64()
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("mathworld: clip %s: %w", l, ErrNotNumeric)
	}
	return geom.NewLineStringFlat(geom.XY, []float64{x1, y1, x2, y2}), nil
}

// WKT encodes an exported geometry as well-known text.
func WKT(g geom.T) (string, error) {
	return wkt.Marshal(g)
}
