package mathworld

import (
	"fmt"

	"github.com/njchilds90/mathworld/algebra"
)

// Segment is the closed segment between two distinct points. Length,
// midpoint, supporting line and axis are computed once by NewSegment.
type Segment struct {
	p1, p2 Point
	length algebra.Expr
	middle Point
	line   *Line
	axis   *Line
}

// NewSegment returns the segment from p1 to p2.
func NewSegment(p1, p2 Point) (*Segment, error) {
	if p1.Equal(p2) {
		return nil, fmt.Errorf("mathworld: segment %s %s: %w", p1, p2, ErrDegenerateSegment)
	}
	l, err := FindLine(Through(p1, p2))
	if err != nil {
		return nil, fmt.Errorf("mathworld: segment %s %s: %w", p1, p2, err)
	}
	half := algebra.F(1, 2)
	mid := newPoint(
		algebra.MulOf(half, algebra.AddOf(p1.X(), p2.X())),
		algebra.MulOf(half, algebra.AddOf(p1.Y(), p2.Y())))
	return &Segment{
		p1:     p1,
		p2:     p2,
		length: p1.DistanceTo(p2),
		middle: mid,
		line:   l,
		axis:   l.FindPerpendicularThrough(mid),
	}, nil
}

// MustSegment is like NewSegment but panics on error.
func MustSegment(p1, p2 Point) *Segment {
	s, err := NewSegment(p1, p2)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Segment) P1() Point            { return s.p1 }
func (s *Segment) P2() Point            { return s.p2 }
func (s *Segment) Length() algebra.Expr { return s.length }
func (s *Segment) Middle() Point        { return s.middle }
func (s *Segment) Line() *Line          { return s.line }

// Axis returns the perpendicular bisector of s.
func (s *Segment) Axis() *Line { return s.axis }

// Contains reports whether p lies on the line of s and inside the closed
// bounding box of its endpoints.
func (s *Segment) Contains(p Point) bool {
	return s.line.Contains(p) &&
		between(p.X(), s.p1.X(), s.p2.X()) &&
		between(p.Y(), s.p1.Y(), s.p2.Y())
}

func (s *Segment) contains(p Point) bool { return s != nil && s.Contains(p) }

func (s *Segment) String() string {
	if s == nil {
		return "<nil>"
	}
	return "[" + s.p1.String() + ", " + s.p2.String() + "]"
}
