package mathworld_test

import (
	"fmt"

	"github.com/njchilds90/mathworld"
)

func ExampleNewLine() {
	l, err := mathworld.NewLine("y = 2x + 3")
	if err != nil {
		panic(err)
	}
	q, _ := l.Intercept()
	fmt.Println("slope     =", l.Slope())
	fmt.Println("intercept =", q)
	fmt.Println("implicit  =", l.ImplicitEquation())
	// Output:
	// slope     = 2
	// intercept = 3
	// implicit  = -2*x + y - 3 = 0
}

func ExampleLine_IntersectionWith() {
	l := mathworld.MustLine("y = 2*x + 3")
	m := mathworld.MustLine("y = -x/2 - 2")
	p, err := l.IntersectionWith(m)
	if err != nil {
		panic(err)
	}
	fmt.Println(l.IsPerpendicularTo(m), p)
	// Output: true (-2, -1)
}

func ExampleLine_FindBisectors() {
	bs, err := mathworld.Bisector13().FindBisectors(mathworld.Bisector24())
	if err != nil {
		panic(err)
	}
	for _, b := range bs {
		fmt.Println(b)
	}
	// Output:
	// x = 0
	// y = 0
}

func ExampleFindLine() {
	l, err := mathworld.FindLine(mathworld.Through(mathworld.Pt(1, 2), mathworld.Pt(3, 4)))
	if err != nil {
		panic(err)
	}
	fmt.Println(l)
	// Output: y = x + 1
}

func ExampleNewSegment() {
	s, err := mathworld.NewSegment(mathworld.Pt(0, 0), mathworld.Pt(6, 8))
	if err != nil {
		panic(err)
	}
	fmt.Println("length:", s.Length())
	fmt.Println("middle:", s.Middle())
	fmt.Println("axis:  ", s.Axis())
	fmt.Println(mathworld.Pt(3, 4).LiesOn(s), mathworld.Pt(-3, -4).LiesOn(s))
	// Output:
	// length: 10
	// middle: (3, 4)
	// axis:   y = -3/4*x + 25/4
	// true false
}

func ExampleFindPoint() {
	l := mathworld.MustLine("y = x + 1")
	pts, err := mathworld.FindPoint(l, mathworld.Pt(1, 2), "sqrt(2)")
	if err != nil {
		panic(err)
	}
	fmt.Println(pts)
	// Output: [(0, 1) (2, 3)]
}

func ExamplePoint_DistanceTo() {
	fmt.Println(mathworld.Pt(1, 1).DistanceTo(mathworld.Pt(3, 3)))
	// Output: 2*sqrt(2)
}
