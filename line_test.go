package mathworld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/mathworld"
	"github.com/njchilds90/mathworld/algebra"
)

func TestNewLine_SlopeIntercept(t *testing.T) {
	l, err := mathworld.NewLine("y = 2*x + 3")
	require.NoError(t, err)
	assertExpr(t, 2, l.Slope())
	q, ok := l.Intercept()
	require.True(t, ok)
	assertExpr(t, 3, q)
	assert.False(t, l.IsHorizontal())
	assert.False(t, l.IsVertical())
	assert.Equal(t, "y = 2*x + 3", l.String())
	assert.Equal(t, "y = 2*x + 3", l.Equation().String())
}

func TestNewLine_ImplicitCoefficients(t *testing.T) {
	tests := []struct {
		eq      string
		a, b, c any
	}{
		{"y = 2x + 3", -2, 1, -3},
		{"y = -x/2 - 2", 1, 2, 4},
		{"2x + 3y = 6", 2, 3, -6},
		{"-2x - 3y + 6 = 0", 2, 3, -6},
		{"y = x/3 + 1/2", -2, 6, -3},
		{"x = 5", 1, 0, -5},
		{"2x = 1", 2, 0, -1},
		{"-4x + 2 = 0", 2, 0, -1},
		{"y = 0", 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.eq, func(t *testing.T) {
			l, err := mathworld.NewLine(tt.eq)
			require.NoError(t, err)
			a, b, c := l.Coefficients()
			assertExpr(t, tt.a, a)
			assertExpr(t, tt.b, b)
			assertExpr(t, tt.c, c)
		})
	}
}

func TestNewLine_Vertical(t *testing.T) {
	l, err := mathworld.NewLine("2x - 6 = 0")
	require.NoError(t, err)
	assert.True(t, l.IsVertical())
	assert.False(t, l.IsHorizontal())
	assert.True(t, algebra.IsInfinite(l.Slope()))
	_, ok := l.Intercept()
	assert.False(t, ok)
	assert.Equal(t, "x = 3", l.String())
	assert.Equal(t, "x - 3 = 0", l.ImplicitEquation().String())
}

func TestNewLine_FromEquation(t *testing.T) {
	x, y := algebra.S("x"), algebra.S("y")
	l, err := mathworld.NewLine(algebra.Eq(algebra.AddOf(x, y), algebra.N(1)))
	require.NoError(t, err)
	assertExpr(t, -1, l.Slope())
	assert.Equal(t, "y = -x + 1", l.String())
}

func TestNewLine_Symbolic(t *testing.T) {
	l, err := mathworld.NewLine("y = m x + q")
	require.NoError(t, err)
	assertExpr(t, "m", l.Slope())
	q, _ := l.Intercept()
	assertExpr(t, "q", q)
	assert.True(t, mathworld.MustPoint(0, "q").LiesOn(l))
	assert.True(t, mathworld.MustPoint(1, "m + q").LiesOn(l))
}

func TestNewLine_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   any
		err  error
	}{
		{"not an equation", "y + 2x", mathworld.ErrInvalidEquation},
		{"bad expression", "y = 2x +", mathworld.ErrInvalidExpression},
		{"degenerate", "x + y = x + y + 1", mathworld.ErrDegenerateLine},
		{"identity", "x = x", mathworld.ErrDegenerateLine},
		{"quadratic", "y = x^2", mathworld.ErrNotLinear},
		{"product", "x*y = 1", mathworld.ErrNotLinear},
		{"wrong type", 42, mathworld.ErrInvalidValueType},
		{"nil equation", (*algebra.Equation)(nil), mathworld.ErrInvalidValueType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mathworld.NewLine(tt.in)
			require.ErrorIs(t, err, tt.err)
		})
	}
	assert.Panics(t, func() { mathworld.MustLine("y = x^2") })
}

func TestLine_RoundTrip(t *testing.T) {
	for _, eq := range []string{"y = 2x + 3", "y = -x/2 - 2", "3x - 7y = 11", "x = -4", "y = 5", "y = sqrt(2)x + 1"} {
		t.Run(eq, func(t *testing.T) {
			l := mathworld.MustLine(eq)
			again, err := mathworld.NewLine(l.ImplicitEquation())
			require.NoError(t, err)
			assert.True(t, l.Equal(again))
			if l.IsVertical() {
				assert.True(t, again.IsVertical())
				return
			}
			assert.True(t, algebra.Equal(l.Slope(), again.Slope()))
			q1, _ := l.Intercept()
			q2, _ := again.Intercept()
			assert.True(t, algebra.Equal(q1, q2))
		})
	}
}

func TestLine_Equal(t *testing.T) {
	assert.True(t, mathworld.MustLine("y = 2x + 3").Equal(mathworld.MustLine("4x - 2y + 6 = 0")))
	assert.True(t, mathworld.MustLine("x = 2").Equal(mathworld.MustLine("-3x + 6 = 0")))
	assert.False(t, mathworld.MustLine("y = 2x + 3").Equal(mathworld.MustLine("y = 2x")))
	assert.False(t, mathworld.MustLine("x = 2").Equal(mathworld.MustLine("y = 2")))
}

func TestLine_Predicates(t *testing.T) {
	l := mathworld.MustLine("y = 2*x + 3")
	m := mathworld.MustLine("y = -x/2 - 2")
	assert.True(t, l.IsPerpendicularTo(m))
	assert.True(t, m.IsPerpendicularTo(l))
	assert.False(t, l.IsParallelTo(m))
	assert.True(t, l.IsParallelTo(l))
	assert.True(t, l.IsParallelTo(mathworld.MustLine("y = 2x - 100")))

	h := mathworld.MustLine("y = 4")
	v := mathworld.MustLine("x = -1")
	assert.True(t, h.IsHorizontal())
	assert.True(t, h.IsPerpendicularTo(v))
	assert.True(t, v.IsPerpendicularTo(h))
	assert.False(t, v.IsPerpendicularTo(v))
	assert.False(t, v.IsPerpendicularTo(l))
	assert.True(t, v.IsParallelTo(mathworld.MustLine("x = 7")))
	assert.False(t, v.IsParallelTo(h))
}

func TestLine_IntersectionWith(t *testing.T) {
	l := mathworld.MustLine("y = 2*x + 3")
	m := mathworld.MustLine("y = -x/2 - 2")
	p, err := l.IntersectionWith(m)
	require.NoError(t, err)
	assert.True(t, p.Equal(mathworld.Pt(-2, -1)), "%s", p)

	p, err = mathworld.MustLine("x = 3").IntersectionWith(l)
	require.NoError(t, err)
	assert.True(t, p.Equal(mathworld.Pt(3, 9)), "%s", p)
}

func TestLine_IntersectionWith_Parallel(t *testing.T) {
	l := mathworld.MustLine("y = 2x + 3")
	_, err := l.IntersectionWith(mathworld.MustLine("y = 2x - 1"))
	require.ErrorIs(t, err, mathworld.ErrNoUniqueIntersection)
	require.ErrorIs(t, err, algebra.ErrSingular)

	_, err = l.IntersectionWith(mathworld.MustLine("2y = 4x + 6"))
	require.ErrorIs(t, err, mathworld.ErrNoUniqueIntersection)
}

func TestLine_FindParallelThrough(t *testing.T) {
	l := mathworld.MustLine("y = 2x + 3")
	p := mathworld.Pt(1, 1)
	par := l.FindParallelThrough(p)
	assert.True(t, par.IsParallelTo(l))
	assert.True(t, p.LiesOn(par))
	assert.Equal(t, "y = 2*x - 1", par.String())

	v := mathworld.MustLine("x = 0").FindParallelThrough(p)
	assert.True(t, v.IsVertical())
	assert.Equal(t, "x = 1", v.String())
}

func TestLine_FindPerpendicularThrough(t *testing.T) {
	lines := []*mathworld.Line{
		mathworld.MustLine("y = 2x + 3"),
		mathworld.MustLine("y = -x/3"),
		mathworld.MustLine("y = 7"),
		mathworld.MustLine("x = -2"),
	}
	pts := []mathworld.Point{mathworld.Pt(5, -1), mathworld.Pt(0, 0), mathworld.MustPoint("1/2", "sqrt(3)")}
	for _, l := range lines {
		for _, p := range pts {
			perp := l.FindPerpendicularThrough(p)
			assert.True(t, perp.IsPerpendicularTo(l), "%s through %s", l, p)
			assert.True(t, p.LiesOn(perp), "%s through %s", l, p)
		}
	}
	assert.True(t, mathworld.MustLine("y = 7").FindPerpendicularThrough(mathworld.Pt(2, 0)).IsVertical())
	assert.True(t, mathworld.MustLine("x = 1").FindPerpendicularThrough(mathworld.Pt(2, 5)).IsHorizontal())
}

func TestLine_FindBisectors_Diagonals(t *testing.T) {
	bs, err := mathworld.Bisector13().FindBisectors(mathworld.Bisector24())
	require.NoError(t, err)
	require.Len(t, bs, 2)
	assert.True(t, bs[0].Equal(mathworld.YAxis()), "%s", bs[0])
	assert.True(t, bs[1].Equal(mathworld.XAxis()), "%s", bs[1])
}

func TestLine_FindBisectors_Axes(t *testing.T) {
	bs, err := mathworld.XAxis().FindBisectors(mathworld.YAxis())
	require.NoError(t, err)
	require.Len(t, bs, 2)
	var found13, found24 bool
	for _, b := range bs {
		found13 = found13 || b.Equal(mathworld.Bisector13())
		found24 = found24 || b.Equal(mathworld.Bisector24())
	}
	assert.True(t, found13)
	assert.True(t, found24)
}

func TestLine_FindBisectors_AreBisectors(t *testing.T) {
	l := mathworld.MustLine("y = 2x + 3")
	m := mathworld.MustLine("x + 3y = 1")
	bs, err := l.FindBisectors(m)
	require.NoError(t, err)
	require.Len(t, bs, 2)
	assert.True(t, bs[0].IsPerpendicularTo(bs[1]))
	for _, b := range bs {
		ok, err := b.IsBisector(l, m)
		require.NoError(t, err)
		assert.True(t, ok, "%s", b)
	}
}

func TestLine_FindBisectors_Symbolic(t *testing.T) {
	l := mathworld.MustLine("y = m x")
	bs, err := l.FindBisectors(mathworld.XAxis())
	require.NoError(t, err)
	require.Len(t, bs, 2)
	for _, b := range bs {
		ok, err := b.IsBisector(l, mathworld.XAxis())
		require.NoError(t, err)
		assert.True(t, ok, "%s", b)
		assert.True(t, b.Contains(mathworld.Origin()))
	}
	ok, err := mathworld.MustLine("y = m x / 2").IsBisector(l, mathworld.XAxis())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLine_FindBisectors_Parallel(t *testing.T) {
	bs, err := mathworld.MustLine("y = x").FindBisectors(mathworld.MustLine("y = x + 2"))
	require.NoError(t, err)
	require.Len(t, bs, 1)
	assert.Equal(t, "y = x + 1", bs[0].String())

	ok, err := bs[0].IsBisector(mathworld.MustLine("y = x"), mathworld.MustLine("y = x + 2"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLine_FindBisectors_Coincident(t *testing.T) {
	_, err := mathworld.MustLine("y = x").FindBisectors(mathworld.MustLine("2y = 2x"))
	require.ErrorIs(t, err, mathworld.ErrNoUniqueIntersection)
}

func TestLine_IsBisector(t *testing.T) {
	ok, err := mathworld.Bisector13().IsBisector(mathworld.XAxis(), mathworld.YAxis())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = mathworld.Bisector24().IsBisector(mathworld.XAxis(), mathworld.YAxis())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = mathworld.MustLine("y = 2x").IsBisector(mathworld.XAxis(), mathworld.YAxis())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = mathworld.MustLine("y = x + 1").IsBisector(mathworld.XAxis(), mathworld.YAxis())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = mathworld.Bisector13().IsBisector(mathworld.XAxis(), mathworld.XAxis())
	require.ErrorIs(t, err, mathworld.ErrNoUniqueIntersection)
}

func TestAxisConstants(t *testing.T) {
	assert.Same(t, mathworld.XAxis(), mathworld.XAxis())
	assert.True(t, mathworld.XAxis().IsHorizontal())
	assert.True(t, mathworld.YAxis().IsVertical())
	assertExpr(t, 1, mathworld.Bisector13().Slope())
	assertExpr(t, -1, mathworld.Bisector24().Slope())
	assert.True(t, mathworld.Bisector13().IsPerpendicularTo(mathworld.Bisector24()))
}
