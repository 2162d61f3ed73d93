package mathworld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/mathworld"
	"github.com/njchilds90/mathworld/algebra"
)

func TestFindLine_TwoPoints(t *testing.T) {
	l, err := mathworld.FindLine(mathworld.Through(mathworld.Pt(1, 2), mathworld.Pt(3, 4)))
	require.NoError(t, err)
	assertExpr(t, 1, l.Slope())
	q, ok := l.Intercept()
	require.True(t, ok)
	assertExpr(t, 1, q)
	assert.Equal(t, "y = x + 1", l.String())
}

func TestFindLine_TwoPointsSeparateParams(t *testing.T) {
	l, err := mathworld.FindLine(mathworld.Through(mathworld.Pt(0, 1)), mathworld.Through(mathworld.Pt(2, 0)))
	require.NoError(t, err)
	assertExpr(t, "-1/2", l.Slope())
}

func TestFindLine_Vertical(t *testing.T) {
	tests := []struct {
		name   string
		params []mathworld.LineParam
	}{
		{"shared x", []mathworld.LineParam{mathworld.Through(mathworld.Pt(2, 1), mathworld.Pt(2, 5))}},
		{"requested", []mathworld.LineParam{mathworld.Vertical(), mathworld.Through(mathworld.Pt(2, 1))}},
		{"infinite slope", []mathworld.LineParam{mathworld.WithSlope(algebra.Infinity), mathworld.Through(mathworld.Pt(2, -3))}},
		{"x-intercept", []mathworld.LineParam{mathworld.Vertical(), mathworld.WithIntercept(2)}},
		{"point and x-intercept", []mathworld.LineParam{mathworld.Vertical(), mathworld.Through(mathworld.Pt(2, 9)), mathworld.WithIntercept(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := mathworld.FindLine(tt.params...)
			require.NoError(t, err)
			assert.True(t, l.IsVertical())
			assert.Equal(t, "x = 2", l.String())
		})
	}
}

func TestFindLine_PointAndSlope(t *testing.T) {
	l, err := mathworld.FindLine(mathworld.Through(mathworld.Pt(1, 2)), mathworld.WithSlope(3))
	require.NoError(t, err)
	q, _ := l.Intercept()
	assertExpr(t, -1, q)

	l, err = mathworld.FindLine(mathworld.Through(mathworld.Pt(-1, 0)), mathworld.WithSlope("1/3"))
	require.NoError(t, err)
	q, _ = l.Intercept()
	assertExpr(t, "1/3", q)
}

func TestFindLine_PointAndIntercept(t *testing.T) {
	l, err := mathworld.FindLine(mathworld.Through(mathworld.Pt(2, 7)), mathworld.WithIntercept(1))
	require.NoError(t, err)
	assertExpr(t, 3, l.Slope())
	assert.True(t, mathworld.Pt(2, 7).LiesOn(l))
}

func TestFindLine_PointAndIntercept_ZeroX(t *testing.T) {
	_, err := mathworld.FindLine(mathworld.Through(mathworld.Pt(0, 7)), mathworld.WithIntercept(1))
	require.ErrorIs(t, err, mathworld.ErrDivisionByZero)
	assert.Equal(t, "mathworld: find line: slope from intercept through (0, 7): division by zero", err.Error())
}

func TestFindLine_SlopeAndIntercept(t *testing.T) {
	l, err := mathworld.FindLine(mathworld.WithSlope(-2), mathworld.WithIntercept(0.5))
	require.NoError(t, err)
	assert.Equal(t, "y = -2*x + 1/2", l.String())
	a, b, c := l.Coefficients()
	assertExpr(t, 4, a)
	assertExpr(t, 2, b)
	assertExpr(t, -1, c)
}

func TestFindLine_Horizontal(t *testing.T) {
	l, err := mathworld.FindLine(mathworld.Through(mathworld.Pt(-4, 3), mathworld.Pt(9, 3)))
	require.NoError(t, err)
	assert.True(t, l.IsHorizontal())
	assert.True(t, l.Equal(mathworld.MustLine("y = 3")))
}

func TestFindLine_Insufficient(t *testing.T) {
	tests := []struct {
		name   string
		params []mathworld.LineParam
	}{
		{"nothing", nil},
		{"one point", []mathworld.LineParam{mathworld.Through(mathworld.Pt(1, 1))}},
		{"repeated point", []mathworld.LineParam{mathworld.Through(mathworld.Pt(1, 1), mathworld.Pt(1, 1))}},
		{"slope only", []mathworld.LineParam{mathworld.WithSlope(2)}},
		{"intercept only", []mathworld.LineParam{mathworld.WithIntercept(2)}},
		{"vertical only", []mathworld.LineParam{mathworld.Vertical()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mathworld.FindLine(tt.params...)
			require.ErrorIs(t, err, mathworld.ErrInsufficientParameters)
		})
	}
}

func TestFindLine_Conflicts(t *testing.T) {
	_, err := mathworld.FindLine(mathworld.Through(mathworld.Pt(0, 0), mathworld.Pt(1, 1), mathworld.Pt(2, 3)))
	require.ErrorIs(t, err, mathworld.ErrPointNotOnLine)

	_, err = mathworld.FindLine(mathworld.Vertical(), mathworld.Through(mathworld.Pt(0, 0), mathworld.Pt(1, 1)))
	require.ErrorIs(t, err, mathworld.ErrPointNotOnLine)

	_, err = mathworld.FindLine(mathworld.Through(mathworld.Pt(0, 0), mathworld.Pt(1, 1)), mathworld.WithSlope(2))
	require.ErrorIs(t, err, mathworld.ErrConflictingParameters)

	_, err = mathworld.FindLine(mathworld.Through(mathworld.Pt(1, 1)), mathworld.WithSlope(2), mathworld.WithIntercept(5))
	require.ErrorIs(t, err, mathworld.ErrConflictingParameters)

	_, err = mathworld.FindLine(mathworld.Vertical(), mathworld.WithSlope(1), mathworld.Through(mathworld.Pt(1, 1)))
	require.ErrorIs(t, err, mathworld.ErrConflictingParameters)

	l, err := mathworld.FindLine(mathworld.Through(mathworld.Pt(0, 1), mathworld.Pt(1, 3), mathworld.Pt(2, 5)), mathworld.WithSlope(2), mathworld.WithIntercept(1))
	require.NoError(t, err)
	assert.Equal(t, "y = 2*x + 1", l.String())
}

func TestFindLine_BadValues(t *testing.T) {
	_, err := mathworld.FindLine(mathworld.WithSlope("2 +"), mathworld.WithIntercept(1))
	require.ErrorIs(t, err, mathworld.ErrInvalidExpression)

	_, err = mathworld.FindLine(mathworld.WithSlope(1), mathworld.WithIntercept("x"))
	require.ErrorIs(t, err, mathworld.ErrInvalidValueType)

	_, err = mathworld.FindLine(mathworld.WithSlope(1), mathworld.WithIntercept(algebra.Infinity))
	require.ErrorIs(t, err, mathworld.ErrInvalidValueType)
}

func TestFindLine_Symbolic(t *testing.T) {
	l, err := mathworld.FindLine(mathworld.Through(mathworld.MustPoint(0, "b")), mathworld.WithSlope("k"))
	require.NoError(t, err)
	assert.Equal(t, "y = k*x + b", l.String())
}
