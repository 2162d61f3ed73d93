package mathworld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/mathworld"
	"github.com/njchilds90/mathworld/algebra"
)

func TestFindPoint(t *testing.T) {
	l, err := mathworld.FindLine(mathworld.Through(mathworld.Pt(1, 2), mathworld.Pt(3, 4)))
	require.NoError(t, err)
	p := mathworld.Pt(1, 2)

	pts, err := mathworld.FindPoint(l, p, "sqrt(2)")
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.True(t, pts[0].Equal(mathworld.Pt(0, 1)), "%s", pts[0])
	assert.True(t, pts[1].Equal(mathworld.Pt(2, 3)), "%s", pts[1])
	for _, q := range pts {
		assertExpr(t, "sqrt(2)", p.DistanceTo(q))
		assert.True(t, q.LiesOn(l))
	}
}

func TestFindPoint_IrrationalResults(t *testing.T) {
	l := mathworld.MustLine("y = 2x")
	p := mathworld.Origin()
	pts, err := mathworld.FindPoint(l, p, 1)
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.True(t, pts[0].Equal(mathworld.MustPoint("-sqrt(5)/5", "-2sqrt(5)/5")), "%s", pts[0])
	for _, q := range pts {
		assertExpr(t, 1, p.DistanceTo(q))
		assert.True(t, q.LiesOn(l))
	}
}

func TestFindPoint_Symbolic(t *testing.T) {
	l := mathworld.MustLine("y = m x")
	p := mathworld.Origin()
	pts, err := mathworld.FindPoint(l, p, 1)
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.False(t, pts[0].Equal(pts[1]))
	for _, q := range pts {
		assert.True(t, q.LiesOn(l), "%s", q)
		assert.True(t, algebra.Equal(p.DistanceTo(q), algebra.N(1)), "%s", p.DistanceTo(q))
	}
}

func TestFindPoint_Vertical(t *testing.T) {
	pts, err := mathworld.FindPoint(mathworld.MustLine("x = 3"), mathworld.Pt(3, 1), 2)
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.True(t, pts[0].Equal(mathworld.Pt(3, -1)))
	assert.True(t, pts[1].Equal(mathworld.Pt(3, 3)))
}

func TestFindPoint_ZeroDistance(t *testing.T) {
	p := mathworld.Pt(1, 2)
	pts, err := mathworld.FindPoint(mathworld.MustLine("y = x + 1"), p, 0)
	require.NoError(t, err)
	require.Len(t, pts, 1)
	assert.True(t, pts[0].Equal(p))
}

func TestFindPoint_Errors(t *testing.T) {
	l := mathworld.MustLine("y = x + 1")
	tests := []struct {
		name     string
		line     *mathworld.Line
		point    mathworld.Point
		distance any
		err      error
	}{
		{"not on line", l, mathworld.Pt(0, 0), 1, mathworld.ErrPointNotOnLine},
		{"negative", l, mathworld.Pt(1, 2), -1, mathworld.ErrInvalidDistance},
		{"negative surd", l, mathworld.Pt(1, 2), "1 - sqrt(2)", mathworld.ErrInvalidDistance},
		{"infinite", l, mathworld.Pt(1, 2), algebra.Infinity, mathworld.ErrInvalidDistance},
		{"bad distance", l, mathworld.Pt(1, 2), []int{1}, mathworld.ErrInvalidValueType},
		{"nil line", nil, mathworld.Pt(1, 2), 1, mathworld.ErrInvalidValueType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mathworld.FindPoint(tt.line, tt.point, tt.distance)
			require.ErrorIs(t, err, tt.err)
		})
	}
}
