package reader_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/mathworld/algebra"
	"github.com/njchilds90/mathworld/reader"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2x", "2*x"},
		{"2x(y+1)", "2*x*(y+1)"},
		{"x(y)", "x*(y)"},
		{"(x+1)(x-1)", "(x+1)*(x-1)"},
		{"(x)y", "(x)*y"},
		{"(x)2", "(x)*2"},
		{"xy", "x*y"},
		{"[x]^2", "(x)^2"},
		{"{x}**2", "(x)^2"},
		{"2sin(x)", "2*sin(x)"},
		{"xsin(x)", "x*sin(x)"},
		{"sqrt(2)x", "sqrt(2)*x"},
		{"Y = 2X + 1", "y=2*x+1"},
		{"2 3", "2 3"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, reader.Normalize(tt.in))
		})
	}
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2x + 3", "2*x + 3"},
		{"(x+1)^2", "x^2 + 2*x + 1"},
		{"0.1", "1/10"},
		{".5x", "1/2*x"},
		{"sqrt(8)", "2*sqrt(2)"},
		{"-x^2", "-x^2"},
		{"2^-1", "1/2"},
		{"2^3^2", "512"},
		{"x/2 + y/3", "1/2*x + 1/3*y"},
		{"SIN(x)", "sin(x)"},
		{"log(1)", "0"},
		{"abs(-3)", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, err := reader.ParseExpression(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.String())
		})
	}
}

func TestParseExpression_Invalid(t *testing.T) {
	for _, in := range []string{"", "x +", "x $ 1", "(x", "x)", "2 3", "*x", "1/0", "0^-1", "x = 1"} {
		t.Run(in, func(t *testing.T) {
			_, err := reader.ParseExpression(in)
			require.ErrorIs(t, err, reader.ErrInvalidExpression)
		})
	}
}

func TestParseEquation(t *testing.T) {
	eq, err := reader.ParseEquation("y = 2x + 1")
	require.NoError(t, err)
	assert.Equal(t, "y", eq.LHS.String())
	assert.Equal(t, "2*x + 1", eq.RHS.String())
	assert.Equal(t, "-2*x + y - 1", eq.Residual().String())
}

func TestParseEquation_Invalid(t *testing.T) {
	for _, in := range []string{"x + 1", "x = 1 = 2", "= 1", "x = ", "x = (1"} {
		t.Run(in, func(t *testing.T) {
			_, err := reader.ParseEquation(in)
			require.ErrorIs(t, err, reader.ErrInvalidEquation)
		})
	}
	_, err := reader.ParseEquation("x = (1")
	require.ErrorIs(t, err, reader.ErrInvalidExpression)
}

func TestRead(t *testing.T) {
	p, err := reader.Read("x + 1")
	require.NoError(t, err)
	assert.False(t, p.IsEquation())
	assert.Equal(t, "x + 1", p.String())

	p, err = reader.Read("x + y = 1")
	require.NoError(t, err)
	require.True(t, p.IsEquation())
	assert.Equal(t, "x + y = 1", p.String())
	assert.Nil(t, p.Expr)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 3, "3"},
		{"negative int64", int64(-7), "-7"},
		{"uint8", uint8(7), "7"},
		{"float", 0.1, "1/10"},
		{"float32", float32(0.5), "1/2"},
		{"big int", big.NewInt(12), "12"},
		{"big rat", big.NewRat(2, 6), "1/3"},
		{"string", "x^2", "x^2"},
		{"expr", algebra.AddOf(algebra.S("x"), algebra.S("x")), "2*x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := reader.ParseValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.String())
		})
	}
}

func TestParseValue_Invalid(t *testing.T) {
	for _, in := range []any{nil, math.NaN(), math.Inf(1), struct{}{}, []int{1}, (*big.Int)(nil)} {
		_, err := reader.ParseValue(in)
		require.ErrorIs(t, err, reader.ErrInvalidValueType, "%v", in)
	}
	_, err := reader.ParseValue("x +")
	require.ErrorIs(t, err, reader.ErrInvalidExpression)
}

func TestWithLowercase(t *testing.T) {
	e, err := reader.ParseExpression("X + x")
	require.NoError(t, err)
	assert.Equal(t, "2*x", e.String())

	r := reader.New(reader.WithLowercase(false))
	e, err = r.ParseExpression("X + x")
	require.NoError(t, err)
	assert.Equal(t, "X + x", e.String())
}

func TestWithFunctions(t *testing.T) {
	e, err := reader.ParseExpression("f(x)")
	require.NoError(t, err)
	assert.Equal(t, "f*x", e.String())

	r := reader.New(reader.WithFunctions("f"))
	e, err = r.ParseExpression("f(x)")
	require.NoError(t, err)
	assert.Equal(t, "f(x)", e.String())
	assert.Equal(t, "2*f(x)", r.Normalize("2f(x)"))
}

func TestWithFunctions_FollowsLowercase(t *testing.T) {
	e, err := reader.New(reader.WithFunctions("Foo")).ParseExpression("Foo(x) + FOO(x)")
	require.NoError(t, err)
	assert.Equal(t, "2*foo(x)", e.String())

	r := reader.New(reader.WithFunctions("Foo"), reader.WithLowercase(false))
	e, err = r.ParseExpression("Foo(x)")
	require.NoError(t, err)
	assert.Equal(t, "Foo(x)", e.String())
}

func TestParseExpression_DependentRadicands(t *testing.T) {
	// 281496452005891 = 65537² * 65539
	e, err := reader.ParseExpression("sqrt(281496452005891) - 65537*sqrt(65539)")
	require.NoError(t, err)
	assert.True(t, algebra.IsZero(e), "%s", e)

	_, err = reader.ParseExpression("1/(sqrt(281496452005891) - 65537*sqrt(65539))")
	require.ErrorIs(t, err, reader.ErrInvalidExpression)
}
