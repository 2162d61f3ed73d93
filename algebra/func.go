package algebra

import "math"

// ============================================================
// Func: named function applications
// ============================================================

type Func struct {
	name string
	arg  Expr
}

func funcOf(name string, arg Expr) *Func { return &Func{name: name, arg: arg} }

// FuncOf applies the named function to arg. Unknown names are kept as
// opaque applications.
func FuncOf(name string, arg Expr) Expr { return funcOf(name, arg).Simplify() }

func SinOf(arg Expr) Expr  { return funcOf("sin", arg).Simplify() }
func CosOf(arg Expr) Expr  { return funcOf("cos", arg).Simplify() }
func TanOf(arg Expr) Expr  { return funcOf("tan", arg).Simplify() }
func ExpOf(arg Expr) Expr  { return funcOf("exp", arg).Simplify() }
func LnOf(arg Expr) Expr   { return funcOf("ln", arg).Simplify() }
func SqrtOf(arg Expr) Expr { return PowOf(arg, F(1, 2)) }
func AbsOf(arg Expr) Expr  { return funcOf("abs", arg).Simplify() }
func AsinOf(arg Expr) Expr { return funcOf("asin", arg).Simplify() }
func AcosOf(arg Expr) Expr { return funcOf("acos", arg).Simplify() }
func AtanOf(arg Expr) Expr { return funcOf("atan", arg).Simplify() }
func SinhOf(arg Expr) Expr { return funcOf("sinh", arg).Simplify() }
func CoshOf(arg Expr) Expr { return funcOf("cosh", arg).Simplify() }
func TanhOf(arg Expr) Expr { return funcOf("tanh", arg).Simplify() }
func SignOf(arg Expr) Expr { return funcOf("sign", arg).Simplify() }

// Simplify folds exact identities only. Transcendental values of
// constants are left symbolic.
func (f *Func) Simplify() Expr {
	arg := Canonical(f.arg)
	switch f.name {
	case "sqrt":
		return PowOf(arg, F(1, 2))
	case "abs":
		if n, ok := arg.(*Num); ok {
			return numAbs(n)
		}
		if leadingNegative(arg) {
			return &Func{name: "abs", arg: NegOf(arg)}
		}
	case "sign":
		if n, ok := arg.(*Num); ok {
			return N(int64(n.Sign()))
		}
	case "sin", "tan", "asin", "atan", "sinh", "tanh":
		if isNumEqual(arg, 0) {
			return N(0)
		}
	case "cos", "cosh":
		if isNumEqual(arg, 0) {
			return N(1)
		}
	case "acos":
		if isNumEqual(arg, 1) {
			return N(0)
		}
	case "ln", "log":
		if isNumEqual(arg, 1) {
			return N(0)
		}
		if inner, ok := arg.(*Func); ok && inner.name == "exp" {
			return inner.arg
		}
	case "exp":
		if isNumEqual(arg, 0) {
			return N(1)
		}
		if inner, ok := arg.(*Func); ok && (inner.name == "ln" || inner.name == "log") {
			return inner.arg
		}
	}
	return &Func{name: f.name, arg: arg}
}

// leadingNegative reports whether the first term of a canonical
// expression carries a negative coefficient.
func leadingNegative(e Expr) bool {
	switch v := e.(type) {
	case *Num:
		return v.IsNegative()
	case *Add:
		return len(v.terms) > 0 && leadingNegative(v.terms[0])
	case *Mul:
		if len(v.factors) > 0 {
			if n, ok := v.factors[0].(*Num); ok {
				return n.IsNegative()
			}
		}
	}
	return false
}

func (f *Func) String() string { return f.name + "(" + f.arg.String() + ")" }

func (f *Func) LaTeX() string {
	switch f.name {
	case "sin", "cos", "tan", "exp", "ln", "log", "sinh", "cosh", "tanh":
		return "\\" + f.name + "\\left(" + f.arg.LaTeX() + "\\right)"
	case "asin":
		return "\\arcsin\\left(" + f.arg.LaTeX() + "\\right)"
	case "acos":
		return "\\arccos\\left(" + f.arg.LaTeX() + "\\right)"
	case "atan":
		return "\\arctan\\left(" + f.arg.LaTeX() + "\\right)"
	case "abs":
		return "\\left|" + f.arg.LaTeX() + "\\right|"
	case "sign":
		return "\\operatorname{sign}\\left(" + f.arg.LaTeX() + "\\right)"
	}
	return "\\operatorname{" + f.name + "}\\left(" + f.arg.LaTeX() + "\\right)"
}

func (f *Func) Sub(varName string, value Expr) Expr {
	return funcOf(f.name, f.arg.Sub(varName, value)).Simplify()
}

func (f *Func) Diff(varName string) Expr {
	du := f.arg.Diff(varName)
	var outer Expr
	switch f.name {
	case "sin":
		outer = CosOf(f.arg)
	case "cos":
		outer = MulOf(N(-1), SinOf(f.arg))
	case "tan":
		outer = AddOf(N(1), PowOf(TanOf(f.arg), N(2)))
	case "exp":
		outer = ExpOf(f.arg)
	case "ln", "log":
		outer = PowOf(f.arg, N(-1))
	case "asin":
		outer = PowOf(AddOf(N(1), MulOf(N(-1), PowOf(f.arg, N(2)))), F(-1, 2))
	case "acos":
		outer = MulOf(N(-1), PowOf(AddOf(N(1), MulOf(N(-1), PowOf(f.arg, N(2)))), F(-1, 2)))
	case "atan":
		outer = PowOf(AddOf(N(1), PowOf(f.arg, N(2))), N(-1))
	case "sinh":
		outer = CoshOf(f.arg)
	case "cosh":
		outer = SinhOf(f.arg)
	case "tanh":
		outer = AddOf(N(1), MulOf(N(-1), PowOf(TanhOf(f.arg), N(2))))
	case "abs":
		outer = SignOf(f.arg)
	case "sign":
		return N(0)
	default:
		return MulOf(funcOf("D["+f.name+"]", f.arg), du)
	}
	return MulOf(outer, du)
}

// Eval succeeds only where the result is exact.
func (f *Func) Eval() (*Num, bool) {
	n, ok := f.arg.Eval()
	if !ok {
		return nil, false
	}
	switch f.name {
	case "abs":
		return numAbs(n), true
	case "sign":
		return N(int64(n.Sign())), true
	case "sqrt":
		return numPowRat(n, F(1, 2))
	}
	if e, ok := f.Simplify().(*Num); ok {
		return e, true
	}
	return nil, false
}

func (f *Func) Equal(other Expr) bool {
	o, ok := other.(*Func)
	return ok && f.name == o.name && f.arg.Equal(o.arg)
}

func (f *Func) exprType() string { return "func" }
func (f *Func) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "func", "name": f.name, "arg": f.arg.toJSON()}
}
func (f *Func) FuncName() string { return f.name }
func (f *Func) Arg() Expr        { return f.arg }

func isNumEqual(e Expr, v int64) bool {
	n, ok := e.(*Num)
	return ok && n.Equal(N(v))
}

// ============================================================
// Approximation
// ============================================================

// Float64 approximates a constant expression, including transcendental
// function applications. ok is false when e has free symbols or the
// value is undefined.
func Float64(e Expr) (float64, bool) {
	if n, ok := e.Eval(); ok {
		return n.Float64(), true
	}
	v, ok := approxFloat(e)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func approxFloat(e Expr) (float64, bool) {
	switch v := e.(type) {
	case *Num:
		return v.Float64(), true
	case *Add:
		sum := 0.0
		for _, t := range v.terms {
			x, ok := approxFloat(t)
			if !ok {
				return 0, false
			}
			sum += x
		}
		return sum, true
	case *Mul:
		prod := 1.0
		for _, f := range v.factors {
			x, ok := approxFloat(f)
			if !ok {
				return 0, false
			}
			prod *= x
		}
		return prod, true
	case *Pow:
		b, ok := approxFloat(v.base)
		if !ok {
			return 0, false
		}
		x, ok := approxFloat(v.exp)
		if !ok {
			return 0, false
		}
		return math.Pow(b, x), true
	case *Func:
		x, ok := approxFloat(v.arg)
		if !ok {
			return 0, false
		}
		switch v.name {
		case "sin":
			return math.Sin(x), true
		case "cos":
			return math.Cos(x), true
		case "tan":
			return math.Tan(x), true
		case "exp":
			return math.Exp(x), true
		case "ln", "log":
			return math.Log(x), true
		case "sqrt":
			return math.Sqrt(x), true
		case "abs":
			return math.Abs(x), true
		case "asin":
			return math.Asin(x), true
		case "acos":
			return math.Acos(x), true
		case "atan":
			return math.Atan(x), true
		case "sinh":
			return math.Sinh(x), true
		case "cosh":
			return math.Cosh(x), true
		case "tanh":
			return math.Tanh(x), true
		case "asinh":
			return math.Asinh(x), true
		case "acosh":
			return math.Acosh(x), true
		case "atanh":
			return math.Atanh(x), true
		case "sign":
			switch {
			case x > 0:
				return 1, true
			case x < 0:
				return -1, true
			}
			return 0, true
		}
	}
	return 0, false
}
