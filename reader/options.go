package reader

// Option configures a Reader during creation.
//
// Example:
//
//	// Keep upper-case symbols distinct
//	r := reader.New(reader.WithLowercase(false))
type Option func(*options)

// options holds optional configuration for a Reader.
type options struct {
	lowercase bool
	functions map[string]struct{}
}

// builtinFunctions are recognised when directly followed by "(".
var builtinFunctions = []string{
	"sin", "cos", "tan", "asin", "acos", "atan",
	"sinh", "cosh", "tanh", "asinh", "acosh", "atanh",
	"exp", "log", "ln", "sqrt", "abs", "sign",
}

// defaultOptions returns the default reader options.
func defaultOptions() options {
	o := options{
		lowercase: true,
		functions: make(map[string]struct{}, len(builtinFunctions)),
	}
	for _, f := range builtinFunctions {
		o.functions[f] = struct{}{}
	}
	return o
}

// WithLowercase controls whether input is lower-cased before parsing.
// The default is true, so "X" and "x" name the same symbol.
func WithLowercase(on bool) Option {
	return func(o *options) {
		o.lowercase = on
	}
}

// WithFunctions adds names to the set of recognised functions. Unknown
// functions are kept as opaque applications. Names are lower-cased
// along with the input unless WithLowercase(false) is given.
func WithFunctions(names ...string) Option {
	return func(o *options) {
		for _, n := range names {
			o.functions[n] = struct{}{}
		}
	}
}
