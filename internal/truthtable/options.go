package truthtable

// DefaultMaxVariables bounds the 2^n enumeration for untrusted input.
const DefaultMaxVariables = 20

// hardMaxVariables keeps 1<<n well inside an int.
const hardMaxVariables = 30

type options struct {
	maxVariables int
}

type Option func(*options)

// WithMaxVariables caps the number of distinct variables a formula may use.
// Values outside 1..30 are clamped.
func WithMaxVariables(n int) Option {
	return func(o *options) {
		o.maxVariables = max(1, min(n, hardMaxVariables))
	}
}

func defaultOptions() options {
	return options{maxVariables: DefaultMaxVariables}
}
