package exact

import "github.com/spf13/afero"

type Option func(*Engine)

// WithFs sets the filesystem EvalFile reads documents from.
func WithFs(fs afero.Fs) Option {
	return func(e *Engine) {
		e.fs = fs
	}
}

// WithDecimalDigits sets the fractional precision for non-terminating
// decimal expansions. Values below the contractual floor of 20 are raised
// to it.
func WithDecimalDigits(digits int) Option {
	return func(e *Engine) {
		e.digits = digits
	}
}

// WithBindings attaches the lookup that resolves variable references in
// query documents.
func WithBindings(bindings Bindings) Option {
	return func(e *Engine) {
		e.bindings = bindings
	}
}
