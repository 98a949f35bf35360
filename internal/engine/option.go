package engine

type Option func(*Engine)

func WithBindings(bindings Bindings) Option {
	return func(e *Engine) {
		e.bindings = bindings
	}
}
