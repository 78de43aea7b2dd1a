// Package options implements the generic functional-option pattern shared by
// the run, read and fit configurations.
package options

// Option mutates a configuration of type T, usually a pointer to a config
// struct, and may reject the resulting state with an error.
type Option[T any] func(T) error

// New returns fn as an Option. It exists so option constructors read the
// same whether or not they can fail.
func New[T any](fn func(T) error) Option[T] {
	return fn
}

// NoError lifts a setter that cannot fail into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs opts against target in order. Nil options are skipped; the
// first error stops the chain and is returned as is, so callers can match
// it with errors.Is.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}

// Build applies opts to defaults and returns the result, or the zero T when
// an option fails.
func Build[T any](defaults T, opts ...Option[T]) (T, error) {
	if err := Apply(defaults, opts...); err != nil {
		var zero T
		return zero, err
	}

	return defaults, nil
}
