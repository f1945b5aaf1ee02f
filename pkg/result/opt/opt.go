// Package opt provides a minimal optional value used by the result package
// for conversions that drop or re-wrap error payloads.
package opt

// Opt holds a value of type T that may be absent.
type Opt[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, present: true}
}

func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Of builds a present Opt when ok is true, None otherwise. It adapts the
// common comma-ok pair into an Opt.
func Of[T any](v T, ok bool) Opt[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}

func (o Opt[T]) IsSome() bool {
	return o.present
}

// Get returns the contained value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the contained value, or def when absent.
func (o Opt[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// Map transforms the contained value when present.
func Map[T, U any](o Opt[T], transform func(T) U) Opt[U] {
	if !o.present {
		return None[U]()
	}
	return Some(transform(o.value))
}
