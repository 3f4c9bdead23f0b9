package telegram

// Opt is an optional value that distinguishes "argument not passed" from an
// explicitly passed zero value. The zero Opt is unset.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns an Opt holding v
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// None returns an unset Opt
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// IsSet reports whether the value was explicitly passed
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Value returns the held value and whether it was set
func (o Opt[T]) Value() (T, bool) {
	return o.value, o.set
}

// Or returns the held value, or def when unset
func (o Opt[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}
