package blockkit

// Opt tracks whether a scalar was ever assigned. The zero value is unset.
//
// Omission is decided on presence, not on the value: an explicitly assigned
// empty string is emitted, a never-assigned field is not.
type Opt[T any] struct {
	v  T
	ok bool
}

// Some returns a set Opt holding v.
func Some[T any](v T) Opt[T] { return Opt[T]{v: v, ok: true} }

// None returns an unset Opt.
func None[T any]() Opt[T] { return Opt[T]{} }

// Get returns the value and whether it was set.
func (o Opt[T]) Get() (T, bool) { return o.v, o.ok }

// IsSet reports whether a value was assigned.
func (o Opt[T]) IsSet() bool { return o.ok }

// Or returns the value when set, otherwise def.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// putOpt writes key only when o is set.
func putOpt[T any](d *Document, key string, o Opt[T]) {
	if v, ok := o.Get(); ok {
		d.Set(key, v)
	}
}
