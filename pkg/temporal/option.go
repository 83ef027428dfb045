// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package temporal

// Option is a Value that may be absent.
type Option struct {
	v  Value
	ok bool
}

func Some(v Value) Option { return Option{v: v, ok: true} }
func None() Option        { return Option{} }

// Get returns the value and true if present.
func (o Option) Get() (Value, bool) { return o.v, o.ok }

func (o Option) IsPresent() bool { return o.ok }

func (o Option) String() string {
	if !o.ok {
		return "<nil>"
	}
	return o.v.String()
}

// Of returns the zoned value of v, or None if v is the zero value of its type.
func Of[T Instant](v T) Option {
	t := Time(v)
	if t.IsZero() {
		return None()
	}
	return Some(Zoned(t))
}

// OfPtr is like [Of], a nil pointer is None.
func OfPtr[T Instant](p *T) Option {
	if p == nil {
		return None()
	}
	return Of(*p)
}

// OfLocal returns the local value of l, or None if l is zero.
func OfLocal(l LocalDateTime) Option {
	if l.IsZero() {
		return None()
	}
	return Some(l.Value())
}
