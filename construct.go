package span

import "time"

// New returns the normalized span of value units, e.g.
//
//	span.New(1500, span.Milliseconds) // 1s500ms
//
// The precision mask holds the unit plus any larger units that receive
// a carry. An invalid unit yields the empty span.
func New(value int64, u Unit) Span {
	if !u.valid() {
		return Span{}
	}
	var f fieldSet
	f[u] = value
	return normalize(f, u.Mask())
}

// FromUnit is [New] with the unit given by id, one of
// days, hours, minutes, seconds, ms, us, ns, ps, fs, as, zs, ys.
// An unknown id returns the empty span and an error wrapping [ErrInvalidUnit].
func FromUnit(value int64, id string) (Span, error) {
	u, err := ParseUnit(id)
	if err != nil {
		return Span{}, err
	}
	return New(value, u), nil
}

// FromDuration converts a [time.Duration] to a span at nanosecond precision.
func FromDuration(d time.Duration) Span {
	return New(d.Nanoseconds(), Nanoseconds)
}
