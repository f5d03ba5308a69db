// Package span provides a duration type that is not anchored to any
// calendar or wall clock, with precision down to yoctoseconds.
//
// A [Span] holds twelve signed magnitude fields, days down to yoctoseconds,
// plus a [Mask] recording which of them are meaningful. Constructors and
// arithmetic always return normalized spans: every populated field is within
// its natural modulus, and all fields share one sign.
//
//	a, _ := span.FromUnit(1500, "ms") // 1s500ms
//	b := span.FromHint(span.HintFrame) // 16ms667us
//	fmt.Println(a.Add(b).Format("human"))
//
// All operations on a Span are pure and safe for concurrent use.
package span

// Span is a duration of days, clock units and SI sub-second units.
//
// The zero value is an empty span: zero duration with no populated fields.
// Fields are exported so that callers may build raw spans, e.g. from
// deserialized input; use [Span.Validate] to check them and
// [Span.Normalize] to canonicalize them.
type Span struct {
	Days int64

	Hours   int32
	Minutes int32
	Seconds int32

	Milliseconds int32
	Microseconds int32
	Nanoseconds  int32
	Picoseconds  int32
	Femtoseconds int32
	Attoseconds  int32
	Zeptoseconds int32
	Yoctoseconds int32

	// Precision marks which fields are populated. Fields outside it are
	// treated as zero.
	Precision Mask
}

// Clear resets s to the empty span.
func (s *Span) Clear() {
	*s = Span{}
}

// IsZero reports whether the span is zero length, considering only
// populated fields.
func (s Span) IsZero() bool {
	f := s.fields()
	for _, v := range f {
		if v != 0 {
			return false
		}
	}
	return true
}

// Field returns the raw value of the unit's field, or 0 if the field is
// not populated.
func (s Span) Field(u Unit) int64 {
	if !s.Precision.Has(u) {
		return 0
	}
	return s.raw()[u]
}

// Validate reports whether every populated sub-day field is within its
// modulus. It does not modify s, and does not check sign homogeneity.
func (s Span) Validate() bool {
	f := s.raw()
	for _, u := range allUnits[1:] {
		if !s.Precision.Has(u) {
			continue
		}
		v, m := f[u], moduli[u]
		if v <= -m || v >= m {
			return false
		}
	}
	return true
}

// fieldSet is the twelve fields widened to int64, indexed by [Unit].
type fieldSet [numUnits]int64

// raw returns the stored fields regardless of the mask.
func (s Span) raw() fieldSet {
	return fieldSet{
		s.Days,
		int64(s.Hours), int64(s.Minutes), int64(s.Seconds),
		int64(s.Milliseconds), int64(s.Microseconds), int64(s.Nanoseconds),
		int64(s.Picoseconds), int64(s.Femtoseconds), int64(s.Attoseconds),
		int64(s.Zeptoseconds), int64(s.Yoctoseconds),
	}
}

// fields returns the stored fields with unpopulated ones zeroed.
func (s Span) fields() fieldSet {
	f := s.raw()
	for _, u := range allUnits {
		if !s.Precision.Has(u) {
			f[u] = 0
		}
	}
	return f
}

// fromFields builds a span from normalized fields; every sub-day value
// must already fit in an int32.
func fromFields(f fieldSet, m Mask) Span {
	return Span{
		Days:         f[Days],
		Hours:        int32(f[Hours]),
		Minutes:      int32(f[Minutes]),
		Seconds:      int32(f[Seconds]),
		Milliseconds: int32(f[Milliseconds]),
		Microseconds: int32(f[Microseconds]),
		Nanoseconds:  int32(f[Nanoseconds]),
		Picoseconds:  int32(f[Picoseconds]),
		Femtoseconds: int32(f[Femtoseconds]),
		Attoseconds:  int32(f[Attoseconds]),
		Zeptoseconds: int32(f[Zeptoseconds]),
		Yoctoseconds: int32(f[Yoctoseconds]),
		Precision:    m,
	}
}
