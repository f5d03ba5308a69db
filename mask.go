package span

import "strings"

// Mask is a bit set of populated [Span] fields. Bit i corresponds to the
// [Unit] with value i, so the bit assignment is fixed:
//
//	0 days, 1 hours, 2 minutes, 3 seconds,
//	4 ms, 5 us, 6 ns, 7 ps, 8 fs, 9 as, 10 zs, 11 ys
type Mask uint64

const (
	PrecisionDays    Mask = 1 << Days
	PrecisionHours   Mask = 1 << Hours
	PrecisionMinutes Mask = 1 << Minutes
	PrecisionSeconds Mask = 1 << Seconds
	PrecisionMilli   Mask = 1 << Milliseconds
	PrecisionMicro   Mask = 1 << Microseconds
	PrecisionNano    Mask = 1 << Nanoseconds
	PrecisionPico    Mask = 1 << Picoseconds
	PrecisionFemto   Mask = 1 << Femtoseconds
	PrecisionAtto    Mask = 1 << Attoseconds
	PrecisionZepto   Mask = 1 << Zeptoseconds
	PrecisionYocto   Mask = 1 << Yoctoseconds

	// PrecisionAll has every field populated.
	PrecisionAll Mask = 1<<numUnits - 1
)

// MaskOf returns the mask with exactly the given units set.
func MaskOf(units ...Unit) Mask {
	var m Mask
	for _, u := range units {
		m = m.With(u)
	}
	return m
}

// Has reports whether the unit's field is populated.
func (m Mask) Has(u Unit) bool {
	return u.valid() && m&u.Mask() != 0
}

// With returns m with the unit's bit set.
func (m Mask) With(u Unit) Mask {
	if !u.valid() {
		return m
	}
	return m | u.Mask()
}

// Without returns m with the unit's bit cleared.
func (m Mask) Without(u Unit) Mask {
	return m &^ u.Mask()
}

// Union returns the bits set in either mask.
func (m Mask) Union(o Mask) Mask {
	return m | o
}

// Units returns the populated units, largest first.
func (m Mask) Units() []Unit {
	units := make([]Unit, 0, numUnits)
	for _, u := range allUnits {
		if m.Has(u) {
			units = append(units, u)
		}
	}
	return units
}

// String lists the populated unit ids, e.g. "seconds|ms".
func (m Mask) String() string {
	if m&PrecisionAll == 0 {
		return "none"
	}
	var b strings.Builder
	for _, u := range m.Units() {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(u.String())
	}
	return b.String()
}
