package span

import "math"

// Normalize returns the canonical form of s:
//
//   - fields outside the precision mask are zeroed;
//   - every sub-day field is brought within its modulus, carrying (or
//     borrowing) into the next larger field, up to days;
//   - all fields share the sign of the total duration;
//   - any field that receives a nonzero carry is added to the mask.
//
// The total duration is preserved exactly, unless days overflows, in which
// case days saturates. Normalize is idempotent.
func (s Span) Normalize() Span {
	return normalize(s.fields(), s.Precision)
}

func normalize(f fieldSet, m Mask) Span {
	m &= PrecisionAll

	carry(&f)

	// After carrying, sub-day fields are non-negative and together are less
	// than one day, so the total is negative iff days is.
	if f[Days] < 0 {
		f.negate()
		carry(&f)
		f.negate()
	}

	for _, u := range allUnits {
		if f[u] != 0 {
			m = m.With(u)
		}
	}
	return fromFields(f, m)
}

// carry sweeps from the smallest unit to the largest, reducing each field
// modulo its modulus with floored division. Afterwards every sub-day field
// is in [0, modulus) and days absorbs the remainder, whatever the input
// signs were.
func carry(f *fieldSet) {
	for u := Yoctoseconds; u > Days; u-- {
		m := moduli[u]
		c := floorDiv(f[u], m)
		f[u] -= c * m
		f[u-1] = addSat(f[u-1], c)
	}
}

func (f *fieldSet) negate() {
	for i := range f {
		f[i] = negSat(f[i])
	}
}

// floorDiv rounds toward negative infinity, unlike Go's / operator.
// m must be positive.
func floorDiv(v, m int64) int64 {
	q := v / m
	if v%m < 0 {
		q--
	}
	return q
}

// Saturating int64 arithmetic. Overflow clamps to math.MaxInt64 or
// math.MinInt64.

func addSat(a, b int64) int64 {
	c := a + b
	if (c > a) != (b > 0) {
		if b > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return c
}

func subSat(a, b int64) int64 {
	if b == math.MinInt64 {
		if a >= 0 {
			return math.MaxInt64
		}
		return a - b
	}
	return addSat(a, -b)
}

func negSat(a int64) int64 {
	if a == math.MinInt64 {
		return math.MaxInt64
	}
	return -a
}

func mulSat(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		if (a < 0) != (b < 0) {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return c
}
