package span

import "time"

// secondsPer and nanosPer hold each unit's size in seconds and in
// nanoseconds; 0 marks units smaller than the target.
var (
	secondsPer = [numUnits]int64{86400, 3600, 60, 1}
	nanosPer   = [numUnits]int64{
		86400 * 1e9, 3600 * 1e9, 60 * 1e9, 1e9,
		1e6, 1e3, 1,
	}
)

// ToSeconds returns the span as a whole number of seconds, truncating any
// sub-second remainder toward zero. Values beyond the int64 range saturate.
func (s Span) ToSeconds() int64 {
	return s.Normalize().sum(&secondsPer)
}

// ToNanoseconds returns the span as a whole number of nanoseconds, dropping
// anything finer. Values beyond the int64 range saturate.
func (s Span) ToNanoseconds() int64 {
	return s.Normalize().sum(&nanosPer)
}

// Duration converts the span to a [time.Duration], saturating beyond
// roughly 292 years.
func (s Span) Duration() time.Duration {
	return time.Duration(s.ToNanoseconds())
}

// sum weights each populated field. Since a normalized span has a single
// sign, dropping the unweighted small units truncates toward zero.
func (s Span) sum(weights *[numUnits]int64) int64 {
	f := s.fields()
	var total int64
	for u, w := range weights {
		if w == 0 {
			continue
		}
		total = addSat(total, mulSat(f[u], w))
	}
	return total
}
