package span

// Add returns s+o. The result's precision mask is the union of both masks,
// plus any larger unit that receives a carry.
func (s Span) Add(o Span) Span {
	a, b := s.fields(), o.fields()
	var f fieldSet
	for i := range f {
		f[i] = addSat(a[i], b[i])
	}
	return normalize(f, s.Precision|o.Precision)
}

// Sub returns s-o. Negative results are ordinary spans: every field carries
// the minus sign.
func (s Span) Sub(o Span) Span {
	a, b := s.fields(), o.fields()
	var f fieldSet
	for i := range f {
		f[i] = subSat(a[i], b[i])
	}
	return normalize(f, s.Precision|o.Precision)
}

// Neg returns -s.
func (s Span) Neg() Span {
	f := s.fields()
	f.negate()
	return normalize(f, s.Precision)
}

// Compare returns -1, 0 or +1 as s is shorter than, equal to, or longer
// than o.
func (s Span) Compare(o Span) int {
	d := s.Sub(o)
	switch {
	case d.IsZero():
		return 0
	case d.negative():
		return -1
	default:
		return 1
	}
}

// negative reports whether a normalized span is below zero.
func (s Span) negative() bool {
	f := s.fields()
	for _, v := range f {
		if v != 0 {
			return v < 0
		}
	}
	return false
}
