package span

import (
	"fmt"
	"strconv"
)

// Style selects the text rendering used by [Span.Format].
type Style uint8

const (
	// StyleShort concatenates each nonzero field with its unit suffix,
	// e.g. "1s500ms" or "-2h".
	StyleShort Style = iota
	// StyleHuman spells out each nonzero field, e.g.
	// "1 second, 500 milliseconds" or "minus 2 hours".
	StyleHuman
	// StylePrecise is fixed-point seconds with nine fractional digits,
	// e.g. "5.000000000 s". Anything finer than nanoseconds is dropped.
	StylePrecise
	// StyleAI lists every populated field as unit=value, separated by
	// semicolons, e.g. "s=1;ms=500". A span with no populated fields
	// renders as "none".
	StyleAI

	numStyles = 4
)

var styleIDs = [numStyles]string{"short", "human", "precise", "ai"}

// ParseStyle matches a format id exactly: short, human, precise, ai.
func ParseStyle(id string) (Style, error) {
	for st := range Style(numStyles) {
		if styleIDs[st] == id {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, id)
}

func (st Style) String() string {
	if st >= numStyles {
		return fmt.Sprintf("Style(%d)", uint8(st))
	}
	return styleIDs[st]
}

// String renders s in the short style.
func (s Span) String() string {
	return string(s.AppendFormat(nil, StyleShort))
}

// Format renders s in the style named by id. An unknown id returns an error
// wrapping [ErrInvalidFormat].
func (s Span) Format(id string) (string, error) {
	st, err := ParseStyle(id)
	if err != nil {
		return "", err
	}
	return string(s.AppendFormat(nil, st)), nil
}

// FormatInto renders s into a fixed-capacity buffer, in the manner of C's
// snprintf: it writes at most len(buf)-1 bytes followed by a NUL byte, and
// returns the full length of the rendering. The output was truncated iff
// n >= len(buf).
//
// An unknown id leaves buf untouched and returns an error wrapping
// [ErrInvalidFormat].
func (s Span) FormatInto(buf []byte, id string) (n int, err error) {
	st, err := ParseStyle(id)
	if err != nil {
		return 0, err
	}
	out := s.AppendFormat(make([]byte, 0, 64), st)
	if len(buf) > 0 {
		c := copy(buf[:len(buf)-1], out)
		buf[c] = 0
	}
	return len(out), nil
}

// AppendFormat appends the rendering of s in style st to dst. An invalid
// style appends nothing.
func (s Span) AppendFormat(dst []byte, st Style) []byte {
	n := s.Normalize()
	switch st {
	case StyleShort:
		return n.appendShort(dst)
	case StyleHuman:
		return n.appendHuman(dst)
	case StylePrecise:
		return n.appendPrecise(dst)
	case StyleAI:
		return n.appendAI(dst)
	}
	return dst
}

// smallest returns the finest populated unit, or seconds if none are.
func (s Span) smallest() Unit {
	units := s.Precision.Units()
	if len(units) == 0 {
		return Seconds
	}
	return units[len(units)-1]
}

func (s Span) appendShort(dst []byte) []byte {
	if s.IsZero() {
		dst = append(dst, '0')
		return append(dst, unitSuffixes[s.smallest()]...)
	}
	if s.negative() {
		dst = append(dst, '-')
	}
	f := s.fields()
	for _, u := range allUnits {
		if f[u] == 0 {
			continue
		}
		dst = strconv.AppendUint(dst, abs(f[u]), 10)
		dst = append(dst, unitSuffixes[u]...)
	}
	return dst
}

func (s Span) appendHuman(dst []byte) []byte {
	if s.IsZero() {
		dst = append(dst, "0 "...)
		dst = append(dst, unitNames[s.smallest()]...)
		return append(dst, 's')
	}
	if s.negative() {
		dst = append(dst, "minus "...)
	}
	f := s.fields()
	first := true
	for _, u := range allUnits {
		if f[u] == 0 {
			continue
		}
		if !first {
			dst = append(dst, ", "...)
		}
		first = false
		v := abs(f[u])
		dst = strconv.AppendUint(dst, v, 10)
		dst = append(dst, ' ')
		dst = append(dst, unitNames[u]...)
		if v != 1 {
			dst = append(dst, 's')
		}
	}
	return dst
}

func (s Span) appendPrecise(dst []byte) []byte {
	f := s.fields()
	whole := s.sum(&secondsPer)
	frac := f[Milliseconds]*1e6 + f[Microseconds]*1e3 + f[Nanoseconds]
	if whole < 0 || frac < 0 {
		dst = append(dst, '-')
	}
	dst = strconv.AppendUint(dst, abs(whole), 10)
	dst = append(dst, '.')
	digits := strconv.AppendUint(make([]byte, 0, 9), abs(frac), 10)
	for range 9 - len(digits) {
		dst = append(dst, '0')
	}
	dst = append(dst, digits...)
	return append(dst, " s"...)
}

func (s Span) appendAI(dst []byte) []byte {
	units := s.Precision.Units()
	if len(units) == 0 {
		return append(dst, "none"...)
	}
	f := s.fields()
	for i, u := range units {
		if i > 0 {
			dst = append(dst, ';')
		}
		dst = append(dst, unitSuffixes[u]...)
		dst = append(dst, '=')
		dst = strconv.AppendInt(dst, f[u], 10)
	}
	return dst
}

func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
