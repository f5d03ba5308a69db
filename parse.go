package span

import (
	"fmt"
	"strconv"
)

// Parse reads a span in the short style, such as "1s500ms", "-2h" or
// "16ms667us": an optional leading minus sign followed by one or more
// groups of decimal digits and a unit. Units are the short suffixes
// (d h m s ms us ns ps fs as zs ys) or the ids accepted by [ParseUnit].
//
// Every unit that appears is populated in the result's precision mask,
// even with a zero value.
func Parse(text string) (Span, error) {
	s := text
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return Span{}, fmt.Errorf("%w: %q", ErrInvalidSyntax, text)
	}

	var (
		f fieldSet
		m Mask
	)
	for s != "" {
		i := 0
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
		}
		if i == 0 {
			return Span{}, fmt.Errorf("%w: %q: expected digits at %q", ErrInvalidSyntax, text, s)
		}
		v, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil {
			return Span{}, fmt.Errorf("%w: %q: %w", ErrInvalidSyntax, text, err)
		}
		s = s[i:]

		j := 0
		for j < len(s) && ('a' <= s[j] && s[j] <= 'z' || 'A' <= s[j] && s[j] <= 'Z') {
			j++
		}
		if j == 0 {
			return Span{}, fmt.Errorf("%w: %q: missing unit", ErrInvalidSyntax, text)
		}
		u, err := parseSuffix(s[:j])
		if err != nil {
			return Span{}, err
		}
		s = s[j:]

		if neg {
			v = -v
		}
		f[u] = addSat(f[u], v)
		m = m.With(u)
	}
	return normalize(f, m), nil
}

func parseSuffix(suffix string) (Unit, error) {
	for _, u := range allUnits {
		if unitSuffixes[u] == suffix {
			return u, nil
		}
	}
	return ParseUnit(suffix)
}
