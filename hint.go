package span

import "fmt"

// Hint names a duration by intent rather than by value, for callers that
// know what kind of pause they want but not how long it should be.
type Hint uint8

const (
	// HintMoment is 5ms: barely noticeable.
	HintMoment Hint = iota
	// HintShort is 100ms.
	HintShort
	// HintLong is 5s.
	HintLong
	// HintHumanTick is 50ms: a perceptible UI tick.
	HintHumanTick
	// HintFrame is one 60Hz display frame, 16ms667us.
	HintFrame

	numHints = 5
)

type component struct {
	value int64
	unit  Unit
}

var hints = [numHints]struct {
	id    string
	value []component
}{
	HintMoment:    {"moment", []component{{5, Milliseconds}}},
	HintShort:     {"short", []component{{100, Milliseconds}}},
	HintLong:      {"long", []component{{5, Seconds}}},
	HintHumanTick: {"human_tick", []component{{50, Milliseconds}}},
	HintFrame:     {"frame", []component{{16, Milliseconds}, {667, Microseconds}}},
}

// ParseHint matches a hint id exactly:
// moment, short, long, human_tick, frame.
func ParseHint(id string) (Hint, error) {
	for h := range Hint(numHints) {
		if hints[h].id == id {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHint, id)
}

func (h Hint) String() string {
	if h >= numHints {
		return fmt.Sprintf("Hint(%d)", uint8(h))
	}
	return hints[h].id
}

// FromHint returns the span for h. Its precision mask holds exactly the
// fields the hint populates. An invalid hint yields the empty span.
func FromHint(h Hint) Span {
	if h >= numHints {
		return Span{}
	}
	var (
		f fieldSet
		m Mask
	)
	for _, c := range hints[h].value {
		f[c.unit] = c.value
		m = m.With(c.unit)
	}
	return normalize(f, m)
}

// FromAI is [FromHint] with the hint given by id. An unknown id returns
// the empty span and an error wrapping [ErrInvalidHint].
func FromAI(id string) (Span, error) {
	h, err := ParseHint(id)
	if err != nil {
		return Span{}, err
	}
	return FromHint(h), nil
}

// Nanoseconds returns the hint's duration in nanoseconds, for use with
// [Timer] and [Sleep].
func (h Hint) Nanoseconds() int64 {
	return FromHint(h).ToNanoseconds()
}
