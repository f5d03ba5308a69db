package span

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSpan_Seconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		span     Span
		expected int64
	}{
		{"round trip", New(5, Seconds), 5},
		{"truncates", New(1999, Milliseconds), 1},
		{"truncates toward zero", New(-1999, Milliseconds), -1},
		{"sub-second", New(999, Milliseconds), 0},
		{"day", New(1, Days), 86400},
		{"mixed", New(90061, Seconds), 90061},
		{"empty", Span{}, 0},
		{"saturates", New(math.MaxInt64, Days), math.MaxInt64},
		{"saturates negative", New(math.MinInt64, Days), math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, tt.span.ToSeconds())
		})
	}
}

func TestSpan_Nanoseconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		span     Span
		expected int64
	}{
		{"seconds", New(5, Seconds), 5_000_000_000},
		{"frame", FromHint(HintFrame), 16_667_000},
		{"drops sub-nanosecond", New(1500, Picoseconds), 1},
		{"drops sub-nanosecond negative", New(-1500, Picoseconds), -1},
		{"only sub-nanosecond", New(999, Yoctoseconds), 0},
		{"day", New(1, Days), 86_400_000_000_000},
		{"saturates", New(300*365, Days), math.MaxInt64},
		{"saturates negative", New(-300*365, Days), math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, tt.span.ToNanoseconds())
		})
	}
}

func TestSpan_Convert_IgnoresUnpopulated(t *testing.T) {
	t.Parallel()

	raw := Span{Seconds: 5, Milliseconds: 2500, Precision: PrecisionSeconds}
	require.Equal(t, int64(5), raw.ToSeconds())
	require.Equal(t, int64(5_000_000_000), raw.ToNanoseconds())
}

func TestSpan_Convert_Unnormalized(t *testing.T) {
	t.Parallel()

	raw := Span{Seconds: -1, Milliseconds: 500, Precision: PrecisionSeconds | PrecisionMilli}
	require.Equal(t, int64(0), raw.ToSeconds(), "-0.5s truncates to zero")
	require.Equal(t, int64(-500_000_000), raw.ToNanoseconds())
}

func TestSpan_Duration(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1500*time.Millisecond, New(1500, Milliseconds).Duration())
	require.Equal(t, -16667*time.Microsecond, FromHint(HintFrame).Neg().Duration())
	require.Equal(t, time.Duration(math.MaxInt64), New(1e6, Days).Duration())
}
