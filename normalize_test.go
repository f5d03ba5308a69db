package span

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_Carry(t *testing.T) {
	t.Parallel()

	raw := Span{Milliseconds: 1500, Precision: PrecisionMilli}
	actual := raw.Normalize()
	expected := Span{
		Seconds:      1,
		Milliseconds: 500,
		Precision:    PrecisionSeconds | PrecisionMilli,
	}
	require.Equal(t, expected, actual, "carry should move whole seconds up and populate the seconds field")
}

func TestNormalize_CarryAllTheWay(t *testing.T) {
	t.Parallel()

	// one yoctosecond short of a day, plus one
	raw := Span{
		Hours: 23, Minutes: 59, Seconds: 59,
		Milliseconds: 999, Microseconds: 999, Nanoseconds: 999,
		Picoseconds: 999, Femtoseconds: 999, Attoseconds: 999,
		Zeptoseconds: 999, Yoctoseconds: 1000,
		Precision: PrecisionAll &^ PrecisionDays,
	}
	actual := raw.Normalize()
	require.Equal(t, Span{Days: 1, Precision: PrecisionAll}, actual)
}

func TestNormalize_Borrow(t *testing.T) {
	t.Parallel()

	raw := Span{
		Seconds:      -1,
		Milliseconds: 500,
		Precision:    PrecisionSeconds | PrecisionMilli,
	}
	actual := raw.Normalize()
	expected := Span{
		Seconds:      0,
		Milliseconds: -500,
		Precision:    PrecisionSeconds | PrecisionMilli,
	}
	require.Equal(t, expected, actual, "borrow should yield -0.5s with a single sign, not a mixed residual")
	require.Equal(t, total(raw), total(actual))
}

func TestNormalize_NegativeSingleField(t *testing.T) {
	t.Parallel()

	raw := Span{Milliseconds: -1, Precision: PrecisionMilli}
	actual := raw.Normalize()
	require.Equal(t, raw, actual, "an in-range negative field is already canonical")

	raw = Span{Hours: -25, Precision: PrecisionHours}
	actual = raw.Normalize()
	expected := Span{Days: -1, Hours: -1, Precision: PrecisionDays | PrecisionHours}
	require.Equal(t, expected, actual)
}

func TestNormalize_ZeroesUnpopulated(t *testing.T) {
	t.Parallel()

	raw := Span{Seconds: 5, Milliseconds: 7, Nanoseconds: 3000, Precision: PrecisionSeconds}
	actual := raw.Normalize()
	require.Equal(t, Span{Seconds: 5, Precision: PrecisionSeconds}, actual,
		"fields outside the mask should be dropped before carrying")
}

func TestNormalize_IgnoresUndefinedMaskBits(t *testing.T) {
	t.Parallel()

	raw := Span{Seconds: 5, Precision: PrecisionSeconds | 1<<40}
	actual := raw.Normalize()
	require.Equal(t, PrecisionSeconds, actual.Precision)
}

func TestNormalize_Saturates(t *testing.T) {
	t.Parallel()

	raw := Span{Days: math.MaxInt64, Hours: 24, Precision: PrecisionDays | PrecisionHours}
	actual := raw.Normalize()
	require.Equal(t, int64(math.MaxInt64), actual.Days)
	require.Zero(t, actual.Hours)

	raw = Span{Days: math.MinInt64, Hours: -24, Precision: PrecisionDays | PrecisionHours}
	actual = raw.Normalize()
	require.Equal(t, int64(-math.MaxInt64), actual.Days)
	require.Zero(t, actual.Hours)
	requireNormalized(t, actual)
}

func TestNormalize_Properties(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for range 5000 {
		raw := randomSpan(r)
		once := raw.Normalize()

		requireNormalized(t, once)
		require.Equal(t, once, once.Normalize(), "normalize should be idempotent for %+v", raw)
		require.Zero(t, total(raw).Cmp(total(once)), "normalize should preserve the duration of %+v", raw)
		require.Equal(t, raw.Precision, raw.Precision&once.Precision, "normalize should never drop mask bits")
	}
}

func TestFloorDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v, m, want int64
	}{
		{0, 1000, 0},
		{999, 1000, 0},
		{1000, 1000, 1},
		{-1, 1000, -1},
		{-1000, 1000, -1},
		{-1001, 1000, -2},
		{-59, 60, -1},
		{math.MinInt64, 1000, math.MinInt64/1000 - 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, floorDiv(tt.v, tt.m), "floorDiv(%d, %d)", tt.v, tt.m)
	}
}

func TestSaturatingArithmetic(t *testing.T) {
	t.Parallel()

	const (
		maxI = math.MaxInt64
		minI = math.MinInt64
	)

	require.Equal(t, int64(3), addSat(1, 2))
	require.Equal(t, int64(maxI), addSat(maxI, 1))
	require.Equal(t, int64(minI), addSat(minI, -1))

	require.Equal(t, int64(-1), subSat(1, 2))
	require.Equal(t, int64(maxI), subSat(0, minI))
	require.Equal(t, int64(-1), subSat(minI, minI+1))
	require.Equal(t, int64(maxI), subSat(-1, minI))
	require.Equal(t, int64(minI), subSat(minI, 1))

	require.Equal(t, int64(maxI), negSat(minI))
	require.Equal(t, int64(-5), negSat(5))

	require.Equal(t, int64(6), mulSat(2, 3))
	require.Equal(t, int64(0), mulSat(0, maxI))
	require.Equal(t, int64(maxI), mulSat(maxI, 2))
	require.Equal(t, int64(minI), mulSat(maxI, -2))
	require.Equal(t, int64(maxI), mulSat(minI, -1))
	require.Equal(t, int64(maxI), mulSat(-1, minI))
	require.Equal(t, int64(minI), mulSat(minI, 1))
}
