package span

import "fmt"

// Unit identifies one of the twelve magnitude fields of a [Span], from
// days (the largest) down to yoctoseconds (the smallest).
type Unit uint8

const (
	Days Unit = iota
	Hours
	Minutes
	Seconds
	Milliseconds
	Microseconds
	Nanoseconds
	Picoseconds
	Femtoseconds
	Attoseconds
	Zeptoseconds
	Yoctoseconds

	numUnits = 12
)

// allUnits is ordered largest first, matching the field order of [Span].
var allUnits = [numUnits]Unit{
	Days, Hours, Minutes, Seconds,
	Milliseconds, Microseconds, Nanoseconds, Picoseconds,
	Femtoseconds, Attoseconds, Zeptoseconds, Yoctoseconds,
}

var unitIDs = [numUnits]string{
	"days", "hours", "minutes", "seconds",
	"ms", "us", "ns", "ps", "fs", "as", "zs", "ys",
}

// suffixes are used by the short style and by [Parse].
var unitSuffixes = [numUnits]string{
	"d", "h", "m", "s",
	"ms", "us", "ns", "ps", "fs", "as", "zs", "ys",
}

var unitNames = [numUnits]string{
	"day", "hour", "minute", "second",
	"millisecond", "microsecond", "nanosecond", "picosecond",
	"femtosecond", "attosecond", "zeptosecond", "yoctosecond",
}

// moduli[u] is how many of u make one of the next larger unit.
// Days has no modulus.
var moduli = [numUnits]int64{
	0, 24, 60, 60,
	1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000,
}

// ParseUnit matches a unit id exactly (case-sensitive):
// days, hours, minutes, seconds, ms, us, ns, ps, fs, as, zs, ys.
func ParseUnit(id string) (Unit, error) {
	for _, u := range allUnits {
		if unitIDs[u] == id {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, id)
}

func (u Unit) valid() bool {
	return u < numUnits
}

// String returns the unit id accepted by [ParseUnit].
func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return unitIDs[u]
}

// Mask returns the precision bit for the unit.
func (u Unit) Mask() Mask {
	if !u.valid() {
		return 0
	}
	return 1 << u
}

// Modulus returns how many of u make one of the next larger unit,
// or 0 for [Days].
func (u Unit) Modulus() int64 {
	if !u.valid() {
		return 0
	}
	return moduli[u]
}
