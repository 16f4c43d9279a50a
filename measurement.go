package gopresentation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is a length unit, valued as the number of EMU in one unit.
type Unit int64

const (
	EMU        Unit = 1
	Point      Unit = 12700
	Millimeter Unit = 36000
	Centimeter Unit = 360000
	Inch       Unit = 914400
)

// maxEMU bounds converted lengths so offsets can still be added safely.
const maxEMU = math.MaxInt64 / 2

// unitNames lists suffixes in match order; "emu" precedes "mm" and "in"
// never ends another suffix.
var unitNames = []struct {
	name string
	unit Unit
}{
	{"emu", EMU},
	{"in", Inch},
	{"cm", Centimeter},
	{"mm", Millimeter},
	{"pt", Point},
}

func (u Unit) String() string {
	for _, n := range unitNames {
		if n.unit == u {
			return n.name
		}
	}
	return strconv.FormatInt(int64(u), 10) + "emu"
}

// ToEMU converts n units to EMU, saturating at ±maxEMU.
func (u Unit) ToEMU(n float64) int64 {
	v := n * float64(u)
	switch {
	case v > maxEMU:
		return maxEMU
	case v < -maxEMU:
		return -maxEMU
	}
	return int64(math.Round(v))
}

// FromEMU returns emu expressed in u.
func (u Unit) FromEMU(emu int64) float64 {
	return float64(emu) / float64(u)
}

// ParseUnit parses a unit name: emu, in, cm, mm or pt.
func ParseUnit(s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, n := range unitNames {
		if n.name == s {
			return n.unit, nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q (valid: emu, in, cm, mm, pt)", s)
}

// ParseLength parses a length with an optional unit suffix into EMU, e.g.
// "1.5in", "2cm" or "18pt". A bare number is taken as EMU.
func ParseLength(s string) (int64, error) {
	num, unit := strings.ToLower(strings.TrimSpace(s)), EMU
	for _, n := range unitNames {
		if strings.HasSuffix(num, n.name) {
			num, unit = strings.TrimSpace(strings.TrimSuffix(num, n.name)), n.unit
			break
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	return unit.ToEMU(v), nil
}

// FormatLength renders emu in unit u with the unit suffix, e.g. "1.5in".
// EMU values are printed as integers.
func FormatLength(emu int64, u Unit) string {
	if u == EMU {
		return strconv.FormatInt(emu, 10)
	}
	return strconv.FormatFloat(u.FromEMU(emu), 'f', -1, 64) + u.String()
}
