package table

import (
	"math"
	"strconv"
	"strings"
)

// Format rounds value half-up to the given number of decimal places
// and prints the result in its shortest form, always with at least
// one fractional digit. No zero padding is added, so 7 prints as
// "7.0" and 1.63299 as "1.633" at four places. Magnitudes of 1e7 and
// above, or below 1e-3, print in scientific notation ("1.0E7").
func Format(value float64, precision int) string {
	multiplier := math.Pow(10, float64(precision))
	rounded := roundHalfUp(value * multiplier)
	return decimalString(float64(rounded) / multiplier)
}

// roundHalfUp returns floor(x + 0.5), saturated to the int64 range.
// NaN rounds to zero.
func roundHalfUp(x float64) int64 {
	if math.IsNaN(x) {
		return 0
	}
	r := math.Floor(x + 0.5)
	if r >= 1<<63 {
		return math.MaxInt64
	}
	if r <= -1<<63 {
		return math.MinInt64
	}
	return int64(r)
}

// decimalString prints v with the fewest digits that still identify
// it uniquely.
func decimalString(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return mantissa + "E" + exponent
	}
	return mantissa + "E" + strconv.Itoa(exp)
}
