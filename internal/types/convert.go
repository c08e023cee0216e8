package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDecimal parses cell text as a decimal number. A comma is accepted as
// decimal separator ("75,00" == "75.00"). Hexadecimal notation, NaN and
// infinities are rejected.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}

	lower := strings.ToLower(s)
	if strings.Contains(lower, "0x") {
		return 0, fmt.Errorf("invalid number %q", s)
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// ToFloat64 converts cell text to float64.
// Empty or non-numeric values convert to 0; ok reports whether s was numeric.
func ToFloat64(s string) (v float64, ok bool) {
	if strings.TrimSpace(s) == "" {
		return 0, false
	}
	v, err := ParseDecimal(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TruncateToInt64 truncates v toward zero.
// It fails when the result does not fit into an int64.
func TruncateToInt64(v float64) (int64, error) {
	t := math.Trunc(v)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, fmt.Errorf("value %g out of integer range", v)
	}
	return int64(t), nil
}
