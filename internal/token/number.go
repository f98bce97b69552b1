package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts a decimal numeric literal to a float64. Hex literals,
// digit separators, literals that overflow and non-finite spellings ("inf",
// "NaN") are rejected.
func ParseNumber(s string) (float64, error) {
	if strings.ContainsAny(s, "xX_") {
		return 0, fmt.Errorf("parse number %q: not a decimal literal", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, err)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("parse number %q: value is not finite", s)
	}
	return v, nil
}

// IsNumber reports whether s is a valid numeric literal.
func IsNumber(s string) bool {
	_, err := ParseNumber(s)
	return err == nil
}

// FormatNumber renders v in the shortest form that round-trips, e.g. "7" or "3.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
