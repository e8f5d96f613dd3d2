package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// NullableFloat parses a CSV cell into a float pointer. Empty cells and
// literal null markers produce nil; anything else must be numeric.
func NullableFloat(s string) (*float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "null") || strings.EqualFold(trimmed, "nan") {
		return nil, nil
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric value %q", s)
	}
	return &v, nil
}

// Float64Ptr returns a pointer to the given value.
func Float64Ptr(v float64) *float64 {
	return &v
}
