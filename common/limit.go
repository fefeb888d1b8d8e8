package common

import "strconv"

const MaxPageSize = 100

// ClampLimit returns def for non-positive n and caps n at MaxPageSize.
func ClampLimit(n, def int) int {
	switch {
	case n <= 0:
		return def
	case n > MaxPageSize:
		return MaxPageSize
	default:
		return n
	}
}

// ParseLimit parses a limit query value. Unparseable input yields def.
func ParseLimit(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return ClampLimit(n, def)
}
