package normalize

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"
)

// object returns v as a JSON object, or an empty one.
func object(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func pick(src map[string]any, aliases []string) (any, bool) {
	for _, key := range aliases {
		if v, ok := src[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func asArray(v any) []any {
	if arr, ok := v.([]any); ok {
		return arr
	}
	return []any{}
}

// coalesce returns the first non-null value among keys.
func coalesce(item map[string]any, keys ...string) any {
	for _, key := range keys {
		if v := item[key]; v != nil {
			return v
		}
	}
	return nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		return true
	}
}

// Text renders a loosely typed request field as a string. Falsy values
// become empty so callers can apply their defaults.
func Text(v any) string {
	if !truthy(v) {
		return ""
	}
	return toString(v)
}

// firstString returns the first truthy value among keys as a string.
func firstString(item map[string]any, fallback string, keys ...string) string {
	for _, key := range keys {
		if v := item[key]; truthy(v) {
			return toString(v)
		}
	}
	return fallback
}

func number(v any, fallback float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return fallback
}

// numberOr coalesces keys and coerces the result, using fallback when
// nothing is set or the value is not numeric.
func numberOr(item map[string]any, fallback float64, keys ...string) float64 {
	v := coalesce(item, keys...)
	if v == nil {
		return fallback
	}
	return number(v, fallback)
}

// idOr keeps a model-supplied id whatever its JSON type.
func idOr(v any, fallback int) any {
	if v == nil {
		return fallback
	}
	return v
}

func intOr(v any, fallback int) int {
	if v == nil {
		return fallback
	}
	f := number(v, math.NaN())
	if math.IsNaN(f) {
		return fallback
	}
	return int(f)
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// stringList converts an array of scalars to strings; objects and nulls are
// dropped. ok is false when v is not an array.
func stringList(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		switch el.(type) {
		case string, float64, bool:
			out = append(out, toString(el))
		}
	}
	return out, true
}

func stringsOrEmpty(v any) []string {
	if list, ok := stringList(v); ok {
		return list
	}
	return []string{}
}

func oneOf(value string, allowed []string, fallback string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if slices.Contains(allowed, v) {
		return v
	}
	return fallback
}
