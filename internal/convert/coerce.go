package convert

import (
	"fmt"
	"strconv"
	"strings"
)

/********** tiny coercion helpers **********/

// asFloat: numeric value from a decoded-JSON field (float64/int/string).
// Anything unparsable coerces to 0, matching the engine's no-throw policy.
func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", "."))
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}

// leadingInt parses the leading integer of a value's string form, so
// "32 sqm" -> 32 and 4.9 -> 4. Defaults to 0.
func leadingInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	case string:
		s := strings.TrimSpace(t)
		i := 0
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i {
			return 0
		}
		n, err := strconv.Atoi(s[:j])
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// asString renders scalars the way the wire contract expects ("4.5", "text");
// nil and composite values render empty.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	}
	return fmt.Sprintf("%v", v)
}

// truthy mirrors the upstream extractor's presence semantics: nil, false,
// zero numbers and empty strings count as absent; objects and arrays count
// as present.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case string:
		return t != ""
	}
	return true
}

func lookup(m map[string]any, key string) any {
	if m == nil {
		return nil
	}
	return m[key]
}
