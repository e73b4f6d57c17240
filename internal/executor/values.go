package executor

import (
	"strconv"
	"strings"
)

// Extracted value maps come from three different classifier tiers, so the
// same field may arrive as string, float64 (JSON numbers), int, or a nested
// object. These helpers normalize access; all of them treat missing and
// empty the same way.

// firstString returns the first non-empty string among keys. Numbers are
// formatted, so "quantity": 2 still reads as "2".
func firstString(values map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := values[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		}
	}
	return ""
}

// firstNumber returns the first parseable number among keys.
func firstNumber(values map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		switch v := values[k].(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// firstInt is firstNumber truncated to int.
func firstInt(values map[string]any, keys ...string) (int, bool) {
	f, ok := firstNumber(values, keys...)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// stringList reads a list-valued field. A bare string counts as a
// single-element list.
func stringList(values map[string]any, key string) []string {
	switch v := values[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	}
	return nil
}

// unwrap flattens one level of nesting: the generative tier sometimes wraps
// fields in an object named after the entity ({"shopping": {...}}).
func unwrap(values map[string]any, key string) map[string]any {
	if nested, ok := values[key].(map[string]any); ok {
		merged := make(map[string]any, len(values)+len(nested))
		for k, v := range values {
			if k != key {
				merged[k] = v
			}
		}
		for k, v := range nested {
			merged[k] = v
		}
		return merged
	}
	return values
}

// boolValue reads a bool-valued field; the second return reports presence.
func boolValue(values map[string]any, key string) (bool, bool) {
	switch v := values[key].(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "enabled", "yes":
			return true, true
		case "false", "off", "disabled", "no":
			return false, true
		}
	}
	return false, false
}

func intPtr(values map[string]any, keys ...string) *int {
	if n, ok := firstInt(values, keys...); ok {
		return &n
	}
	return nil
}

func floatPtr(values map[string]any, keys ...string) *float64 {
	if f, ok := firstNumber(values, keys...); ok {
		return &f
	}
	return nil
}
