package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt64 converts query values, object metadata and option bag entries to int64.
// Anything unparseable yields 0.
func ToInt64(val any) int64 {
	switch v := val.(type) {
	case nil:
		return 0
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int16:
		return int64(v)
	case int8:
		return int64(v)
	case uint:
		return int64(v)
	case uint64:
		return int64(v)
	case uint32:
		return int64(v)
	case uint16:
		return int64(v)
	case uint8:
		return int64(v)
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		i, _ := strconv.ParseInt(strings.TrimSpace(ToString(v)), 10, 64)
		return i
	}
}

// ToInt is ToInt64 narrowed to int.
func ToInt(val any) int {
	return int(ToInt64(val))
}

// ToString converts various types to string. nil becomes the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool accepts true, 1 and (for query flags like ?fix) any casing of "true".
func ToBool(val any) bool {
	if b, ok := val.(bool); ok {
		return b
	}
	if _, ok := val.(string); !ok {
		if _, ok := val.([]byte); !ok {
			return ToInt64(val) == 1
		}
	}
	s := strings.TrimSpace(ToString(val))
	return s == "1" || strings.EqualFold(s, "true")
}
