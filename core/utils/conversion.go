package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats, strings, and byte slices.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int16:
		return int(v)
	case int8:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case uint16:
		return int(v)
	case uint8:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		i, _ := strconv.Atoi(v)
		return i
	case []byte:
		i, _ := strconv.Atoi(string(v))
		return i
	default:
		s := fmt.Sprintf("%v", v)
		i, _ := strconv.Atoi(s)
		return i
	}
}

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

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return ToInt(v) == 1
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		s := string(v)
		return s == "1" || strings.ToLower(s) == "true"
	default:
		return false
	}
}

// ToDecimal converts a cell value to a decimal. Strings accept either a dot
// or a comma as the decimal separator and the other one as a thousands
// separator ("1,234.5" and "1.234,5"). A lone separator is the decimal one,
// unless it repeats ("1.234.567").
func ToDecimal(val any) (decimal.Decimal, error) {
	switch v := val.(type) {
	case nil:
		return decimal.Zero, fmt.Errorf("empty value")
	case decimal.Decimal:
		return v, nil
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return decimal.NewFromInt(int64(ToInt(v))), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	default:
		s := strings.TrimSpace(ToString(v))
		if s == "" {
			return decimal.Zero, fmt.Errorf("empty value")
		}
		n, ok := plainNumber(s)
		if !ok {
			return decimal.Zero, fmt.Errorf("invalid number %q", s)
		}
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid number %q", s)
		}
		return d, nil
	}
}

// plainNumber rewrites s with a dot decimal separator and no grouping.
func plainNumber(s string) (string, bool) {
	s = strings.ReplaceAll(s, " ", "")
	dot, comma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")

	var group, point string
	switch {
	case dot >= 0 && comma >= 0:
		if dot > comma {
			group, point = ",", "."
		} else {
			group, point = ".", ","
		}
	case strings.Count(s, ".") > 1:
		group = "."
	case strings.Count(s, ",") > 1:
		group = ","
	case comma >= 0:
		point = ","
	}

	intPart, frac := s, ""
	if point != "" {
		i := strings.LastIndex(s, point)
		intPart, frac = s[:i], s[i+1:]
		if strings.Contains(frac, group) && group != "" {
			return "", false
		}
	}
	if group != "" {
		groups := strings.Split(intPart, group)
		for i, g := range groups {
			if i > 0 && len(g) != 3 {
				return "", false
			}
		}
		intPart = strings.Join(groups, "")
	}
	if point == "" {
		return intPart, true
	}
	return intPart + "." + frac, true
}
