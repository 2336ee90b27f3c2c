package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IsNull reports whether a cell value is null. NaN floats count as null so
// values round-tripped through spreadsheet readers behave like true nulls.
func IsNull(val any) bool {
	if val == nil {
		return true
	}
	switch v := val.(type) {
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	}
	return false
}

// Float converts a cell value to float64 using explicit type switching.
// It handles standard numeric types and numeric strings. The second return
// is false for nulls and unparseable values.
func Float(val any) (float64, bool) {
	if IsNull(val) {
		return 0, false
	}
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int16:
		return float64(v), true
	case int8:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint8:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		f, err := strconv.ParseFloat(fmt.Sprintf("%v", v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
}

// Bool converts a cell value to bool. Spreadsheet readers return boolean
// cells as "TRUE"/"FALSE" strings, so string parsing is case-insensitive.
// The second return is false for nulls and unparseable values.
func Bool(val any) (bool, bool) {
	if IsNull(val) {
		return false, false
	}
	switch v := val.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
		if err != nil {
			return false, false
		}
		return b, true
	case []byte:
		return Bool(string(v))
	default:
		if f, ok := Float(val); ok {
			return f != 0, true
		}
		return false, false
	}
}

// Int converts a cell value to int, truncating floats. The second return is
// false for nulls and unparseable values.
func Int(val any) (int, bool) {
	f, ok := Float(val)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// String converts a cell value to its string form. Nulls convert to the
// empty string; callers that need to distinguish must check IsNull first.
func String(val any) string {
	if IsNull(val) {
		return ""
	}
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Equal compares two cell values for reconciliation purposes.
// Null equals null; a boolean on either side compares as a boolean, so a
// true produced by a transform matches the "TRUE" a workbook reader returns
// for the same cell; two numerics compare numerically so 5, 5.0 and "5" are
// the same value regardless of which reader produced them; everything else
// compares by string form.
func Equal(a, b any) bool {
	aNull, bNull := IsNull(a), IsNull(b)
	if aNull || bNull {
		return aNull == bNull
	}
	_, aIsBool := a.(bool)
	_, bIsBool := b.(bool)
	if aIsBool || bIsBool {
		ab, aOK := Bool(a)
		bb, bOK := Bool(b)
		return aOK && bOK && ab == bb
	}
	af, aOK := Float(a)
	bf, bOK := Float(b)
	if aOK && bOK {
		return af == bf
	}
	return String(a) == String(b)
}
