package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ToInt converts a scanned column value to int. Numeric kinds convert
// directly; strings and byte slices are parsed, accepting decimal text such
// as "4.00" from DECIMAL columns. Unparseable values yield 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case string:
		return parseInt(v)
	case []byte:
		return parseInt(string(v))
	}

	rv := reflect.ValueOf(val)
	switch {
	case rv.CanInt():
		return int(rv.Int())
	case rv.CanUint():
		return int(rv.Uint())
	case rv.CanFloat():
		return int(rv.Float())
	default:
		return parseInt(fmt.Sprintf("%v", val))
	}
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// ToString converts various types to string. nil becomes the empty string.
// Integral floats are rendered without a fractional part so numeric ids
// read from loosely typed columns stay stable.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToOptionalString converts val to a string pointer, keeping nil as nil.
func ToOptionalString(val any) *string {
	if val == nil {
		return nil
	}
	s := ToString(val)
	return &s
}
