package display

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// toFloat accepts Go numbers, json.Number and numeric strings.
func toFloat(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, ErrEmptyValue
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		return parseFloat(string(n))
	case string:
		return parseFloat(n)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidNumber
	}
	return f, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyValue
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidNumber
	}
	return f, nil
}

// toBool accepts bool, the numbers 0 and 1 and the usual textual spellings.
func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case nil:
		return false, ErrEmptyValue
	case bool:
		return b, nil
	case *bool:
		if b == nil {
			return false, ErrEmptyValue
		}
		return *b, nil
	case string:
		return parseBool(b)
	}

	f, err := toFloat(v)
	if err != nil {
		return false, err
	}
	switch f {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, ErrInvalidBool
}

func parseBool(s string) (bool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return false, ErrEmptyValue
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, ErrInvalidBool
	}
	return b, nil
}

// toTimestamp accepts time.Time, unix seconds and date strings. Zero values are
// reported as empty.
func (f *Formatter) toTimestamp(v any) (int64, error) {
	var ts int64
	switch t := v.(type) {
	case nil:
		return 0, ErrEmptyValue
	case time.Time:
		if t.IsZero() {
			return 0, ErrEmptyValue
		}
		ts = t.Unix()
	case *time.Time:
		if t == nil || t.IsZero() {
			return 0, ErrEmptyValue
		}
		ts = t.Unix()
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, ErrEmptyValue
		}
		parsed, err := f.parser.ParseDate(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidDate, err)
		}
		ts = parsed
	default:
		n, err := toFloat(v)
		if err != nil {
			return 0, err
		}
		if ts, err = toInt64(n); err != nil {
			return 0, err
		}
	}

	if ts == 0 {
		return 0, ErrEmptyValue
	}
	return ts, nil
}

// toSeconds accepts time.Duration and numbers of seconds.
func toSeconds(v any) (int64, error) {
	switch d := v.(type) {
	case time.Duration:
		return int64(d / time.Second), nil
	case *time.Duration:
		if d == nil {
			return 0, ErrEmptyValue
		}
		return int64(*d / time.Second), nil
	}

	n, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	return toInt64(n)
}

// toInt64 truncates n, rejecting values outside the int64 range.
func toInt64(n float64) (int64, error) {
	// float64(math.MaxInt64) rounds up to 2^63, which no longer fits.
	if n >= math.MaxInt64 || n < math.MinInt64 {
		return 0, ErrInvalidNumber
	}
	return int64(n), nil
}

// toStrings converts a slice or array of any element type into display strings. A
// single string counts as a one-item list.
func toStrings(items any) ([]string, error) {
	switch s := items.(type) {
	case nil:
		return nil, ErrEmptyValue
	case []string:
		return s, nil
	case string:
		if strings.TrimSpace(s) == "" {
			return nil, ErrEmptyValue
		}
		return []string{s}, nil
	}

	rv := reflect.ValueOf(items)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, items)
	}

	out := make([]string, rv.Len())
	for i := range out {
		out[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return out, nil
}
