package calib

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// AbsentInt is the value MapCal tooling has always used to mean "no such
// field". It never appears in a valid calibration file, so a field that
// parses to it is reported absent as well.
const AbsentInt int64 = -0x7FFFFFFF

// AbsentFloat is AbsentInt as a float.
const AbsentFloat = float64(AbsentInt)

// Float is a numeric sub-field that may be absent.
type Float struct {
	Value float64
	Valid bool
}

// Or returns the value, or def when absent.
func (f Float) Or(def float64) float64 {
	if !f.Valid {
		return def
	}
	return f.Value
}

// Raw returns the value with the legacy sentinel standing in for absence.
func (f Float) Raw() float64 {
	return f.Or(AbsentFloat)
}

// Int is an integer sub-field that may be absent.
type Int struct {
	Value int64
	Valid bool
}

// Or returns the value, or def when absent.
func (i Int) Or(def int64) int64 {
	if !i.Valid {
		return def
	}
	return i.Value
}

// Raw returns the value with the legacy sentinel standing in for absence.
func (i Int) Raw() int64 {
	return i.Or(AbsentInt)
}

// leadingFloat matches the longest prefix strtod would consume: a decimal
// or hex float, inf[inity] or nan[(chars)], with an optional sign.
var leadingFloat = regexp.MustCompile(`^[+-]?(?:` +
	`(?i:infinity|inf|nan(?:\([0-9A-Za-z_]*\))?)` +
	`|0[xX](?:[0-9a-fA-F]+\.?[0-9a-fA-F]*|\.[0-9a-fA-F]+)(?:[pP][+-]?[0-9]+)?` +
	`|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?` +
	`)`)

// ParseFloat converts a sub-field the way the calibration files have always
// been read: leading whitespace is skipped, the longest numeric prefix is
// used and anything after it ignored. A non-empty string with no number
// yields 0. Only the empty string (or the sentinel) is absent.
func ParseFloat(s string) Float {
	if s == "" {
		return Float{}
	}
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	prefix := leadingFloat.FindString(s)
	if prefix == "" {
		return Float{Value: 0, Valid: true}
	}
	v := parsePrefix(prefix)
	if v == AbsentFloat {
		return Float{}
	}
	return Float{Value: v, Valid: true}
}

// parsePrefix converts a leadingFloat match. Overflow yields ±Inf, as
// strtod's HUGE_VAL.
func parsePrefix(prefix string) float64 {
	unsigned := strings.TrimLeft(prefix, "+-")
	if len(unsigned) >= 3 && strings.EqualFold(unsigned[:3], "nan") {
		return math.NaN()
	}
	if len(unsigned) > 1 && (unsigned[1] == 'x' || unsigned[1] == 'X') && !strings.ContainsAny(unsigned, "pP") {
		prefix += "p0"
	}
	v, _ := strconv.ParseFloat(prefix, 64)
	return v
}

// ParseInt parses s as a float and truncates toward zero.
func ParseInt(s string) Int {
	return truncate(ParseFloat(s))
}

func truncate(f Float) Int {
	if !f.Valid {
		return Int{}
	}
	var v int64
	switch {
	case math.IsNaN(f.Value):
		v = 0
	case f.Value >= math.MaxInt64:
		v = math.MaxInt64
	case f.Value <= math.MinInt64:
		v = math.MinInt64
	default:
		v = int64(f.Value)
	}
	if v == AbsentInt {
		return Int{}
	}
	return Int{Value: v, Valid: true}
}
