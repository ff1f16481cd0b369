package models

import (
	"math"
	"strconv"
	"strings"
)

// QR is an optional QR-code identifier. The service sends it either as a
// string or as a number; numbers are kept as their decimal text, so 5 and "5"
// are the same QR. The empty value means "no QR".
type QR string

// NoQR is the absent identifier.
const NoQR QR = ""

// QRFromInt returns the QR for a numeric identifier.
func QRFromInt(n int64) QR {
	return QR(strconv.FormatInt(n, 10))
}

// QRFromNumber normalizes a JSON number literal. Integer literals are kept
// verbatim; other values are rendered the shortest way that round-trips, so
// 5.0 becomes "5".
func QRFromNumber(lit string) QR {
	if !strings.ContainsAny(lit, ".eE") {
		return QR(lit)
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return QR(lit)
	}
	if math.Abs(f) < 1e21 {
		return QR(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return QR(strconv.FormatFloat(f, 'g', -1, 64))
}

func (q QR) IsSet() bool { return q != NoQR }

func (q QR) String() string { return string(q) }

// Int parses the identifier the way a lenient integer parse would: leading
// whitespace, an optional sign, then as many decimal digits as present.
// "05" and "5abc" both give 5; "abc" gives false.
func (q QR) Int() (int64, bool) {
	return ParseLeadingInt(string(q))
}

// ParseLeadingInt parses the integer prefix of s. It reports false when s has
// no leading digits. Values that overflow int64 saturate.
func ParseLeadingInt(s string) (int64, bool) {
	neg, digits, ok := leadingDigits(s)
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// digits only, so the error is a range error
		n = math.MaxInt64
		if neg {
			return math.MinInt64, true
		}
	}
	if neg {
		n = -n
	}
	return n, true
}

// ParseLeadingFloat is ParseLeadingInt without the int64 range: the integer
// prefix is read as a float64, so "99999999999999999999" gives 1e20.
func ParseLeadingFloat(s string) (float64, bool) {
	neg, digits, ok := leadingDigits(s)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		// only a range error is possible for a digit string
		f = math.Inf(1)
	}
	if neg {
		f = -f
	}
	return f, true
}

// leadingDigits splits s into its sign and the run of decimal digits after
// leading whitespace.
func leadingDigits(s string) (neg bool, digits string, ok bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return false, "", false
	}
	return neg, s[:end], true
}
