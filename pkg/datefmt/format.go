package datefmt

import (
	"strconv"
	"time"
)

// maxFraction is the number of fractional second digits a time.Time carries.
const maxFraction = 9

const roundTrip = "yyyy'-'MM'-'dd'T'HH':'mm':'ss'.'fffffffK"

// standard maps single-letter patterns to the patterns they stand for.
var standard = map[byte]string{
	'd': "MM/dd/yyyy",
	'D': "dddd, dd MMMM yyyy",
	'f': "dddd, dd MMMM yyyy HH:mm",
	'F': "dddd, dd MMMM yyyy HH:mm:ss",
	'g': "MM/dd/yyyy HH:mm",
	'G': "MM/dd/yyyy HH:mm:ss",
	'm': "MMMM dd",
	'M': "MMMM dd",
	'o': roundTrip,
	'O': roundTrip,
	'r': "ddd, dd MMM yyyy HH':'mm':'ss 'GMT'",
	'R': "ddd, dd MMM yyyy HH':'mm':'ss 'GMT'",
	's': "yyyy'-'MM'-'dd'T'HH':'mm':'ss",
	't': "HH:mm",
	'T': "HH:mm:ss",
	'u': "yyyy'-'MM'-'dd HH':'mm':'ss'Z'",
	'U': "dddd, dd MMMM yyyy HH:mm:ss",
	'y': "yyyy MMMM",
	'Y': "yyyy MMMM",
}

// Format returns t rendered according to pattern. See the package
// documentation for the pattern language.
func Format(t time.Time, pattern string) string {
	return string(AppendFormat(nil, t, pattern))
}

// AppendFormat is like Format but appends the result to b.
func AppendFormat(b []byte, t time.Time, pattern string) []byte {
	if len(pattern) == 1 {
		if expanded, ok := standard[pattern[0]]; ok {
			switch pattern[0] {
			case 'r', 'R', 'u', 'U':
				t = t.UTC()
			}
			pattern = expanded
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch c {
		case '\'', '"':
			var n int
			b, n = appendQuoted(b, pattern[i:])
			i += n
		case '\\':
			if i+1 < len(pattern) {
				b = append(b, pattern[i+1])
				i += 2
				continue
			}
			b = append(b, c)
			i++
		case '%':
			if i+1 < len(pattern) {
				b = appendToken(b, t, pattern[i+1], 1)
				i += 2
				continue
			}
			b = append(b, c)
			i++
		default:
			n := runLength(pattern, i)
			b = appendToken(b, t, c, n)
			i += n
		}
	}
	return b
}

// runLength counts how often s[i] repeats starting at i.
func runLength(s string, i int) int {
	n := 1
	for i+n < len(s) && s[i+n] == s[i] {
		n++
	}
	return n
}

// appendQuoted copies the quoted literal at the start of s and reports how
// many bytes of s it consumed. An unterminated literal runs to the end.
func appendQuoted(b []byte, s string) ([]byte, int) {
	quote := s[0]
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case c == quote:
			return b, i + 1
		case c == '\\' && i+1 < len(s):
			i++
			b = append(b, s[i])
		default:
			b = append(b, c)
		}
	}
	return b, len(s)
}

func appendToken(b []byte, t time.Time, c byte, n int) []byte {
	switch c {
	case 'd':
		switch n {
		case 1, 2:
			return appendNumber(b, t.Day(), n)
		case 3:
			return append(b, t.Weekday().String()[:3]...)
		default:
			return append(b, t.Weekday().String()...)
		}
	case 'M':
		switch n {
		case 1, 2:
			return appendNumber(b, int(t.Month()), n)
		case 3:
			return append(b, t.Month().String()[:3]...)
		default:
			return append(b, t.Month().String()...)
		}
	case 'y':
		year := t.Year()
		if n <= 2 {
			return appendNumber(b, year%100, n)
		}
		return appendPadded(b, year, n)
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return appendNumber(b, hour, n)
	case 'H':
		return appendNumber(b, t.Hour(), n)
	case 'm':
		return appendNumber(b, t.Minute(), n)
	case 's':
		return appendNumber(b, t.Second(), n)
	case 'f', 'F':
		return appendFraction(b, t.Nanosecond(), n, c == 'F')
	case 't':
		designator := "AM"
		if t.Hour() >= 12 {
			designator = "PM"
		}
		if n == 1 {
			return append(b, designator[0])
		}
		return append(b, designator...)
	case 'z':
		_, offset := t.Zone()
		return appendOffset(b, offset, n)
	case 'K':
		for i := 0; i < n; i++ {
			if t.Location() == time.UTC {
				b = append(b, 'Z')
				continue
			}
			_, offset := t.Zone()
			b = appendOffset(b, offset, 3)
		}
		return b
	case 'g':
		return append(b, "A.D."...)
	}

	for i := 0; i < n; i++ {
		b = append(b, c)
	}
	return b
}

// appendNumber writes v unpadded for single-letter tokens and with two
// digits otherwise.
func appendNumber(b []byte, v, n int) []byte {
	if n == 1 {
		return strconv.AppendInt(b, int64(v), 10)
	}
	return appendPadded(b, v, 2)
}

func appendPadded(b []byte, v, width int) []byte {
	digits := strconv.Itoa(v)
	for i := len(digits); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, digits...)
}

func appendFraction(b []byte, nanos, n int, trim bool) []byte {
	n = min(n, maxFraction)
	var digits [maxFraction]byte
	for i := maxFraction - 1; i >= 0; i-- {
		digits[i] = byte('0' + nanos%10)
		nanos /= 10
	}

	d := digits[:n]
	if trim {
		for len(d) > 0 && d[len(d)-1] == '0' {
			d = d[:len(d)-1]
		}
		if len(d) == 0 {
			if len(b) > 0 && b[len(b)-1] == '.' {
				b = b[:len(b)-1]
			}
			return b
		}
	}
	return append(b, d...)
}

func appendOffset(b []byte, offset, n int) []byte {
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	hours, minutes := offset/3600, offset%3600/60

	b = append(b, sign)
	switch n {
	case 1:
		return strconv.AppendInt(b, int64(hours), 10)
	case 2:
		return appendPadded(b, hours, 2)
	default:
		b = appendPadded(b, hours, 2)
		b = append(b, ':')
		return appendPadded(b, minutes, 2)
	}
}
