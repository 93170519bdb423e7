// Package datefmt formats time values with token based date and time patterns.
//
// # Pattern Language
//
// A pattern is a sequence of tokens. A token is a run of the same letter; its
// length selects the rendering. Everything that is not a token is copied to
// the output unchanged.
//
// # Tokens
//
//   - d: day of month (1-31), dd: zero padded (01-31)
//   - ddd: abbreviated weekday (Mon), dddd: full weekday (Monday)
//   - M: month (1-12), MM: zero padded, MMM: abbreviated name (Jan), MMMM: full name
//   - y: year modulo 100 (7), yy: zero padded (07), yyy and longer: year padded to the run length
//   - h, hh: hour on a 12-hour clock; H, HH: hour on a 24-hour clock
//   - m, mm: minute; s, ss: second
//   - f to fffffffff: fraction of a second, truncated to the run length
//   - F to FFFFFFFFF: like f but trailing zeros are removed. If nothing is
//     left, a directly preceding '.' is removed too.
//   - t: first letter of AM/PM, tt: AM or PM
//   - z: UTC offset in hours (+2), zz: zero padded (+02), zzz: with minutes (+02:00)
//   - K: "Z" for UTC, otherwise the offset like zzz
//   - g, gg: era (A.D.)
//   - ':' and '/': time and date separator
//
// # Literals
//
//   - 'text' or "text": copied verbatim. A backslash inside quotes escapes the next byte.
//   - \c: the byte c is copied verbatim.
//   - %c: c is formatted as a single-letter token. "%d" prints the day without padding.
//
// # Standard Patterns
//
// A pattern consisting of exactly one of the letters below expands to a
// predefined pattern:
//
//	d  MM/dd/yyyy
//	D  dddd, dd MMMM yyyy
//	f  dddd, dd MMMM yyyy HH:mm
//	F  dddd, dd MMMM yyyy HH:mm:ss
//	g  MM/dd/yyyy HH:mm
//	G  MM/dd/yyyy HH:mm:ss
//	m  MMMM dd (M is the same)
//	o  yyyy-MM-ddTHH:mm:ss.fffffffK (O is the same)
//	r  ddd, dd MMM yyyy HH:mm:ss GMT in UTC (R is the same)
//	s  yyyy-MM-ddTHH:mm:ss
//	t  HH:mm
//	T  HH:mm:ss
//	u  yyyy-MM-dd HH:mm:ssZ in UTC
//	U  dddd, dd MMMM yyyy HH:mm:ss in UTC
//	y  yyyy MMMM (Y is the same)
//
// # Examples
//
//	HH:mm:ss.f        14:05:09.3
//	yyyy-MM-dd HH:mm  2025-01-07 14:05
//	dd MMM 'at' h tt  07 Jan at 2 PM
package datefmt
