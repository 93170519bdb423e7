package sink

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ExpandPath substitutes the placeholders of a dated output path.
//
//	{0} day of month
//	{1} month
//	{2} day of year
//	{3} four digit year
//	{4} two digit year
//
// A placeholder may carry an alignment ({0,3} pads left, {0,-3} pads right)
// and, for the numeric fields, a zero padding format ({1:D2}). "{{" and "}}"
// produce literal braces.
func ExpandPath(template string, now time.Time) (string, error) {
	args := []any{
		now.Day(),
		int(now.Month()),
		now.YearDay(),
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", now.Year()%100),
	}

	var b strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("path template %q: unclosed placeholder at offset %d", template, i)
			}
			s, err := expandPlaceholder(template[i+1:i+end], args)
			if err != nil {
				return "", fmt.Errorf("path template %q: %w", template, err)
			}
			b.WriteString(s)
			i += end
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("path template %q: unmatched '}' at offset %d", template, i)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func expandPlaceholder(placeholder string, args []any) (string, error) {
	head, format, _ := strings.Cut(placeholder, ":")
	head, align, hasAlign := strings.Cut(head, ",")

	index, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || index < 0 || index >= len(args) {
		return "", fmt.Errorf("invalid placeholder index %q", head)
	}

	var s string
	switch v := args[index].(type) {
	case int:
		if s, err = formatInt(v, format); err != nil {
			return "", err
		}
	case string:
		s = v
	}

	if hasAlign {
		width, err := strconv.Atoi(strings.TrimSpace(align))
		if err != nil {
			return "", fmt.Errorf("invalid alignment %q", align)
		}
		s = alignField(s, width)
	}
	return s, nil
}

// formatInt supports the decimal format "D" with an optional minimum digit
// count.
func formatInt(v int, format string) (string, error) {
	if format == "" {
		return strconv.Itoa(v), nil
	}
	if format[0] != 'D' && format[0] != 'd' {
		return "", fmt.Errorf("unsupported format %q", format)
	}
	digits := 0
	if len(format) > 1 {
		n, err := strconv.Atoi(format[1:])
		if err != nil || n < 0 {
			return "", fmt.Errorf("unsupported format %q", format)
		}
		digits = n
	}
	return fmt.Sprintf("%0*d", digits, v), nil
}

func alignField(s string, width int) string {
	switch {
	case width > len(s):
		return strings.Repeat(" ", width-len(s)) + s
	case -width > len(s):
		return s + strings.Repeat(" ", -width-len(s))
	}
	return s
}
