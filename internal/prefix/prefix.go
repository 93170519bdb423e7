// Package prefix renders the timestamp written at the start of every line.
package prefix

import (
	"strings"
	"time"
	"unicode/utf8"

	"tslog/internal/config"
	"tslog/pkg/datefmt"
)

// Format returns the bracketed timestamp for now, right-padded with spaces to
// cfg.PrefixWidth. It never truncates.
func Format(now time.Time, cfg config.Config) string {
	s := bracketed(now, cfg)
	if pad := cfg.PrefixWidth - utf8.RuneCountInString(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Fit returns cfg with PrefixWidth raised to the length of the prefix
// rendered for now, capped at config.MaxPrefixWidth.
func Fit(cfg config.Config, now time.Time) config.Config {
	n := min(utf8.RuneCountInString(bracketed(now, cfg)), config.MaxPrefixWidth)
	if cfg.PrefixWidth < n {
		cfg.PrefixWidth = n
	}
	return cfg
}

func bracketed(now time.Time, cfg config.Config) string {
	if cfg.UseUTC {
		now = now.UTC()
	} else {
		now = now.Local()
	}
	return cfg.Brackets.Wrap(datefmt.Format(now, cfg.DateFormat))
}
