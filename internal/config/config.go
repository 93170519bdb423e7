package config

import (
	"fmt"
	"log/slog"
	"strconv"
)

// MaxPrefixWidth is the widest prefix column that can be configured.
const MaxPrefixWidth = 255

// DefaultDateFormat renders hours, minutes, seconds and tenths.
const DefaultDateFormat = "HH:mm:ss.f"

// Config holds the resolved settings of one run. It is passed by value and
// not changed once processing starts.
type Config struct {
	DateFormat  string
	UseUTC      bool
	Brackets    BracketStyle
	PrefixWidth int
	LineBreak   LineBreakMode
	Echo        bool

	OutputFile string
	// OutputDir is a path template, see sink.ExpandPath.
	OutputDir string
	// RotateSizeMB rotates file outputs at this size. 0 disables rotation.
	RotateSizeMB int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		DateFormat:  DefaultDateFormat,
		Brackets:    BracketsSquare,
		PrefixWidth: 13,
		LineBreak:   LineBreakUnmodified,
		Echo:        true,
	}
}

// Outputs counts the enabled destinations.
func (c Config) Outputs() int {
	n := 0
	if c.Echo {
		n++
	}
	if c.OutputFile != "" {
		n++
	}
	if c.OutputDir != "" {
		n++
	}
	return n
}

// Options are unvalidated settings as collected from flags, environment and
// config file. Empty strings mean "not set".
type Options struct {
	OutputFile string
	OutputDir  string
	Format     string
	UTC        bool
	Brackets   string
	Prefix     string
	LineBreak  string
	NoPrint    bool
	RotateSize string
}

// Resolve applies opts on top of Default. Invalid values are reported to
// logger and leave the default in place.
func Resolve(opts Options, logger *slog.Logger) Config {
	cfg := Default()

	cfg.OutputFile = opts.OutputFile
	cfg.OutputDir = opts.OutputDir
	cfg.UseUTC = opts.UTC
	cfg.Echo = !opts.NoPrint

	if opts.Format != "" {
		cfg.DateFormat = opts.Format
	}

	if opts.Brackets != "" {
		if style, err := ParseBrackets(opts.Brackets); err != nil {
			logger.Warn("Ignoring brackets option", "error", err, "default", cfg.Brackets)
		} else {
			cfg.Brackets = style
		}
	}

	if opts.Prefix != "" {
		if width, err := ParsePrefixWidth(opts.Prefix); err != nil {
			logger.Warn("Ignoring prefix option", "error", err, "default", cfg.PrefixWidth)
		} else {
			cfg.PrefixWidth = width
		}
	}

	if opts.LineBreak != "" {
		if mode, err := ParseLineBreak(opts.LineBreak); err != nil {
			logger.Warn("Ignoring line-break option", "error", err, "default", cfg.LineBreak)
		} else {
			cfg.LineBreak = mode
		}
	}

	if opts.RotateSize != "" {
		if size, err := strconv.Atoi(opts.RotateSize); err != nil || size < 0 {
			logger.Warn("Ignoring rotate-size option, expected megabytes", "value", opts.RotateSize)
		} else {
			cfg.RotateSizeMB = size
		}
	}

	return cfg
}

// ParsePrefixWidth parses a prefix column width between 0 and MaxPrefixWidth.
func ParsePrefixWidth(s string) (int, error) {
	width, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("unsupported prefix width %q, must be 0-%d", s, MaxPrefixWidth)
	}
	return int(width), nil
}
