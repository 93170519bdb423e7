package main

import (
	"strings"

	"github.com/spf13/pflag"
)

// flagAliases maps alternative long flag names to their canonical name.
var flagAliases = map[string]string{
	"output-file":      "output",
	"output-directory": "output-dir",
	"utc-date":         "utc",
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

// unknownFlags lists the arguments in args that look like flags but are not
// defined in fs. Parsing stops at "--".
func unknownFlags(fs *pflag.FlagSet, args []string) []string {
	var unknown []string
	for _, arg := range args {
		switch {
		case arg == "--":
			return unknown
		case strings.HasPrefix(arg, "--"):
			name, _, _ := strings.Cut(arg[2:], "=")
			if name == "" || fs.Lookup(name) == nil {
				unknown = append(unknown, "--"+name)
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			for _, c := range arg[1:] {
				if c >= 0x80 || fs.ShorthandLookup(string(c)) == nil {
					unknown = append(unknown, "-"+string(c))
				}
			}
		}
	}
	return unknown
}
