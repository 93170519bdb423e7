package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tslog/internal/config"
	"tslog/internal/logging"
	"tslog/internal/prefix"
	"tslog/internal/processor"
	"tslog/internal/sink"
)

//go:embed help.txt
var helpText string

var errNowhere = errors.New("nowhere to output")

// newRootCmd builds the command for one invocation. Flags are layered over
// TSLOG_* environment variables and the config file by a dedicated viper
// instance.
func newRootCmd(args []string, stdin *os.File, stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:                "tslog",
		Short:              "Prefix every line of the standard input with a timestamp",
		Long:               helpText,
		SilenceUsage:       true,
		SilenceErrors:      true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, positional []string) error {
			configErr := loadConfig(v, cfgFile)
			logger := logging.New(stderr, logging.ParseLevel(v.GetString("log-level")))
			if configErr != nil {
				if cfgFile != "" {
					return configErr
				}
				logger.Warn("Ignoring config file", "error", configErr)
			}

			for _, flag := range unknownFlags(cmd.Flags(), args) {
				logger.Warn("Unknown argument", "arg", flag)
			}
			for _, arg := range positional {
				logger.Warn("Unknown argument, missing leading dash", "arg", arg)
			}

			return run(resolve(v, logger), stdin, stdout, logger)
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetGlobalNormalizationFunc(normalizeFlagName)

	defaults := config.Default()
	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.tslog.yaml)")
	flags.String("output", "", "write to this file, created or truncated")
	flags.String("output-dir", "", "write to a file whose path is a date template")
	flags.String("format", defaults.DateFormat, "date and time pattern of the prefix")
	flags.BoolP("utc", "u", false, "use UTC instead of local time")
	flags.String("brackets", defaults.Brackets.String(), "brackets around the prefix: none, round, square, curly, angle")
	flags.String("prefix", fmt.Sprint(defaults.PrefixWidth), "minimum width of the prefix column (0-255)")
	flags.String("line-break", "", "replace line breaks with r, n, rn or nr")
	flags.BoolP("no-print", "n", false, "do not echo to the console")
	flags.String("rotate-size", "", "append to output files and rotate them at this size in megabytes")
	flags.String("log-level", "info", "diagnostics level: debug, info, warn, error")
	_ = v.BindPFlags(flags)

	return cmd
}

func loadConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("TSLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".tslog")
		v.SetConfigType("yaml")
	}

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func resolve(v *viper.Viper, logger *slog.Logger) config.Config {
	return config.Resolve(config.Options{
		OutputFile: v.GetString("output"),
		OutputDir:  v.GetString("output-dir"),
		Format:     v.GetString("format"),
		UTC:        v.GetBool("utc"),
		Brackets:   v.GetString("brackets"),
		Prefix:     v.GetString("prefix"),
		LineBreak:  v.GetString("line-break"),
		NoPrint:    v.GetBool("no-print"),
		RotateSize: v.GetString("rotate-size"),
	}, logger)
}

// run prefixes stdin until EOF. Nothing is read when no destination is
// enabled.
func run(cfg config.Config, stdin *os.File, stdout io.Writer, logger *slog.Logger) error {
	now := time.Now()
	cfg = prefix.Fit(cfg, now)

	if cfg.Echo && !sink.Redirected(stdin) {
		cfg.Echo = false
		logger.Warn("Console input is not redirected, printing to console is disabled to prevent double-typed characters")
	}
	if cfg.Outputs() == 0 {
		return errNowhere
	}

	set, err := sink.Build(cfg, stdout, now)
	if err != nil {
		return err
	}
	logger.Debug("Processing input", "sinks", set.Names(), "format", cfg.DateFormat, "line-break", cfg.LineBreak)

	runErr := processor.New(cfg, set).Run(stdin)
	return errors.Join(runErr, set.Close())
}

func main() {
	if err := newRootCmd(os.Args[1:], os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tslog:", err)
		os.Exit(1)
	}
}
