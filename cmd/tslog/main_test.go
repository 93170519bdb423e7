package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creack/pty"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// inputFile returns a redirected stdin holding content.
func inputFile(t *testing.T, content string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin *os.File, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newRootCmd(args, stdin, &stdout, &stderr).Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRun_WritesOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.log")

	res := execute(t, inputFile(t, "a\nb\n"),
		"--output="+out, "--no-print", "--format='T'", "--brackets=none", "--prefix=1")
	require.NoError(t, res.err)

	require.Equal(t, "Ta\nTb\n", readFile(t, out))
	require.Empty(t, res.stdout)
	require.Empty(t, res.stderr)
}

func TestRun_AliasesAndLineBreak(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.log")

	res := execute(t, inputFile(t, "a\r\nb"),
		"--output-file="+out, "--utc-date", "-n", "--format='T'", "--brackets=none", "--prefix=1", "--line-break=rn")
	require.NoError(t, res.err)

	require.Equal(t, "\r\nTa\r\nTb", readFile(t, out))
}

func TestRun_EchoesToConsole(t *testing.T) {
	res := execute(t, inputFile(t, "hello\n"), "--format='T'", "--brackets=round", "--prefix=5")
	require.NoError(t, res.err)

	require.Equal(t, "(T)  hello\n", res.stdout)
}

func TestRun_DefaultWidthPadsPrefix(t *testing.T) {
	res := execute(t, inputFile(t, "x"), "--format='T'")
	require.NoError(t, res.err)

	require.Equal(t, "[T]"+strings.Repeat(" ", 10)+"x", res.stdout)
}

func TestRun_CombinedShortFlags(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, "{3}", "run.log")

	res := execute(t, inputFile(t, "x\n"), "-un", "--output-directory="+template, "--format='T'", "--brackets=none")
	require.NoError(t, res.err)
	require.Empty(t, res.stdout)

	matches, err := filepath.Glob(filepath.Join(dir, "*", "run.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "T"+strings.Repeat(" ", 12)+"x\n", readFile(t, matches[0]))
}

func TestRun_NowhereToOutput(t *testing.T) {
	stdin := inputFile(t, "never read\n")

	res := execute(t, stdin, "-n")
	require.ErrorIs(t, res.err, errNowhere)

	offset, err := stdin.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	require.Zero(t, offset, "input must not be consumed")
}

func TestRun_InteractiveInputDisablesEcho(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminal not available: %v", err)
	}
	defer func() { _ = ptmx.Close() }()
	defer func() { _ = tty.Close() }()

	res := execute(t, tty)
	require.ErrorIs(t, res.err, errNowhere)
	require.Contains(t, res.stderr, "Console input is not redirected")
}

func TestRun_ReportsUnknownArguments(t *testing.T) {
	// An unknown flag swallows a following bare value, so "stray" goes first.
	res := execute(t, inputFile(t, "x\n"), "stray", "--bogus=1", "-x", "--format='T'", "--brackets=none", "--prefix=0")
	require.NoError(t, res.err)

	require.Contains(t, res.stderr, "arg=--bogus")
	require.Contains(t, res.stderr, "arg=-x")
	require.Contains(t, res.stderr, "arg=stray")
	require.Equal(t, "Tx\n", res.stdout)
}

func TestRun_InvalidValuesFallBackToDefaults(t *testing.T) {
	res := execute(t, inputFile(t, "x"), "--format='T'", "--brackets=diamond", "--prefix=999", "--line-break=crlf")
	require.NoError(t, res.err)

	require.Equal(t, "[T]"+strings.Repeat(" ", 10)+"x", res.stdout)
	require.Contains(t, res.stderr, "unknown brackets type")
	require.Contains(t, res.stderr, "unsupported prefix width")
	require.Contains(t, res.stderr, "unknown line-break type")
}

func TestRun_Help(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.log")

	res := execute(t, inputFile(t, "x\n"), "--help", "--output="+out)
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Usage:")
	require.Contains(t, res.stdout, "--line-break")

	_, err := os.Stat(out)
	require.True(t, os.IsNotExist(err), "help must not open outputs")
}

func TestRun_EnvironmentVariables(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.log")
	t.Setenv("TSLOG_OUTPUT", out)
	t.Setenv("TSLOG_NO_PRINT", "true")
	t.Setenv("TSLOG_LINE_BREAK", "n")
	t.Setenv("TSLOG_BRACKETS", "none")

	res := execute(t, inputFile(t, "a"), "--format='T'", "--prefix=1")
	require.NoError(t, res.err)

	require.Equal(t, "\nTa", readFile(t, out))
}

func TestRun_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TSLOG_BRACKETS", "curly")

	res := execute(t, inputFile(t, "a"), "--format='T'", "--prefix=0", "--brackets=angle")
	require.NoError(t, res.err)
	require.Equal(t, "<T>a", res.stdout)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.log")
	cfgFile := filepath.Join(dir, "tslog.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(
		"output: "+out+"\n"+
			"no-print: true\n"+
			"brackets: round\n"+
			"format: \"'T'\"\n"+
			"prefix: 1\n"), 0644))

	res := execute(t, inputFile(t, "a\n"), "--config="+cfgFile)
	require.NoError(t, res.err)

	require.Equal(t, "(T)a\n", readFile(t, out))
}

func TestRun_MissingConfigFile(t *testing.T) {
	res := execute(t, inputFile(t, "a\n"), "--config="+filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "failed to read config file")
}

func TestRun_OutputOpenFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "out.log")

	res := execute(t, inputFile(t, "a\n"), "--output="+out, "-n")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "failed to open output file")
	require.Contains(t, res.err.Error(), out)
}

func TestUnknownFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetNormalizeFunc(normalizeFlagName)
	fs.String("output", "", "")
	fs.BoolP("utc", "u", false, "")
	fs.BoolP("no-print", "n", false, "")

	got := unknownFlags(fs, []string{
		"--output=a", "--output-file=b", "--utc-date", "-un",
		"--nope", "--also=1", "-z", "-uä", "plain", "--", "--after",
	})
	require.Equal(t, []string{"--nope", "--also", "-z", "-ä"}, got)
}
