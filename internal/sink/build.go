package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"tslog/internal/config"
)

// ConsoleName is the name of the echo destination.
const ConsoleName = "console"

// Build opens the destinations enabled in cfg: console echo, the output file
// and the dated output file, in that order. The console writer is borrowed;
// files are owned by the returned Set. now fills the dated path template.
func Build(cfg config.Config, console io.Writer, now time.Time) (*Set, error) {
	set := NewSet()

	if cfg.Echo {
		set.Add(ConsoleName, console)
	}

	if cfg.OutputFile != "" {
		f, err := openFile(cfg.OutputFile, cfg.RotateSizeMB)
		if err != nil {
			_ = set.Close()
			return nil, fmt.Errorf("failed to open output file: %w", err)
		}
		set.AddOwned(cfg.OutputFile, f)
	}

	if cfg.OutputDir != "" {
		if cfg.UseUTC {
			now = now.UTC()
		} else {
			now = now.Local()
		}
		path, err := ExpandPath(cfg.OutputDir, now)
		if err != nil {
			_ = set.Close()
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			_ = set.Close()
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		f, err := openFile(path, cfg.RotateSizeMB)
		if err != nil {
			_ = set.Close()
			return nil, fmt.Errorf("failed to open dated output file: %w", err)
		}
		set.AddOwned(path, f)
	}

	return set, nil
}

// openFile creates or truncates path. With a rotation size the file is
// appended to and rotated by lumberjack instead.
func openFile(path string, rotateSizeMB int) (io.WriteCloser, error) {
	if rotateSizeMB > 0 {
		l := &lumberjack.Logger{Filename: path, MaxSize: rotateSizeMB}
		// lumberjack opens lazily; an empty write surfaces open errors now.
		if _, err := l.Write(nil); err != nil {
			return nil, err
		}
		return l, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}
