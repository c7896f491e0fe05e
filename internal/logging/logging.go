// Package logging points the process-wide logger at the console and,
// optionally, a rotating file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const HEADER = "${time_rfc3339} ${level} ${short_file}:${line}"

func ParseLevel(level string) (log.Lvl, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG, nil
	case "", "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return log.INFO, fmt.Errorf("unknown log level %q", level)
}

// Setup configures the global logger. console may be nil, e.g. when a
// terminal UI owns the screen. The returned closer flushes the file.
func Setup(level, dir string, maxSizeMB int, console io.Writer, name string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	log.SetHeader(HEADER)

	var writers []io.Writer
	if console != nil {
		writers = append(writers, console)
	}

	var file *lumberjack.Logger
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   filepath.Join(dir, name+".log"),
			MaxSize:    maxSizeMB, // MB
			MaxBackups: 3,
		}
		writers = append(writers, file)
	}

	switch len(writers) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(writers[0])
	default:
		log.SetOutput(io.MultiWriter(writers...))
	}

	if file == nil {
		return nopCloser{}, nil
	}
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
