// Package logger sets up the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the shared logger instance. Init must be called before use;
// until then it writes to stderr with default settings.
var Log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the global logger. When file is non-empty, output also
// goes to a size-rotated log file next to the console writer.
func Init(level, file string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	var out io.Writer = console
	if file != "" {
		rotated := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    20, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = zerolog.MultiLevelWriter(console, rotated)
	}

	Log = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
