// Package logging builds the process-wide logger.
//
// Two sinks: a terminal sink on stderr whose level follows the -v count,
// and a file sink that always records info and above with timestamps. Both
// sit behind a single slog.Logger that is injected into components.
package logging

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TermLevel maps the repeatable -v flag to the terminal sink level:
// 0 shows errors only, 1 adds warnings, 2 or more shows everything.
// slog has no trace level, so trace-intent events log at Debug.
func TermLevel(verbosity int) log.Level {
	switch verbosity {
	case 0:
		return log.ErrorLevel
	case 1:
		return log.WarnLevel
	default:
		return log.DebugLevel
	}
}

// New builds the logger. The file sink appends to logFile and rotates by
// size; an empty logFile disables it.
func New(verbosity int, logFile string) *slog.Logger {
	term := log.NewWithOptions(os.Stderr, log.Options{
		Level: TermLevel(verbosity),
	})

	if logFile == "" {
		return slog.New(term)
	}

	file := slog.NewTextHandler(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
	}, &slog.HandlerOptions{Level: slog.LevelInfo})

	return slog.New(NewMultiHandler(term, file))
}
