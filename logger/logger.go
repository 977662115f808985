// Package logger configures the zerolog logger used for diagnostics.
// Diagnostics go to stderr so they never mix with the report on stdout.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.Nop()

// Init sets up the console logger writing to w. Only warnings and errors
// are shown unless debug is set.
func Init(w io.Writer, debug bool) {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		FormatLevel: func(i interface{}) string {
			s, _ := i.(string)
			return colorizeLevel(s)
		},
		FormatMessage: func(i interface{}) string {
			s, _ := i.(string)
			return colorize(s, cyan)
		},
		FormatFieldName: func(i interface{}) string {
			return colorize(fmt.Sprint(i)+":", gray)
		},
		FormatFieldValue: func(i interface{}) string {
			switch v := i.(type) {
			case string:
				return colorize(v, blue)
			case json.Number:
				return colorize(v.String(), blue)
			default:
				return colorize(fmt.Sprint(v), blue)
			}
		},
	}

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// ANSI color codes
const (
	gray  = "\x1b[37m"
	blue  = "\x1b[34m"
	cyan  = "\x1b[36m"
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

func colorize(s, color string) string {
	return color + s + reset
}

func colorizeLevel(level string) string {
	switch level {
	case "debug":
		return colorize("DBG", gray)
	case "info":
		return colorize("INF", blue)
	case "warn":
		return colorize("WRN", cyan)
	case "error":
		return colorize("ERR", red)
	default:
		return colorize(level, blue)
	}
}

// Get returns the logger instance
func Get() zerolog.Logger {
	return log
}

// WithComponent returns a child logger tagged with the component name.
func WithComponent(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
