// Package rlog is the engine's logging subsystem. It replaces the
// teacher's hand-rolled text_color_set/dw_printf pairing (textcolor.go)
// - which tagged every line with a severity-derived color but left the
// coloring itself unimplemented - with github.com/charmbracelet/log,
// keeping the same five severity concepts the teacher's dw_color_e
// enumerates: info, error, received-frame, transmitted-frame, debug.
package rlog

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Level mirrors the teacher's dw_color_e enum: one value per severity
// concept the engine logs, not per Go log-level, so call sites read
// rlog.Recv(...) / rlog.Xmit(...) the way the teacher's code reads
// text_color_set(DW_COLOR_REC) followed by dw_printf(...).
type Level int

const (
	LevelInfo Level = iota
	LevelError
	LevelRecv
	LevelXmit
	LevelDebug
)

var loggers = map[Level]*log.Logger{
	LevelInfo:  newLogger("INFO", log.InfoLevel, "63"),
	LevelError: newLogger("ERROR", log.ErrorLevel, "204"),
	LevelRecv:  newLogger("RECV", log.InfoLevel, "42"),
	LevelXmit:  newLogger("XMIT", log.InfoLevel, "212"),
	LevelDebug: newLogger("DEBUG", log.DebugLevel, "240"),
}

func newLogger(prefix string, level log.Level, color string) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	l.SetLevel(level)
	styles := log.DefaultStyles()
	styles.Levels[level] = styles.Levels[level].Foreground(lipgloss.Color(color))
	l.SetStyles(styles)
	return l
}

// SetMinLevel raises or lowers every logger's threshold at once, used
// at startup from the config's LogLevel field.
func SetMinLevel(level log.Level) {
	for _, l := range loggers {
		l.SetLevel(level)
	}
}

// ParseLevel maps a config string ("debug", "info", "error", ...) onto
// a charmbracelet/log level, defaulting to Info on an unknown name.
func ParseLevel(name string) log.Level {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func Info(msg string, kv ...any)  { loggers[LevelInfo].Info(msg, kv...) }
func Error(msg string, kv ...any) { loggers[LevelError].Error(msg, kv...) }
func Recv(msg string, kv ...any)  { loggers[LevelRecv].Info(msg, kv...) }
func Xmit(msg string, kv ...any)  { loggers[LevelXmit].Info(msg, kv...) }
func Debug(msg string, kv ...any) { loggers[LevelDebug].Debug(msg, kv...) }
