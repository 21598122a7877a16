package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/ConserveLee/zoot/internal/constants"

	"fyne.io/fyne/v2/data/binding"
)

// LogLevel defines the severity of the log
type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelError
	LevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelDebug:
		return "DEBUG"
	default:
		return "INFO"
	}
}

// AppLogger handles application logging to UI and console
type AppLogger struct {
	dataBinding binding.StringList
	console     io.Writer
	debug       atomic.Bool
	now         func() time.Time
}

// NewAppLogger creates a new logger instance. data may be nil for console-only logging.
func NewAppLogger(data binding.StringList) *AppLogger {
	return &AppLogger{
		dataBinding: data,
		console:     os.Stdout,
		now:         time.Now,
	}
}

// SetConsole redirects console output (debug lines and a copy of every entry)
func (l *AppLogger) SetConsole(w io.Writer) {
	l.console = w
}

// SetDebug turns debug output on or off
func (l *AppLogger) SetDebug(on bool) {
	l.debug.Store(on)
}

// DebugEnabled reports whether Debug lines are printed
func (l *AppLogger) DebugEnabled() bool {
	return l.debug.Load()
}

// Data returns the binding the UI log list reads from
func (l *AppLogger) Data() binding.StringList {
	return l.dataBinding
}

// Info logs an informational message
func (l *AppLogger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Error logs an error message
func (l *AppLogger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Debug logs a debug message to the console only (to keep UI clean)
func (l *AppLogger) Debug(format string, args ...interface{}) {
	if !l.debug.Load() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.console, "[DEBUG] [%s] %s\n", l.now().Format("15:04:05"), msg)
}

// log handles the formatting and appending
func (l *AppLogger) log(level LogLevel, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	formattedMsg := fmt.Sprintf("[%s] %s: %s", l.now().Format("15:04:05"), level, msg)
	fmt.Fprintln(l.console, formattedMsg)

	if l.dataBinding == nil {
		return
	}
	l.dataBinding.Append(formattedMsg)

	// Keep log size manageable
	list, _ := l.dataBinding.Get()
	if len(list) > constants.MaxLogLines {
		l.dataBinding.Set(list[len(list)-constants.MaxLogLines:])
	}
}
