package pack

import (
	"io"
	"log"
	"os"
)

// Logger is the logging interface used by the middleware, abstracted
// so callers can plug in the logger of their choice.
type Logger interface {
	Errorf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Debugf(format string, v ...interface{})
}

// NewLogger create a Logger wrapping the standard log library.
func NewLogger(output io.Writer, prefix string, flag int) Logger {
	return &logger{l: log.New(output, prefix, flag)}
}

// NewLoggerFromStandardLogger create a Logger from the standard log.Logger.
func NewLoggerFromStandardLogger(l *log.Logger) Logger {
	return &logger{l: l}
}

func createDefaultLogger() Logger {
	return NewLogger(os.Stderr, "", log.Ldate|log.Lmicroseconds)
}

var _ Logger = (*logger)(nil)

type disableLogger struct{}

func (l *disableLogger) Errorf(format string, v ...interface{}) {}
func (l *disableLogger) Warnf(format string, v ...interface{})  {}
func (l *disableLogger) Debugf(format string, v ...interface{}) {}

type logger struct {
	l *log.Logger
}

func (l *logger) Errorf(format string, v ...interface{}) {
	l.output("ERROR", format, v...)
}

func (l *logger) Warnf(format string, v ...interface{}) {
	l.output("WARN", format, v...)
}

func (l *logger) Debugf(format string, v ...interface{}) {
	l.output("DEBUG", format, v...)
}

func (l *logger) output(level, format string, v ...interface{}) {
	format = level + " [pack] " + format
	if len(v) == 0 {
		l.l.Print(format)
		return
	}
	l.l.Printf(format, v...)
}
