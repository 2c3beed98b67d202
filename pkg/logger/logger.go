package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging interface used by the library.
type Logger interface {
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Debug(msg string, obj any)
	Error(msg string, obj any)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Debug(string, any) {}
func (NopLogger) Error(string, any) {}

type zeroLogger struct {
	zl zerolog.Logger
}

// NewWriterLogger builds a console logger that writes to an io.Writer.
// Debug entries are dropped unless verbose is set.
func NewWriterLogger(w io.Writer, verbose bool) Logger {
	if w == nil {
		return NopLogger{}
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
	return zeroLogger{zl: zl}
}

func (l zeroLogger) write(ev *zerolog.Event, msg string, obj any) {
	if obj != nil {
		ev = ev.Interface("obj", obj)
	}
	ev.Msg(msg)
}

func (l zeroLogger) Info(msg string, obj any)  { l.write(l.zl.Info(), msg, obj) }
func (l zeroLogger) Warn(msg string, obj any)  { l.write(l.zl.Warn(), msg, obj) }
func (l zeroLogger) Debug(msg string, obj any) { l.write(l.zl.Debug(), msg, obj) }
func (l zeroLogger) Error(msg string, obj any) { l.write(l.zl.Error(), msg, obj) }

// Debug writes a debug log when logger is non-nil.
func Debug(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Debug(msg, obj)
}

// Info writes an info log when logger is non-nil.
func Info(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Info(msg, obj)
}

// Warn writes a warning log when logger is non-nil.
func Warn(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, obj)
}

// Error writes an error log when logger is non-nil.
func Error(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Error(msg, obj)
}
