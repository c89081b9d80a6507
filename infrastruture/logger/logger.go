// Package logger provides the colored, prefixed loggers used across the application.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/logrusorgru/aurora"
)

var ErrNilWriter = errors.New("logger needs a writer")

// Logger writes "[PREFIX] [LEVEL] message" lines with a colored prefix.
type Logger struct {
	out    *log.Logger
	prefix string
	au     aurora.Aurora
}

// Option configures a Logger.
type Option func(*Logger)

// WithoutColors disables ANSI colors, for files and tests.
func WithoutColors() Option {
	return func(l *Logger) {
		l.au = aurora.NewAurora(false)
	}
}

// WithFlags sets the standard log flags (date, time, ...).
func WithFlags(flags int) Option {
	return func(l *Logger) {
		l.out.SetFlags(flags)
	}
}

// New creates a logger that tags every line with prefix painted in color.
func New(prefix string, color aurora.Color, out io.Writer, opts ...Option) (*Logger, error) {
	if out == nil {
		return nil, ErrNilWriter
	}

	l := &Logger{
		out: log.New(out, "", log.LstdFlags),
		au:  aurora.NewAurora(true),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.prefix = l.au.Colorize(fmt.Sprintf("[%s]", prefix), color).String()

	return l, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(l.au.Green("[INFO]"), msg)
}

// Warning logs something unexpected that the caller recovered from.
func (l *Logger) Warning(msg string) {
	l.print(l.au.Yellow("[WARNING]"), msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(l.au.Red("[ERROR]"), msg)
}

func (l *Logger) print(level aurora.Value, msg string) {
	l.out.Printf("%s %s %s", l.prefix, level, msg)
}
