// Package log wraps logrus with the small logging surface the application
// needs. The default logger discards everything: the browser owns the
// terminal, so log output only goes somewhere when the entry point points it
// at a file.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"pickd/internal/errors"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger together with the file it writes to, if any.
type Logger struct {
	l    *logrus.Logger
	file *os.File
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput directs log output at w.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.l.SetOutput(w)
	}
}

// WithJSON switches the logger to JSON output.
func WithJSON() Option {
	return func(l *Logger) {
		l.l.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyLevel: "level",
			},
		})
	}
}

// NewLogger creates a logger. Without options all output is discarded.
func NewLogger(opts ...Option) *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})
	if isDebug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	lg := &Logger{l: l}
	for _, opt := range opts {
		opt(lg)
	}
	return lg
}

func (l *Logger) Info(args ...interface{})                  { l.l.Info(args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.l.Infof(format, args...) }
func (l *Logger) Debug(args ...interface{})                 { l.l.Debug(args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.l.Debugf(format, args...) }
func (l *Logger) Warn(args ...interface{})                  { l.l.Warn(args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.l.Warnf(format, args...) }
func (l *Logger) Error(args ...interface{})                 { l.l.Error(args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.l.Errorf(format, args...) }

// With returns an entry carrying the given fields.
func (l *Logger) With(fields ...Field) *logrus.Entry {
	f := make(logrus.Fields, len(fields))
	for _, field := range fields {
		f[field.Key] = field.Value
	}
	return l.l.WithFields(f)
}

// WithError returns an entry annotated with err plus whatever structured
// detail the application error types carry.
func (l *Logger) WithError(err error) *logrus.Entry {
	entry := l.l.WithField("error", err)
	if err == nil {
		return entry
	}

	var appErr *errors.ApplicationError
	if errors.As(err, &appErr) {
		entry = entry.WithField("error_kind", int(appErr.Kind()))
	}
	var readErr *errors.ReadError
	if errors.As(err, &readErr) {
		entry = entry.WithField("path", readErr.Path())
		entry = entry.WithField("error_kind", int(readErr.Kind()))
	}
	var spawnErr *errors.SpawnError
	if errors.As(err, &spawnErr) {
		entry = entry.WithField("command", spawnErr.Command())
		entry = entry.WithField("error_kind", int(spawnErr.Kind()))
	}
	var termErr *errors.TerminalModeError
	if errors.As(err, &termErr) {
		entry = entry.WithField("op", termErr.Op())
		entry = entry.WithField("error_kind", int(termErr.Kind()))
	}
	return entry
}

// Close releases the logger's file, if one is open.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// SetDebug toggles debug logging. Loggers created afterwards inherit the
// setting; the global logger picks it up immediately.
func SetDebug(debug bool) {
	isDebug = debug
	if debug {
		logger.l.SetLevel(logrus.DebugLevel)
	} else {
		logger.l.SetLevel(logrus.InfoLevel)
	}
}

// Configure rebuilds the global logger with the given options.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// ToFile sends the global logger's output to the named file, creating it if
// necessary and appending if it already exists.
func ToFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	Configure(WithOutput(f))
	logger.file = f
	return nil
}

// Close releases the global logger's file, if one is open.
func Close() error {
	return logger.Close()
}

func Info(args ...interface{})                  { logger.Info(args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Debug(args ...interface{})                 { logger.Debug(args...) }
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
func Warn(args ...interface{})                  { logger.Warn(args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Error(args ...interface{})                 { logger.Error(args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }

// LogWithFields returns an entry on the global logger carrying fields.
func LogWithFields(fields ...Field) *logrus.Entry {
	return logger.With(fields...)
}

// LogWithError returns an entry on the global logger annotated with err.
func LogWithError(err error) *logrus.Entry {
	return logger.WithError(err)
}
