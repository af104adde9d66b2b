package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLoggerProperties are the properties used to create
// a logrus backed Logger
type LogrusLoggerProperties struct {
	// Level is the minimum level of the entries that are emitted
	Level logrus.Level

	// Output is where the entries are written. It defaults to stderr
	Output io.Writer

	// Format is either "text" or "json". It defaults to "text"
	Format string
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

// LogrusLogger is an implementation of Logger that uses logrus
type LogrusLogger struct {
	logger *logrus.Logger
}

// NewLogrus creates a new logrus backed Logger
func NewLogrus(props LogrusLoggerProperties) *LogrusLogger {
	logger := logrus.New()
	logger.SetLevel(props.Level)

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if props.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	return &LogrusLogger{logger: logger}
}

func (l *LogrusLogger) entry(ctx context.Context, loggable Loggable) *logrus.Entry {
	fields := logrusFields{}
	if loggable != nil {
		loggable.Log(fields)
	}

	if traceID := GetTraceID(ctx); traceID != 0 {
		fields.Add(string(ContextKeyTraceID), traceID)
	}

	return l.logger.WithFields(logrus.Fields(fields))
}

// Debug implementation of Logger
func (l *LogrusLogger) Debug(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Debug(msg)
}

// Info implementation of Logger
func (l *LogrusLogger) Info(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Info(msg)
}

// Warn implementation of Logger
func (l *LogrusLogger) Warn(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Warn(msg)
}

// Error implementation of Logger
func (l *LogrusLogger) Error(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Error(msg)
}
