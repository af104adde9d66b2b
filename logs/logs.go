package logs

import "context"

// Fields is the set of key value pairs attached to a log entry
type Fields interface {
	// Add a new field to the entry
	Add(key string, value interface{})
}

// Loggable is implemented by types that know how to describe themselves
// as a set of log fields
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a map based implementation of both Fields and Loggable
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for key, value := range f {
		fields.Add(key, value)
	}
}

// Logger is the interface used across the module to emit log entries
type Logger interface {
	Debug(ctx context.Context, msg string, loggable Loggable)
	Info(ctx context.Context, msg string, loggable Loggable)
	Warn(ctx context.Context, msg string, loggable Loggable)
	Error(ctx context.Context, msg string, loggable Loggable)
}

type contextKey string

// ContextKeyTraceID is the key under which the trace ID of an
// execution is kept in a context
const ContextKeyTraceID contextKey = "trace_id"

// WithTraceID returns a copy of ctx that carries the trace ID
func WithTraceID(ctx context.Context, traceID int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// GetTraceID returns the trace ID kept in the context or 0
// if there is none
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	traceID, ok := ctx.Value(ContextKeyTraceID).(int64)
	if !ok {
		return 0
	}

	return traceID
}
