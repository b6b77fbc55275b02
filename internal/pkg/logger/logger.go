package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

var base = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the process-wide logger. level falls back to info when it
// does not parse.
func Init(service, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	base = zerolog.New(os.Stderr).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// L returns the base logger.
func L() *zerolog.Logger {
	return &base
}

// Ctx returns a logger carrying the trace and span ids of the active span,
// so log lines can be correlated with the Jaeger trace.
func Ctx(ctx context.Context) *zerolog.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return &base
	}
	l := base.With().
		Str("trace_id", sc.TraceID().String()).
		Str("span_id", sc.SpanID().String()).
		Logger()
	return &l
}
