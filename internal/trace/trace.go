// Package trace reports otable's work to Datadog when OTABLE_TRACE=1.
// A parent process can pass its own span in DD_TRACE_ID and
// DD_SPAN_ID so that otable's spans nest under it. The tracer logs to
// OTABLE_TRACE_LOG, or /tmp/otable.dd.log by default.
package trace

import (
	"context"
	"os"

	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

var parent *SpanContext

var logger *fileLogger

// defaultLogPath is where the tracer logs unless OTABLE_TRACE_LOG is set.
const defaultLogPath = "/tmp/otable.dd.log"

// MaybeTrace starts the tracer if OTABLE_TRACE=1 and reports whether
// it did. The parent span variables are removed from the environment
// so that child processes (the pager) do not inherit them.
func MaybeTrace(serviceVersion string) bool {
	if os.Getenv("OTABLE_TRACE") != "1" {
		return false
	}

	traceID := os.Getenv("DD_TRACE_ID")
	spanID := os.Getenv("DD_SPAN_ID")
	os.Unsetenv("DD_TRACE_ID")
	os.Unsetenv("DD_SPAN_ID")
	if traceID != "" && spanID != "" {
		// A corrupted parent only loses the nesting.
		parent, _ = ParseSpanContext(traceID, spanID)
	}

	opts := []tracer.StartOption{
		tracer.WithService("otable"),
		tracer.WithServiceVersion(serviceVersion),
	}
	logPath := os.Getenv("OTABLE_TRACE_LOG")
	if logPath == "" {
		logPath = defaultLogPath
	}
	var err error
	if logger, err = newFileLogger(logPath); err == nil {
		opts = append(opts, tracer.WithLogger(logger))
	}

	tracer.Start(opts...)
	return true
}

// Stop flushes and stops the tracer.
func Stop() {
	tracer.Stop()
	if logger != nil {
		logger.Close()
		logger = nil
	}
}

// StartSpan starts a span named name, a child of the span in ctx, or of
// the parent process's span for the first span.
func StartSpan(ctx context.Context, name string) (ddtrace.Span, context.Context) {
	if _, ok := tracer.SpanFromContext(ctx); ok || parent == nil {
		return tracer.StartSpanFromContext(ctx, name)
	}
	return tracer.StartSpanFromContext(ctx, name, tracer.ChildOf(parent))
}
