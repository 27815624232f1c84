// Package trace sends spans for the phases of a run to a Datadog
// agent when --trace is given. Without it every function here is a
// cheap no-op: the global tracer stays the no-op tracer.
package trace

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// serviceName is reported to Datadog for every span.
const serviceName = "sheetstat"

// logFilename is where the tracer's own diagnostics go.
var logFilename = filepath.Join(os.TempDir(), "sheetstat.dd.log")

// Start starts the global tracer if enabled is set. The returned
// function stops it and must be called before the process exits.
func Start(enabled bool, serviceVersion string) (stop func(), err error) {
	if !enabled {
		return func() {}, nil
	}

	logger, err := NewDatadogLogger(logFilename)
	if err != nil {
		return nil, err
	}

	tracer.Start(
		tracer.WithService(serviceName),
		tracer.WithServiceVersion(serviceVersion),
		tracer.WithLogger(logger),
	)
	return func() {
		tracer.Stop()
		logger.Close()
	}, nil
}

// StartSpan starts a span named after a phase of the run, as a child
// of any span already in ctx.
func StartSpan(ctx context.Context, name string) (ddtrace.Span, context.Context) {
	return tracer.StartSpanFromContext(ctx, name, tracer.ServiceName(serviceName))
}

// Finish ends span, recording err on it if there is one.
func Finish(span ddtrace.Span, err error) {
	if err != nil {
		span.Finish(tracer.WithError(err))
		return
	}
	span.Finish()
}
