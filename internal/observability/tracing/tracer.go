// Package tracing provides OpenTelemetry tracing for HTTP request handling.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the knowbase application.
var tracer = otel.Tracer("knowbase")

// GetTracer returns the global tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}
