package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("matchmetric/internal/interfaces/httpapi")
	// Ending it is a no-op, so helpers can defer End unconditionally.
	disabledSpan = trace.SpanFromContext(context.Background())
)

// startSpan opens a child span for handlers only. Middleware and response
// helpers get ctx back untouched, and nothing is traced without an active
// request span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, disabledSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func shouldCreateHTTPAPISpan(name string) bool {
	return len(name) > len(handlerSpanPrefix) && strings.HasPrefix(name, handlerSpanPrefix)
}
