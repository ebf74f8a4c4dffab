package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ResolutionContext carries observability context for one provider
// resolution: which interface is being resolved, for which service, and
// when the resolution started.
type ResolutionContext struct {
	ServiceName string
	Interface   string
	StartTime   time.Time
}

// NewResolutionContext creates a resolution context for an interface lookup.
func NewResolutionContext(serviceName, iface string) *ResolutionContext {
	return &ResolutionContext{
		ServiceName: serviceName,
		Interface:   iface,
		StartTime:   time.Now(),
	}
}

// resolutionContextKey is the context key for ResolutionContext.
type resolutionContextKey struct{}

// WithResolutionContext stores a ResolutionContext in the context.
func WithResolutionContext(ctx context.Context, rc *ResolutionContext) context.Context {
	return context.WithValue(ctx, resolutionContextKey{}, rc)
}

// ResolutionContextFromContext retrieves the ResolutionContext from context, or nil.
func ResolutionContextFromContext(ctx context.Context) *ResolutionContext {
	if rc, ok := ctx.Value(resolutionContextKey{}).(*ResolutionContext); ok {
		return rc
	}
	return nil
}

// StartSpanForResolution starts a traced span annotated with the resolution
// target.
func (rc *ResolutionContext) StartSpanForResolution(ctx context.Context, spanName string) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, spanName)
	span.SetAttributes(
		attribute.String(AttrServiceName, rc.ServiceName),
		attribute.String(AttrInterface, rc.Interface),
	)
	return ctx, span
}

// EndResolution ends the span, recording the resolved provider (empty when
// nothing matched) and any error.
func (rc *ResolutionContext) EndResolution(span trace.Span, provider string, err error) {
	duration := time.Since(rc.StartTime)

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}
	if provider != "" {
		span.SetAttributes(attribute.String(AttrProvider, provider))
	}
	span.SetAttributes(attribute.Int64(AttrDurationMs, duration.Milliseconds()))
	span.End()
}

// Duration returns the elapsed time since resolution start.
func (rc *ResolutionContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}
