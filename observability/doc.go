// Package observability provides OpenTelemetry tracing and health reporting
// for services built on provider discovery.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	rc := observability.NewResolutionContext("my-service", "codec.Encoder")
//	ctx, span := rc.StartSpanForResolution(ctx, observability.SpanResolveProvider)
//	// ... resolve ...
//	rc.EndResolution(span, providerName, err)
//
// Health Checks:
//
//	health := observability.NewServiceHealth("my-service", "1.0.0")
//	health.AddComponent(observability.RegistryHealth(handle))
package observability
