// Package host assembles a provider-hosting service: configuration,
// logging, an optional external registry, and a locator, with a uniform
// start/stop lifecycle.
//
//	h, err := host.New("widget-host",
//	    host.WithRegistry(openRegistry),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h.OnStop(func(ctx context.Context) error { return drain(ctx) })
//	if err := h.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// For finite jobs use RunTask, which cancels the task's context on
// SIGINT/SIGTERM instead of blocking until a signal.
package host
