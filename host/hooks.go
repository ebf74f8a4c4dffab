package host

import (
	"context"
	"fmt"
)

// Hook is a lifecycle callback that runs during host startup or shutdown.
type Hook func(ctx context.Context) error

// OnStart registers hooks that run after the registry is attached but
// before the host is marked ready.
func (h *Host) OnStart(hooks ...Hook) {
	h.onStart = append(h.onStart, hooks...)
}

// OnReady registers hooks that run once the host is about to report ready.
func (h *Host) OnReady(hooks ...Hook) {
	h.onReady = append(h.onReady, hooks...)
}

// OnStop registers hooks that run during graceful shutdown before the
// registry is detached.
func (h *Host) OnStop(hooks ...Hook) {
	h.onStop = append(h.onStop, hooks...)
}

// runHooks executes hooks sequentially, returning the first error.
func runHooks(ctx context.Context, hooks []Hook) error {
	for i, hook := range hooks {
		if err := hook(ctx); err != nil {
			return fmt.Errorf("hook %d failed: %w", i, err)
		}
	}
	return nil
}
