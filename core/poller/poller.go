// Package poller runs a function on a fixed interval until it reports completion or is stopped.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/pkg/logger"
)

// DefaultInterval is the payment status polling interval.
const DefaultInterval = 30 * time.Second

// TickFunc is called on every tick. Returning true stops the poller.
type TickFunc func(ctx context.Context) (done bool)

// Handle controls a running poller.
type Handle struct {
	cancel   context.CancelFunc
	stopOnce sync.Once
	done     chan struct{}

	mu    sync.Mutex
	ticks int
}

// Start calls fn every interval until fn returns true, ctx is done or the handle is stopped.
// The first call happens one interval after Start.
func Start(ctx context.Context, interval time.Duration, fn TickFunc) *Handle {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go h.run(ctx, interval, fn)
	return h
}

func (h *Handle) run(ctx context.Context, interval time.Duration, fn TickFunc) {
	defer close(h.done)
	defer h.cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.DebugContext(ctx, "Poller stopped")
			return
		case <-ticker.C:
			// a stop that raced with the tick wins
			if ctx.Err() != nil {
				return
			}
			h.mu.Lock()
			h.ticks++
			h.mu.Unlock()
			if fn(ctx) {
				logger.DebugContext(ctx, "Poller finished")
				return
			}
		}
	}
}

// Stop cancels the poller. It does not wait for a running tick; use Wait for that.
// Stop is safe to call from inside the tick function and more than once.
func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.stopOnce.Do(h.cancel)
}

// Done is closed once the poller goroutine has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the poller exits or ctx is done.
func (h *Handle) Wait(ctx context.Context) error {
	if h == nil {
		return nil
	}
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(errs.Timeout, "poller did not stop in time")
	}
}

// Ticks returns how many times the tick function was invoked.
func (h *Handle) Ticks() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ticks
}
