package notify

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/metrics"
)

// DefaultTimeout bounds a single delivery when none is configured.
const DefaultTimeout = 30 * time.Second

// Dispatcher makes any Notifier fire-and-forget. Notify returns at once and
// the delivery runs on its own goroutine with a context detached from the
// caller's cancellation. Failures are logged and counted.
type Dispatcher struct {
	inner   Notifier
	timeout time.Duration
	logger  logging.Logger
	wg      sync.WaitGroup
}

func NewDispatcher(inner Notifier, timeout time.Duration, l logging.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		inner:   inner,
		timeout: timeout,
		logger:  l.With("module", "notify_dispatcher"),
	}
}

// Notify schedules delivery of msg and always returns nil.
func (d *Dispatcher) Notify(ctx context.Context, msg Message) error {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := d.inner.Notify(ctx, msg); err != nil {
			metrics.RecordNotification(msg.Kind.String(), metrics.OutcomeFailed)
			d.logger.Error(ctx, "notification failed",
				"kind", msg.Kind.String(), "address", msg.Address, "error", err)
			return
		}
		metrics.RecordNotification(msg.Kind.String(), metrics.OutcomeSent)
	}()
	return nil
}

// Wait blocks until every scheduled delivery finished or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
