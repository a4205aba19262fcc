package bridge

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"sovtoken-payments/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Task is one unit of payment-method work.
type Task func(ctx context.Context) ([]byte, error)

// Result is delivered exactly once per submitted task.
type Result struct {
	Handle  int32
	Payload []byte
	Err     error
}

// Dispatcher runs tasks on a bounded worker pool.
type Dispatcher struct {
	mu     sync.RWMutex
	closed bool
	group  errgroup.Group
	log    zerolog.Logger
}

// NewDispatcher creates a Dispatcher running at most workers tasks at once.
func NewDispatcher(workers int, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{log: log}
	d.group.SetLimit(max(workers, 1))
	return d
}

// Submit schedules task and returns the channel its Result arrives on.
// It fails with BridgeBusy when every worker is taken and BridgeClosed
// after Close.
func (d *Dispatcher) Submit(ctx context.Context, handle int32, task Task) (<-chan Result, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return nil, apperror.ErrBridgeClosed()
	}

	out := make(chan Result, 1)
	started := d.group.TryGo(func() error {
		defer close(out)
		out <- d.run(ctx, handle, task)
		return nil
	})
	if !started {
		return nil, apperror.ErrBridgeBusy()
	}
	return out, nil
}

func (d *Dispatcher) run(ctx context.Context, handle int32, task Task) (res Result) {
	res.Handle = handle
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().
				Int32("command_handle", handle).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("payment task panicked")
			res.Payload = nil
			res.Err = apperror.InternalError(fmt.Errorf("panic: %v", r))
		}
	}()

	res.Payload, res.Err = task(ctx)
	return res
}

// Close stops accepting tasks and waits for running ones to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	_ = d.group.Wait()
}
