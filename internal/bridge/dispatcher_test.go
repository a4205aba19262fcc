package bridge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"sovtoken-payments/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Result) Result {
	t.Helper()
	select {
	case res, ok := <-ch:
		require.True(t, ok, "result channel closed without a result")
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for result")
		return Result{}
	}
}

func TestDispatcher_DeliversOnce(t *testing.T) {
	d := NewDispatcher(2, zerolog.Nop())
	defer d.Close()

	ch, err := d.Submit(context.Background(), 42, func(context.Context) ([]byte, error) {
		return []byte(`"ok"`), nil
	})
	require.NoError(t, err)

	res := receive(t, ch)
	assert.Equal(t, int32(42), res.Handle)
	assert.Equal(t, []byte(`"ok"`), res.Payload)
	assert.NoError(t, res.Err)

	_, open := <-ch
	assert.False(t, open, "channel must be closed after the single result")
}

func TestDispatcher_PropagatesError(t *testing.T) {
	d := NewDispatcher(1, zerolog.Nop())
	defer d.Close()

	ch, err := d.Submit(context.Background(), 1, func(context.Context) ([]byte, error) {
		return nil, apperror.InvalidValue("amount must be non-negative")
	})
	require.NoError(t, err)

	res := receive(t, ch)
	assert.True(t, apperror.HasCode(res.Err, apperror.CodeInvalidValue))
	assert.Nil(t, res.Payload)
}

func TestDispatcher_RecoversPanic(t *testing.T) {
	d := NewDispatcher(1, zerolog.Nop())
	defer d.Close()

	ch, err := d.Submit(context.Background(), 9, func(context.Context) ([]byte, error) {
		panic("boom")
	})
	require.NoError(t, err)

	res := receive(t, ch)
	assert.Equal(t, int32(9), res.Handle)
	assert.True(t, apperror.HasCode(res.Err, apperror.CodeInternal))
	assert.ErrorContains(t, res.Err, "boom")
}

func TestDispatcher_BusyWhenSaturated(t *testing.T) {
	d := NewDispatcher(1, zerolog.Nop())
	release := make(chan struct{})

	first, err := d.Submit(context.Background(), 1, func(context.Context) ([]byte, error) {
		<-release
		return nil, nil
	})
	require.NoError(t, err)

	_, err = d.Submit(context.Background(), 2, func(context.Context) ([]byte, error) { return nil, nil })
	assert.True(t, apperror.HasCode(err, apperror.CodeBridgeBusy))

	close(release)
	receive(t, first)
	d.Close()
}

func TestDispatcher_ClosedRejects(t *testing.T) {
	d := NewDispatcher(4, zerolog.Nop())
	d.Close()

	_, err := d.Submit(context.Background(), 1, func(context.Context) ([]byte, error) { return nil, nil })
	assert.True(t, apperror.HasCode(err, apperror.CodeBridgeClosed))
}

func TestDispatcher_CloseWaitsForRunningTasks(t *testing.T) {
	d := NewDispatcher(4, zerolog.Nop())
	var mu sync.Mutex
	done := 0

	for i := range 4 {
		_, err := d.Submit(context.Background(), int32(i), func(context.Context) ([]byte, error) {
			time.Sleep(10 * time.Millisecond)
			mu.Lock()
			done++
			mu.Unlock()
			return nil, nil
		})
		require.NoError(t, err)
	}

	d.Close()
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 4, done)
}

func TestDispatcher_TaskSeesContext(t *testing.T) {
	d := NewDispatcher(1, zerolog.Nop())
	defer d.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch, err := d.Submit(ctx, 3, func(ctx context.Context) ([]byte, error) {
		return nil, ctx.Err()
	})
	require.NoError(t, err)
	assert.True(t, errors.Is(receive(t, ch).Err, context.Canceled))
}
