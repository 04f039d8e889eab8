package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"flightcal-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RejectsBadSpec(t *testing.T) {
	s := New(logger.NewNopLogger(), time.Second)
	err := s.Add("broken", "not a schedule", func(ctx context.Context) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestScheduler_RunsJobUntilCancelled(t *testing.T) {
	s := New(logger.NewNopLogger(), time.Second)

	var runs atomic.Int32
	require.NoError(t, s.Add("tick", "@every 1s", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_CancelReachesRunningJob(t *testing.T) {
	s := New(logger.NewNopLogger(), time.Minute)

	started := make(chan struct{})
	var cancelled atomic.Bool
	require.NoError(t, s.Add("sweep", "@every 1s", func(ctx context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("job never started")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop while a job was running")
	}
	assert.True(t, cancelled.Load())
}
