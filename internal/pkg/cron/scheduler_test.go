package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsJobImmediatelyAndOnInterval(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.AddJob("counter", 20*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	time.Sleep(70 * time.Millisecond)
	s.Stop()

	// Immediate run plus at least two ticks.
	assert.GreaterOrEqual(t, runs.Load(), int32(3))
}

func TestSchedulerStopCancelsContext(t *testing.T) {
	s := NewScheduler()

	cancelled := make(chan struct{})
	s.AddJob("waiter", time.Hour, func(ctx context.Context) error {
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	})

	s.Start()
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("job context was not cancelled")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after jobs finished")
	}
}

func TestSchedulerSurvivesPanic(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.AddJob("panicky", 15*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		panic("boom")
	})

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	// The loop keeps firing after a panic.
	assert.GreaterOrEqual(t, runs.Load(), int32(2))
}

func TestRunOnce(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.AddJob("a", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	s.AddJob("b", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.RunOnce(context.Background())
	require.Equal(t, int32(2), runs.Load())
}
