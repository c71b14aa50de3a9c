package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func counterJob(name string, calls *atomic.Int32, err error) Job {
	return Job{
		Name: name,
		Run: func(context.Context) (int, error) {
			calls.Add(1)
			return 1, err
		},
	}
}

func TestSchedulerRunsImmediatelyAndOnTick(t *testing.T) {
	var publish, cleanup atomic.Int32
	s := NewScheduler(10*time.Millisecond, discardLogger,
		counterJob("publish", &publish, nil),
		counterJob("cleanup", &cleanup, nil),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	assert.Eventually(t, func() bool { return publish.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.GreaterOrEqual(t, cleanup.Load(), int32(2))
}

func TestSchedulerKeepsGoingAfterFailure(t *testing.T) {
	var failing, next atomic.Int32
	s := NewScheduler(time.Hour, discardLogger,
		counterJob("failing", &failing, errors.New("db down")),
		counterJob("next", &next, nil),
	)

	s.tick(context.Background())
	assert.Equal(t, int32(1), failing.Load())
	assert.Equal(t, int32(1), next.Load())
}

func TestSchedulerSkipsJobsAfterCancel(t *testing.T) {
	var calls atomic.Int32
	s := NewScheduler(time.Hour, discardLogger, counterJob("publish", &calls, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.tick(ctx)
	assert.Zero(t, calls.Load())
}
