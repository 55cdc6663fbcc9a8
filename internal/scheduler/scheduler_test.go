package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsJobAtStartAndOnTicks(t *testing.T) {
	var runs atomic.Int32

	s := New()
	s.NewIntervalJob("counter", func(ctx context.Context) {
		runs.Add(1)
	}, 10*time.Millisecond, true)
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestScheduler_SkipsStartRunWhenDisabled(t *testing.T) {
	var runs atomic.Int32

	s := New()
	s.NewIntervalJob("counter", func(ctx context.Context) {
		runs.Add(1)
	}, time.Hour, false)
	s.Start()

	time.Sleep(50 * time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(0), runs.Load())
}

func TestScheduler_StopHaltsJobs(t *testing.T) {
	var runs atomic.Int32

	s := New()
	s.NewIntervalJob("counter", func(ctx context.Context) {
		runs.Add(1)
	}, 10*time.Millisecond, false)
	s.Start()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	s.Stop()
	after := runs.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_JobReceivesCancelableContext(t *testing.T) {
	done := make(chan struct{})

	s := New()
	s.NewIntervalJob("waiter", func(ctx context.Context) {
		<-ctx.Done()
		close(done)
	}, time.Hour, true)
	s.Start()

	go s.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job context was not canceled on stop")
	}
}
