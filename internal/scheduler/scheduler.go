package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name       string
	fn         func(ctx context.Context)
	interval   time.Duration
	runAtStart bool
}

// Scheduler runs named jobs on fixed intervals in background goroutines.
// Stop cancels the shared context and waits for running jobs to return.
type Scheduler struct {
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

func (s *Scheduler) NewIntervalJob(name string, fn func(ctx context.Context), interval time.Duration, runAtStart bool) {
	s.jobs = append(s.jobs, job{name: name, fn: fn, interval: interval, runAtStart: runAtStart})
}

func (s *Scheduler) Start() {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.run(j)
	}
	slog.Info("scheduler started", slog.Int("jobs", len(s.jobs)))
}

func (s *Scheduler) run(j job) {
	defer s.wg.Done()

	if j.runAtStart {
		j.fn(s.ctx)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("job stopped", slog.String("job", j.name))
			return
		case <-ticker.C:
			j.fn(s.ctx)
		}
	}
}

func (s *Scheduler) Stop() {
	slog.Info("start stopping scheduler")
	s.cancel()
	s.wg.Wait()
	slog.Info("scheduler stopped")
}
