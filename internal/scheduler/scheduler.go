package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/atomic"
)

type JobFunc func(ctx context.Context)

type job struct {
	spec    string
	fn      JobFunc
	running *atomic.Bool
}

type Scheduler struct {
	logger *slog.Logger
	s      *gocron.Scheduler
	ctx    context.Context
	jobs   []job
}

func New(ctx context.Context, logger *slog.Logger, loc *time.Location) *Scheduler {
	return &Scheduler{logger: logger.With("component", "scheduler"), s: gocron.NewScheduler(loc), ctx: ctx}
}

func (sch *Scheduler) Add(spec string, fn JobFunc) {
	sch.jobs = append(sch.jobs, job{spec: spec, fn: fn, running: atomic.NewBool(false)})
}

// Start blocks until the context is done. A tick is skipped while the previous run of the same job is in flight.
func (sch *Scheduler) Start() error {
	for _, j := range sch.jobs {
		if _, err := sch.s.Cron(j.spec).Do(sch.run, j); err != nil {
			return fmt.Errorf("schedule job %q: %w", j.spec, err)
		}
	}
	sch.s.StartAsync()

	<-sch.ctx.Done()
	sch.s.Stop()
	return nil
}

func (sch *Scheduler) run(j job) {
	select {
	case <-sch.ctx.Done():
		return
	default:
	}

	if j.running.Swap(true) {
		sch.logger.Warn("previous run is still in progress, skipping", "spec", j.spec)
		return
	}
	defer j.running.Store(false)

	j.fn(sch.ctx)
}
