package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Runner executes a job on a fixed interval. Overlapping runs of the same job
// are skipped (TryLock), so a slow run is never doubled; different runners
// never coordinate — the jobs' idempotency checks make that safe.
type Runner struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error

	mu     sync.Mutex
	wg     sync.WaitGroup
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(name string, interval time.Duration, run func(ctx context.Context) error) *Runner {
	return &Runner{
		name:     name,
		interval: interval,
		run:      run,
	}
}

func (r *Runner) Name() string { return r.name }

func (r *Runner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)

		t := time.NewTicker(r.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				r.wg.Wait()
				return
			case <-t.C:
				r.wg.Add(1)
				go func() {
					defer r.wg.Done()
					r.runOnce(ctx)
				}()
			}
		}
	}()

	slog.Info("job runner started", "job", r.name, "interval", r.interval)
}

func (r *Runner) runOnce(ctx context.Context) {
	if !r.mu.TryLock() {
		slog.Debug("previous run still in progress, skipping", "job", r.name)
		return
	}
	defer r.mu.Unlock()

	started := time.Now()
	if err := r.run(ctx); err != nil {
		slog.Error("job run failed", "job", r.name, "duration", time.Since(started), "error", err.Error())
		return
	}
	slog.Debug("job run completed", "job", r.name, "duration", time.Since(started))
}

// Stop cancels the loop and waits for an in-flight run to finish.
func (r *Runner) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
