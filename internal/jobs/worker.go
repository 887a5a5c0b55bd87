package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Worker is a background job that runs until its context ends.
type Worker interface {
	Start(ctx context.Context)
	Name() string
}

// BaseWorker runs a unit of work on a fixed interval.
type BaseWorker struct {
	name     string
	interval time.Duration
	log      *slog.Logger
}

func NewBaseWorker(name string, interval time.Duration, log *slog.Logger) BaseWorker {
	return BaseWorker{
		name:     name,
		interval: interval,
		log:      log.With("worker", name),
	}
}

func (w *BaseWorker) Name() string { return w.name }

// Poll runs work once right away and then on every tick until ctx is done.
// A run never overlaps the next one; slow runs just delay the following tick.
func (w *BaseWorker) Poll(ctx context.Context, work func(context.Context) error) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("worker started", "interval", w.interval)
	w.run(ctx, work)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("worker stopping")
			return
		case <-ticker.C:
			w.run(ctx, work)
		}
	}
}

func (w *BaseWorker) run(ctx context.Context, work func(context.Context) error) {
	start := time.Now()
	if err := work(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.log.Error("worker error", "err", err, "took", time.Since(start))
	}
}

// FuncWorker wraps a plain function as a Worker.
type FuncWorker struct {
	BaseWorker
	fn func(context.Context) error
}

func NewFuncWorker(name string, interval time.Duration, log *slog.Logger, fn func(context.Context) error) *FuncWorker {
	return &FuncWorker{BaseWorker: NewBaseWorker(name, interval, log), fn: fn}
}

func (w *FuncWorker) Start(ctx context.Context) { w.Poll(ctx, w.fn) }

// StartAll launches each worker in its own goroutine. Wait on the returned
// group after cancelling ctx to let them finish.
func StartAll(ctx context.Context, workers ...Worker) *sync.WaitGroup {
	var wg sync.WaitGroup
	for _, w := range workers {
		wg.Add(1)
		go func(w Worker) {
			defer wg.Done()
			w.Start(ctx)
		}(w)
	}
	return &wg
}
