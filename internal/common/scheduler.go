package common

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// A task the scheduler runs every interval
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context)
}

// Scheduler runs all its tasks from a single goroutine.
// Ticks never overlap: a task only starts once the previous one returned,
// so state touched exclusively by tasks needs no locking
type Scheduler struct {
	tasks []Task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add a task. Must be called before Run
func (s *Scheduler) Add(name string, interval time.Duration, run func(ctx context.Context)) {
	s.tasks = append(s.tasks, Task{Name: name, Interval: interval, Run: run})
}

// Run every task once, then on its own interval, until the context ends
func (s *Scheduler) Run(ctx context.Context) error {

	for _, task := range s.tasks {
		s.execute(ctx, task)
	}

	// Tickers only signal which task is due; execution stays on this goroutine
	due := make(chan int)
	var wg sync.WaitGroup
	for i, task := range s.tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticker := time.NewTicker(task.Interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					select {
					case due <- i:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Scheduler stopped")
			return ctx.Err()
		case i := <-due:
			s.execute(ctx, s.tasks[i])
		}
	}
}

// A failing tick is logged and never stops the following ones
func (s *Scheduler) execute(ctx context.Context, task Task) {

	if ctx.Err() != nil {
		return
	}

	logger := log.With().Str("task", task.Name).Str("tick", uuid.NewString()).Logger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Msgf("Task panicked: %v", r)
		}
	}()

	start := time.Now()
	task.Run(logger.WithContext(ctx))
	logger.Debug().Dur("elapsed", time.Since(start)).Msg("Tick done")
}
