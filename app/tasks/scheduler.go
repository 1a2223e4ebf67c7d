package tasks

import (
	"context"
	"log/slog"
	"sync"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

// Scheduler runs feed events through a single worker so every snapshot
// mutation executes to completion before the next one starts, matching
// the serialized event-dispatch model the pipeline assumes.
type Scheduler struct {
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	taskQueue chan TaskInterface
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		ctx:       ctx,
		cancel:    cancel,
		taskQueue: make(chan TaskInterface, 300),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.worker()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

// Enqueue adds a task to the queue. Returns false when the queue is
// full; the event is dropped rather than blocking the caller.
func (s *Scheduler) Enqueue(task TaskInterface) bool {
	select {
	case s.taskQueue <- task:
		return true
	default:
		slog.Error("Task queue full, dropping task", "type", task.GetType(), "id", task.GetID())
		return false
	}
}

func (s *Scheduler) worker() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case task := <-s.taskQueue:
			s.execute(task)
		}
	}
}

func (s *Scheduler) execute(task TaskInterface) {
	task.Start()

	err := task.Execute(s.ctx)
	if err == nil {
		slog.Debug("Task completed", "type", task.GetType(), "id", task.GetID(), "duration", task.GetDuration())
		return
	}

	slog.Error("Task failed", "type", task.GetType(), "id", task.GetID(), "error", err, "retry", task.GetRetryCount())

	if task.CanRetry() {
		task.IncrementRetryCount()
		s.Enqueue(task)
	}
}
