// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"context"
	"sync"
	"time"

	"scanforge/internal/platform/logx"
)

// Task is one unit of work executed by the pool. Execute must contain
// its own failure handling; an error return is recorded, never fatal.
type Task interface {
	// Execute runs the task to completion
	Execute(ctx context.Context) error

	// Name identifies the task in logs and results
	Name() string
}

// TaskResult pairs a finished task with its outcome.
type TaskResult struct {
	Task     Task
	Error    error
	Duration time.Duration
}

// WorkerPool runs tasks through a fixed number of workers. Submit acts
// as a barrier: it returns only once every submitted task has finished,
// which is what gives the engine its phase-before-phase guarantee.
type WorkerPool struct {
	workers int
	logger  logx.Logger

	taskQueue chan Task
	results   chan TaskResult

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// Config configures the worker pool.
type Config struct {
	Workers int
	Logger  logx.Logger
}

// New creates a worker pool. Workers defaults to 4.
func New(cfg Config) *WorkerPool {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		workers:   cfg.Workers,
		logger:    cfg.Logger.With("component", "worker-pool"),
		taskQueue: make(chan Task, cfg.Workers*2),
		results:   make(chan TaskResult, cfg.Workers*2),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start() {
	wp.logger.Debug("starting worker pool", "workers", wp.workers)

	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			return

		case task, ok := <-wp.taskQueue:
			if !ok {
				return
			}
			wp.executeTask(id, task)
		}
	}
}

func (wp *WorkerPool) executeTask(workerID int, task Task) {
	start := time.Now()

	wp.logger.Debug("executing task", "worker_id", workerID, "task", task.Name())

	err := task.Execute(wp.ctx)
	duration := time.Since(start)

	wp.logger.Debug("task completed",
		"worker_id", workerID,
		"task", task.Name(),
		"duration_ms", duration.Milliseconds(),
		"error", err != nil,
	)

	select {
	case wp.results <- TaskResult{Task: task, Error: err, Duration: duration}:
	case <-wp.ctx.Done():
		// pool stopped, discard result
	}
}

// Submit queues the tasks and blocks until all of them have completed,
// returning their results in completion order.
func (wp *WorkerPool) Submit(tasks []Task) []TaskResult {
	if len(tasks) == 0 {
		return []TaskResult{}
	}

	wp.logger.Debug("submitting tasks", "total", len(tasks))

	go func() {
		for _, task := range tasks {
			select {
			case wp.taskQueue <- task:
			case <-wp.ctx.Done():
				return
			}
		}
	}()

	results := make([]TaskResult, 0, len(tasks))
	for i := 0; i < len(tasks); i++ {
		select {
		case result := <-wp.results:
			results = append(results, result)
		case <-wp.ctx.Done():
			wp.logger.Warn("pool stopped while waiting for results")
			return results
		}
	}

	return results
}

// Stop shuts the pool down and waits for the workers to exit.
func (wp *WorkerPool) Stop() {
	wp.cancel()
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.results)
	wp.logger.Debug("worker pool stopped")
}

// Workers returns the configured pool size.
func (wp *WorkerPool) Workers() int {
	return wp.workers
}
