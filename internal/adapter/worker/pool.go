package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"go.uber.org/zap"
)

var ErrPoolStopped = errors.New("task pool stopped")

type job struct {
	name   string
	task   port.Task
	result chan error
}

// Pool runs submitted tasks on a fixed number of workers. Each task gets its
// own timeout and reports exactly once on its result channel.
type Pool struct {
	logger  *zap.Logger
	queue   chan job
	timeout time.Duration
	done    chan struct{}
	wg      sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func NewPool(queueSize int, timeout time.Duration, log *zap.Logger) (*Pool, error) {
	if queueSize < 1 {
		return nil, fmt.Errorf("queue size must be positive, got %d", queueSize)
	}
	return &Pool{
		logger:  log,
		queue:   make(chan job, queueSize),
		timeout: timeout,
		done:    make(chan struct{}),
	}, nil
}

// Start launches workers that run until ctx is done. Queued tasks that did
// not start by then fail with ErrPoolStopped.
func (p *Pool) Start(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			for {
				select {
				case j := <-p.queue:
					p.run(ctx, id, j)
				case <-ctx.Done():
					p.logger.Debug("Finished worker", zap.Int("worker", id))
					return
				}
			}
		}(i)
	}

	go func() {
		<-ctx.Done()
		close(p.done)

		p.mu.Lock()
		p.stopped = true
		p.mu.Unlock()

		p.wg.Wait()
		for {
			select {
			case j := <-p.queue:
				j.result <- ErrPoolStopped
				close(j.result)
			default:
				return
			}
		}
	}()
}

// Submit queues task. When the queue is full it waits for a slot until ctx
// is done and then reports ctx.Err() without running the task.
func (p *Pool) Submit(ctx context.Context, name string, task port.Task) <-chan error {
	result := make(chan error, 1)
	j := job{name: name, task: task, result: result}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		result <- ErrPoolStopped
		close(result)
		return result
	}

	select {
	case p.queue <- j:
		p.logger.Debug("task queued", zap.String("task", name))
	case <-p.done:
		result <- ErrPoolStopped
		close(result)
	case <-ctx.Done():
		p.logger.Warn("task not queued", zap.String("task", name), zap.Error(ctx.Err()))
		result <- ctx.Err()
		close(result)
	}
	return result
}

// Wait blocks until all workers have exited.
func (p *Pool) Wait() {
	p.wg.Wait()
}

func (p *Pool) run(ctx context.Context, id int, j job) {
	defer close(j.result)

	taskCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		taskCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	err := j.task(taskCtx)
	if err != nil {
		p.logger.Debug("task failed",
			zap.String("task", j.name),
			zap.Int("worker", id),
			zap.Duration("took", time.Since(start)),
			zap.Error(err))
	} else {
		p.logger.Debug("task finished",
			zap.String("task", j.name),
			zap.Int("worker", id),
			zap.Duration("took", time.Since(start)))
	}
	j.result <- err
}
