package port

import "context"

type Task func(ctx context.Context) error

// TaskRunner runs tasks independently of each other. The returned channel
// yields the task result once and is then closed. ctx bounds only the wait
// for a queue slot; the task itself runs under the runner's context.
type TaskRunner interface {
	Submit(ctx context.Context, name string, task Task) <-chan error
}
