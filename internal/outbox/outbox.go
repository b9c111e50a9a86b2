// Package outbox runs best-effort persistence tasks off the caller's path.
// There is no retry and no backoff: a failed task is logged and dropped, and
// in-memory state stays authoritative.
package outbox

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type task struct {
	name string
	fn   func(ctx context.Context) error
}

type Outbox struct {
	tasks    chan task
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	timeout  time.Duration
}

// New creates an outbox with the given queue capacity. Enqueue never blocks:
// when the queue is full the task is dropped and logged.
func New(capacity int) *Outbox {
	if capacity <= 0 {
		capacity = 64
	}
	return &Outbox{
		tasks:   make(chan task, capacity),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		timeout: 10 * time.Second,
	}
}

func (o *Outbox) Start() {
	go o.run()
}

// Stop drains nothing: pending tasks are abandoned, matching the best-effort
// contract.
func (o *Outbox) Stop() {
	o.stopOnce.Do(func() { close(o.stop) })
	<-o.done
}

func (o *Outbox) Enqueue(name string, fn func(ctx context.Context) error) {
	select {
	case o.tasks <- task{name: name, fn: fn}:
	default:
		log.Warn().Str("task", name).Msg("Outbox queue full, dropping write-through task")
	}
}

func (o *Outbox) run() {
	defer close(o.done)
	for {
		select {
		case <-o.stop:
			return
		case t := <-o.tasks:
			ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
			if err := t.fn(ctx); err != nil {
				log.Error().Err(err).Str("task", t.name).Msg("Write-through task failed, local state retained")
			}
			cancel()
		}
	}
}
