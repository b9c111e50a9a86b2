package outbox

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutboxExecutesTasks(t *testing.T) {
	box := New(8)
	box.Start()
	t.Cleanup(box.Stop)

	done := make(chan struct{})
	box.Enqueue("test.task", func(ctx context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task was not executed")
	}
}

func TestOutboxContinuesAfterTaskFailure(t *testing.T) {
	box := New(8)
	box.Start()
	t.Cleanup(box.Stop)

	box.Enqueue("failing", func(ctx context.Context) error {
		return errors.New("boom")
	})
	done := make(chan struct{})
	box.Enqueue("following", func(ctx context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task after failure was not executed")
	}
}

func TestEnqueueNeverBlocksWhenFull(t *testing.T) {
	// Not started, so nothing drains the queue.
	box := New(2)

	var ran atomic.Int32
	for i := 0; i < 10; i++ {
		box.Enqueue("overflow", func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
	}

	// All ten calls returned; the overflow was dropped, not queued.
	assert.Equal(t, int32(0), ran.Load())
}
