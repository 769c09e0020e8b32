package propagator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool_AddTask(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()

	var wg sync.WaitGroup
	var mu sync.Mutex
	executed := 0

	for i := 0; i < 5; i++ {
		wg.Add(1)
		err := wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			mu.Lock()
			executed++
			mu.Unlock()
			return nil
		})
		assert.NoError(t, err)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, executed)
}

func TestWorkerPool_AddTaskCanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	defer close(block)

	// occupy the single worker and fill the task buffer
	_ = wp.AddTask(context.Background(), func() error {
		<-block
		return nil
	})
	_ = wp.AddTask(context.Background(), func() error { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_TaskErrorDoesNotStopWorker(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	done := make(chan struct{})
	assert.NoError(t, wp.AddTask(context.Background(), func() error {
		return errors.New("task failed")
	}))
	assert.NoError(t, wp.AddTask(context.Background(), func() error {
		close(done)
		return nil
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker stopped after a failing task")
	}
}

func TestWorkerPool_CloseIsIdempotent(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Close()
	assert.NotPanics(t, wp.Close)
}
