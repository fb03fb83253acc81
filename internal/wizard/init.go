package wizard

import (
	"context"

	"github.com/conn-castle/template-wizard/internal/catalog"
)

// InitTask is an in-flight project setup initialization.
type InitTask struct {
	done   chan struct{}
	cancel context.CancelFunc
	setup  catalog.Setup
	err    error
}

// startInit runs initializer in the background and returns immediately.
func startInit(ctx context.Context, initializer SetupInitializer) *InitTask {
	ctx, cancel := context.WithCancel(ctx)
	task := &InitTask{done: make(chan struct{}), cancel: cancel}

	go func() {
		defer close(task.done)
		defer cancel()
		task.setup, task.err = initializer.InitializeSetup(ctx)
	}()
	return task
}

// finishedTask returns a task that already completed with setup.
func finishedTask(setup catalog.Setup) *InitTask {
	task := &InitTask{done: make(chan struct{}), cancel: func() {}, setup: setup}
	close(task.done)
	return task
}

// Done is closed when the initialization has finished.
func (t *InitTask) Done() <-chan struct{} { return t.done }

// Wait blocks until the initialization finishes or ctx is done.
func (t *InitTask) Wait(ctx context.Context) (catalog.Setup, error) {
	select {
	case <-t.done:
		return t.setup, t.err
	case <-ctx.Done():
		return catalog.Setup{}, ctx.Err()
	}
}

// Cancel abandons the initialization by cancelling its context.
func (t *InitTask) Cancel() { t.cancel() }

// failed reports whether the task finished with an error.
func (t *InitTask) failed() bool {
	select {
	case <-t.done:
		return t.err != nil
	default:
		return false
	}
}
