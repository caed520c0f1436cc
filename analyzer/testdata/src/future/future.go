// Package future is a minimal promise library for the analyzer tests.
package future

// Task represents a value that settles asynchronously.
type Task interface {
	// Wait blocks until the task settles.
	Wait()

	// Result blocks until the task settles and returns its value.
	Result() (any, error)

	// Get blocks until the task settles or the timeout elapses.
	Get(timeoutMs int) (any, error)

	// Done reports settlement without blocking.
	Done() bool
}

// Stream is an asynchronous sequence of tasks.
type Stream interface {
	// Next returns a task settling with the next element.
	Next() Task
}

// New runs fn in the background and returns its task.
func New(fn func() (any, error)) Task {
	t := &task{done: make(chan struct{})}

	go func() {
		t.value, t.err = fn()
		close(t.done)
	}()

	return t
}

// FromResult returns an already settled task.
func FromResult(v any) Task {
	done := make(chan struct{})
	close(done)

	return &task{value: v, done: done}
}

// WaitAll blocks until every task settles.
func WaitAll(tasks ...Task) {
	for _, t := range tasks {
		t.Wait()
	}
}

// WhenAll returns a task that settles when every task settles.
func WhenAll(tasks ...Task) Task {
	return New(func() (any, error) {
		vs := make([]any, len(tasks))
		for i, t := range tasks {
			v, err := t.Result()
			if err != nil {
				return nil, err
			}

			vs[i] = v
		}

		return vs, nil
	})
}

// WaitAny blocks until some task settles and returns its index.
func WaitAny(tasks ...Task) int {
	for i, t := range tasks {
		t.Wait()
		_ = i
	}

	return 0
}

// WhenAny returns a task settling with the value of the first settled task.
func WhenAny(tasks ...Task) Task {
	return New(func() (any, error) {
		return tasks[WaitAny(tasks...)].Result()
	})
}

type task struct {
	value any
	err   error
	done  chan struct{}
}

func (t *task) Wait() { <-t.done }

func (t *task) Result() (any, error) {
	<-t.done

	return t.value, t.err
}

func (t *task) Get(timeoutMs int) (any, error) {
	_ = timeoutMs

	return t.Result()
}

func (t *task) Done() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
