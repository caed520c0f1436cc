package marker

import (
	"iter"

	"future"
)

//asyncguard:awaitable
type Batch struct {
	tasks []future.Task
}

// add settles the task before recording it, defeating the point of the
// batch.
func (b *Batch) add(t future.Task) *Batch {
	t.Wait() // want `Call to Task\.Wait synchronously blocks inside an asynchronous function; await the result instead \(ag:blk\)`

	b.tasks = append(b.tasks, t)

	return b
}

func (b *Batch) size() int {
	for _, t := range b.tasks {
		t.Wait()
	}

	return len(b.tasks)
}

func (b *Batch) results() iter.Seq[future.Task] {
	b.tasks[0].Wait() // want `Call to Task\.Wait synchronously blocks inside an asynchronous function; await the result instead \(ag:blk\)`

	return func(yield func(future.Task) bool) {
		for _, t := range b.tasks {
			if !yield(t) {
				return
			}
		}
	}
}

func indexed(ts []future.Task) func(func(int, future.Task) bool) {
	ts[0].Wait() // want `Call to Task\.Wait synchronously blocks inside an asynchronous function; await the result instead \(ag:blk\)`

	return func(yield func(int, future.Task) bool) {
		for i, t := range ts {
			if !yield(i, t) {
				return
			}
		}
	}
}

type pipe struct {
	ts []future.Task
}

func (p *pipe) Next() future.Task { return p.ts[0] }

func tail(p *pipe) future.Stream {
	p.ts[0].Wait() // want `Call to Task\.Wait synchronously blocks inside an asynchronous function; await the result instead \(ag:blk\)`

	return p
}
