package deferred

import "future"

func work() (any, error) { return nil, nil }

func run() future.Task {
	t := future.New(work)

	// Deferred closures never publish their result.
	defer func() future.Task {
		t.Wait()

		return t
	}()

	go func() future.Task {
		t.Wait()

		return t
	}()

	release := func() future.Task {
		t.Wait() // want `Call to Task\.Wait synchronously blocks inside an asynchronous function; await the result instead \(ag:blk\)`

		return t
	}
	defer release()

	return t
}

// cleanup is synchronous; the deferred wait here is the intended shutdown
// pattern.
func cleanup(t future.Task) {
	defer func() {
		t.Wait()
	}()
}
