package a

import "future"

func work() (any, error) { return 1, nil }

// Compute settles its task eagerly instead of composing it.
func Compute() future.Task {
	t := future.New(work)

	t.Wait() // want `Call to Task\.Wait synchronously blocks inside an asynchronous function; await the result instead \(ag:blk\)`

	v, err := t.Result() // want `Call to Task\.Result synchronously blocks inside an asynchronous function; await the result instead \(ag:blk\)`
	if err != nil {
		return future.FromResult(nil)
	}

	return future.FromResult(v)
}

func deadline(t future.Task) future.Task {
	v, _ := t.Get(100) // want `Call to Task\.Get synchronously blocks inside an asynchronous function; await the result instead \(ag:blk\)`

	return future.FromResult(v)
}

func fanIn(a, b future.Task) future.Task {
	future.WaitAll(a, b) // want `Call to future\.WaitAll synchronously blocks inside an asynchronous function; use WhenAll instead \(ag:alt\)`

	return future.WhenAll(a, b)
}

func race(a, b future.Task) future.Task {
	i := future.WaitAny(a, b) // want `Call to future\.WaitAny synchronously blocks inside an asynchronous function; use WhenAny instead \(ag:alt\)`
	_ = i

	return future.WhenAny(a, b)
}

// Collect is synchronous, the same waits are fine here.
func Collect() any {
	t := future.New(work)
	t.Wait()

	v, _ := t.Result()

	return v
}

// spawn is synchronous, but the closure it builds is not.
func spawn() func() future.Task {
	return func() future.Task {
		t := future.New(work)

		t.Wait() // want `Call to Task\.Wait synchronously blocks inside an asynchronous function; await the result instead \(ag:blk\)`

		return t
	}
}

// A method value of a blocking member counts as a wait.
func methodValue(t future.Task) future.Task {
	wait := t.Wait // want `Call to Task\.Wait synchronously blocks inside an asynchronous function; await the result instead \(ag:blk\)`
	wait()

	return t
}

func polling(t future.Task) future.Task {
	for !t.Done() {
		continue
	}

	return t
}

//nolint:asyncguard
func muted() future.Task {
	t := future.New(work)
	t.Wait()

	return t
}
