package alt

import (
	"context"

	"future"
)

func fetch(id int) int { return id }

func fetchAsync(id int) future.Task { return future.FromResult(id) }

func refresh(id int) future.Task {
	v := fetch(id) // want `Synchronous call to alt\.fetch inside an asynchronous function; consider fetchAsync instead \(ag:sync\)`
	_ = v

	return fetchAsync(id)
}

func load(id int) []byte { return nil }

// loadAsync takes a context on top of the synchronous parameters.
func loadAsync(ctx context.Context, id int) future.Task {
	_ = ctx

	return future.FromResult(id)
}

func reload(ctx context.Context, id int) future.Task {
	buf := load(id) // want `Synchronous call to alt\.load inside an asynchronous function; consider loadAsync instead \(ag:sync\)`
	_ = buf

	return loadAsync(ctx, id)
}

func save(name string) {}

func saveAsync(id int) future.Task { return future.FromResult(id) }

// persist keeps the synchronous call: saveAsync does not cover the
// string parameter.
func persist(name string) future.Task {
	save(name)

	return future.FromResult(name)
}

func parse(s string) int { return len(s) }

// Deprecated: superseded by the streaming decoder.
func parseAsync(s string) future.Task { return future.FromResult(s) }

// scan keeps the synchronous call: the only sibling is deprecated.
func scan(s string) future.Task {
	n := parse(s)
	_ = n

	return future.FromResult(s)
}

func index(q string) int { return len(q) }

// indexAsync falls back to the synchronous path for short queries and
// must not be suggested to itself.
func indexAsync(q string) future.Task {
	if len(q) < 2 {
		return future.FromResult(index(q))
	}

	return future.FromResult(q)
}

type Client struct{ addr string }

func (c Client) Query(q string) string { return c.addr + q }

func (c Client) QueryAsync(q string) future.Task { return future.FromResult(q) }

func (c Client) Do(x int) int { return x }

// DoAsync is the extension form of [Client.Do].
func DoAsync(c Client, x int) future.Task {
	_ = c

	return future.FromResult(x)
}

func (c Client) refreshAll(q string, x int) future.Task {
	s := c.Query(q) // want `Synchronous call to Client\.Query inside an asynchronous function; consider QueryAsync instead \(ag:sync\)`
	_ = s

	n := c.Do(x) // want `Synchronous call to Client\.Do inside an asynchronous function; consider DoAsync instead \(ag:sync\)`
	_ = n

	return future.FromResult(x)
}
