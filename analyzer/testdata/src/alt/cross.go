package alt

import (
	"future"
	"helper"
)

func gather(id int) future.Task {
	v := helper.Fetch(id) // want `Synchronous call to helper\.Fetch inside an asynchronous function; consider FetchAsync instead \(ag:sync\)`
	_ = v

	s := helper.Resolve("q")
	_ = s

	return future.FromResult(id)
}
