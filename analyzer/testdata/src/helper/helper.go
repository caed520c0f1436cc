package helper

import "future"

func Fetch(id int) int { return id }

func FetchAsync(id int) future.Task { return future.FromResult(id) }

func Resolve(name string) string { return name }

// resolveAsync is package-private; callers outside helper keep the
// synchronous form.
func resolveAsync(name string) future.Task { return future.FromResult(name) }
