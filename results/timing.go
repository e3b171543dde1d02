package results

import "time"

// Timed executes fn and returns its value together with the measured
// wall-clock duration. Wrap calls with arguments in a closure:
//
//	res, dur := results.Timed(func() localsearch.SearchResult { ... })
func Timed[T any](fn func() T) (T, time.Duration) {
	start := time.Now()
	out := fn()

	return out, time.Since(start)
}
