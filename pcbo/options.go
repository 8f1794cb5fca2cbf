package pcbo

import "runtime"

// config holds Enumerator construction options, in the functional-options
// idiom of the upstream lvlath package's GraphOption.
type config struct {
	workers int
}

// Option configures an Enumerator.
type Option func(*config)

// WithWorkers sets the number of goroutines draining the work deque.
// n <= 0 is ignored (the default, runtime.GOMAXPROCS(0), is kept).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

func defaultConfig() config {
	return config{workers: runtime.GOMAXPROCS(0)}
}
