package vectordb

import "runtime"

type options struct {
	logger        *Logger
	metrics       MetricsCollector
	searchWorkers int
	minParallel   int
}

// defaultMinParallel is the snapshot size below which search scoring stays
// on the caller's goroutine. Fanning out over a handful of documents costs
// more than it saves.
const defaultMinParallel = 256

func defaultOptions() options {
	return options{
		logger:        NoopLogger(),
		metrics:       NoopMetricsCollector{},
		searchWorkers: runtime.GOMAXPROCS(0),
		minParallel:   defaultMinParallel,
	}
}

// Option configures Database constructor behavior.
type Option func(*options)

// WithLogger configures structured logging for the database and every
// collection it creates.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures metrics collection for all operations.
//
// If nil is passed, metrics collection is disabled.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithSearchWorkers configures the number of goroutines used for the scoring
// phase of Search.
//
// The default is runtime.GOMAXPROCS(0). Values <= 1 disable parallel scoring
// entirely; results are identical either way, only latency changes.
func WithSearchWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.searchWorkers = n
	}
}

// WithMinParallel configures the collection size below which Search scores
// documents serially on the caller's goroutine instead of fanning out.
func WithMinParallel(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.minParallel = n
	}
}
