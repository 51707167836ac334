package refstore

type options struct {
	initialCapacity  int
	threadGuard      bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Store constructor behavior.
type Option func(*options)

// WithInitialCapacity pre-sizes the store for the expected number of live
// objects. The store still grows on demand; this only avoids early
// reallocations.
func WithInitialCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.initialCapacity = capacity
		}
	}
}

// WithThreadGuard binds the store to the OS thread it is constructed on and
// panics on any access from another thread.
//
// The constructing goroutine must be pinned with runtime.LockOSThread for
// the guard to be meaningful; an unpinned goroutine migrates between
// threads and will trip its own guard. The guard is a no-op on platforms
// without a cheap thread id (everything but Linux).
func WithThreadGuard() Option {
	return func(o *options) {
		o.threadGuard = true
	}
}

// WithMetricsCollector configures the metrics collector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metricsCollector = collector
	}
}

// WithLogger configures the logger.
//
// If nil is passed, NoopLogger() is used.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
