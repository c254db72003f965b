package locked

import "github.com/hupe1980/querygo"

type options struct {
	metricsCollector querygo.MetricsCollector
	logger           *querygo.Logger
}

// Option configures collection construction behavior.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for lock-guarded
// passes. Pass nil to disable metrics collection.
func WithMetricsCollector(mc querygo.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = querygo.NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for lock-guarded passes.
func WithLogger(logger *querygo.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = querygo.NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: querygo.NoopMetricsCollector{},
		logger:           querygo.NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
