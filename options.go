package vecspace

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Collection.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vecspace.BasicMetricsCollector{}
//	c, _ := vecspace.NewCollection("docs", 384, nil, vecspace.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vecspace.NewJSONLogger(slog.LevelInfo)
//	c, _ := vecspace.NewCollection("docs", 384, nil, vecspace.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	opts := options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.metricsCollector == nil {
		opts.metricsCollector = NoopMetricsCollector{}
	}
	if opts.logger == nil {
		opts.logger = NoopLogger()
	}
	return opts
}
