package pixelgo

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	parallelism int
}

func defaultOptions() *options {
	return &options{
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		parallelism: 1,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// Option configures ReadVariant/WriteVariant/Convert behavior.
type Option func(*options)

// WithLogger configures structured logging for plane I/O and conversions.
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics configures a metrics collector for plane I/O and conversions.
// If nil is passed, metrics stay disabled.
func WithMetrics(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metrics = mc
		}
	}
}

// WithParallelism configures how many planes ReadVariant and WriteVariant
// process concurrently. The variant is not handed to the caller until every
// plane has landed. Unpacked planes decode into disjoint storage; bit-plane
// decodes are serialized internally because packed planes can share storage
// words.
//
// Values below 1 select sequential processing (the default).
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}
