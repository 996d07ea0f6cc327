package pure

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a cell at construction time.
type Option func(*options)

type options struct {
	logger *zap.Logger
	name   string
}

// WithLogger makes the cell report its transitions to logger.
// Every cell gets its own cell_id field so interleaved logs stay readable.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithName labels the cell's log entries.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
		return o
	}
	fields := []zap.Field{zap.String("cell_id", uuid.NewString())}
	if o.name != "" {
		fields = append(fields, zap.String("cell", o.name))
	}
	o.logger = o.logger.With(fields...)
	return o
}
