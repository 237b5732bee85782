package collection

import (
	log "github.com/sirupsen/logrus"
)

var defaultLogger = log.WithField("component", "collection")

type options struct {
	logger *log.Entry
}

type Option func(*options)

// WithLogger routes the collection's diagnostics to logger. Collections
// derived from it (Fetch, Merge, ToArray) share the same logger.
func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: defaultLogger}
	for _, fn := range opts {
		fn(o)
	}
	if o.logger == nil {
		o.logger = defaultLogger
	}
	return o
}
