// SPDX-License-Identifier: MIT
package sample

import "github.com/katalvlaran/varigraph/logging"

// Option configures NewResolver and Extract.
type Option func(*options)

type options struct {
	sample          string
	keepAllelePaths bool
	logger          *logging.Logger
}

// WithSample selects the sample whose genotypes are resolved. It is required
// when the variant source carries more than one sample.
func WithSample(name string) Option {
	return func(o *options) { o.sample = name }
}

// WithKeepAllelePaths keeps allele paths that survive pruning instead of
// removing them after extraction.
func WithKeepAllelePaths() Option {
	return func(o *options) { o.keepAllelePaths = true }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: logging.Noop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
