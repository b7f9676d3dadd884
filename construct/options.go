// SPDX-License-Identifier: MIT
//
// options.go — functional options for the construct package.
//
// Option constructors panic on meaningless inputs; constructors themselves
// return errors.

package construct

import "github.com/katalvlaran/varigraph/logging"

// DefaultMaxNodeLength bounds node sequence length unless overridden.
const DefaultMaxNodeLength = 32

// Option customizes graph construction.
type Option func(*config)

// config aggregates the construction knobs. Constructors receive it by value.
type config struct {
	altPaths   bool
	maxNodeLen int
	idStart    int64
	logger     *logging.Logger
	stats      *Stats
}

// Stats counts what construction consumed and produced.
type Stats struct {
	Contigs         int
	RecordsRead     int
	RecordsSkipped  int // unusable, or on a contig absent from the reference
	Variants        int
	AllelePaths     int
	ReferenceLength int
}

func newConfig(opts ...Option) config {
	c := config{maxNodeLen: DefaultMaxNodeLength, idStart: 1, logger: logging.Noop(), stats: &Stats{}}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithAltPaths adds a "_alt_<variant-id>_<i>" path for every allele.
func WithAltPaths() Option {
	return func(c *config) { c.altPaths = true }
}

// WithMaxNodeLength cuts sequences into nodes of at most n bases.
// Panics if n < 1.
func WithMaxNodeLength(n int) Option {
	if n < 1 {
		panic("construct: WithMaxNodeLength(n < 1)")
	}
	return func(c *config) { c.maxNodeLen = n }
}

// WithIDStart sets the first node id of an empty graph. Panics if id < 1.
func WithIDStart(id int64) Option {
	if id < 1 {
		panic("construct: WithIDStart(id < 1)")
	}
	return func(c *config) { c.idStart = id }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic("construct: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithStats makes construction accumulate its counters into dst.
// Panics on nil.
func WithStats(dst *Stats) Option {
	if dst == nil {
		panic("construct: WithStats(nil)")
	}
	return func(c *config) { c.stats = dst }
}
