// SPDX-License-Identifier: MIT

package store

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBucket holds graphs unless WithBucket names another one.
const DefaultBucket = "graphs"

// DefaultTimeout bounds the wait for the database file lock.
const DefaultTimeout = time.Second

type config struct {
	bucket  string
	timeout time.Duration
	logger  logrus.FieldLogger
}

// Option configures Open.
type Option func(*config)

// WithBucket selects the bucket graphs are kept in. Panics on "".
func WithBucket(name string) Option {
	if name == "" {
		panic("store: WithBucket(\"\")")
	}
	return func(c *config) { c.bucket = name }
}

// WithTimeout bounds the wait for the file lock held by another process.
// Zero waits forever.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("store: WithTimeout with negative duration")
	}
	return func(c *config) { c.timeout = d }
}

// WithLogger sets the logger used for debug tracing; the default discards
// everything. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("store: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) config {
	discard := logrus.New()
	discard.Out = io.Discard
	c := config{
		bucket:  DefaultBucket,
		timeout: DefaultTimeout,
		logger:  discard,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}
