// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import "github.com/google/uuid"

// Options configures queue creation.
type Options struct {
	// Identity used in observer events
	name string

	// Optional event sink; nil disables events
	observer Observer

	// Performance hints
	spinLimit int // Pause iterations before parking

	// Capacity (exact, no rounding)
	capacity int
}

// Option configures a queue built by [NewBounded].
type Option func(*Options)

// WithName sets the queue name reported in observer events.
// A random UUID is used when no name is set.
func WithName(name string) Option {
	return func(o *Options) { o.name = name }
}

// WithObserver attaches an event sink. A nil Observer disables events.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.observer = obs }
}

// WithSpin lets a waiting operation spin up to n times before parking.
// Values <= 0 disable spinning.
func WithSpin(n int) Option {
	return func(o *Options) { o.spinLimit = max(n, 0) }
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	q, err := bbq.Build[Event](bbq.New(1024).Name("ingest").Spin(64))
//
//	// With a logging observer
//	q, err := bbq.Build[*Request](bbq.New(256).Observer(bbq.NewLogObserver(log)))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// The capacity is exact: New(3) holds at most 3 elements.
// Capacity is validated by [Build].
func New(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity}}
}

// Name sets the queue name reported in observer events.
func (b *Builder) Name(name string) *Builder {
	b.opts.name = name
	return b
}

// Observer attaches an event sink.
func (b *Builder) Observer(obs Observer) *Builder {
	b.opts.observer = obs
	return b
}

// Spin lets a waiting operation spin up to n times before parking.
//
// Trade-off: lower wake-up latency for short waits, CPU burned on long ones.
func (b *Builder) Spin(n int) *Builder {
	b.opts.spinLimit = max(n, 0)
	return b
}

// Build creates a Bounded[T] from the builder's configuration.
// Returns ErrInvalidCapacity if the capacity is not positive.
func Build[T any](b *Builder) (*Bounded[T], error) {
	return newBounded[T](b.opts)
}

// NewBounded creates a queue holding at most capacity elements.
// Returns ErrInvalidCapacity if capacity <= 0.
func NewBounded[T any](capacity int, opts ...Option) (*Bounded[T], error) {
	o := Options{capacity: capacity}
	for _, opt := range opts {
		opt(&o)
	}
	return newBounded[T](o)
}

func defaultName() string {
	return uuid.NewString()
}
