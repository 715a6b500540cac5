// File: pool/options.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"github.com/sirupsen/logrus"

	"github.com/momentics/hioload-pool/api"
)

type options[T any] struct {
	name      string
	capacity  int
	maxSlots  int
	ctor      func(*T)
	dtor      func(*T)
	observers []api.Observer
	log       logrus.FieldLogger
}

// Option configures a Pool at construction.
type Option[T any] func(*options[T])

// WithName labels the pool in stats, logs and registries.
func WithName[T any](name string) Option[T] {
	return func(o *options[T]) { o.name = name }
}

// WithCapacity pre-allocates n free slots.
func WithCapacity[T any](n int) Option[T] {
	return func(o *options[T]) { o.capacity = n }
}

// WithMaxSlots bounds the total number of slots; growth past it fails with
// api.ErrResourceExhausted. Zero means unbounded.
func WithMaxSlots[T any](n int) Option[T] {
	return func(o *options[T]) { o.maxSlots = n }
}

// WithConstructor runs fn on the zeroed object of every request.
func WithConstructor[T any](fn func(*T)) Option[T] {
	return func(o *options[T]) { o.ctor = fn }
}

// WithDestructor runs fn on every released object before it is zeroed.
func WithDestructor[T any](fn func(*T)) Option[T] {
	return func(o *options[T]) { o.dtor = fn }
}

// WithObserver registers obs before the initial pre-allocation, so it sees
// the capacity OnAlloc event. Repeated options register in order.
func WithObserver[T any](obs api.Observer) Option[T] {
	return func(o *options[T]) { o.observers = append(o.observers, obs) }
}

// WithLogger sets the logger used for pool diagnostics.
func WithLogger[T any](log logrus.FieldLogger) Option[T] {
	return func(o *options[T]) { o.log = log }
}
