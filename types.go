// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import "context"

// Mode selects what an operation does when its slot is not ready.
type Mode uint8

const (
	// Wait parks the caller until the slot is ready or the context is done.
	Wait Mode = iota
	// NoWait checks once and returns ErrWouldBlock instead of parking.
	NoWait
)

func (m Mode) String() string {
	switch m {
	case Wait:
		return "wait"
	case NoWait:
		return "nowait"
	default:
		return "invalid"
	}
}

// Queue is the combined producer-consumer interface for a bounded FIFO queue.
//
// Example:
//
//	q, err := bbq.NewBounded[int](1024)
//	if err != nil {
//	    return err
//	}
//
//	// Blocking enqueue
//	val := 42
//	if err := q.EnqueueWait(ctx, &val); err != nil {
//	    return err // ctx done
//	}
//
//	// Non-blocking dequeue
//	elem, err := q.Dequeue()
//	if bbq.IsWouldBlock(err) {
//	    // Queue is empty
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
	Len() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The queue
// stores a copy of the pointed-to value, so the original can be modified
// after the call returns.
type Producer[T any] interface {
	// Put adds an element at the write cursor.
	//
	// With NoWait, returns ErrWouldBlock if the queue is full.
	// With Wait, parks until a slot frees up; returns an error matching
	// ErrCanceled if ctx is done first.
	Put(ctx context.Context, elem *T, mode Mode) error

	// Enqueue is Put with NoWait.
	Enqueue(elem *T) error

	// EnqueueWait is Put with Wait.
	EnqueueWait(ctx context.Context, elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value. The slot it occupied is cleared to allow
// garbage collection of referenced objects.
type Consumer[T any] interface {
	// Take removes and returns the element at the read cursor.
	//
	// With NoWait, returns (zero-value, ErrWouldBlock) if the queue is empty.
	// With Wait, parks until an element arrives; returns an error matching
	// ErrCanceled if ctx is done first.
	Take(ctx context.Context, mode Mode) (T, error)

	// Dequeue is Take with NoWait.
	Dequeue() (T, error)

	// DequeueWait is Take with Wait.
	DequeueWait(ctx context.Context) (T, error)
}
