// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import (
	"context"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/bbq/internal/ring"
)

// Bounded is a fixed-capacity blocking FIFO queue for any number of
// producer and consumer goroutines.
//
// One mutex guards the slot ring and both cursors. Producers park on notFull
// and consumers on notEmpty; every successful enqueue broadcasts notEmpty and
// every successful dequeue broadcasts notFull. Woken goroutines re-check
// their slot, so only one of several contenders claims a given transition.
//
// Memory: capacity slots of T plus one occupancy flag each
type Bounded[T any] struct {
	mu       sync.Mutex
	notFull  sync.Cond
	notEmpty sync.Cond
	ring     *ring.Ring[T]

	occupied  atomix.Int64 // Mirrors ring.Len for lock-free spin checks
	capacity  int64
	spinLimit int

	name     string
	observer Observer
	stats    counters
}

func newBounded[T any](o Options) (*Bounded[T], error) {
	if o.capacity <= 0 {
		return nil, invalidCapacity(o.capacity)
	}
	if o.name == "" {
		o.name = defaultName()
	}

	q := &Bounded[T]{
		ring:      ring.New[T](o.capacity),
		capacity:  int64(o.capacity),
		spinLimit: o.spinLimit,
		name:      o.name,
		observer:  o.observer,
	}
	q.notFull.L = &q.mu
	q.notEmpty.L = &q.mu

	q.emit(Event{Kind: EventCreate, Index: -1, Len: 0})
	return q, nil
}

// Put adds an element at the write cursor.
//
// With NoWait, Put returns ErrWouldBlock if the queue is full. With Wait,
// Put parks until a consumer frees the slot; if ctx is done first it returns
// an error matching both ErrCanceled and ctx's error, and the queue is
// unchanged. A context that is already done does not prevent an enqueue
// that can complete without parking.
//
// Any mode other than NoWait waits.
func (q *Bounded[T]) Put(ctx context.Context, elem *T, mode Mode) error {
	if elem == nil {
		return ErrNilElement
	}

	q.mu.Lock()
	if !q.ring.Writable() {
		q.mu.Unlock()
		if mode == NoWait {
			q.stats.enqWouldBlock.Add(1)
			q.emit(Event{Kind: EventWouldBlock, Op: OpEnqueue, Index: -1, Len: -1})
			return ErrWouldBlock
		}

		q.stats.enqWaits.Add(1)
		q.emit(Event{Kind: EventWait, Op: OpEnqueue, Index: -1, Len: -1})
		q.spinWhile(q.looksFull)

		q.mu.Lock()
		if err := q.wait(ctx, &q.notFull, q.ring.Writable); err != nil {
			q.mu.Unlock()
			q.stats.enqCanceled.Add(1)
			q.emit(Event{Kind: EventCancel, Op: OpEnqueue, Index: -1, Len: -1})
			return err
		}
	}

	idx, _ := q.ring.Push(*elem)
	n := q.ring.Len()
	q.occupied.AddAcqRel(1)
	q.notEmpty.Broadcast()
	q.mu.Unlock()

	q.stats.enqueued.Add(1)
	q.emit(Event{Kind: EventEnqueue, Op: OpEnqueue, Index: idx, Len: n})
	return nil
}

// Enqueue adds an element without waiting.
// Returns ErrWouldBlock if the queue is full.
func (q *Bounded[T]) Enqueue(elem *T) error {
	return q.Put(context.Background(), elem, NoWait)
}

// EnqueueWait adds an element, parking while the queue is full.
// Returns an error matching ErrCanceled if ctx is done before a slot frees.
func (q *Bounded[T]) EnqueueWait(ctx context.Context, elem *T) error {
	return q.Put(ctx, elem, Wait)
}

// Take removes and returns the element at the read cursor.
//
// With NoWait, Take returns (zero-value, ErrWouldBlock) if the queue is
// empty. With Wait, Take parks until a producer fills the slot; if ctx is
// done first it returns an error matching both ErrCanceled and ctx's error,
// and the queue is unchanged.
//
// Any mode other than NoWait waits.
func (q *Bounded[T]) Take(ctx context.Context, mode Mode) (T, error) {
	q.mu.Lock()
	if !q.ring.Readable() {
		q.mu.Unlock()
		if mode == NoWait {
			q.stats.deqWouldBlock.Add(1)
			q.emit(Event{Kind: EventWouldBlock, Op: OpDequeue, Index: -1, Len: -1})
			var zero T
			return zero, ErrWouldBlock
		}

		q.stats.deqWaits.Add(1)
		q.emit(Event{Kind: EventWait, Op: OpDequeue, Index: -1, Len: -1})
		q.spinWhile(q.looksEmpty)

		q.mu.Lock()
		if err := q.wait(ctx, &q.notEmpty, q.ring.Readable); err != nil {
			q.mu.Unlock()
			q.stats.deqCanceled.Add(1)
			q.emit(Event{Kind: EventCancel, Op: OpDequeue, Index: -1, Len: -1})
			var zero T
			return zero, err
		}
	}

	elem, idx, _ := q.ring.Pop()
	n := q.ring.Len()
	q.occupied.AddAcqRel(-1)
	q.notFull.Broadcast()
	q.mu.Unlock()

	q.stats.dequeued.Add(1)
	q.emit(Event{Kind: EventDequeue, Op: OpDequeue, Index: idx, Len: n})
	return elem, nil
}

// Dequeue removes and returns an element without waiting.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Bounded[T]) Dequeue() (T, error) {
	return q.Take(context.Background(), NoWait)
}

// DequeueWait removes and returns an element, parking while the queue is
// empty. Returns an error matching ErrCanceled if ctx is done first.
func (q *Bounded[T]) DequeueWait(ctx context.Context) (T, error) {
	return q.Take(ctx, Wait)
}

// wait parks on c until ready reports true or ctx is done.
// Must be called with q.mu held; returns with q.mu held.
func (q *Bounded[T]) wait(ctx context.Context, c *sync.Cond, ready func() bool) error {
	if ready() {
		return nil
	}
	if ctx.Err() != nil {
		return canceled(ctx)
	}
	if ctx.Done() != nil {
		// Wake this waiter (and its peers, who re-check) when ctx is done.
		stop := context.AfterFunc(ctx, func() {
			q.mu.Lock()
			defer q.mu.Unlock()
			c.Broadcast()
		})
		defer stop()
	}
	for !ready() {
		if ctx.Err() != nil {
			return canceled(ctx)
		}
		c.Wait()
	}
	return nil
}

// spinWhile pauses while busy reports true, at most spinLimit times.
func (q *Bounded[T]) spinWhile(busy func() bool) {
	sw := spin.Wait{}
	for i := 0; i < q.spinLimit && busy(); i++ {
		sw.Once()
	}
}

func (q *Bounded[T]) looksFull() bool {
	return q.occupied.Load() >= q.capacity
}

func (q *Bounded[T]) looksEmpty() bool {
	return q.occupied.Load() <= 0
}

func (q *Bounded[T]) emit(e Event) {
	if q.observer == nil {
		return
	}
	e.Queue = q.name
	e.Cap = int(q.capacity)
	q.observer.Observe(e)
}

// Cap returns the queue capacity.
func (q *Bounded[T]) Cap() int {
	return int(q.capacity)
}

// Len returns the number of elements currently in the queue.
func (q *Bounded[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.Len()
}

// Name returns the queue name reported in observer events.
func (q *Bounded[T]) Name() string {
	return q.name
}

// Stats returns a snapshot of the queue's operation counters.
func (q *Bounded[T]) Stats() Stats {
	return q.stats.snapshot()
}
