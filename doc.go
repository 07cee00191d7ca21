// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bbq provides a bounded blocking FIFO queue.
//
// [Bounded] holds a fixed number of elements in a ring of slots. Producers
// wait when the queue is full, consumers wait when it is empty, and any
// number of each may share one queue.
//
// # Quick Start
//
// Direct constructor:
//
//	q, err := bbq.NewBounded[Event](1024)
//	q, err := bbq.NewBounded[*Request](256, bbq.WithName("requests"))
//
// Builder API:
//
//	q, err := bbq.Build[Event](bbq.New(1024))
//	q, err := bbq.Build[Event](bbq.New(1024).Name("ingest").Spin(64))
//
// From a YAML file:
//
//	cfg, err := bbq.LoadConfig("queue.yaml")
//	q, err := bbq.Build[Event](cfg.Builder())
//
// # Basic Usage
//
// Every operation takes a [Mode]. Wait parks the caller; NoWait returns
// [ErrWouldBlock] instead:
//
//	// Blocking enqueue, bounded by ctx
//	value := 42
//	if err := q.Put(ctx, &value, bbq.Wait); err != nil {
//	    return err // ctx done, queue unchanged
//	}
//
//	// Non-blocking dequeue
//	elem, err := q.Take(ctx, bbq.NoWait)
//	if bbq.IsWouldBlock(err) {
//	    // Queue is empty
//	}
//
// Shorthands:
//
//	q.Enqueue(&v)         // Put(context.Background(), &v, NoWait)
//	q.EnqueueWait(ctx, &v) // Put(ctx, &v, Wait)
//	q.Dequeue()           // Take(context.Background(), NoWait)
//	q.DequeueWait(ctx)    // Take(ctx, Wait)
//
// # Common Patterns
//
// Worker Pool:
//
//	jobs, _ := bbq.NewBounded[Job](64)
//
//	for range numWorkers {
//	    go func() {
//	        for {
//	            job, err := jobs.DequeueWait(ctx)
//	            if err != nil {
//	                return // shutting down
//	            }
//	            job.Run()
//	        }
//	    }()
//	}
//
//	// Submitters block while all workers are busy and the queue is full
//	func Submit(ctx context.Context, j Job) error {
//	    return jobs.EnqueueWait(ctx, &j)
//	}
//
// Load Shedding:
//
//	if err := q.Enqueue(&req); bbq.IsWouldBlock(err) {
//	    return errOverloaded
//	}
//
// # Synchronization
//
// One mutex guards the slot ring and both cursors for the duration of a
// single enqueue or dequeue. Two condition variables share that mutex:
//
//	notFull  - producers wait, every dequeue broadcasts
//	notEmpty - consumers wait, every enqueue broadcasts
//
// Woken goroutines re-check their slot before proceeding, so at most one of
// several contending producers claims a free slot and at most one of several
// contending consumers claims a ready one. There is no fairness among
// contenders.
//
// FIFO order holds across all producers and consumers: elements leave in the
// order their enqueues completed.
//
// # Cancellation
//
// A waiting operation watches its context. When the context is done, the
// operation wakes, leaves the queue untouched, and returns an error that
// matches both [ErrCanceled] and the context's error:
//
//	ctx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
//	defer cancel()
//	v, err := q.DequeueWait(ctx)
//	switch {
//	case bbq.IsCanceled(err):
//	    // errors.Is(err, context.DeadlineExceeded) also holds
//	}
//
// # Error Handling
//
// [ErrWouldBlock] is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency; the classifiers delegate to iox:
//
//	bbq.IsWouldBlock(err)  // true if queue full/empty in NoWait mode
//	bbq.IsSemantic(err)    // true if control flow signal
//	bbq.IsNonFailure(err)  // true if nil or ErrWouldBlock
//	bbq.IsCanceled(err)    // true if a wait gave up on its context
//
// Construction with capacity <= 0 returns [ErrInvalidCapacity]. Enqueueing
// a nil pointer returns [ErrNilElement].
//
// # Capacity and Length
//
// Capacity is exact; there is no power-of-2 rounding:
//
//	q, _ := bbq.NewBounded[int](1)     // Holds 1 element
//	q, _ := bbq.NewBounded[int](1000)  // Holds 1000 elements
//
// Len takes the queue lock and is exact at the instant it returns.
//
// # Observability
//
// An [Observer] receives an [Event] for creation, each completed operation,
// each would-block outcome, each wait and each cancellation. Events are
// delivered after the lock is released. [LogObserver] writes them to a
// zerolog logger:
//
//	log := zerolog.New(os.Stderr).Level(zerolog.InfoLevel)
//	q, _ := bbq.NewBounded[Msg](128, bbq.WithObserver(bbq.NewLogObserver(log)))
//
// [Bounded.Stats] returns lock-free counters for the same outcomes.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for counters, [code.hybscloud.com/spin] for
// CPU pause instructions while spinning before a park,
// [github.com/rs/zerolog] for [LogObserver], [github.com/google/uuid] for
// default queue names and [gopkg.in/yaml.v3] for [Config].
package bbq
