// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import "code.hybscloud.com/atomix"

// Stats is a point-in-time snapshot of a queue's operation counters.
//
// Counters are read individually without the queue lock, so a snapshot
// taken under load is not a consistent cut across fields.
type Stats struct {
	Enqueued uint64 // completed enqueues
	Dequeued uint64 // completed dequeues

	EnqueueWouldBlock uint64 // NoWait enqueues that found the queue full
	DequeueWouldBlock uint64 // NoWait dequeues that found the queue empty

	EnqueueWaits uint64 // Wait enqueues that found the queue full
	DequeueWaits uint64 // Wait dequeues that found the queue empty

	EnqueueCanceled uint64
	DequeueCanceled uint64
}

type counters struct {
	enqueued atomix.Int64
	dequeued atomix.Int64

	enqWouldBlock atomix.Int64
	deqWouldBlock atomix.Int64

	enqWaits atomix.Int64
	deqWaits atomix.Int64

	enqCanceled atomix.Int64
	deqCanceled atomix.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Enqueued:          uint64(c.enqueued.Load()),
		Dequeued:          uint64(c.dequeued.Load()),
		EnqueueWouldBlock: uint64(c.enqWouldBlock.Load()),
		DequeueWouldBlock: uint64(c.deqWouldBlock.Load()),
		EnqueueWaits:      uint64(c.enqWaits.Load()),
		DequeueWaits:      uint64(c.deqWaits.Load()),
		EnqueueCanceled:   uint64(c.enqCanceled.Load()),
		DequeueCanceled:   uint64(c.deqCanceled.Load()),
	}
}
