// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

// Test-only introspection. Each accessor takes the queue lock and never
// mutates state, except Reset.

// ReadCursor returns the slot index the next dequeue will drain.
func (q *Bounded[T]) ReadCursor() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.Read()
}

// WriteCursor returns the slot index the next enqueue will fill.
func (q *Bounded[T]) WriteCursor() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.Write()
}

// SlotContent returns the raw content of slot i and whether it is occupied.
func (q *Bounded[T]) SlotContent(i int) (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.At(i)
}

// Reset empties the queue and moves both cursors to 0.
// Unsafe while other goroutines use the queue.
func (q *Bounded[T]) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ring.Reset()
	q.occupied.StoreRelaxed(0)
	q.notFull.Broadcast()
}
