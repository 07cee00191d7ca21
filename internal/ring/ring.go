// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides the slot ring behind bbq.Bounded.
//
// Ring is not synchronized. The owner must serialize every call, including
// the read-only predicates.
package ring

// Ring is a fixed-size circular buffer of tagged slots with a read cursor
// and a write cursor.
//
// The read cursor is advanced only by Pop and the write cursor only by Push.
// A slot is occupied between the Push that filled it and the Pop that
// drained it; occupancy is stored per slot, so capacity 1 needs no special
// case: both cursors address slot 0 and the tag decides.
type Ring[T any] struct {
	slots []slot[T]
	read  int
	write int
	count int
}

type slot[T any] struct {
	val      T
	occupied bool
}

// New returns a ring with n empty slots. n must be positive.
func New[T any](n int) *Ring[T] {
	if n <= 0 {
		panic("ring: size must be > 0")
	}
	return &Ring[T]{slots: make([]slot[T], n)}
}

// Readable reports whether the slot at the read cursor is occupied.
func (r *Ring[T]) Readable() bool {
	return r.slots[r.read].occupied
}

// Writable reports whether the slot at the write cursor is empty.
func (r *Ring[T]) Writable() bool {
	return !r.slots[r.write].occupied
}

// Push stores v at the write cursor and advances it.
// Returns the physical index written and false if the slot is occupied.
func (r *Ring[T]) Push(v T) (int, bool) {
	i := r.write
	s := &r.slots[i]
	if s.occupied {
		return i, false
	}
	s.val = v
	s.occupied = true
	r.write = r.next(i)
	r.count++
	return i, true
}

// Pop drains the slot at the read cursor and advances it.
// Returns the value, the physical index read and false if the slot is empty.
func (r *Ring[T]) Pop() (T, int, bool) {
	i := r.read
	s := &r.slots[i]
	if !s.occupied {
		var zero T
		return zero, i, false
	}
	v := s.val
	var zero T
	s.val = zero
	s.occupied = false
	r.read = r.next(i)
	r.count--
	return v, i, true
}

func (r *Ring[T]) next(i int) int {
	i++
	if i == len(r.slots) {
		return 0
	}
	return i
}

// Size returns the number of slots.
func (r *Ring[T]) Size() int {
	return len(r.slots)
}

// Len returns the number of occupied slots.
func (r *Ring[T]) Len() int {
	return r.count
}

// Read returns the read cursor.
func (r *Ring[T]) Read() int {
	return r.read
}

// Write returns the write cursor.
func (r *Ring[T]) Write() int {
	return r.write
}

// At returns the content of slot i and whether it is occupied.
// Panics if i is out of range.
func (r *Ring[T]) At(i int) (T, bool) {
	s := &r.slots[i]
	return s.val, s.occupied
}

// Reset empties every slot and moves both cursors to 0.
func (r *Ring[T]) Reset() {
	clear(r.slots)
	r.read, r.write, r.count = 0, 0, 0
}
