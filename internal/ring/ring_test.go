// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"testing"

	"code.hybscloud.com/bbq/internal/ring"
)

func TestRingPushPop(t *testing.T) {
	r := ring.New[int](4)

	if !r.Writable() || r.Readable() {
		t.Fatalf("new ring: writable=%v readable=%v, want true false", r.Writable(), r.Readable())
	}

	for i := range 4 {
		idx, ok := r.Push(i + 10)
		if !ok {
			t.Fatalf("Push(%d): slot occupied", i)
		}
		if idx != i {
			t.Fatalf("Push(%d) index: got %d, want %d", i, idx, i)
		}
	}

	if r.Writable() {
		t.Fatalf("full ring reports writable")
	}
	if idx, ok := r.Push(99); ok {
		t.Fatalf("Push on full: got ok at index %d", idx)
	}
	if r.Write() != 0 {
		t.Fatalf("write cursor after failed Push: got %d, want 0", r.Write())
	}

	for i := range 4 {
		v, idx, ok := r.Pop()
		if !ok {
			t.Fatalf("Pop(%d): slot empty", i)
		}
		if v != i+10 || idx != i {
			t.Fatalf("Pop(%d): got (%d, %d), want (%d, %d)", i, v, idx, i+10, i)
		}
	}

	if _, _, ok := r.Pop(); ok {
		t.Fatalf("Pop on empty: got ok")
	}
	if r.Read() != 0 {
		t.Fatalf("read cursor after failed Pop: got %d, want 0", r.Read())
	}
}

func TestRingSizeOne(t *testing.T) {
	r := ring.New[string](1)

	for round := range 3 {
		if _, ok := r.Push("x"); !ok {
			t.Fatalf("round %d: Push failed", round)
		}
		if r.Read() != 0 || r.Write() != 0 {
			t.Fatalf("round %d: cursors (%d, %d), want (0, 0)", round, r.Read(), r.Write())
		}
		if !r.Readable() || r.Writable() {
			t.Fatalf("round %d: readable=%v writable=%v after Push", round, r.Readable(), r.Writable())
		}
		if _, ok := r.Push("y"); ok {
			t.Fatalf("round %d: second Push succeeded", round)
		}
		v, _, ok := r.Pop()
		if !ok || v != "x" {
			t.Fatalf("round %d: Pop got (%q, %v), want (\"x\", true)", round, v, ok)
		}
		if r.Readable() || !r.Writable() {
			t.Fatalf("round %d: readable=%v writable=%v after Pop", round, r.Readable(), r.Writable())
		}
	}
}

func TestRingWraparound(t *testing.T) {
	r := ring.New[int](3)
	next := 0
	want := 0

	for range 100 {
		for r.Writable() {
			r.Push(next)
			next++
		}
		if r.Len() != 3 {
			t.Fatalf("Len when full: got %d, want 3", r.Len())
		}
		// Drain two, leaving one behind so cursors drift.
		for range 2 {
			v, _, ok := r.Pop()
			if !ok || v != want {
				t.Fatalf("Pop: got (%d, %v), want (%d, true)", v, ok, want)
			}
			want++
		}
	}
}

func TestRingPopClearsSlot(t *testing.T) {
	r := ring.New[*int](2)
	v := 7
	r.Push(&v)
	r.Pop()

	got, occupied := r.At(0)
	if occupied || got != nil {
		t.Fatalf("At(0) after Pop: got (%v, %v), want (nil, false)", got, occupied)
	}
}

func TestRingReset(t *testing.T) {
	r := ring.New[int](3)
	r.Push(1)
	r.Push(2)
	r.Pop()
	r.Reset()

	if r.Read() != 0 || r.Write() != 0 || r.Len() != 0 {
		t.Fatalf("after Reset: read=%d write=%d len=%d", r.Read(), r.Write(), r.Len())
	}
	for i := range r.Size() {
		if _, occupied := r.At(i); occupied {
			t.Fatalf("slot %d occupied after Reset", i)
		}
	}
}

func TestRingPanicOnNonPositiveSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d): expected panic", n)
				}
			}()
			ring.New[int](n)
		}()
	}
}
