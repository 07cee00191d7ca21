// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import (
	"context"
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a NoWait operation cannot proceed immediately.
//
// For Enqueue: the queue is full (backpressure)
// For Dequeue: the queue is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. The caller decides
// whether to retry, switch to a waiting call, or shed the element.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrCanceled indicates a waiting operation was abandoned because its
// context was done. The queue is left exactly as it was before the call.
//
// Errors returned for cancellation also wrap the context's error, so
// errors.Is(err, context.DeadlineExceeded) works as expected.
var ErrCanceled = errors.New("bbq: wait canceled")

// ErrInvalidCapacity is returned when a queue is built with capacity <= 0.
var ErrInvalidCapacity = errors.New("bbq: capacity must be > 0")

// ErrNilElement is returned when a nil element pointer is enqueued.
var ErrNilElement = errors.New("bbq: nil element")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// IsCanceled reports whether err ends a wait abandoned through its context.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

func canceled(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrCanceled, context.Cause(ctx))
}

func invalidCapacity(capacity int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
}
