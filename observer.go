// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import "github.com/rs/zerolog"

// EventKind identifies what happened in an [Event].
type EventKind uint8

const (
	// EventCreate is emitted once when a queue is built.
	EventCreate EventKind = iota
	// EventEnqueue is emitted after an element is stored.
	EventEnqueue
	// EventDequeue is emitted after an element is removed.
	EventDequeue
	// EventWouldBlock is emitted when a NoWait operation finds its slot not ready.
	EventWouldBlock
	// EventWait is emitted when a Wait operation finds its slot not ready.
	EventWait
	// EventCancel is emitted when a parked operation gives up on its context.
	EventCancel
)

func (k EventKind) String() string {
	switch k {
	case EventCreate:
		return "create"
	case EventEnqueue:
		return "enqueue"
	case EventDequeue:
		return "dequeue"
	case EventWouldBlock:
		return "would-block"
	case EventWait:
		return "wait"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Op is the operation class an [Event] belongs to.
type Op uint8

const (
	OpNone Op = iota
	OpEnqueue
	OpDequeue
)

func (o Op) String() string {
	switch o {
	case OpEnqueue:
		return "enqueue"
	case OpDequeue:
		return "dequeue"
	default:
		return "none"
	}
}

// Event describes one observable step of a queue.
type Event struct {
	Kind  EventKind
	Op    Op
	Queue string // queue name
	Index int    // slot index for enqueue/dequeue, -1 otherwise
	Len   int    // occupied slots after the step, -1 when not sampled
	Cap   int
}

// Observer receives queue events.
//
// Observe is called after the queue lock is released, on the goroutine that
// performed the operation. A slow Observer slows that caller only; it never
// holds other producers or consumers back.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts a function to the [Observer] interface.
type ObserverFunc func(e Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) {
	f(e)
}

// LogObserver writes queue events to a zerolog logger.
//
// Creation is logged at info, cancellation at warn, everything else at
// debug. Set the logger level to filter.
type LogObserver struct {
	log zerolog.Logger
}

// NewLogObserver returns an Observer that logs to l.
func NewLogObserver(l zerolog.Logger) *LogObserver {
	return &LogObserver{log: l}
}

// Observe logs e.
func (o *LogObserver) Observe(e Event) {
	var ev *zerolog.Event
	switch e.Kind {
	case EventCreate:
		ev = o.log.Info()
	case EventCancel:
		ev = o.log.Warn()
	default:
		ev = o.log.Debug()
	}
	ev = ev.Str("queue", e.Queue).Int("cap", e.Cap)
	if e.Op != OpNone {
		ev = ev.Stringer("op", e.Op)
	}
	if e.Index >= 0 {
		ev = ev.Int("index", e.Index)
	}
	if e.Len >= 0 {
		ev = ev.Int("len", e.Len)
	}
	ev.Msg(e.Kind.String())
}
