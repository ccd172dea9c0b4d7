package engine

import "sync"

// DefaultQueueSize is plenty for a human mashing keys between two ticks.
const DefaultQueueSize = 64

// Queue carries commands from the input goroutine into the scheduler loop.
// Push never blocks: when the queue is full it drops the oldest pending
// command of the same kind (falling back to the oldest command of any kind),
// but never a Quit, so the exit path cannot be starved out.
type Queue struct {
	mu    sync.Mutex
	items []Command
	limit int
	ready chan struct{}
}

func NewQueue(limit int) *Queue {
	if limit < 1 {
		limit = DefaultQueueSize
	}
	return &Queue{
		items: make([]Command, 0, limit),
		limit: limit,
		ready: make(chan struct{}, 1),
	}
}

// Push enqueues cmd and wakes the scheduler if it is blocked.
func (q *Queue) Push(cmd Command) {
	q.mu.Lock()
	if len(q.items) >= q.limit {
		q.evictLocked(cmd.Kind)
	}
	q.items = append(q.items, cmd)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// evictLocked makes room for one more command. Quit commands are never
// evicted; if the queue somehow holds nothing but Quits we grow instead.
func (q *Queue) evictLocked(kind CommandKind) {
	victim := -1
	for i, c := range q.items {
		if c.Kind == CmdQuit {
			continue
		}
		if c.Kind == kind {
			victim = i
			break
		}
		if victim == -1 {
			victim = i
		}
	}
	if victim == -1 {
		return
	}
	q.items = append(q.items[:victim], q.items[victim+1:]...)
}

// Drain returns every queued command in arrival order. Non-blocking; the
// result may be empty.
func (q *Queue) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = make([]Command, 0, q.limit)
	return out
}

// Ready yields a signal whenever new commands may be waiting. A receive may
// be spurious (commands already drained); callers just Drain and move on.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Len reports how many commands are pending.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
