// Package eventlog implements the usage tracking pipeline: request capture,
// buffered event queues, and the fold into per-user daily aggregates.
package eventlog

import (
	"sync"
	"time"
)

// FlushFunc receives a drained batch. It runs outside the queue lock, so it
// may block or call back into the queue.
type FlushFunc[T any] func(items []T)

// BufferedQueue accumulates items and flushes them as a batch when either
// the buffer reaches size or the debounce timeout elapses. The timeout is
// re-armed on every add, so a steady trickle of items below the size
// threshold still flushes once the trickle pauses.
type BufferedQueue[T any] struct {
	mu      sync.Mutex
	items   []T
	size    int
	timeout time.Duration
	flushFn FlushFunc[T]
	timer   *time.Timer
	closed  bool
}

// NewBufferedQueue builds a queue flushing at size items or timeout after
// the most recent add, whichever comes first.
func NewBufferedQueue[T any](size int, timeout time.Duration, flushFn FlushFunc[T]) *BufferedQueue[T] {
	return &BufferedQueue[T]{
		size:    size,
		timeout: timeout,
		flushFn: flushFn,
		items:   make([]T, 0, size),
	}
}

// Add enqueues one item. When the buffer reaches the size threshold the
// batch is flushed synchronously on the caller's goroutine; otherwise the
// debounce timer is re-armed. Items added after Close are dropped.
func (q *BufferedQueue[T]) Add(item T) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, item)

	if len(q.items) >= q.size {
		batch := q.drainLocked()
		q.mu.Unlock()
		q.flushFn(batch)
		return
	}

	if q.timer != nil {
		q.timer.Stop()
	}
	q.timer = time.AfterFunc(q.timeout, q.flushTimeout)
	q.mu.Unlock()
}

// Len returns the number of buffered, unflushed items.
func (q *BufferedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close flushes any remaining items and stops the queue. Subsequent adds
// are silently dropped.
func (q *BufferedQueue[T]) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	batch := q.drainLocked()
	q.mu.Unlock()

	if len(batch) > 0 {
		q.flushFn(batch)
	}
}

func (q *BufferedQueue[T]) flushTimeout() {
	q.mu.Lock()
	batch := q.drainLocked()
	q.mu.Unlock()

	if len(batch) > 0 {
		q.flushFn(batch)
	}
}

// drainLocked swaps out the buffer and cancels the pending timer. Callers
// must hold the lock.
func (q *BufferedQueue[T]) drainLocked() []T {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	batch := q.items
	q.items = make([]T, 0, q.size)
	return batch
}
