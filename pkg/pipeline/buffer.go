// Package pipeline provides the concurrent pipeline core: bounded
// buffers, stage workers, the stdin/stdout endpoints, and the
// assembler that wires them into a chain.
//
// Lines flow strictly forward: reader -> buffer 0 -> stage 1 ->
// buffer 1 -> ... -> buffer N -> writer. Shutdown flows the same way,
// carried by the buffers themselves: closing a buffer drains it and
// then reports end of stream, and every stage closes its output when
// its input ends.
package pipeline

import (
	"fmt"
)

// Buffer is a bounded FIFO of line items shared between one producer
// and one consumer. Producers block while the buffer is full and
// consumers while it is empty. Close is a one-shot transition after
// which pushes are refused and pops drain the remaining items before
// reporting end of stream.
//
// Ownership: the caller owns an item until Push returns true, the
// buffer owns it until Pop hands it out, and the consumer owns it
// afterwards. The buffer never copies.
type Buffer struct {
	mon      *Monitor
	notFull  *Cond
	notEmpty *Cond

	items  [][]byte
	head   int
	tail   int
	size   int
	closed bool
}

// NewBuffer creates an open, empty buffer holding at most capacity
// items. Capacity must be at least 1.
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("buffer capacity must be at least 1, got %d", capacity)
	}
	mon := NewMonitor()
	return &Buffer{
		mon:      mon,
		notFull:  mon.NewCond(),
		notEmpty: mon.NewCond(),
		items:    make([][]byte, capacity),
	}, nil
}

// Push enqueues item at the tail, blocking while the buffer is full
// and open. It reports whether the item was enqueued: false means the
// buffer is closed and the item remains owned by the caller. A push
// parked on a full buffer re-checks closure after every wakeup, so a
// close that lands mid-wait refuses the item rather than enqueue it.
func (b *Buffer) Push(item []byte) bool {
	b.mon.Enter()
	defer b.mon.Exit()

	for b.size == len(b.items) && !b.closed {
		b.notFull.Wait()
	}
	if b.closed {
		return false
	}

	b.items[b.tail] = item
	b.tail = (b.tail + 1) % len(b.items)
	b.size++
	b.notEmpty.Signal()
	return true
}

// Pop dequeues the head item, blocking while the buffer is empty and
// open. The second result is false only once the buffer is closed and
// fully drained; until then every enqueued item is delivered in FIFO
// order.
func (b *Buffer) Pop() ([]byte, bool) {
	b.mon.Enter()
	defer b.mon.Exit()

	for b.size == 0 && !b.closed {
		b.notEmpty.Wait()
	}
	if b.size == 0 {
		return nil, false
	}

	item := b.items[b.head]
	b.items[b.head] = nil
	b.head = (b.head + 1) % len(b.items)
	b.size--
	b.notFull.Signal()
	return item, true
}

// Close marks the buffer closed and wakes every parked producer and
// consumer. Items already enqueued stay available to Pop. Idempotent.
func (b *Buffer) Close() {
	b.mon.Enter()
	defer b.mon.Exit()

	if b.closed {
		return
	}
	b.closed = true
	// Any number of producers and consumers may be parked; all of them
	// must learn of closure, so a single Signal is not enough.
	b.notFull.Broadcast()
	b.notEmpty.Broadcast()
}

// Len reports the number of enqueued items. Snapshot only; the value
// may be stale the moment it returns.
func (b *Buffer) Len() int {
	b.mon.Enter()
	defer b.mon.Exit()
	return b.size
}

// Cap reports the capacity the buffer was created with.
func (b *Buffer) Cap() int {
	return len(b.items)
}

// Closed reports whether Close has been called. Snapshot only.
func (b *Buffer) Closed() bool {
	b.mon.Enter()
	defer b.mon.Exit()
	return b.closed
}
