package pipeline

import (
	"sync"
	"time"
)

// Monitor provides mutually exclusive critical sections with condition
// based waiting. It insulates the buffer from raw synchronization
// primitives: all buffer state is mutated between Enter and Exit, and
// wakeups travel through Conds created by NewCond.
type Monitor struct {
	mu sync.Mutex
}

// NewMonitor creates a monitor with no conditions attached.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// Enter acquires the critical section, blocking until it is available.
// Must be paired with Exit on every path.
func (m *Monitor) Enter() {
	m.mu.Lock()
}

// Exit releases the critical section.
func (m *Monitor) Exit() {
	m.mu.Unlock()
}

// NewCond returns a wake condition bound to this monitor's section.
func (m *Monitor) NewCond() *Cond {
	return &Cond{c: sync.NewCond(&m.mu)}
}

// Cond is a wake condition associated with a Monitor. Waiters must
// hold the section when calling Wait and must re-check their predicate
// after it returns; spurious wakeups are permitted.
type Cond struct {
	c *sync.Cond
}

// Wait atomically releases the section, suspends the caller until the
// condition is signaled, and reacquires the section before returning.
func (c *Cond) Wait() {
	c.c.Wait()
}

// WaitTimeout waits like Wait but wakes after at most d. It reports
// whether the wakeup arrived before the deadline. The timeout fires as
// a broadcast, so other waiters on the same condition see it as a
// spurious wakeup. Only tests use this variant.
func (c *Cond) WaitTimeout(d time.Duration) bool {
	deadline := time.Now().Add(d)
	t := time.AfterFunc(d, c.c.Broadcast)
	defer t.Stop()
	c.c.Wait()
	return time.Now().Before(deadline)
}

// Signal wakes at most one waiter. A no-op if none are parked.
func (c *Cond) Signal() {
	c.c.Signal()
}

// Broadcast wakes every waiter.
func (c *Cond) Broadcast() {
	c.c.Broadcast()
}
