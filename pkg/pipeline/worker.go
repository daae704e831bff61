package pipeline

import (
	"sync/atomic"
)

// Transform converts one line into another. Transforms must not touch
// state shared between goroutines; they own the input slice and the
// result, and may reuse the input's storage. A non-nil error drops
// that single line without stopping the stage.
type Transform func(line []byte) ([]byte, error)

// Worker hosts one transform on its own goroutine between an input and
// an output buffer. It owns its transform state but neither buffer;
// both buffers must outlive the worker.
type Worker struct {
	name      string
	transform Transform
	in        *Buffer
	out       *Buffer

	stop    atomic.Bool
	dropped atomic.Int64
	done    chan struct{}
}

// NewWorker binds a transform to its input and output buffers. The
// worker is idle until Start.
func NewWorker(name string, transform Transform, in, out *Buffer) *Worker {
	return &Worker{
		name:      name,
		transform: transform,
		in:        in,
		out:       out,
		done:      make(chan struct{}),
	}
}

// Start spawns the worker goroutine. Call it exactly once.
func (w *Worker) Start() {
	go w.run()
}

func (w *Worker) run() {
	defer close(w.done)
	// Closing the output on every exit path is what carries shutdown
	// to the next stage.
	defer w.out.Close()

	for {
		item, ok := w.in.Pop()
		if !ok {
			return
		}
		if w.stop.Load() {
			return
		}
		line, err := w.transform(item)
		if err != nil {
			w.dropped.Add(1)
			continue
		}
		if !w.out.Push(line) {
			// Downstream is gone. Closing our input tells the stages
			// above to wind down instead of filling dead buffers.
			w.in.Close()
			return
		}
	}
}

// RequestStop asks the worker to exit at its next pop checkpoint. It
// does not unblock a parked pop; close the input buffer for that.
func (w *Worker) RequestStop() {
	w.stop.Store(true)
}

// Join blocks until the worker goroutine has exited.
func (w *Worker) Join() {
	<-w.done
}

// Name returns the stage name the worker was built with.
func (w *Worker) Name() string {
	return w.name
}

// Dropped reports how many lines the transform failed on.
func (w *Worker) Dropped() int64 {
	return w.dropped.Load()
}
