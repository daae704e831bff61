package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
)

// StageSpec names one transform slot in the chain.
type StageSpec struct {
	Name      string
	Transform Transform
}

// StageDrops records how many lines one stage's transform failed on.
type StageDrops struct {
	Name    string
	Dropped int64
}

// Result summarizes one completed run.
type Result struct {
	LinesIn  int64
	LinesOut int64
	Dropped  int64
	ByStage  []StageDrops
	Elapsed  time.Duration
}

// Pipeline is the assembled chain: N workers over N+1 buffers, with a
// reader endpoint feeding the head buffer and a writer endpoint
// draining the tail buffer. The pipeline owns its buffers and
// descriptors; workers reference the buffers but never own them.
type Pipeline struct {
	buffers []*Buffer
	workers []*Worker
}

// New builds a chain of len(specs) workers over len(specs)+1 buffers
// of the given capacity. Workers stay idle until Run. On any build
// failure every buffer constructed so far is closed before the error
// surfaces.
func New(specs []StageSpec, capacity int) (*Pipeline, error) {
	if len(specs) == 0 {
		return nil, errors.New("pipeline needs at least one stage")
	}

	buffers := make([]*Buffer, 0, len(specs)+1)
	rollback := func() {
		for _, b := range buffers {
			b.Close()
		}
	}

	for i := 0; i <= len(specs); i++ {
		buf, err := NewBuffer(capacity)
		if err != nil {
			rollback()
			return nil, fmt.Errorf("buffer %d: %w", i, err)
		}
		buffers = append(buffers, buf)
	}

	workers := make([]*Worker, 0, len(specs))
	for i, spec := range specs {
		if spec.Transform == nil {
			rollback()
			return nil, fmt.Errorf("stage %q: nil transform", spec.Name)
		}
		workers = append(workers, NewWorker(spec.Name, spec.Transform, buffers[i], buffers[i+1]))
	}

	return &Pipeline{buffers: buffers, workers: workers}, nil
}

// Stages returns the stage names in chain order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.workers))
	for i, w := range p.workers {
		names[i] = w.Name()
	}
	return names
}

// Run drives the pipeline until the source is exhausted and the last
// line has been written, then joins every participant. Cancelling ctx
// closes the head buffer: lines already in flight still drain, then
// the chain winds down stage by stage.
//
// Shutdown ordering: the reader closes buffer 0 on sentinel or EOF;
// each worker closes its output when its input ends; the writer exits
// when the tail buffer ends. No worker exits with lines left in its
// input, and no buffer is touched after Run returns.
func (p *Pipeline) Run(ctx context.Context, src io.Reader, dst io.Writer) (Result, error) {
	start := time.Now()

	reader := NewReader(src, p.buffers[0])
	writer := NewWriter(p.buffers[len(p.buffers)-1], dst)

	for _, w := range p.workers {
		w.Start()
	}
	reader.Start()
	writer.Start()

	finished := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			p.buffers[0].Close()
		case <-finished:
		}
	}()

	var g errgroup.Group
	g.Go(reader.Join)
	g.Go(func() error {
		for _, w := range p.workers {
			w.Join()
		}
		return nil
	})
	g.Go(writer.Join)

	err := g.Wait()
	close(finished)

	result := Result{
		LinesIn:  reader.Lines(),
		LinesOut: writer.Lines(),
		ByStage:  make([]StageDrops, 0, len(p.workers)),
		Elapsed:  time.Since(start),
	}
	for _, w := range p.workers {
		d := w.Dropped()
		result.Dropped += d
		result.ByStage = append(result.ByStage, StageDrops{Name: w.Name(), Dropped: d})
	}

	if err != nil {
		return result, err
	}
	if ctx.Err() != nil {
		return result, fmt.Errorf("run interrupted: %w", ctx.Err())
	}
	return result, nil
}
