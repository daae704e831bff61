package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

func identity(line []byte) ([]byte, error) {
	return line, nil
}

func runPipeline(t *testing.T, specs []StageSpec, capacity int, input string) (Result, string) {
	t.Helper()
	p, err := New(specs, capacity)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var out bytes.Buffer
	result, err := p.Run(context.Background(), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return result, out.String()
}

// TestNew_Validation tests build-time rejection of bad chains.
func TestNew_Validation(t *testing.T) {
	if _, err := New(nil, 4); err == nil {
		t.Error("expected error for zero stages")
	}
	if _, err := New([]StageSpec{{Name: "id", Transform: identity}}, 0); err == nil {
		t.Error("expected error for zero capacity")
	}
	if _, err := New([]StageSpec{{Name: "hole"}}, 4); err == nil {
		t.Error("expected error for nil transform")
	}
}

// TestPipeline_IdentityNoLoss tests that a multi-stage identity chain
// reproduces the input exactly, in order.
func TestPipeline_IdentityNoLoss(t *testing.T) {
	specs := []StageSpec{
		{Name: "id1", Transform: identity},
		{Name: "id2", Transform: identity},
		{Name: "id3", Transform: identity},
	}

	var input strings.Builder
	var want strings.Builder
	const n = 1000
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&input, "line%d\n", i)
		fmt.Fprintf(&want, "line%d\n", i)
	}
	input.WriteString("<END>\n")

	result, out := runPipeline(t, specs, 8, input.String())
	if out != want.String() {
		t.Error("identity chain altered, reordered, or lost lines")
	}
	if result.LinesIn != n || result.LinesOut != n {
		t.Errorf("expected %d in/out, got %d/%d", n, result.LinesIn, result.LinesOut)
	}
	if result.Dropped != 0 {
		t.Errorf("expected no drops, got %d", result.Dropped)
	}
}

// TestPipeline_Composition tests that stages compose left to right:
// output equals h(g(f(x))).
func TestPipeline_Composition(t *testing.T) {
	f := func(line []byte) ([]byte, error) { return append(line, 'f'), nil }
	g := func(line []byte) ([]byte, error) { return append(line, 'g'), nil }
	h := func(line []byte) ([]byte, error) { return append(line, 'h'), nil }

	_, out := runPipeline(t, []StageSpec{
		{Name: "f", Transform: f},
		{Name: "g", Transform: g},
		{Name: "h", Transform: h},
	}, 4, "x\ny\n<END>\n")

	if want := "xfgh\nyfgh\n"; out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

// TestPipeline_ShutdownTotality tests that after the input ends every
// participant terminates and no lines remain buffered.
func TestPipeline_ShutdownTotality(t *testing.T) {
	specs := []StageSpec{
		{Name: "id1", Transform: identity},
		{Name: "id2", Transform: identity},
	}
	p, err := New(specs, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out bytes.Buffer
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := p.Run(context.Background(), strings.NewReader("a\nb\nc\n<END>\n"), &out); err != nil {
			t.Errorf("Run: %v", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("pipeline did not shut down")
	}
	for i, buf := range p.buffers {
		if got := buf.Len(); got != 0 {
			t.Errorf("buffer %d: %d lines left after shutdown", i, got)
		}
	}
}

// TestPipeline_NoLeaks tests the accounting identity: lines in equals
// lines out plus lines dropped.
func TestPipeline_NoLeaks(t *testing.T) {
	dropOdd := func(line []byte) ([]byte, error) {
		if len(line)%2 == 1 {
			return nil, fmt.Errorf("odd length")
		}
		return line, nil
	}

	result, _ := runPipeline(t, []StageSpec{
		{Name: "dropodd", Transform: dropOdd},
	}, 4, "ab\nabc\nwxyz\nxyz\n<END>\n")

	if result.LinesIn != 4 {
		t.Errorf("LinesIn: expected 4, got %d", result.LinesIn)
	}
	if result.LinesOut+result.Dropped != result.LinesIn {
		t.Errorf("leak: %d in, %d out, %d dropped", result.LinesIn, result.LinesOut, result.Dropped)
	}
	if result.Dropped != 2 {
		t.Errorf("Dropped: expected 2, got %d", result.Dropped)
	}
	if len(result.ByStage) != 1 || result.ByStage[0].Dropped != 2 {
		t.Errorf("ByStage: expected dropodd=2, got %+v", result.ByStage)
	}
}

// TestPipeline_EmptyInput tests clean termination with zero lines.
func TestPipeline_EmptyInput(t *testing.T) {
	result, out := runPipeline(t, []StageSpec{
		{Name: "id", Transform: identity},
	}, 4, "<END>\n")

	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
	if result.LinesIn != 0 || result.LinesOut != 0 {
		t.Errorf("expected 0 in/out, got %d/%d", result.LinesIn, result.LinesOut)
	}
}

// TestPipeline_SmallCapacityBackpressure tests that a capacity-1 chain
// still delivers everything in order.
func TestPipeline_SmallCapacityBackpressure(t *testing.T) {
	specs := []StageSpec{
		{Name: "id1", Transform: identity},
		{Name: "id2", Transform: identity},
		{Name: "id3", Transform: identity},
		{Name: "id4", Transform: identity},
	}

	var input strings.Builder
	var want strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&input, "n%d\n", i)
		fmt.Fprintf(&want, "n%d\n", i)
	}
	input.WriteString("<END>\n")

	_, out := runPipeline(t, specs, 1, input.String())
	if out != want.String() {
		t.Error("capacity-1 chain lost or reordered lines")
	}
}

// TestPipeline_ContextCancel tests cooperative cancellation: the run
// returns with an interruption error and every goroutine joins.
func TestPipeline_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p, err := New([]StageSpec{{Name: "id", Transform: identity}}, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// An endless source: the run can only finish through cancellation.
	src := endlessReader{}
	var out bytes.Buffer

	done := make(chan error, 1)
	go func() {
		_, err := p.Run(ctx, src, &out)
		done <- err
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Error("expected an interruption error")
		}
	case <-time.After(waitTimeout):
		t.Fatal("pipeline did not stop after cancellation")
	}
}

// endlessReader yields "tick\n" forever.
type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	line := []byte("tick\n")
	n := 0
	for n+len(line) <= len(p) {
		copy(p[n:], line)
		n += len(line)
	}
	if n == 0 {
		n = copy(p, line)
	}
	return n, nil
}
