// Package orchestrator assembles and drives the line pipeline.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/ideamans/go-l10n"

	"github.com/user/linepipe/pkg/pipeline"
	"github.com/user/linepipe/pkg/ports"
	"github.com/user/linepipe/pkg/stages"
)

// Config contains all configuration for one pipeline run.
type Config struct {
	// Stages is the ordered list of stage names to chain.
	Stages []string

	// StageConfigs maps stage names to the opaque config string passed
	// to that stage's factory. Missing entries mean an empty config.
	StageConfigs map[string]string

	// Capacity is the bounded size of every buffer between stages.
	Capacity int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Capacity: 100,
	}
}

// RunResult describes one completed run.
type RunResult struct {
	RunID    string
	Stages   []string
	LinesIn  int64
	LinesOut int64
	Dropped  int64
	ByStage  []pipeline.StageDrops
	Elapsed  time.Duration
}

// Orchestrator resolves stage names against a registry, assembles the
// pipeline, and drives it from a source to a destination.
type Orchestrator struct {
	registry *stages.Registry
	logger   ports.Logger
}

// New creates a new Orchestrator.
func New(registry *stages.Registry, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		logger:   logger,
	}
}

// Run builds and executes the pipeline described by config, streaming
// lines from src to dst until the sentinel or EOF. Each stage is
// announced on the diagnostic stream before processing starts.
func (o *Orchestrator) Run(ctx context.Context, config Config, src io.Reader, dst io.Writer) (RunResult, error) {
	if len(config.Stages) == 0 {
		return RunResult{}, fmt.Errorf("at least one stage is required")
	}

	runID := uuid.NewString()
	o.logger.Debug(l10n.F("Run %s: assembling %d stages with buffer capacity %d", runID, len(config.Stages), config.Capacity))

	specs := make([]pipeline.StageSpec, 0, len(config.Stages))
	for i, name := range config.Stages {
		factory, err := o.registry.Lookup(name)
		if err != nil {
			return RunResult{}, fmt.Errorf("stage %d: %w", i+1, err)
		}
		transform, err := factory(config.StageConfigs[name])
		if err != nil {
			return RunResult{}, fmt.Errorf("stage %d (%s): %w", i+1, name, err)
		}
		specs = append(specs, pipeline.StageSpec{Name: name, Transform: transform})
		o.logger.Info(l10n.F("Stage %d: %s", i+1, name))
	}

	p, err := pipeline.New(specs, config.Capacity)
	if err != nil {
		o.logger.Error(l10n.F("Failed to assemble pipeline: %s", err))
		return RunResult{}, fmt.Errorf("assemble pipeline: %w", err)
	}

	result, err := p.Run(ctx, src, dst)
	if err != nil {
		o.logger.Error(l10n.F("Pipeline failed: %s", err))
		return RunResult{}, fmt.Errorf("run pipeline: %w", err)
	}

	if result.Dropped > 0 {
		o.logger.Warn(l10n.F("%d lines dropped by failing transforms", result.Dropped))
	}
	o.logger.Debug(l10n.F("Run %s: %d lines in, %d lines out in %s", runID, result.LinesIn, result.LinesOut, result.Elapsed))

	return RunResult{
		RunID:    runID,
		Stages:   p.Stages(),
		LinesIn:  result.LinesIn,
		LinesOut: result.LinesOut,
		Dropped:  result.Dropped,
		ByStage:  result.ByStage,
		Elapsed:  result.Elapsed,
	}, nil
}
