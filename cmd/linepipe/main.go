// Package main provides the CLI entry point for linepipe.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/linepipe/pkg/adapters/logger"
	"github.com/user/linepipe/pkg/config"
	"github.com/user/linepipe/pkg/orchestrator"
	"github.com/user/linepipe/pkg/ports"
	"github.com/user/linepipe/pkg/stages"
	"github.com/user/linepipe/pkg/stageset"
	"github.com/user/linepipe/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Run     RunCmd     `cmd:"" default:"withargs" help:"Process stdin through a chain of stages to stdout."`
	Stages  StagesCmd  `cmd:"" help:"List the registered stages."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// RunCmd defines the run subcommand.
type RunCmd struct {
	// Required arguments
	Stages []string `arg:"" help:"Stage names, applied in order (e.g. trim upper prefix)."`

	// Pipeline options
	Capacity *int   `short:"c" help:"Buffer capacity between stages (default: 100)."`
	Config   string `help:"Path to YAML configuration file."`

	// Stage options
	StageConfig map[string]string `help:"Per-stage config strings (name=value), e.g. prefix='LOG:'."`

	// Diagnostics
	Summary bool `short:"s" help:"Print a run summary to stderr when done."`

	// Logging options
	LogLevel *string `short:"l" help:"Log level (debug, info, warn, error; default: info)."`
	Quiet    bool    `short:"Q" help:"Suppress all log output."`
}

// StagesCmd lists the registered stage names.
type StagesCmd struct{}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("linepipe"),
		kong.Description("Process lines from stdin through a chain of transform stages."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the run command.
func (cmd *RunCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet || cfg.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, draining pipeline..."))
		cancel()
	}()

	registry, err := buildRegistry()
	if err != nil {
		return err
	}

	orch := orchestrator.New(registry, log)
	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig(cmd.Stages), os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	if cmd.Summary || cfg.Summary {
		fmt.Fprint(os.Stderr, summarizer.Format(result))
	}

	return nil
}

// buildConfig merges the config file (if any) under the explicit
// command-line overrides.
func (cmd *RunCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()

	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Capacity != nil {
		if *cmd.Capacity < 1 {
			return cfg, fmt.Errorf("capacity must be at least 1, got %d", *cmd.Capacity)
		}
		cfg.Capacity = *cmd.Capacity
	}
	if cmd.LogLevel != nil {
		cfg.LogLevel = *cmd.LogLevel
	}
	if len(cmd.StageConfig) > 0 {
		if cfg.Stages == nil {
			cfg.Stages = make(map[string]string, len(cmd.StageConfig))
		}
		for name, value := range cmd.StageConfig {
			cfg.Stages[name] = value
		}
	}

	return cfg, nil
}

// Run executes the stages command.
func (cmd *StagesCmd) Run() error {
	registry, err := buildRegistry()
	if err != nil {
		return err
	}
	for _, name := range registry.Names() {
		fmt.Println(name)
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("linepipe version %s", version))
	return nil
}

func buildRegistry() (*stages.Registry, error) {
	registry := stages.NewRegistry()
	if err := stageset.Register(registry); err != nil {
		return nil, fmt.Errorf("register stages: %w", err)
	}
	return registry, nil
}
