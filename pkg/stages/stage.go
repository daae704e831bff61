// Package stages defines the stage factory contract and the registry
// the CLI resolves stage names against. Built-in transforms live in
// subpackages, one per stage; pkg/stageset wires them into a registry.
package stages

import (
	"github.com/user/linepipe/pkg/pipeline"
)

// Factory builds the transform for one pipeline stage. The config
// string is opaque to the pipeline core; stages that take no
// configuration ignore it. Factories must be safe to call more than
// once, returning an independent transform each time.
type Factory func(config string) (pipeline.Transform, error)
