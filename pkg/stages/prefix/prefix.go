// Package prefix provides the literal-prepending stage.
package prefix

import (
	"github.com/user/linepipe/pkg/pipeline"
	"github.com/user/linepipe/pkg/stages"
)

// Name is the stage name used on the command line.
const Name = "prefix"

// DefaultLiteral is prepended when no config string is given.
const DefaultLiteral = "PREFIX:"

// New returns the prefix stage factory. A non-empty config string
// replaces the default literal.
func New() stages.Factory {
	return func(config string) (pipeline.Transform, error) {
		literal := DefaultLiteral
		if config != "" {
			literal = config
		}
		return func(line []byte) ([]byte, error) {
			out := make([]byte, 0, len(literal)+len(line))
			out = append(out, literal...)
			return append(out, line...), nil
		}, nil
	}
}
