// Package suffix provides the literal-appending stage.
package suffix

import (
	"github.com/user/linepipe/pkg/pipeline"
	"github.com/user/linepipe/pkg/stages"
)

// Name is the stage name used on the command line.
const Name = "suffix"

// DefaultLiteral is appended when no config string is given.
const DefaultLiteral = ":SUFFIX"

// New returns the suffix stage factory. A non-empty config string
// replaces the default literal.
func New() stages.Factory {
	return func(config string) (pipeline.Transform, error) {
		literal := DefaultLiteral
		if config != "" {
			literal = config
		}
		return func(line []byte) ([]byte, error) {
			out := make([]byte, 0, len(line)+len(literal))
			out = append(out, line...)
			return append(out, literal...), nil
		}, nil
	}
}
