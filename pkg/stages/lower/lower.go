// Package lower provides the ASCII lower-casing stage.
package lower

import (
	"github.com/user/linepipe/pkg/pipeline"
	"github.com/user/linepipe/pkg/stages"
)

// Name is the stage name used on the command line.
const Name = "lower"

// New returns the lower stage factory. The config string is ignored.
func New() stages.Factory {
	return func(config string) (pipeline.Transform, error) {
		return Transform, nil
	}
}

// Transform lower-cases ASCII letters in place; all other bytes pass
// through untouched.
func Transform(line []byte) ([]byte, error) {
	for i, c := range line {
		if c >= 'A' && c <= 'Z' {
			line[i] = c + ('a' - 'A')
		}
	}
	return line, nil
}
