// Package upper provides the ASCII upper-casing stage.
package upper

import (
	"github.com/user/linepipe/pkg/pipeline"
	"github.com/user/linepipe/pkg/stages"
)

// Name is the stage name used on the command line.
const Name = "upper"

// New returns the upper stage factory. The config string is ignored.
func New() stages.Factory {
	return func(config string) (pipeline.Transform, error) {
		return Transform, nil
	}
}

// Transform upper-cases ASCII letters in place; all other bytes pass
// through untouched.
func Transform(line []byte) ([]byte, error) {
	for i, c := range line {
		if c >= 'a' && c <= 'z' {
			line[i] = c - ('a' - 'A')
		}
	}
	return line, nil
}
