// Package reverse provides the byte-reversal stage.
package reverse

import (
	"github.com/user/linepipe/pkg/pipeline"
	"github.com/user/linepipe/pkg/stages"
)

// Name is the stage name used on the command line.
const Name = "reverse"

// New returns the reverse stage factory. The config string is ignored.
func New() stages.Factory {
	return func(config string) (pipeline.Transform, error) {
		return Transform, nil
	}
}

// Transform reverses the byte sequence in place. Bytes are opaque:
// multi-byte encodings are reversed byte-wise, matching the contract
// that the pipeline is encoding-agnostic.
func Transform(line []byte) ([]byte, error) {
	for i, j := 0, len(line)-1; i < j; i, j = i+1, j-1 {
		line[i], line[j] = line[j], line[i]
	}
	return line, nil
}
