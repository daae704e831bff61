// Package trim provides the whitespace-trimming stage.
package trim

import (
	"bytes"

	"github.com/user/linepipe/pkg/pipeline"
	"github.com/user/linepipe/pkg/stages"
)

// Name is the stage name used on the command line.
const Name = "trim"

// asciiSpace is the cutset of ASCII whitespace bytes. Unicode spaces
// are deliberately not included; bytes are opaque to the pipeline.
const asciiSpace = " \t\n\v\f\r"

// New returns the trim stage factory. The config string is ignored.
func New() stages.Factory {
	return func(config string) (pipeline.Transform, error) {
		return Transform, nil
	}
}

// Transform strips leading and trailing ASCII whitespace. The result
// aliases the input's storage, which the transform owns.
func Transform(line []byte) ([]byte, error) {
	return bytes.Trim(line, asciiSpace), nil
}
