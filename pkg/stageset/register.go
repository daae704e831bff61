// Package stageset wires the built-in transform stages into a
// registry. Deployments with their own stages can register them
// alongside or instead of these.
package stageset

import (
	"fmt"

	"github.com/user/linepipe/pkg/stages"
	"github.com/user/linepipe/pkg/stages/lower"
	"github.com/user/linepipe/pkg/stages/prefix"
	"github.com/user/linepipe/pkg/stages/reverse"
	"github.com/user/linepipe/pkg/stages/suffix"
	"github.com/user/linepipe/pkg/stages/trim"
	"github.com/user/linepipe/pkg/stages/upper"
)

// Register adds every built-in stage to the registry:
//
//   - upper: ASCII upper-case
//   - lower: ASCII lower-case
//   - reverse: byte reversal
//   - trim: strip ASCII whitespace at both ends
//   - prefix: prepend a literal (config overrides "PREFIX:")
//   - suffix: append a literal (config overrides ":SUFFIX")
func Register(registry *stages.Registry) error {
	builtins := []struct {
		name    string
		factory stages.Factory
	}{
		{upper.Name, upper.New()},
		{lower.Name, lower.New()},
		{reverse.Name, reverse.New()},
		{trim.Name, trim.New()},
		{prefix.Name, prefix.New()},
		{suffix.Name, suffix.New()},
	}

	for _, b := range builtins {
		if err := registry.Register(b.name, b.factory); err != nil {
			return fmt.Errorf("register %s: %w", b.name, err)
		}
	}
	return nil
}
