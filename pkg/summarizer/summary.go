// Package summarizer renders run results for the diagnostic stream.
package summarizer

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"

	"github.com/user/linepipe/pkg/orchestrator"
)

// Format renders a RunResult as a short human-readable summary. The
// caller writes it to the diagnostic stream; stdout stays reserved for
// pipeline output.
func Format(result orchestrator.RunResult) string {
	var b strings.Builder

	fmt.Fprintln(&b, l10n.F("Run %s", result.RunID))
	fmt.Fprintln(&b, l10n.F("Stages: %s", strings.Join(result.Stages, " -> ")))
	fmt.Fprintln(&b, l10n.F("Lines in: %d", result.LinesIn))
	fmt.Fprintln(&b, l10n.F("Lines out: %d", result.LinesOut))
	if result.Dropped > 0 {
		fmt.Fprintln(&b, l10n.F("Dropped: %d", result.Dropped))
		for _, s := range result.ByStage {
			if s.Dropped > 0 {
				fmt.Fprintln(&b, l10n.F("  %s: %d", s.Name, s.Dropped))
			}
		}
	}
	fmt.Fprintln(&b, l10n.F("Elapsed: %s", result.Elapsed))

	return b.String()
}
