package fixture

import (
	"fmt"
	"testing"

	"github.com/ctlang/ctc/internal/semantic"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestScenarioDiagnosticsSnapshot pins the exact diagnostic text every
// fixture scenario produces, so a wording or position regression in the
// checker shows up as a snapshot diff instead of a silent behavior change.
func TestScenarioDiagnosticsSnapshot(t *testing.T) {
	for _, sc := range Scenarios() {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			errs := semantic.Check(sc.Blk, sc.Fn, sc.Sc)
			if len(errs) == 0 {
				snaps.MatchSnapshot(t, "ok")
				return
			}
			for i, e := range errs {
				snaps.MatchSnapshot(t, fmt.Sprintf("error_%d", i), e.Error())
			}
		})
	}
}
