package cmd

import (
	"fmt"

	"github.com/ctlang/ctc/internal/fixture"
	"github.com/ctlang/ctc/internal/ir"
	"github.com/ctlang/ctc/internal/semantic"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "run the checker and IR lowering against the built-in fixture scenarios",
	Long: `check runs every end-to-end scenario named in the checker's testable-
properties section through Check and, for scenarios that produce no
errors, through Lower. It exists because this package has no parser of
its own: the fixtures stand in for source text that would otherwise be
read from disk.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	for _, sc := range fixture.Scenarios() {
		errs := semantic.Check(sc.Blk, sc.Fn, sc.Sc)

		fmt.Printf("%s\n", sc.Name)
		if len(errs) == 0 {
			fmt.Println("  ok")
			entry, blocks := ir.Lower(sc.Blk)
			fmt.Printf("  lowered to %d basic block(s), entry has %d branch(es)\n", len(blocks), len(entry.Brs))
			continue
		}

		for _, e := range errs {
			fmt.Printf("  %s\n", e.Error())
		}
	}
	return nil
}
