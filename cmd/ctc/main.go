// Command ctc drives the semantic middle-end: check a hand-built function
// body against a Scope and lower it to basic blocks. It does not hand the
// result to a Backend, and it has no lexer or parser of its own; source
// text, symbol tables, and WASM emission are all supplied by callers of the
// library packages under internal/.
package main

import (
	"fmt"
	"os"

	"github.com/ctlang/ctc/cmd/ctc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
