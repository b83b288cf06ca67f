package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ctc",
	Short: "semantic middle-end for the contract language compiler",
	Long: `ctc hosts the typed AST, name-and-type checker, constant folder, and
IR lowering for a contract-oriented language that compiles to WebAssembly.

It does not parse source text or emit WASM; those are supplied by the
surrounding toolchain through the Scope and Backend interfaces. The
commands here exercise the pipeline against fixtures built with the AST's
own constructors, for diagnosis and CI smoke-testing.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
