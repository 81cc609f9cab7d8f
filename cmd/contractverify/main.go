// Command contractverify checks a single contract source file against the
// permitted subset of the contract language and reports PASSED or FAILED.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qubic/contractverify/pkg/config"
	"github.com/qubic/contractverify/pkg/output"
	"github.com/qubic/contractverify/pkg/parser"
	"github.com/qubic/contractverify/pkg/verify"
)

var (
	flagVerbose bool
	flagNoColor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "contractverify <filepath>",
	Short:         "Verify a contract source file against the permitted contract-language subset",
	Args:          cobra.MinimumNArgs(1),
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print a trace line before checking")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colored summary output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	console := output.NewConsole().WithNoColor(flagNoColor).WithVerbose(flagVerbose)

	if len(args) > 1 {
		console.Warnf("warning: ignoring %d extra argument(s)", len(args)-1)
	}
	path := args[0]

	console.Tracef("checking %s", path)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot read %s: %v\n", path, err)
		os.Exit(1)
	}

	file, err := parser.New().Parse(context.Background(), source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot parse %s: %v\n", path, err)
		os.Exit(1)
	}

	cfg, err := config.Load(dirOf(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot load config: %v\n", err)
		os.Exit(1)
	}

	if !verify.CheckFile(file, cfg, os.Stdout) {
		console.Failed(path)
		os.Exit(1)
	}
	console.Passed(path)
	return nil
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}
