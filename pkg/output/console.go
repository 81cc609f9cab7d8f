// Package output renders a single compliance check's verdict to the
// console, following glint's pkg/output/console.go split between the
// undecorated diagnostic stream and a colorized summary line.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Console prints the PASSED/FAILED summary and optional verbose trace
// lines. The `[ ERROR ] ` diagnostic lines themselves are written directly
// by the rule engine via fmt.Fprintf/fmt.Fprintln and never pass through
// this type, so they are never colorized or otherwise decorated.
type Console struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

// NewConsole builds a Console writing its summary to stdout and its
// verbose trace to stderr.
func NewConsole() *Console {
	return &Console{out: os.Stdout, errOut: os.Stderr}
}

// WithNoColor disables ANSI colors globally, mirroring glint's
// ConsoleOutput.WithNoColor.
func (c *Console) WithNoColor(v bool) *Console {
	if v {
		color.NoColor = true
	}
	return c
}

// WithVerbose enables the "checking <file>" trace line on stderr.
func (c *Console) WithVerbose(v bool) *Console {
	c.verbose = v
	return c
}

// Tracef writes a verbose-only trace line to stderr. A no-op unless
// WithVerbose(true) was set.
func (c *Console) Tracef(format string, args ...any) {
	if !c.verbose {
		return
	}
	gray := color.New(color.FgHiBlack)
	gray.Fprintf(c.errOut, format+"\n", args...)
}

// Passed prints the green PASSED summary for a compliant file.
func (c *Console) Passed(path string) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprintf(c.out, "PASSED")
	fmt.Fprintf(c.out, ": %s is compliant\n", path)
}

// Failed prints the red FAILED summary for a non-compliant file.
func (c *Console) Failed(path string) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(c.out, "FAILED")
	fmt.Fprintf(c.out, ": %s is not compliant\n", path)
}

// Warnf prints an undecorated warning line to stdout, used for the
// "extra arguments ignored" notice spec.md §6 requires.
func (c *Console) Warnf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}
