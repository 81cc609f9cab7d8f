// Package verify implements the compliance rule engine: a single pre-order,
// short-circuiting traversal of a parsed contract file that stops and
// reports at the first violation it finds.
package verify

import (
	"fmt"
	"io"

	"github.com/qubic/contractverify/pkg/ast"
	"github.com/qubic/contractverify/pkg/config"
)

// FindStateStructName returns the name of the first top-level struct in file
// that inherits from ContractBase, or "" if none exists. Only top-level
// entities are searched — a ContractBase-derived struct nested inside a
// namespace or another struct does not count.
func FindStateStructName(file *ast.CompoundEntity, out io.Writer) string {
	if file.Type != ast.CompoundFile {
		fmt.Fprintln(out, "[ ERROR ] Need a top-level CppCompound (compound type FILE) for finding the state struct name.")
		return ""
	}
	for _, child := range file.Children {
		comp, ok := child.(*ast.CompoundEntity)
		if !ok || comp.Type != ast.CompoundStruct {
			continue
		}
		for _, inh := range comp.Inheritance {
			if inh.BaseName == "ContractBase" {
				return comp.Name
			}
		}
	}
	return ""
}

// Check runs the compliance traversal over file using the given state struct
// name, writing at most one "[ ERROR ] ..." line to out and reporting
// whether the file is compliant.
func Check(file *ast.CompoundEntity, cfg *config.Config, stateStructName string, out io.Writer) bool {
	c := NewChecker(cfg, stateStructName, out)
	result := c.CheckEntity(file)
	if !c.scopeEmpty() {
		// Should never happen: every scope push in this package is paired
		// with a deferred pop, win or lose.
		panic("verify: scope stack not empty after traversal")
	}
	return result
}

// CheckFile discovers the state struct name from file itself, then runs
// Check against it. This is what the CLI driver calls for a freshly parsed
// file.
func CheckFile(file *ast.CompoundEntity, cfg *config.Config, out io.Writer) bool {
	stateStructName := FindStateStructName(file, out)
	return Check(file, cfg, stateStructName, out)
}
