package verify

import (
	"fmt"
	"io"

	"github.com/qubic/contractverify/pkg/config"
)

// ScopeTag marks the kind of lexical region currently being traversed.
type ScopeTag int

const (
	ScopeStruct ScopeTag = iota
	ScopeClass
	ScopeNamespace
	ScopeBlock
	ScopeTemplateSpec
	ScopeFunctionSignature
	ScopeTypedef
)

// Checker threads the traversal state — scope stack, scope-prefix registry,
// state struct name, and allow-lists — through every per-construct checker.
// An empty scope stack means global scope. The registry is append-only: a
// prefix introduced by a struct, class, or enum remains a legal `::`
// qualifier for the rest of the file, by design (spec.md §3).
type Checker struct {
	cfg             *config.Config
	stateStructName string
	scope           []ScopeTag
	registry        []string
	out             io.Writer
}

// NewChecker builds a Checker ready to verify one file compound.
func NewChecker(cfg *config.Config, stateStructName string, out io.Writer) *Checker {
	return &Checker{
		cfg:             cfg,
		stateStructName: stateStructName,
		out:             out,
	}
}

func (c *Checker) pushScope(tag ScopeTag) {
	c.scope = append(c.scope, tag)
}

func (c *Checker) popScope() {
	c.scope = c.scope[:len(c.scope)-1]
}

func (c *Checker) inGlobalScope() bool {
	return len(c.scope) == 0
}

// currentScope returns the innermost scope tag and whether one exists.
func (c *Checker) currentScope() (ScopeTag, bool) {
	if len(c.scope) == 0 {
		return 0, false
	}
	return c.scope[len(c.scope)-1], true
}

func (c *Checker) registerPrefix(name string) {
	c.registry = append(c.registry, name)
}

// scopeEmpty reports whether the scope stack unwound completely; used by
// tests asserting the scope-discipline invariant.
func (c *Checker) scopeEmpty() bool {
	return len(c.scope) == 0
}

// errorf writes the single diagnostic line for the current violation and
// always returns false, so call sites can `return c.errorf(...)`.
func (c *Checker) errorf(format string, args ...any) bool {
	fmt.Fprintf(c.out, "[ ERROR ] "+format+"\n", args...)
	return false
}
