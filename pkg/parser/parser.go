// Package parser adapts github.com/smacker/go-tree-sitter's C++ grammar into
// the closed pkg/ast tree the rule engine walks. It recognizes the subset of
// the grammar the contract dialect actually uses; any node shape it cannot
// confidently classify becomes an ast.BlobEntity, which the dispatcher
// rejects outright — so an incomplete translation degrades to a compliance
// failure rather than a false pass.
package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/qubic/contractverify/pkg/ast"
)

// Parser wraps a tree-sitter parser configured with the C++ grammar.
type Parser struct {
	sitter *sitter.Parser
}

// New builds a Parser ready to parse contract source files.
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(cpp.GetLanguage())
	return &Parser{sitter: p}
}

// Parse turns source into the top-level file compound the rule engine
// expects. It returns an error only when tree-sitter itself fails to produce
// a tree; individual unrecognized constructs inside an otherwise-parseable
// file surface as BlobEntity nodes instead of parse errors, matching the
// "parse once, verify once" contract of the CLI.
func (p *Parser) Parse(ctx context.Context, source []byte) (*ast.CompoundEntity, error) {
	tree, err := p.sitter.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}
	if tree == nil {
		return nil, fmt.Errorf("parse source: tree-sitter produced no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.Type() != "translation_unit" {
		return nil, fmt.Errorf("parse source: expected a translation_unit root node")
	}

	conv := &converter{src: source}
	file := &ast.CompoundEntity{Type: ast.CompoundFile}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		file.Children = append(file.Children, conv.convertTopLevel(root.NamedChild(i)))
	}
	return file, nil
}

// converter carries the source buffer used to slice node text out of byte
// offsets; it holds no other state, so one converter per Parse call.
type converter struct {
	src []byte
}

func (c *converter) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return string(c.src[n.StartByte():n.EndByte()])
}

func (c *converter) childByField(n *sitter.Node, field string) *sitter.Node {
	return n.ChildByFieldName(field)
}
