package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/qubic/contractverify/pkg/ast"
)

func (c *converter) convertBlock(n *sitter.Node) *ast.CompoundEntity {
	comp := &ast.CompoundEntity{Type: ast.CompoundBlock}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		comp.Children = append(comp.Children, c.convertEntity(n.NamedChild(i)))
	}
	return comp
}

func (c *converter) convertLabeledStatement(n *sitter.Node) ast.Entity {
	return ast.LabelEntity{Name: c.text(c.childByField(n, "label"))}
}

// convertStatement handles every statement-position node that isn't one of
// the declaration/definition forms convertEntity already routes directly.
func (c *converter) convertStatement(n *sitter.Node) ast.Entity {
	switch n.Type() {
	case "compound_statement":
		return c.convertBlock(n)
	case "if_statement":
		return c.convertIf(n)
	case "for_statement":
		return c.convertFor(n)
	case "for_range_loop":
		return c.convertRangeFor(n)
	case "while_statement":
		return c.convertWhile(n)
	case "do_statement":
		return c.convertDoWhile(n)
	case "switch_statement":
		return c.convertSwitch(n)
	case "return_statement":
		return c.convertReturn(n)
	case "goto_statement":
		return &ast.GotoEntity{Label: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: c.text(c.childByField(n, "label"))}}
	case "throw_statement":
		return ast.ThrowStatementEntity{}
	case "try_statement":
		return ast.TryBlockEntity{}
	case "expression_statement":
		if n.NamedChildCount() == 0 {
			return ast.BlobEntity{}
		}
		return c.convertExpr(n.NamedChild(0))
	case "break_statement", "continue_statement":
		return ast.LabelEntity{Name: c.text(n)}
	case "lambda_expression":
		return c.convertLambda(n)
	default:
		return ast.BlobEntity{Raw: c.text(n)}
	}
}

func (c *converter) convertIf(n *sitter.Node) *ast.IfEntity {
	ifEnt := &ast.IfEntity{}
	if cond := c.childByField(n, "condition"); cond != nil {
		ifEnt.Condition = c.convertConditionClause(cond)
	}
	if cons := c.childByField(n, "consequence"); cons != nil {
		ifEnt.Body = c.convertEntity(cons)
	}
	if alt := c.childByField(n, "alternative"); alt != nil {
		ifEnt.ElsePart = c.convertEntity(alt)
	}
	return ifEnt
}

// convertConditionClause unwraps a condition_clause / parenthesized
// declaration|expression into the inner Entity, preserving that an
// if-condition may be a declaration (`if (auto x = f())`), not just an
// expression.
func (c *converter) convertConditionClause(n *sitter.Node) ast.Entity {
	if n.NamedChildCount() == 1 {
		return c.convertEntity(n.NamedChild(0))
	}
	return c.convertEntity(n)
}

func (c *converter) convertFor(n *sitter.Node) *ast.ForEntity {
	f := &ast.ForEntity{}
	if init := c.childByField(n, "initializer"); init != nil {
		f.Start = c.convertEntity(init)
	}
	if cond := c.childByField(n, "condition"); cond != nil {
		f.Stop = c.convertExpr(cond)
	}
	if update := c.childByField(n, "update"); update != nil {
		f.Step = c.convertExpr(update)
	}
	if body := c.childByField(n, "body"); body != nil {
		f.Body = c.convertEntity(body)
	}
	return f
}

func (c *converter) convertRangeFor(n *sitter.Node) *ast.RangeForEntity {
	rf := &ast.RangeForEntity{}
	if decl := c.childByField(n, "declarator"); decl != nil {
		rf.Var = &ast.VarEntity{
			Type: *c.convertVarTypeFromNode(c.childByField(n, "type"), decl),
			Decl: ast.VarDecl{Name: c.text(c.innermostDeclaratorName(decl))},
		}
	}
	if rng := c.childByField(n, "right"); rng != nil {
		rf.Expr = c.convertExpr(rng)
	}
	if body := c.childByField(n, "body"); body != nil {
		rf.Body = c.convertEntity(body)
	}
	return rf
}

func (c *converter) convertWhile(n *sitter.Node) *ast.WhileEntity {
	w := &ast.WhileEntity{}
	if cond := c.childByField(n, "condition"); cond != nil {
		w.Condition = c.convertConditionClause(cond)
	}
	if body := c.childByField(n, "body"); body != nil {
		w.Body = c.convertEntity(body)
	}
	return w
}

func (c *converter) convertDoWhile(n *sitter.Node) *ast.DoWhileEntity {
	dw := &ast.DoWhileEntity{}
	if body := c.childByField(n, "body"); body != nil {
		dw.Body = c.convertEntity(body)
	}
	if cond := c.childByField(n, "condition"); cond != nil {
		dw.Condition = c.convertConditionClause(cond)
	}
	return dw
}

func (c *converter) convertSwitch(n *sitter.Node) *ast.SwitchEntity {
	sw := &ast.SwitchEntity{}
	if cond := c.childByField(n, "condition"); cond != nil {
		sw.Condition = c.convertExpr(c.unwrapParenCondition(cond))
	}
	body := c.childByField(n, "body")
	if body == nil {
		return sw
	}
	var current *ast.CaseClause
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() == "case_statement" {
			if current != nil {
				sw.Cases = append(sw.Cases, *current)
			}
			clause := ast.CaseClause{Body: &ast.CompoundEntity{Type: ast.CompoundBlock}}
			if v := c.childByField(child, "value"); v != nil {
				clause.CaseExpr = c.convertExpr(v)
			}
			for j := 0; j < int(child.NamedChildCount()); j++ {
				stmt := child.NamedChild(j)
				if stmt == c.childByField(child, "value") {
					continue
				}
				clause.Body.Children = append(clause.Body.Children, c.convertEntity(stmt))
			}
			current = &clause
		}
	}
	if current != nil {
		sw.Cases = append(sw.Cases, *current)
	}
	return sw
}

func (c *converter) unwrapParenCondition(n *sitter.Node) *sitter.Node {
	if n.NamedChildCount() == 1 {
		return n.NamedChild(0)
	}
	return n
}

func (c *converter) convertReturn(n *sitter.Node) *ast.ReturnStatementEntity {
	r := &ast.ReturnStatementEntity{}
	if n.NamedChildCount() > 0 {
		r.Value = c.convertExpr(n.NamedChild(0))
	}
	return r
}
