package verify

import "github.com/qubic/contractverify/pkg/ast"

// checkIf walks condition, then-body, and else-branch in source order. The
// condition is checked as a full Entity, not just an Expression, because the
// contract language allows a declaration in an if-condition.
func (c *Checker) checkIf(n *ast.IfEntity) bool {
	if !c.CheckEntity(n.Condition) {
		return false
	}
	if n.Body != nil && !c.CheckEntity(n.Body) {
		return false
	}
	if n.ElsePart != nil {
		return c.CheckEntity(n.ElsePart)
	}
	return true
}

func (c *Checker) checkFor(n *ast.ForEntity) bool {
	if n.Start != nil && !c.CheckEntity(n.Start) {
		return false
	}
	if n.Stop != nil && !c.checkExpr(n.Stop) {
		return false
	}
	if n.Step != nil && !c.checkExpr(n.Step) {
		return false
	}
	if n.Body != nil {
		return c.CheckEntity(n.Body)
	}
	return true
}

func (c *Checker) checkRangeFor(n *ast.RangeForEntity) bool {
	if n.Var != nil && !c.checkVar(n.Var) {
		return false
	}
	if n.Expr != nil && !c.checkExpr(n.Expr) {
		return false
	}
	if n.Body != nil {
		return c.CheckEntity(n.Body)
	}
	return true
}

func (c *Checker) checkWhile(n *ast.WhileEntity) bool {
	if !c.CheckEntity(n.Condition) {
		return false
	}
	if n.Body != nil {
		return c.CheckEntity(n.Body)
	}
	return true
}

func (c *Checker) checkDoWhile(n *ast.DoWhileEntity) bool {
	if n.Body != nil && !c.CheckEntity(n.Body) {
		return false
	}
	return c.CheckEntity(n.Condition)
}

func (c *Checker) checkSwitch(n *ast.SwitchEntity) bool {
	if !c.checkExpr(n.Condition) {
		return false
	}
	for _, cs := range n.Cases {
		if cs.CaseExpr != nil && !c.checkExpr(cs.CaseExpr) {
			return false
		}
		if cs.Body != nil && !c.checkCompound(cs.Body) {
			return false
		}
	}
	return true
}

func (c *Checker) checkGoto(n *ast.GotoEntity) bool {
	return c.checkExpr(n.Label)
}
