package verify

import "github.com/qubic/contractverify/pkg/ast"

// checkTemplateSpec verifies a `template <...>` parameter list. Each
// parameter pushes no scope of its own; the whole spec runs inside a single
// TemplateSpec scope so a parameter name is reachable from a FunctionSignature
// scope check the same way a typedef's variable is.
func (c *Checker) checkTemplateSpec(spec *ast.TemplateParams) bool {
	c.pushScope(ScopeTemplateSpec)
	defer c.popScope()

	for _, p := range spec.Params {
		if p.ParamTypeIsFuncPtr {
			return c.errorf("Function pointers are not allowed.")
		}
		if p.ParamType != nil {
			if !c.checkVarType(p.ParamType) {
				return false
			}
		}
		if !c.nameAllowed(p.ParamName) {
			return false
		}
		switch {
		case p.DefaultType != nil:
			if !c.checkVarType(p.DefaultType) {
				return false
			}
		case p.DefaultExpr != nil:
			if !c.checkExpr(p.DefaultExpr) {
				return false
			}
		}
	}
	return true
}
