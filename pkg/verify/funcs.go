package verify

import "github.com/qubic/contractverify/pkg/ast"

func (c *Checker) checkParamList(params []ast.Entity) bool {
	for _, p := range params {
		switch p.EntityKind() {
		case ast.Var:
			if !c.checkVar(p.(*ast.VarEntity)) {
				return false
			}
		case ast.FunctionPointer:
			return c.errorf("Function pointers are not allowed.")
		default:
			return c.errorf("Unknown CppEntityType encountered while analyzing the AST: %d", int(p.EntityKind()))
		}
	}
	return true
}

func (c *Checker) checkTypeConverter(tc *ast.TypeConverterEntity) bool {
	if tc.Templated && tc.TemplateSpec != nil {
		if !c.checkTemplateSpec(tc.TemplateSpec) {
			return false
		}
	}
	if !c.checkVarType(tc.TargetType) {
		return false
	}
	if tc.Body != nil {
		return c.checkCompound(tc.Body)
	}
	return true
}

// checkFunction verifies a free function or member function: a global
// function's name must carry the state struct prefix, its signature lives in
// a FunctionSignature scope (so its parameters may declare local-looking
// variables), and its body, if present, is checked as an ordinary block.
func (c *Checker) checkFunction(f *ast.FunctionEntity) bool {
	if c.inGlobalScope() && !c.hasStateStructPrefix(f.Name) {
		return false
	}

	c.pushScope(ScopeFunctionSignature)
	defer c.popScope()

	if f.Templated && f.TemplateSpec != nil {
		if !c.checkTemplateSpec(f.TemplateSpec) {
			return false
		}
	}
	if f.ReturnType != nil && !c.checkVarType(f.ReturnType) {
		return false
	}
	if !c.nameAllowed(f.Name) {
		return false
	}
	if !c.checkParamList(f.Params) {
		return false
	}
	if f.Body != nil {
		return c.checkCompound(f.Body)
	}
	return true
}

func (c *Checker) checkLambda(l *ast.LambdaEntity) bool {
	c.pushScope(ScopeFunctionSignature)
	defer c.popScope()

	if l.Captures != nil && !c.checkExpr(l.Captures) {
		return false
	}
	if l.ReturnType != nil && !c.checkVarType(l.ReturnType) {
		return false
	}
	if !c.checkParamList(l.Params) {
		return false
	}
	if l.Body != nil {
		return c.checkCompound(l.Body)
	}
	return true
}

func (c *Checker) checkReturn(r *ast.ReturnStatementEntity) bool {
	if r.Value != nil {
		return c.checkExpr(r.Value)
	}
	return true
}
