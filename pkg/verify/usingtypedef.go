package verify

import "github.com/qubic/contractverify/pkg/ast"

func (c *Checker) checkUsingNamespace(u ast.UsingNamespaceEntity) bool {
	if c.inGlobalScope() && u.Name != "QPI" {
		return c.errorf("Only QPI can be used for a using namespace declaration in global scope.")
	}
	return c.scopeResolutionAllowed(u.Name)
}

// checkUsingDecl verifies a `using Name = ...;` alias. Only one of
// DefVarType, DefFuncPtr, or DefCompound is populated, mirroring the
// std::variant the original tool stores for a using-declaration's target.
func (c *Checker) checkUsingDecl(u *ast.UsingDeclEntity) bool {
	if c.inGlobalScope() {
		return c.errorf("Using declaration is not allowed in global scope.")
	}
	if u.Templated && u.TemplateSpec != nil {
		if !c.checkTemplateSpec(u.TemplateSpec) {
			return false
		}
	}
	if !c.scopeResolutionAllowed(u.Name) {
		return false
	}

	switch {
	case u.DefVarType != nil:
		return c.checkVarType(u.DefVarType)
	case u.DefFuncPtr:
		return c.errorf("Function pointers are not allowed.")
	case u.DefCompound != nil:
		return c.checkCompound(u.DefCompound)
	}
	return true
}

func (c *Checker) checkTypedef(t *ast.TypedefEntity) bool {
	if c.inGlobalScope() {
		return c.errorf("`typedef` is not allowed in global scope.")
	}
	c.pushScope(ScopeTypedef)
	defer c.popScope()
	return c.checkVar(t.Var)
}

func (c *Checker) checkTypedefList(t *ast.TypedefListEntity) bool {
	if c.inGlobalScope() {
		return c.errorf("`typedef` is not allowed in global scope.")
	}
	c.pushScope(ScopeTypedef)
	defer c.popScope()
	return c.checkVarList(t.VarList)
}

func (c *Checker) checkForwardClassDecl(f *ast.ForwardClassDeclEntity) bool {
	if f.Templated && f.TemplateSpec != nil {
		return c.checkTemplateSpec(f.TemplateSpec)
	}
	return true
}
