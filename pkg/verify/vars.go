package verify

import (
	"strings"

	"github.com/qubic/contractverify/pkg/ast"
)

func (c *Checker) checkVarType(vt *ast.VarType) bool {
	if c.inGlobalScope() && !(vt.Const || vt.ConstExpr) {
		return c.errorf("Global variables are not allowed. You may use global constants (const/constexpr).")
	}

	if vt.Compound != nil {
		if !c.checkCompound(vt.Compound) {
			return false
		}
	} else if !c.typeAllowed(vt.BaseType) {
		return false
	}

	if vt.PtrLevel > 0 {
		return c.errorf("Pointers are not allowed.")
	}
	if vt.ParameterPack || strings.HasSuffix(vt.BaseType, "...") {
		return c.errorf("Parameter packs are not allowed.")
	}
	return true
}

func (c *Checker) checkVarDecl(decl *ast.VarDecl) bool {
	if !c.nameAllowed(decl.Name) {
		return false
	}
	if c.inGlobalScope() && !c.hasStateStructPrefix(decl.Name) {
		return false
	}
	if len(decl.ArraySizes) > 0 {
		return c.errorf("Plain arrays are not allowed, use the Array class provided by the QPI instead.")
	}

	switch decl.InitializeType {
	case ast.UsingEqual:
		if decl.AssignValue != nil && !c.checkExpr(decl.AssignValue) {
			return false
		}
	case ast.DirectConstructorCall:
		for _, arg := range decl.ConstructorArgs {
			if !c.checkExpr(arg) {
				return false
			}
		}
	}
	return true
}

// checkVar verifies a single `Type name = init;` declaration. Local
// variables (any declaration whose innermost scope is not global scope, a
// struct/class body, a function signature, or a typedef) are categorically
// rejected — the contract language keeps all mutable state in the declared
// state struct.
func (c *Checker) checkVar(v *ast.VarEntity) bool {
	if tag, ok := c.currentScope(); ok {
		if tag != ScopeStruct && tag != ScopeClass && tag != ScopeFunctionSignature && tag != ScopeTypedef {
			return c.errorf("Local variables are not allowed, found variable with name %s.", v.Decl.Name)
		}
	}

	if v.Templated && v.TemplateSpec != nil {
		if !c.checkTemplateSpec(v.TemplateSpec) {
			return false
		}
	}
	if !c.checkVarType(&v.Type) {
		return false
	}
	return c.checkVarDecl(&v.Decl)
}

func (c *Checker) checkVarList(vl *ast.VarListEntity) bool {
	if !c.checkVar(vl.First) {
		return false
	}
	for i := range vl.Decls {
		if vl.Decls[i].PtrLevel > 0 {
			return c.errorf("Pointers are not allowed.")
		}
		if !c.checkVarDecl(&vl.Decls[i]) {
			return false
		}
	}
	return true
}
