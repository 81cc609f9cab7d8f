package verify

import "github.com/qubic/contractverify/pkg/ast"

// isNamespaceLike reports whether a compound is a "named" scoping construct
// (file, namespace, struct, class, union) as opposed to a plain block or
// extern "C" block, which skip the union/template/name checks below.
func isNamespaceLike(t ast.CompoundType) bool {
	return t != ast.CompoundBlock && t != ast.CompoundExternCBlock
}

func (c *Checker) checkCompound(comp *ast.CompoundEntity) bool {
	if isNamespaceLike(comp.Type) {
		if comp.Type == ast.CompoundUnion {
			return c.errorf("`union` is not allowed.")
		}
		if comp.Templated && comp.TemplateSpec != nil {
			if !c.checkTemplateSpec(comp.TemplateSpec) {
				return false
			}
		}
		if !c.nameAllowed(comp.Name) {
			return false
		}
	}

	for _, inh := range comp.Inheritance {
		if !c.inheritanceAllowed(inh.BaseName) {
			return false
		}
	}

	pushed := true
	switch comp.Type {
	case ast.CompoundStruct:
		if c.inGlobalScope() && !c.hasStateStructPrefix(comp.Name) {
			return false
		}
		c.registerPrefix(comp.Name)
		c.pushScope(ScopeStruct)
	case ast.CompoundClass:
		if c.inGlobalScope() && !c.hasStateStructPrefix(comp.Name) {
			return false
		}
		c.registerPrefix(comp.Name)
		c.pushScope(ScopeClass)
	case ast.CompoundNamespace:
		c.pushScope(ScopeNamespace)
	case ast.CompoundBlock, ast.CompoundExternCBlock:
		c.pushScope(ScopeBlock)
	default:
		pushed = false
	}
	if pushed {
		defer c.popScope()
	}

	for _, child := range comp.Children {
		if !c.CheckEntity(child) {
			return false
		}
	}
	return true
}
