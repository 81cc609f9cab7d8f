package verify

import "github.com/qubic/contractverify/pkg/ast"

// CheckEntity is the single dispatch point every traversal funnels through.
// It is exhaustive over ast.EntityKind by construction: the default branch
// turns any kind this switch doesn't recognize into a compliance failure,
// which is what keeps the rule set closed even as the AST model grows.
func (c *Checker) CheckEntity(e ast.Entity) bool {
	switch e.EntityKind() {
	case ast.DocComment, ast.AccessSpecifier, ast.MacroCall, ast.Label:
		return true
	case ast.EnumEntity:
		en := e.(ast.EnumEntityNode)
		c.registerPrefix(en.Name)
		return true
	case ast.Preprocessor:
		return c.errorf("Preprocessor directives (character `#`) are not allowed.")
	case ast.NamespaceAlias:
		return c.errorf("Namespace alias is not allowed.")
	case ast.FunctionPointer:
		return c.errorf("Function pointers are not allowed.")
	case ast.Constructor:
		return c.errorf("Constructors are not allowed.")
	case ast.Destructor:
		return c.errorf("Destructors are not allowed.")
	case ast.ThrowStatement:
		return c.errorf("`throw` statement is not allowed.")
	case ast.TryBlock:
		return c.errorf("`try` blocks are not allowed.")
	case ast.Blob:
		return c.errorf("CppEntity of type BLOB cannot be analyzed.")
	case ast.Compound:
		return c.checkCompound(e.(*ast.CompoundEntity))
	case ast.Var:
		return c.checkVar(e.(*ast.VarEntity))
	case ast.VarList:
		return c.checkVarList(e.(*ast.VarListEntity))
	case ast.UsingNamespace:
		return c.checkUsingNamespace(e.(ast.UsingNamespaceEntity))
	case ast.UsingDecl:
		return c.checkUsingDecl(e.(*ast.UsingDeclEntity))
	case ast.TypedefDecl:
		return c.checkTypedef(e.(*ast.TypedefEntity))
	case ast.TypedefDeclList:
		return c.checkTypedefList(e.(*ast.TypedefListEntity))
	case ast.Goto:
		return c.checkGoto(e.(*ast.GotoEntity))
	case ast.ForwardClassDecl:
		return c.checkForwardClassDecl(e.(*ast.ForwardClassDeclEntity))
	case ast.TypeConverter:
		return c.checkTypeConverter(e.(*ast.TypeConverterEntity))
	case ast.Function:
		return c.checkFunction(e.(*ast.FunctionEntity))
	case ast.Lambda:
		return c.checkLambda(e.(*ast.LambdaEntity))
	case ast.Expression:
		return c.checkExpr(e.(ast.Expression))
	case ast.ReturnStatement:
		return c.checkReturn(e.(*ast.ReturnStatementEntity))
	case ast.IfBlock:
		return c.checkIf(e.(*ast.IfEntity))
	case ast.ForBlock:
		return c.checkFor(e.(*ast.ForEntity))
	case ast.RangeForBlock:
		return c.checkRangeFor(e.(*ast.RangeForEntity))
	case ast.WhileBlock:
		return c.checkWhile(e.(*ast.WhileEntity))
	case ast.DoWhileBlock:
		return c.checkDoWhile(e.(*ast.DoWhileEntity))
	case ast.SwitchBlock:
		return c.checkSwitch(e.(*ast.SwitchEntity))
	default:
		return c.errorf("Unknown CppEntityType encountered while analyzing the AST: %d", int(e.EntityKind()))
	}
}
