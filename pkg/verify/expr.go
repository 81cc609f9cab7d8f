package verify

import "github.com/qubic/contractverify/pkg/ast"

func (c *Checker) checkExpr(e ast.Expression) bool {
	switch e.ExprKind() {
	case ast.ExprAtomic:
		return c.checkAtomicExpr(e.(*ast.AtomicExpr))
	case ast.ExprMonomial:
		return c.checkMonomialExpr(e.(*ast.MonomialExpr))
	case ast.ExprBinomial:
		return c.checkBinomialExpr(e.(*ast.BinomialExpr))
	case ast.ExprTrinomial:
		return c.checkTrinomialExpr(e.(*ast.TrinomialExpr))
	case ast.ExprFunctionCall:
		return c.checkFuncCallExpr(e.(*ast.FunctionCallExpr))
	case ast.ExprUniformInitializer:
		return c.checkUniformInitializerExpr(e.(*ast.UniformInitializerExpr))
	case ast.ExprInitializerList:
		return c.checkInitializerListExpr(e.(*ast.InitializerListExpr))
	case ast.ExprTypecast:
		return c.checkTypecastExpr(e.(*ast.TypecastExpr))
	default:
		return c.errorf("Unknown expression type encountered while analyzing the AST: %d", int(e.ExprKind()))
	}
}

func (c *Checker) checkAtomicExpr(e *ast.AtomicExpr) bool {
	switch e.Kind {
	case ast.AtomicStringLiteral:
		return c.errorf("String literals are not allowed, found %s.", e.StringVal)
	case ast.AtomicCharLiteral:
		return c.errorf("Char literals are not allowed, found %s.", e.CharVal)
	case ast.AtomicNumberLiteral:
		return true
	case ast.AtomicName:
		return c.nameAllowed(e.NameVal)
	case ast.AtomicVarType:
		return c.checkVarType(e.VarTypeVal)
	case ast.AtomicLambda:
		return c.checkLambda(e.LambdaVal)
	default:
		return c.errorf("Unknown atomic expression type encountered while analyzing the AST: %d", int(e.Kind))
	}
}

func (c *Checker) checkMonomialExpr(e *ast.MonomialExpr) bool {
	switch e.Op {
	case ast.UnaryPlus, ast.UnaryMinus, ast.PrefixIncrement, ast.PrefixDecrement,
		ast.PostfixIncrement, ast.PostfixDecrement, ast.BitToggle, ast.LogicalNot,
		ast.Parenthesize, ast.SizeOf:
		return c.checkExpr(e.Term)
	case ast.Derefer:
		return c.errorf("Pointer dereferencing (unary operator `*`) is not allowed.")
	case ast.Refer:
		return c.errorf("Variable referencing (unary operator `&`) is not allowed.")
	case ast.New:
		return c.errorf("Allocation via `new` is not allowed.")
	case ast.Delete, ast.DeleteArray:
		return c.errorf("Deallocation via `delete` is not allowed.")
	case ast.Variadic, ast.VariadicSizeOf:
		return c.errorf("Variadic expressions are not allowed.")
	default:
		return c.errorf("Unknown unary operator encountered while analyzing the AST: %d", int(e.Op))
	}
}

func (c *Checker) checkBinomialExpr(e *ast.BinomialExpr) bool {
	switch e.Op {
	case ast.OpPlus, ast.OpMinus, ast.OpMul, ast.OpAnd, ast.OpOr, ast.OpXor, ast.OpAssign,
		ast.OpLess, ast.OpGreater, ast.OpComma, ast.OpLogicalAnd, ast.OpLogicalOr,
		ast.OpPlusAssign, ast.OpMinusAssign, ast.OpMulAssign, ast.OpXorAssign,
		ast.OpAndAssign, ast.OpOrAssign, ast.OpLeftShift, ast.OpRightShift,
		ast.OpExtraction, ast.OpEqual, ast.OpNotEqual, ast.OpLessEqual, ast.OpGreaterEqual,
		ast.OpLShiftAssign, ast.OpRShiftAssign, ast.OpThreeWayCmp, ast.OpUserLiteral, ast.OpDot:
		if !c.checkExpr(e.Term1) {
			return false
		}
		return c.checkExpr(e.Term2)
	case ast.OpDiv, ast.OpDivAssign:
		return c.errorf("Division operator `/` is not allowed. Use the `div` function provided in the QPI instead.")
	case ast.OpPercent, ast.OpPercentAssign:
		return c.errorf("Modulo operator `%%` is not allowed. Use the `mod` function provided in the QPI instead.")
	case ast.OpArrayIndex:
		return c.errorf("Plain arrays are not allowed, use the Array class provided by the QPI instead.")
	case ast.OpPlacementNew, ast.OpGlobalPlacementNew:
		return c.errorf("Construction via placement `new` is not allowed.")
	case ast.OpArrow, ast.OpArrowStar:
		return c.errorf("Dereferencing (operator `->` or `->*`) is not allowed.")
	default:
		return c.errorf("Unknown binary operator encountered while analyzing the AST: %d", int(e.Op))
	}
}

func (c *Checker) checkTrinomialExpr(e *ast.TrinomialExpr) bool {
	switch e.Op {
	case ast.Conditional:
		if !c.checkExpr(e.Term1) {
			return false
		}
		if !c.checkExpr(e.Term2) {
			return false
		}
		return c.checkExpr(e.Term3)
	default:
		return c.errorf("Unknown ternary operator encountered while analyzing the AST: %d", int(e.Op))
	}
}

func (c *Checker) checkFuncCallExpr(e *ast.FunctionCallExpr) bool {
	if !c.checkExpr(e.Function) {
		return false
	}
	for _, arg := range e.Args {
		if !c.checkExpr(arg) {
			return false
		}
	}
	return true
}

func (c *Checker) checkUniformInitializerExpr(e *ast.UniformInitializerExpr) bool {
	if !c.nameAllowed(e.Name) {
		return false
	}
	for _, arg := range e.Args {
		if !c.checkExpr(arg) {
			return false
		}
	}
	return true
}

func (c *Checker) checkInitializerListExpr(e *ast.InitializerListExpr) bool {
	for _, arg := range e.Args {
		if !c.checkExpr(arg) {
			return false
		}
	}
	return true
}

func (c *Checker) checkTypecastExpr(e *ast.TypecastExpr) bool {
	switch e.Kind {
	case ast.CastCStyle, ast.CastFunctionStyle, ast.CastStatic, ast.CastDynamic, ast.CastReinterpret:
		if !c.checkVarType(e.TargetType) {
			return false
		}
		return c.checkExpr(e.Inner)
	case ast.CastConst:
		return c.errorf("`const_cast` is not allowed.")
	default:
		return c.errorf("Unknown cast type encountered while analyzing the AST: %d", int(e.Kind))
	}
}
