package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/qubic/contractverify/pkg/ast"
)

// unrecognizedExpr is a sentinel AtomicKind value that always falls to the
// checker's "unknown atomic expression type" branch. Using it instead of a
// new AST variant keeps the expression set closed while still giving an
// unrecognized grammar node a legitimate compliance-failure outcome.
const unrecognizedExpr ast.AtomicKind = -1

func (c *converter) convertExpr(n *sitter.Node) ast.Expression {
	if n == nil {
		return &ast.AtomicExpr{Kind: unrecognizedExpr}
	}
	switch n.Type() {
	case "identifier", "field_identifier", "type_identifier", "qualified_identifier", "namespace_identifier":
		return &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: c.text(n)}
	case "number_literal":
		return &ast.AtomicExpr{Kind: ast.AtomicNumberLiteral, NumberVal: c.text(n)}
	case "string_literal", "raw_string_literal", "concatenated_string":
		return &ast.AtomicExpr{Kind: ast.AtomicStringLiteral, StringVal: c.text(n)}
	case "char_literal":
		return &ast.AtomicExpr{Kind: ast.AtomicCharLiteral, CharVal: c.text(n)}
	case "lambda_expression":
		return &ast.AtomicExpr{Kind: ast.AtomicLambda, LambdaVal: c.convertLambda(n)}
	case "parenthesized_expression":
		if n.NamedChildCount() > 0 {
			return &ast.MonomialExpr{Op: ast.Parenthesize, Term: c.convertExpr(n.NamedChild(0))}
		}
		return &ast.AtomicExpr{Kind: unrecognizedExpr}
	case "sizeof_expression":
		if v := c.childByField(n, "value"); v != nil {
			return &ast.MonomialExpr{Op: ast.SizeOf, Term: c.convertExpr(v)}
		}
		return &ast.MonomialExpr{Op: ast.SizeOf, Term: &ast.AtomicExpr{Kind: ast.AtomicNumberLiteral}}
	case "pack_expansion_expression":
		return &ast.MonomialExpr{Op: ast.Variadic, Term: c.convertExpr(n.NamedChild(0))}
	case "unary_expression", "pointer_expression":
		return c.convertUnary(n)
	case "update_expression":
		return c.convertUpdate(n)
	case "binary_expression":
		return c.convertBinary(n)
	case "assignment_expression":
		return c.convertAssignment(n)
	case "comma_expression":
		return &ast.BinomialExpr{Op: ast.OpComma, Term1: c.convertExpr(c.childByField(n, "left")), Term2: c.convertExpr(c.childByField(n, "right"))}
	case "conditional_expression":
		return &ast.TrinomialExpr{
			Op:    ast.Conditional,
			Term1: c.convertExpr(c.childByField(n, "condition")),
			Term2: c.convertExpr(c.childByField(n, "consequence")),
			Term3: c.convertExpr(c.childByField(n, "alternative")),
		}
	case "call_expression":
		return c.convertCall(n)
	case "subscript_expression":
		return &ast.BinomialExpr{Op: ast.OpArrayIndex, Term1: c.convertExpr(c.childByField(n, "argument")), Term2: c.convertExpr(c.childByField(n, "index"))}
	case "field_expression":
		op := ast.OpDot
		if containsToken(n, "->") {
			op = ast.OpArrow
		}
		return &ast.BinomialExpr{Op: op, Term1: c.convertExpr(c.childByField(n, "argument")), Term2: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: c.text(c.childByField(n, "field"))}}
	case "new_expression":
		if containsToken(n, "(") && hasPlacementArgs(n) {
			return &ast.BinomialExpr{Op: ast.OpPlacementNew, Term1: &ast.AtomicExpr{Kind: ast.AtomicNumberLiteral}, Term2: c.newTypeExpr(n)}
		}
		return &ast.MonomialExpr{Op: ast.New, Term: c.newTypeExpr(n)}
	case "delete_expression":
		op := ast.Delete
		if containsToken(n, "[") {
			op = ast.DeleteArray
		}
		return &ast.MonomialExpr{Op: op, Term: c.convertExpr(n.NamedChild(int(n.NamedChildCount()) - 1))}
	case "cast_expression":
		return &ast.TypecastExpr{Kind: ast.CastCStyle, TargetType: c.convertVarType(n), Inner: c.convertExpr(c.childByField(n, "value"))}
	case "function_cast_expression":
		return &ast.TypecastExpr{Kind: ast.CastFunctionStyle, TargetType: &ast.VarType{BaseType: c.text(c.childByField(n, "type"))}, Inner: c.convertExpr(c.childByField(n, "value"))}
	case "compound_literal_expression", "initializer_list":
		return c.convertInitializer(n)
	default:
		return &ast.AtomicExpr{Kind: unrecognizedExpr}
	}
}

func hasPlacementArgs(n *sitter.Node) bool {
	return c0ContainsParen(n)
}

func (c *converter) newTypeExpr(n *sitter.Node) ast.Expression {
	if t := c.childByField(n, "type"); t != nil {
		return &ast.AtomicExpr{Kind: ast.AtomicVarType, VarTypeVal: &ast.VarType{BaseType: c.text(t)}}
	}
	return &ast.AtomicExpr{Kind: unrecognizedExpr}
}

func (c *converter) convertUnary(n *sitter.Node) ast.Expression {
	operator := c.text(c.childByField(n, "operator"))
	arg := c.childByField(n, "argument")
	op, ok := unaryOpFor(operator)
	if !ok {
		return &ast.AtomicExpr{Kind: unrecognizedExpr}
	}
	return &ast.MonomialExpr{Op: op, Term: c.convertExpr(arg)}
}

func unaryOpFor(operator string) (ast.UnaryOp, bool) {
	switch operator {
	case "+":
		return ast.UnaryPlus, true
	case "-":
		return ast.UnaryMinus, true
	case "*":
		return ast.Derefer, true
	case "&":
		return ast.Refer, true
	case "~":
		return ast.BitToggle, true
	case "!":
		return ast.LogicalNot, true
	}
	return 0, false
}

func (c *converter) convertUpdate(n *sitter.Node) ast.Expression {
	operator := c.text(c.childByField(n, "operator"))
	arg := c.childByField(n, "argument")
	prefix := arg != nil && arg.StartByte() > n.StartByte()

	var op ast.UnaryOp
	switch {
	case operator == "++" && prefix:
		op = ast.PrefixIncrement
	case operator == "++":
		op = ast.PostfixIncrement
	case operator == "--" && prefix:
		op = ast.PrefixDecrement
	default:
		op = ast.PostfixDecrement
	}
	return &ast.MonomialExpr{Op: op, Term: c.convertExpr(arg)}
}

func (c *converter) convertBinary(n *sitter.Node) ast.Expression {
	operator := c.text(c.childByField(n, "operator"))
	op, ok := binaryOpFor(operator)
	if !ok {
		return &ast.AtomicExpr{Kind: unrecognizedExpr}
	}
	return &ast.BinomialExpr{Op: op, Term1: c.convertExpr(c.childByField(n, "left")), Term2: c.convertExpr(c.childByField(n, "right"))}
}

func binaryOpFor(operator string) (ast.BinaryOp, bool) {
	switch operator {
	case "+":
		return ast.OpPlus, true
	case "-":
		return ast.OpMinus, true
	case "*":
		return ast.OpMul, true
	case "/":
		return ast.OpDiv, true
	case "%":
		return ast.OpPercent, true
	case "&":
		return ast.OpAnd, true
	case "|":
		return ast.OpOr, true
	case "^":
		return ast.OpXor, true
	case "<":
		return ast.OpLess, true
	case ">":
		return ast.OpGreater, true
	case "<=":
		return ast.OpLessEqual, true
	case ">=":
		return ast.OpGreaterEqual, true
	case "==":
		return ast.OpEqual, true
	case "!=":
		return ast.OpNotEqual, true
	case "&&":
		return ast.OpLogicalAnd, true
	case "||":
		return ast.OpLogicalOr, true
	case "<<":
		return ast.OpLeftShift, true
	case ">>":
		return ast.OpRightShift, true
	case "<=>":
		return ast.OpThreeWayCmp, true
	case "->*":
		return ast.OpArrowStar, true
	}
	return 0, false
}

func (c *converter) convertAssignment(n *sitter.Node) ast.Expression {
	operator := c.text(c.childByField(n, "operator"))
	op, ok := assignOpFor(operator)
	if !ok {
		return &ast.AtomicExpr{Kind: unrecognizedExpr}
	}
	return &ast.BinomialExpr{Op: op, Term1: c.convertExpr(c.childByField(n, "left")), Term2: c.convertExpr(c.childByField(n, "right"))}
}

func assignOpFor(operator string) (ast.BinaryOp, bool) {
	switch operator {
	case "=":
		return ast.OpAssign, true
	case "+=":
		return ast.OpPlusAssign, true
	case "-=":
		return ast.OpMinusAssign, true
	case "*=":
		return ast.OpMulAssign, true
	case "/=":
		return ast.OpDivAssign, true
	case "%=":
		return ast.OpPercentAssign, true
	case "&=":
		return ast.OpAndAssign, true
	case "|=":
		return ast.OpOrAssign, true
	case "^=":
		return ast.OpXorAssign, true
	case "<<=":
		return ast.OpLShiftAssign, true
	case ">>=":
		return ast.OpRShiftAssign, true
	}
	return 0, false
}

func (c *converter) convertCall(n *sitter.Node) ast.Expression {
	fn := c.convertExpr(c.childByField(n, "function"))
	args := c.childByField(n, "arguments")
	call := &ast.FunctionCallExpr{Function: fn}
	if args != nil {
		for i := 0; i < int(args.NamedChildCount()); i++ {
			call.Args = append(call.Args, c.convertExpr(args.NamedChild(i)))
		}
	}
	return call
}

func (c *converter) convertInitializer(n *sitter.Node) ast.Expression {
	if n.Type() == "compound_literal_expression" {
		name := c.text(c.childByField(n, "type"))
		list := c.childByField(n, "value")
		u := &ast.UniformInitializerExpr{Name: name}
		if list != nil {
			for i := 0; i < int(list.NamedChildCount()); i++ {
				u.Args = append(u.Args, c.convertExpr(list.NamedChild(i)))
			}
		}
		return u
	}
	list := &ast.InitializerListExpr{}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		list.Args = append(list.Args, c.convertExpr(n.NamedChild(i)))
	}
	return list
}

func (c *converter) convertLambda(n *sitter.Node) *ast.LambdaEntity {
	l := &ast.LambdaEntity{}
	if captures := c.childByField(n, "captures"); captures != nil {
		l.Captures = &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: c.text(captures)}
	}
	if declarator := c.childByField(n, "declarator"); declarator != nil {
		if pl := c.childByField(declarator, "parameters"); pl != nil {
			for i := 0; i < int(pl.NamedChildCount()); i++ {
				l.Params = append(l.Params, c.convertParam(pl.NamedChild(i)))
			}
		}
		if rt := c.childByField(declarator, "type"); rt != nil {
			l.ReturnType = &ast.VarType{BaseType: c.text(rt)}
		}
	}
	if body := c.childByField(n, "body"); body != nil {
		l.Body = c.convertBlock(body)
	}
	return l
}
