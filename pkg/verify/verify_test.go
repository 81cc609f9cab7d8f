package verify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubic/contractverify/pkg/ast"
	"github.com/qubic/contractverify/pkg/config"
)

// file builds a minimal CompoundFile wrapping the given state struct and
// extra top-level children, the same shape every fixture in
// test/contract_verify_test.cpp shares.
func file(children ...ast.Entity) *ast.CompoundEntity {
	stateStruct := &ast.CompoundEntity{
		Type:        ast.CompoundStruct,
		Name:        "TESTCON",
		Inheritance: []ast.InheritanceInfo{{BaseName: "ContractBase"}},
	}
	return &ast.CompoundEntity{
		Type:     ast.CompoundFile,
		Children: append([]ast.Entity{stateStruct}, children...),
	}
}

func runCheck(t *testing.T, f *ast.CompoundEntity) (bool, string) {
	t.Helper()
	var buf bytes.Buffer
	ok := CheckFile(f, config.Default(), &buf)
	return ok, buf.String()
}

func TestFindStateStructName(t *testing.T) {
	f := file()
	require.Equal(t, "TESTCON", FindStateStructName(f, &bytes.Buffer{}))
}

func TestFindStateStructNameAbsent(t *testing.T) {
	f := &ast.CompoundEntity{Type: ast.CompoundFile}
	require.Equal(t, "", FindStateStructName(f, &bytes.Buffer{}))
}

func TestPassesOnBareStateStruct(t *testing.T) {
	ok, out := runCheck(t, file())
	assert.True(t, ok)
	assert.Empty(t, out)
}

func TestVariadicArgument(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Params: []ast.Entity{
			&ast.VarEntity{Type: ast.VarType{BaseType: "int"}, Decl: ast.VarDecl{Name: "args..."}},
		},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Variadic arguments are not allowed.\n", out)
}

func TestParameterPack(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Params: []ast.Entity{
			&ast.VarEntity{Type: ast.VarType{BaseType: "T", ParameterPack: true}, Decl: ast.VarDecl{Name: "args"}},
		},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Variadic arguments or parameter packs are not allowed.\n", out)
}

func TestVariadicSizeof(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.MonomialExpr{Op: ast.VariadicSizeOf, Term: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "args"}},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Variadic expressions are not allowed.\n", out)
}

func TestArrayDeclaration(t *testing.T) {
	s := &ast.CompoundEntity{
		Type: ast.CompoundStruct,
		Name: "TESTCONFoo",
		Children: []ast.Entity{
			&ast.VarEntity{
				Type: ast.VarType{BaseType: "int"},
				Decl: ast.VarDecl{Name: "arr", ArraySizes: []ast.Expression{&ast.AtomicExpr{Kind: ast.AtomicNumberLiteral, NumberVal: "4"}}},
			},
		},
	}
	ok, out := runCheck(t, file(s))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Plain arrays are not allowed, use the Array class provided by the QPI instead.\n", out)
}

func TestArrayIndexing(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.BinomialExpr{
				Op:    ast.OpArrayIndex,
				Term1: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "arr"},
				Term2: &ast.AtomicExpr{Kind: ast.AtomicNumberLiteral, NumberVal: "0"},
			},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Plain arrays are not allowed, use the Array class provided by the QPI instead.\n", out)
}

func TestStringLiteral(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.AtomicExpr{Kind: ast.AtomicStringLiteral, StringVal: `"I am a string literal"`},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] String literals are not allowed, found \"I am a string literal\".\n", out)
}

func TestCharLiteral(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.AtomicExpr{Kind: ast.AtomicCharLiteral, CharVal: "'c'"},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Char literals are not allowed, found 'c'.\n", out)
}

func TestPointerDereferencing(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.MonomialExpr{Op: ast.Derefer, Term: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "p"}},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Pointer dereferencing (unary operator `*`) is not allowed.\n", out)
}

func TestVariableReferencing(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.MonomialExpr{Op: ast.Refer, Term: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "x"}},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Variable referencing (unary operator `&`) is not allowed.\n", out)
}

func TestAllocationNew(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.MonomialExpr{Op: ast.New, Term: &ast.AtomicExpr{Kind: ast.AtomicVarType, VarTypeVal: &ast.VarType{BaseType: "int"}}},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Allocation via `new` is not allowed.\n", out)
}

func TestDeallocationDelete(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.MonomialExpr{Op: ast.Delete, Term: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "p"}},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Deallocation via `delete` is not allowed.\n", out)
}

func TestDeallocationDeleteArray(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.MonomialExpr{Op: ast.DeleteArray, Term: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "p"}},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Deallocation via `delete` is not allowed.\n", out)
}

func TestConstructor(t *testing.T) {
	s := &ast.CompoundEntity{
		Type: ast.CompoundStruct,
		Name: "TESTCONFoo",
		Children: []ast.Entity{
			ast.ConstructorEntity{},
		},
	}
	ok, out := runCheck(t, file(s))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Constructors are not allowed.\n", out)
}

func TestDestructor(t *testing.T) {
	s := &ast.CompoundEntity{
		Type: ast.CompoundStruct,
		Name: "TESTCONFoo",
		Children: []ast.Entity{
			ast.DestructorEntity{},
		},
	}
	ok, out := runCheck(t, file(s))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Destructors are not allowed.\n", out)
}

func divisionTest(op ast.BinaryOp) *ast.FunctionEntity {
	return &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.BinomialExpr{
				Op:    op,
				Term1: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "a"},
				Term2: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "b"},
			},
		}},
	}
}

func TestDivision(t *testing.T) {
	ok, out := runCheck(t, file(divisionTest(ast.OpDiv)))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Division operator `/` is not allowed. Use the `div` function provided in the QPI instead.\n", out)
}

func TestDivisionAssign(t *testing.T) {
	ok, out := runCheck(t, file(divisionTest(ast.OpDivAssign)))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Division operator `/` is not allowed. Use the `div` function provided in the QPI instead.\n", out)
}

func TestModulo(t *testing.T) {
	ok, out := runCheck(t, file(divisionTest(ast.OpPercent)))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Modulo operator `%` is not allowed. Use the `mod` function provided in the QPI instead.\n", out)
}

func TestModuloAssign(t *testing.T) {
	ok, out := runCheck(t, file(divisionTest(ast.OpPercentAssign)))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Modulo operator `%` is not allowed. Use the `mod` function provided in the QPI instead.\n", out)
}

func TestDereferencingArrow(t *testing.T) {
	ok, out := runCheck(t, file(divisionTest(ast.OpArrow)))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Dereferencing (operator `->` or `->*`) is not allowed.\n", out)
}

func TestDereferencingArrowStar(t *testing.T) {
	ok, out := runCheck(t, file(divisionTest(ast.OpArrowStar)))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Dereferencing (operator `->` or `->*`) is not allowed.\n", out)
}

func TestConstCast(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.TypecastExpr{Kind: ast.CastConst, TargetType: &ast.VarType{BaseType: "int"}, Inner: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "x"}},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] `const_cast` is not allowed.\n", out)
}

func TestUsingNamespaceGlobal(t *testing.T) {
	ok, out := runCheck(t, file(ast.UsingNamespaceEntity{Name: "std"}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Only QPI can be used for a using namespace declaration in global scope.\n", out)
}

func TestUsingDeclarationGlobal(t *testing.T) {
	ok, out := runCheck(t, file(&ast.UsingDeclEntity{Name: "Foo", DefVarType: &ast.VarType{BaseType: "int", Const: true}}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Using declaration is not allowed in global scope.\n", out)
}

func TestUnion(t *testing.T) {
	ok, out := runCheck(t, file(&ast.CompoundEntity{Type: ast.CompoundUnion, Name: "TESTCONU"}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] `union` is not allowed.\n", out)
}

func TestPreprocessorInclude(t *testing.T) {
	ok, out := runCheck(t, file(ast.PreprocessorEntity{Directive: "#include <foo.h>"}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Preprocessor directives (character `#`) are not allowed.\n", out)
}

func TestTypedefGlobal(t *testing.T) {
	ok, out := runCheck(t, file(&ast.TypedefEntity{Var: &ast.VarEntity{
		Type: ast.VarType{BaseType: "int"},
		Decl: ast.VarDecl{Name: "TESTCONInt"},
	}}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] `typedef` is not allowed in global scope.\n", out)
}

func TestTypedefForbiddenType(t *testing.T) {
	s := &ast.CompoundEntity{
		Type: ast.CompoundStruct,
		Name: "TESTCONFoo",
		Children: []ast.Entity{
			&ast.TypedefEntity{Var: &ast.VarEntity{
				Type: ast.VarType{BaseType: "int", PtrLevel: 1},
				Decl: ast.VarDecl{Name: "IntPtr"},
			}},
		},
	}
	ok, out := runCheck(t, file(s))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Pointers are not allowed.\n", out)
}

func TestNamespaceAlias(t *testing.T) {
	ok, out := runCheck(t, file(ast.NamespaceAliasEntity{}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Namespace alias is not allowed.\n", out)
}

func TestFunctionPointer(t *testing.T) {
	ok, out := runCheck(t, file(ast.FunctionPointerEntity{Name: "fp"}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Function pointers are not allowed.\n", out)
}

func TestThrow(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			ast.ThrowStatementEntity{},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] `throw` statement is not allowed.\n", out)
}

func TestInheritance(t *testing.T) {
	s := &ast.CompoundEntity{
		Type:        ast.CompoundStruct,
		Name:        "TESTCONFoo",
		Inheritance: []ast.InheritanceInfo{{BaseName: "QpiContext"}},
	}
	ok, out := runCheck(t, file(s))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Inheritance from type QpiContext is not allowed.\n", out)
}

func TestNameCompound(t *testing.T) {
	ok, out := runCheck(t, file(&ast.CompoundEntity{Type: ast.CompoundStruct, Name: "__Foo"}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Names starting with double underscores are reserved.\n", out)
}

func TestNameFunction(t *testing.T) {
	s := &ast.CompoundEntity{
		Type: ast.CompoundStruct,
		Name: "TESTCONFoo",
		Children: []ast.Entity{
			&ast.FunctionEntity{Name: "__foo"},
		},
	}
	ok, out := runCheck(t, file(s))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Names starting with double underscores are reserved.\n", out)
}

func TestNameParam(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Params: []ast.Entity{
			&ast.VarEntity{Type: ast.VarType{BaseType: "int"}, Decl: ast.VarDecl{Name: "__x"}},
		},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Names starting with double underscores are reserved.\n", out)
}

func TestNameVar(t *testing.T) {
	s := &ast.CompoundEntity{
		Type: ast.CompoundStruct,
		Name: "TESTCONFoo",
		Children: []ast.Entity{
			&ast.VarEntity{Type: ast.VarType{BaseType: "int"}, Decl: ast.VarDecl{Name: "__x"}},
		},
	}
	ok, out := runCheck(t, file(s))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Names starting with double underscores are reserved.\n", out)
}

func typeTest(typ string) *ast.CompoundEntity {
	return &ast.CompoundEntity{
		Type: ast.CompoundStruct,
		Name: "TESTCONFoo",
		Children: []ast.Entity{
			&ast.VarEntity{Type: ast.VarType{BaseType: typ}, Decl: ast.VarDecl{Name: "x"}},
		},
	}
}

func TestTypeFloat(t *testing.T) {
	ok, out := runCheck(t, file(typeTest("float")))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Type float is not allowed.\n", out)
}

func TestTypeDouble(t *testing.T) {
	ok, out := runCheck(t, file(typeTest("double")))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Type double is not allowed.\n", out)
}

func TestTypeChar(t *testing.T) {
	ok, out := runCheck(t, file(typeTest("char")))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Type char is not allowed.\n", out)
}

func TestGlobalConstant(t *testing.T) {
	ok, out := runCheck(t, file(&ast.VarEntity{
		Type: ast.VarType{BaseType: "int", Const: true},
		Decl: ast.VarDecl{Name: "DOES_NOT_START_WITH_STATE_STRUCT_NAME"},
	}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Names declared in global scope (constants, structs/classes, functions) have to start with state struct name (TESTCON). Found invalid name: DOES_NOT_START_WITH_STATE_STRUCT_NAME\n", out)
}

func TestGlobalVariable(t *testing.T) {
	ok, out := runCheck(t, file(&ast.VarEntity{
		Type: ast.VarType{BaseType: "int"},
		Decl: ast.VarDecl{Name: "TESTCONx"},
	}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Global variables are not allowed. You may use global constants (const/constexpr).\n", out)
}

func TestGlobalFunction(t *testing.T) {
	ok, out := runCheck(t, file(&ast.FunctionEntity{Name: "doesNotStartWithStateStructName"}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Names declared in global scope (constants, structs/classes, functions) have to start with state struct name (TESTCON). Found invalid name: doesNotStartWithStateStructName\n", out)
}

func TestGlobalStruct(t *testing.T) {
	ok, out := runCheck(t, file(&ast.CompoundEntity{Type: ast.CompoundStruct, Name: "DoesNotStartWithStateStructName"}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Names declared in global scope (constants, structs/classes, functions) have to start with state struct name (TESTCON). Found invalid name: DoesNotStartWithStateStructName\n", out)
}

func TestGlobalClass(t *testing.T) {
	ok, out := runCheck(t, file(&ast.CompoundEntity{Type: ast.CompoundClass, Name: "DoesNotStartWithStateStructName"}))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Names declared in global scope (constants, structs/classes, functions) have to start with state struct name (TESTCON). Found invalid name: DoesNotStartWithStateStructName\n", out)
}

func TestPointerDeclaration(t *testing.T) {
	s := &ast.CompoundEntity{
		Type: ast.CompoundStruct,
		Name: "TESTCONFoo",
		Children: []ast.Entity{
			&ast.VarEntity{Type: ast.VarType{BaseType: "int", PtrLevel: 1}, Decl: ast.VarDecl{Name: "x"}},
		},
	}
	ok, out := runCheck(t, file(s))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Pointers are not allowed.\n", out)
}

func TestLocalVariable(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.VarEntity{Type: ast.VarType{BaseType: "int"}, Decl: ast.VarDecl{Name: "fee"}},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Local variables are not allowed, found variable with name fee.\n", out)
}

func TestScopeResolutionFunctionCall(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.FunctionCallExpr{Function: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "someNamespace::doSomething"}},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Scope resolution with prefix someNamespace is not allowed.\n", out)
}

func TestScopeResolutionVariable(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "myNumbers::count"},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Scope resolution with prefix myNumbers is not allowed.\n", out)
}

// Success-path coverage mirroring test_ok_* fixtures.

func TestIfBlockPasses(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.IfEntity{
				Condition: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "flag"},
				Body:      &ast.CompoundEntity{Type: ast.CompoundBlock},
			},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.True(t, ok)
	assert.Empty(t, out)
}

func TestForBlockPasses(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.ForEntity{
				Start: &ast.VarEntity{Type: ast.VarType{BaseType: "int"}, Decl: ast.VarDecl{Name: "i"}},
				Stop:  &ast.AtomicExpr{Kind: ast.AtomicNumberLiteral, NumberVal: "10"},
				Step:  &ast.MonomialExpr{Op: ast.PostfixIncrement, Term: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "i"}},
				Body:  &ast.CompoundEntity{Type: ast.CompoundBlock},
			},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.True(t, ok)
	assert.Empty(t, out)
}

func TestGotoPasses(t *testing.T) {
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.GotoEntity{Label: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "done"}},
			ast.LabelEntity{Name: "done"},
		}},
	}
	ok, out := runCheck(t, file(fn))
	assert.True(t, ok)
	assert.Empty(t, out)
}

func TestScopeResolutionLocalEnumPasses(t *testing.T) {
	s := &ast.CompoundEntity{
		Type: ast.CompoundStruct,
		Name: "TESTCONFoo",
		Children: []ast.Entity{
			ast.EnumEntityNode{Name: "Color"},
			&ast.VarEntity{
				Type: ast.VarType{BaseType: "int"},
				Decl: ast.VarDecl{Name: "x", InitializeType: ast.UsingEqual, AssignValue: &ast.AtomicExpr{Kind: ast.AtomicName, NameVal: "Color::RED"}},
			},
		},
	}
	ok, out := runCheck(t, file(s))
	assert.True(t, ok)
	assert.Empty(t, out)
}

func TestUnknownEntityKindRejected(t *testing.T) {
	ok, out := runCheck(t, file(unknownEntity{}))
	assert.False(t, ok)
	assert.Contains(t, out, "[ ERROR ] Unknown CppEntityType encountered while analyzing the AST:")
}

type unknownEntity struct{}

func (unknownEntity) EntityKind() ast.EntityKind { return ast.EntityKind(9999) }

func TestNoContractBaseStructRejectsAllGlobalNames(t *testing.T) {
	f := &ast.CompoundEntity{
		Type: ast.CompoundFile,
		Children: []ast.Entity{
			&ast.VarEntity{Type: ast.VarType{BaseType: "int", Const: true}, Decl: ast.VarDecl{Name: "ANYTHING"}},
		},
	}
	var buf bytes.Buffer
	ssName := FindStateStructName(f, &buf)
	require.Equal(t, "", ssName)

	ok := CheckFile(f, config.Default(), &buf)
	assert.False(t, ok)
	assert.Equal(t, "[ ERROR ] Names declared in global scope (constants, structs/classes, functions) have to start with state struct name (). Found invalid name: ANYTHING\n", buf.String())
}

func TestScopeStackAlwaysEmptiesAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	c := NewChecker(config.Default(), "TESTCON", &buf)
	fn := &ast.FunctionEntity{
		Name: "TESTCONfoo",
		Body: &ast.CompoundEntity{Type: ast.CompoundBlock, Children: []ast.Entity{
			&ast.VarEntity{Type: ast.VarType{BaseType: "int"}, Decl: ast.VarDecl{Name: "fee"}},
		}},
	}
	ok := c.CheckEntity(fn)
	assert.False(t, ok)
	assert.True(t, c.scopeEmpty())
}
