package ast

// Entity is implemented by every node in the AST. It exposes only the
// discriminator the dispatcher switches on; everything else is reached by
// type-asserting to the concrete struct for that EntityKind.
type Entity interface {
	EntityKind() EntityKind
}

// Leaf entities that carry no payload beyond their kind.

type DocCommentEntity struct{}

func (DocCommentEntity) EntityKind() EntityKind { return DocComment }

type AccessSpecifierEntity struct{}

func (AccessSpecifierEntity) EntityKind() EntityKind { return AccessSpecifier }

type EnumEntityNode struct {
	Name string
}

func (EnumEntityNode) EntityKind() EntityKind { return EnumEntity }

type MacroCallEntity struct {
	Name string
	Args []string
}

func (MacroCallEntity) EntityKind() EntityKind { return MacroCall }

type LabelEntity struct {
	Name string
}

func (LabelEntity) EntityKind() EntityKind { return Label }

type PreprocessorEntity struct {
	Directive string
}

func (PreprocessorEntity) EntityKind() EntityKind { return Preprocessor }

type NamespaceAliasEntity struct{}

func (NamespaceAliasEntity) EntityKind() EntityKind { return NamespaceAlias }

type FunctionPointerEntity struct {
	Name string
}

func (FunctionPointerEntity) EntityKind() EntityKind { return FunctionPointer }

type ConstructorEntity struct{}

func (ConstructorEntity) EntityKind() EntityKind { return Constructor }

type DestructorEntity struct{}

func (DestructorEntity) EntityKind() EntityKind { return Destructor }

type ThrowStatementEntity struct{}

func (ThrowStatementEntity) EntityKind() EntityKind { return ThrowStatement }

type TryBlockEntity struct{}

func (TryBlockEntity) EntityKind() EntityKind { return TryBlock }

// BlobEntity stands in for any fragment the parser could not interpret.
type BlobEntity struct {
	Raw string
}

func (BlobEntity) EntityKind() EntityKind { return Blob }

// InheritanceInfo names one base in a struct/class's inheritance list.
type InheritanceInfo struct {
	BaseName string
}

// TemplateParam is one parameter of a template specification.
type TemplateParam struct {
	ParamType            *VarType // nil if untyped (e.g. `template <typename T>`)
	ParamTypeIsFuncPtr   bool
	ParamName            string
	DefaultType          *VarType
	DefaultExpr          Expression
}

// TemplateParams is the full parameter list of a template specification.
type TemplateParams struct {
	Params []TemplateParam
}

// CompoundEntity models files, namespaces, struct/class/union bodies, and
// plain blocks.
type CompoundEntity struct {
	Type            CompoundType
	Name            string
	Inheritance     []InheritanceInfo
	Templated       bool
	TemplateSpec    *TemplateParams
	Children        []Entity
}

func (*CompoundEntity) EntityKind() EntityKind { return Compound }

// VarType is the declared type of a variable, parameter, or return value.
type VarType struct {
	BaseType      string
	Const         bool
	ConstExpr     bool
	PtrLevel      int
	ParameterPack bool
	// Compound is non-nil when the type is an inline definition, e.g.
	// `struct { int x; } foo;`.
	Compound *CompoundEntity
}

// VarDecl is a single declarator sharing a VarType with its siblings in a
// VarList.
type VarDecl struct {
	Name              string
	PtrLevel          int
	ArraySizes        []Expression
	InitializeType    VarInitializeType
	AssignValue       Expression
	ConstructorArgs   []Expression
}

// VarEntity is a type plus exactly one declarator.
type VarEntity struct {
	Type         VarType
	Decl         VarDecl
	Templated    bool
	TemplateSpec *TemplateParams
}

func (*VarEntity) EntityKind() EntityKind { return Var }

// VarListEntity is a shared type with more than one declarator.
type VarListEntity struct {
	First *VarEntity
	Decls []VarDecl
}

func (*VarListEntity) EntityKind() EntityKind { return VarList }

type UsingNamespaceEntity struct {
	Name string
}

func (UsingNamespaceEntity) EntityKind() EntityKind { return UsingNamespace }

// UsingDecl's definition is one of VarType, a function pointer marker, or a
// nested Compound — mirroring the `std::variant` in the C++ original.
type UsingDeclEntity struct {
	Templated     bool
	TemplateSpec  *TemplateParams
	Name          string
	DefVarType    *VarType
	DefFuncPtr    bool
	DefCompound   *CompoundEntity
}

func (*UsingDeclEntity) EntityKind() EntityKind { return UsingDecl }

type TypedefEntity struct {
	Var *VarEntity
}

func (*TypedefEntity) EntityKind() EntityKind { return TypedefDecl }

type TypedefListEntity struct {
	VarList *VarListEntity
}

func (*TypedefListEntity) EntityKind() EntityKind { return TypedefDeclList }

type GotoEntity struct {
	Label Expression
}

func (*GotoEntity) EntityKind() EntityKind { return Goto }

type ForwardClassDeclEntity struct {
	Templated    bool
	TemplateSpec *TemplateParams
}

func (*ForwardClassDeclEntity) EntityKind() EntityKind { return ForwardClassDecl }

type TypeConverterEntity struct {
	Templated    bool
	TemplateSpec *TemplateParams
	TargetType   *VarType
	Body         *CompoundEntity
}

func (*TypeConverterEntity) EntityKind() EntityKind { return TypeConverter }

type FunctionEntity struct {
	Name         string
	Templated    bool
	TemplateSpec *TemplateParams
	ReturnType   *VarType
	Params       []Entity // VarEntity or FunctionPointerEntity
	Body         *CompoundEntity
}

func (*FunctionEntity) EntityKind() EntityKind { return Function }

type LambdaEntity struct {
	Captures   Expression
	ReturnType *VarType
	Params     []Entity
	Body       *CompoundEntity
}

func (*LambdaEntity) EntityKind() EntityKind { return Lambda }

type ReturnStatementEntity struct {
	Value Expression // nil for a bare `return;`
}

func (*ReturnStatementEntity) EntityKind() EntityKind { return ReturnStatement }

// IfEntity's Condition is a full Entity (not just an Expression) because the
// contract language, like C++, allows a declaration in an if-condition.
type IfEntity struct {
	Condition Entity
	Body      Entity
	ElsePart  Entity
}

func (*IfEntity) EntityKind() EntityKind { return IfBlock }

type ForEntity struct {
	Start Entity
	Stop  Expression
	Step  Expression
	Body  Entity
}

func (*ForEntity) EntityKind() EntityKind { return ForBlock }

type RangeForEntity struct {
	Var  *VarEntity
	Expr Expression
	Body Entity
}

func (*RangeForEntity) EntityKind() EntityKind { return RangeForBlock }

type WhileEntity struct {
	Condition Entity
	Body      Entity
}

func (*WhileEntity) EntityKind() EntityKind { return WhileBlock }

type DoWhileEntity struct {
	Body      Entity
	Condition Entity
}

func (*DoWhileEntity) EntityKind() EntityKind { return DoWhileBlock }

type CaseClause struct {
	CaseExpr Expression // nil for `default:`
	Body     *CompoundEntity
}

type SwitchEntity struct {
	Condition Expression
	Cases     []CaseClause
}

func (*SwitchEntity) EntityKind() EntityKind { return SwitchBlock }
