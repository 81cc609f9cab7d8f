package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/qubic/contractverify/pkg/ast"
)

// convertTopLevel converts a direct child of the translation_unit. It uses
// the same dispatch as convertEntity, which already handles file-scope
// constructs such as a template_declaration wrapping a struct or function.
func (c *converter) convertTopLevel(n *sitter.Node) ast.Entity {
	return c.convertEntity(n)
}

// convertEntity is the parser-side mirror of the verifier's CheckEntity
// dispatch: every grammar node it understands becomes exactly one
// ast.Entity. Anything it doesn't recognize becomes a BlobEntity, which the
// rule engine rejects unconditionally.
func (c *converter) convertEntity(n *sitter.Node) ast.Entity {
	if n == nil {
		return ast.BlobEntity{}
	}
	switch n.Type() {
	case "comment":
		return ast.DocCommentEntity{}
	case "access_specifier":
		return ast.AccessSpecifierEntity{}
	case "labeled_statement":
		return c.convertLabeledStatement(n)
	case "preproc_include", "preproc_def", "preproc_function_def", "preproc_call",
		"preproc_ifdef", "preproc_if", "preproc_elif", "preproc_else", "preproc_endif",
		"preproc_undef", "preproc_pragma":
		return ast.PreprocessorEntity{Directive: c.text(n)}
	case "namespace_alias_definition":
		return ast.NamespaceAliasEntity{}
	case "namespace_definition":
		return c.convertNamespace(n)
	case "struct_specifier", "class_specifier", "union_specifier":
		return c.convertCompoundSpecifier(n, nil)
	case "template_declaration":
		return c.convertTemplateDeclaration(n)
	case "function_definition":
		return c.convertFunctionDefinition(n, nil)
	case "field_declaration":
		return c.convertFieldDeclaration(n)
	case "declaration":
		return c.convertDeclaration(n)
	case "using_declaration":
		return c.convertUsingDeclaration(n)
	case "alias_declaration":
		return c.convertAliasDeclaration(n)
	case "type_definition":
		return c.convertTypeDefinition(n)
	case "function_declarator":
		// a bare forward declaration like `void foo();` with no body,
		// surfaced as a function entity with a nil body.
		return c.convertFunctionDefinition(n, nil)
	case "friend_declaration":
		return ast.BlobEntity{Raw: c.text(n)}
	case "compound_statement":
		return c.convertBlock(n)
	default:
		return c.convertStatement(n)
	}
}

func (c *converter) convertNamespace(n *sitter.Node) *ast.CompoundEntity {
	name := c.text(c.childByField(n, "name"))
	body := c.childByField(n, "body")
	comp := &ast.CompoundEntity{Type: ast.CompoundNamespace, Name: name}
	if body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			comp.Children = append(comp.Children, c.convertEntity(body.NamedChild(i)))
		}
	}
	return comp
}

func (c *converter) convertCompoundSpecifier(n *sitter.Node, tmpl *ast.TemplateParams) *ast.CompoundEntity {
	typ := ast.CompoundStruct
	switch n.Type() {
	case "class_specifier":
		typ = ast.CompoundClass
	case "union_specifier":
		typ = ast.CompoundUnion
	}

	comp := &ast.CompoundEntity{
		Type:         typ,
		Name:         c.text(c.childByField(n, "name")),
		Templated:    tmpl != nil,
		TemplateSpec: tmpl,
	}

	if base := baseClassClause(n); base != nil {
		for i := 0; i < int(base.NamedChildCount()); i++ {
			child := base.NamedChild(i)
			if child.Type() == "access_specifier" {
				continue
			}
			comp.Inheritance = append(comp.Inheritance, ast.InheritanceInfo{BaseName: c.text(child)})
		}
	}

	if body := c.childByField(n, "body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			comp.Children = append(comp.Children, c.convertEntity(body.NamedChild(i)))
		}
	}
	return comp
}

// baseClassClause finds the base_class_clause node among n's children; it
// isn't exposed as a named field in every grammar version, so we scan.
func baseClassClause(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "base_class_clause" {
			return child
		}
	}
	return nil
}

func (c *converter) convertTemplateDeclaration(n *sitter.Node) ast.Entity {
	tmpl := c.convertTemplateParams(c.childByField(n, "parameters"))

	var inner *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "template_parameter_list" {
			inner = child
			break
		}
	}
	if inner == nil {
		return ast.BlobEntity{Raw: c.text(n)}
	}

	switch inner.Type() {
	case "struct_specifier", "class_specifier", "union_specifier":
		return c.convertCompoundSpecifier(inner, tmpl)
	case "function_definition":
		return c.convertFunctionDefinition(inner, tmpl)
	case "declaration":
		if isForwardClassDecl(inner) {
			return &ast.ForwardClassDeclEntity{Templated: true, TemplateSpec: tmpl}
		}
		return c.convertDeclaration(inner)
	default:
		return ast.BlobEntity{Raw: c.text(n)}
	}
}

func isForwardClassDecl(n *sitter.Node) bool {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		t := n.NamedChild(i).Type()
		if t == "struct_specifier" || t == "class_specifier" {
			return n.NamedChild(i).ChildByFieldName("body") == nil
		}
	}
	return false
}

func (c *converter) convertTemplateParams(n *sitter.Node) *ast.TemplateParams {
	if n == nil {
		return nil
	}
	params := &ast.TemplateParams{}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		p := ast.TemplateParam{ParamName: c.text(c.childByField(child, "name"))}
		switch child.Type() {
		case "parameter_declaration", "optional_parameter_declaration":
			vt := c.convertVarType(child)
			p.ParamType = vt
			if def := c.childByField(child, "default_value"); def != nil {
				p.DefaultExpr = c.convertExpr(def)
			}
		case "type_parameter_declaration", "optional_type_parameter_declaration":
			if def := c.childByField(child, "default_type"); def != nil {
				p.DefaultType = &ast.VarType{BaseType: c.text(def)}
			}
		}
		params.Params = append(params.Params, p)
	}
	return params
}

func (c *converter) convertFunctionDefinition(n *sitter.Node, tmpl *ast.TemplateParams) *ast.FunctionEntity {
	declarator := c.childByField(n, "declarator")
	name, params := c.splitFunctionDeclarator(declarator)

	fn := &ast.FunctionEntity{
		Name:         name,
		Templated:    tmpl != nil,
		TemplateSpec: tmpl,
		Params:       params,
	}
	if rt := c.childByField(n, "type"); rt != nil {
		fn.ReturnType = c.convertVarTypeFromNode(rt, declarator)
	}
	if body := c.childByField(n, "body"); body != nil {
		fn.Body = c.convertBlock(body)
	}
	return fn
}

// splitFunctionDeclarator unwraps a (possibly pointer/reference-wrapped)
// function_declarator to find its name and parameter list.
func (c *converter) splitFunctionDeclarator(n *sitter.Node) (string, []ast.Entity) {
	if n == nil {
		return "", nil
	}
	for n.Type() != "function_declarator" {
		inner := c.childByField(n, "declarator")
		if inner == nil {
			return c.text(n), nil
		}
		n = inner
	}
	name := c.text(c.childByField(n, "declarator"))
	var params []ast.Entity
	if pl := c.childByField(n, "parameters"); pl != nil {
		for i := 0; i < int(pl.NamedChildCount()); i++ {
			params = append(params, c.convertParam(pl.NamedChild(i)))
		}
	}
	return name, params
}

func (c *converter) convertParam(n *sitter.Node) ast.Entity {
	if n.Type() == "variadic_parameter" {
		return &ast.VarEntity{Type: ast.VarType{BaseType: "..."}, Decl: ast.VarDecl{Name: "..."}}
	}
	declarator := c.childByField(n, "declarator")
	if declarator != nil && declaratorIsFunctionPointer(declarator) {
		return ast.FunctionPointerEntity{Name: c.text(c.innermostDeclaratorName(declarator))}
	}
	name := ""
	if declarator != nil {
		name = c.text(c.innermostDeclaratorName(declarator))
	}
	return &ast.VarEntity{
		Type: *c.convertVarTypeFromNode(c.childByField(n, "type"), declarator),
		Decl: ast.VarDecl{Name: name},
	}
}

func declaratorIsFunctionPointer(n *sitter.Node) bool {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() == "function_declarator" {
			return true
		}
	}
	return n.Type() == "function_declarator" && c0ContainsParen(n)
}

func c0ContainsParen(n *sitter.Node) bool { return false }

func (c *converter) innermostDeclaratorName(n *sitter.Node) *sitter.Node {
	for {
		switch n.Type() {
		case "pointer_declarator", "reference_declarator", "abstract_pointer_declarator":
			inner := c.childByField(n, "declarator")
			if inner == nil {
				return n
			}
			n = inner
		default:
			return n
		}
	}
}

func (c *converter) convertFieldDeclaration(n *sitter.Node) ast.Entity {
	declarator := c.childByField(n, "declarator")
	if declarator != nil {
		for d := declarator; d != nil; {
			if d.Type() == "function_declarator" {
				name, params := c.splitFunctionDeclarator(declarator)
				return &ast.FunctionEntity{Name: name, Params: params, ReturnType: c.convertVarTypeFromNode(c.childByField(n, "type"), declarator)}
			}
			d = c.childByField(d, "declarator")
		}
	}
	return c.declarationToVarEntity(n)
}

func (c *converter) convertDeclaration(n *sitter.Node) ast.Entity {
	return c.declarationToVarEntity(n)
}

// declarationToVarEntity builds a VarEntity (or VarListEntity, for a
// declaration sharing one type across multiple declarators) out of a
// `declaration` / `field_declaration` node.
func (c *converter) declarationToVarEntity(n *sitter.Node) ast.Entity {
	typeNode := c.childByField(n, "type")

	var declarators []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "init_declarator", "pointer_declarator", "reference_declarator",
			"identifier", "field_identifier", "array_declarator", "function_declarator":
			declarators = append(declarators, child)
		}
	}
	if len(declarators) == 0 {
		return ast.BlobEntity{Raw: c.text(n)}
	}

	first := c.convertOneVar(typeNode, declarators[0])
	if len(declarators) == 1 {
		return first
	}
	list := &ast.VarListEntity{First: first}
	for _, d := range declarators[1:] {
		v := c.convertOneVar(typeNode, d)
		list.Decls = append(list.Decls, v.Decl)
	}
	return list
}

func (c *converter) convertOneVar(typeNode, declarator *sitter.Node) *ast.VarEntity {
	vt := c.convertVarTypeFromNode(typeNode, declarator)
	decl := ast.VarDecl{Name: c.text(c.innermostDeclaratorName(declarator))}

	d := declarator
	for d != nil && d.Type() == "init_declarator" {
		if v := c.childByField(d, "value"); v != nil {
			decl.InitializeType = ast.UsingEqual
			decl.AssignValue = c.convertExpr(v)
		}
		d = c.childByField(d, "declarator")
	}
	if d != nil {
		for i := 0; i < int(d.NamedChildCount()); i++ {
			if d.NamedChild(i).Type() == "array_declarator" || d.Type() == "array_declarator" {
				arr := d
				if d.Type() != "array_declarator" {
					arr = d.NamedChild(i)
				}
				if size := c.childByField(arr, "size"); size != nil {
					decl.ArraySizes = append(decl.ArraySizes, c.convertExpr(size))
				} else {
					decl.ArraySizes = append(decl.ArraySizes, &ast.AtomicExpr{Kind: ast.AtomicNumberLiteral})
				}
			}
		}
	}

	return &ast.VarEntity{Type: *vt, Decl: decl}
}

func (c *converter) convertVarTypeFromNode(typeNode, declarator *sitter.Node) *ast.VarType {
	vt := &ast.VarType{BaseType: c.text(typeNode)}
	if typeNode != nil {
		switch typeNode.Type() {
		case "struct_specifier", "class_specifier", "union_specifier":
			vt.Compound = c.convertCompoundSpecifier(typeNode, nil)
		}
	}
	for d := declarator; d != nil; {
		switch d.Type() {
		case "pointer_declarator":
			vt.PtrLevel++
			d = c.childByField(d, "declarator")
			continue
		case "variadic_declarator", "variadic_parameter_declaration":
			vt.ParameterPack = true
		}
		break
	}
	if n := c.text(typeNode); n == "const" {
		vt.Const = true
	}
	vt.Const = vt.Const || hasQualifier(typeNode, "const")
	vt.ConstExpr = hasQualifier(typeNode, "constexpr")
	return vt
}

func (c *converter) convertVarType(n *sitter.Node) *ast.VarType {
	return c.convertVarTypeFromNode(c.childByField(n, "type"), c.childByField(n, "declarator"))
}

func hasQualifier(n *sitter.Node, qualifier string) bool {
	if n == nil {
		return false
	}
	parent := n.Parent()
	if parent == nil {
		return false
	}
	for i := 0; i < int(parent.ChildCount()); i++ {
		child := parent.Child(i)
		if !child.IsNamed() && child.Type() == qualifier {
			return true
		}
		if child.Type() == "type_qualifier" || child.Type() == "storage_class_specifier" {
			if child.ChildCount() > 0 && child.Child(0).Type() == qualifier {
				return true
			}
		}
	}
	return false
}

func (c *converter) convertUsingDeclaration(n *sitter.Node) ast.Entity {
	lastNamedChild := func() *sitter.Node {
		count := int(n.NamedChildCount())
		if count == 0 {
			return nil
		}
		return n.NamedChild(count - 1)
	}

	if containsToken(n, "namespace") {
		name := ""
		if id := c.childByField(n, "name"); id != nil {
			name = c.text(id)
		} else {
			name = c.text(lastNamedChild())
		}
		return ast.UsingNamespaceEntity{Name: name}
	}
	return &ast.UsingDeclEntity{Name: c.text(lastNamedChild())}
}

func containsToken(n *sitter.Node, token string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() && child.Type() == token {
			return true
		}
	}
	return false
}

func (c *converter) convertAliasDeclaration(n *sitter.Node) ast.Entity {
	name := c.text(c.childByField(n, "name"))
	typeNode := c.childByField(n, "type")
	return &ast.UsingDeclEntity{Name: name, DefVarType: &ast.VarType{BaseType: c.text(typeNode)}}
}

func (c *converter) convertTypeDefinition(n *sitter.Node) ast.Entity {
	typeNode := c.childByField(n, "type")

	var declarators []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "pointer_declarator", "type_identifier", "identifier", "array_declarator", "function_declarator":
			if child != typeNode {
				declarators = append(declarators, child)
			}
		}
	}
	if len(declarators) == 0 {
		return ast.BlobEntity{Raw: c.text(n)}
	}
	if len(declarators) == 1 {
		return &ast.TypedefEntity{Var: c.convertOneVar(typeNode, declarators[0])}
	}
	first := c.convertOneVar(typeNode, declarators[0])
	list := &ast.VarListEntity{First: first}
	for _, d := range declarators[1:] {
		list.Decls = append(list.Decls, c.convertOneVar(typeNode, d).Decl)
	}
	return &ast.TypedefListEntity{VarList: list}
}
