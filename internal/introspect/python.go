package introspect

import (
	"fmt"
	"os"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

var pythonLanguage = sitter.NewLanguage(python.Language())

// moduleSource is the parsed form of one Python module file: its docstring,
// its __all__ export list, and its locally-defined top-level objects.
type moduleSource struct {
	docstring string
	exports   []string
	defs      []*definition
}

// defKind separates the two statement forms a top-level member can have.
type defKind int

const (
	defClass defKind = iota
	defFunction
)

// definition is the opaque handle behind a MemberStub: everything extracted
// from one top-level class or def statement. Only statements defined in the
// file itself end up here, so imported and re-exported names never appear.
type definition struct {
	kind        defKind
	name        string
	docstring   string
	params      []rawParam
	returns     Optional
	bases       []string
	methods     []rawMethod
	attributes  []string
	enumMembers []EnumMember
}

// rawParam is a parameter as declared in the source, before docstring merge.
type rawParam struct {
	name       string
	def        Optional
	annotation Optional
	kind       string
}

// rawMethod is a method as declared in a class body.
type rawMethod struct {
	name      string
	params    []string
	docstring string
}

// parseModuleFile reads and parses one Python source file.
func parseModuleFile(path string) (*moduleSource, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseModuleSource(source, path)
}

// parseModuleSource parses Python source into a moduleSource.
func parseModuleSource(source []byte, path string) (*moduleSource, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(pythonLanguage)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse python source: %s", path)
	}
	defer tree.Close()

	root := tree.RootNode()

	mod := &moduleSource{
		docstring: blockDocstring(root, source),
		exports:   parseExports(root, source),
	}

	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(uint(i))
		if def := parseDefinition(unwrapDecorated(child), source); def != nil {
			mod.defs = append(mod.defs, def)
		}
	}

	return mod, nil
}

// unwrapDecorated peels decorated_definition wrappers off a statement.
func unwrapDecorated(node *sitter.Node) *sitter.Node {
	if node != nil && node.Kind() == "decorated_definition" {
		if inner := node.ChildByFieldName("definition"); inner != nil {
			return inner
		}
	}
	return node
}

// parseDefinition extracts a top-level class or function statement; anything
// else returns nil.
func parseDefinition(node *sitter.Node, source []byte) *definition {
	if node == nil {
		return nil
	}

	switch node.Kind() {
	case "function_definition":
		return parseFunctionDef(node, source)
	case "class_definition":
		return parseClassDef(node, source)
	}
	return nil
}

func parseFunctionDef(node *sitter.Node, source []byte) *definition {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	def := &definition{
		kind:      defFunction,
		name:      nodeText(nameNode, source),
		docstring: blockDocstring(node.ChildByFieldName("body"), source),
		params:    parseParameters(node.ChildByFieldName("parameters"), source),
	}

	if ret := node.ChildByFieldName("return_type"); ret != nil {
		def.returns = Value(nodeText(ret, source))
	}

	return def
}

func parseClassDef(node *sitter.Node, source []byte) *definition {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	def := &definition{
		kind: defClass,
		name: nodeText(nameNode, source),
	}

	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		for i := 0; i < int(supers.NamedChildCount()); i++ {
			base := supers.NamedChild(uint(i))
			switch base.Kind() {
			case "identifier", "attribute":
				def.bases = append(def.bases, nodeText(base, source))
			}
		}
	}

	body := node.ChildByFieldName("body")
	def.docstring = blockDocstring(body, source)
	parseClassBody(def, body, source)

	return def
}

// parseClassBody walks a class block collecting methods, attribute names and
// enum-style name/value assignments.
func parseClassBody(def *definition, body *sitter.Node, source []byte) {
	if body == nil {
		return
	}

	for i := 0; i < int(body.ChildCount()); i++ {
		stmt := unwrapDecorated(body.Child(uint(i)))

		switch stmt.Kind() {
		case "function_definition":
			method := parseMethodDef(stmt, source)
			if method == nil {
				continue
			}
			if method.name == "__init__" {
				def.params = constructorParams(stmt, source)
			}
			def.methods = append(def.methods, *method)
		case "expression_statement":
			if stmt.NamedChildCount() == 0 {
				continue
			}
			assign := stmt.NamedChild(0)
			if assign.Kind() != "assignment" {
				continue
			}
			left := assign.ChildByFieldName("left")
			right := assign.ChildByFieldName("right")
			if left == nil || left.Kind() != "identifier" || right == nil {
				continue
			}
			name := nodeText(left, source)
			if right.Kind() == "lambda" {
				continue
			}
			def.attributes = append(def.attributes, name)
			def.enumMembers = append(def.enumMembers, EnumMember{
				Name:  name,
				Value: valueText(right, source),
			})
		}
	}
}

// parseMethodDef extracts a def statement inside a class body.
func parseMethodDef(node *sitter.Node, source []byte) *rawMethod {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	var names []string
	for _, param := range parseParameters(node.ChildByFieldName("parameters"), source) {
		names = append(names, param.name)
	}
	names = dropReceiver(names)

	return &rawMethod{
		name:      nodeText(nameNode, source),
		params:    names,
		docstring: blockDocstring(node.ChildByFieldName("body"), source),
	}
}

// constructorParams returns the __init__ parameters minus the receiver, the
// signature a class exposes for instantiation.
func constructorParams(initDef *sitter.Node, source []byte) []rawParam {
	params := parseParameters(initDef.ChildByFieldName("parameters"), source)
	if len(params) > 0 && (params[0].name == "self" || params[0].name == "cls") {
		params = params[1:]
	}
	return params
}

// dropReceiver strips a leading self/cls from a method's parameter name list.
func dropReceiver(names []string) []string {
	if len(names) > 0 && (names[0] == "self" || names[0] == "cls") {
		return names[1:]
	}
	return names
}

// parseParameters flattens a parameters node into ordered rawParams with
// their kind labels resolved ("/" and "*" separators included).
func parseParameters(paramsNode *sitter.Node, source []byte) []rawParam {
	if paramsNode == nil {
		return nil
	}

	var params []rawParam
	keywordOnly := false

	for i := 0; i < int(paramsNode.NamedChildCount()); i++ {
		child := paramsNode.NamedChild(uint(i))

		switch child.Kind() {
		case "positional_separator":
			// Everything declared before "/" is positional-only.
			for j := range params {
				if params[j].kind == ParamPositionalOrKeyword {
					params[j].kind = ParamPositionalOnly
				}
			}
		case "keyword_separator":
			keywordOnly = true
		case "identifier":
			params = append(params, rawParam{
				name: nodeText(child, source),
				kind: namedKind(keywordOnly),
			})
		case "typed_parameter":
			param := rawParam{kind: namedKind(keywordOnly)}
			if child.NamedChildCount() > 0 {
				param.name = nodeText(child.NamedChild(0), source)
			}
			if typ := child.ChildByFieldName("type"); typ != nil {
				param.annotation = Value(nodeText(typ, source))
			}
			params = append(params, param)
		case "default_parameter", "typed_default_parameter":
			param := rawParam{kind: namedKind(keywordOnly)}
			if name := child.ChildByFieldName("name"); name != nil {
				param.name = nodeText(name, source)
			}
			if typ := child.ChildByFieldName("type"); typ != nil {
				param.annotation = Value(nodeText(typ, source))
			}
			if value := child.ChildByFieldName("value"); value != nil {
				param.def = Value(literalText(value, source))
			}
			params = append(params, param)
		case "list_splat_pattern":
			keywordOnly = true
			params = append(params, rawParam{
				name: splatName(child, source),
				kind: ParamVariadicPositional,
			})
		case "dictionary_splat_pattern":
			params = append(params, rawParam{
				name: splatName(child, source),
				kind: ParamVariadicKeyword,
			})
		}
	}

	return params
}

func namedKind(keywordOnly bool) string {
	if keywordOnly {
		return ParamKeywordOnly
	}
	return ParamPositionalOrKeyword
}

func splatName(node *sitter.Node, source []byte) string {
	if node.NamedChildCount() > 0 {
		return nodeText(node.NamedChild(0), source)
	}
	return ""
}

// parseExports finds a top-level __all__ assignment and returns its string
// elements in order.
func parseExports(root *sitter.Node, source []byte) []string {
	for i := 0; i < int(root.ChildCount()); i++ {
		stmt := root.Child(uint(i))
		if stmt.Kind() != "expression_statement" || stmt.NamedChildCount() == 0 {
			continue
		}
		assign := stmt.NamedChild(0)
		if assign.Kind() != "assignment" {
			continue
		}
		left := assign.ChildByFieldName("left")
		right := assign.ChildByFieldName("right")
		if left == nil || right == nil || nodeText(left, source) != "__all__" {
			continue
		}
		if right.Kind() != "list" && right.Kind() != "tuple" {
			return nil
		}

		var exports []string
		for j := 0; j < int(right.NamedChildCount()); j++ {
			element := right.NamedChild(uint(j))
			if element.Kind() == "string" {
				exports = append(exports, stringContent(element, source))
			}
		}
		return exports
	}
	return nil
}

// blockDocstring returns the raw docstring of a module, class or function
// body: the leading expression statement holding a string literal.
func blockDocstring(body *sitter.Node, source []byte) string {
	if body == nil {
		return ""
	}

	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(uint(i))
		if child.Kind() == "comment" {
			continue
		}
		if child.Kind() != "expression_statement" || child.NamedChildCount() == 0 {
			return ""
		}
		str := child.NamedChild(0)
		if str.Kind() != "string" {
			return ""
		}
		return stringContent(str, source)
	}
	return ""
}

// stringContent extracts the content of a string literal node without its
// quotes or prefix.
func stringContent(node *sitter.Node, source []byte) string {
	var parts []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == "string_content" {
			parts = append(parts, nodeText(child, source))
		}
	}
	return strings.Join(parts, "")
}

// literalText returns source text of an expression, with string literals
// kept in quoted form the way a signature default prints.
func literalText(node *sitter.Node, source []byte) string {
	if node.Kind() == "string" {
		return "'" + stringContent(node, source) + "'"
	}
	return nodeText(node, source)
}

// valueText returns an expression's value form: string literals lose their
// quotes, everything else keeps its source text.
func valueText(node *sitter.Node, source []byte) string {
	if node.Kind() == "string" {
		return stringContent(node, source)
	}
	return nodeText(node, source)
}

// nodeText extracts the text content of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}
