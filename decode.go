// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// projectJSON is the typedoc-json-parser project payload.
type projectJSON struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	declarationsJSON
}

// declarationsJSON holds the declaration collections of a project or namespace.
type declarationsJSON struct {
	Classes     []classJSON     `json:"classes"`
	Interfaces  []interfaceJSON `json:"interfaces"`
	Enums       []enumJSON      `json:"enums"`
	TypeAliases []typeAliasJSON `json:"typeAliases"`
	Variables   []variableJSON  `json:"variables"`
	Namespaces  []namespaceJSON `json:"namespaces"`
	Functions   []functionJSON  `json:"functions"`
}

type namespaceJSON struct {
	symbolJSON
	declarationsJSON
}

type symbolJSON struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	External bool        `json:"external"`
	Comment  commentJSON `json:"comment"`
}

type commentJSON struct {
	Description *string        `json:"description"`
	BlockTags   []blockTagJSON `json:"blockTags"`
	See         []string       `json:"see"`
	Example     [][]string     `json:"example"`
}

type blockTagJSON struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type typeParameterJSON struct {
	Name       string          `json:"name"`
	Constraint json.RawMessage `json:"type"`
	Default    json.RawMessage `json:"default"`
}

type parameterJSON struct {
	Name     string          `json:"name"`
	Comment  commentJSON     `json:"comment"`
	Optional bool            `json:"optional"`
	Rest     bool            `json:"rest"`
	Type     json.RawMessage `json:"type"`
}

type signatureJSON struct {
	Name           string              `json:"name"`
	Comment        commentJSON         `json:"comment"`
	TypeParameters []typeParameterJSON `json:"typeParameters"`
	Parameters     []parameterJSON     `json:"parameters"`
	ReturnType     json.RawMessage     `json:"returnType"`
}

type propertyJSON struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Comment       commentJSON     `json:"comment"`
	Accessibility Accessibility   `json:"accessibility"`
	Static        bool            `json:"static"`
	Readonly      bool            `json:"readonly"`
	Optional      bool            `json:"optional"`
	Type          json.RawMessage `json:"type"`
}

type methodJSON struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Accessibility Accessibility   `json:"accessibility"`
	Static        bool            `json:"static"`
	Signatures    []signatureJSON `json:"signatures"`
}

type classJSON struct {
	symbolJSON
	ExtendsType    json.RawMessage     `json:"extendsType"`
	ImplementsType []json.RawMessage   `json:"implementsType"`
	Construct      *signatureJSON      `json:"construct"`
	Properties     []propertyJSON      `json:"properties"`
	Methods        []methodJSON        `json:"methods"`
	TypeParameters []typeParameterJSON `json:"typeParameters"`
}

type interfaceJSON struct {
	symbolJSON
	Properties     []propertyJSON      `json:"properties"`
	Methods        []methodJSON        `json:"methods"`
	TypeParameters []typeParameterJSON `json:"typeParameters"`
}

type enumMemberJSON struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Value   json.RawMessage `json:"value"`
	Comment commentJSON     `json:"comment"`
}

type enumJSON struct {
	symbolJSON
	Members []enumMemberJSON `json:"members"`
}

type typeAliasJSON struct {
	symbolJSON
	Type           json.RawMessage     `json:"type"`
	TypeParameters []typeParameterJSON `json:"typeParameters"`
}

type variableJSON struct {
	symbolJSON
	Type  json.RawMessage `json:"type"`
	Value string          `json:"value"`
}

type functionJSON struct {
	symbolJSON
	Signatures []signatureJSON `json:"signatures"`
}

// typeJSON is the union of every type expression field, tagged by kind.
type typeJSON struct {
	Kind          string            `json:"kind"`
	ID            *int              `json:"id"`
	Name          string            `json:"name"`
	PackageName   *string           `json:"packageName"`
	TypeArguments []json.RawMessage `json:"typeArguments"`
	Type          json.RawMessage   `json:"type"`
	Types         []json.RawMessage `json:"types"`
	Value         json.RawMessage   `json:"value"`
	CheckType     json.RawMessage   `json:"checkType"`
	ExtendsType   json.RawMessage   `json:"extendsType"`
	TrueType      json.RawMessage   `json:"trueType"`
	FalseType     json.RawMessage   `json:"falseType"`
	ObjectType    json.RawMessage   `json:"objectType"`
	IndexType     json.RawMessage   `json:"indexType"`
	Operator      string            `json:"operator"`
	Query         json.RawMessage   `json:"query"`
	Asserts       bool              `json:"asserts"`
	Optional      json.RawMessage   `json:"optional"`
	Readonly      json.RawMessage   `json:"readonly"`
	Parameter     string            `json:"parameter"`
	ParameterType json.RawMessage   `json:"parameterType"`
	NameType      json.RawMessage   `json:"nameType"`
	TemplateType  json.RawMessage   `json:"templateType"`
	Head          string            `json:"head"`
	Tail          []struct {
		Type json.RawMessage `json:"type"`
		Text string          `json:"text"`
	} `json:"tail"`
}

// DecodeProjectFile reads and decodes one project JSON file.
func DecodeProjectFile(path string) (*Project, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrMissingSource
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadProjectFile, err)
	}

	return DecodeProject(data)
}

// DecodeProject decodes a typedoc-json-parser project payload and indexes it.
// Unknown type expression kinds decode to UnknownType.
func DecodeProject(data []byte) (*Project, error) {
	var raw projectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeProject, err)
	}

	project, err := raw.project()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeProject, err)
	}

	return project.Index(), nil
}

// project converts the payload into the model keeping collection order.
func (p projectJSON) project() (*Project, error) {
	decls, err := p.decode()
	if err != nil {
		return nil, err
	}

	return &Project{
		Name:        p.Name,
		Version:     p.Version,
		Classes:     decls.classes,
		Interfaces:  decls.interfaces,
		Enums:       decls.enums,
		TypeAliases: decls.typeAliases,
		Variables:   decls.variables,
		Namespaces:  decls.namespaces,
		Functions:   decls.functions,
	}, nil
}

// declarations is the decoded form of declarationsJSON.
type declarations struct {
	classes     []*Class
	interfaces  []*Interface
	enums       []*Enum
	typeAliases []*TypeAlias
	variables   []*Variable
	namespaces  []*Namespace
	functions   []*Function
}

// decode converts every collection keeping order; namespaces recurse.
func (p declarationsJSON) decode() (declarations, error) {
	var out declarations

	for _, raw := range p.Classes {
		class, err := raw.class()
		if err != nil {
			return declarations{}, fmt.Errorf("class %q: %w", raw.Name, err)
		}

		out.classes = append(out.classes, class)
	}

	for _, raw := range p.Interfaces {
		properties, err := decodeProperties(raw.Properties)
		if err != nil {
			return declarations{}, fmt.Errorf("interface %q: %w", raw.Name, err)
		}

		methods, err := decodeMethods(raw.Methods)
		if err != nil {
			return declarations{}, fmt.Errorf("interface %q: %w", raw.Name, err)
		}

		typeParameters, err := decodeTypeParameters(raw.TypeParameters)
		if err != nil {
			return declarations{}, fmt.Errorf("interface %q: %w", raw.Name, err)
		}

		out.interfaces = append(out.interfaces, &Interface{
			SymbolBase:     raw.base(),
			Properties:     properties,
			Methods:        methods,
			TypeParameters: typeParameters,
		})
	}

	for _, raw := range p.Enums {
		enum := &Enum{SymbolBase: raw.base()}
		for _, member := range raw.Members {
			enum.Members = append(enum.Members, EnumMember{
				ID:      member.ID,
				Name:    member.Name,
				Value:   rawScalar(member.Value),
				Comment: member.Comment.comment(),
			})
		}

		out.enums = append(out.enums, enum)
	}

	for _, raw := range p.TypeAliases {
		t, err := decodeType(raw.Type)
		if err != nil {
			return declarations{}, fmt.Errorf("type alias %q: %w", raw.Name, err)
		}

		typeParameters, err := decodeTypeParameters(raw.TypeParameters)
		if err != nil {
			return declarations{}, fmt.Errorf("type alias %q: %w", raw.Name, err)
		}

		out.typeAliases = append(out.typeAliases, &TypeAlias{
			SymbolBase:     raw.base(),
			Type:           t,
			TypeParameters: typeParameters,
		})
	}

	for _, raw := range p.Variables {
		t, err := decodeType(raw.Type)
		if err != nil {
			return declarations{}, fmt.Errorf("variable %q: %w", raw.Name, err)
		}

		out.variables = append(out.variables, &Variable{
			SymbolBase: raw.base(),
			Type:       t,
			Value:      raw.Value,
		})
	}

	for _, raw := range p.Namespaces {
		nested, err := raw.decode()
		if err != nil {
			return declarations{}, fmt.Errorf("namespace %q: %w", raw.Name, err)
		}

		out.namespaces = append(out.namespaces, &Namespace{
			SymbolBase:  raw.base(),
			Classes:     nested.classes,
			Interfaces:  nested.interfaces,
			Enums:       nested.enums,
			TypeAliases: nested.typeAliases,
			Variables:   nested.variables,
			Namespaces:  nested.namespaces,
			Functions:   nested.functions,
		})
	}

	for _, raw := range p.Functions {
		signatures, err := decodeSignatures(raw.Signatures)
		if err != nil {
			return declarations{}, fmt.Errorf("function %q: %w", raw.Name, err)
		}

		out.functions = append(out.functions, &Function{
			SymbolBase: raw.base(),
			Signatures: signatures,
		})
	}

	return out, nil
}

func (s symbolJSON) base() SymbolBase {
	return SymbolBase{
		SymbolID:      s.ID,
		SymbolName:    s.Name,
		External:      s.External,
		SymbolComment: s.Comment.comment(),
	}
}

// comment merges explicit see/example lists with the matching block tags.
func (c commentJSON) comment() Comment {
	out := Comment{
		Description: c.Description,
		See:         append([]string(nil), c.See...),
	}

	for _, example := range c.Example {
		blocks := make([]ExampleBlock, 0, len(example))
		for _, text := range example {
			blocks = append(blocks, exampleBlocks(text)...)
		}

		out.Example = append(out.Example, blocks)
	}

	for _, tag := range c.BlockTags {
		switch strings.TrimPrefix(tag.Name, "@") {
		case "see":
			out.See = append(out.See, strings.TrimSpace(tag.Text))
		case "example":
			out.Example = append(out.Example, exampleBlocks(tag.Text))
		}
	}

	return out
}

// exampleBlocks splits example tag text into fenced code blocks and the prose
// around them, in order. Text without any fence is one code block.
// An unclosed fence runs to the end of the text.
func exampleBlocks(text string) []ExampleBlock {
	var (
		out      []ExampleBlock
		fence    fenceTracker
		prose    []string
		code     []string
		language string
		fenced   bool
	)

	flushProse := func() {
		if body := strings.TrimSpace(strings.Join(prose, "\n")); body != "" {
			out = append(out, ExampleBlock{Text: body, Prose: true})
		}

		prose = prose[:0]
	}

	for _, line := range strings.Split(normalizeLineEndings(text), "\n") {
		trimmed := strings.TrimSpace(line)
		wasOpen := fence.open()
		delimiter := fence.delimits(trimmed)

		switch {
		case delimiter && !wasOpen:
			flushProse()
			fenced = true
			code = code[:0]
			language = fenceLanguage(trimmed)
		case delimiter:
			out = append(out, ExampleBlock{Text: strings.Join(code, "\n"), Language: language})
		case wasOpen:
			code = append(code, line)
		default:
			prose = append(prose, line)
		}
	}

	if !fenced {
		return []ExampleBlock{{Text: strings.TrimSpace(text)}}
	}

	if fence.open() {
		out = append(out, ExampleBlock{Text: strings.Join(code, "\n"), Language: language})
	}

	flushProse()
	return out
}

// fenceLanguage returns the first word of a fence info string.
func fenceLanguage(trimmed string) string {
	_, _, info := fenceRun(trimmed)
	if fields := strings.Fields(info); len(fields) > 0 {
		return fields[0]
	}

	return ""
}

func (c classJSON) class() (*Class, error) {
	extends, err := decodeType(c.ExtendsType)
	if err != nil {
		return nil, err
	}

	implements, err := decodeTypes(c.ImplementsType)
	if err != nil {
		return nil, err
	}

	var construct Constructor
	if c.Construct != nil {
		construct.Parameters, err = decodeParameters(c.Construct.Parameters)
		if err != nil {
			return nil, err
		}
	}

	properties, err := decodeProperties(c.Properties)
	if err != nil {
		return nil, err
	}

	methods, err := decodeMethods(c.Methods)
	if err != nil {
		return nil, err
	}

	typeParameters, err := decodeTypeParameters(c.TypeParameters)
	if err != nil {
		return nil, err
	}

	return &Class{
		SymbolBase:     c.base(),
		ExtendsType:    extends,
		ImplementsType: implements,
		Construct:      construct,
		Properties:     properties,
		Methods:        methods,
		TypeParameters: typeParameters,
	}, nil
}

func decodeProperties(raw []propertyJSON) ([]Property, error) {
	out := make([]Property, 0, len(raw))
	for _, property := range raw {
		t, err := decodeType(property.Type)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", property.Name, err)
		}

		out = append(out, Property{
			ID:            property.ID,
			Name:          property.Name,
			Comment:       property.Comment.comment(),
			Accessibility: property.Accessibility,
			Static:        property.Static,
			Readonly:      property.Readonly,
			Optional:      property.Optional,
			Type:          t,
		})
	}

	return out, nil
}

func decodeMethods(raw []methodJSON) ([]Method, error) {
	out := make([]Method, 0, len(raw))
	for _, method := range raw {
		signatures, err := decodeSignatures(method.Signatures)
		if err != nil {
			return nil, fmt.Errorf("method %q: %w", method.Name, err)
		}

		out = append(out, Method{
			ID:            method.ID,
			Name:          method.Name,
			Accessibility: method.Accessibility,
			Static:        method.Static,
			Signatures:    signatures,
		})
	}

	return out, nil
}

func decodeSignatures(raw []signatureJSON) ([]Signature, error) {
	out := make([]Signature, 0, len(raw))
	for _, signature := range raw {
		typeParameters, err := decodeTypeParameters(signature.TypeParameters)
		if err != nil {
			return nil, err
		}

		parameters, err := decodeParameters(signature.Parameters)
		if err != nil {
			return nil, err
		}

		returnType, err := decodeType(signature.ReturnType)
		if err != nil {
			return nil, err
		}

		out = append(out, Signature{
			Name:           signature.Name,
			Comment:        signature.Comment.comment(),
			TypeParameters: typeParameters,
			Parameters:     parameters,
			ReturnType:     returnType,
		})
	}

	return out, nil
}

func decodeParameters(raw []parameterJSON) ([]Parameter, error) {
	out := make([]Parameter, 0, len(raw))
	for _, parameter := range raw {
		t, err := decodeType(parameter.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", parameter.Name, err)
		}

		out = append(out, Parameter{
			Name:     parameter.Name,
			Comment:  parameter.Comment.comment(),
			Optional: parameter.Optional,
			Rest:     parameter.Rest,
			Type:     t,
		})
	}

	return out, nil
}

func decodeTypeParameters(raw []typeParameterJSON) ([]TypeParameter, error) {
	out := make([]TypeParameter, 0, len(raw))
	for _, parameter := range raw {
		constraint, err := decodeType(parameter.Constraint)
		if err != nil {
			return nil, fmt.Errorf("type parameter %q: %w", parameter.Name, err)
		}

		def, err := decodeType(parameter.Default)
		if err != nil {
			return nil, fmt.Errorf("type parameter %q: %w", parameter.Name, err)
		}

		out = append(out, TypeParameter{Name: parameter.Name, Constraint: constraint, Default: def})
	}

	return out, nil
}

func decodeTypes(raw []json.RawMessage) ([]Type, error) {
	out := make([]Type, 0, len(raw))
	for _, item := range raw {
		t, err := decodeType(item)
		if err != nil {
			return nil, err
		}

		if t != nil {
			out = append(out, t)
		}
	}

	return out, nil
}

// decodeType decodes one kind-tagged type expression; absent or null input yields nil.
func decodeType(raw json.RawMessage) (Type, error) {
	if isNullJSON(raw) {
		return nil, nil
	}

	var node typeJSON
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("type expression: %w", err)
	}

	switch node.Kind {
	case "reference":
		return node.reference()
	case "intrinsic":
		return &IntrinsicType{Name: rawScalar(node.Type)}, nil
	case "literal":
		return &LiteralType{Value: rawScalar(node.Value)}, nil
	case "union":
		types, err := decodeTypes(node.Types)
		return &UnionType{Types: types}, err
	case "intersection":
		types, err := decodeTypes(node.Types)
		return &IntersectionType{Types: types}, err
	case "array":
		element, err := decodeType(node.Type)
		return &ArrayType{Type: element}, err
	case "tuple":
		types, err := decodeTypes(node.Types)
		return &TupleType{Types: types}, err
	case "namedTupleMember":
		element, err := decodeType(node.Type)
		return &NamedTupleMemberType{Name: node.Name, Optional: rawScalar(node.Optional) == "true", Type: element}, err
	case "optional":
		element, err := decodeType(node.Type)
		return &OptionalType{Type: element}, err
	case "rest":
		element, err := decodeType(node.Type)
		return &RestType{Type: element}, err
	case "conditional":
		return node.conditional()
	case "indexedAccess":
		object, err := decodeType(node.ObjectType)
		if err != nil {
			return nil, err
		}

		index, err := decodeType(node.IndexType)
		return &IndexedAccessType{ObjectType: object, IndexType: index}, err
	case "typeOperator":
		element, err := decodeType(node.Type)
		return &TypeOperatorType{Operator: node.Operator, Type: element}, err
	case "query":
		query, err := decodeType(node.Query)
		if err != nil {
			return nil, err
		}

		ref, ok := query.(*ReferenceType)
		if !ok {
			return &UnknownType{Name: "typeof"}, nil
		}

		return &QueryType{Query: *ref}, nil
	case "predicate":
		element, err := decodeType(node.Type)
		return &PredicateType{Asserts: node.Asserts, Name: node.Name, Type: element}, err
	case "inferred":
		return &InferredType{Type: rawScalar(node.Type)}, nil
	case "mapped":
		return node.mapped()
	case "templateLiteral":
		return node.templateLiteral()
	default:
		name := node.Name
		if name == "" {
			name = node.Kind
		}

		return &UnknownType{Name: name}, nil
	}
}

func (n typeJSON) reference() (Type, error) {
	args, err := decodeTypes(n.TypeArguments)
	if err != nil {
		return nil, err
	}

	ref := &ReferenceType{ID: n.ID, Name: n.Name, TypeArguments: args}
	if n.PackageName != nil {
		ref.PackageName = *n.PackageName
	}

	return ref, nil
}

func (n typeJSON) conditional() (Type, error) {
	parts := make([]Type, 0, 4)
	for _, raw := range []json.RawMessage{n.CheckType, n.ExtendsType, n.TrueType, n.FalseType} {
		t, err := decodeType(raw)
		if err != nil {
			return nil, err
		}

		parts = append(parts, t)
	}

	return &ConditionalType{
		CheckType:   parts[0],
		ExtendsType: parts[1],
		TrueType:    parts[2],
		FalseType:   parts[3],
	}, nil
}

func (n typeJSON) mapped() (Type, error) {
	parameterType, err := decodeType(n.ParameterType)
	if err != nil {
		return nil, err
	}

	nameType, err := decodeType(n.NameType)
	if err != nil {
		return nil, err
	}

	templateType, err := decodeType(n.TemplateType)
	if err != nil {
		return nil, err
	}

	return &MappedType{
		ParameterName:    n.Parameter,
		ParameterType:    parameterType,
		NameType:         nameType,
		TemplateType:     templateType,
		ReadonlyModifier: rawScalar(n.Readonly),
		OptionalModifier: rawScalar(n.Optional),
	}, nil
}

func (n typeJSON) templateLiteral() (Type, error) {
	out := &TemplateLiteralType{Head: n.Head}
	for _, span := range n.Tail {
		t, err := decodeType(span.Type)
		if err != nil {
			return nil, err
		}

		out.Tail = append(out.Tail, TemplateLiteralSpan{Type: t, Text: span.Text})
	}

	return out, nil
}

// rawScalar returns a JSON string without quotes, any other scalar as its literal text,
// and empty string for null or absent values.
func rawScalar(raw json.RawMessage) string {
	if isNullJSON(raw) {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	return string(bytes.TrimSpace(raw))
}

func isNullJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
