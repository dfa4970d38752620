// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

// Kind identifies one of the seven documented symbol kinds.
type Kind string

const (
	KindNamespace Kind = "namespace"
	KindClass     Kind = "class"
	KindFunction  Kind = "function"
	KindInterface Kind = "interface"
	KindTypeAlias Kind = "type-alias"
	KindEnum      Kind = "enum"
	KindVariable  Kind = "variable"
)

// Kinds returns all symbol kinds in render order.
func Kinds() []Kind {
	return []Kind{
		KindClass,
		KindVariable,
		KindEnum,
		KindFunction,
		KindInterface,
		KindNamespace,
		KindTypeAlias,
	}
}

// Label returns the human readable category label for the kind.
func (k Kind) Label() string {
	switch k {
	case KindNamespace:
		return "Namespaces"
	case KindClass:
		return "Classes"
	case KindFunction:
		return "Functions"
	case KindInterface:
		return "Interfaces"
	case KindTypeAlias:
		return "Type Aliases"
	case KindEnum:
		return "Enums"
	case KindVariable:
		return "Variables"
	default:
		return string(k)
	}
}

// Accessibility is the visibility of a class or interface member.
type Accessibility string

const (
	AccessibilityPublic    Accessibility = "public"
	AccessibilityProtected Accessibility = "protected"
	AccessibilityPrivate   Accessibility = "private"
)

// Comment is the parsed doc comment attached to a symbol, member or signature.
type Comment struct {
	// Description is nil when the source had no description at all.
	Description *string
	See         []string
	// Example holds one entry per example tag; each entry may span several blocks.
	Example [][]ExampleBlock
}

// ExampleBlock is one part of an example tag: a code string, or prose written
// between fenced code blocks.
type ExampleBlock struct {
	Text string
	// Language overrides the default code language of a code block.
	Language string
	Prose    bool
}

// CodeExample builds one example entry from plain code strings.
func CodeExample(code ...string) []ExampleBlock {
	out := make([]ExampleBlock, 0, len(code))
	for _, text := range code {
		out = append(out, ExampleBlock{Text: text})
	}

	return out
}

// Symbol is one documented API entity. The set of implementations is closed.
type Symbol interface {
	ID() int
	Name() string
	Kind() Kind
	IsExternal() bool
	Comment() Comment

	symbol()
}

// SymbolBase holds the attributes shared by every symbol kind.
type SymbolBase struct {
	SymbolID      int
	SymbolName    string
	External      bool
	SymbolComment Comment
}

// ID implements Symbol.
func (b SymbolBase) ID() int { return b.SymbolID }

// Name implements Symbol.
func (b SymbolBase) Name() string { return b.SymbolName }

// IsExternal implements Symbol.
func (b SymbolBase) IsExternal() bool { return b.External }

// Comment implements Symbol.
func (b SymbolBase) Comment() Comment { return b.SymbolComment }

func (SymbolBase) symbol() {}

// TypeParameter is a generic parameter declared by a class, alias or signature.
type TypeParameter struct {
	Name       string
	Constraint Type
	Default    Type
}

// Parameter is one parameter of a constructor or call signature.
type Parameter struct {
	Name     string
	Comment  Comment
	Optional bool
	Rest     bool
	Type     Type
}

// Signature is one call signature; overloaded methods carry several.
type Signature struct {
	Name           string
	Comment        Comment
	TypeParameters []TypeParameter
	Parameters     []Parameter
	ReturnType     Type
}

// Constructor is the construct signature of a class.
type Constructor struct {
	Parameters []Parameter
}

// Property is a class or interface property member.
type Property struct {
	ID            int
	Name          string
	Comment       Comment
	Accessibility Accessibility
	Static        bool
	Readonly      bool
	Optional      bool
	Type          Type
}

// Method is a class or interface method member.
type Method struct {
	ID            int
	Name          string
	Accessibility Accessibility
	Static        bool
	Signatures    []Signature
}

// Class is a documented class declaration.
type Class struct {
	SymbolBase
	ExtendsType    Type
	ImplementsType []Type
	Construct      Constructor
	Properties     []Property
	Methods        []Method
	TypeParameters []TypeParameter
}

// Kind implements Symbol.
func (*Class) Kind() Kind { return KindClass }

// Interface is a documented interface declaration.
type Interface struct {
	SymbolBase
	Properties     []Property
	Methods        []Method
	TypeParameters []TypeParameter
}

// Kind implements Symbol.
func (*Interface) Kind() Kind { return KindInterface }

// EnumMember is one enum member with its raw literal value.
type EnumMember struct {
	ID      int
	Name    string
	Value   string
	Comment Comment
}

// Enum is a documented enum declaration.
type Enum struct {
	SymbolBase
	Members []EnumMember
}

// Kind implements Symbol.
func (*Enum) Kind() Kind { return KindEnum }

// TypeAlias is a documented type alias declaration.
type TypeAlias struct {
	SymbolBase
	Type           Type
	TypeParameters []TypeParameter
}

// Kind implements Symbol.
func (*TypeAlias) Kind() Kind { return KindTypeAlias }

// Variable is a documented top-level variable or constant.
type Variable struct {
	SymbolBase
	Type  Type
	Value string
}

// Kind implements Symbol.
func (*Variable) Kind() Kind { return KindVariable }

// Namespace is a documented namespace declaration. Nested declarations are
// known to reference lookup but get no documents of their own.
type Namespace struct {
	SymbolBase

	Classes     []*Class
	Interfaces  []*Interface
	Enums       []*Enum
	TypeAliases []*TypeAlias
	Variables   []*Variable
	Namespaces  []*Namespace
	Functions   []*Function
}

// Kind implements Symbol.
func (*Namespace) Kind() Kind { return KindNamespace }

// Function is a documented top-level function.
type Function struct {
	SymbolBase
	Signatures []Signature
}

// Kind implements Symbol.
func (*Function) Kind() Kind { return KindFunction }

// Project is the root container of one documented package version.
// Collection order is render order. A project must not be mutated after
// Index has been called.
type Project struct {
	Name    string
	Version string

	Classes     []*Class
	Interfaces  []*Interface
	Enums       []*Enum
	TypeAliases []*TypeAlias
	Variables   []*Variable
	Namespaces  []*Namespace
	Functions   []*Function

	byID   map[int]Symbol
	nested map[int]struct{}
}

// Index builds the id lookup tables. Later symbols win on duplicate ids.
// Member and namespace-nested ids go to a separate table; see HasNested.
func (p *Project) Index() *Project {
	p.byID = make(map[int]Symbol)
	p.nested = make(map[int]struct{})
	for _, kind := range Kinds() {
		for _, symbol := range p.Symbols(kind) {
			p.byID[symbol.ID()] = symbol
			walkNested(symbol, func(id int) {
				p.nested[id] = struct{}{}
			})
		}
	}

	return p
}

// HasNested reports whether id belongs to a member (property, method, enum
// member) or to a declaration nested in a namespace.
func (p *Project) HasNested(id int) bool {
	if p == nil {
		return false
	}

	if p.nested != nil {
		_, ok := p.nested[id]
		return ok
	}

	found := false
	for _, kind := range Kinds() {
		for _, symbol := range p.Symbols(kind) {
			walkNested(symbol, func(nestedID int) {
				found = found || nestedID == id
			})
		}
	}

	return found
}

// FindByID returns the symbol with the given id.
// Projects that were never indexed fall back to a linear scan.
func (p *Project) FindByID(id int) (Symbol, bool) {
	if p == nil {
		return nil, false
	}

	if p.byID != nil {
		symbol, ok := p.byID[id]
		return symbol, ok
	}

	var found Symbol
	for _, kind := range Kinds() {
		for _, symbol := range p.Symbols(kind) {
			if symbol.ID() == id {
				found = symbol
			}
		}
	}

	return found, found != nil
}

// Symbols returns the ordered collection of one kind as Symbol values.
func (p *Project) Symbols(kind Kind) []Symbol {
	switch kind {
	case KindClass:
		return asSymbols(p.Classes)
	case KindInterface:
		return asSymbols(p.Interfaces)
	case KindEnum:
		return asSymbols(p.Enums)
	case KindTypeAlias:
		return asSymbols(p.TypeAliases)
	case KindVariable:
		return asSymbols(p.Variables)
	case KindNamespace:
		return asSymbols(p.Namespaces)
	case KindFunction:
		return asSymbols(p.Functions)
	default:
		return nil
	}
}

// Symbols returns the nested declarations of one kind as Symbol values.
func (n *Namespace) Symbols(kind Kind) []Symbol {
	switch kind {
	case KindClass:
		return asSymbols(n.Classes)
	case KindInterface:
		return asSymbols(n.Interfaces)
	case KindEnum:
		return asSymbols(n.Enums)
	case KindTypeAlias:
		return asSymbols(n.TypeAliases)
	case KindVariable:
		return asSymbols(n.Variables)
	case KindNamespace:
		return asSymbols(n.Namespaces)
	case KindFunction:
		return asSymbols(n.Functions)
	default:
		return nil
	}
}

// walkNested calls visit with every member id of symbol and, for namespaces,
// with the ids of nested declarations and their members, recursively.
// Zero ids are skipped: they mark members built without one.
func walkNested(symbol Symbol, visit func(id int)) {
	emit := func(id int) {
		if id != 0 {
			visit(id)
		}
	}

	switch typed := symbol.(type) {
	case *Class:
		for _, property := range typed.Properties {
			emit(property.ID)
		}

		for _, method := range typed.Methods {
			emit(method.ID)
		}
	case *Interface:
		for _, property := range typed.Properties {
			emit(property.ID)
		}

		for _, method := range typed.Methods {
			emit(method.ID)
		}
	case *Enum:
		for _, member := range typed.Members {
			emit(member.ID)
		}
	case *Namespace:
		for _, kind := range Kinds() {
			for _, nested := range typed.Symbols(kind) {
				emit(nested.ID())
				walkNested(nested, visit)
			}
		}
	}
}

// asSymbols widens a typed symbol slice to []Symbol preserving order.
func asSymbols[T Symbol](values []T) []Symbol {
	if len(values) == 0 {
		return nil
	}

	out := make([]Symbol, 0, len(values))
	for _, value := range values {
		out = append(out, value)
	}

	return out
}
