// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

// Type is a type expression node. The set of variants is closed; callers
// dispatch with an exhaustive type switch.
type Type interface {
	typeNode()
}

// ReferenceType is a named reference, optionally resolvable by id or origin package.
type ReferenceType struct {
	// ID is set when the target is declared in the documented project.
	ID *int
	// PackageName is set when the target comes from another package.
	PackageName   string
	Name          string
	TypeArguments []Type
}

// IntrinsicType is a built-in keyword type such as string or void.
type IntrinsicType struct {
	Name string
}

// LiteralType is a literal value type such as "on", 42 or null.
type LiteralType struct {
	Value string
}

// UnionType is A | B.
type UnionType struct {
	Types []Type
}

// IntersectionType is A & B.
type IntersectionType struct {
	Types []Type
}

// ArrayType is T[].
type ArrayType struct {
	Type Type
}

// TupleType is [A, B].
type TupleType struct {
	Types []Type
}

// NamedTupleMemberType is name?: T inside a tuple.
type NamedTupleMemberType struct {
	Name     string
	Optional bool
	Type     Type
}

// OptionalType is T? inside a tuple.
type OptionalType struct {
	Type Type
}

// RestType is ...T.
type RestType struct {
	Type Type
}

// ConditionalType is C extends E ? T : F.
type ConditionalType struct {
	CheckType   Type
	ExtendsType Type
	TrueType    Type
	FalseType   Type
}

// IndexedAccessType is O[I].
type IndexedAccessType struct {
	ObjectType Type
	IndexType  Type
}

// TypeOperatorType is keyof T, unique T or readonly T.
type TypeOperatorType struct {
	Operator string
	Type     Type
}

// QueryType is typeof X.
type QueryType struct {
	Query ReferenceType
}

// PredicateType is a type guard: asserts x is T.
type PredicateType struct {
	Asserts bool
	Name    string
	Type    Type
}

// InferredType is infer T inside a conditional type.
type InferredType struct {
	Type string
}

// MappedType is { [K in T as N]: V }.
type MappedType struct {
	ParameterName string
	ParameterType Type
	NameType      Type
	TemplateType  Type
	// ReadonlyModifier and OptionalModifier hold "+", "-" or "".
	ReadonlyModifier string
	OptionalModifier string
}

// TemplateLiteralSpan is one ${T}tail pair of a template literal.
type TemplateLiteralSpan struct {
	Type Type
	Text string
}

// TemplateLiteralType is `head${T}tail`.
type TemplateLiteralType struct {
	Head string
	Tail []TemplateLiteralSpan
}

// UnknownType is anything the upstream parser could not classify.
type UnknownType struct {
	Name string
}

func (*ReferenceType) typeNode() {}
func (*IntrinsicType) typeNode() {}
func (*LiteralType) typeNode() {}
func (*UnionType) typeNode() {}
func (*IntersectionType) typeNode() {}
func (*ArrayType) typeNode() {}
func (*TupleType) typeNode() {}
func (*NamedTupleMemberType) typeNode() {}
func (*OptionalType) typeNode() {}
func (*RestType) typeNode() {}
func (*ConditionalType) typeNode() {}
func (*IndexedAccessType) typeNode() {}
func (*TypeOperatorType) typeNode() {}
func (*QueryType) typeNode() {}
func (*PredicateType) typeNode() {}
func (*InferredType) typeNode() {}
func (*MappedType) typeNode() {}
func (*TemplateLiteralType) typeNode() {}
func (*UnknownType) typeNode() {}
