// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import (
	"math"
	"strconv"
	"strings"
)

// documentView is the part of every view model shared by all kinds.
type documentView struct {
	FrontMatter string
	Name        string
	Comment     commentView
}

// classView is the template model of a class document.
type classView struct {
	documentView
	Extends        string
	Implements     string
	TypeParameters string
	Constructor    constructorView
	Properties     []propertyView
	Methods        []signatureView
}

// interfaceView is the template model of an interface document.
type interfaceView struct {
	documentView
	TypeParameters string
	Properties     []propertyView
	Methods        []signatureView
}

// enumView is the template model of an enum document.
type enumView struct {
	documentView
	Members []enumMemberView
}

// functionView is the template model of a function document.
type functionView struct {
	documentView
	Signatures []signatureView
}

// typeAliasView is the template model of a type alias document.
type typeAliasView struct {
	documentView
	TypeParameters string
	Type           string
}

// variableView is the template model of a variable document.
type variableView struct {
	documentView
	Type  string
	Value string
}

// namespaceView is the template model of a namespace document.
type namespaceView struct {
	documentView
}

// constructorView renders the class construct call and its parameter table.
type constructorView struct {
	Code       string
	Parameters string
}

// propertyView is one property subsection.
type propertyView struct {
	Heading string
	Comment commentView
}

// signatureView is one call signature subsection; overloads get one each.
type signatureView struct {
	Level          int
	SubLevel       int
	Title          string
	Comment        commentView
	TypeParameters string
	Parameters     string
}

// enumMemberView is one enum member subsection.
type enumMemberView struct {
	Heading string
	Comment commentView
}

// viewBuilder turns symbols into template view models for one render pass.
type viewBuilder struct {
	resolver *Resolver
	style    textStyle
}

// comment formats a comment whose examples heading sits at level.
func (b *viewBuilder) comment(c Comment, level int) commentView {
	view := formatComment(c, b.style)
	view.Level = level
	return view
}

// document builds the shared part of every view.
func (b *viewBuilder) document(symbol Symbol, position int) (documentView, error) {
	frontMatter, err := documentFrontMatter(Slug(symbol.Name()), symbol.Name(), position)
	if err != nil {
		return documentView{}, err
	}

	return documentView{
		FrontMatter: frontMatter,
		Name:        symbol.Name(),
		Comment:     b.comment(symbol.Comment(), 2),
	}, nil
}

// view builds the kind-specific template model of one symbol.
func (b *viewBuilder) view(symbol Symbol, position int) (any, error) {
	doc, err := b.document(symbol, position)
	if err != nil {
		return nil, err
	}

	switch typed := symbol.(type) {
	case *Class:
		return b.classView(doc, typed), nil
	case *Interface:
		return interfaceView{
			documentView:   doc,
			TypeParameters: b.typeParameters(typed.TypeParameters),
			Properties:     b.properties(typed.Properties),
			Methods:        b.methods(typed.Methods),
		}, nil
	case *Enum:
		return enumView{documentView: doc, Members: b.enumMembers(typed.Members)}, nil
	case *Function:
		return functionView{documentView: doc, Signatures: b.signatures(typed.Signatures, "", 2)}, nil
	case *TypeAlias:
		return typeAliasView{
			documentView:   doc,
			TypeParameters: b.typeParameters(typed.TypeParameters),
			Type:           b.resolver.Resolve(typed.Type),
		}, nil
	case *Variable:
		return variableView{
			documentView: doc,
			Type:         b.resolver.Resolve(typed.Type),
			Value:        fenceCode(typed.Value, b.style.codeLanguage),
		}, nil
	case *Namespace:
		return namespaceView{documentView: doc}, nil
	default:
		return doc, nil
	}
}

// classView builds the class model; the constructor section is always present.
func (b *viewBuilder) classView(doc documentView, class *Class) classView {
	implements := make([]string, 0, len(class.ImplementsType))
	for _, t := range class.ImplementsType {
		implements = append(implements, b.resolver.Resolve(t))
	}

	return classView{
		documentView:   doc,
		Extends:        b.resolver.Resolve(class.ExtendsType),
		Implements:     strings.Join(implements, ", "),
		TypeParameters: b.typeParameters(class.TypeParameters),
		Constructor: constructorView{
			Code:       fenceCode("new "+class.Name()+"("+parameterNames(class.Construct.Parameters)+")", b.style.codeLanguage),
			Parameters: b.parameters(class.Construct.Parameters),
		},
		Properties: b.properties(class.Properties),
		Methods:    b.methods(class.Methods),
	}
}

// properties builds property subsections with access markers.
func (b *viewBuilder) properties(properties []Property) []propertyView {
	out := make([]propertyView, 0, len(properties))
	for _, property := range properties {
		heading := memberMarkers(property.Accessibility, property.Static, property.Readonly) + property.Name
		if property.Type != nil {
			if property.Optional {
				heading += "?"
			}

			heading += ": " + b.resolver.Resolve(property.Type)
		}

		out = append(out, propertyView{
			Heading: heading,
			Comment: b.comment(property.Comment, 4),
		})
	}

	return out
}

// methods flattens every overload of every method into its own subsection.
func (b *viewBuilder) methods(methods []Method) []signatureView {
	out := make([]signatureView, 0, len(methods))
	for _, method := range methods {
		markers := memberMarkers(method.Accessibility, method.Static, false)
		out = append(out, b.signatures(method.Signatures, markers, 3)...)
	}

	return out
}

// signatures builds one subsection per signature at the given heading level.
func (b *viewBuilder) signatures(signatures []Signature, markers string, level int) []signatureView {
	out := make([]signatureView, 0, len(signatures))
	for _, signature := range signatures {
		title := markers + signature.Name + typeParameterNames(signature.TypeParameters) +
			"(" + parameterNames(signature.Parameters) + ")"
		if signature.ReturnType != nil {
			title += ": " + b.resolver.Resolve(signature.ReturnType)
		}

		out = append(out, signatureView{
			Level:          level,
			SubLevel:       level + 1,
			Title:          title,
			Comment:        b.comment(signature.Comment, level+1),
			TypeParameters: b.typeParameters(signature.TypeParameters),
			Parameters:     b.parameters(signature.Parameters),
		})
	}

	return out
}

// enumMembers builds member subsections with literal values.
func (b *viewBuilder) enumMembers(members []EnumMember) []enumMemberView {
	out := make([]enumMemberView, 0, len(members))
	for _, member := range members {
		out = append(out, enumMemberView{
			Heading: member.Name + " = " + enumValue(member.Value),
			Comment: b.comment(member.Comment, 4),
		})
	}

	return out
}

// typeParameters renders a type parameter table, or empty string when there are none.
func (b *viewBuilder) typeParameters(params []TypeParameter) string {
	if len(params) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(params))
	for _, param := range params {
		rows = append(rows, []string{
			inlineCode(param.Name),
			b.resolver.Resolve(param.Constraint),
			b.resolver.Resolve(param.Default),
		})
	}

	return markdownTable([]string{"Name", "Constraint", "Default"}, rows)
}

// parameters renders a parameter table, or empty string when there are none.
func (b *viewBuilder) parameters(params []Parameter) string {
	if len(params) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(params))
	for _, param := range params {
		description := ""
		if param.Comment.Description != nil {
			description = sanitizeText(*param.Comment.Description)
		}

		rows = append(rows, []string{
			inlineCode(parameterName(param)),
			b.resolver.Resolve(param.Type),
			yesNo(param.Optional),
			description,
		})
	}

	return markdownTable([]string{"Name", "Type", "Optional", "Description"}, rows)
}

// memberMarkers renders access markers in fixed order: accessibility, static, readonly.
func memberMarkers(accessibility Accessibility, static, readonly bool) string {
	var out strings.Builder
	switch accessibility {
	case AccessibilityProtected:
		out.WriteString("`PROTECTED` ")
	case AccessibilityPrivate:
		out.WriteString("`PRIVATE` ")
	}

	if static {
		out.WriteString("`STATIC` ")
	}

	if readonly {
		out.WriteString("`READONLY` ")
	}

	return out.String()
}

// enumValue renders numeric literals verbatim and quotes everything else.
// The raw string must parse as a number in full, so " 42" stays quoted.
func enumValue(value string) string {
	if number, err := strconv.ParseFloat(value, 64); err == nil && !math.IsNaN(number) {
		return value
	}

	if hasIntegerPrefix(value) {
		if _, err := strconv.ParseInt(value, 0, 64); err == nil {
			return value
		}
	}

	return strconv.Quote(value)
}

// hasIntegerPrefix reports a hex, octal or binary literal prefix.
func hasIntegerPrefix(value string) bool {
	value = strings.TrimPrefix(value, "-")
	if len(value) < 3 || value[0] != '0' {
		return false
	}

	switch value[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}

	return false
}

// parameterNames renders a comma separated parameter name list for call syntax.
func parameterNames(params []Parameter) string {
	names := make([]string, 0, len(params))
	for _, param := range params {
		names = append(names, parameterName(param))
	}

	return strings.Join(names, ", ")
}

// parameterName prefixes rest parameters with the spread operator.
func parameterName(param Parameter) string {
	if param.Rest {
		return "..." + param.Name
	}

	return param.Name
}

// typeParameterNames renders "< T, U\>" after a signature name, or empty string.
func typeParameterNames(params []TypeParameter) string {
	if len(params) == 0 {
		return ""
	}

	names := make([]string, 0, len(params))
	for _, param := range params {
		names = append(names, param.Name)
	}

	return typeArgumentsOpen + strings.Join(names, typeArgumentsSeparator) + typeArgumentsClose
}

// markdownTable renders a pipe table with escaped cells.
func markdownTable(header []string, rows [][]string) string {
	var out strings.Builder
	out.WriteString("| " + strings.Join(header, " | ") + " |\n")
	out.WriteString("|" + strings.Repeat(" --- |", len(header)))

	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, escapeTableCell(cell))
		}

		out.WriteString("\n| " + strings.Join(cells, " | ") + " |")
	}

	return out.String()
}

// yesNo formats a boolean flag for table cells.
func yesNo(value bool) string {
	if value {
		return "Yes"
	}

	return "No"
}
