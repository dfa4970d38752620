// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import (
	"log/slog"
	"net/url"
	"strings"
)

const (
	// typeArgumentsOpen starts a rendered type argument list; the space keeps MDX from reading a JSX tag.
	typeArgumentsOpen = "< "
	// typeArgumentsClose ends a rendered type argument list, escaped for MDX.
	typeArgumentsClose = "\\>"
	// typeArgumentsSeparator joins rendered type arguments.
	typeArgumentsSeparator = ", "
	// packageLinkScheme marks links to packages without a known documentation URL.
	packageLinkScheme = "package::"
)

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// References holds the external lookup tables; nil uses DefaultReferences.
	References *ReferenceTable
	// Logger receives unresolved reference warnings; nil discards them.
	Logger *slog.Logger
	// Extension is appended to internal link targets; empty uses defaultExtension.
	Extension string
}

// Resolver renders type expressions into Markdown with cross-reference links.
// It never mutates the project or the tables and is safe for concurrent use.
type Resolver struct {
	project   *Project
	refs      *ReferenceTable
	logger    *slog.Logger
	extension string
}

// NewResolver creates a resolver bound to one project.
func NewResolver(project *Project, opt ResolverOptions) *Resolver {
	refs := opt.References
	if refs == nil {
		refs = DefaultReferences()
	}

	return &Resolver{
		project:   project,
		refs:      refs,
		logger:    loggerOrDiscard(opt.Logger),
		extension: normalizeExtension(opt.Extension),
	}
}

// Resolve renders one type expression. A nil type renders as empty string.
func (r *Resolver) Resolve(t Type) string {
	switch typed := t.(type) {
	case nil:
		return ""
	case *ReferenceType:
		return r.resolveReference(typed)
	case *IntrinsicType:
		return inlineCode(typed.Name)
	case *LiteralType:
		return inlineCode(typed.Value)
	case *UnionType:
		return r.joinTypes(typed.Types, " | ")
	case *IntersectionType:
		return r.joinTypes(typed.Types, " & ")
	case *ArrayType:
		return r.resolveArrayElement(typed.Type) + "[]"
	case *TupleType:
		return "[" + r.joinTypes(typed.Types, ", ") + "]"
	case *NamedTupleMemberType:
		optional := ""
		if typed.Optional {
			optional = "?"
		}

		return typed.Name + optional + ": " + r.Resolve(typed.Type)
	case *OptionalType:
		return r.Resolve(typed.Type) + "?"
	case *RestType:
		return "..." + r.Resolve(typed.Type)
	case *ConditionalType:
		return r.Resolve(typed.CheckType) + " extends " + r.Resolve(typed.ExtendsType) +
			" ? " + r.Resolve(typed.TrueType) + " : " + r.Resolve(typed.FalseType)
	case *IndexedAccessType:
		return r.Resolve(typed.ObjectType) + "[" + r.Resolve(typed.IndexType) + "]"
	case *TypeOperatorType:
		return typed.Operator + " " + r.Resolve(typed.Type)
	case *QueryType:
		return "typeof " + r.resolveReference(&typed.Query)
	case *PredicateType:
		return r.resolvePredicate(typed)
	case *InferredType:
		return "infer " + inlineCode(typed.Type)
	case *MappedType:
		return r.resolveMapped(typed)
	case *TemplateLiteralType:
		return r.resolveTemplateLiteral(typed)
	case *UnknownType:
		return inlineCode(typed.Name)
	default:
		return ""
	}
}

// resolveReference applies the id -> package -> plain fallback chain for named references.
func (r *Resolver) resolveReference(ref *ReferenceType) string {
	typeArguments := r.typeArguments(ref.TypeArguments)

	if ref.ID != nil {
		found, ok := r.project.FindByID(*ref.ID)
		switch {
		case ok && !found.IsExternal():
			return markdownLink(ref.Name, r.internalTarget(found)) + typeArguments
		case ok, r.project.HasNested(*ref.ID):
			// External symbols, members and nested declarations have no page.
		default:
			r.logger.Warn("unable to find referenced symbol",
				slog.String("name", ref.Name),
				slog.Int("id", *ref.ID))
		}
	}

	if ref.PackageName != "" {
		if prefix, ok := r.refs.searchPrefix(ref.PackageName); ok {
			query := url.Values{"query": {ref.Name}}
			return markdownLink(ref.Name, prefix+query.Encode()) + typeArguments
		}

		if target, ok := r.refs.lookupURL(ref.Name); ok {
			return markdownLink(ref.Name, target) + typeArguments
		}

		if !r.refs.isUnknown(ref.Name) {
			r.logger.Warn("unable to resolve external reference",
				slog.String("name", ref.Name),
				slog.String("package", ref.PackageName))
		}

		return markdownLink(ref.Name, packageLinkScheme+ref.PackageName) + typeArguments
	}

	return inlineCode(ref.Name) + typeArguments
}

// internalTarget builds the relative link target of a rendered symbol document.
func (r *Resolver) internalTarget(symbol Symbol) string {
	return "../" + string(symbol.Kind()) + "/" + Slug(symbol.Name()) + r.extension
}

// typeArguments renders generic arguments, or empty string when there are none.
func (r *Resolver) typeArguments(args []Type) string {
	if len(args) == 0 {
		return ""
	}

	return typeArgumentsOpen + r.joinTypes(args, typeArgumentsSeparator) + typeArgumentsClose
}

// joinTypes resolves every type and joins the results with sep.
func (r *Resolver) joinTypes(types []Type, sep string) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, r.Resolve(t))
	}

	return strings.Join(parts, sep)
}

// resolveArrayElement parenthesizes element types that would otherwise bind looser than [].
func (r *Resolver) resolveArrayElement(t Type) string {
	switch t.(type) {
	case *UnionType, *IntersectionType, *ConditionalType, *TypeOperatorType:
		return "(" + r.Resolve(t) + ")"
	default:
		return r.Resolve(t)
	}
}

// resolvePredicate renders type guards and assertion signatures.
func (r *Resolver) resolvePredicate(t *PredicateType) string {
	var out strings.Builder
	if t.Asserts {
		out.WriteString("asserts ")
	}

	out.WriteString(t.Name)
	if t.Type != nil {
		out.WriteString(" is ")
		out.WriteString(r.Resolve(t.Type))
	}

	return out.String()
}

// resolveMapped renders mapped types with MDX-escaped braces.
func (r *Resolver) resolveMapped(t *MappedType) string {
	var out strings.Builder
	out.WriteString("\\{ ")

	switch t.ReadonlyModifier {
	case "+":
		out.WriteString("readonly ")
	case "-":
		out.WriteString("-readonly ")
	}

	out.WriteString("[")
	out.WriteString(t.ParameterName)
	out.WriteString(" in ")
	out.WriteString(r.Resolve(t.ParameterType))
	if t.NameType != nil {
		out.WriteString(" as ")
		out.WriteString(r.Resolve(t.NameType))
	}

	out.WriteString("]")

	switch t.OptionalModifier {
	case "+":
		out.WriteString("?")
	case "-":
		out.WriteString("-?")
	}

	out.WriteString(": ")
	out.WriteString(r.Resolve(t.TemplateType))
	out.WriteString(" \\}")
	return out.String()
}

// resolveTemplateLiteral renders template literal types with escaped backticks and braces.
func (r *Resolver) resolveTemplateLiteral(t *TemplateLiteralType) string {
	var out strings.Builder
	out.WriteString("\\`")
	out.WriteString(escapeMDXText(t.Head))
	for _, span := range t.Tail {
		out.WriteString("$\\{")
		out.WriteString(r.Resolve(span.Type))
		out.WriteString("\\}")
		out.WriteString(escapeMDXText(span.Text))
	}

	out.WriteString("\\`")
	return out.String()
}

// markdownLink renders a code-formatted link label pointing at target.
func markdownLink(label, target string) string {
	return "[" + inlineCode(label) + "](" + target + ")"
}

// inlineCode wraps text into a markdown code span.
func inlineCode(text string) string {
	return "`" + escapeInline(text) + "`"
}

// escapeMDXText escapes characters MDX would treat as markup in plain text.
func escapeMDXText(text string) string {
	replacer := strings.NewReplacer(
		"`", "\\`",
		"{", "\\{",
		"}", "\\}",
		"<", "\\<",
	)

	return replacer.Replace(text)
}
