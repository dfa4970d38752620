// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

const (
	// defaultExtension is appended to document file names and internal link targets.
	defaultExtension = ".mdx"
	// defaultListMarker is used when caller does not provide list marker style.
	defaultListMarker = "*"
	// defaultCodeLanguage tags fenced example and constructor blocks.
	defaultCodeLanguage = "typescript"
)

// Options controls one render pass.
type Options struct {
	// Logger receives unresolved reference warnings; nil discards them.
	Logger *slog.Logger

	// References holds external lookup tables; nil uses DefaultReferences.
	References *ReferenceTable

	// Templates overrides built-in templates per kind.
	Templates map[Kind]string

	// Scope is the output directory of this pass relative to the output root.
	Scope string

	// Extension of document files and internal links, default ".mdx".
	Extension string

	// CodeLanguage tags fenced code blocks, default "typescript".
	CodeLanguage string

	// ListMarker selects "*" or "-" for unordered lists.
	ListMarker string

	// WrapWidth wraps description paragraphs; 0 disables wrapping.
	WrapWidth int

	// Grouped marks a scope nested under a grouped package index.
	Grouped bool
}

// renderer renders single symbols of one project with one parsed template set.
type renderer struct {
	templates *template.Template
	views     *viewBuilder
	logger    *slog.Logger
	extension string
}

// Render renders every non-external symbol of project into documents grouped by kind.
// Kinds without eligible symbols produce neither a category nor documents.
func Render(project *Project, opt Options) (*Output, error) {
	r, err := newRenderer(project, opt)
	if err != nil {
		return nil, err
	}

	scope := normalizeScope(opt.Scope)
	position := categoryPosition(opt.Grouped)
	categories := newCategoryAssigner()
	out := &Output{}

	for _, kind := range Kinds() {
		symbols := renderable(project.Symbols(kind))
		if len(symbols) == 0 {
			continue
		}

		dir := categories.categoryFor(scope, kind, kind.Label(), position)
		r.logger.Debug("render category",
			slog.String("dir", dir),
			slog.Int("documents", len(symbols)))

		for index, symbol := range symbols {
			doc, err := r.render(symbol, dir, index)
			if err != nil {
				return nil, err
			}

			out.Documents = append(out.Documents, doc)
		}
	}

	out.Categories = categories.categories
	return out, nil
}

// RenderSymbol renders one symbol of project at the given sidebar position.
// The document is placed in the kind category of opt.Scope.
func RenderSymbol(project *Project, symbol Symbol, position int, opt Options) (Document, error) {
	r, err := newRenderer(project, opt)
	if err != nil {
		return Document{}, err
	}

	return r.render(symbol, path.Join(normalizeScope(opt.Scope), string(symbol.Kind())), position)
}

// newRenderer prepares templates, resolver and text style for one project.
func newRenderer(project *Project, opt Options) (*renderer, error) {
	if project == nil {
		return nil, ErrNilProject
	}

	templates, err := resolveTemplates(opt.Templates)
	if err != nil {
		return nil, err
	}

	logger := loggerOrDiscard(opt.Logger)
	extension := normalizeExtension(opt.Extension)

	codeLanguage := strings.TrimSpace(opt.CodeLanguage)
	if codeLanguage == "" {
		codeLanguage = defaultCodeLanguage
	}

	return &renderer{
		templates: templates,
		logger:    logger,
		extension: extension,
		views: &viewBuilder{
			resolver: NewResolver(project, ResolverOptions{
				References: opt.References,
				Logger:     logger,
				Extension:  extension,
			}),
			style: textStyle{
				wrapWidth:    normalizeWrapWidth(opt.WrapWidth),
				listMarker:   normalizeListMarker(opt.ListMarker),
				codeLanguage: codeLanguage,
			},
		},
	}, nil
}

// render executes the kind template of one symbol.
func (r *renderer) render(symbol Symbol, dir string, position int) (Document, error) {
	view, err := r.views.view(symbol, position)
	if err != nil {
		return Document{}, err
	}

	var out strings.Builder
	if err := r.templates.ExecuteTemplate(&out, string(symbol.Kind()), view); err != nil {
		return Document{}, fmt.Errorf("%w %q: %w", ErrExecuteDocumentTemplate, symbol.Name(), err)
	}

	return Document{
		Dir:       dir,
		Slug:      Slug(symbol.Name()),
		Extension: r.extension,
		Kind:      symbol.Kind(),
		Name:      symbol.Name(),
		Position:  position,
		Content:   ensureTrailingNewline(normalizeMarkdownOutput(out.String())),
	}, nil
}

// renderable drops external symbols keeping collection order.
func renderable(symbols []Symbol) []Symbol {
	out := make([]Symbol, 0, len(symbols))
	for _, symbol := range symbols {
		if symbol.IsExternal() {
			continue
		}

		out = append(out, symbol)
	}

	return out
}

// loggerOrDiscard returns logger or a logger that drops every record.
func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}

	return slog.New(slog.DiscardHandler)
}

// normalizeExtension ensures a leading dot and falls back to default extension.
func normalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return defaultExtension
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

// normalizeScope converts scope into a clean slash separated relative path.
func normalizeScope(scope string) string {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return "."
	}

	return path.Clean(filepath.ToSlash(scope))
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	file, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
