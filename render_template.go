// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

// templateFS stores built-in document templates embedded into the package.
//
//go:embed templates/*.md.gotmpl
var templateFS embed.FS

// partialsTemplateName holds the shared section definitions used by every kind template.
const partialsTemplateName = "partials"

// builtInTemplateFiles maps template names to embedded file paths.
var builtInTemplateFiles = map[string]string{
	partialsTemplateName:  "templates/partials.md.gotmpl",
	string(KindClass):     "templates/class.md.gotmpl",
	string(KindInterface): "templates/interface.md.gotmpl",
	string(KindEnum):      "templates/enum.md.gotmpl",
	string(KindFunction):  "templates/function.md.gotmpl",
	string(KindTypeAlias): "templates/type-alias.md.gotmpl",
	string(KindVariable):  "templates/variable.md.gotmpl",
	string(KindNamespace): "templates/namespace.md.gotmpl",
}

// resolveTemplates parses the built-in template set and lays custom kind templates over it.
// Custom templates may use the shared partials ("comment", "signature", ...).
func resolveTemplates(custom map[Kind]string) (*template.Template, error) {
	set := template.New("documents").Funcs(templateFuncs())

	for _, name := range BuiltinTemplateNames() {
		text, err := BuiltinTemplate(name)
		if err != nil {
			return nil, err
		}

		if _, err := set.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParseDocumentTemplate, name, err)
		}
	}

	for kind, text := range custom {
		if strings.TrimSpace(text) == "" {
			continue
		}

		name := normalizeTemplateName(string(kind))
		if _, ok := builtInTemplateFiles[name]; !ok || name == partialsTemplateName {
			return nil, fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
		}

		if _, err := set.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParseDocumentTemplate, name, err)
		}
	}

	return set, nil
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// templateFuncs provides utility functions available inside document templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"heading": markdownHeading,
		"code":    inlineCode,
	}
}

// markdownHeading renders an ATX heading of the given depth.
func markdownHeading(level int, text string) string {
	if level < 1 {
		level = 1
	}

	return strings.Repeat("#", level) + " " + strings.TrimSpace(text)
}
