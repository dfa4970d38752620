// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

/*
Package typedocmd renders Markdown/MDX documentation sites from TypeDoc style
API models.

A project model holds ordered collections of classes, interfaces, enums, type
aliases, variables, namespaces and functions. Render turns every non-external
symbol into one document with YAML front matter and kind specific sections,
grouped into one category per kind. Type expressions are rendered by a
Resolver that links references to other documents of the same project, to
well-known external documentation, or falls back to a placeholder link.

Decode a typedoc-json-parser payload and render it:

	project, err := typedocmd.DecodeProjectFile("docs/1.2.0.json")
	if err != nil {
		return err
	}

	out, err := typedocmd.Render(project, typedocmd.Options{
		Scope:  "my-package/1.2.0",
		Logger: slog.Default(),
	})
	if err != nil {
		return err
	}

	if err := out.WriteDir("docs/Documentation"); err != nil {
		return err
	}

Resolve a single type expression:

	resolver := typedocmd.NewResolver(project, typedocmd.ResolverOptions{})
	fmt.Println(resolver.Resolve(&typedocmd.ReferenceType{
		Name:        "Promise",
		PackageName: "typescript",
	}))

Extend the external reference tables:

	refs := typedocmd.DefaultReferences().Merge(
		map[string]string{"Snowflake": "https://example.com/snowflake"},
		[]string{"Awaitable"},
		nil,
	)

	out, err := typedocmd.Render(project, typedocmd.Options{References: refs})

Inspect built-in templates:

	names := typedocmd.BuiltinTemplateNames()
	fmt.Println(strings.Join(names, ", "))

	tpl, err := typedocmd.BuiltinTemplate("class")
	if err != nil {
		return err
	}

	fmt.Println(len(tpl) > 0)
*/
package typedocmd
