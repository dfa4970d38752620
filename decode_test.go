// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeProjectFixture(t *testing.T) {
	t.Parallel()

	project, err := DecodeProjectFile(filepath.Join("testdata", "project.fixture.json"))
	if err != nil {
		t.Fatalf("DecodeProjectFile: %v", err)
	}

	if project.Name != "@demo/toolkit" || project.Version != "1.2.0" {
		t.Fatalf("project = %q@%q", project.Name, project.Version)
	}

	if len(project.Classes) != 2 || !project.Classes[1].IsExternal() {
		t.Fatalf("classes = %+v", project.Classes)
	}

	client := project.Classes[0]
	if client.ExtendsType == nil || len(client.ImplementsType) != 1 {
		t.Fatalf("client heritage = %+v / %+v", client.ExtendsType, client.ImplementsType)
	}

	if len(client.Construct.Parameters) != 1 || client.Construct.Parameters[0].Name != "options" {
		t.Fatalf("constructor = %+v", client.Construct)
	}

	if len(client.Methods) != 1 || len(client.Methods[0].Signatures) != 2 {
		t.Fatalf("methods = %+v", client.Methods)
	}

	token := client.Properties[0]
	if token.Accessibility != AccessibilityPrivate || !token.Readonly || !token.Optional || token.Comment.Description != nil {
		t.Fatalf("token property = %+v", token)
	}

	comment := client.Comment()
	if len(comment.See) != 1 || comment.See[0] != "https://example.com/guide/client" {
		t.Fatalf("see = %v", comment.See)
	}

	if len(comment.Example) != 1 || len(comment.Example[0]) != 2 {
		t.Fatalf("examples = %+v", comment.Example)
	}

	if symbol, ok := project.FindByID(20); !ok || !symbol.IsExternal() {
		t.Fatalf("FindByID(20) = %v, %v", symbol, ok)
	}

	if got := project.Enums[0].Members[1].Value; got != "3" {
		t.Fatalf("enum value = %q", got)
	}

	if got := project.Variables[0].Value; got != "15_000" {
		t.Fatalf("variable value = %q", got)
	}
}

func TestDecodeTypeExpressions(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"typeAliases": [{
			"id": 1,
			"name": "Everything",
			"type": {
				"kind": "union",
				"types": [
					{"kind": "reference", "id": 7, "name": "Mode", "packageName": "demo", "typeArguments": [{"kind": "literal", "value": 42}]},
					{"kind": "intrinsic", "type": "string"},
					{"kind": "literal", "value": "\"on\""},
					{"kind": "literal", "value": null},
					{"kind": "namedTupleMember", "name": "x", "optional": true, "type": {"kind": "intrinsic", "type": "number"}},
					{"kind": "query", "query": {"kind": "reference", "name": "config"}},
					{"kind": "mapped", "parameter": "K", "parameterType": {"kind": "intrinsic", "type": "string"}, "templateType": {"kind": "intrinsic", "type": "boolean"}, "readonly": "+", "optional": null},
					{"kind": "inferred", "type": "U"},
					{"kind": "brandNew"}
				]
			}
		}]
	}`)

	project, err := DecodeProject(data)
	if err != nil {
		t.Fatalf("DecodeProject: %v", err)
	}

	union, ok := project.TypeAliases[0].Type.(*UnionType)
	if !ok || len(union.Types) != 9 {
		t.Fatalf("type = %#v", project.TypeAliases[0].Type)
	}

	ref, ok := union.Types[0].(*ReferenceType)
	if !ok || ref.ID == nil || *ref.ID != 7 || ref.PackageName != "demo" || len(ref.TypeArguments) != 1 {
		t.Fatalf("reference = %#v", union.Types[0])
	}

	if lit, ok := ref.TypeArguments[0].(*LiteralType); !ok || lit.Value != "42" {
		t.Fatalf("numeric literal = %#v", ref.TypeArguments[0])
	}

	if lit, ok := union.Types[2].(*LiteralType); !ok || lit.Value != `"on"` {
		t.Fatalf("string literal = %#v", union.Types[2])
	}

	if lit, ok := union.Types[3].(*LiteralType); !ok || lit.Value != "" {
		t.Fatalf("null literal = %#v", union.Types[3])
	}

	if member, ok := union.Types[4].(*NamedTupleMemberType); !ok || !member.Optional {
		t.Fatalf("named member = %#v", union.Types[4])
	}

	if query, ok := union.Types[5].(*QueryType); !ok || query.Query.Name != "config" {
		t.Fatalf("query = %#v", union.Types[5])
	}

	if mapped, ok := union.Types[6].(*MappedType); !ok || mapped.ReadonlyModifier != "+" || mapped.OptionalModifier != "" {
		t.Fatalf("mapped = %#v", union.Types[6])
	}

	if unknown, ok := union.Types[8].(*UnknownType); !ok || unknown.Name != "brandNew" {
		t.Fatalf("unknown = %#v", union.Types[8])
	}
}

func TestDecodeProjectErrors(t *testing.T) {
	t.Parallel()

	if _, err := DecodeProject([]byte("{")); !errors.Is(err, ErrDecodeProject) {
		t.Fatalf("invalid JSON error = %v", err)
	}

	if _, err := DecodeProject([]byte(`{"classes": [{"name": "A", "extendsType": 5}]}`)); !errors.Is(err, ErrDecodeProject) {
		t.Fatalf("invalid type error = %v", err)
	}

	if _, err := DecodeProjectFile(filepath.Join("testdata", "missing.json")); !errors.Is(err, ErrReadProjectFile) {
		t.Fatalf("missing file error = %v", err)
	}

	if _, err := DecodeProjectFile("  "); !errors.Is(err, ErrMissingSource) {
		t.Fatalf("empty path error = %v", err)
	}
}

func TestExampleBlocks(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text string
		want []ExampleBlock
	}{
		"plain code": {
			text: "\nconst a = 1;\n",
			want: []ExampleBlock{{Text: "const a = 1;"}},
		},
		"fences only": {
			text: "```ts\na();\n```\n\n```\nb();\n```",
			want: []ExampleBlock{{Text: "a();", Language: "ts"}, {Text: "b();"}},
		},
		"prose around fences": {
			text: "Basic usage:\n```ts\nnew Foo()\n```\nThen call bar.",
			want: []ExampleBlock{
				{Text: "Basic usage:", Prose: true},
				{Text: "new Foo()", Language: "ts"},
				{Text: "Then call bar.", Prose: true},
			},
		},
		"longer outer fence": {
			text: "````md title=\"x\"\n```js\ninner();\n```\n````",
			want: []ExampleBlock{{Text: "```js\ninner();\n```", Language: "md"}},
		},
		"unclosed fence": {
			text: "Setup\n```ts\nopen();",
			want: []ExampleBlock{{Text: "Setup", Prose: true}, {Text: "open();", Language: "ts"}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := exampleBlocks(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("exampleBlocks = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDecodeNestedDeclarationsResolveWithoutWarnings(t *testing.T) {
	t.Parallel()

	project, err := DecodeProject([]byte(`{
  "name": "nested",
  "enums": [
    {"id": 1, "name": "Color", "members": [{"id": 2, "name": "Red", "value": "red"}]}
  ],
  "classes": [
    {"id": 7, "name": "Client",
     "properties": [{"id": 8, "name": "token", "type": {"kind": "intrinsic", "type": "string"}}],
     "methods": [{"id": 9, "name": "login", "signatures": []}]}
  ],
  "namespaces": [
    {"id": 3, "name": "Util",
     "classes": [{"id": 4, "name": "Helper"}],
     "namespaces": [
       {"id": 5, "name": "Deep", "enums": [{"id": 6, "name": "Mode", "members": [{"id": 10, "name": "On", "value": "1"}]}]}
     ]}
  ]
}`))
	if err != nil {
		t.Fatalf("DecodeProject: %v", err)
	}

	util := project.Namespaces[0]
	if len(util.Classes) != 1 || util.Classes[0].Name() != "Helper" {
		t.Fatalf("nested classes = %+v", util.Classes)
	}

	if len(util.Namespaces) != 1 || len(util.Namespaces[0].Enums) != 1 {
		t.Fatalf("nested namespaces = %+v", util.Namespaces)
	}

	for _, id := range []int{2, 4, 5, 6, 8, 9, 10} {
		if !project.HasNested(id) {
			t.Fatalf("HasNested(%d) = false", id)
		}
	}

	if _, ok := project.FindByID(4); ok {
		t.Fatal("nested class must not be a document target")
	}

	logger, logs := captureLogger()
	resolver := NewResolver(project, ResolverOptions{Logger: logger})

	got := resolver.Resolve(&UnionType{Types: []Type{
		&ReferenceType{ID: intPtr(2), Name: "Color.Red"},
		&ReferenceType{ID: intPtr(4), Name: "Helper"},
		&ReferenceType{ID: intPtr(10), Name: "Mode.On"},
		&ReferenceType{ID: intPtr(1), Name: "Color"},
	}})

	want := "`Color.Red` | `Helper` | `Mode.On` | [`Color`](../enum/color.mdx)"
	if got != want {
		t.Fatalf("Resolve = %q, want %q", got, want)
	}

	if logs.Len() != 0 {
		t.Fatalf("unexpected warnings:\n%s", logs.String())
	}

	resolver.Resolve(&ReferenceType{ID: intPtr(99), Name: "Missing"})
	if count := strings.Count(logs.String(), "unable to find referenced symbol"); count != 1 {
		t.Fatalf("warnings = %d, want 1:\n%s", count, logs.String())
	}
}
