// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import (
	"bytes"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var updateGolden = flag.Bool("update", false, "update golden files")

func TestRenderSkipsExternalSymbolsAndNumbersPositions(t *testing.T) {
	t.Parallel()

	project := (&Project{
		Classes: []*Class{
			{SymbolBase: SymbolBase{SymbolID: 1, SymbolName: "Hidden A", External: true}},
			{SymbolBase: SymbolBase{SymbolID: 2, SymbolName: "Shown B"}},
			{SymbolBase: SymbolBase{SymbolID: 3, SymbolName: "Hidden C", External: true}},
			{SymbolBase: SymbolBase{SymbolID: 4, SymbolName: "Shown D"}},
		},
	}).Index()

	out, err := Render(project, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(out.Documents) != 2 {
		t.Fatalf("documents = %d, want 2", len(out.Documents))
	}

	for i, want := range []string{"shown-b", "shown-d"} {
		doc := out.Documents[i]
		if doc.Slug != want || doc.Position != i {
			t.Fatalf("document %d = %s@%d, want %s@%d", i, doc.Slug, doc.Position, want, i)
		}

		assertContains(t, doc.Content, "sidebar_position: "+string(rune('0'+i))+"\n")
	}

	for _, doc := range out.Documents {
		if strings.Contains(doc.Slug, "hidden") {
			t.Fatalf("external symbol rendered: %s", doc.Slug)
		}
	}
}

func TestRenderMaterializesOnlyKindsWithEligibleSymbols(t *testing.T) {
	t.Parallel()

	project := (&Project{
		Interfaces: []*Interface{{SymbolBase: SymbolBase{SymbolID: 1, SymbolName: "Options"}}},
		Enums:      []*Enum{{SymbolBase: SymbolBase{SymbolID: 2, SymbolName: "Remote", External: true}}},
	}).Index()

	out, err := Render(project, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(out.Categories) != 1 {
		t.Fatalf("categories = %+v, want only interfaces", out.Categories)
	}

	category := out.Categories[0]
	if category.Dir != "interface" || category.Label != "Interfaces" || category.Name != "interface" {
		t.Fatalf("unexpected category: %+v", category)
	}

	if len(out.Documents) != 1 || out.Documents[0].Path() != "interface/options.mdx" {
		t.Fatalf("unexpected documents: %+v", out.Documents)
	}
}

func TestRenderEmptyProjectProducesNothing(t *testing.T) {
	t.Parallel()

	out, err := Render(&Project{}, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(out.Categories) != 0 || len(out.Documents) != 0 {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestRenderNilProject(t *testing.T) {
	t.Parallel()

	if _, err := Render(nil, Options{}); !errors.Is(err, ErrNilProject) {
		t.Fatalf("Render(nil) error = %v, want ErrNilProject", err)
	}
}

func TestRenderCategoryPositionAndScope(t *testing.T) {
	t.Parallel()

	project := (&Project{Functions: []*Function{{SymbolBase: SymbolBase{SymbolID: 1, SymbolName: "run"}}}}).Index()

	leaf, err := Render(project, Options{Scope: "toolkit/1.0.0"})
	if err != nil {
		t.Fatalf("Render leaf: %v", err)
	}

	grouped, err := Render(project, Options{Scope: "toolkit/main/1.0.0", Grouped: true})
	if err != nil {
		t.Fatalf("Render grouped: %v", err)
	}

	if got := leaf.Categories[0]; got.Position != 1 || got.Dir != "toolkit/1.0.0/function" {
		t.Fatalf("leaf category = %+v", got)
	}

	if got := grouped.Categories[0]; got.Position != 2 || got.Dir != "toolkit/main/1.0.0/function" {
		t.Fatalf("grouped category = %+v", got)
	}

	if got := grouped.Documents[0].Path(); got != "toolkit/main/1.0.0/function/run.mdx" {
		t.Fatalf("document path = %q", got)
	}
}

func TestRenderKindOrder(t *testing.T) {
	t.Parallel()

	project := (&Project{
		TypeAliases: []*TypeAlias{{SymbolBase: SymbolBase{SymbolID: 1, SymbolName: "Alias"}}},
		Namespaces:  []*Namespace{{SymbolBase: SymbolBase{SymbolID: 2, SymbolName: "Space"}}},
		Interfaces:  []*Interface{{SymbolBase: SymbolBase{SymbolID: 3, SymbolName: "Shape"}}},
		Functions:   []*Function{{SymbolBase: SymbolBase{SymbolID: 4, SymbolName: "run"}}},
		Enums:       []*Enum{{SymbolBase: SymbolBase{SymbolID: 5, SymbolName: "Mode"}}},
		Variables:   []*Variable{{SymbolBase: SymbolBase{SymbolID: 6, SymbolName: "VERSION"}}},
		Classes:     []*Class{{SymbolBase: SymbolBase{SymbolID: 7, SymbolName: "Client"}}},
	}).Index()

	out, err := Render(project, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	dirs := make([]string, 0, len(out.Categories))
	for _, category := range out.Categories {
		dirs = append(dirs, category.Dir)
	}

	got := strings.Join(dirs, ",")
	want := "class,variable,enum,function,interface,namespace,type-alias"
	if got != want {
		t.Fatalf("category order = %q, want %q", got, want)
	}
}

func TestRenderClassOverloadsWithoutProperties(t *testing.T) {
	t.Parallel()

	class := &Class{
		SymbolBase: SymbolBase{SymbolID: 1, SymbolName: "Widget"},
		Methods: []Method{{
			Name: "spin",
			Signatures: []Signature{
				{Name: "spin", ReturnType: &IntrinsicType{Name: "void"}},
				{
					Name:       "spin",
					Parameters: []Parameter{{Name: "turns", Type: &IntrinsicType{Name: "number"}}},
					ReturnType: &IntrinsicType{Name: "void"},
				},
			},
		}},
	}

	out, err := Render((&Project{Classes: []*Class{class}}).Index(), Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	content := out.Documents[0].Content
	assertContains(t, content, "## Constructor\n\n```typescript\nnew Widget()\n```")
	assertContains(t, content, "## Methods\n\n### spin(): `void`")
	assertContains(t, content, "### spin(turns): `void`")
	assertContains(t, content, "#### Parameters\n\n| Name | Type | Optional | Description |")
	assertNotContains(t, content, "## Properties")
	assertNotContains(t, content, "\n### Parameters")
	assertNotContains(t, content, "**extends")
	assertNotContains(t, content, "**implements")
	assertNotContains(t, content, "## Type Parameters")
	assertNotContains(t, content, "## Examples")

	if got := strings.Count(content, "\n### spin("); got != 2 {
		t.Fatalf("signature subsections = %d, want 2", got)
	}
}

func TestRenderPropertyMarkersOrder(t *testing.T) {
	t.Parallel()

	class := &Class{
		SymbolBase: SymbolBase{SymbolID: 1, SymbolName: "Store"},
		Properties: []Property{
			{
				Name:          "items",
				Accessibility: AccessibilityProtected,
				Static:        true,
				Readonly:      true,
				Optional:      true,
				Type:          &ArrayType{Type: &IntrinsicType{Name: "string"}},
			},
			{Name: "size", Accessibility: AccessibilityPublic, Type: &IntrinsicType{Name: "number"}},
		},
	}

	out, err := Render((&Project{Classes: []*Class{class}}).Index(), Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	content := out.Documents[0].Content
	assertContains(t, content, "## Properties\n\n### `PROTECTED` `STATIC` `READONLY` items?: `string`[]")
	assertContains(t, content, "### size: `number`")
	assertNotContains(t, content, "## Methods")
}

func TestRenderEnumValues(t *testing.T) {
	t.Parallel()

	enum := &Enum{
		SymbolBase: SymbolBase{SymbolID: 1, SymbolName: "Code"},
		Members: []EnumMember{
			{Name: "Answer", Value: "42"},
			{Name: "Name", Value: "foo"},
			{Name: "Padded", Value: " 42"},
			{Name: "Fraction", Value: "1.5"},
		},
	}

	out, err := Render((&Project{Enums: []*Enum{enum}}).Index(), Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	content := out.Documents[0].Content
	assertContains(t, content, "### Answer = 42\n")
	assertContains(t, content, "### Name = \"foo\"\n")
	assertContains(t, content, "### Padded = \" 42\"\n")
	assertContains(t, content, "### Fraction = 1.5\n")
}

func TestEnumValue(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"42":    "42",
		"-1":    "-1",
		"007":   "007",
		"foo":   `"foo"`,
		" 42":   `" 42"`,
		"":      `""`,
		"1e3":   "1e3",
		"NaN":   `"NaN"`,
		"0x10":  "0x10",
		"0XfF":  "0XfF",
		"0o17":  "0o17",
		"0b101": "0b101",
		"-0x1":  "-0x1",
		"0x":    `"0x"`,
		"0xZZ":  `"0xZZ"`,
		"0b102": `"0b102"`,
	}

	for input, want := range cases {
		if got := enumValue(input); got != want {
			t.Fatalf("enumValue(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestRenderFixtureProject(t *testing.T) {
	t.Parallel()

	project, err := DecodeProjectFile(filepath.Join("testdata", "project.fixture.json"))
	if err != nil {
		t.Fatalf("DecodeProjectFile: %v", err)
	}

	logger, logs := captureLogger()
	out, err := Render(project, Options{Scope: "toolkit/1.2.0", Logger: logger})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if logs.Len() != 0 {
		t.Fatalf("unexpected warnings:\n%s", logs.String())
	}

	paths := make([]string, 0, len(out.Documents))
	for _, doc := range out.Documents {
		paths = append(paths, doc.Path())
	}

	wantPaths := strings.Join([]string{
		"toolkit/1.2.0/class/client.mdx",
		"toolkit/1.2.0/variable/default_timeout.mdx",
		"toolkit/1.2.0/enum/color.mdx",
		"toolkit/1.2.0/function/createclient.mdx",
		"toolkit/1.2.0/interface/clientoptions.mdx",
		"toolkit/1.2.0/namespace/util.mdx",
		"toolkit/1.2.0/type-alias/snowflake-id.mdx",
	}, "\n")
	if got := strings.Join(paths, "\n"); got != wantPaths {
		t.Fatalf("document paths:\n%s\nwant:\n%s", got, wantPaths)
	}

	client := out.Documents[0].Content
	assertContains(t, client, "id: \"client\"\ntitle: \"Client\"\nsidebar_label: \"Client\"\nsidebar_position: 0\ncustom_edit_url: null\n---")
	assertContains(t, client, "**extends `BaseClient`**")
	assertContains(t, client, "**implements [`EventEmitter`](https://nodejs.org/api/events.html#events_class_eventemitter)**")
	assertContains(t, client, "**See also:**\n\n* https://example.com/guide/client")
	assertContains(t, client, "## Examples\n\n```typescript\nconst client = new Client({ intents: 1 });\n```\n\n```typescript\nawait client.login();\n```")
	assertContains(t, client, "## Constructor\n\n```typescript\nnew Client(options)\n```\n\n### Parameters")
	assertContains(t, client, "| `options` | [`ClientOptions`](../interface/clientoptions.mdx) | No | Client options. |")
	assertContains(t, client, "### `PRIVATE` `READONLY` token?: `string`\n\nNo description provided.")
	assertContains(t, client, "### `STATIC` cache: [`Map`](https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Map)< `string`, [`Color`](../enum/color.mdx)\\>")
	assertContains(t, client, "### login(): [`Promise`](https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Promise)< `void`\\>")
	assertContains(t, client, "### login(token): [`Promise`]")

	function := out.Documents[3].Content
	assertContains(t, function, "## createClient< T\\>(options, ...plugins): [`Client`](../class/client.mdx)")
	assertContains(t, function, "### Type Parameters\n\n| Name | Constraint | Default |\n| --- | --- | --- |\n| `T` | [`ClientOptions`](../interface/clientoptions.mdx) |  |")
	assertContains(t, function, "| `...plugins` | `Plugin`[] | No |  |")

	options := out.Documents[4].Content
	assertContains(t, options, "### intents: `number` | `number`[]")

	variable := out.Documents[1].Content
	assertContains(t, variable, "## Type\n\n`number`")
	assertContains(t, variable, "## Value\n\n```typescript\n15_000\n```")

	alias := out.Documents[6].Content
	assertContains(t, alias, "title: \"Snowflake Id\"")
	assertContains(t, alias, "## Type\n\n\\`$\\{`bigint`\\}\\`")
}

func TestRenderGoldenEnum(t *testing.T) {
	t.Parallel()

	project, err := DecodeProjectFile(filepath.Join("testdata", "project.fixture.json"))
	if err != nil {
		t.Fatalf("DecodeProjectFile: %v", err)
	}

	doc, err := RenderSymbol(project, project.Enums[0], 0, Options{})
	if err != nil {
		t.Fatalf("RenderSymbol: %v", err)
	}

	goldenPath := filepath.Join("testdata", "enum.golden.mdx")
	if *updateGolden {
		if err := os.WriteFile(goldenPath, []byte(doc.Content), 0o600); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}

	wantBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}

	if doc.Content != string(wantBytes) {
		t.Fatalf("golden mismatch; run `go test . -run TestRenderGoldenEnum -update`\n%s", doc.Content)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	project, err := DecodeProjectFile(filepath.Join("testdata", "project.fixture.json"))
	if err != nil {
		t.Fatalf("DecodeProjectFile: %v", err)
	}

	first, err := Render(project, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	second, err := Render(project, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for i := range first.Documents {
		if first.Documents[i].Content != second.Documents[i].Content {
			t.Fatalf("document %s differs between passes", first.Documents[i].Path())
		}
	}
}

func TestRenderHeaderOnlyKinds(t *testing.T) {
	t.Parallel()

	project := (&Project{
		Namespaces: []*Namespace{{SymbolBase: SymbolBase{SymbolID: 1, SymbolName: "Util"}}},
		Variables:  []*Variable{{SymbolBase: SymbolBase{SymbolID: 2, SymbolName: "Empty"}}},
	}).Index()

	out, err := Render(project, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, doc := range out.Documents {
		assertContains(t, doc.Content, "custom_edit_url: null\n---\n\nNo description provided.\n")
		assertNotContains(t, doc.Content, "## ")
		assertNotContains(t, doc.Content, "\n\n\n")
	}
}

func TestRenderExtensionAndCodeLanguage(t *testing.T) {
	t.Parallel()

	ref := 2
	project := (&Project{
		Variables: []*Variable{{
			SymbolBase: SymbolBase{SymbolID: 1, SymbolName: "mode"},
			Type:       &ReferenceType{ID: &ref, Name: "Mode"},
			Value:      "Mode.On",
		}},
		Enums: []*Enum{{SymbolBase: SymbolBase{SymbolID: 2, SymbolName: "Mode"}}},
	}).Index()

	out, err := Render(project, Options{Extension: "md", CodeLanguage: "ts"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	doc := out.Documents[0]
	if doc.Path() != "variable/mode.md" {
		t.Fatalf("path = %q", doc.Path())
	}

	assertContains(t, doc.Content, "[`Mode`](../enum/mode.md)")
	assertContains(t, doc.Content, "```ts\nMode.On\n```")
}

func TestRenderListMarkerAndWrap(t *testing.T) {
	t.Parallel()

	description := "First line of a long description that should wrap around.\n\n* one\n* two"
	project := (&Project{Namespaces: []*Namespace{{
		SymbolBase: SymbolBase{
			SymbolID:   1,
			SymbolName: "Util",
			SymbolComment: Comment{
				Description: &description,
				See:         []string{"Other"},
			},
		},
	}}}).Index()

	out, err := Render(project, Options{ListMarker: "-", WrapWidth: 30})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	content := out.Documents[0].Content
	assertContains(t, content, "First line of a long\ndescription that should wrap\naround.")
	assertContains(t, content, "- one\n- two")
	assertContains(t, content, "**See also:**\n\n- Other")
}

func TestRenderCustomTemplate(t *testing.T) {
	t.Parallel()

	project := (&Project{Enums: []*Enum{{SymbolBase: SymbolBase{SymbolID: 1, SymbolName: "Mode"}}}}).Index()

	out, err := Render(project, Options{
		Templates: map[Kind]string{
			KindEnum: "{{ .FrontMatter }}\n\nCUSTOM {{ .Name }}\n\n{{ template \"comment\" .Comment }}\n",
		},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertContains(t, out.Documents[0].Content, "---\n\nCUSTOM Mode\n\nNo description provided.\n")
}

func TestRenderTemplateErrors(t *testing.T) {
	t.Parallel()

	project := (&Project{Enums: []*Enum{{SymbolBase: SymbolBase{SymbolID: 1, SymbolName: "Mode"}}}}).Index()

	cases := []struct {
		name      string
		templates map[Kind]string
		want      error
	}{
		{name: "unknown kind", templates: map[Kind]string{Kind("widget"): "x"}, want: ErrUnknownBuiltinTemplate},
		{name: "parse", templates: map[Kind]string{KindEnum: "{{ .Broken "}, want: ErrParseDocumentTemplate},
		{name: "execute", templates: map[Kind]string{KindEnum: "{{ .Missing }}"}, want: ErrExecuteDocumentTemplate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Render(project, Options{Templates: tc.templates})
			if !errors.Is(err, tc.want) {
				t.Fatalf("Render error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestBuiltinTemplates(t *testing.T) {
	t.Parallel()

	names := BuiltinTemplateNames()
	want := "class,enum,function,interface,namespace,partials,type-alias,variable"
	if got := strings.Join(names, ","); got != want {
		t.Fatalf("builtin templates = %q, want %q", got, want)
	}

	for _, name := range names {
		text, err := BuiltinTemplate(" " + strings.ToUpper(name) + " ")
		if err != nil {
			t.Fatalf("BuiltinTemplate(%q): %v", name, err)
		}

		if strings.TrimSpace(text) == "" {
			t.Fatalf("empty builtin template %q", name)
		}
	}

	if _, err := BuiltinTemplate("missing"); !errors.Is(err, ErrUnknownBuiltinTemplate) {
		t.Fatalf("BuiltinTemplate(missing) error = %v", err)
	}
}

func TestRenderOutputHasNoHTML(t *testing.T) {
	t.Parallel()

	project, err := DecodeProjectFile(filepath.Join("testdata", "project.fixture.json"))
	if err != nil {
		t.Fatalf("DecodeProjectFile: %v", err)
	}

	out, err := Render(project, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, doc := range out.Documents {
		assertNotContains(t, doc.Content, "<a ")
		assertNotContains(t, doc.Content, "<br")
		assertNotContains(t, doc.Content, "<T")
	}
}

// captureLogger returns a warn-level text logger writing into a buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return logger, &buf
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
