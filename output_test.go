// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOutputWriteDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	project := (&Project{
		Enums:      []*Enum{{SymbolBase: SymbolBase{SymbolID: 1, SymbolName: "Mode"}}},
		Namespaces: []*Namespace{{SymbolBase: SymbolBase{SymbolID: 2, SymbolName: "Util"}}},
	}).Index()

	out, err := Render(project, Options{Scope: "toolkit/1.0.0"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if err := out.WriteDir(root); err != nil {
		t.Fatalf("WriteDir: %v", err)
	}

	category := readFile(t, filepath.Join(root, "toolkit", "1.0.0", "enum", categoryFileName))
	if category != "label: \"Enums\"\nposition: 1\n" {
		t.Fatalf("category descriptor = %q", category)
	}

	doc := readFile(t, filepath.Join(root, "toolkit", "1.0.0", "namespace", "util.mdx"))
	if doc != out.Documents[1].Content {
		t.Fatalf("document content mismatch:\n%s", doc)
	}

	info, err := os.Stat(filepath.Join(root, "toolkit", "1.0.0", "enum", "mode.mdx"))
	if err != nil {
		t.Fatalf("stat document: %v", err)
	}

	if info.Mode().Perm() != 0o644 {
		t.Fatalf("document mode = %v", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Join(root, "toolkit", "1.0.0", "enum"))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("enum dir entries = %d, want descriptor and document only", len(entries))
	}
}

func TestOutputWriteDirRejectsEscapingPaths(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	out := &Output{Documents: []Document{{Dir: "../outside", Slug: "x", Extension: ".mdx", Content: "x\n"}}}

	if err := out.WriteDir(root); !errors.Is(err, ErrUnsafeOutputPath) {
		t.Fatalf("WriteDir error = %v, want ErrUnsafeOutputPath", err)
	}

	if err := WriteCategory(root, "/abs", "Abs", 0); !errors.Is(err, ErrUnsafeOutputPath) {
		t.Fatalf("WriteCategory error = %v, want ErrUnsafeOutputPath", err)
	}
}

func TestWriteCategoryOverwrites(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := WriteCategory(root, "toolkit", "toolkit", 0); err != nil {
		t.Fatalf("WriteCategory: %v", err)
	}

	if err := WriteCategory(root, "toolkit", "Toolkit", 1); err != nil {
		t.Fatalf("WriteCategory: %v", err)
	}

	got := readFile(t, filepath.Join(root, "toolkit", categoryFileName))
	if got != "label: \"Toolkit\"\nposition: 1\n" {
		t.Fatalf("descriptor = %q", got)
	}
}

func TestRemoveScope(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	stale := filepath.Join(root, "toolkit", "1.0.0", "class", "old.mdx")
	if err := os.MkdirAll(filepath.Dir(stale), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	if err := os.WriteFile(stale, []byte("old"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := RemoveScope(root, "toolkit/1.0.0"); err != nil {
		t.Fatalf("RemoveScope: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "toolkit", "1.0.0")); !os.IsNotExist(err) {
		t.Fatalf("scope still exists: %v", err)
	}

	if err := RemoveScope(root, "toolkit/9.9.9"); err != nil {
		t.Fatalf("RemoveScope missing dir: %v", err)
	}

	if err := RemoveScope(root, "."); !errors.Is(err, ErrUnsafeOutputPath) {
		t.Fatalf("RemoveScope root error = %v", err)
	}

	if err := RemoveScope(root, "../.."); !errors.Is(err, ErrUnsafeOutputPath) {
		t.Fatalf("RemoveScope escape error = %v", err)
	}
}

func TestDocumentPath(t *testing.T) {
	t.Parallel()

	doc := Document{Dir: "pkg/1.0.0/type-alias", Slug: "snowflake-id", Extension: ".mdx"}
	if got := doc.Path(); got != "pkg/1.0.0/type-alias/snowflake-id.mdx" {
		t.Fatalf("Path() = %q", got)
	}
}

// readFile loads a test output file and fails the test on read errors.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return string(data)
}
