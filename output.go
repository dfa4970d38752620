// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// categoryFileName is the category descriptor file written into every category directory.
const categoryFileName = "_category_.yml"

// Output is the result of one render pass.
type Output struct {
	// Categories lists one descriptor per materialized (scope, kind) pair in render order.
	Categories []Category
	// Documents lists rendered documents in render order.
	Documents []Document
}

// Document is one rendered symbol page.
type Document struct {
	// Dir is the category directory relative to the output root.
	Dir       string
	Slug      string
	Extension string
	Kind      Kind
	Name      string
	Position  int
	Content   string
}

// Path returns the document file path relative to the output root.
func (d Document) Path() string {
	return path.Join(d.Dir, d.Slug+d.Extension)
}

// WriteDir persists category descriptors and documents under root.
// Every file is written atomically; paths escaping root are rejected.
func (o *Output) WriteDir(root string) error {
	if o == nil {
		return nil
	}

	for _, category := range o.Categories {
		if err := WriteCategory(root, category.Dir, category.Label, category.Position); err != nil {
			return err
		}
	}

	for _, doc := range o.Documents {
		target, err := safeOutputPath(root, doc.Path())
		if err != nil {
			return err
		}

		if err := writeFileAtomic(target, []byte(doc.Content)); err != nil {
			return fmt.Errorf("%w %s: %w", ErrWriteOutput, doc.Path(), err)
		}
	}

	return nil
}

// WriteCategory writes the _category_.yml descriptor of dir under root.
// It is used for kind categories and for parent package, group and version directories.
func WriteCategory(root, dir, label string, position int) error {
	data, err := categoryDescriptor(label, position)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeFrontMatter, err)
	}

	target, err := safeOutputPath(root, path.Join(filepath.ToSlash(dir), categoryFileName))
	if err != nil {
		return err
	}

	if err := writeFileAtomic(target, data); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteOutput, dir, err)
	}

	return nil
}

// RemoveScope deletes dir under root with everything inside. Missing directories are not an error.
func RemoveScope(root, dir string) error {
	target, err := safeOutputPath(root, filepath.ToSlash(dir))
	if err != nil {
		return err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	if target == absRoot {
		return fmt.Errorf("%w: refusing to remove output root %s", ErrUnsafeOutputPath, root)
	}

	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteOutput, dir, err)
	}

	return nil
}

// safeOutputPath resolves rel against root and rejects results outside of root.
func safeOutputPath(root, rel string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeOutputPath, rel)
	}

	joined := filepath.Join(absRoot, cleaned)
	if joined != absRoot && !strings.HasPrefix(joined, absRoot+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeOutputPath, rel)
	}

	return joined, nil
}

// writeFileAtomic writes content through a temp file, fsync and rename.
func writeFileAtomic(target string, content []byte) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".typedocmd-tmp-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return err
	}

	if err := tmp.Sync(); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tmpName, target); err != nil {
		return err
	}

	success = true
	return nil
}
