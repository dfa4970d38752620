// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import (
	"path"
	"strings"
	"unicode"
)

const (
	// leafCategoryPosition is the kind category position inside a plain version directory.
	leafCategoryPosition = 1
	// groupedCategoryPosition is the kind category position inside a grouped package index.
	groupedCategoryPosition = 2
)

// Category is one kind-scoped navigation group in the output tree.
type Category struct {
	// Dir is the category directory relative to the output root.
	Dir string
	// Name is the machine slug of the kind segment.
	Name     string
	Label    string
	Position int
}

// Slug converts a symbol name into its document identifier: lowercase with
// every whitespace rune replaced by a hyphen. Collisions are not resolved.
func Slug(name string) string {
	lower := strings.ToLower(name)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}

		return r
	}, lower)
}

// categoryPosition returns the sidebar position of kind categories for a scope.
func categoryPosition(grouped bool) int {
	if grouped {
		return groupedCategoryPosition
	}

	return leafCategoryPosition
}

// categoryKey identifies one category within a render pass.
type categoryKey struct {
	scope string
	kind  Kind
}

// categoryAssigner records one category descriptor per (scope, kind) pair.
type categoryAssigner struct {
	seen       map[categoryKey]string
	categories []Category
}

// newCategoryAssigner creates an empty assigner for one render pass.
func newCategoryAssigner() *categoryAssigner {
	return &categoryAssigner{seen: make(map[categoryKey]string)}
}

// categoryFor ensures the category of kind under scope exists and returns its directory.
func (a *categoryAssigner) categoryFor(scope string, kind Kind, label string, position int) string {
	key := categoryKey{scope: scope, kind: kind}
	if dir, ok := a.seen[key]; ok {
		return dir
	}

	dir := path.Join(scope, string(kind))
	a.seen[key] = dir
	a.categories = append(a.categories, Category{
		Dir:      dir,
		Name:     string(kind),
		Label:    label,
		Position: position,
	})

	return dir
}
