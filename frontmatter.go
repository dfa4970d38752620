// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// frontMatterDelimiter opens and closes the document metadata block.
const frontMatterDelimiter = "---"

// documentFrontMatter renders the metadata block that starts every document.
// custom_edit_url is always null: generated pages must not be edited in place.
func documentFrontMatter(slug, name string, position int) (string, error) {
	node := yamlMapping(
		"id", yamlQuoted(slug),
		"title", yamlQuoted(name),
		"sidebar_label", yamlQuoted(name),
		"sidebar_position", yamlScalarNode("!!int", strconv.Itoa(position)),
		"custom_edit_url", yamlScalarNode("!!null", "null"),
	)

	data, err := marshalYAMLNode(node)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeFrontMatter, err)
	}

	return frontMatterDelimiter + "\n" + string(data) + frontMatterDelimiter, nil
}

// categoryDescriptor renders the _category_.yml content of one category directory.
func categoryDescriptor(label string, position int) ([]byte, error) {
	return marshalYAMLNode(yamlMapping(
		"label", yamlQuoted(label),
		"position", yamlScalarNode("!!int", strconv.Itoa(position)),
	))
}

// yamlMapping builds a mapping node from alternating key and value arguments, keeping order.
func yamlMapping(pairs ...any) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(pairs); i += 2 {
		key, _ := pairs[i].(string)
		value, _ := pairs[i+1].(*yaml.Node)
		node.Content = append(node.Content, yamlScalarNode("!!str", key), value)
	}

	return node
}

// yamlQuoted builds a double-quoted string scalar.
func yamlQuoted(value string) *yaml.Node {
	node := yamlScalarNode("!!str", value)
	node.Style = yaml.DoubleQuotedStyle
	return node
}

// yamlScalarNode builds one scalar node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

// marshalYAMLNode encodes one node with two-space indentation.
func marshalYAMLNode(node *yaml.Node) ([]byte, error) {
	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(node); err != nil {
		_ = encoder.Close()
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
