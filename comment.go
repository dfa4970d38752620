// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import "strings"

// noDescription is rendered in place of a missing description.
const noDescription = "No description provided."

// commentView holds the three independently rendered fragments of one comment.
type commentView struct {
	Description string
	See         string
	Examples    string
	// Level is the heading depth of the examples section.
	Level int
}

// HasExamples reports whether the examples fragment is non-empty; templates use it to gate headings.
func (c commentView) HasExamples() bool {
	return c.Examples != ""
}

// textStyle carries the prose formatting settings shared by all renderers.
type textStyle struct {
	wrapWidth    int
	listMarker   string
	codeLanguage string
}

// formatComment renders description, see-also and example fragments of a comment.
func formatComment(c Comment, style textStyle) commentView {
	return commentView{
		Description: formatDescription(c.Description, style),
		See:         formatSee(c.See, style),
		Examples:    formatExamples(c.Example, style),
	}
}

// formatDescription renders description text or the placeholder when it is absent or blank.
func formatDescription(description *string, style textStyle) string {
	if description == nil {
		return noDescription
	}

	text := formatDescriptionMarkdown(*description, style.wrapWidth, style.listMarker)
	if text == "" {
		return noDescription
	}

	return text
}

// formatSee renders see-also entries as an unordered list.
func formatSee(see []string, style textStyle) string {
	items := make([]string, 0, len(see))
	for _, entry := range see {
		entry = sanitizeText(entry)
		if entry == "" {
			continue
		}

		items = append(items, normalizeListMarker(style.listMarker)+" "+entry)
	}

	if len(items) == 0 {
		return ""
	}

	return "**See also:**\n\n" + strings.Join(items, "\n")
}

// formatExamples renders every code string of every example as its own fenced
// block; prose written between blocks stays a paragraph.
func formatExamples(examples [][]ExampleBlock, style textStyle) string {
	blocks := make([]string, 0, len(examples))
	for _, example := range examples {
		for _, block := range example {
			if rendered := formatExampleBlock(block, style); rendered != "" {
				blocks = append(blocks, rendered)
			}
		}
	}

	return strings.Join(blocks, "\n\n")
}

// formatExampleBlock renders one example part.
func formatExampleBlock(block ExampleBlock, style textStyle) string {
	if block.Prose {
		return formatDescriptionMarkdown(block.Text, style.wrapWidth, style.listMarker)
	}

	language := strings.TrimSpace(block.Language)
	if language == "" {
		language = style.codeLanguage
	}

	return fenceCode(block.Text, language)
}

// fenceCode wraps code into a fenced block. The fence is longer than any
// backtick run inside code so the block cannot close early.
func fenceCode(code, language string) string {
	code = strings.Trim(normalizeLineEndings(code), "\n")
	if strings.TrimSpace(code) == "" {
		return ""
	}

	fence := "```"
	if run := longestRun(code, '`'); run >= len(fence) {
		fence = strings.Repeat("`", run+1)
	}

	return fence + language + "\n" + code + "\n" + fence
}
