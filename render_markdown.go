// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import (
	"strings"
	"unicode/utf8"
)

// sanitizeText trims and squashes repeated whitespace in single-line fields.
func sanitizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// normalizeWrapWidth maps non-positive widths to "no wrapping".
func normalizeWrapWidth(value int) int {
	if value < 0 {
		return 0
	}

	return value
}

// normalizeListMarker validates list marker and falls back to default.
func normalizeListMarker(value string) string {
	switch strings.TrimSpace(value) {
	case "-":
		return "-"
	default:
		return defaultListMarker
	}
}

// formatDescriptionMarkdown joins and optionally wraps plain paragraphs while
// keeping fenced code, headings, quotes, tables and lists line by line.
func formatDescriptionMarkdown(text string, wrapWidth int, listMarker string) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	listMarker = normalizeListMarker(listMarker)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	paragraph := make([]string, 0, 4)
	var fence fenceTracker

	flushParagraph := func() {
		if len(paragraph) == 0 {
			return
		}

		out = append(out, wrapParagraph(strings.Join(paragraph, " "), wrapWidth)...)
		paragraph = paragraph[:0]
	}

	appendBlank := func() {
		if len(out) == 0 || out[len(out)-1] == "" {
			return
		}

		out = append(out, "")
	}

	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		switch {
		case fence.delimits(trimmed):
			flushParagraph()
			out = append(out, line)
		case fence.open():
			out = append(out, line)
		case trimmed == "":
			flushParagraph()
			appendBlank()
		case isMarkdownStructuredLine(line):
			flushParagraph()
			normalized := normalizeListLine(line, listMarker)
			if isListLine(normalized) && len(out) > 0 && !isMarkdownStructuredLine(out[len(out)-1]) {
				appendBlank()
			}

			out = append(out, normalized)
		default:
			paragraph = append(paragraph, trimmed)
		}
	}

	flushParagraph()
	return strings.Join(out, "\n")
}

// isListLine reports whether line is unordered or ordered markdown list item.
func isListLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return orderedListMarkerEnd(trimmed) > 0
}

// isMarkdownStructuredLine reports whether line must bypass paragraph joining.
func isMarkdownStructuredLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return true
	}

	for _, prefix := range []string{"#", ">", "|", "```", "---", "***", "___"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return isListLine(trimmed)
}

// normalizeListLine rewrites list markers and nesting indentation; other lines are returned unchanged.
func normalizeListLine(line, listMarker string) string {
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		if !isListLine(line) {
			return line
		}
	}

	trimmed := strings.TrimSpace(line)
	indent := strings.Repeat("  ", listIndentLevel(leadingIndentColumns(line)))

	if len(trimmed) >= 2 && strings.ContainsRune("-*+", rune(trimmed[0])) && (trimmed[1] == ' ' || trimmed[1] == '\t') {
		return indent + listMarker + " " + strings.TrimSpace(trimmed[1:])
	}

	if end := orderedListMarkerEnd(trimmed); end > 0 {
		return indent + trimmed[:end] + " " + strings.TrimSpace(trimmed[end:])
	}

	return line
}

// orderedListMarkerEnd returns the byte length of a leading "12." or "3)" marker followed by a space, or 0.
func orderedListMarkerEnd(line string) int {
	index := 0
	for index < len(line) && line[index] >= '0' && line[index] <= '9' {
		index++
	}

	if index == 0 || index+1 >= len(line) {
		return 0
	}

	if line[index] != '.' && line[index] != ')' {
		return 0
	}

	if line[index+1] != ' ' && line[index+1] != '\t' {
		return 0
	}

	return index + 1
}

// leadingIndentColumns returns visual indentation width for leading spaces and tabs.
func leadingIndentColumns(line string) int {
	columns := 0
	for _, r := range line {
		switch r {
		case ' ':
			columns++
		case '\t':
			columns += 4
		default:
			return columns
		}
	}

	return columns
}

// listIndentLevel maps raw indentation width to normalized list nesting level.
func listIndentLevel(columns int) int {
	if columns <= 1 {
		return 0
	}

	return columns / 2
}

// wrapParagraph wraps one plain paragraph to max rune width; width 0 keeps a single line.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	out := make([]string, 0, 2)
	current := words[0]
	currentLen := utf8.RuneCountInString(current)

	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}

		out = append(out, current)
		current = word
		currentLen = wordLen
	}

	return append(out, current)
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// normalizeMarkdownOutput collapses runs of blank lines left by omitted
// sections, outside fenced blocks, and trims trailing whitespace.
func normalizeMarkdownOutput(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))

	var fence fenceTracker
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if fence.delimits(trimmed) {
			out = append(out, line)
			continue
		}

		if !fence.open() && trimmed == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}

		out = append(out, line)
	}

	return strings.Trim(strings.Join(out, "\n"), "\n")
}

// escapeInline escapes backticks in inline code markdown segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// escapeTableCell keeps a rendered fragment on one table row.
func escapeTableCell(value string) string {
	value = strings.ReplaceAll(value, "|", "\\|")
	return sanitizeText(value)
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	return strings.TrimRight(value, "\n") + "\n"
}

// fenceTracker follows fenced code blocks line by line. A block closes only on
// a bare run of the opening character at least as long as the opening run.
type fenceTracker struct {
	char   byte
	length int
}

// delimits reports whether trimmed opens or closes a fenced block and updates state.
func (f *fenceTracker) delimits(trimmed string) bool {
	char, length, info := fenceRun(trimmed)
	if length == 0 {
		return false
	}

	if f.length == 0 {
		f.char, f.length = char, length
		return true
	}

	if char == f.char && length >= f.length && info == "" {
		f.length = 0
		return true
	}

	return false
}

// open reports whether the tracker is inside a fenced block.
func (f *fenceTracker) open() bool {
	return f.length > 0
}

// fenceRun returns the fence character, run length and info string of a fence line.
// Length is 0 when trimmed is not a fence line.
func fenceRun(trimmed string) (byte, int, string) {
	if len(trimmed) < 3 || (trimmed[0] != '`' && trimmed[0] != '~') {
		return 0, 0, ""
	}

	char := trimmed[0]
	length := 0
	for length < len(trimmed) && trimmed[length] == char {
		length++
	}

	if length < 3 {
		return 0, 0, ""
	}

	info := strings.TrimSpace(trimmed[length:])
	if char == '`' && strings.Contains(info, "`") {
		return 0, 0, ""
	}

	return char, length, info
}

// longestRun returns the length of the longest run of char in text.
func longestRun(text string, char byte) int {
	longest, current := 0, 0
	for i := 0; i < len(text); i++ {
		if text[i] != char {
			current = 0
			continue
		}

		current++
		longest = max(longest, current)
	}

	return longest
}
