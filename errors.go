// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import "errors"

var (
	// ErrReadProjectFile is returned when project file loading fails.
	ErrReadProjectFile = errors.New("read project file")
	// ErrDecodeProject is returned when project JSON decoding fails.
	ErrDecodeProject = errors.New("decode project")
	// ErrNilProject is returned when render is called without a project.
	ErrNilProject = errors.New("project is nil")
	// ErrExecuteDocumentTemplate is returned when document template execution fails.
	ErrExecuteDocumentTemplate = errors.New("execute document template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template kind is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseDocumentTemplate is returned when document template parsing fails.
	ErrParseDocumentTemplate = errors.New("parse document template")
	// ErrEncodeFrontMatter is returned when front matter YAML encoding fails.
	ErrEncodeFrontMatter = errors.New("encode front matter")
	// ErrWriteOutput is returned when documents or category descriptors cannot be written.
	ErrWriteOutput = errors.New("write output")
	// ErrUnsafeOutputPath is returned when an output path escapes the output root.
	ErrUnsafeOutputPath = errors.New("output path escapes root")
	// ErrMissingSource is returned when an input entry has no source location to read from.
	ErrMissingSource = errors.New("missing source location")
)
