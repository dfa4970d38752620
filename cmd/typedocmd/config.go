// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"runtime"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// extensionPattern matches document file extensions such as ".mdx" or ".md".
var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)

// validator is implemented by config structs checked after loading.
type validator interface {
	Validate() error
}

// config holds render settings loaded from YAML and overridden by flags.
type config struct {
	LogLevel     string `yaml:"log_level"`
	Output       string `yaml:"output"`
	TemplateDir  string `yaml:"template_dir"`
	Extension    string `yaml:"extension"`
	CodeLanguage string `yaml:"code_language"`
	ListMarker   string `yaml:"list_marker"`
	WrapWidth    int    `yaml:"wrap_width"`
	Jobs         int    `yaml:"jobs"`

	// References maps type names to external documentation URLs.
	References map[string]string `yaml:"references"`
	// UnknownReferences lists names rendered as plain code without a warning.
	UnknownReferences []string `yaml:"unknown_references"`
	// PackageSearch maps package names to documentation search URL prefixes.
	PackageSearch map[string]string `yaml:"package_search"`
}

// defaultConfig returns settings used when no config file is given.
func defaultConfig() *config {
	return &config{
		LogLevel:     "info",
		Output:       "Documentation",
		Extension:    ".mdx",
		CodeLanguage: "typescript",
		ListMarker:   "*",
		Jobs:         runtime.NumCPU(),
	}
}

// Validate validates the render configuration.
func (c *config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required, validation.By(validLogLevel)),
		validation.Field(&c.Output, validation.Required),
		validation.Field(&c.Extension, validation.Required, validation.Match(extensionPattern)),
		validation.Field(&c.CodeLanguage, validation.Required),
		validation.Field(&c.ListMarker, validation.Required, validation.In("*", "-")),
		validation.Field(&c.WrapWidth, validation.Min(0)),
		validation.Field(&c.Jobs, validation.Required, validation.Min(1)),
		validation.Field(&c.References, validation.Each(validation.Required)),
		validation.Field(&c.UnknownReferences, validation.Each(validation.Required)),
		validation.Field(&c.PackageSearch, validation.Each(validation.Required)),
	)
}

// Level returns the parsed log level; invalid values fall back to info.
func (c *config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// validLogLevel accepts slog level names such as "debug" or "warn".
func validLogLevel(value any) error {
	name, _ := value.(string)

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return errors.New("must be one of debug, info, warn, error")
	}

	return nil
}

// loadConfig reads a YAML file with environment variable expansion into target.
func loadConfig[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", filename, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), target); err != nil {
		return fmt.Errorf("parse config file %s: %w", filename, err)
	}

	if v, ok := any(target).(validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}

	return nil
}
