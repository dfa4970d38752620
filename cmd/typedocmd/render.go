// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/typedocmd"
)

const (
	// packageCategoryPosition places package directories first in the sidebar.
	packageCategoryPosition = 0
	// nestedCategoryPosition is used for group and version directories.
	nestedCategoryPosition = 1
	// templateFileSuffix is expected on custom kind templates in a template directory.
	templateFileSuffix = ".md.gotmpl"
)

// renderFlags groups flags shared by render and watch commands.
type renderFlags struct {
	Config       string `short:"c" long:"config" env:"TYPEDOCMD_CONFIG" description:"Path to YAML config file"`
	Output       string `short:"o" long:"output" description:"Output root directory (default: Documentation)"`
	Package      string `short:"p" long:"package" description:"Package directory name under output root" required:"yes"`
	Group        string `short:"g" long:"group" description:"Optional group directory between package and version"`
	Jobs         int    `short:"j" long:"jobs" description:"Number of inputs rendered in parallel (default: CPU count)"`
	TemplateDir  string `short:"t" long:"template-dir" description:"Directory with custom <kind>.md.gotmpl templates"`
	Extension    string `short:"e" long:"extension" description:"Document file extension (default: .mdx)"`
	CodeLanguage string `long:"code-language" description:"Language tag of fenced code blocks (default: typescript)"`
	ListMarker   string `short:"l" long:"list-marker" description:"Unordered list marker" choice:"-" choice:"*"`
	WrapWidth    int    `short:"w" long:"wrap" description:"Wrap width for description paragraphs (0 disables)"`
	LogLevel     string `long:"log-level" description:"Log level: debug, info, warn, error"`
}

// renderArgs holds positional project inputs.
type renderArgs struct {
	Inputs []string `positional-arg-name:"input" description:"Project JSON files; file name without .json is the version" required:"1"`
}

// renderCommand renders project files into the output tree once.
type renderCommand struct {
	runner *cliRunner

	Flags renderFlags `group:"Render"`
	Args  renderArgs  `positional-args:"yes"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	session, err := command.runner.newRenderSession(command.Flags, command.Args.Inputs)
	if err != nil {
		return err
	}

	return session.renderAll(context.Background())
}

// renderJob is one input file and its version scope.
type renderJob struct {
	input   string
	version string
	scope   string
}

// renderSession holds resolved settings shared by all render passes of one command.
type renderSession struct {
	cfg     *config
	logger  *slog.Logger
	options typedocmd.Options
	pkg     string
	group   string
	jobs    []renderJob
}

// newRenderSession merges config file and flags, then plans one job per input.
func (runner *cliRunner) newRenderSession(flagValues renderFlags, inputs []string) (*renderSession, error) {
	cfg, err := resolveConfig(flagValues)
	if err != nil {
		return nil, err
	}

	pkg := strings.TrimSpace(flagValues.Package)
	if err := validateScopeSegment("package", pkg); err != nil {
		return nil, err
	}

	group := strings.TrimSpace(flagValues.Group)
	if group != "" {
		if err := validateScopeSegment("group", group); err != nil {
			return nil, err
		}
	}

	jobs, err := planJobs(pkg, group, inputs)
	if err != nil {
		return nil, err
	}

	templates, err := loadTemplateDir(cfg.TemplateDir)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(runner.stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	references := typedocmd.DefaultReferences().Merge(cfg.References, cfg.UnknownReferences, cfg.PackageSearch)

	return &renderSession{
		cfg:    cfg,
		logger: logger,
		pkg:    pkg,
		group:  group,
		jobs:   jobs,
		options: typedocmd.Options{
			Logger:       logger,
			References:   references,
			Templates:    templates,
			Extension:    cfg.Extension,
			CodeLanguage: cfg.CodeLanguage,
			ListMarker:   cfg.ListMarker,
			WrapWidth:    cfg.WrapWidth,
			Grouped:      group != "",
		},
	}, nil
}

// resolveConfig loads the optional config file and lays non-zero flags over it.
func resolveConfig(flagValues renderFlags) (*config, error) {
	cfg := defaultConfig()
	if configPath := strings.TrimSpace(flagValues.Config); configPath != "" {
		if err := loadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	}

	overrideString(&cfg.Output, flagValues.Output)
	overrideString(&cfg.TemplateDir, flagValues.TemplateDir)
	overrideString(&cfg.Extension, flagValues.Extension)
	overrideString(&cfg.CodeLanguage, flagValues.CodeLanguage)
	overrideString(&cfg.ListMarker, flagValues.ListMarker)
	overrideString(&cfg.LogLevel, flagValues.LogLevel)
	if flagValues.Jobs != 0 {
		cfg.Jobs = flagValues.Jobs
	}

	if flagValues.WrapWidth != 0 {
		cfg.WrapWidth = flagValues.WrapWidth
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return cfg, nil
}

// overrideString replaces target with value when value is not blank.
func overrideString(target *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*target = value
	}
}

// validateScopeSegment rejects directory names that would escape or nest scopes.
func validateScopeSegment(label, value string) error {
	switch {
	case value == "":
		return fmt.Errorf("%s name is required", label)
	case value == "." || value == "..":
		return fmt.Errorf("invalid %s name %q", label, value)
	case strings.ContainsAny(value, `/\`):
		return fmt.Errorf("%s name %q must not contain path separators", label, value)
	}

	return nil
}

// planJobs derives one version scope per input and rejects duplicate versions.
func planJobs(pkg, group string, inputs []string) ([]renderJob, error) {
	jobs := make([]renderJob, 0, len(inputs))
	seen := make(map[string]string, len(inputs))

	for _, input := range inputs {
		input = strings.TrimSpace(input)
		version := versionName(input)
		if err := validateScopeSegment("version", version); err != nil {
			return nil, fmt.Errorf("input %q: %w", input, err)
		}

		if previous, ok := seen[version]; ok {
			return nil, fmt.Errorf("inputs %q and %q both map to version %q", previous, input, version)
		}

		seen[version] = input
		jobs = append(jobs, renderJob{
			input:   input,
			version: version,
			scope:   path.Join(pkg, group, version),
		})
	}

	return jobs, nil
}

// versionName returns the input file name without its .json suffix.
func versionName(input string) string {
	return strings.TrimSuffix(filepath.Base(input), ".json")
}

// loadTemplateDir reads <kind>.md.gotmpl overrides from dir; missing kinds keep built-ins.
func loadTemplateDir(dir string) (map[typedocmd.Kind]string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("read template dir %q: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("template dir %q is not a directory", dir)
	}

	templates := make(map[typedocmd.Kind]string)
	for _, kind := range typedocmd.Kinds() {
		data, err := os.ReadFile(filepath.Join(dir, string(kind)+templateFileSuffix))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("read template for %s: %w", kind, err)
		}

		templates[kind] = string(data)
	}

	return templates, nil
}

// renderAll writes parent categories and renders every job with bounded parallelism.
func (session *renderSession) renderAll(ctx context.Context) error {
	if err := session.writeParentCategories(); err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(session.cfg.Jobs)

	for _, job := range session.jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			return session.render(job)
		})
	}

	return g.Wait()
}

// writeParentCategories writes package and optional group descriptors.
func (session *renderSession) writeParentCategories() error {
	root := session.cfg.Output
	if err := typedocmd.WriteCategory(root, session.pkg, session.pkg, packageCategoryPosition); err != nil {
		return err
	}

	if session.group == "" {
		return nil
	}

	return typedocmd.WriteCategory(root, path.Join(session.pkg, session.group), session.group, nestedCategoryPosition)
}

// render decodes one input, clears its version directory and writes fresh output.
func (session *renderSession) render(job renderJob) error {
	project, err := typedocmd.DecodeProjectFile(job.input)
	if err != nil {
		return fmt.Errorf("input %q: %w", job.input, err)
	}

	options := session.options
	options.Scope = job.scope

	out, err := typedocmd.Render(project, options)
	if err != nil {
		return fmt.Errorf("render %q: %w", job.input, err)
	}

	root := session.cfg.Output
	if err := typedocmd.RemoveScope(root, job.scope); err != nil {
		return err
	}

	if err := typedocmd.WriteCategory(root, job.scope, job.version, nestedCategoryPosition); err != nil {
		return err
	}

	if err := out.WriteDir(root); err != nil {
		return err
	}

	session.logger.Info("rendered",
		slog.String("input", job.input),
		slog.String("scope", job.scope),
		slog.Int("documents", len(out.Documents)))

	return nil
}
