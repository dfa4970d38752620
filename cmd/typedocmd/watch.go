// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce delays re-rendering until an input stops changing.
const watchDebounce = 200 * time.Millisecond

// watchCommand renders inputs once and re-renders them on change.
type watchCommand struct {
	runner *cliRunner

	Flags renderFlags `group:"Render"`
	Args  renderArgs  `positional-args:"yes"`
}

// Execute runs watch subcommand until interrupted.
func (command *watchCommand) Execute(_ []string) error {
	session, err := command.runner.newRenderSession(command.Flags, command.Args.Inputs)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.renderAll(ctx); err != nil {
		return err
	}

	return session.watch(ctx, nil)
}

// watch re-renders changed inputs until ctx is cancelled.
// Parent directories are watched because editors often replace files on save.
// onRender, when set, is called after every watcher-driven render attempt.
func (session *renderSession) watch(ctx context.Context, onRender func(input string, err error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	byPath := make(map[string]renderJob, len(session.jobs))
	dirs := make(map[string]struct{})
	for _, job := range session.jobs {
		abs, err := filepath.Abs(job.input)
		if err != nil {
			return fmt.Errorf("resolve input %q: %w", job.input, err)
		}

		byPath[abs] = job
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %q: %w", dir, err)
		}
	}

	session.logger.Info("watcher: started", slog.Int("inputs", len(byPath)))

	pending := make(map[string]renderJob)
	var timer *time.Timer
	var timerCh <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(watchDebounce)
			timerCh = timer.C
			return
		}

		timer.Reset(watchDebounce)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			session.logger.Info("watcher: stopped")
			return nil

		case <-timerCh:
			for key, job := range pending {
				delete(pending, key)

				renderErr := session.render(job)
				if renderErr != nil {
					session.logger.Error("watcher: render failed",
						slog.String("input", job.input),
						slog.String("error", renderErr.Error()))
				}

				if onRender != nil {
					onRender(job.input, renderErr)
				}
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			job, tracked := byPath[filepath.Clean(ev.Name)]
			if !tracked {
				continue
			}

			session.logger.Debug("watcher: input changed",
				slog.String("input", job.input),
				slog.String("op", ev.Op.String()))
			pending[job.scope] = job
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}

			session.logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
