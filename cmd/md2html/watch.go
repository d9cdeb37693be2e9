package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// ErrWatchTarget indicates watch was given something other than a directory.
var ErrWatchTarget = errors.New("watch target must be a directory")

// watchDebounce groups the bursts of events editors produce on save.
const watchDebounce = 150 * time.Millisecond

// runWatch converts every markdown file under a directory, then converts
// files again as they are created or written, until ctx is canceled.
func runWatch(ctx context.Context, args []string, env *Environment) error {
	s, err := newConvertSession("watch", args, env)
	if err != nil {
		return err
	}

	info, err := os.Stat(s.inputPath)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrWatchTarget, s.inputPath)
	}

	files, err := discoverFiles(s.inputPath, s.outputDir)
	if err != nil && !errors.Is(err, ErrNoMarkdownFiles) {
		return fmt.Errorf("discovering files: %w", err)
	}
	s.convert(ctx, files, env)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	if err := addDirsRecursive(w, s.inputPath); err != nil {
		return fmt.Errorf("watching %s: %w", s.inputPath, err)
	}
	if !s.flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Watching %s (Ctrl+C to stop)\n", s.inputPath)
	}

	return s.watchLoop(ctx, w, env, watchDebounce)
}

// watchLoop converts changed markdown files once events settle for debounce.
func (s *convertSession) watchLoop(ctx context.Context, w *fsnotify.Watcher, env *Environment, debounce time.Duration) error {
	pending := make(map[string]struct{})
	var timer *time.Timer
	var fire <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			fire = timer.C
			return
		}
		timer.Reset(debounce)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			s.logger.Debug("watcher stopped")
			return nil

		case <-fire:
			timer, fire = nil, nil
			s.convert(ctx, s.pendingFiles(pending), env)
			clear(pending)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addDirsRecursive(w, ev.Name); err != nil {
						s.logger.Warn("watching new directory failed", "path", ev.Name, "error", err)
					}
					_ = filepath.WalkDir(ev.Name, func(path string, d fs.DirEntry, err error) error {
						if err == nil && !d.IsDir() && fileutil.IsMarkdown(path) {
							pending[path] = struct{}{}
						}
						return nil
					})
					schedule()
					continue
				}
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 || !fileutil.IsMarkdown(ev.Name) {
				continue
			}
			s.logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			pending[ev.Name] = struct{}{}
			schedule()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// pendingFiles maps changed paths that still exist to their outputs, in
// path order.
func (s *convertSession) pendingFiles(pending map[string]struct{}) []FileToConvert {
	paths := make([]string, 0, len(pending))
	for path := range pending {
		if fileutil.FileExists(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	files := make([]FileToConvert, 0, len(paths))
	for _, path := range paths {
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, s.outputDir, s.inputPath),
		})
	}
	return files
}

// convert runs a batch and reports it. Failures are printed and do not
// stop watching.
func (s *convertSession) convert(ctx context.Context, files []FileToConvert, env *Environment) {
	if len(files) == 0 {
		return
	}
	workers := resolveWorkers(s.cfg.Output.Workers, len(files), runtime.GOMAXPROCS(0))
	results := convertBatch(ctx, s.parser, files, s.params, workers)
	printResults(results, s.flags.common.quiet, s.flags.common.verbose, env)
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
