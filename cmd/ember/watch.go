package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// settle is how long watch waits after the last change before re-checking,
// so that editors writing a file in several steps trigger one run.
const settle = 100 * time.Millisecond

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	cf := newCheckFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: ember watch [options] <files>\n")
		return 2
	}

	cfg, err := cf.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ember: %v\n", err)
		return 2
	}
	logger := newLogger(true)

	paths := make([]string, fs.NArg())
	watched := make(map[string]bool)
	for i, p := range fs.Args() {
		abs, err := filepath.Abs(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ember: %v\n", errors.Wrapf(err, "resolve %s", p))
			return 1
		}
		paths[i] = p
		watched[abs] = true
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ember: %v\n", errors.Wrap(err, "start watcher"))
		return 1
	}
	defer w.Close()

	// Editors often replace files by rename, so watch the directories.
	dirs := make(map[string]bool)
	for abs := range watched {
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.Add(dir); err != nil {
			fmt.Fprintf(os.Stderr, "ember: %v\n", errors.Wrapf(err, "watch %s", dir))
			return 1
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run := func() {
		status := checkFiles(ctx, cfg, logger, paths)
		if status == 0 {
			logger.Printf("ok, watching %d file(s)", len(paths))
		} else {
			logger.Printf("errors found, watching %d file(s)", len(paths))
		}
	}
	run()

	timer := time.NewTimer(settle)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return 0
		case ev, ok := <-w.Events:
			if !ok {
				return 0
			}
			if !watched[ev.Name] && !watched[absPath(ev.Name)] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Printf("%s changed", ev.Name)
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return 0
			}
			logger.Printf("watch error: %v", err)
		case <-timer.C:
			run()
		}
	}
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
