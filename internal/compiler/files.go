package compiler

import (
	"context"
	"log"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ember-lang/ember/internal/config"
)

// CompileFiles compiles each path independently, at most cfg.Jobs at a time.
// Results are in the order of paths. The error is only for files that could
// not be read; diagnostics are reported through the results.
func CompileFiles(ctx context.Context, cfg *config.Config, logger *log.Logger, paths []string) ([]*Result, error) {
	if cfg == nil {
		cfg = config.New()
	}
	jobs := cfg.Jobs
	if jobs < 1 {
		jobs = 1
	}

	results := make([]*Result, len(paths))
	sem := make(chan struct{}, jobs)
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			src, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "read %s", path)
			}
			if err := gctx.Err(); err != nil {
				return err
			}

			// each result slot is written by exactly one goroutine
			results[i] = Compile(NewContext(path, cfg, logger), string(src))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
