package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/milden6/wordgraph"
)

// loadDictionaries loads every word list on its own goroutine, each into
// its own dictionary, then merges them in the order given. paths must not
// be empty.
func loadDictionaries(ctx context.Context, logger *zap.Logger, paths []string, opts []wordgraph.Option) (*wordgraph.Dictionary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	dicts := make([]*wordgraph.Dictionary, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := wordgraph.LoadFile(path, opts...)
			if err != nil {
				return err
			}
			dicts[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := dicts[0]
	for i, d := range dicts[1:] {
		if err := merged.Merge(d); err != nil {
			return nil, fmt.Errorf("merge %s: %w", paths[i+1], err)
		}
	}

	logger.Info("dictionary ready",
		zap.Int("lists", len(paths)),
		zap.Int("words", merged.Len()),
		zap.Int("nodes", merged.NumNodes()),
		zap.Duration("elapsed", time.Since(start)))

	return merged, nil
}
