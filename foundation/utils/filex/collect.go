// File: collect.go
// Title: Concurrent Collection
// Description: Runs an Enumerator over several roots at once and gathers
//              the matches in path order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package filex

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Collect enumerates every root concurrently and returns all matches
// sorted by path. The first failing root cancels the others and its error
// is returned.
func Collect(ctx context.Context, e Enumerator, roots ...string) ([]Match, error) {
	var (
		mu      sync.Mutex
		matches []Match
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, root := range roots {
		root := root
		g.Go(func() error {
			return e.Enumerate(gctx, root, func(m Match) error {
				mu.Lock()
				matches = append(matches, m)
				mu.Unlock()
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Path < matches[j].Path
	})
	return matches, nil
}
