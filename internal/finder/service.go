// ============================================================================
// fixstr - Fixed-length string toolkit
// ============================================================================
//
// Package:     finder
// Description: Document finder service binding config, logging and filex
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package finder

import (
	"context"

	mdwlog "github.com/msto63/fixstr/foundation/core/log"
	"github.com/msto63/fixstr/foundation/utils/filex"
	"github.com/msto63/fixstr/pkg/core/config"
	"github.com/msto63/fixstr/pkg/core/logging"
)

// Overrides replace config values when set. They come from command flags.
type Overrides struct {
	Extensions []string
	IgnoreDirs []string
	MaxDepth   *int
}

// Config holds service configuration
type Config struct {
	App       *config.Config
	Overrides Overrides
	Logger    *mdwlog.Logger
}

// Sink receives matches found in watch mode. A non-nil error stops the
// watch and is returned from Watch.
type Sink func(m filex.Match) error

// Service is the document finder
type Service struct {
	opts    filex.Options
	roots   []string
	scanner *filex.Scanner
	logger  *mdwlog.Logger
}

// NewService creates a new finder service. A nil App uses the default
// configuration.
func NewService(cfg Config) (*Service, error) {
	app := cfg.App
	if app == nil {
		app = config.Default()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.NewNop()
	}
	logger = logger.WithName("finder")

	opts := app.FinderOptions()
	if len(cfg.Overrides.Extensions) > 0 {
		opts.Extensions = cfg.Overrides.Extensions
	}
	if cfg.Overrides.IgnoreDirs != nil {
		opts.IgnoreDirs = cfg.Overrides.IgnoreDirs
	}
	if cfg.Overrides.MaxDepth != nil {
		opts.MaxDepth = *cfg.Overrides.MaxDepth
	}

	scanner, err := filex.NewScanner(opts, logger)
	if err != nil {
		return nil, err
	}

	return &Service{
		opts:    opts,
		roots:   append([]string(nil), app.Finder.Roots...),
		scanner: scanner,
		logger:  logger,
	}, nil
}

// Options returns the effective scanner options
func (s *Service) Options() filex.Options {
	return s.opts
}

// Roots returns roots, or the configured roots when roots is empty
func (s *Service) Roots(roots []string) []string {
	if len(roots) > 0 {
		return roots
	}
	return s.roots
}

// Find scans the roots concurrently and returns all matches sorted by path
func (s *Service) Find(ctx context.Context, roots ...string) ([]filex.Match, error) {
	roots = s.Roots(roots)

	timer := s.logger.StartTimer("find").
		WithLevel(mdwlog.LevelInfo).
		WithField("roots", len(roots))

	matches, err := filex.Collect(ctx, tracedScanner{s.scanner, s.logger}, roots...)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.WithField("matches", len(matches)).Stop()
	return matches, nil
}

// Watch forwards new matches below roots to sink until ctx is done. It
// returns nil on cancellation.
func (s *Service) Watch(ctx context.Context, sink Sink, roots ...string) error {
	return s.watch(ctx, sink, false, s.Roots(roots))
}

// FindAndWatch reports the existing matches below roots to sink, then
// keeps forwarding new ones like Watch. The watcher is running before the
// scan starts, so files created during the scan are not lost.
func (s *Service) FindAndWatch(ctx context.Context, sink Sink, roots ...string) error {
	return s.watch(ctx, sink, true, s.Roots(roots))
}

func (s *Service) watch(ctx context.Context, sink Sink, scan bool, roots []string) error {
	w, err := filex.NewWatcher(s.opts, s.logger)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx, roots...); err != nil {
		return err
	}

	forwarded := 0
	defer func() {
		s.logger.Info("watch ended", mdwlog.Fields{"forwarded": forwarded})
	}()

	send := func(m filex.Match) error {
		if err := sink(m); err != nil {
			s.logger.ErrorWithErr("forwarding match failed", err, mdwlog.Field("path", m.Path))
			return err
		}
		forwarded++
		return nil
	}

	// files seen by the scan, so their creation events are not reported
	// twice
	var seen map[string]filex.Match
	if scan {
		matches, err := s.Find(ctx, roots...)
		if err != nil {
			return err
		}
		seen = make(map[string]filex.Match, len(matches))
		for _, m := range matches {
			seen[m.Path] = m
			if err := send(m); err != nil {
				return err
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-w.Events():
			if !ok {
				return nil
			}
			if prev, ok := seen[m.Path]; ok {
				delete(seen, m.Path)
				if prev.Size == m.Size && prev.ModTime.Equal(m.ModTime) {
					continue
				}
			}
			if err := send(m); err != nil {
				return err
			}
		}
	}
}

// tracedScanner gives every root its own request ID, so the warnings of
// concurrently scanned roots can be told apart
type tracedScanner struct {
	scanner *filex.Scanner
	logger  *mdwlog.Logger
}

func (t tracedScanner) Enumerate(ctx context.Context, root string, fn filex.VisitFunc) error {
	logger := t.logger.WithRequestID(logging.NewRunID()).WithField("root", root)
	logger.Debug("scanning root")
	return t.scanner.WithLogger(logger).Enumerate(ctx, root, fn)
}
