// File: scanner.go
// Title: Recursive Document Scanner
// Description: Enumerator interface and the Scanner that walks a directory
//              tree reporting files whose extension is accepted. Ignored
//              directories are pruned before they are read.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Symlinked files are reported without following,
//                      WithLogger for per-root loggers

package filex

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/fixstr/foundation/core/error"
	mdwerrors "github.com/msto63/fixstr/foundation/core/errors"
	mdwlog "github.com/msto63/fixstr/foundation/core/log"
)

// SkipDir may be returned by a VisitFunc to skip the remaining entries of
// the directory holding the visited file, subdirectories included.
var SkipDir = errors.New("skip this directory")

// VisitFunc is called for every reported file. Returning SkipDir prunes
// the current directory; any other error aborts the enumeration and is
// returned unchanged.
type VisitFunc func(m Match) error

// Enumerator reports matching files below root.
type Enumerator interface {
	Enumerate(ctx context.Context, root string, fn VisitFunc) error
}

// Scanner is the filesystem Enumerator. It is safe for concurrent use.
type Scanner struct {
	match  *matcher
	logger *mdwlog.Logger
}

// NewScanner validates opts and returns a Scanner. A nil logger discards
// warnings.
func NewScanner(opts Options, logger *mdwlog.Logger) (*Scanner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = mdwlog.NewNop()
	}
	return &Scanner{
		match:  newMatcher(opts),
		logger: logger.WithName("filex"),
	}, nil
}

// Options returns the options the scanner was built with.
func (s *Scanner) Options() Options {
	return s.match.opts
}

// WithLogger returns a copy of s that writes its warnings to logger.
func (s *Scanner) WithLogger(logger *mdwlog.Logger) *Scanner {
	if logger == nil {
		logger = mdwlog.NewNop()
	}
	return &Scanner{
		match:  s.match,
		logger: logger.WithName("filex"),
	}
}

// Enumerate walks root in lexical order. A missing or unreadable root is
// an error; unreadable subdirectories are logged and skipped. The context
// is checked before every entry.
func (s *Scanner) Enumerate(ctx context.Context, root string, fn VisitFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		return mdwerrors.FromFS(mdwerrors.ModuleFilex, "enumerate", root, err)
	}
	if !info.IsDir() {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleFilex).
			Operation("enumerate").
			Messagef("not a directory: %s", root).
			Code(mdwerror.CodeInvalidPath).
			Detail("path", root).
			Severity(mdwerror.SeverityLow).
			Build()
	}

	w := &walk{
		scanner: s,
		fn:      fn,
		visited: make(map[string]struct{}),
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		w.visited[resolved] = struct{}{}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return mdwerrors.FromFS(mdwerrors.ModuleFilex, "enumerate", root, err)
	}
	return w.entries(ctx, root, entries, 0)
}

// walk holds the state of one Enumerate call
type walk struct {
	scanner *Scanner
	fn      VisitFunc
	visited map[string]struct{}
}

func (w *walk) dir(ctx context.Context, dir string, depth int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.scanner.logger.WarnWithErr("skipping unreadable directory", err, mdwlog.Field("path", dir))
		return nil
	}
	return w.entries(ctx, dir, entries, depth)
}

func (w *walk) entries(ctx context.Context, dir string, entries []fs.DirEntry, depth int) error {
	m := w.scanner.match

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()
		path := filepath.Join(dir, name)
		mode := entry.Type()

		var info fs.FileInfo
		if mode&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				w.scanner.logger.WarnWithErr("skipping broken symlink", err, mdwlog.Field("path", path))
				continue
			}
			// linked files are always reported, linked directories only
			// entered when following
			if target.IsDir() && !m.opts.FollowSymlinks {
				continue
			}
			info = target
			mode = target.Mode().Type()
		}

		switch {
		case mode.IsDir():
			if !m.entersDir(name) {
				w.scanner.logger.Debug("directory ignored", mdwlog.Field("path", path))
				continue
			}
			if !m.descends(depth + 1) {
				continue
			}
			if m.opts.FollowSymlinks && !w.markVisited(path) {
				continue
			}
			if err := w.dir(ctx, path, depth+1); err != nil {
				return err
			}

		case mode.IsRegular():
			if !m.acceptsFile(name) {
				continue
			}
			if info == nil {
				var err error
				if info, err = entry.Info(); err != nil {
					w.scanner.logger.WarnWithErr("skipping unreadable file", err, mdwlog.Field("path", path))
					continue
				}
			}
			err := w.fn(Match{
				Path:    path,
				Name:    name,
				Ext:     extOf(name),
				Size:    info.Size(),
				ModTime: info.ModTime(),
				Depth:   depth,
			})
			if errors.Is(err, SkipDir) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// markVisited records the resolved path of dir and reports whether it was
// new. Directory cycles through symlinks end here.
func (w *walk) markVisited(dir string) bool {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return false
	}
	if _, seen := w.visited[resolved]; seen {
		return false
	}
	w.visited[resolved] = struct{}{}
	return true
}

// Walk is a convenience wrapper that builds a Scanner and enumerates root.
func Walk(ctx context.Context, root string, opts Options, fn VisitFunc) error {
	s, err := NewScanner(opts, nil)
	if err != nil {
		return err
	}
	return s.Enumerate(ctx, root, fn)
}
