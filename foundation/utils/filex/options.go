// File: options.go
// Title: Scanner Options
// Description: Options shared by Scanner and Watcher, their defaults and
//              validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package filex

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	mdwerror "github.com/msto63/fixstr/foundation/core/error"
	mdwerrors "github.com/msto63/fixstr/foundation/core/errors"
)

// Defaults for document scanning
var (
	DefaultExtensions = []string{".doc", ".docx", ".txt"}
	DefaultIgnoreDirs = []string{"Windows", "Program Files"}
)

// DefaultDebounce is the quiet period after which a changed file is reported.
const DefaultDebounce = 200 * time.Millisecond

// Options configures which files are reported.
type Options struct {
	// Extensions is the set of accepted suffixes. Matching is
	// case-insensitive and the leading dot is optional.
	Extensions []string `json:"extensions"`

	// IgnoreDirs holds directory base names whose subtrees are never
	// entered. Names compare case-insensitively.
	IgnoreDirs []string `json:"ignore_dirs"`

	// MaxDepth limits the depth of reported files; 0 means unlimited and
	// 1 reports only files directly inside the root.
	MaxDepth int `json:"max_depth"`

	// FollowSymlinks enters symlinked directories. Symlinked files are
	// reported either way.
	FollowSymlinks bool `json:"follow_symlinks"`

	IncludeHidden bool          `json:"include_hidden"`
	Debounce      time.Duration `json:"debounce"`
}

// DefaultOptions returns the document finder defaults.
func DefaultOptions() Options {
	return Options{
		Extensions:    append([]string(nil), DefaultExtensions...),
		IgnoreDirs:    append([]string(nil), DefaultIgnoreDirs...),
		IncludeHidden: true,
		Debounce:      DefaultDebounce,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Extensions, validation.Required, validation.Each(validation.Required)),
		validation.Field(&o.IgnoreDirs, validation.Each(validation.Required)),
		validation.Field(&o.MaxDepth, validation.Min(0)),
		validation.Field(&o.Debounce, validation.Min(time.Duration(0))),
	)
	if err != nil {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleFilex).
			Operation("validate_options").
			Message("invalid scanner options").
			Cause(err).
			Code(mdwerror.CodeValidationFailed).
			Severity(mdwerror.SeverityLow).
			Build()
	}
	return nil
}

// matcher is the compiled form of Options
type matcher struct {
	exts    map[string]struct{}
	ignores map[string]struct{}
	opts    Options
}

func newMatcher(opts Options) *matcher {
	m := &matcher{
		exts:    make(map[string]struct{}, len(opts.Extensions)),
		ignores: make(map[string]struct{}, len(opts.IgnoreDirs)),
		opts:    opts,
	}
	for _, ext := range opts.Extensions {
		m.exts[NormalizeExt(ext)] = struct{}{}
	}
	for _, dir := range opts.IgnoreDirs {
		m.ignores[strings.ToLower(dir)] = struct{}{}
	}
	return m
}

func (m *matcher) acceptsFile(name string) bool {
	if !m.opts.IncludeHidden && isHidden(name) {
		return false
	}
	_, ok := m.exts[extOf(name)]
	return ok
}

func (m *matcher) entersDir(name string) bool {
	if !m.opts.IncludeHidden && isHidden(name) {
		return false
	}
	_, ignored := m.ignores[strings.ToLower(name)]
	return !ignored
}

// descends reports whether a directory whose entries have the given depth
// may be read
func (m *matcher) descends(depth int) bool {
	return m.opts.MaxDepth == 0 || depth < m.opts.MaxDepth
}

func isHidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
