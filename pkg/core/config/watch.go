// ============================================================================
// fixstr - Fixed-length string toolkit
// ============================================================================
//
// Package:     config
// Description: Reloads the configuration file when it changes on disk
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/fixstr/foundation/core/error"
	mdwerrors "github.com/msto63/fixstr/foundation/core/errors"
)

// ReloadDebounce is the quiet period before a changed file is reloaded
const ReloadDebounce = 100 * time.Millisecond

// ChangeFunc receives the reloaded configuration, or the error that
// prevented the reload
type ChangeFunc func(cfg *Config, err error)

// Watch blocks until ctx is done and calls onChange each time the file at
// path is written, created or replaced. The parent directory is watched so
// that editors which replace the file on save are handled.
func Watch(ctx context.Context, path string, onChange ChangeFunc) error {
	path = filepath.Clean(path)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return watchError(path, err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return watchError(path, err)
	}

	timer := time.NewTimer(ReloadDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				timer.Reset(ReloadDebounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			onChange(nil, watchError(path, err))

		case <-timer.C:
			cfg, err := Load(path)
			onChange(cfg, err)
		}
	}
}

func watchError(path string, err error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("watch").
		Messagef("cannot watch %s", path).
		Cause(err).
		Code(mdwerror.CodeWatchFailed).
		Detail("path", path).
		Build()
}
