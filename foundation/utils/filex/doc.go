// File: doc.go
// Title: Package Documentation for filex
// Description: Package filex finds documents in directory trees, either
//              once through a Scanner or continuously through a Watcher.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-12 v0.2.0: Rebuilt around the Enumerator interface and fsnotify

// Package filex finds documents in directory trees.
//
// # Scanning
//
// A Scanner walks a tree in lexical order and calls a VisitFunc for every
// regular file whose extension is in the configured set. Directories named
// in IgnoreDirs are pruned before they are read, and a VisitFunc may prune
// the rest of the current directory by returning SkipDir:
//
//	s, err := filex.NewScanner(filex.DefaultOptions(), logger)
//	if err != nil {
//		return err
//	}
//	err = s.Enumerate(ctx, root, func(m filex.Match) error {
//		fmt.Println("found document at:", m.Path)
//		return nil
//	})
//
// The defaults accept .doc, .docx and .txt files and skip the Windows and
// Program Files directories. A missing or unreadable root is reported as an
// error; unreadable directories below it are logged and skipped.
//
// Collect runs any Enumerator over several roots concurrently and returns
// the matches sorted by path.
//
// # Watching
//
// A Watcher adds every accepted directory to an fsnotify watcher and
// delivers a Match on Events once a created or written file has been quiet
// for Options.Debounce. Directories created later are added automatically.
//
//	w, err := filex.NewWatcher(opts, logger)
//	if err != nil {
//		return err
//	}
//	defer w.Stop()
//	if err := w.Start(ctx, roots...); err != nil {
//		return err
//	}
//	for m := range w.Events() {
//		fmt.Println("found document at:", m.Path)
//	}
package filex
