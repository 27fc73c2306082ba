// File: collect_test.go
// Title: Unit Tests for Collect
// Description: Checks ordering across roots and error propagation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation

package filex

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/fixstr/foundation/core/error"
)

func TestCollectSortsAcrossRoots(t *testing.T) {
	parent := t.TempDir()
	first := filepath.Join(parent, "b")
	second := filepath.Join(parent, "a")
	for _, dir := range []string{first, second} {
		for _, f := range []string{"z.txt", "m.doc", "skip.bin"} {
			writeFile(t, filepath.Join(dir, f))
		}
	}

	s, err := NewScanner(DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}

	matches, err := Collect(context.Background(), s, first, second)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	got := make([]string, len(matches))
	for i, m := range matches {
		got[i] = m.Path
	}
	want := []string{
		filepath.Join(second, "m.doc"),
		filepath.Join(second, "z.txt"),
		filepath.Join(first, "m.doc"),
		filepath.Join(first, "z.txt"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectNoRoots(t *testing.T) {
	s, _ := NewScanner(DefaultOptions(), nil)
	matches, err := Collect(context.Background(), s)
	if err != nil || len(matches) != 0 {
		t.Errorf("Collect() = %v, %v; want no matches and no error", matches, err)
	}
}

func TestCollectRootError(t *testing.T) {
	root := makeTree(t, "a.txt")
	s, _ := NewScanner(DefaultOptions(), nil)

	_, err := Collect(context.Background(), s, root, filepath.Join(root, "missing"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("error = %v; want NOT_FOUND", err)
	}
}

// fakeEnumerator reports fixed paths for every root
type fakeEnumerator struct {
	paths map[string][]string
	err   error
}

func (f fakeEnumerator) Enumerate(ctx context.Context, root string, fn VisitFunc) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.paths[root] {
		if err := fn(Match{Path: p, Name: filepath.Base(p)}); err != nil {
			return err
		}
	}
	return nil
}

func TestCollectWithFakeEnumerator(t *testing.T) {
	e := fakeEnumerator{paths: map[string][]string{
		"r1": {"r1/c", "r1/a"},
		"r2": {"r2/b"},
	}}

	matches, err := Collect(context.Background(), e, "r1", "r2")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	var got []string
	for _, m := range matches {
		got = append(got, m.Path)
	}
	if diff := cmp.Diff([]string{"r1/a", "r1/c", "r2/b"}, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}

	boom := errors.New("boom")
	if _, err := Collect(context.Background(), fakeEnumerator{err: boom}, "r1"); !errors.Is(err, boom) {
		t.Errorf("error = %v; want %v", err, boom)
	}
}
