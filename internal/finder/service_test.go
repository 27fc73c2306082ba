package finder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	mdwerror "github.com/msto63/fixstr/foundation/core/error"
	mdwlog "github.com/msto63/fixstr/foundation/core/log"
	"github.com/msto63/fixstr/foundation/utils/filex"
	"github.com/msto63/fixstr/pkg/core/config"
)

func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

func relPaths(t *testing.T, root string, matches []filex.Match) []string {
	t.Helper()
	var out []string
	for _, m := range matches {
		rel, err := filepath.Rel(root, m.Path)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestService_FindDefaults(t *testing.T) {
	root := makeTree(t,
		"a.txt",
		"b.md",
		"docs/c.DOCX",
		"Windows/system.txt",
	)

	var logs bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelInfo,
		Format: mdwlog.FormatJSON,
		Output: &logs,
	})

	svc, err := NewService(Config{Logger: logger})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	matches, err := svc.Find(context.Background(), root)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	want := []string{"a.txt", "docs/c.DOCX"}
	if diff := cmp.Diff(want, relPaths(t, root, matches)); diff != "" {
		t.Errorf("matches mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(logs.String(), "find completed") {
		t.Errorf("summary not logged: %s", logs.String())
	}
	if !strings.Contains(logs.String(), `"matches":2`) {
		t.Errorf("match count not logged: %s", logs.String())
	}
}

func TestService_FindRequestIDPerRoot(t *testing.T) {
	first := makeTree(t, "a.txt")
	second := makeTree(t, "b.txt")

	var logs bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatJSON,
		Output: &logs,
	})
	svc, err := NewService(Config{Logger: logger})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if _, err := svc.Find(context.Background(), first, second); err != nil {
		t.Fatalf("Find: %v", err)
	}

	ids := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		if entry["message"] != "scanning root" {
			continue
		}
		root, _ := entry["root"].(string)
		id, _ := entry["request_id"].(string)
		if id == "" {
			t.Errorf("no request_id for root %s", root)
		}
		ids[root] = id
	}

	if len(ids) != 2 {
		t.Fatalf("scanned roots = %v, want both", ids)
	}
	if ids[first] == ids[second] {
		t.Errorf("roots share request_id %q", ids[first])
	}
}

func TestService_Overrides(t *testing.T) {
	root := makeTree(t,
		"a.txt",
		"b.md",
		"Windows/c.md",
		"deep/er/d.md",
	)

	depth := 2
	svc, err := NewService(Config{
		Overrides: Overrides{
			Extensions: []string{"md"},
			IgnoreDirs: []string{},
			MaxDepth:   &depth,
		},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	matches, err := svc.Find(context.Background(), root)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	want := []string{"Windows/c.md", "b.md"}
	if diff := cmp.Diff(want, relPaths(t, root, matches)); diff != "" {
		t.Errorf("matches mismatch (-want +got):\n%s", diff)
	}
	if svc.Options().MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", svc.Options().MaxDepth)
	}
}

func TestService_ConfiguredRoots(t *testing.T) {
	root := makeTree(t, "x.txt")

	app := config.Default()
	app.Finder.Roots = []string{root}

	svc, err := NewService(Config{App: app})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if diff := cmp.Diff([]string{root}, svc.Roots(nil)); diff != "" {
		t.Errorf("Roots(nil) mismatch (-want +got):\n%s", diff)
	}
	if got := svc.Roots([]string{"other"}); got[0] != "other" {
		t.Errorf("explicit roots ignored: %v", got)
	}

	matches, err := svc.Find(context.Background())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "x.txt" {
		t.Errorf("matches = %+v", matches)
	}
}

func TestService_InvalidOverrides(t *testing.T) {
	depth := -1
	_, err := NewService(Config{Overrides: Overrides{MaxDepth: &depth}})
	if !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
		t.Errorf("err = %v, want VALIDATION_FAILED", err)
	}
}

func TestService_FindMissingRoot(t *testing.T) {
	svc, err := NewService(Config{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Find(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func watchService(t *testing.T) *Service {
	t.Helper()
	app := config.Default()
	app.Finder.Debounce = config.Duration{Duration: 20 * time.Millisecond}
	svc, err := NewService(Config{App: app})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestService_WatchForwards(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	svc := watchService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan filex.Match, 4)
	done := make(chan error, 1)
	go func() {
		done <- svc.Watch(ctx, func(m filex.Match) error {
			got <- m
			return nil
		}, root)
	}()

	// give the watcher time to register the root
	time.Sleep(100 * time.Millisecond)
	path := filepath.Join(root, "new.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case m := <-got:
		if m.Path != path {
			t.Errorf("match path = %s, want %s", m.Path, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a match")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestService_WatchSinkError(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	var logs bytes.Buffer
	app := config.Default()
	app.Finder.Debounce = config.Duration{Duration: 20 * time.Millisecond}
	svc, err := NewService(Config{
		App:    app,
		Logger: mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelInfo, Format: mdwlog.FormatText, Output: &logs}),
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	errStop := errors.New("stop")

	done := make(chan error, 1)
	go func() {
		done <- svc.Watch(context.Background(), func(filex.Match) error {
			return errStop
		}, root)
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(root, "a.doc"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case err := <-done:
		if !errors.Is(err, errStop) {
			t.Errorf("Watch = %v, want sink error", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return the sink error")
	}
	if !strings.Contains(logs.String(), "forwarding match failed") {
		t.Errorf("sink failure not logged: %s", logs.String())
	}
}

func TestService_FindAndWatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := makeTree(t, "old.txt")
	svc := watchService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan filex.Match, 8)
	done := make(chan error, 1)
	go func() {
		done <- svc.FindAndWatch(ctx, func(m filex.Match) error {
			got <- m
			return nil
		}, root)
	}()

	next := func() filex.Match {
		t.Helper()
		select {
		case m := <-got:
			return m
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for a match")
		}
		return filex.Match{}
	}

	if m := next(); m.Name != "old.txt" {
		t.Fatalf("first match = %s, want the existing old.txt", m.Name)
	}

	// the watcher is already running once the scan has reported
	path := filepath.Join(root, "new.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if m := next(); m.Path != path {
		t.Errorf("match path = %s, want %s", m.Path, path)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("FindAndWatch returned %v after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("FindAndWatch did not return after cancel")
	}
	select {
	case m := <-got:
		t.Errorf("unexpected extra match %s", m.Path)
	default:
	}
}

func TestService_FindAndWatchMissingRoot(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := watchService(t)
	err := svc.FindAndWatch(context.Background(), func(filex.Match) error { return nil },
		filepath.Join(t.TempDir(), "missing"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestService_WatchMissingRoot(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := watchService(t)
	err := svc.Watch(context.Background(), func(filex.Match) error { return nil },
		filepath.Join(t.TempDir(), "missing"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}
