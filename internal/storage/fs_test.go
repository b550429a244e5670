// Package storage provides folder-scoped JSON document storage for DocFold.
package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestFSStoreLayout(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	store, err := NewFSStore(root, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}

	t.Run("documents land as folder/key.json", func(t *testing.T) {
		if err := store.Put(ctx, "todos", "alice", []byte(`[]`)); err != nil {
			t.Fatalf("Put: %v", err)
		}

		path := filepath.Join(root, "todos", "alice.json")
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected file at %s: %v", path, err)
		}
		if string(data) != `[]` {
			t.Errorf("file contents = %s, want []", data)
		}
	})

	t.Run("list skips non-json entries", func(t *testing.T) {
		dir := filepath.Join(root, "mixed")
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatal(err)
		}
		files := map[string]string{
			"keep.json":  `1`,
			"skip.txt":   "not json",
			"noext":      "nope",
			"other.json": `2`,
		}
		for name, body := range files {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o640); err != nil {
				t.Fatal(err)
			}
		}
		if err := os.MkdirAll(filepath.Join(dir, "subdir.json"), 0o750); err != nil {
			t.Fatal(err)
		}

		keys, err := store.List(ctx, "mixed")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(keys) != 2 {
			t.Fatalf("List = %v, want exactly keep and other", keys)
		}
		got := map[string]bool{}
		for _, k := range keys {
			got[k] = true
		}
		if !got["keep"] || !got["other"] {
			t.Errorf("List = %v, want keep and other", keys)
		}
	})

	t.Run("missing root dir is created", func(t *testing.T) {
		nested := filepath.Join(t.TempDir(), "deep", "storage")
		if _, err := NewFSStore(nested, nil); err != nil {
			t.Fatalf("NewFSStore: %v", err)
		}
		if _, err := os.Stat(nested); err != nil {
			t.Errorf("root not created: %v", err)
		}
	})

	t.Run("empty dir rejected", func(t *testing.T) {
		if _, err := NewFSStore("", nil); err == nil {
			t.Error("expected error for empty dir")
		}
	})
}
