package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadSnapshot(t *testing.T) {
	f := SnapshotFile{
		Platform: "ios",
		Name:     "login",
		Views: []Snapshot{
			{ID: 1, Name: "ok", Type: "Button", Loaded: true, Accessible: true, Traits: []string{"button"}},
			{ID: 2, Name: "title", Type: "Label", Role: "header", Native: map[string]string{"accessibilityTraits": "header"}},
		},
	}
	for _, ext := range []string{".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "snap"+ext)
			if err := SaveSnapshot(path, f); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := LoadSnapshot(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if changes := DiffSnapshots(f.Views, got.Views); len(changes) != 0 {
				t.Errorf("round trip changed views: %+v", changes)
			}
			if got.Platform != "ios" || got.Name != "login" {
				t.Errorf("header = %q %q", got.Platform, got.Name)
			}
		})
	}
}

func TestLoadSnapshotErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadSnapshot(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(bad); err == nil {
		t.Error("expected error for malformed file")
	}
}
