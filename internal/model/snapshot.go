package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SnapshotFile is a saved set of view snapshots, written by simulate --save
// and read back by diff.
type SnapshotFile struct {
	Platform string     `yaml:"platform"       json:"platform"`
	Name     string     `yaml:"name,omitempty" json:"name,omitempty"`
	Views    []Snapshot `yaml:"views"          json:"views"`
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// SaveSnapshot writes f to path. A .json extension selects JSON; anything
// else is YAML.
func SaveSnapshot(path string, f SnapshotFile) error {
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(f, "", "  ")
	} else {
		data, err = yaml.Marshal(f)
	}
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSnapshot reads a snapshot file previously written by SaveSnapshot.
func LoadSnapshot(path string) (SnapshotFile, error) {
	var f SnapshotFile
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("load snapshot: %w", err)
	}
	if isJSON(path) {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return f, fmt.Errorf("unmarshal snapshot %s: %w", path, err)
	}
	return f, nil
}
