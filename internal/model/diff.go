package model

import (
	"fmt"
	"sort"
	"strings"
)

// ChangeType represents the kind of state change detected.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// StateChange represents a single change between two snapshots.
type StateChange struct {
	Type    ChangeType           `yaml:"type"              json:"type"`
	ID      uint64               `yaml:"id"                json:"id"`
	Name    string               `yaml:"name,omitempty"    json:"name,omitempty"`
	Changes map[string][2]string `yaml:"changes,omitempty" json:"changes,omitempty"`
}

// DiffSnapshots compares two snapshot lists matched by view ID. Changes are
// ordered: added and changed in curr order, then removed in prev order.
func DiffSnapshots(prev, curr []Snapshot) []StateChange {
	prevMap := make(map[uint64]Snapshot, len(prev))
	for _, s := range prev {
		prevMap[s.ID] = s
	}
	currMap := make(map[uint64]bool, len(curr))
	for _, s := range curr {
		currMap[s.ID] = true
	}

	var changes []StateChange
	for _, s := range curr {
		before, existed := prevMap[s.ID]
		if !existed {
			changes = append(changes, StateChange{Type: ChangeAdded, ID: s.ID, Name: s.Name})
			continue
		}
		if diffs := diffSnapshot(before, s); len(diffs) > 0 {
			changes = append(changes, StateChange{Type: ChangeChanged, ID: s.ID, Name: s.Name, Changes: diffs})
		}
	}
	for _, s := range prev {
		if !currMap[s.ID] {
			changes = append(changes, StateChange{Type: ChangeRemoved, ID: s.ID, Name: s.Name})
		}
	}
	return changes
}

func diffSnapshot(prev, curr Snapshot) map[string][2]string {
	diffs := make(map[string][2]string)
	field := func(key, a, b string) {
		if a != b {
			diffs[key] = [2]string{a, b}
		}
	}
	flag := func(key string, a, b bool) {
		if a != b {
			diffs[key] = [2]string{fmt.Sprint(a), fmt.Sprint(b)}
		}
	}

	flag("loaded", prev.Loaded, curr.Loaded)
	flag("accessible", prev.Accessible, curr.Accessible)
	flag("hidden", prev.Hidden, curr.Hidden)
	field("role", prev.Role, curr.Role)
	field("state", prev.State, curr.State)
	field("label", prev.Label, curr.Label)
	field("value", prev.Value, curr.Value)
	field("hint", prev.Hint, curr.Hint)
	field("liveRegion", prev.LiveRegion, curr.LiveRegion)
	field("importance", prev.Importance, curr.Importance)
	field("traits", strings.Join(prev.Traits, ","), strings.Join(curr.Traits, ","))
	flag("focused", prev.Focused, curr.Focused)

	keys := make(map[string]bool)
	for k := range prev.Native {
		keys[k] = true
	}
	for k := range curr.Native {
		keys[k] = true
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)
	for _, k := range sorted {
		field("native."+k, prev.Native[k], curr.Native[k])
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
