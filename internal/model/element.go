package model

// Snapshot is the accessibility state of one view: the declared schema
// values plus what was projected onto the native element.
type Snapshot struct {
	ID         uint64            `yaml:"id"                   json:"id"`
	Name       string            `yaml:"name,omitempty"       json:"name,omitempty"`
	Type       string            `yaml:"type"                 json:"type"`
	Loaded     bool              `yaml:"loaded"               json:"loaded"`
	Accessible bool              `yaml:"accessible"           json:"accessible"`
	Hidden     bool              `yaml:"hidden,omitempty"     json:"hidden,omitempty"`
	Role       string            `yaml:"role,omitempty"       json:"role,omitempty"`
	State      string            `yaml:"state,omitempty"      json:"state,omitempty"`
	Label      string            `yaml:"label,omitempty"      json:"label,omitempty"`
	Value      string            `yaml:"value,omitempty"      json:"value,omitempty"`
	Hint       string            `yaml:"hint,omitempty"       json:"hint,omitempty"`
	LiveRegion string            `yaml:"liveRegion,omitempty" json:"liveRegion,omitempty"`
	Importance string            `yaml:"importance,omitempty" json:"importance,omitempty"`
	Traits     []string          `yaml:"traits,omitempty"     json:"traits,omitempty"`
	Focused    bool              `yaml:"focused,omitempty"    json:"focused,omitempty"`
	Native     map[string]string `yaml:"native,omitempty"     json:"native,omitempty"`
}
