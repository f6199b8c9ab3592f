package model

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"button", RoleButton, true},
		{"Button", RoleButton, true},
		{" HEADER ", RoleHeader, true},
		{"imageButton", RoleImageButton, true},
		{"keyboardKey", RoleKeyboardKey, true},
		{"", RoleNone, true},
		{"none", RoleNone, true},
		{"slider", RoleNone, false},
		{"btn", RoleNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseRole(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseRole(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRoleTraitMap_CoversEveryRole(t *testing.T) {
	for _, r := range Roles {
		if _, ok := RoleTraitMap[r]; !ok {
			t.Errorf("role %q has no iOS trait entry", r)
		}
	}
}

func TestRoleTraits(t *testing.T) {
	tests := []struct {
		role      Role
		want      uint64
		supported bool
	}{
		{RoleNone, TraitBitNone, true},
		{RoleButton, TraitBitButton, true},
		{RoleImageButton, TraitBitImage | TraitBitButton, true},
		{RoleHeader, TraitBitHeader, true},
		{RoleSwitch, TraitBitButton, true},
		{RoleAlert, TraitBitNone, false},
		{RoleToolBar, TraitBitNone, false},
		{Role("bogus"), TraitBitNone, false},
	}
	for _, tt := range tests {
		got, ok := RoleTraits(tt.role)
		if got != tt.want || ok != tt.supported {
			t.Errorf("RoleTraits(%q) = %d, %v; want %d, %v", tt.role, got, ok, tt.want, tt.supported)
		}
	}
}

func TestStateTraits(t *testing.T) {
	tests := []struct {
		role  Role
		state State
		want  uint64
	}{
		{RoleCheckbox, StateChecked, TraitBitSelected},
		{RoleSwitch, StateChecked, TraitBitSelected},
		{RoleRadioButton, StateChecked, TraitBitSelected},
		{RoleButton, StateChecked, TraitBitNone},
		{RoleCheckbox, StateUnchecked, TraitBitNone},
		{RoleButton, StateSelected, TraitBitSelected},
		{RoleButton, StateDisabled, TraitBitNotEnabled},
		{RoleButton, StateNone, TraitBitNone},
	}
	for _, tt := range tests {
		if got := StateTraits(tt.role, tt.state); got != tt.want {
			t.Errorf("StateTraits(%q, %q) = %d, want %d", tt.role, tt.state, got, tt.want)
		}
	}
}

func TestRoleClass(t *testing.T) {
	if c, ok := RoleClass(RoleButton); !ok || c != "android.widget.Button" {
		t.Errorf("RoleClass(button) = %q, %v", c, ok)
	}
	if _, ok := RoleClass(RoleHeader); ok {
		t.Error("header should have no widget class")
	}
}
