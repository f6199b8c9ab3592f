package model

import "strings"

// Role is the semantic category of a view, driving how assistive technology
// announces it.
type Role string

const (
	RoleNone        Role = "none"
	RoleButton      Role = "button"
	RoleLink        Role = "link"
	RoleSearch      Role = "search"
	RoleImage       Role = "image"
	RoleKeyboardKey Role = "keyboardkey"
	RoleStaticText  Role = "text"
	RoleAdjustable  Role = "adjustable"
	RoleImageButton Role = "imagebutton"
	RoleHeader      Role = "header"
	RoleSummary     Role = "summary"
	RoleAlert       Role = "alert"
	RoleCheckbox    Role = "checkbox"
	RoleCombobox    Role = "combobox"
	RoleMenu        Role = "menu"
	RoleMenuBar     Role = "menubar"
	RoleMenuItem    Role = "menuitem"
	RoleProgressBar Role = "progressbar"
	RoleRadioButton Role = "radiobutton"
	RoleRadioGroup  Role = "radiogroup"
	RoleScrollBar   Role = "scrollbar"
	RoleSpinButton  Role = "spinbutton"
	RoleSwitch      Role = "switch"
	RoleTab         Role = "tab"
	RoleTabList     Role = "tablist"
	RoleTimer       Role = "timer"
	RoleToolBar     Role = "toolbar"
)

// Roles lists every role in declaration order.
var Roles = []Role{
	RoleNone, RoleButton, RoleLink, RoleSearch, RoleImage, RoleKeyboardKey,
	RoleStaticText, RoleAdjustable, RoleImageButton, RoleHeader, RoleSummary,
	RoleAlert, RoleCheckbox, RoleCombobox, RoleMenu, RoleMenuBar, RoleMenuItem,
	RoleProgressBar, RoleRadioButton, RoleRadioGroup, RoleScrollBar,
	RoleSpinButton, RoleSwitch, RoleTab, RoleTabList, RoleTimer, RoleToolBar,
}

var roleByName = func() map[string]Role {
	m := make(map[string]Role, len(Roles))
	for _, r := range Roles {
		m[string(r)] = r
	}
	return m
}()

// ParseRole matches s case-insensitively against the role vocabulary.
// An empty string is RoleNone. Unknown names return RoleNone and false.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RoleNone, true
	}
	r, ok := roleByName[s]
	if !ok {
		return RoleNone, false
	}
	return r, true
}

// AndroidRoleClass maps roles to the native widget class the Android
// accessibility delegate reports. Roles absent from the map keep the view's
// own class name.
var AndroidRoleClass = map[Role]string{
	RoleButton:      "android.widget.Button",
	RoleSearch:      "android.widget.EditText",
	RoleImage:       "android.widget.ImageView",
	RoleImageButton: "android.widget.ImageButton",
	RoleKeyboardKey: "android.inputmethodservice.Keyboard$Key",
	RoleStaticText:  "android.widget.TextView",
	RoleAdjustable:  "android.widget.SeekBar",
	RoleCheckbox:    "android.widget.CheckBox",
	RoleRadioButton: "android.widget.RadioButton",
	RoleSpinButton:  "android.widget.Spinner",
	RoleSwitch:      "android.widget.Switch",
	RoleProgressBar: "android.widget.ProgressBar",
}

// RoleClass returns the Android class name for a role.
func RoleClass(r Role) (string, bool) {
	c, ok := AndroidRoleClass[r]
	return c, ok
}

// Checkable reports whether a role carries a checked/unchecked state.
func Checkable(r Role) bool {
	switch r {
	case RoleCheckbox, RoleRadioButton, RoleSwitch:
		return true
	}
	return false
}

// RoleTraitMap maps roles to iOS trait bits. A zero entry for a role other
// than RoleNone means the role has no iOS equivalent.
var RoleTraitMap = map[Role]uint64{
	RoleNone:        TraitBitNone,
	RoleButton:      TraitBitButton,
	RoleLink:        TraitBitLink,
	RoleSearch:      TraitBitSearchField,
	RoleImage:       TraitBitImage,
	RoleKeyboardKey: TraitBitKeyboardKey,
	RoleStaticText:  TraitBitStaticText,
	RoleAdjustable:  TraitBitAdjustable,
	RoleImageButton: TraitBitImage | TraitBitButton,
	RoleHeader:      TraitBitHeader,
	RoleSummary:     TraitBitSummaryElement,
	RoleAlert:       TraitBitNone,
	RoleCheckbox:    TraitBitButton,
	RoleCombobox:    TraitBitNone,
	RoleMenu:        TraitBitNone,
	RoleMenuBar:     TraitBitNone,
	RoleMenuItem:    TraitBitButton,
	RoleProgressBar: TraitBitUpdatesFrequently,
	RoleRadioButton: TraitBitButton,
	RoleRadioGroup:  TraitBitNone,
	RoleScrollBar:   TraitBitNone,
	RoleSpinButton:  TraitBitAdjustable,
	RoleSwitch:      TraitBitButton,
	RoleTab:         TraitBitButton,
	RoleTabList:     TraitBitTabBar,
	RoleTimer:       TraitBitUpdatesFrequently,
	RoleToolBar:     TraitBitNone,
}

// RoleTraits returns the iOS trait bits for a role and whether the role is
// supported on iOS.
func RoleTraits(r Role) (uint64, bool) {
	bits, ok := RoleTraitMap[r]
	if !ok {
		return TraitBitNone, false
	}
	return bits, r == RoleNone || bits != TraitBitNone
}

// StateTraits returns the iOS trait bits derived from a state, layered on
// top of the role's own traits.
func StateTraits(r Role, s State) uint64 {
	switch s {
	case StateSelected:
		return TraitBitSelected
	case StateDisabled:
		return TraitBitNotEnabled
	case StateChecked:
		if Checkable(r) {
			return TraitBitSelected
		}
	}
	return TraitBitNone
}
