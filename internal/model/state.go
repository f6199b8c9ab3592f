package model

import "strings"

// State is the transient accessibility state of a view.
type State string

const (
	StateNone      State = ""
	StateSelected  State = "selected"
	StateChecked   State = "checked"
	StateUnchecked State = "unchecked"
	StateDisabled  State = "disabled"
)

// ParseState matches s case-insensitively. Empty is StateNone; unknown
// values return StateNone and false.
func ParseState(s string) (State, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return StateNone, true
	case "selected":
		return StateSelected, true
	case "checked":
		return StateChecked, true
	case "unchecked":
		return StateUnchecked, true
	case "disabled":
		return StateDisabled, true
	}
	return StateNone, false
}

// LiveRegion controls whether content changes are announced proactively.
type LiveRegion string

const (
	LiveRegionNone      LiveRegion = "none"
	LiveRegionPolite    LiveRegion = "polite"
	LiveRegionAssertive LiveRegion = "assertive"
)

// Android View.ACCESSIBILITY_LIVE_REGION_* values.
const (
	AndroidLiveRegionNone      = 0
	AndroidLiveRegionPolite    = 1
	AndroidLiveRegionAssertive = 2
)

// ParseLiveRegion is case-insensitive. Anything other than polite or
// assertive resolves to none; the second result reports whether s was a
// recognized value.
func ParseLiveRegion(s string) (LiveRegion, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "polite":
		return LiveRegionPolite, true
	case "assertive":
		return LiveRegionAssertive, true
	case "", "none":
		return LiveRegionNone, true
	}
	return LiveRegionNone, false
}

// Android returns the native live-region constant.
func (l LiveRegion) Android() int {
	switch l {
	case LiveRegionPolite:
		return AndroidLiveRegionPolite
	case LiveRegionAssertive:
		return AndroidLiveRegionAssertive
	}
	return AndroidLiveRegionNone
}

// LiveRegionFromAndroid normalizes a native live-region constant.
func LiveRegionFromAndroid(v int) LiveRegion {
	switch v {
	case AndroidLiveRegionPolite:
		return LiveRegionPolite
	case AndroidLiveRegionAssertive:
		return LiveRegionAssertive
	}
	return LiveRegionNone
}

// Importance is the importantForAccessibility vocabulary.
type Importance string

const (
	ImportanceAuto              Importance = "auto"
	ImportanceYes               Importance = "yes"
	ImportanceNo                Importance = "no"
	ImportanceNoHideDescendants Importance = "no-hide-descendants"
)

// Android View.IMPORTANT_FOR_ACCESSIBILITY_* values.
const (
	AndroidImportantAuto              = 0
	AndroidImportantYes               = 1
	AndroidImportantNo                = 2
	AndroidImportantNoHideDescendants = 4
)

// ParseImportance is case-insensitive; unknown values return auto and false.
func ParseImportance(s string) (Importance, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ImportanceAuto, true
	case "yes":
		return ImportanceYes, true
	case "no":
		return ImportanceNo, true
	case "no-hide-descendants":
		return ImportanceNoHideDescendants, true
	}
	return ImportanceAuto, false
}

// Android returns the native constant.
func (i Importance) Android() int {
	switch i {
	case ImportanceYes:
		return AndroidImportantYes
	case ImportanceNo:
		return AndroidImportantNo
	case ImportanceNoHideDescendants:
		return AndroidImportantNoHideDescendants
	}
	return AndroidImportantAuto
}

// ImportanceFromAndroid normalizes a raw native value to one of the four
// canonical strings. Unknown values read as auto.
func ImportanceFromAndroid(v int) Importance {
	switch v {
	case AndroidImportantYes:
		return ImportanceYes
	case AndroidImportantNo:
		return ImportanceNo
	case AndroidImportantNoHideDescendants:
		return ImportanceNoHideDescendants
	}
	return ImportanceAuto
}
