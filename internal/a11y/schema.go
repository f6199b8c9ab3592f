package a11y

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/model"
)

// The accessibility property schema.
var (
	Accessible    = Property[bool]{Name: "accessible", Coerce: coerceBool}
	Hidden        = Property[bool]{Name: "accessibilityHidden", Coerce: coerceBool}
	Identifier    = Property[string]{Name: "accessibilityIdentifier", Coerce: coerceString}
	Role          = Property[model.Role]{Name: "accessibilityRole", Default: model.RoleNone, Coerce: coerceRole}
	State         = Property[model.State]{Name: "accessibilityState", Default: model.StateNone, Coerce: coerceState}
	Label         = Property[string]{Name: "accessibilityLabel", Coerce: coerceString}
	Value         = Property[string]{Name: "accessibilityValue", Coerce: coerceString}
	Hint          = Property[string]{Name: "accessibilityHint", Coerce: coerceString}
	LiveRegion    = Property[model.LiveRegion]{Name: "accessibilityLiveRegion", Default: model.LiveRegionNone, Coerce: coerceLiveRegion}
	Language      = Property[string]{Name: "accessibilityLanguage", Coerce: coerceString}
	MediaSession  = Property[bool]{Name: "accessibilityMediaSession", Coerce: coerceBool}
	Traits        = Property[[]model.Trait]{Name: "accessibilityTraits", Coerce: coerceTraits}
	Importance    = Property[model.Importance]{Name: "importantForAccessibility", Default: model.ImportanceAuto, Coerce: coerceImportance}
	ComponentType = Property[string]{Name: "accessibilityComponentType", Coerce: coerceComponentType}
)

// Schema lists every property in registration order.
var Schema = []Descriptor{
	Accessible, Hidden, Identifier, Role, State, Label, Value, Hint,
	LiveRegion, Language, MediaSession, Traits, Importance, ComponentType,
}

// Lookup finds a schema property by name, case-insensitively.
func Lookup(name string) (Descriptor, bool) {
	for _, d := range Schema {
		if strings.EqualFold(d.PropertyName(), name) {
			return d, true
		}
	}
	return nil, false
}

// Legacy accessibilityComponentType values.
const (
	ComponentNone                 = "none"
	ComponentButton               = "button"
	ComponentRadioButtonChecked   = "radiobutton_checked"
	ComponentRadioButtonUnchecked = "radiobutton_unchecked"
)

// ComponentRole maps a legacy component type onto a role and state.
func ComponentRole(ct string) (model.Role, model.State) {
	switch ct {
	case ComponentButton:
		return model.RoleButton, model.StateNone
	case ComponentRadioButtonChecked:
		return model.RoleRadioButton, model.StateChecked
	case ComponentRadioButtonUnchecked:
		return model.RoleRadioButton, model.StateUnchecked
	}
	return model.RoleNone, model.StateNone
}

// EffectiveRole returns the role and state a platform should project. An
// explicit accessibilityRole wins; otherwise the legacy component type
// supplies both, with an explicit state still taking precedence.
func EffectiveRole(v host.View) (model.Role, model.State) {
	role := Role.Get(v)
	state := State.Get(v)
	if role != model.RoleNone {
		return role, state
	}
	ctRole, ctState := ComponentRole(ComponentType.Get(v))
	if state == model.StateNone {
		state = ctState
	}
	return ctRole, state
}

func coerceBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("not a boolean: %q", v)
		}
		return b, nil
	}
	return false, fmt.Errorf("not a boolean: %v", raw)
}

func coerceString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case bool, int, int64, float64:
		return fmt.Sprint(v), nil
	}
	// Named string types such as model.Role.
	if rv := reflect.ValueOf(raw); rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return "", fmt.Errorf("not a string: %T", raw)
}

func coerceRole(raw any) (model.Role, error) {
	s, err := coerceString(raw)
	if err != nil {
		return model.RoleNone, err
	}
	r, ok := model.ParseRole(s)
	if !ok {
		return model.RoleNone, fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func coerceState(raw any) (model.State, error) {
	s, err := coerceString(raw)
	if err != nil {
		return model.StateNone, err
	}
	st, ok := model.ParseState(s)
	if !ok {
		return model.StateNone, fmt.Errorf("unknown state %q", s)
	}
	return st, nil
}

func coerceLiveRegion(raw any) (model.LiveRegion, error) {
	s, err := coerceString(raw)
	if err != nil {
		return model.LiveRegionNone, err
	}
	lr, ok := model.ParseLiveRegion(s)
	if !ok {
		return model.LiveRegionNone, fmt.Errorf("unknown live region %q", s)
	}
	return lr, nil
}

func coerceImportance(raw any) (model.Importance, error) {
	s, err := coerceString(raw)
	if err != nil {
		return model.ImportanceAuto, err
	}
	imp, ok := model.ParseImportance(s)
	if !ok {
		return model.ImportanceAuto, fmt.Errorf("unknown importance %q", s)
	}
	return imp, nil
}

func coerceTraits(raw any) ([]model.Trait, error) {
	traits, unknown := model.ParseTraits(raw)
	if len(unknown) > 0 {
		return traits, fmt.Errorf("unknown traits %v", unknown)
	}
	return traits, nil
}

func coerceComponentType(raw any) (string, error) {
	s, err := coerceString(raw)
	if err != nil {
		return "", err
	}
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", ComponentNone, ComponentButton, ComponentRadioButtonChecked, ComponentRadioButtonUnchecked:
		return s, nil
	}
	return "", fmt.Errorf("unknown component type %q", s)
}
