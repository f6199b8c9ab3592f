package sim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/platform/ios"
)

// IOSView records the UIAccessibility state of a simulated UIView.
type IOSView struct {
	sys *IOSSystem

	IsElement  bool
	Label      string
	Value      string
	Hint       string
	Traits     uint64
	Language   string
	Hidden     bool
	Identifier string
	Calls      []string

	owner host.ViewID
	fail  failures
}

// NewIOSView returns a view attached to sys.
func NewIOSView(sys *IOSSystem) *IOSView {
	return &IOSView{sys: sys, fail: failures{}}
}

// FailOn makes method return err until cleared with a nil err.
func (n *IOSView) FailOn(method string, err error) {
	if err == nil {
		delete(n.fail, method)
		return
	}
	n.fail[method] = err
}

func (n *IOSView) record(format string, args ...any) {
	n.Calls = append(n.Calls, fmt.Sprintf(format, args...))
}

func (n *IOSView) SetIsAccessibilityElement(on bool) error {
	if err := n.fail.check("SetIsAccessibilityElement"); err != nil {
		return err
	}
	n.record("isAccessibilityElement = %t", on)
	n.IsElement = on
	return nil
}

func (n *IOSView) SetAccessibilityLabel(s string) error {
	if err := n.fail.check("SetAccessibilityLabel"); err != nil {
		return err
	}
	n.record("accessibilityLabel = %q", s)
	n.Label = s
	return nil
}

func (n *IOSView) SetAccessibilityValue(s string) error {
	if err := n.fail.check("SetAccessibilityValue"); err != nil {
		return err
	}
	n.record("accessibilityValue = %q", s)
	n.Value = s
	return nil
}

func (n *IOSView) SetAccessibilityHint(s string) error {
	if err := n.fail.check("SetAccessibilityHint"); err != nil {
		return err
	}
	n.record("accessibilityHint = %q", s)
	n.Hint = s
	return nil
}

func (n *IOSView) AccessibilityTraits() (uint64, error) {
	if err := n.fail.check("AccessibilityTraits"); err != nil {
		return 0, err
	}
	return n.Traits, nil
}

func (n *IOSView) SetAccessibilityTraits(mask uint64) error {
	if err := n.fail.check("SetAccessibilityTraits"); err != nil {
		return err
	}
	n.record("accessibilityTraits = %d", mask)
	n.Traits = mask
	return nil
}

func (n *IOSView) SetAccessibilityLanguage(lang string) error {
	if err := n.fail.check("SetAccessibilityLanguage"); err != nil {
		return err
	}
	n.record("accessibilityLanguage = %q", lang)
	n.Language = lang
	return nil
}

func (n *IOSView) SetAccessibilityElementsHidden(hidden bool) error {
	if err := n.fail.check("SetAccessibilityElementsHidden"); err != nil {
		return err
	}
	n.record("accessibilityElementsHidden = %t", hidden)
	n.Hidden = hidden
	return nil
}

func (n *IOSView) SetAccessibilityIdentifier(id string) error {
	if err := n.fail.check("SetAccessibilityIdentifier"); err != nil {
		return err
	}
	n.record("accessibilityIdentifier = %q", id)
	n.Identifier = id
	return nil
}

func (n *IOSView) SetOwner(id host.ViewID) error {
	n.owner = id
	return nil
}

func (n *IOSView) Owner() host.ViewID { return n.owner }

// Inspect returns the native state as strings.
func (n *IOSView) Inspect() map[string]string {
	return map[string]string{
		"isAccessibilityElement":      strconv.FormatBool(n.IsElement),
		"accessibilityLabel":          n.Label,
		"accessibilityValue":          n.Value,
		"accessibilityHint":           n.Hint,
		"accessibilityTraits":         strings.Join(model.TraitNames(model.MaskTraits(n.Traits)), ","),
		"accessibilityLanguage":       n.Language,
		"accessibilityElementsHidden": strconv.FormatBool(n.Hidden),
		"accessibilityIdentifier":     n.Identifier,
	}
}

// Posted is one UIAccessibilityPostNotification call.
type Posted struct {
	Name string `yaml:"name" json:"name"`
	Arg  string `yaml:"arg,omitempty" json:"arg,omitempty"`
}

// IOSSystem is a simulated UIKit process.
type IOSSystem struct {
	VoiceOver bool
	Category  string
	Posted    []Posted

	observers map[string]map[int]func(map[string]any)
	nextID    int
	focused   *IOSView
}

// NewIOSSystem returns a process with the default content size and
// VoiceOver off.
func NewIOSSystem() *IOSSystem {
	return &IOSSystem{
		Category:  "UICTContentSizeCategoryL",
		observers: map[string]map[int]func(map[string]any){},
	}
}

func (s *IOSSystem) IsVoiceOverRunning() bool             { return s.VoiceOver }
func (s *IOSSystem) PreferredContentSizeCategory() string { return s.Category }

// PostNotification records the call. With VoiceOver running, a layout or
// screen notification carrying an element moves focus to it.
func (s *IOSSystem) PostNotification(name string, arg any) error {
	p := Posted{Name: name}
	switch a := arg.(type) {
	case string:
		p.Arg = a
	case *IOSView:
		p.Arg = fmt.Sprintf("view:%d", a.owner)
	}
	s.Posted = append(s.Posted, p)
	if el, ok := arg.(*IOSView); ok && s.VoiceOver &&
		(name == ios.ScreenChangedNotification || name == ios.LayoutChangedNotification) {
		s.Focus(el)
	}
	return nil
}

func (s *IOSSystem) AddObserver(name string, fn func(map[string]any)) func() {
	if s.observers[name] == nil {
		s.observers[name] = map[int]func(map[string]any){}
	}
	s.nextID++
	id := s.nextID
	s.observers[name][id] = fn
	return func() { delete(s.observers[name], id) }
}

// Listeners counts registered observers.
func (s *IOSSystem) Listeners() int {
	n := 0
	for _, set := range s.observers {
		n += len(set)
	}
	return n
}

func (s *IOSSystem) notify(name string, userInfo map[string]any) {
	set := s.observers[name]
	for _, id := range sortedIDs(set) {
		if fn, ok := set[id]; ok {
			fn(userInfo)
		}
	}
}

// SetVoiceOver toggles VoiceOver and posts the status change.
func (s *IOSSystem) SetVoiceOver(on bool) {
	s.VoiceOver = on
	s.notify(ios.VoiceOverStatusChanged, nil)
}

// SetContentSizeCategory changes the preferred content size and posts the
// change.
func (s *IOSSystem) SetContentSizeCategory(category string) {
	s.Category = category
	s.notify(ios.ContentSizeCategoryDidChange, nil)
}

// Focus moves VoiceOver focus to n. A nil n moves it to an element outside
// any bridged view.
func (s *IOSSystem) Focus(n *IOSView) {
	s.focused = n
	info := map[string]any{}
	if n != nil {
		info[ios.FocusedElementKey] = n
	}
	s.notify(ios.ElementFocusedNotification, info)
}

// Focused returns the element holding VoiceOver focus.
func (s *IOSSystem) Focused() *IOSView { return s.focused }
