package sim

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/platform/android"
)

// failures injects native errors by method name.
type failures map[string]error

func (f failures) check(method string) error {
	if err, ok := f[method]; ok {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// AndroidView records the accessibility state of a simulated
// android.view.View.
type AndroidView struct {
	sys *AndroidSystem

	Focusable   bool
	Importance  int
	Description string
	LiveRegion  int
	Delegate    *android.Delegate
	Events      []android.Event
	Calls       []string

	owner host.ViewID
	fail  failures
}

// NewAndroidView returns a view attached to sys.
func NewAndroidView(sys *AndroidSystem) *AndroidView {
	return &AndroidView{sys: sys, fail: failures{}}
}

// FailOn makes method return err until cleared with a nil err.
func (n *AndroidView) FailOn(method string, err error) {
	if err == nil {
		delete(n.fail, method)
		return
	}
	n.fail[method] = err
}

func (n *AndroidView) record(format string, args ...any) {
	n.Calls = append(n.Calls, fmt.Sprintf(format, args...))
}

func (n *AndroidView) SetFocusable(on bool) error {
	if err := n.fail.check("SetFocusable"); err != nil {
		return err
	}
	n.record("setFocusable(%t)", on)
	n.Focusable = on
	return nil
}

func (n *AndroidView) ImportantForAccessibility() (int, error) {
	if err := n.fail.check("ImportantForAccessibility"); err != nil {
		return 0, err
	}
	return n.Importance, nil
}

func (n *AndroidView) SetImportantForAccessibility(mode int) error {
	if err := n.fail.check("SetImportantForAccessibility"); err != nil {
		return err
	}
	n.record("setImportantForAccessibility(%d)", mode)
	n.Importance = mode
	return nil
}

func (n *AndroidView) ContentDescription() (string, error) {
	if err := n.fail.check("ContentDescription"); err != nil {
		return "", err
	}
	return n.Description, nil
}

func (n *AndroidView) SetContentDescription(desc string) error {
	if err := n.fail.check("SetContentDescription"); err != nil {
		return err
	}
	n.record("setContentDescription(%q)", desc)
	n.Description = desc
	return nil
}

func (n *AndroidView) SetAccessibilityLiveRegion(mode int) error {
	if err := n.fail.check("SetAccessibilityLiveRegion"); err != nil {
		return err
	}
	n.record("setAccessibilityLiveRegion(%d)", mode)
	n.LiveRegion = mode
	return nil
}

func (n *AndroidView) SetAccessibilityDelegate(d *android.Delegate) error {
	if err := n.fail.check("SetAccessibilityDelegate"); err != nil {
		return err
	}
	if d == nil {
		n.record("setAccessibilityDelegate(null)")
	} else {
		n.record("setAccessibilityDelegate(%s)", d.Role())
	}
	n.Delegate = d
	return nil
}

// SendAccessibilityEvent records e and passes it through the delegate,
// as View.sendAccessibilityEvent does.
func (n *AndroidView) SendAccessibilityEvent(e android.Event) error {
	if err := n.fail.check("SendAccessibilityEvent"); err != nil {
		return err
	}
	n.record("sendAccessibilityEvent(%d)", e.Type)
	n.Events = append(n.Events, e)
	n.sys.Dispatched = append(n.sys.Dispatched, e)
	if n.Delegate != nil {
		n.Delegate.SendAccessibilityEvent(n, e.Type)
	}
	return nil
}

func (n *AndroidView) RequestAccessibilityFocus() error {
	if err := n.fail.check("RequestAccessibilityFocus"); err != nil {
		return err
	}
	n.record("requestAccessibilityFocus()")
	return n.sys.Focus(n)
}

func (n *AndroidView) SetOwner(id host.ViewID) error {
	n.owner = id
	return nil
}

func (n *AndroidView) Owner() host.ViewID { return n.owner }

// NodeInfo asks the installed delegate to describe the view, as
// TalkBack would.
func (n *AndroidView) NodeInfo() android.NodeInfo {
	info := android.NodeInfo{Enabled: true}
	if n.Delegate != nil {
		n.Delegate.InitializeNodeInfo(n, &info)
	}
	return info
}

// Inspect returns the native state as strings.
func (n *AndroidView) Inspect() map[string]string {
	out := map[string]string{
		"focusable":                 strconv.FormatBool(n.Focusable),
		"importantForAccessibility": string(model.ImportanceFromAndroid(n.Importance)),
		"contentDescription":        n.Description,
		"liveRegion":                string(model.LiveRegionFromAndroid(n.LiveRegion)),
		"delegate":                  "",
	}
	if n.Delegate != nil {
		info := n.NodeInfo()
		out["delegate"] = string(n.Delegate.Role())
		out["className"] = info.ClassName
		out["checked"] = strconv.FormatBool(info.Checked)
		out["selected"] = strconv.FormatBool(info.Selected)
		out["enabled"] = strconv.FormatBool(info.Enabled)
		out["heading"] = strconv.FormatBool(info.Heading)
	}
	return out
}

// AndroidManager is a simulated AccessibilityManager.
type AndroidManager struct {
	Enabled          bool
	TouchExploration bool

	state  map[int]func(bool)
	touch  map[int]func(bool)
	nextID int
}

func newAndroidManager() *AndroidManager {
	return &AndroidManager{state: map[int]func(bool){}, touch: map[int]func(bool){}}
}

func (m *AndroidManager) IsEnabled() bool                 { return m.Enabled }
func (m *AndroidManager) IsTouchExplorationEnabled() bool { return m.TouchExploration }

func (m *AndroidManager) AddAccessibilityStateChangeListener(fn func(bool)) func() {
	return m.add(m.state, fn)
}

func (m *AndroidManager) AddTouchExplorationStateChangeListener(fn func(bool)) func() {
	return m.add(m.touch, fn)
}

func (m *AndroidManager) add(set map[int]func(bool), fn func(bool)) func() {
	m.nextID++
	id := m.nextID
	set[id] = fn
	return func() { delete(set, id) }
}

// Listeners counts registered listeners.
func (m *AndroidManager) Listeners() int { return len(m.state) + len(m.touch) }

// AndroidSystem is a simulated device.
type AndroidSystem struct {
	SDK        int
	Scale      float64
	Manager    *AndroidManager
	Dispatched []android.Event

	callbacks map[int]func()
	nextID    int
	focused   *AndroidView
}

// NewAndroidSystem returns a device at the given API level with font
// scale 1 and no accessibility service running.
func NewAndroidSystem(sdk int) *AndroidSystem {
	return &AndroidSystem{
		SDK:       sdk,
		Scale:     1,
		Manager:   newAndroidManager(),
		callbacks: map[int]func(){},
	}
}

func (s *AndroidSystem) SDKVersion() int    { return s.SDK }
func (s *AndroidSystem) FontScale() float64 { return s.Scale }

func (s *AndroidSystem) AccessibilityManager() android.AccessibilityManager {
	if s.Manager == nil {
		return nil
	}
	return s.Manager
}

func (s *AndroidSystem) RegisterComponentCallbacks(fn func()) func() {
	s.nextID++
	id := s.nextID
	s.callbacks[id] = fn
	return func() { delete(s.callbacks, id) }
}

// Listeners counts every registered native listener.
func (s *AndroidSystem) Listeners() int {
	n := len(s.callbacks)
	if s.Manager != nil {
		n += s.Manager.Listeners()
	}
	return n
}

// SetFontScale changes Configuration.fontScale and fires the
// configuration-changed callbacks.
func (s *AndroidSystem) SetFontScale(scale float64) {
	s.Scale = scale
	for _, id := range sortedIDs(s.callbacks) {
		if fn, ok := s.callbacks[id]; ok {
			fn()
		}
	}
}

// SetService turns the accessibility service and touch exploration on or
// off and fires the state listeners.
func (s *AndroidSystem) SetService(enabled, touchExploration bool) {
	m := s.Manager
	m.Enabled = enabled
	m.TouchExploration = touchExploration
	for _, id := range sortedIDs(m.state) {
		if fn, ok := m.state[id]; ok {
			fn(enabled)
		}
	}
	for _, id := range sortedIDs(m.touch) {
		if fn, ok := m.touch[id]; ok {
			fn(touchExploration)
		}
	}
}

// Focus moves accessibility focus to n, clearing it from the previous
// view first.
func (s *AndroidSystem) Focus(n *AndroidView) error {
	if s.focused == n {
		return nil
	}
	if err := s.ClearFocus(); err != nil {
		return err
	}
	s.focused = n
	return n.SendAccessibilityEvent(android.Event{Type: model.AndroidEventViewAccessibilityFocused})
}

// ClearFocus clears accessibility focus.
func (s *AndroidSystem) ClearFocus() error {
	prev := s.focused
	if prev == nil {
		return nil
	}
	s.focused = nil
	return prev.SendAccessibilityEvent(android.Event{Type: model.AndroidEventViewAccessibilityFocusClear})
}

// Focused returns the view holding accessibility focus.
func (s *AndroidSystem) Focused() *AndroidView { return s.focused }

func sortedIDs[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
