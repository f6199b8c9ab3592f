package android

import (
	"fmt"
	"sync"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/focus"
	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/trace"
)

// Bridge implements a11y.Bridge for Android.
type Bridge struct {
	sys     System
	views   host.Views
	tracker *focus.Tracker
	sink    *trace.Sink

	mu        sync.Mutex
	delegates map[model.Role]*Delegate
}

// New returns an Android bridge.
func New(sys System, views host.Views, tracker *focus.Tracker, sink *trace.Sink) *Bridge {
	return &Bridge{
		sys:       sys,
		views:     views,
		tracker:   tracker,
		sink:      sink,
		delegates: make(map[model.Role]*Delegate),
	}
}

// Platform returns "android".
func (b *Bridge) Platform() string { return "android" }

// Hooks returns the natively handled properties.
func (b *Bridge) Hooks() []host.PropertyHooks {
	return []host.PropertyHooks{
		a11y.Bind(a11y.Accessible, b.sink, nil, b.setAccessible),
		a11y.Bind(a11y.Hidden, b.sink, nil, b.setHidden),
		a11y.Bind(a11y.Importance, b.sink, b.importance, b.setImportance),
		a11y.Bind(a11y.Role, b.sink, nil, func(v host.View, _ model.Role) error { return b.refresh(v) }),
		a11y.Bind(a11y.State, b.sink, nil, func(v host.View, _ model.State) error { return b.refresh(v) }),
		a11y.Bind(a11y.ComponentType, b.sink, nil, func(v host.View, _ string) error { return b.refresh(v) }),
		a11y.Bind(a11y.Label, b.sink, nil, b.setText),
		a11y.Bind(a11y.Value, b.sink, nil, b.setText),
		a11y.Bind(a11y.Hint, b.sink, nil, b.setText),
		a11y.Bind(a11y.LiveRegion, b.sink, nil, b.setLiveRegion),
	}
}

// Attach tags the native view with its owner and brings the delegate and
// content description up to date.
func (b *Bridge) Attach(v host.View) {
	nv, err := native(v)
	if err != nil {
		b.sink.Error(trace.A11y, "attach", "view", uint64(v.ID()), "error", err)
		return
	}
	if err := nv.SetOwner(v.ID()); err != nil {
		b.sink.Error(trace.A11y, "attach", "view", uint64(v.ID()), "error", err)
	}
	if err := b.refresh(v); err != nil {
		b.sink.Error(trace.A11y, "attach", "view", uint64(v.ID()), "error", err)
	}
}

// Detach forgets focus state for v.
func (b *Bridge) Detach(v host.View) {
	b.tracker.Forget(v.ID())
}

// Close drops the delegate cache.
func (b *Bridge) Close() {
	b.mu.Lock()
	b.delegates = make(map[model.Role]*Delegate)
	b.mu.Unlock()
}

// SDK returns the device API level.
func (b *Bridge) SDK() int { return b.sys.SDKVersion() }

// delegate returns the cached delegate for role.
func (b *Bridge) delegate(role model.Role) *Delegate {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.delegates[role]
	if !ok {
		d = &Delegate{role: role, bridge: b}
		b.delegates[role] = d
	}
	return d
}

func native(v host.View) (NativeView, error) {
	nv, ok := v.Native().(NativeView)
	if !ok {
		return nil, fmt.Errorf("view %d: native element is %T, not an android view", v.ID(), v.Native())
	}
	return nv, nil
}

func (b *Bridge) setAccessible(v host.View, on bool) error {
	nv, err := native(v)
	if err != nil {
		return err
	}
	if err := nv.SetFocusable(on); err != nil {
		return fmt.Errorf("set focusable: %w", err)
	}
	return b.applyDelegate(v, nv)
}

// applyDelegate installs the role delegate while the view is accessible
// and removes it entirely otherwise.
func (b *Bridge) applyDelegate(v host.View, nv NativeView) error {
	if !a11y.Accessible.Get(v) {
		b.sink.Write(trace.A11y, "removing accessibility delegate", "view", uint64(v.ID()))
		return nv.SetAccessibilityDelegate(nil)
	}
	role, _ := a11y.EffectiveRole(v)
	b.sink.Write(trace.A11y, "installing accessibility delegate", "view", uint64(v.ID()), "role", string(role))
	return nv.SetAccessibilityDelegate(b.delegate(role))
}

// refresh re-applies everything derived from role and state.
func (b *Bridge) refresh(v host.View) error {
	nv, err := native(v)
	if err != nil {
		return err
	}
	if err := b.applyDelegate(v, nv); err != nil {
		return fmt.Errorf("set delegate: %w", err)
	}
	return b.updateDescription(v, nv)
}

func (b *Bridge) setText(v host.View, _ string) error {
	nv, err := native(v)
	if err != nil {
		return err
	}
	return b.updateDescription(v, nv)
}

// Description composes the content description v should carry.
func (b *Bridge) Description(v host.View) string {
	role, _ := a11y.EffectiveRole(v)
	return ComposeDescription(a11y.Label.Get(v), a11y.Value.Get(v), a11y.Hint.Get(v), role, b.SDK())
}

// ComposeDescription builds a content description for a device at sdk.
// Before API 28 a header has no native heading flag, so "heading" is
// appended to the text.
func ComposeDescription(label, value, hint string, role model.Role, sdk int) string {
	var extra string
	if role == model.RoleHeader && sdk < APIPie {
		extra = "heading"
	}
	return model.ComposeDescription(model.Parts{Label: label, Value: value, Hint: hint, Extra: extra})
}

func (b *Bridge) updateDescription(v host.View, nv NativeView) error {
	desc := b.Description(v)
	cur, err := nv.ContentDescription()
	if err != nil {
		return fmt.Errorf("read content description: %w", err)
	}
	if cur == desc {
		return nil
	}
	b.sink.Write(trace.Property, "content description", "view", uint64(v.ID()), "description", desc)
	return nv.SetContentDescription(desc)
}

func (b *Bridge) importance(v host.View) (model.Importance, error) {
	nv, err := native(v)
	if err != nil {
		return model.ImportanceAuto, err
	}
	raw, err := nv.ImportantForAccessibility()
	if err != nil {
		return model.ImportanceAuto, err
	}
	return model.ImportanceFromAndroid(raw), nil
}

func (b *Bridge) setImportance(v host.View, imp model.Importance) error {
	nv, err := native(v)
	if err != nil {
		return err
	}
	if imp == model.ImportanceNoHideDescendants && b.SDK() < APIKitKat {
		b.sink.Write(trace.Property, "no-hide-descendants unsupported, using auto",
			"view", uint64(v.ID()), "sdk", b.SDK())
		imp = model.ImportanceAuto
	}
	return nv.SetImportantForAccessibility(imp.Android())
}

func (b *Bridge) setHidden(v host.View, hidden bool) error {
	nv, err := native(v)
	if err != nil {
		return err
	}
	imp := model.ImportanceAuto
	if hidden {
		imp = model.ImportanceNoHideDescendants
		if b.SDK() < APIKitKat {
			imp = model.ImportanceNo
		}
	}
	return nv.SetImportantForAccessibility(imp.Android())
}

func (b *Bridge) setLiveRegion(v host.View, lr model.LiveRegion) error {
	if b.SDK() < APIKitKat {
		b.sink.Write(trace.Property, "live regions unsupported", "view", uint64(v.ID()), "sdk", b.SDK())
		return nil
	}
	nv, err := native(v)
	if err != nil {
		return err
	}
	return nv.SetAccessibilityLiveRegion(lr.Android())
}
