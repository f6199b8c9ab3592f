package android

import (
	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/trace"
)

// Delegate is the accessibility delegate installed for one role. A single
// instance is shared by every view with that role; per-view state is read
// from the owning host view when the native side calls in.
type Delegate struct {
	role   model.Role
	bridge *Bridge
}

// Role returns the role the delegate reports.
func (d *Delegate) Role() model.Role { return d.role }

// InitializeNodeInfo fills info for nv. The native class name comes from
// the role; checked, selected and enabled come from the view's state.
func (d *Delegate) InitializeNodeInfo(nv NativeView, info *NodeInfo) {
	if cls, ok := model.RoleClass(d.role); ok {
		info.ClassName = cls
	}
	info.Enabled = true
	v, ok := d.bridge.views.Lookup(nv.Owner())
	if !ok {
		return
	}
	_, state := a11y.EffectiveRole(v)
	info.Checkable = model.Checkable(d.role)
	info.Checked = info.Checkable && state == model.StateChecked
	info.Selected = state == model.StateSelected
	info.Enabled = state != model.StateDisabled
	if d.role == model.RoleHeader && d.bridge.sys.SDKVersion() >= APIPie {
		info.Heading = true
	}
}

// SendAccessibilityEvent observes events leaving nv and feeds focus
// transitions to the tracker.
func (d *Delegate) SendAccessibilityEvent(nv NativeView, eventType int) {
	var received, lost bool
	switch eventType {
	case model.AndroidEventViewAccessibilityFocused:
		received = true
	case model.AndroidEventViewAccessibilityFocusClear:
		lost = true
	default:
		return
	}
	v, ok := d.bridge.views.Lookup(nv.Owner())
	if !ok {
		d.bridge.sink.Write(trace.Focus, "focus event for unknown view", "owner", uint64(nv.Owner()))
		return
	}
	d.bridge.tracker.Notify(v, received, lost)
}
