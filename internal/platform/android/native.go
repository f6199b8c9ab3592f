// Package android projects the accessibility schema onto the Android view
// accessibility API. The native side is reached through the interfaces in
// this file, which a binding layer implements over android.view.View and
// friends.
package android

import "github.com/mj1618/a11y-bridge/internal/host"

// API levels that gate features.
const (
	// APIKitKat introduces live regions and IMPORTANT_FOR_ACCESSIBILITY_NO_HIDE_DESCENDANTS.
	APIKitKat = 19
	// APIPie introduces AccessibilityNodeInfo.setHeading.
	APIPie = 28
)

// Event is an AccessibilityEvent to dispatch.
type Event struct {
	Type int
	Text string
}

// NodeInfo is the subset of AccessibilityNodeInfo the role delegate fills.
type NodeInfo struct {
	ClassName string
	Checkable bool
	Checked   bool
	Selected  bool
	Enabled   bool
	Heading   bool
}

// NativeView is an android.view.View.
type NativeView interface {
	SetFocusable(focusable bool) error
	ImportantForAccessibility() (int, error)
	SetImportantForAccessibility(mode int) error
	ContentDescription() (string, error)
	SetContentDescription(desc string) error
	SetAccessibilityLiveRegion(mode int) error
	// SetAccessibilityDelegate installs d; nil removes any delegate.
	SetAccessibilityDelegate(d *Delegate) error
	SendAccessibilityEvent(e Event) error
	RequestAccessibilityFocus() error
	// SetOwner tags the native view with its host view.
	SetOwner(id host.ViewID) error
	Owner() host.ViewID
}

// AccessibilityManager is android.view.accessibility.AccessibilityManager.
type AccessibilityManager interface {
	IsEnabled() bool
	IsTouchExplorationEnabled() bool
	AddAccessibilityStateChangeListener(fn func(enabled bool)) (remove func())
	AddTouchExplorationStateChangeListener(fn func(enabled bool)) (remove func())
}

// System is the process-level Android surface.
type System interface {
	SDKVersion() int
	// FontScale is Configuration.fontScale.
	FontScale() float64
	// AccessibilityManager returns nil when the service is unavailable.
	AccessibilityManager() AccessibilityManager
	// RegisterComponentCallbacks calls onConfigurationChanged on every
	// configuration change until unregistered.
	RegisterComponentCallbacks(onConfigurationChanged func()) (unregister func())
}
