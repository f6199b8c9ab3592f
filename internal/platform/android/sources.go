package android

import "github.com/mj1618/a11y-bridge/internal/observable"

// FontScaleSource reads Configuration.fontScale and watches configuration
// changes.
type FontScaleSource struct{ Sys System }

func (s FontScaleSource) ValidFontScales() []float64 { return observable.AndroidFontScales }
func (s FontScaleSource) RawFontScale() float64      { return s.Sys.FontScale() }

func (s FontScaleSource) WatchFontScale(fn func()) func() {
	return s.Sys.RegisterComponentCallbacks(fn)
}

// ServiceSource reports whether a touch-exploring service is active.
type ServiceSource struct{ Sys System }

func (s ServiceSource) ServiceEnabled() bool {
	am := s.Sys.AccessibilityManager()
	return am != nil && am.IsEnabled() && am.IsTouchExplorationEnabled()
}

func (s ServiceSource) WatchService(fn func()) func() {
	am := s.Sys.AccessibilityManager()
	if am == nil {
		return func() {}
	}
	removeState := am.AddAccessibilityStateChangeListener(func(bool) { fn() })
	removeTouch := am.AddTouchExplorationStateChangeListener(func(bool) { fn() })
	return func() {
		removeState()
		removeTouch()
	}
}
