package ios

import "github.com/mj1618/a11y-bridge/internal/observable"

// FontScaleSource derives the scale from the preferred content-size
// category.
type FontScaleSource struct{ Sys System }

func (s FontScaleSource) ValidFontScales() []float64 { return observable.IOSFontScales }

func (s FontScaleSource) RawFontScale() float64 {
	return ContentSizeScale(s.Sys.PreferredContentSizeCategory())
}

func (s FontScaleSource) WatchFontScale(fn func()) func() {
	return s.Sys.AddObserver(ContentSizeCategoryDidChange, func(map[string]any) { fn() })
}

// ServiceSource reports whether VoiceOver is running.
type ServiceSource struct{ Sys System }

func (s ServiceSource) ServiceEnabled() bool { return s.Sys.IsVoiceOverRunning() }

func (s ServiceSource) WatchService(fn func()) func() {
	return s.Sys.AddObserver(VoiceOverStatusChanged, func(map[string]any) { fn() })
}
