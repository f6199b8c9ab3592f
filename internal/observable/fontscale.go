package observable

import (
	"math"
	"sort"
)

// Valid font scales per platform, ascending.
var (
	AndroidFontScales = []float64{0.85, 1, 1.15, 1.3}
	IOSFontScales     = []float64{0.5, 0.7, 0.85, 1, 1.15, 1.3, 1.5, 2, 2.5, 3, 3.5, 4}
)

// Thresholds for the derived extra-small and extra-large flags.
const (
	ExtraSmallBelow = 0.85
	ExtraLargeAbove = 1.5
)

// Keys reported in Change notifications.
const (
	KeyFontScale      = "fontScale"
	KeyIsExtraSmall   = "isExtraSmall"
	KeyIsExtraLarge   = "isExtraLarge"
	KeyServiceEnabled = "accessibilityServiceEnabled"
)

// ClosestFontScale snaps raw to the member of valid with minimal absolute
// distance; ties go to the smaller candidate. Zero, negative and NaN raw
// values read as 1, and +Inf snaps to the largest candidate.
func ClosestFontScale(raw float64, valid []float64) float64 {
	if math.IsNaN(raw) || raw <= 0 {
		raw = 1
	}
	if len(valid) == 0 {
		return raw
	}
	sorted := append([]float64(nil), valid...)
	sort.Float64s(sorted)
	if math.IsInf(raw, 1) {
		return sorted[len(sorted)-1]
	}

	best := sorted[0]
	bestDist := math.Abs(raw - best)
	for _, v := range sorted[1:] {
		if d := math.Abs(raw - v); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best
}

// FontScaleState is the shared font-scale value.
type FontScaleState struct {
	Scale      float64
	ExtraSmall bool
	ExtraLarge bool
}

// NewFontScaleState derives the flags for an already-normalized scale.
func NewFontScaleState(scale float64) FontScaleState {
	return FontScaleState{
		Scale:      scale,
		ExtraSmall: scale < ExtraSmallBelow,
		ExtraLarge: scale > ExtraLargeAbove,
	}
}

func diffFontScale(prev, next FontScaleState) []Change {
	var out []Change
	if prev.Scale != next.Scale {
		out = append(out, Change{Key: KeyFontScale, Value: next.Scale, Old: prev.Scale})
	}
	if prev.ExtraSmall != next.ExtraSmall {
		out = append(out, Change{Key: KeyIsExtraSmall, Value: next.ExtraSmall, Old: prev.ExtraSmall})
	}
	if prev.ExtraLarge != next.ExtraLarge {
		out = append(out, Change{Key: KeyIsExtraLarge, Value: next.ExtraLarge, Old: prev.ExtraLarge})
	}
	return out
}

func diffService(prev, next bool) []Change {
	return []Change{{Key: KeyServiceEnabled, Value: next, Old: prev}}
}

// FontScaleSource is the platform side of the font-scale observable.
type FontScaleSource interface {
	ValidFontScales() []float64
	// RawFontScale returns the OS-reported, unnormalized scale.
	RawFontScale() float64
	// WatchFontScale calls fn whenever the OS reports a possible change.
	WatchFontScale(fn func()) (stop func())
}

// ServiceSource is the platform side of the service-enabled observable.
type ServiceSource interface {
	ServiceEnabled() bool
	WatchService(fn func()) (stop func())
}

// FontScale is a consumer handle on the shared font scale.
type FontScale struct {
	proxy *Proxy[FontScaleState]
}

// FontScale returns the normalized scale.
func (f *FontScale) FontScale() float64 { return f.proxy.Get().Scale }

// IsExtraSmall reports a scale below 0.85.
func (f *FontScale) IsExtraSmall() bool { return f.proxy.Get().ExtraSmall }

// IsExtraLarge reports a scale above 1.5.
func (f *FontScale) IsExtraLarge() bool { return f.proxy.Get().ExtraLarge }

// State returns the full shared state.
func (f *FontScale) State() FontScaleState { return f.proxy.Get() }

// On subscribes to changes of fontScale, isExtraSmall and isExtraLarge.
func (f *FontScale) On(fn Listener) (off func()) { return f.proxy.On(fn) }

// Close unsubscribes this consumer.
func (f *FontScale) Close() { f.proxy.Close() }

// ServiceEnabled is a consumer handle on the shared service-enabled flag.
type ServiceEnabled struct {
	proxy *Proxy[bool]
}

// Enabled reports whether an assistive service is running.
func (s *ServiceEnabled) Enabled() bool { return s.proxy.Get() }

// On subscribes to accessibilityServiceEnabled changes.
func (s *ServiceEnabled) On(fn Listener) (off func()) { return s.proxy.On(fn) }

// Close unsubscribes this consumer.
func (s *ServiceEnabled) Close() { s.proxy.Close() }
