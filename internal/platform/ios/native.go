// Package ios projects the accessibility schema onto UIAccessibility.
package ios

import "github.com/mj1618/a11y-bridge/internal/host"

// UIKit notification names and keys.
const (
	ElementFocusedNotification      = "UIAccessibilityElementFocusedNotification"
	FocusedElementKey               = "UIAccessibilityFocusedElementKey"
	VoiceOverStatusChanged          = "UIAccessibilityVoiceOverStatusDidChangeNotification"
	ContentSizeCategoryDidChange    = "UIContentSizeCategoryDidChangeNotification"
	AnnouncementNotification        = "UIAccessibilityAnnouncementNotification"
	LayoutChangedNotification       = "UIAccessibilityLayoutChangedNotification"
	ScreenChangedNotification       = "UIAccessibilityScreenChangedNotification"
	defaultContentSizeCategoryScale = 1.0
)

// NativeView is a UIView's UIAccessibility surface.
type NativeView interface {
	SetIsAccessibilityElement(on bool) error
	SetAccessibilityLabel(s string) error
	SetAccessibilityValue(s string) error
	SetAccessibilityHint(s string) error
	AccessibilityTraits() (uint64, error)
	SetAccessibilityTraits(mask uint64) error
	SetAccessibilityLanguage(lang string) error
	SetAccessibilityElementsHidden(hidden bool) error
	SetAccessibilityIdentifier(id string) error
	// SetOwner tags the native view with its host view.
	SetOwner(id host.ViewID) error
	Owner() host.ViewID
}

// System is the process-level UIKit surface.
type System interface {
	IsVoiceOverRunning() bool
	PreferredContentSizeCategory() string
	// PostNotification calls UIAccessibilityPostNotification. arg is a
	// string, a NativeView or nil.
	PostNotification(name string, arg any) error
	// AddObserver subscribes to an NSNotificationCenter notification.
	AddObserver(name string, fn func(userInfo map[string]any)) (remove func())
}

// ContentSizeScales maps UIContentSizeCategory values to font scales.
var ContentSizeScales = map[string]float64{
	"UICTContentSizeCategoryXS":                0.5,
	"UICTContentSizeCategoryS":                 0.7,
	"UICTContentSizeCategoryM":                 0.85,
	"UICTContentSizeCategoryL":                 1,
	"UICTContentSizeCategoryXL":                1.15,
	"UICTContentSizeCategoryXXL":               1.3,
	"UICTContentSizeCategoryXXXL":              1.5,
	"UICTContentSizeCategoryAccessibilityM":    2,
	"UICTContentSizeCategoryAccessibilityL":    2.5,
	"UICTContentSizeCategoryAccessibilityXL":   3,
	"UICTContentSizeCategoryAccessibilityXXL":  3.5,
	"UICTContentSizeCategoryAccessibilityXXXL": 4,
}

// ContentSizeScale returns the scale for a content-size category. Unknown
// categories read as 1.
func ContentSizeScale(category string) float64 {
	if s, ok := ContentSizeScales[category]; ok {
		return s
	}
	return defaultContentSizeCategoryScale
}
