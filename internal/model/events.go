package model

import (
	"sort"
	"strings"
)

// Android AccessibilityEvent.TYPE_* values used by the bridge directly.
const (
	AndroidEventViewFocused                 = 8
	AndroidEventWindowStateChanged          = 32
	AndroidEventWindowContentChanged        = 2048
	AndroidEventAnnouncement                = 16384
	AndroidEventViewAccessibilityFocused    = 32768
	AndroidEventViewAccessibilityFocusClear = 65536
)

// AndroidEvents maps sendAccessibilityEvent names to AccessibilityEvent
// types. Sentinels such as TYPES_ALL_MASK and MAX_TEXT_LENGTH are not event
// types and are left out.
var AndroidEvents = map[string]int{
	"view_clicked":                                1,
	"view_long_clicked":                           2,
	"view_selected":                               4,
	"view_focused":                                AndroidEventViewFocused,
	"view_text_changed":                           16,
	"window_state_changed":                        AndroidEventWindowStateChanged,
	"notification_state_changed":                  64,
	"view_hover_enter":                            128,
	"view_hover_exit":                             256,
	"touch_exploration_gesture_start":             512,
	"touch_exploration_gesture_end":               1024,
	"window_content_changed":                      AndroidEventWindowContentChanged,
	"view_scrolled":                               4096,
	"view_text_selection_changed":                 8192,
	"announcement":                                AndroidEventAnnouncement,
	"view_accessibility_focused":                  AndroidEventViewAccessibilityFocused,
	"view_accessibility_focus_cleared":            AndroidEventViewAccessibilityFocusClear,
	"view_text_traversed_at_movement_granularity": 131072,
	"gesture_detection_start":                     262144,
	"gesture_detection_end":                       524288,
	"touch_interaction_start":                     1048576,
	"touch_interaction_end":                       2097152,
}

// AndroidEventType resolves an event name case-insensitively.
func AndroidEventType(name string) (int, bool) {
	t, ok := AndroidEvents[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// AndroidEventNames returns the event names sorted alphabetically.
func AndroidEventNames() []string {
	names := make([]string, 0, len(AndroidEvents))
	for n := range AndroidEvents {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Notification is a platform-neutral accessibility notification type.
type Notification string

const (
	NotificationAnnouncement Notification = "announcement"
	NotificationLayout       Notification = "layout"
	NotificationScreen       Notification = "screen"
)

// IOSNotifications maps notification types to UIAccessibility names.
var IOSNotifications = map[Notification]string{
	NotificationAnnouncement: "UIAccessibilityAnnouncementNotification",
	NotificationLayout:       "UIAccessibilityLayoutChangedNotification",
	NotificationScreen:       "UIAccessibilityScreenChangedNotification",
}

// ParseNotification matches s case-insensitively.
func ParseNotification(s string) (Notification, bool) {
	n := Notification(strings.ToLower(strings.TrimSpace(s)))
	_, ok := IOSNotifications[n]
	return n, ok
}
