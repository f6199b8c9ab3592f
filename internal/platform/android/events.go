package android

import (
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/trace"
)

// Announce sends an announcement event. An empty msg reads the view's
// content description.
func (b *Bridge) Announce(v host.View, msg string) error {
	return b.SendEvent(v, "announcement", msg)
}

// SendEvent dispatches the named AccessibilityEvent from v. Unknown names
// are traced and ignored.
func (b *Bridge) SendEvent(v host.View, name, text string) error {
	t, ok := model.AndroidEventType(name)
	if !ok {
		b.sink.Write(trace.Event, "unknown accessibility event", "view", uint64(v.ID()), "event", name)
		return nil
	}
	nv, err := native(v)
	if err != nil {
		return err
	}
	if t == model.AndroidEventAnnouncement && text == "" {
		text = b.Description(v)
	}
	b.sink.Write(trace.Event, "send accessibility event", "view", uint64(v.ID()), "event", name, "type", t)
	if err := nv.SendAccessibilityEvent(Event{Type: t, Text: text}); err != nil {
		return fmt.Errorf("send %s: %w", name, err)
	}
	return nil
}

// PostNotification maps the platform-neutral notification types onto
// events: announcement, layout (window content changed) and screen
// (window state changed).
func (b *Bridge) PostNotification(v host.View, kind, arg string) error {
	n, ok := model.ParseNotification(kind)
	if !ok {
		b.sink.Write(trace.Event, "unknown notification", "view", uint64(v.ID()), "notification", kind)
		return nil
	}
	switch n {
	case model.NotificationAnnouncement:
		return b.Announce(v, arg)
	case model.NotificationLayout:
		return b.SendEvent(v, "window_content_changed", arg)
	default:
		return b.SendEvent(v, "window_state_changed", arg)
	}
}

// ScreenChanged reports a window state change from v. With refocus, the
// last focused view asks for accessibility focus again.
func (b *Bridge) ScreenChanged(v host.View, refocus bool) error {
	if err := b.SendEvent(v, "window_state_changed", ""); err != nil {
		return err
	}
	if !refocus {
		return nil
	}
	last, ok := b.tracker.LastFocused()
	if !ok || !last.IsLoaded() {
		b.sink.Write(trace.Focus, "no focused view to restore", "view", uint64(v.ID()))
		return nil
	}
	nv, err := native(last)
	if err != nil {
		return err
	}
	b.sink.Write(trace.Focus, "restoring accessibility focus", "view", uint64(last.ID()))
	return nv.RequestAccessibilityFocus()
}
