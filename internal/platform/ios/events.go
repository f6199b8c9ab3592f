package ios

import (
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/trace"
)

// Announce posts an announcement. An empty msg reads the view's label.
func (b *Bridge) Announce(v host.View, msg string) error {
	if msg == "" {
		msg = a11y.Label.Get(v)
	}
	return b.post(v, AnnouncementNotification, msg)
}

// SendEvent has no UIKit counterpart; it is traced and ignored.
func (b *Bridge) SendEvent(v host.View, name, _ string) error {
	b.sink.Write(trace.Event, "accessibility events unsupported on ios", "view", uint64(v.ID()), "event", name)
	return nil
}

// PostNotification posts an announcement, layout or screen notification.
// Layout and screen notifications carry arg when given, else the view.
func (b *Bridge) PostNotification(v host.View, kind, arg string) error {
	n, ok := model.ParseNotification(kind)
	if !ok {
		b.sink.Write(trace.Event, "unknown notification", "view", uint64(v.ID()), "notification", kind)
		return nil
	}
	if n == model.NotificationAnnouncement {
		return b.Announce(v, arg)
	}
	var payload any = arg
	if arg == "" {
		nv, err := native(v)
		if err != nil {
			return err
		}
		payload = nv
	}
	return b.post(v, model.IOSNotifications[n], payload)
}

// ScreenChanged posts a screen-changed notification pointing at v, or at
// the last focused view when refocus is set.
func (b *Bridge) ScreenChanged(v host.View, refocus bool) error {
	target := v
	if refocus {
		if last, ok := b.tracker.LastFocused(); ok && last.IsLoaded() {
			target = last
		}
	}
	nv, err := native(target)
	if err != nil {
		return err
	}
	return b.post(v, ScreenChangedNotification, nv)
}

func (b *Bridge) post(v host.View, name string, arg any) error {
	b.sink.Write(trace.Event, "post notification", "view", uint64(v.ID()), "notification", name)
	if err := b.sys.PostNotification(name, arg); err != nil {
		return fmt.Errorf("post %s: %w", name, err)
	}
	return nil
}
