// Package focus turns platform accessibility-focus notifications into
// accessibilityFocus, accessibilityBlur and accessibilityFocusChanged
// events on host views.
package focus

import (
	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/trace"
)

// Tracker remembers which view last received accessibility focus. Views
// are held by ID and resolved through the host on use, so the tracker
// never keeps a view alive.
type Tracker struct {
	views    host.Views
	sink     *trace.Sink
	last     host.ViewID
	hadFocus map[host.ViewID]bool
}

// NewTracker returns a tracker resolving views through views.
func NewTracker(views host.Views, sink *trace.Sink) *Tracker {
	return &Tracker{views: views, sink: sink, hadFocus: make(map[host.ViewID]bool)}
}

// Notify processes one platform notification for v. Nothing is emitted
// unless received or lost is set; received wins when both are.
//
// A received notification first blurs the previously focused view, if it
// is a different live view, since iOS never reports focus loss itself.
func (t *Tracker) Notify(v host.View, received, lost bool) {
	if v == nil || (!received && !lost) {
		return
	}
	id := v.ID()

	if received {
		if t.last != 0 && t.last != id {
			prev := t.last
			t.last = 0
			if pv, ok := t.views.Lookup(prev); ok && t.hadFocus[prev] {
				t.sink.Write(trace.Focus, "focus moved away", "from", uint64(prev), "to", uint64(id))
				t.blur(pv)
			} else {
				delete(t.hadFocus, prev)
			}
		}
		t.last = id
		t.hadFocus[id] = true
		t.sink.Write(trace.Focus, "accessibility focus received", "view", uint64(id))
		v.Notify(host.EventData{Event: host.EventAccessibilityFocusChanged, View: id, Value: true})
		v.Notify(host.EventData{Event: host.EventAccessibilityFocus, View: id})
		return
	}

	if t.last == id {
		t.last = 0
	}
	t.sink.Write(trace.Focus, "accessibility focus lost", "view", uint64(id))
	t.blur(v)
}

func (t *Tracker) blur(v host.View) {
	id := v.ID()
	delete(t.hadFocus, id)
	v.Notify(host.EventData{Event: host.EventAccessibilityFocusChanged, View: id, Value: false})
	v.Notify(host.EventData{Event: host.EventAccessibilityBlur, View: id})
}

// LastFocused returns the last focused view if it is still alive.
func (t *Tracker) LastFocused() (host.View, bool) {
	if t.last == 0 {
		return nil, false
	}
	v, ok := t.views.Lookup(t.last)
	if !ok {
		t.last = 0
		return nil, false
	}
	return v, true
}

// IsFocused reports whether the view with id currently holds focus.
func (t *Tracker) IsFocused(id host.ViewID) bool {
	return t.hadFocus[id]
}

// Forget drops focus bookkeeping for a view, typically on unload.
func (t *Tracker) Forget(id host.ViewID) {
	delete(t.hadFocus, id)
	if t.last == id {
		t.last = 0
	}
}
