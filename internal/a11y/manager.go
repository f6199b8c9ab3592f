package a11y

import (
	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/trace"
)

// Bridge projects the schema onto one platform's native accessibility API.
// Imperative methods are only called once the view's native element exists.
type Bridge interface {
	Platform() string
	// Hooks returns the natively handled properties. Schema properties
	// missing from the result are registered store-only.
	Hooks() []host.PropertyHooks
	// Attach and Detach run when a view's native element is realised and
	// torn down.
	Attach(v host.View)
	Detach(v host.View)
	Announce(v host.View, msg string) error
	SendEvent(v host.View, name, text string) error
	PostNotification(v host.View, kind, arg string) error
	ScreenChanged(v host.View, refocus bool) error
	// Close releases process-scoped native registrations.
	Close()
}

// Manager registers a Bridge with the host and fronts its imperative API.
type Manager struct {
	bridge Bridge
	sink   *trace.Sink
}

// NewManager wraps b.
func NewManager(b Bridge, sink *trace.Sink) *Manager {
	return &Manager{bridge: b, sink: sink}
}

// Register installs every schema property and the attach/detach decorator
// for each view type.
func (m *Manager) Register(reg host.Registry, viewTypes ...string) {
	native := make(map[string]host.PropertyHooks)
	for _, h := range m.bridge.Hooks() {
		native[h.Name] = h
	}
	for _, vt := range viewTypes {
		for _, d := range Schema {
			h, ok := native[d.PropertyName()]
			if !ok {
				m.sink.Write(trace.Property, "property not supported on platform, stored only",
					"platform", m.bridge.Platform(), "property", d.PropertyName(), "viewType", vt)
				h = d.StoreOnly()
			}
			reg.Register(vt, h)
		}
		reg.Decorate(vt, m.decorate)
	}
}

func (m *Manager) decorate(v host.View) {
	v.On(host.EventLoaded, func(host.EventData) { m.bridge.Attach(v) })
	v.On(host.EventUnloaded, func(host.EventData) { m.bridge.Detach(v) })
	if v.IsLoaded() && v.Native() != nil {
		m.bridge.Attach(v)
	}
}

// Announce asks the screen reader to speak msg. An empty msg announces the
// view's own description.
func (m *Manager) Announce(v host.View, msg string) {
	m.run(v, "announce", func() error { return m.bridge.Announce(v, msg) })
}

// SendEvent dispatches a named platform accessibility event.
func (m *Manager) SendEvent(v host.View, name, text string) {
	m.run(v, "send-event "+name, func() error { return m.bridge.SendEvent(v, name, text) })
}

// PostNotification posts an announcement, layout or screen notification.
func (m *Manager) PostNotification(v host.View, kind, arg string) {
	m.run(v, "post "+kind, func() error { return m.bridge.PostNotification(v, kind, arg) })
}

// ScreenChanged reports a screen transition, optionally restoring focus to
// the last focused view.
func (m *Manager) ScreenChanged(v host.View, refocus bool) {
	m.run(v, "screen-changed", func() error { return m.bridge.ScreenChanged(v, refocus) })
}

// Close releases the bridge.
func (m *Manager) Close() {
	guard(m.sink, "close", func() error {
		m.bridge.Close()
		return nil
	})
}

func (m *Manager) run(v host.View, op string, fn func() error) {
	WhenLoaded(v, m.sink, func() { guard(m.sink, op, fn) })
}
