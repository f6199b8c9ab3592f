package sim

import (
	"sort"

	"github.com/mj1618/a11y-bridge/internal/host"
)

type listener struct {
	id int
	fn host.Listener
}

// View is a simulated host view. It is not safe for concurrent use, like
// the UI thread it stands in for.
type View struct {
	host *Host
	id   host.ViewID
	typ  string
	name string

	hooks  map[string]host.PropertyHooks
	values map[string]any
	order  []string

	loaded    bool
	destroyed bool
	native    any

	listeners map[host.Event][]listener
	nextID    int
}

func newView(h *Host, id host.ViewID, typ, name string, hooks map[string]host.PropertyHooks) *View {
	return &View{
		host:      h,
		id:        id,
		typ:       typ,
		name:      name,
		hooks:     hooks,
		values:    make(map[string]any),
		listeners: make(map[host.Event][]listener),
	}
}

func (v *View) ID() host.ViewID  { return v.id }
func (v *View) TypeName() string { return v.typ }
func (v *View) Name() string     { return v.name }
func (v *View) IsLoaded() bool   { return v.loaded }
func (v *View) Destroyed() bool  { return v.destroyed }

// Native returns the native element, or nil while unloaded.
func (v *View) Native() any { return v.native }

// Get returns the explicit value, else the get-default result, else the
// registered default.
func (v *View) Get(name string) any {
	if val, ok := v.values[name]; ok {
		return val
	}
	h, ok := v.hooks[name]
	if !ok {
		return nil
	}
	if h.GetDefault != nil {
		return h.GetDefault(v)
	}
	return h.Default
}

// IsSet reports whether name has an explicit value.
func (v *View) IsSet(name string) bool {
	_, ok := v.values[name]
	return ok
}

// Set stores an explicit value and, while loaded, calls the set-native hook.
func (v *View) Set(name string, val any) {
	if _, ok := v.values[name]; !ok {
		v.order = append(v.order, name)
	}
	v.values[name] = val
	if v.loaded {
		v.apply(name)
	}
}

func (v *View) apply(name string) {
	if h, ok := v.hooks[name]; ok && h.SetNative != nil {
		h.SetNative(v, v.values[name])
	}
}

// Load creates the native element, replays explicit values in the order
// they were first set, then notifies loaded.
func (v *View) Load() {
	if v.loaded || v.destroyed {
		return
	}
	if v.host.newNative != nil {
		v.native = v.host.newNative(v)
	}
	v.loaded = true
	for _, name := range v.order {
		v.apply(name)
	}
	v.Notify(host.EventData{Event: host.EventLoaded, View: v.id})
}

// Unload notifies unloaded and drops the native element.
func (v *View) Unload() {
	if !v.loaded {
		return
	}
	v.loaded = false
	v.Notify(host.EventData{Event: host.EventUnloaded, View: v.id})
	v.native = nil
}

// Destroy unloads v, removes it from the host and drops its listeners.
func (v *View) Destroy() {
	v.Unload()
	v.destroyed = true
	v.listeners = make(map[host.Event][]listener)
	v.host.forget(v.id)
}

// On implements host.EventBus.
func (v *View) On(e host.Event, fn host.Listener) func() {
	v.nextID++
	id := v.nextID
	v.listeners[e] = append(v.listeners[e], listener{id: id, fn: fn})
	return func() { v.off(e, id) }
}

// Once implements host.EventBus.
func (v *View) Once(e host.Event, fn host.Listener) func() {
	var off func()
	off = v.On(e, func(d host.EventData) {
		off()
		fn(d)
	})
	return off
}

func (v *View) off(e host.Event, id int) {
	list := v.listeners[e]
	for i, l := range list {
		if l.id == id {
			v.listeners[e] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Notify implements host.EventBus. Listeners added during delivery are not
// called for the current event; listeners removed during delivery are
// skipped.
func (v *View) Notify(d host.EventData) {
	if d.View == 0 {
		d.View = v.id
	}
	list := append([]listener(nil), v.listeners[d.Event]...)
	for _, l := range list {
		if v.has(d.Event, l.id) {
			l.fn(d)
		}
	}
}

func (v *View) has(e host.Event, id int) bool {
	for _, l := range v.listeners[e] {
		if l.id == id {
			return true
		}
	}
	return false
}

// ListenerCount returns the number of listeners for e.
func (v *View) ListenerCount(e host.Event) int {
	return len(v.listeners[e])
}

// Values returns the explicit values by name.
func (v *View) Values() map[string]any {
	out := make(map[string]any, len(v.values))
	for k, val := range v.values {
		out[k] = val
	}
	return out
}

// SetNames returns the explicitly set property names, sorted.
func (v *View) SetNames() []string {
	names := append([]string(nil), v.order...)
	sort.Strings(names)
	return names
}
