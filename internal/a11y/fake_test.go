package a11y

import (
	"github.com/mj1618/a11y-bridge/internal/host"
)

type fakeView struct {
	id       host.ViewID
	loaded   bool
	native   any
	values   map[string]any
	hooks    map[string]host.PropertyHooks
	next     int
	handlers map[host.Event]map[int]host.Listener
}

func newFakeView(id host.ViewID) *fakeView {
	return &fakeView{
		id:       id,
		values:   make(map[string]any),
		hooks:    make(map[string]host.PropertyHooks),
		handlers: make(map[host.Event]map[int]host.Listener),
	}
}

func (v *fakeView) ID() host.ViewID  { return v.id }
func (v *fakeView) TypeName() string { return "Fake" }
func (v *fakeView) IsLoaded() bool   { return v.loaded }
func (v *fakeView) Native() any      { return v.native }

func (v *fakeView) Get(name string) any {
	if val, ok := v.values[name]; ok {
		return val
	}
	h := v.hooks[name]
	if h.GetDefault != nil {
		return h.GetDefault(v)
	}
	return h.Default
}

func (v *fakeView) set(name string, val any) {
	v.values[name] = val
	if h := v.hooks[name]; h.SetNative != nil {
		h.SetNative(v, val)
	}
}

func (v *fakeView) On(e host.Event, fn host.Listener) func() {
	if v.handlers[e] == nil {
		v.handlers[e] = make(map[int]host.Listener)
	}
	v.next++
	id := v.next
	v.handlers[e][id] = fn
	return func() { delete(v.handlers[e], id) }
}

func (v *fakeView) Once(e host.Event, fn host.Listener) func() {
	var off func()
	off = v.On(e, func(d host.EventData) {
		off()
		fn(d)
	})
	return off
}

func (v *fakeView) Notify(d host.EventData) {
	var fns []host.Listener
	for _, fn := range v.handlers[d.Event] {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn(d)
	}
}

func (v *fakeView) load(native any) {
	v.native = native
	v.loaded = true
	v.Notify(host.EventData{Event: host.EventLoaded, View: v.id})
}

func (v *fakeView) unload() {
	v.loaded = false
	v.Notify(host.EventData{Event: host.EventUnloaded, View: v.id})
	v.native = nil
}

func (v *fakeView) listenerCount(e host.Event) int { return len(v.handlers[e]) }

type fakeRegistry struct {
	hooks      map[string][]host.PropertyHooks
	decorators map[string][]func(host.View)
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		hooks:      make(map[string][]host.PropertyHooks),
		decorators: make(map[string][]func(host.View)),
	}
}

func (r *fakeRegistry) Register(vt string, h host.PropertyHooks) {
	r.hooks[vt] = append(r.hooks[vt], h)
}

func (r *fakeRegistry) Decorate(vt string, fn func(host.View)) {
	r.decorators[vt] = append(r.decorators[vt], fn)
}

func (r *fakeRegistry) create(vt string, id host.ViewID) *fakeView {
	v := newFakeView(id)
	for _, h := range r.hooks[vt] {
		v.hooks[h.Name] = h
	}
	for _, fn := range r.decorators[vt] {
		fn(v)
	}
	return v
}
