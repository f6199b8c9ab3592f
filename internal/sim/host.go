// Package sim is an in-memory host UI framework and native accessibility
// layer. It lets the bridge run end to end without a device.
package sim

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/puzpuzpuz/xsync/v4"
)

// NativeFactory creates the native element for a view on load.
type NativeFactory func(v *View) any

// Host implements host.Registry, host.Views and host.App.
type Host struct {
	newNative NativeFactory

	mu         sync.Mutex
	hooks      map[string][]host.PropertyHooks
	decorators map[string][]func(host.View)
	app        map[host.AppEvent]map[int]func()
	nextOff    int

	views  *xsync.Map[host.ViewID, *View]
	nextID atomic.Uint64
}

// NewHost returns an empty host creating native elements with f.
func NewHost(f NativeFactory) *Host {
	return &Host{
		newNative:  f,
		hooks:      make(map[string][]host.PropertyHooks),
		decorators: make(map[string][]func(host.View)),
		app:        make(map[host.AppEvent]map[int]func()),
		views:      xsync.NewMap[host.ViewID, *View](),
	}
}

// Register implements host.Registry. Re-registering a name replaces it.
func (h *Host) Register(viewType string, hooks host.PropertyHooks) {
	h.mu.Lock()
	defer h.mu.Unlock()
	list := h.hooks[viewType]
	for i := range list {
		if list[i].Name == hooks.Name {
			list[i] = hooks
			return
		}
	}
	h.hooks[viewType] = append(list, hooks)
}

// Decorate implements host.Registry.
func (h *Host) Decorate(viewType string, fn func(host.View)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.decorators[viewType] = append(h.decorators[viewType], fn)
}

// Properties returns the property names registered for viewType.
func (h *Host) Properties(viewType string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, 0, len(h.hooks[viewType]))
	for _, p := range h.hooks[viewType] {
		names = append(names, p.Name)
	}
	return names
}

// NewView creates an unloaded view of viewType.
func (h *Host) NewView(viewType, name string) *View {
	h.mu.Lock()
	hooks := make(map[string]host.PropertyHooks, len(h.hooks[viewType]))
	for _, p := range h.hooks[viewType] {
		hooks[p.Name] = p
	}
	decorators := append([]func(host.View){}, h.decorators[viewType]...)
	h.mu.Unlock()

	v := newView(h, host.ViewID(h.nextID.Add(1)), viewType, name, hooks)
	h.views.Store(v.id, v)
	for _, fn := range decorators {
		fn(v)
	}
	return v
}

// Lookup implements host.Views. Destroyed views are not found.
func (h *Host) Lookup(id host.ViewID) (host.View, bool) {
	v, ok := h.views.Load(id)
	if !ok {
		return nil, false
	}
	return v, true
}

// View returns the live view with id.
func (h *Host) View(id host.ViewID) (*View, bool) {
	return h.views.Load(id)
}

// ViewByName returns the first live view called name.
func (h *Host) ViewByName(name string) (*View, bool) {
	var found *View
	h.views.Range(func(_ host.ViewID, v *View) bool {
		if v.name == name && (found == nil || v.id < found.id) {
			found = v
		}
		return true
	})
	return found, found != nil
}

// Views returns the live views ordered by ID.
func (h *Host) Views() []*View {
	var out []*View
	h.views.Range(func(_ host.ViewID, v *View) bool {
		out = append(out, v)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// OnApp implements host.App.
func (h *Host) OnApp(e host.AppEvent, fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.app[e] == nil {
		h.app[e] = make(map[int]func())
	}
	h.nextOff++
	id := h.nextOff
	h.app[e][id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.app[e], id)
	}
}

// AppListeners counts listeners for e.
func (h *Host) AppListeners(e host.AppEvent) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.app[e])
}

// Launch, Resume and Exit fire the application lifecycle events.
func (h *Host) Launch() { h.fire(host.AppLaunch) }
func (h *Host) Resume() { h.fire(host.AppResume) }
func (h *Host) Exit()   { h.fire(host.AppExit) }

func (h *Host) fire(e host.AppEvent) {
	h.mu.Lock()
	ids := make([]int, 0, len(h.app[e]))
	for id := range h.app[e] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, h.app[e][id])
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (h *Host) forget(id host.ViewID) {
	h.views.Delete(id)
}
