// Package observable holds the process-wide accessibility state shared by
// every consumer: the normalized font scale and whether an assistive
// service is running.
//
// Values live in a Hub. Consumers never touch the Hub directly; each gets
// its own Proxy, which the Hub references weakly so a consumer that is
// garbage collected without calling Close does not keep receiving updates
// or block delivery to others. Hubs are not safe for concurrent use: like
// the native accessibility APIs they wrap, they are driven from the UI
// thread.
package observable

import "weak"

// Change is a key-based property-change notification.
type Change struct {
	Key   string
	Value any
	Old   any
}

// Listener receives property changes.
type Listener func(Change)

// Hub is a shared value with distinct-until-changed delivery.
type Hub[S comparable] struct {
	state   S
	diff    func(prev, next S) []Change
	proxies []weak.Pointer[Proxy[S]]
}

// NewHub returns a hub holding initial. diff lists the keyed changes
// between two states.
func NewHub[S comparable](initial S, diff func(prev, next S) []Change) *Hub[S] {
	return &Hub[S]{state: initial, diff: diff}
}

// Get returns the current state.
func (h *Hub[S]) Get() S {
	return h.state
}

// Set stores s and notifies every live proxy. It reports false, and
// notifies nobody, when s equals the current state.
func (h *Hub[S]) Set(s S) bool {
	if s == h.state {
		return false
	}
	old := h.state
	h.state = s
	changes := h.diff(old, s)

	// Listeners may create proxies while we deliver; those land in
	// h.proxies and are kept after the live set.
	current := h.proxies
	h.proxies = nil
	live := make([]weak.Pointer[Proxy[S]], 0, len(current))
	for _, wp := range current {
		p := wp.Value()
		if p == nil || p.closed {
			continue
		}
		live = append(live, wp)
		for _, c := range changes {
			p.deliver(c)
		}
	}
	h.proxies = append(live, h.proxies...)
	return true
}

// NewProxy returns a new consumer handle.
func (h *Hub[S]) NewProxy() *Proxy[S] {
	p := &Proxy[S]{hub: h}
	h.proxies = append(h.proxies, weak.Make(p))
	return p
}

// Len returns the number of live, open proxies, pruning dead entries.
func (h *Hub[S]) Len() int {
	live := h.proxies[:0]
	for _, wp := range h.proxies {
		if p := wp.Value(); p != nil && !p.closed {
			live = append(live, wp)
		}
	}
	clear(h.proxies[len(live):])
	h.proxies = live
	return len(live)
}

// Clear detaches every proxy.
func (h *Hub[S]) Clear() {
	for _, wp := range h.proxies {
		if p := wp.Value(); p != nil {
			p.listeners = nil
		}
	}
	h.proxies = nil
}

type listenerEntry struct {
	id int
	fn Listener
}

// Proxy is one consumer's view of a Hub.
type Proxy[S comparable] struct {
	hub       *Hub[S]
	listeners []listenerEntry
	nextID    int
	closed    bool
}

// Get returns the hub's current state.
func (p *Proxy[S]) Get() S {
	return p.hub.state
}

// On subscribes fn to property changes. The returned func unsubscribes.
func (p *Proxy[S]) On(fn Listener) (off func()) {
	p.nextID++
	id := p.nextID
	p.listeners = append(p.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range p.listeners {
			if l.id == id {
				p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

// Close stops delivery to this proxy; the hub drops it on the next pass.
func (p *Proxy[S]) Close() {
	p.closed = true
	p.listeners = nil
}

func (p *Proxy[S]) deliver(c Change) {
	for _, l := range append([]listenerEntry(nil), p.listeners...) {
		l.fn(c)
	}
}
