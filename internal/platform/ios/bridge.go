package ios

import (
	"fmt"
	"sync"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/focus"
	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/trace"
)

// Bridge implements a11y.Bridge for iOS.
type Bridge struct {
	sys     System
	views   host.Views
	tracker *focus.Tracker
	sink    *trace.Sink

	mu            sync.Mutex
	removeFocused func()
}

// New returns an iOS bridge.
func New(sys System, views host.Views, tracker *focus.Tracker, sink *trace.Sink) *Bridge {
	return &Bridge{sys: sys, views: views, tracker: tracker, sink: sink}
}

// Platform returns "ios".
func (b *Bridge) Platform() string { return "ios" }

// Hooks returns the natively handled properties.
func (b *Bridge) Hooks() []host.PropertyHooks {
	return []host.PropertyHooks{
		a11y.Bind(a11y.Accessible, b.sink, nil, func(v host.View, on bool) error {
			return b.call(v, func(nv NativeView) error { return nv.SetIsAccessibilityElement(on) })
		}),
		a11y.Bind(a11y.Hidden, b.sink, nil, func(v host.View, hidden bool) error {
			return b.call(v, func(nv NativeView) error { return nv.SetAccessibilityElementsHidden(hidden) })
		}),
		a11y.Bind(a11y.Identifier, b.sink, nil, func(v host.View, id string) error {
			return b.call(v, func(nv NativeView) error { return nv.SetAccessibilityIdentifier(id) })
		}),
		a11y.Bind(a11y.Label, b.sink, nil, func(v host.View, s string) error {
			return b.call(v, func(nv NativeView) error { return nv.SetAccessibilityLabel(s) })
		}),
		a11y.Bind(a11y.Value, b.sink, nil, func(v host.View, s string) error {
			return b.call(v, func(nv NativeView) error { return nv.SetAccessibilityValue(s) })
		}),
		a11y.Bind(a11y.Hint, b.sink, nil, func(v host.View, s string) error {
			return b.call(v, func(nv NativeView) error { return nv.SetAccessibilityHint(s) })
		}),
		a11y.Bind(a11y.Language, b.sink, nil, func(v host.View, s string) error {
			return b.call(v, func(nv NativeView) error { return nv.SetAccessibilityLanguage(s) })
		}),
		a11y.Bind(a11y.Role, b.sink, nil, func(v host.View, _ model.Role) error { return b.updateTraits(v) }),
		a11y.Bind(a11y.State, b.sink, nil, func(v host.View, _ model.State) error { return b.updateTraits(v) }),
		a11y.Bind(a11y.Traits, b.sink, nil, func(v host.View, _ []model.Trait) error { return b.updateTraits(v) }),
		a11y.Bind(a11y.MediaSession, b.sink, nil, func(v host.View, _ bool) error { return b.updateTraits(v) }),
		a11y.Bind(a11y.LiveRegion, b.sink, nil, func(v host.View, _ model.LiveRegion) error { return b.updateTraits(v) }),
	}
}

func native(v host.View) (NativeView, error) {
	nv, ok := v.Native().(NativeView)
	if !ok {
		return nil, fmt.Errorf("view %d: native element is %T, not a UIView", v.ID(), v.Native())
	}
	return nv, nil
}

func (b *Bridge) call(v host.View, fn func(NativeView) error) error {
	nv, err := native(v)
	if err != nil {
		return err
	}
	return fn(nv)
}

// Traits composes the trait mask for v: role traits, explicit traits,
// state traits, then media session and live region.
func (b *Bridge) Traits(v host.View) uint64 {
	role := a11y.Role.Get(v)
	state := a11y.State.Get(v)
	mask, ok := model.RoleTraits(role)
	if !ok {
		b.sink.Write(trace.Property, "role unsupported on ios", "view", uint64(v.ID()), "role", string(role))
	}
	mask |= model.TraitsMask(a11y.Traits.Get(v))
	mask |= model.StateTraits(role, state)
	if a11y.MediaSession.Get(v) {
		mask |= model.TraitBitStartsMediaSession
	}
	switch a11y.LiveRegion.Get(v) {
	case model.LiveRegionPolite, model.LiveRegionAssertive:
		mask |= model.TraitBitUpdatesFrequently
	}
	return mask
}

func (b *Bridge) updateTraits(v host.View) error {
	nv, err := native(v)
	if err != nil {
		return err
	}
	mask := b.Traits(v)
	b.sink.Write(trace.Property, "traits", "view", uint64(v.ID()), "mask", mask)
	return nv.SetAccessibilityTraits(mask)
}

// Attach tags the native view, recomputes traits and starts observing
// element focus.
func (b *Bridge) Attach(v host.View) {
	nv, err := native(v)
	if err != nil {
		b.sink.Error(trace.A11y, "attach", "view", uint64(v.ID()), "error", err)
		return
	}
	if err := nv.SetOwner(v.ID()); err != nil {
		b.sink.Error(trace.A11y, "attach", "view", uint64(v.ID()), "error", err)
	}
	if err := b.updateTraits(v); err != nil {
		b.sink.Error(trace.A11y, "attach", "view", uint64(v.ID()), "error", err)
	}
	b.observeFocus()
}

// Detach forgets focus state for v.
func (b *Bridge) Detach(v host.View) {
	b.tracker.Forget(v.ID())
}

// Close removes the focus observer.
func (b *Bridge) Close() {
	b.mu.Lock()
	remove := b.removeFocused
	b.removeFocused = nil
	b.mu.Unlock()
	if remove != nil {
		remove()
	}
}

func (b *Bridge) observeFocus() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.removeFocused != nil {
		return
	}
	b.removeFocused = b.sys.AddObserver(ElementFocusedNotification, b.elementFocused)
}

// elementFocused handles UIAccessibilityElementFocusedNotification. UIKit
// has no focus-lost notification, so a focus move to an element the bridge
// does not own is treated as the previous view losing focus.
func (b *Bridge) elementFocused(userInfo map[string]any) {
	el, _ := userInfo[FocusedElementKey].(NativeView)
	if el != nil {
		if v, ok := b.views.Lookup(el.Owner()); ok {
			b.tracker.Notify(v, true, false)
			return
		}
	}
	if last, ok := b.tracker.LastFocused(); ok {
		b.sink.Write(trace.Focus, "focus left bridged views", "view", uint64(last.ID()))
		b.tracker.Notify(last, false, true)
	}
}
