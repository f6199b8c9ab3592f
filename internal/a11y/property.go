// Package a11y defines the platform-neutral accessibility property schema
// and the boundary through which every native call passes. Platform
// bridges (android, ios) supply the native handlers; nothing here knows
// about either OS.
package a11y

import (
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/trace"
)

// Property is a named, typed accessibility property.
type Property[T any] struct {
	Name    string
	Default T
	// Coerce converts a raw host value. It returns its best-effort value
	// together with an error describing anything it could not recognize.
	Coerce func(raw any) (T, error)
}

// Descriptor is the type-erased view of a Property.
type Descriptor interface {
	PropertyName() string
	StoreOnly() host.PropertyHooks
	// Read returns the view's coerced value.
	Read(v host.View) any
}

// PropertyName returns the property name.
func (p Property[T]) PropertyName() string { return p.Name }

// StoreOnly returns hooks that keep the value without touching the native
// view.
func (p Property[T]) StoreOnly() host.PropertyHooks {
	return host.PropertyHooks{Name: p.Name, Default: p.Default}
}

// From coerces a raw value. Nil reads as the default.
func (p Property[T]) From(raw any) (T, error) {
	if raw == nil {
		return p.Default, nil
	}
	if p.Coerce != nil {
		return p.Coerce(raw)
	}
	if t, ok := raw.(T); ok {
		return t, nil
	}
	return p.Default, fmt.Errorf("%s: unsupported value type %T", p.Name, raw)
}

// Get returns the view's current value, coerced.
func (p Property[T]) Get(v host.View) T {
	val, _ := p.From(v.Get(p.Name))
	return val
}

// Read implements Descriptor.
func (p Property[T]) Read(v host.View) any { return p.Get(v) }

// Bind builds host hooks for p. getDefault runs when the host reads the
// property without an explicit value; setNative runs on every change.
// Either may be nil. Values are coerced before setNative sees them, and
// unrecognized input falls back to the coerced best effort with a trace
// record. Native failures never reach the caller.
func Bind[T any](p Property[T], sink *trace.Sink, getDefault func(host.View) (T, error), setNative func(host.View, T) error) host.PropertyHooks {
	hooks := p.StoreOnly()
	if getDefault != nil {
		hooks.GetDefault = func(v host.View) any {
			val := p.Default
			if v.Native() == nil {
				return val
			}
			guard(sink, p.Name+" get-default", func() error {
				got, err := getDefault(v)
				if err == nil {
					val = got
				}
				return err
			})
			return val
		}
	}
	if setNative != nil {
		hooks.SetNative = func(v host.View, raw any) {
			val, err := p.From(raw)
			if err != nil {
				sink.Write(trace.Property, "unrecognized value",
					"property", p.Name, "value", fmt.Sprint(raw), "using", fmt.Sprint(val), "error", err)
			}
			WhenLoaded(v, sink, func() {
				guard(sink, p.Name+" set-native", func() error {
					return setNative(v, val)
				})
			})
		}
	}
	return hooks
}

// WhenLoaded runs fn now if v has a native element, otherwise once v
// loads. The deferral is dropped if v unloads first.
func WhenLoaded(v host.View, sink *trace.Sink, fn func()) {
	if v.IsLoaded() && v.Native() != nil {
		fn()
		return
	}
	sink.Write(trace.A11y, "native view not realised, deferring", "view", uint64(v.ID()))
	var offUnloaded func()
	offLoaded := v.Once(host.EventLoaded, func(host.EventData) {
		if offUnloaded != nil {
			offUnloaded()
		}
		fn()
	})
	offUnloaded = v.Once(host.EventUnloaded, func(host.EventData) {
		offLoaded()
	})
}

// guard runs a native call, logging returned errors and recovered panics.
func guard(sink *trace.Sink, op string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			sink.Error(trace.A11y, "native call panicked", "op", op, "panic", fmt.Sprint(r))
		}
	}()
	if err := fn(); err != nil {
		sink.Error(trace.A11y, "native call failed", "op", op, "error", err)
	}
}
