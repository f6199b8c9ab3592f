// Package host declares the parts of the UI component framework the
// accessibility bridge consumes: views with a property store and event bus,
// a per-view-type property registry, and the application lifecycle.
package host

// ViewID identifies a view for the lifetime of the host. Zero is never a
// valid ID.
type ViewID uint64

// Event is a typed view event name.
type Event string

const (
	EventLoaded                    Event = "loaded"
	EventUnloaded                  Event = "unloaded"
	EventAccessibilityFocus        Event = "accessibilityFocus"
	EventAccessibilityBlur         Event = "accessibilityBlur"
	EventAccessibilityFocusChanged Event = "accessibilityFocusChanged"
)

// EventData is delivered to view event listeners.
type EventData struct {
	Event Event
	View  ViewID
	Value any
}

// Listener receives view events.
type Listener func(EventData)

// EventBus is the per-view on/once/notify surface. The returned func
// removes the listener.
type EventBus interface {
	On(e Event, fn Listener) (off func())
	Once(e Event, fn Listener) (off func())
	Notify(d EventData)
}

// View is an opaque host view. The bridge never creates or destroys views.
type View interface {
	EventBus
	ID() ViewID
	TypeName() string
	IsLoaded() bool
	// Native returns the realised platform element, or nil before load.
	Native() any
	// Get returns the property's explicit value, else the registered
	// get-default result, else the registered default.
	Get(name string) any
}

// PropertyHooks describes one registered property. GetDefault and
// SetNative may be nil.
type PropertyHooks struct {
	Name       string
	Default    any
	GetDefault func(v View) any
	SetNative  func(v View, value any)
}

// Registry registers properties and per-view decorators against a view type.
type Registry interface {
	Register(viewType string, hooks PropertyHooks)
	// Decorate runs fn for every view of viewType the host creates.
	Decorate(viewType string, fn func(View))
}

// Views resolves IDs to live views.
type Views interface {
	Lookup(id ViewID) (View, bool)
}

// AppEvent is an application lifecycle event.
type AppEvent string

const (
	AppLaunch AppEvent = "launch"
	AppResume AppEvent = "resume"
	AppExit   AppEvent = "exit"
)

// App exposes application lifecycle notifications.
type App interface {
	OnApp(e AppEvent, fn func()) (off func())
}
