package scenario

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/observable"
	"github.com/mj1618/a11y-bridge/internal/platform"
	"github.com/mj1618/a11y-bridge/internal/sim"
	"github.com/mj1618/a11y-bridge/internal/trace"
)

// DefaultSDK is the Android API level used when none is given.
const DefaultSDK = 33

// DefaultViewTypes are registered when a scenario names none.
var DefaultViewTypes = []string{"View", "Button", "Label", "Image", "Switch", "TextField", "Slider"}

// Options configure a simulated device.
type Options struct {
	Platform    string
	SDK         int
	FontScale   float64
	ContentSize string
	Service     bool
	ViewTypes   []string
	Sink        *trace.Sink
}

// Session is a live simulated device with the bridge installed. It is not
// safe for concurrent use.
type Session struct {
	kind     platform.Kind
	host     *sim.Host
	provider *platform.Provider
	android  *sim.AndroidSystem
	ios      *sim.IOSSystem
	sink     *trace.Sink

	fontScale *observable.FontScale
	service   *observable.ServiceEnabled

	events []Event
	seq    int
	prev   []model.Snapshot
	closed bool
}

// NewSession boots a device and registers the bridge for the view types.
func NewSession(opts Options) (*Session, error) {
	kind, err := platform.ParseKind(opts.Platform)
	if err != nil {
		return nil, err
	}
	sink := opts.Sink
	if sink == nil {
		sink = trace.Discard()
	}
	s := &Session{kind: kind, sink: sink}

	var native any
	switch kind {
	case platform.Android:
		sdk := opts.SDK
		if sdk == 0 {
			sdk = DefaultSDK
		}
		sys := sim.NewAndroidSystem(sdk)
		if opts.FontScale > 0 {
			sys.Scale = opts.FontScale
		}
		sys.Manager.Enabled = opts.Service
		sys.Manager.TouchExploration = opts.Service
		s.android = sys
		native = sys
		s.host = sim.NewHost(func(*sim.View) any { return sim.NewAndroidView(sys) })
	case platform.IOS:
		sys := sim.NewIOSSystem()
		if opts.ContentSize != "" {
			sys.Category = opts.ContentSize
		}
		sys.VoiceOver = opts.Service
		s.ios = sys
		native = sys
		s.host = sim.NewHost(func(*sim.View) any { return sim.NewIOSView(sys) })
	}

	p, err := platform.NewProvider(kind, platform.Env{System: native, Views: s.host, App: s.host, Sink: sink})
	if err != nil {
		return nil, err
	}
	s.provider = p
	viewTypes := opts.ViewTypes
	if len(viewTypes) == 0 {
		viewTypes = DefaultViewTypes
	}
	p.Manager.Register(s.host, viewTypes...)
	s.host.Launch()

	s.fontScale = p.Scope.FontScale()
	s.fontScale.On(s.recordChange)
	s.service = p.Scope.ServiceEnabled()
	s.service.On(s.recordChange)
	return s, nil
}

// Kind returns the simulated platform.
func (s *Session) Kind() platform.Kind { return s.kind }

// Close fires app exit once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.fontScale.Close()
	s.service.Close()
	s.host.Exit()
}

// Events returns the events recorded so far.
func (s *Session) Events() []Event {
	return append([]Event(nil), s.events...)
}

// Snapshot returns the state of every live view.
func (s *Session) Snapshot() []model.Snapshot {
	views := s.host.Views()
	out := make([]model.Snapshot, 0, len(views))
	for _, v := range views {
		out = append(out, s.snapshotOf(v))
	}
	return out
}

func (s *Session) snapshotOf(v *sim.View) model.Snapshot {
	role, state := a11y.EffectiveRole(v)
	snap := model.Snapshot{
		ID:         uint64(v.ID()),
		Name:       v.Name(),
		Type:       v.TypeName(),
		Loaded:     v.IsLoaded(),
		Accessible: a11y.Accessible.Get(v),
		Hidden:     a11y.Hidden.Get(v),
		Role:       string(role),
		State:      string(state),
		Label:      a11y.Label.Get(v),
		Value:      a11y.Value.Get(v),
		Hint:       a11y.Hint.Get(v),
		LiveRegion: string(a11y.LiveRegion.Get(v)),
		Importance: string(a11y.Importance.Get(v)),
		Traits:     model.TraitNames(a11y.Traits.Get(v)),
		Focused:    s.provider.Focus.IsFocused(v.ID()),
	}
	if role == model.RoleNone {
		snap.Role = ""
	}
	if in, ok := v.Native().(interface{ Inspect() map[string]string }); ok {
		snap.Native = in.Inspect()
	}
	return snap
}

func (s *Session) record(view string, e string, value any) {
	s.seq++
	ev := Event{Seq: s.seq, View: view, Event: e}
	if value != nil {
		ev.Value = fmt.Sprint(value)
	}
	s.events = append(s.events, ev)
}

func (s *Session) recordChange(c observable.Change) {
	s.record("", c.Key, c.Value)
}

// Step executes one action.
func (s *Session) Step(action string, params map[string]any) (StepResult, error) {
	r := StepResult{Action: action}
	if s.closed && action != "snapshot" {
		return r, fmt.Errorf("application has exited")
	}
	switch action {
	case "create":
		return s.create(r, params)
	case "load", "unload", "destroy":
		return s.lifecycle(r, params)
	case "set":
		return s.set(r, params)
	case "get":
		return s.get(r, params)
	case "focus":
		return s.focus(r, params)
	case "blur":
		return s.blur(r, params)
	case "announce":
		return s.imperative(r, params, func(v *sim.View) {
			s.provider.Manager.Announce(v, StringParam(params, "text", ""))
		})
	case "send-event":
		name := StringParam(params, "event", "")
		if name == "" {
			return r, fmt.Errorf("send-event requires event")
		}
		return s.imperative(r, params, func(v *sim.View) {
			s.provider.Manager.SendEvent(v, name, StringParam(params, "text", ""))
		})
	case "post":
		kind := StringParam(params, "type", "")
		if kind == "" {
			return r, fmt.Errorf("post requires type")
		}
		return s.imperative(r, params, func(v *sim.View) {
			s.provider.Manager.PostNotification(v, kind, StringParam(params, "arg", ""))
		})
	case "screen-changed":
		return s.imperative(r, params, func(v *sim.View) {
			s.provider.Manager.ScreenChanged(v, BoolParam(params, "refocus", false))
		})
	case "font-scale":
		return s.setFontScale(r, params)
	case "content-size":
		return s.setContentSize(r, params)
	case "service":
		return s.setService(r, params)
	case "resume":
		s.host.Resume()
		return r, nil
	case "exit":
		s.Close()
		return r, nil
	case "snapshot":
		curr := s.Snapshot()
		r.Changes = model.DiffSnapshots(s.prev, curr)
		if BoolParam(params, "full", false) {
			r.Views = curr
		}
		s.prev = curr
		return r, nil
	case "assert":
		return s.assert(r, params)
	default:
		return r, fmt.Errorf("unknown step type %q: supported %s", action, strings.Join(StepTypes, ", "))
	}
}

// StepTypes lists the supported step actions.
var StepTypes = []string{
	"create", "load", "unload", "destroy", "set", "get", "focus", "blur",
	"announce", "send-event", "post", "screen-changed", "font-scale",
	"content-size", "service", "resume", "exit", "snapshot", "assert",
}

func (s *Session) view(params map[string]any) (*sim.View, error) {
	if id := IntParam(params, "id", 0); id > 0 {
		if v, ok := s.host.View(host.ViewID(id)); ok {
			return v, nil
		}
		return nil, fmt.Errorf("no view with id %d", id)
	}
	name := StringParam(params, "view", "")
	if name == "" {
		return nil, fmt.Errorf("step requires view or id")
	}
	v, ok := s.host.ViewByName(name)
	if !ok {
		return nil, fmt.Errorf("no view named %q", name)
	}
	return v, nil
}

func (s *Session) create(r StepResult, params map[string]any) (StepResult, error) {
	name := StringParam(params, "name", "")
	if name == "" {
		return r, fmt.Errorf("create requires name")
	}
	if _, exists := s.host.ViewByName(name); exists {
		return r, fmt.Errorf("view %q already exists", name)
	}
	v := s.host.NewView(StringParam(params, "type", "View"), name)
	for _, e := range []host.Event{host.EventAccessibilityFocus, host.EventAccessibilityBlur, host.EventAccessibilityFocusChanged} {
		v.On(e, func(d host.EventData) { s.record(name, string(d.Event), d.Value) })
	}
	setProps(v, MapParam(params, "props"))
	if BoolParam(params, "load", true) {
		v.Load()
	}
	r.View = name
	r.ID = uint64(v.ID())
	return r, nil
}

// setProps applies props in sorted key order so runs are repeatable.
func setProps(v *sim.View, props map[string]any) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v.Set(propertyName(k), props[k])
	}
}

// propertyName resolves schema names case-insensitively; other names pass
// through.
func propertyName(name string) string {
	if d, ok := a11y.Lookup(name); ok {
		return d.PropertyName()
	}
	return name
}

func (s *Session) lifecycle(r StepResult, params map[string]any) (StepResult, error) {
	v, err := s.view(params)
	if err != nil {
		return r, err
	}
	r.View = v.Name()
	r.ID = uint64(v.ID())
	switch r.Action {
	case "load":
		v.Load()
	case "unload":
		v.Unload()
	case "destroy":
		v.Destroy()
	}
	return r, nil
}

func (s *Session) set(r StepResult, params map[string]any) (StepResult, error) {
	v, err := s.view(params)
	if err != nil {
		return r, err
	}
	r.View = v.Name()
	if props := MapParam(params, "props"); props != nil {
		setProps(v, props)
		return r, nil
	}
	prop := StringParam(params, "property", "")
	if prop == "" {
		return r, fmt.Errorf("set requires property or props")
	}
	r.Property = propertyName(prop)
	v.Set(r.Property, params["value"])
	r.Value = StringParam(params, "value", "")
	return r, nil
}

func (s *Session) get(r StepResult, params map[string]any) (StepResult, error) {
	v, err := s.view(params)
	if err != nil {
		return r, err
	}
	prop := StringParam(params, "property", "")
	if prop == "" {
		return r, fmt.Errorf("get requires property")
	}
	r.View = v.Name()
	r.Property = propertyName(prop)
	r.Value = readValue(v, r.Property)
	return r, nil
}

// readValue reads a schema property coerced to its type, or any other
// property raw.
func readValue(v *sim.View, name string) string {
	if d, ok := a11y.Lookup(name); ok {
		return formatValue(d.Read(v))
	}
	return formatValue(v.Get(name))
}

func formatValue(val any) string {
	switch x := val.(type) {
	case nil:
		return ""
	case []model.Trait:
		return strings.Join(model.TraitNames(x), ",")
	}
	return fmt.Sprint(val)
}

func (s *Session) focus(r StepResult, params map[string]any) (StepResult, error) {
	v, err := s.view(params)
	if err != nil {
		return r, err
	}
	r.View = v.Name()
	if !v.IsLoaded() {
		return r, fmt.Errorf("view %q is not loaded", v.Name())
	}
	switch nv := v.Native().(type) {
	case *sim.AndroidView:
		return r, s.android.Focus(nv)
	case *sim.IOSView:
		s.ios.Focus(nv)
	}
	return r, nil
}

// blur moves accessibility focus off the bridged views.
func (s *Session) blur(r StepResult, _ map[string]any) (StepResult, error) {
	switch s.kind {
	case platform.Android:
		return r, s.android.ClearFocus()
	default:
		s.ios.Focus(nil)
	}
	return r, nil
}

func (s *Session) imperative(r StepResult, params map[string]any, fn func(v *sim.View)) (StepResult, error) {
	v, err := s.view(params)
	if err != nil {
		return r, err
	}
	r.View = v.Name()
	fn(v)
	return r, nil
}

func (s *Session) setFontScale(r StepResult, params map[string]any) (StepResult, error) {
	if s.android == nil {
		return r, fmt.Errorf("font-scale is android only; use content-size on ios")
	}
	scale := FloatParam(params, "value", 0)
	s.android.SetFontScale(scale)
	r.Value = strconv.FormatFloat(s.fontScale.FontScale(), 'g', -1, 64)
	return r, nil
}

func (s *Session) setContentSize(r StepResult, params map[string]any) (StepResult, error) {
	if s.ios == nil {
		return r, fmt.Errorf("content-size is ios only; use font-scale on android")
	}
	s.ios.SetContentSizeCategory(StringParam(params, "category", ""))
	r.Value = strconv.FormatFloat(s.fontScale.FontScale(), 'g', -1, 64)
	return r, nil
}

func (s *Session) setService(r StepResult, params map[string]any) (StepResult, error) {
	on := BoolParam(params, "enabled", true)
	if s.android != nil {
		s.android.SetService(on, BoolParam(params, "touch-exploration", on))
	} else {
		s.ios.SetVoiceOver(on)
	}
	r.Value = strconv.FormatBool(s.service.Enabled())
	return r, nil
}

// assert compares a property, native attribute or observable key with
// equals. Exactly one of property, native or observable is required.
func (s *Session) assert(r StepResult, params map[string]any) (StepResult, error) {
	want := StringParam(params, "equals", "")
	var got string
	switch {
	case params["observable"] != nil:
		key := StringParam(params, "observable", "")
		r.Property = key
		switch key {
		case observable.KeyFontScale:
			got = strconv.FormatFloat(s.fontScale.FontScale(), 'g', -1, 64)
		case observable.KeyIsExtraSmall:
			got = strconv.FormatBool(s.fontScale.IsExtraSmall())
		case observable.KeyIsExtraLarge:
			got = strconv.FormatBool(s.fontScale.IsExtraLarge())
		case observable.KeyServiceEnabled:
			got = strconv.FormatBool(s.service.Enabled())
		default:
			return r, fmt.Errorf("unknown observable key %q", key)
		}
	default:
		v, err := s.view(params)
		if err != nil {
			return r, err
		}
		r.View = v.Name()
		if key := StringParam(params, "native", ""); key != "" {
			r.Property = "native." + key
			got = s.snapshotOf(v).Native[key]
		} else if prop := StringParam(params, "property", ""); prop != "" {
			r.Property = propertyName(prop)
			got = readValue(v, r.Property)
		} else if params["focused"] != nil {
			r.Property = "focused"
			got = strconv.FormatBool(s.provider.Focus.IsFocused(v.ID()))
			want = StringParam(params, "focused", "")
		} else {
			return r, fmt.Errorf("assert requires property, native, focused or observable")
		}
	}
	pass := got == want
	r.Pass = &pass
	r.Value = got
	if !pass {
		r.Value = fmt.Sprintf("%s is %q, want %q", r.Property, got, want)
	}
	return r, nil
}
