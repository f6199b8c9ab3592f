package sim

import (
	"testing"

	"github.com/mj1618/a11y-bridge/internal/host"
)

func TestViewGetFallsBackToDefaults(t *testing.T) {
	h := NewHost(nil)
	h.Register("Label", host.PropertyHooks{Name: "a", Default: "def"})
	h.Register("Label", host.PropertyHooks{Name: "b", Default: "x", GetDefault: func(host.View) any { return "native" }})
	v := h.NewView("Label", "title")

	if got := v.Get("a"); got != "def" {
		t.Errorf("a = %v, want def", got)
	}
	if got := v.Get("b"); got != "native" {
		t.Errorf("b = %v, want native", got)
	}
	v.Set("a", "explicit")
	if got := v.Get("a"); got != "explicit" {
		t.Errorf("a = %v, want explicit", got)
	}
	if v.Get("missing") != nil {
		t.Error("unregistered property should read nil")
	}
}

func TestRegisterReplacesByName(t *testing.T) {
	h := NewHost(nil)
	h.Register("Label", host.PropertyHooks{Name: "a", Default: 1})
	h.Register("Label", host.PropertyHooks{Name: "a", Default: 2})
	if got := h.Properties("Label"); len(got) != 1 {
		t.Fatalf("properties = %v", got)
	}
	if got := h.NewView("Label", "").Get("a"); got != 2 {
		t.Errorf("a = %v, want 2", got)
	}
}

func TestLoadReplaysInSetOrder(t *testing.T) {
	var applied []string
	h := NewHost(func(*View) any { return struct{}{} })
	for _, name := range []string{"a", "b"} {
		h.Register("Button", host.PropertyHooks{Name: name, SetNative: func(v host.View, val any) {
			applied = append(applied, val.(string))
		}})
	}
	v := h.NewView("Button", "")
	v.Set("b", "first")
	v.Set("a", "second")
	if len(applied) != 0 {
		t.Fatalf("set-native ran before load: %v", applied)
	}

	loadedSeen := false
	v.On(host.EventLoaded, func(host.EventData) { loadedSeen = len(applied) == 2 })
	v.Load()
	if !loadedSeen {
		t.Error("loaded fired before replay finished")
	}
	if len(applied) != 2 || applied[0] != "first" || applied[1] != "second" {
		t.Errorf("applied = %v", applied)
	}
	v.Set("a", "third")
	if applied[len(applied)-1] != "third" {
		t.Errorf("set while loaded not applied: %v", applied)
	}
}

func TestOnceAndOff(t *testing.T) {
	v := NewHost(nil).NewView("Button", "")
	count := 0
	v.Once(host.EventAccessibilityFocus, func(host.EventData) { count++ })
	off := v.On(host.EventAccessibilityFocus, func(host.EventData) { count += 10 })

	v.Notify(host.EventData{Event: host.EventAccessibilityFocus})
	v.Notify(host.EventData{Event: host.EventAccessibilityFocus})
	if count != 21 {
		t.Errorf("count = %d, want 21", count)
	}
	off()
	v.Notify(host.EventData{Event: host.EventAccessibilityFocus})
	if count != 21 {
		t.Errorf("listener not removed, count = %d", count)
	}
	if n := v.ListenerCount(host.EventAccessibilityFocus); n != 0 {
		t.Errorf("listeners = %d", n)
	}
}

func TestDestroyRemovesView(t *testing.T) {
	h := NewHost(func(*View) any { return struct{}{} })
	v := h.NewView("Button", "ok")
	v.Load()
	unloaded := false
	v.On(host.EventUnloaded, func(host.EventData) { unloaded = true })

	if _, ok := h.Lookup(v.ID()); !ok {
		t.Fatal("view not found")
	}
	v.Destroy()
	if !unloaded {
		t.Error("destroy should unload first")
	}
	if _, ok := h.Lookup(v.ID()); ok {
		t.Error("destroyed view still resolvable")
	}
	if _, ok := h.ViewByName("ok"); ok {
		t.Error("destroyed view found by name")
	}
	if v.Native() != nil {
		t.Error("native element kept after destroy")
	}
}

func TestViewByNameAndOrder(t *testing.T) {
	h := NewHost(nil)
	a := h.NewView("Button", "a")
	b := h.NewView("Button", "b")
	if got, _ := h.ViewByName("b"); got != b {
		t.Errorf("ViewByName(b) = %v", got)
	}
	views := h.Views()
	if len(views) != 2 || views[0] != a || views[1] != b {
		t.Errorf("views = %v", views)
	}
}

func TestAppEvents(t *testing.T) {
	h := NewHost(nil)
	var got []string
	h.OnApp(host.AppResume, func() { got = append(got, "r1") })
	off := h.OnApp(host.AppResume, func() { got = append(got, "r2") })
	h.OnApp(host.AppExit, func() { got = append(got, "exit") })

	h.Resume()
	off()
	h.Resume()
	h.Exit()
	want := []string{"r1", "r2", "r1", "exit"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
	if n := h.AppListeners(host.AppResume); n != 1 {
		t.Errorf("resume listeners = %d", n)
	}
}
