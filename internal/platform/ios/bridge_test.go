package ios_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/platform"
	"github.com/mj1618/a11y-bridge/internal/platform/ios"
	"github.com/mj1618/a11y-bridge/internal/sim"
	"github.com/mj1618/a11y-bridge/internal/trace"
)

type device struct {
	host *sim.Host
	sys  *sim.IOSSystem
	p    *platform.Provider
	log  *bytes.Buffer
}

func newDevice(t *testing.T) *device {
	t.Helper()
	sys := sim.NewIOSSystem()
	h := sim.NewHost(func(*sim.View) any { return sim.NewIOSView(sys) })
	var buf bytes.Buffer
	sink := trace.NewText(&buf)
	sink.SetEnabled(true)
	p, err := platform.NewProvider(platform.IOS, platform.Env{System: sys, Views: h, App: h, Sink: sink})
	if err != nil {
		t.Fatal(err)
	}
	p.Manager.Register(h, "Button")
	return &device{host: h, sys: sys, p: p, log: &buf}
}

func (d *device) view(props map[string]any) (*sim.View, *sim.IOSView) {
	v := d.host.NewView("Button", "")
	for k, val := range props {
		v.Set(k, val)
	}
	v.Load()
	return v, v.Native().(*sim.IOSView)
}

func TestDirectProperties(t *testing.T) {
	d := newDevice(t)
	_, nv := d.view(map[string]any{
		"accessible":              true,
		"accessibilityLabel":      "Play",
		"accessibilityValue":      "paused",
		"accessibilityHint":       "Starts playback",
		"accessibilityLanguage":   "en-GB",
		"accessibilityHidden":     false,
		"accessibilityIdentifier": "play-button",
	})
	if !nv.IsElement || nv.Label != "Play" || nv.Value != "paused" || nv.Hint != "Starts playback" {
		t.Errorf("native = %+v", nv)
	}
	if nv.Language != "en-GB" || nv.Identifier != "play-button" || nv.Hidden {
		t.Errorf("native = %+v", nv)
	}
}

func TestTraitsComposition(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		want  uint64
	}{
		{"role", map[string]any{"accessibilityRole": "button"}, model.TraitBitButton},
		{"role and explicit", map[string]any{"accessibilityRole": "link", "accessibilityTraits": "header plays"},
			model.TraitBitLink | model.TraitBitHeader | model.TraitBitPlaysSound},
		{"checked switch", map[string]any{"accessibilityRole": "switch", "accessibilityState": "checked"},
			model.TraitBitButton | model.TraitBitSelected},
		{"disabled", map[string]any{"accessibilityRole": "button", "accessibilityState": "disabled"},
			model.TraitBitButton | model.TraitBitNotEnabled},
		{"media", map[string]any{"accessibilityMediaSession": true}, model.TraitBitStartsMediaSession},
		{"live region", map[string]any{"accessibilityLiveRegion": "polite"}, model.TraitBitUpdatesFrequently},
		{"unknown trait dropped", map[string]any{"accessibilityTraits": []any{"button", "sparkly"}}, model.TraitBitButton},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDevice(t)
			_, nv := d.view(tt.props)
			if nv.Traits != tt.want {
				t.Errorf("traits = %b, want %b", nv.Traits, tt.want)
			}
		})
	}
}

func TestTraitsRecomputedOnChange(t *testing.T) {
	d := newDevice(t)
	v, nv := d.view(map[string]any{"accessibilityRole": "button"})
	v.Set("accessibilityState", "selected")
	if nv.Traits != model.TraitBitButton|model.TraitBitSelected {
		t.Errorf("traits = %b", nv.Traits)
	}
	v.Set("accessibilityState", "")
	if nv.Traits != model.TraitBitButton {
		t.Errorf("traits = %b", nv.Traits)
	}
}

func TestComponentTypeStoredOnly(t *testing.T) {
	d := newDevice(t)
	v, nv := d.view(map[string]any{"accessibilityComponentType": "button", "importantForAccessibility": "no"})
	if nv.Traits != 0 {
		t.Errorf("component type must not affect ios traits: %b", nv.Traits)
	}
	if got := v.Get("accessibilityComponentType"); got != "button" {
		t.Errorf("stored value = %v", got)
	}
}

func TestFocusTrackingInfersLoss(t *testing.T) {
	d := newDevice(t)
	a, anv := d.view(nil)
	b, bnv := d.view(nil)

	var got []string
	for name, v := range map[string]*sim.View{"a": a, "b": b} {
		name := name
		v.On(host.EventAccessibilityFocusChanged, func(e host.EventData) {
			got = append(got, name+"="+boolString(e.Value))
		})
	}
	d.sys.Focus(anv)
	d.sys.Focus(bnv)
	d.sys.Focus(nil)

	want := "a=true a=false b=true b=false"
	if strings.Join(got, " ") != want {
		t.Errorf("events = %v, want %s", got, want)
	}
	if _, ok := d.p.Focus.LastFocused(); ok {
		t.Error("focus left the bridged views")
	}
}

func boolString(v any) string {
	if b, ok := v.(bool); ok && b {
		return "true"
	}
	return "false"
}

func TestScreenChangedTargetsView(t *testing.T) {
	d := newDevice(t)
	page, _ := d.view(nil)
	d.p.Manager.ScreenChanged(page, true)
	want := sim.Posted{Name: ios.ScreenChangedNotification, Arg: fmt.Sprintf("view:%d", page.ID())}
	if len(d.sys.Posted) != 1 || d.sys.Posted[0] != want {
		t.Errorf("posted = %+v, want %+v", d.sys.Posted, want)
	}
}

func TestAnnouncementDefaultsToLabel(t *testing.T) {
	d := newDevice(t)
	v, _ := d.view(map[string]any{"accessibilityLabel": "Saved"})
	d.p.Manager.Announce(v, "")
	d.p.Manager.PostNotification(v, "announcement", "Sent")
	if len(d.sys.Posted) != 2 {
		t.Fatalf("posted = %+v", d.sys.Posted)
	}
	if d.sys.Posted[0] != (sim.Posted{Name: ios.AnnouncementNotification, Arg: "Saved"}) {
		t.Errorf("posted[0] = %+v", d.sys.Posted[0])
	}
	if d.sys.Posted[1].Arg != "Sent" {
		t.Errorf("posted[1] = %+v", d.sys.Posted[1])
	}
}

func TestSendEventUnsupported(t *testing.T) {
	d := newDevice(t)
	v, _ := d.view(nil)
	d.p.Manager.SendEvent(v, "view_clicked", "")
	if len(d.sys.Posted) != 0 {
		t.Errorf("posted = %+v", d.sys.Posted)
	}
	if !strings.Contains(d.log.String(), "unsupported on ios") {
		t.Error("unsupported event not traced")
	}
}

func TestScreenChangedRefocus(t *testing.T) {
	d := newDevice(t)
	page, _ := d.view(nil)
	btn, bnv := d.view(nil)
	d.sys.SetVoiceOver(true)
	d.sys.Focus(bnv)

	refocused := 0
	btn.On(host.EventAccessibilityFocus, func(host.EventData) { refocused++ })
	d.p.Manager.ScreenChanged(page, true)

	want := []sim.Posted{{Name: ios.ScreenChangedNotification, Arg: fmt.Sprintf("view:%d", btn.ID())}}
	if len(d.sys.Posted) != 1 || d.sys.Posted[0] != want[0] {
		t.Errorf("posted = %+v, want %+v", d.sys.Posted, want)
	}
	if d.sys.Focused() != bnv || refocused != 1 {
		t.Errorf("refocus failed: focused=%v events=%d", d.sys.Focused(), refocused)
	}
}

func TestObservables(t *testing.T) {
	d := newDevice(t)
	fs := d.p.Scope.FontScale()
	svc := d.p.Scope.ServiceEnabled()

	d.sys.SetContentSizeCategory("UICTContentSizeCategoryAccessibilityXL")
	if fs.FontScale() != 3 || !fs.IsExtraLarge() {
		t.Errorf("scale = %v, extra large = %v", fs.FontScale(), fs.IsExtraLarge())
	}
	d.sys.SetContentSizeCategory("UICTContentSizeCategoryXS")
	if !fs.IsExtraSmall() {
		t.Error("XS should be extra small")
	}
	d.sys.SetContentSizeCategory("bogus")
	if fs.FontScale() != 1 {
		t.Errorf("unknown category scale = %v", fs.FontScale())
	}
	d.sys.SetVoiceOver(true)
	if !svc.Enabled() {
		t.Error("voiceover should enable the service flag")
	}
	d.host.Exit()
	if n := d.sys.Listeners(); n != 0 {
		t.Errorf("observers after exit = %d", n)
	}
}

func TestContentSizeScale(t *testing.T) {
	if got := ios.ContentSizeScale("UICTContentSizeCategoryL"); got != 1 {
		t.Errorf("L = %v", got)
	}
	if got := ios.ContentSizeScale(""); got != 1 {
		t.Errorf("empty = %v", got)
	}
}
