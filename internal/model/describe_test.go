package model

import "testing"

func TestComposeDescription(t *testing.T) {
	tests := []struct {
		name  string
		parts Parts
		want  string
	}{
		{"all", Parts{Label: "Volume", Value: "50 percent", Hint: "Swipe up to raise"}, "Volume. 50 percent. Swipe up to raise"},
		{"label only", Parts{Label: "Save"}, "Save"},
		{"skip empty value", Parts{Label: "Save", Hint: "Saves the draft"}, "Save. Saves the draft"},
		{"value and hint", Parts{Value: "On", Hint: "Double tap to toggle"}, "On. Double tap to toggle"},
		{"trailing periods", Parts{Label: "Done.", Hint: "Closes the form."}, "Done. Closes the form"},
		{"whitespace only", Parts{Label: "  ", Value: "\t"}, ""},
		{"lone period", Parts{Label: "."}, ""},
		{"extra last", Parts{Label: "Settings", Extra: "heading"}, "Settings. heading"},
		{"empty", Parts{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeDescription(tt.parts); got != tt.want {
				t.Errorf("ComposeDescription(%+v) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestComposeDescription_Idempotent(t *testing.T) {
	p := Parts{Label: "Play", Value: "paused", Hint: "Starts playback"}
	first := ComposeDescription(p)
	for i := 0; i < 3; i++ {
		if got := ComposeDescription(p); got != first {
			t.Fatalf("recompose %d = %q, want %q", i, got, first)
		}
	}
}

func TestComposeDescription_SingleFieldChange(t *testing.T) {
	p := Parts{Label: "Play", Value: "paused", Hint: "Starts playback"}
	p.Value = "playing"
	if got := ComposeDescription(p); got != "Play. playing. Starts playback" {
		t.Errorf("got %q", got)
	}
}

func TestAndroidEventType(t *testing.T) {
	if typ, ok := AndroidEventType("Announcement"); !ok || typ != AndroidEventAnnouncement {
		t.Errorf("announcement: got %d, %v", typ, ok)
	}
	if _, ok := AndroidEventType("shake"); ok {
		t.Error("unknown event should not resolve")
	}
	for _, name := range []string{"all", "max_text_length", "invalid_position"} {
		if typ, ok := AndroidEventType(name); ok {
			t.Errorf("%s resolved to %d, want no event type", name, typ)
		}
	}
	names := AndroidEventNames()
	if len(names) != len(AndroidEvents) || names[0] != "announcement" {
		t.Errorf("names not sorted or incomplete: %v", names[:3])
	}
	for name, typ := range AndroidEvents {
		if typ <= 0 {
			t.Errorf("%s has non-event type %d", name, typ)
		}
	}
}

func TestParseNotification(t *testing.T) {
	if n, ok := ParseNotification("Screen"); !ok || n != NotificationScreen {
		t.Errorf("got %q, %v", n, ok)
	}
	if _, ok := ParseNotification("vibrate"); ok {
		t.Error("unknown notification should not resolve")
	}
}
