package model

import "testing"

func TestParseLiveRegion(t *testing.T) {
	tests := []struct {
		input string
		want  LiveRegion
		ok    bool
	}{
		{"polite", LiveRegionPolite, true},
		{"POLITE", LiveRegionPolite, true},
		{"Assertive", LiveRegionAssertive, true},
		{"none", LiveRegionNone, true},
		{"", LiveRegionNone, true},
		{"loud", LiveRegionNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseLiveRegion(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLiveRegion(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLiveRegionAndroid(t *testing.T) {
	for _, lr := range []LiveRegion{LiveRegionNone, LiveRegionPolite, LiveRegionAssertive} {
		if back := LiveRegionFromAndroid(lr.Android()); back != lr {
			t.Errorf("%q: round trip gave %q", lr, back)
		}
	}
}

func TestImportanceFromAndroid(t *testing.T) {
	tests := []struct {
		raw  int
		want Importance
	}{
		{0, ImportanceAuto},
		{1, ImportanceYes},
		{2, ImportanceNo},
		{4, ImportanceNoHideDescendants},
		{3, ImportanceAuto},
		{-7, ImportanceAuto},
	}
	for _, tt := range tests {
		if got := ImportanceFromAndroid(tt.raw); got != tt.want {
			t.Errorf("ImportanceFromAndroid(%d) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseImportance(t *testing.T) {
	if got, ok := ParseImportance("No-Hide-Descendants"); !ok || got != ImportanceNoHideDescendants {
		t.Errorf("got %q, %v", got, ok)
	}
	if got, ok := ParseImportance("maybe"); ok || got != ImportanceAuto {
		t.Errorf("unknown: got %q, %v", got, ok)
	}
}

func TestParseState(t *testing.T) {
	if got, ok := ParseState("Checked"); !ok || got != StateChecked {
		t.Errorf("got %q, %v", got, ok)
	}
	if got, ok := ParseState("pressed"); ok || got != StateNone {
		t.Errorf("unknown: got %q, %v", got, ok)
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags(" Button,,link  button\tIMAGE ")
	want := []string{"button", "link", "image"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if SplitTags(nil) != nil {
		t.Error("nil input should give nil")
	}
}
