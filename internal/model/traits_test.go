package model

import (
	"reflect"
	"testing"
)

func TestParseTraits_String(t *testing.T) {
	traits, unknown := ParseTraits("button, Header  frequentUpdates,bogus")
	want := []Trait{TraitButton, TraitHeader, TraitFrequentUpdates}
	if !reflect.DeepEqual(traits, want) {
		t.Errorf("traits = %v, want %v", traits, want)
	}
	if !reflect.DeepEqual(unknown, []string{"bogus"}) {
		t.Errorf("unknown = %v, want [bogus]", unknown)
	}
}

func TestParseTraits_Slices(t *testing.T) {
	traits, _ := ParseTraits([]any{"link", "image", "none"})
	if !reflect.DeepEqual(traits, []Trait{TraitLink, TraitImage}) {
		t.Errorf("[]any: got %v", traits)
	}
	traits, _ = ParseTraits([]string{"LINK", "link"})
	if !reflect.DeepEqual(traits, []Trait{TraitLink}) {
		t.Errorf("[]string: got %v", traits)
	}
}

func TestTraitsMask(t *testing.T) {
	mask := TraitsMask([]Trait{TraitButton, TraitSelected, TraitHeader})
	want := TraitBitButton | TraitBitSelected | TraitBitHeader
	if mask != want {
		t.Errorf("mask = %d, want %d", mask, want)
	}
}

func TestMaskRoundTrip_RecognizedSubset(t *testing.T) {
	inputs := []string{
		"button selected",
		"header,link,bogus,image",
		"adjustable startsMedia pageTurn allowsDirectInteraction",
		"none",
		"plays key text summary disabled search",
		"",
	}
	for _, in := range inputs {
		traits, _ := ParseTraits(in)
		back := MaskTraits(TraitsMask(traits))

		wantSet := make(map[Trait]bool)
		for _, tr := range traits {
			wantSet[tr] = true
		}
		gotSet := make(map[Trait]bool)
		for _, tr := range back {
			gotSet[tr] = true
		}
		if !reflect.DeepEqual(wantSet, gotSet) {
			t.Errorf("%q: round trip = %v, want %v", in, back, traits)
		}
	}
}

func TestMaskTraits_CanonicalOrder(t *testing.T) {
	got := MaskTraits(TraitBitHeader | TraitBitButton | TraitBitLink)
	want := []Trait{TraitButton, TraitLink, TraitHeader}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMaskTraits_IgnoresTabBar(t *testing.T) {
	if got := MaskTraits(TraitBitTabBar); len(got) != 0 {
		t.Errorf("tab bar bit has no tag, got %v", got)
	}
}
