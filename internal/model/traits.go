package model

import (
	"sort"
	"strings"
)

// UIAccessibilityTraits bit values.
const (
	TraitBitNone                    uint64 = 0
	TraitBitButton                  uint64 = 1 << 0
	TraitBitLink                    uint64 = 1 << 1
	TraitBitImage                   uint64 = 1 << 2
	TraitBitSelected                uint64 = 1 << 3
	TraitBitPlaysSound              uint64 = 1 << 4
	TraitBitKeyboardKey             uint64 = 1 << 5
	TraitBitStaticText              uint64 = 1 << 6
	TraitBitSummaryElement          uint64 = 1 << 7
	TraitBitNotEnabled              uint64 = 1 << 8
	TraitBitUpdatesFrequently       uint64 = 1 << 9
	TraitBitSearchField             uint64 = 1 << 10
	TraitBitStartsMediaSession      uint64 = 1 << 11
	TraitBitAdjustable              uint64 = 1 << 12
	TraitBitAllowsDirectInteraction uint64 = 1 << 13
	TraitBitCausesPageTurn          uint64 = 1 << 14
	TraitBitTabBar                  uint64 = 1 << 15
	TraitBitHeader                  uint64 = 1 << 16
)

// Trait is an iOS accessibility trait tag.
type Trait string

const (
	TraitNone                    Trait = "none"
	TraitButton                  Trait = "button"
	TraitLink                    Trait = "link"
	TraitSearch                  Trait = "search"
	TraitImage                   Trait = "image"
	TraitSelected                Trait = "selected"
	TraitPlays                   Trait = "plays"
	TraitKey                     Trait = "key"
	TraitText                    Trait = "text"
	TraitSummary                 Trait = "summary"
	TraitDisabled                Trait = "disabled"
	TraitFrequentUpdates         Trait = "frequentupdates"
	TraitStartsMedia             Trait = "startsmedia"
	TraitAdjustable              Trait = "adjustable"
	TraitAllowsDirectInteraction Trait = "allowsdirectinteraction"
	TraitPageTurn                Trait = "pageturn"
	TraitHeader                  Trait = "header"
)

// TraitBits maps each trait tag to its UIKit bit.
var TraitBits = map[Trait]uint64{
	TraitNone:                    TraitBitNone,
	TraitButton:                  TraitBitButton,
	TraitLink:                    TraitBitLink,
	TraitSearch:                  TraitBitSearchField,
	TraitImage:                   TraitBitImage,
	TraitSelected:                TraitBitSelected,
	TraitPlays:                   TraitBitPlaysSound,
	TraitKey:                     TraitBitKeyboardKey,
	TraitText:                    TraitBitStaticText,
	TraitSummary:                 TraitBitSummaryElement,
	TraitDisabled:                TraitBitNotEnabled,
	TraitFrequentUpdates:         TraitBitUpdatesFrequently,
	TraitStartsMedia:             TraitBitStartsMediaSession,
	TraitAdjustable:              TraitBitAdjustable,
	TraitAllowsDirectInteraction: TraitBitAllowsDirectInteraction,
	TraitPageTurn:                TraitBitCausesPageTurn,
	TraitHeader:                  TraitBitHeader,
}

// traitOrder is the canonical trait order, ascending by bit.
var traitOrder = func() []Trait {
	var out []Trait
	for t, bit := range TraitBits {
		if bit != TraitBitNone {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return TraitBits[out[i]] < TraitBits[out[j]] })
	return out
}()

// ParseTraits converts a trait list (comma/space separated string or a
// slice) to trait tags. "none" contributes nothing. Unrecognized tags are
// dropped and returned separately.
func ParseTraits(v any) (traits []Trait, unknown []string) {
	for _, tag := range SplitTags(v) {
		if t, ok := traitByName(tag); ok {
			if t != TraitNone {
				traits = append(traits, t)
			}
			continue
		}
		unknown = append(unknown, tag)
	}
	return traits, unknown
}

func traitByName(tag string) (Trait, bool) {
	t := Trait(strings.ToLower(tag))
	_, ok := TraitBits[t]
	return t, ok
}

// TraitsMask ORs the bits of every trait.
func TraitsMask(traits []Trait) uint64 {
	var mask uint64
	for _, t := range traits {
		mask |= TraitBits[t]
	}
	return mask
}

// MaskTraits expands a bitmask into trait tags in canonical order. Bits
// with no trait tag are ignored.
func MaskTraits(mask uint64) []Trait {
	var out []Trait
	for _, t := range traitOrder {
		if mask&TraitBits[t] != 0 {
			out = append(out, t)
		}
	}
	return out
}

// TraitNames converts traits to their string tags.
func TraitNames(traits []Trait) []string {
	if len(traits) == 0 {
		return nil
	}
	out := make([]string, len(traits))
	for i, t := range traits {
		out[i] = string(t)
	}
	return out
}
