package observable

import (
	"math"
	"testing"
)

func TestClosestFontScale_Table(t *testing.T) {
	tests := []struct {
		raw   float64
		valid []float64
		want  float64
	}{
		{1, AndroidFontScales, 1},
		{1.07, AndroidFontScales, 1},
		{1.08, AndroidFontScales, 1.15},
		{2, AndroidFontScales, 1.3},
		{0.1, AndroidFontScales, 0.85},
		{0, AndroidFontScales, 1},
		{-3, AndroidFontScales, 1},
		{math.NaN(), IOSFontScales, 1},
		{math.Inf(1), IOSFontScales, 4},
		{math.Inf(1), AndroidFontScales, 1.3},
		{math.Inf(-1), IOSFontScales, 1},
		{1.75, IOSFontScales, 1.5},
		{1.76, IOSFontScales, 2},
		{9, IOSFontScales, 4},
		{0.6, IOSFontScales, 0.5},
		{1.4, IOSFontScales, 1.3},
	}
	for _, tt := range tests {
		if got := ClosestFontScale(tt.raw, tt.valid); got != tt.want {
			t.Errorf("ClosestFontScale(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestClosestFontScale_TieGoesToSmaller(t *testing.T) {
	valid := []float64{2, 1}
	if got := ClosestFontScale(1.5, valid); got != 1 {
		t.Errorf("tie: got %v, want 1", got)
	}
}

func TestClosestFontScale_AlwaysMinimalMember(t *testing.T) {
	for _, valid := range [][]float64{AndroidFontScales, IOSFontScales} {
		for raw := 0.01; raw < 5; raw += 0.013 {
			got := ClosestFontScale(raw, valid)
			member := false
			for _, v := range valid {
				if v == got {
					member = true
				}
				if math.Abs(raw-v) < math.Abs(raw-got) {
					t.Fatalf("raw %v: %v is closer than %v", raw, v, got)
				}
			}
			if !member {
				t.Fatalf("raw %v: result %v not in valid set", raw, got)
			}
		}
	}
}

func TestNewFontScaleState(t *testing.T) {
	tests := []struct {
		scale        float64
		small, large bool
	}{
		{0.5, true, false},
		{0.85, false, false},
		{1.5, false, false},
		{2, false, true},
	}
	for _, tt := range tests {
		s := NewFontScaleState(tt.scale)
		if s.ExtraSmall != tt.small || s.ExtraLarge != tt.large {
			t.Errorf("scale %v: got small=%v large=%v", tt.scale, s.ExtraSmall, s.ExtraLarge)
		}
	}
}
