package hud

import (
	"testing"

	"chosenoffset.com/omegathunder/internal/render/scene"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		d    int
		want scene.Glyph
	}{
		{0, scene.Glyph{U: 0, V: 0}},
		{3, scene.Glyph{U: 0.75, V: 0}},
		{5, scene.Glyph{U: 0.25, V: 0.25}},
		{9, scene.Glyph{U: 0.25, V: 0.5}},
	}
	for _, tt := range tests {
		if got := Glyph(tt.d); got != tt.want {
			t.Errorf("Glyph(%d): expected %v, got %v", tt.d, tt.want, got)
		}
	}
}

func TestDigitsPadsAndSaturates(t *testing.T) {
	got := Digits(42, 4)
	if len(got) != 4 {
		t.Fatalf("Expected 4 glyphs, got %d", len(got))
	}
	want := []scene.Glyph{Glyph(0), Glyph(0), Glyph(4), Glyph(2)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("digit %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	sat := Digits(123, 2)
	if sat[0] != Glyph(9) || sat[1] != Glyph(9) {
		t.Errorf("Expected 99 when the value does not fit, got %v", sat)
	}

	if n := len(Digits(0, 0)); n != 1 {
		t.Errorf("Expected a single zero, got %d glyphs", n)
	}
	if n := len(Digits(1200, 0)); n != 4 {
		t.Errorf("Expected 4 glyphs, got %d", n)
	}
}

func TestHP(t *testing.T) {
	tests := []struct {
		hp     int
		factor float32
		low    bool
	}{
		{1000, 1, false},
		{251, 0.251, false},
		{250, 0.25, true},
		{-40, 0, true},
	}
	for _, tt := range tests {
		f, low := HP(tt.hp, 1000)
		if f != tt.factor || low != tt.low {
			t.Errorf("HP(%d): expected (%f,%v), got (%f,%v)", tt.hp, tt.factor, tt.low, f, low)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(3_723_000); got != "01:02:03" {
		t.Errorf("Expected 01:02:03, got %s", got)
	}
	if got := FormatClock(359_999_000); got != "99:59:59" {
		t.Errorf("Expected 99:59:59, got %s", got)
	}
}

func TestSummary(t *testing.T) {
	s := Summary(100_000, 61_000, 12, 100_000)
	if !s.Win {
		t.Error("Expected a win at the winning score")
	}
	if len(s.Minutes) != 1 || s.Minutes[0] != Glyph(1) {
		t.Errorf("Expected one minute, got %v", s.Minutes)
	}
	if len(s.Defeated) != 2 {
		t.Errorf("Expected two defeated digits, got %d", len(s.Defeated))
	}
	if Summary(99_999, 0, 0, 100_000).Win {
		t.Error("Expected a loss below the winning score")
	}
}
