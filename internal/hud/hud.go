// Package hud turns game numbers into the overlay the renderer draws: digit
// glyphs from the 4x4 font sheet, the HP bar and the play clock.
package hud

import (
	"fmt"

	"chosenoffset.com/omegathunder/internal/render/scene"
)

// Digit field widths.
const (
	ScoreDigits    = 9
	HPDigits       = 4
	LevelDigits    = 2
	TimeDigits     = 2
	DefeatedDigits = 6
)

// lowHP is the share of max hp at or below which the bar turns red.
const lowHP = 0.25

const cell = 0.25

// Glyph returns the font sheet cell for digit d.
func Glyph(d int) scene.Glyph {
	return scene.Glyph{U: float32(d%4) * cell, V: float32(d/4) * cell}
}

// Digits returns the glyphs of n, most significant first. A positive width
// pads with leading zeros and saturates at the largest value that fits;
// width 0 uses as many digits as n needs.
func Digits(n, width int) []scene.Glyph {
	if n < 0 {
		n = 0
	}
	if width > 0 {
		max := 1
		for i := 0; i < width; i++ {
			max *= 10
		}
		if n >= max {
			n = max - 1
		}
	}

	var rev []int
	for {
		rev = append(rev, n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	for len(rev) < width {
		rev = append(rev, 0)
	}

	out := make([]scene.Glyph, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = Glyph(d)
	}
	return out
}

// HP returns the bar fill in [0,1] and whether the bar shows as low.
func HP(hp, max int) (factor float32, low bool) {
	if max <= 0 || hp <= 0 {
		return 0, true
	}
	factor = float32(hp) / float32(max)
	if factor > 1 {
		factor = 1
	}
	return factor, factor <= lowHP
}

// Clock splits a millisecond duration into hours, minutes and seconds.
func Clock(ms int) (h, m, s int) {
	s = ms / 1000
	m = s / 60
	h = m / 60
	return h, m % 60, s % 60
}

// FormatClock renders ms as hh:mm:ss.
func FormatClock(ms int) string {
	h, m, s := Clock(ms)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Stats are the numbers shown during play.
type Stats struct {
	HP, MaxHP  int
	GunLevel   int
	BladeLevel int
	Score      int
	GameTimeMs int
	Paused     bool
}

// Build returns the in-game overlay for s.
func Build(s Stats) *scene.HUD {
	factor, low := HP(s.HP, s.MaxHP)
	hp := s.HP
	if hp < 0 {
		hp = 0
	}
	return &scene.HUD{
		HPFactor:   factor,
		HPLow:      low,
		HP:         Digits(hp, HPDigits),
		MaxHP:      Digits(s.MaxHP, HPDigits),
		GunLevel:   Digits(s.GunLevel, LevelDigits),
		BladeLevel: Digits(s.BladeLevel, LevelDigits),
		Score:      Digits(s.Score, ScoreDigits),
		Time:       FormatClock(s.GameTimeMs),
		Paused:     s.Paused,
	}
}

// Summary returns the game over overlay.
func Summary(score, gameTimeMs, defeated, winningScore int) *scene.Summary {
	h, m, s := Clock(gameTimeMs)
	return &scene.Summary{
		Win:      score >= winningScore,
		Score:    Digits(score, 0),
		Hours:    Digits(h, 0),
		Minutes:  Digits(m, 0),
		Seconds:  Digits(s, 0),
		Defeated: Digits(defeated, 0),
	}
}
