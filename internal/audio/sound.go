package audio

import "time"

// SoundID names one entry of the sound catalog.
type SoundID int

// Sounds used by the game.
const (
	SoundTitleBGM SoundID = iota
	SoundGameBGM
	SoundGameOverBGM
	SoundSelect
	SoundStarting
	SoundEnding
	SoundFootsteps
	SoundLaser
	SoundEnemyLaser
	SoundBlade1
	SoundBlade2
	SoundGrunt
	SoundHurt1
	SoundHurt2
	SoundExplosion
	SoundLevelUp
	SoundAlarm
	SoundFence
	SoundNice
	soundCount
)

// SoundCount is the size of the catalog.
const SoundCount = int(soundCount)

// Sound describes a catalog entry. MinDistance and MaxDistance are zero for
// sounds that are not positioned in the world.
type Sound struct {
	Name        string
	Duration    time.Duration
	Music       bool
	MinDistance float32
	MaxDistance float32
	tones       []tone
}

// Positional reports whether the sound is attenuated by listener distance.
func (s Sound) Positional() bool { return s.MaxDistance > 0 }

// catalog holds the synthesized fallback for every sound. A file named
// <Name>.wav in the sounds directory replaces the synthesized version.
var catalog = [soundCount]Sound{
	SoundTitleBGM: {
		Name: "title", Duration: 4 * time.Second, Music: true,
		tones: arpeggio(waveTriangle, []float64{220, 277, 330, 440}, 4*time.Second, 0.18),
	},
	SoundGameBGM: {
		Name: "game", Duration: 4 * time.Second, Music: true,
		tones: append(
			arpeggio(waveSquare, []float64{110, 110, 147, 131}, 4*time.Second, 0.12),
			tone{wave: waveSine, from: 55, to: 55, length: 4 * time.Second, attack: 50 * time.Millisecond, release: 50 * time.Millisecond, gain: 0.2},
		),
	},
	SoundGameOverBGM: {
		Name: "gameover", Duration: 4 * time.Second, Music: true,
		tones: arpeggio(waveSine, []float64{330, 294, 262, 247}, 4*time.Second, 0.2),
	},
	SoundSelect: {
		Name: "select", Duration: 400 * time.Millisecond,
		tones: []tone{
			{wave: waveSquare, from: 660, to: 660, length: 120 * time.Millisecond, release: 40 * time.Millisecond, gain: 0.3},
			{wave: waveSquare, from: 990, to: 990, start: 120 * time.Millisecond, length: 280 * time.Millisecond, release: 200 * time.Millisecond, gain: 0.3},
		},
	},
	SoundStarting: {
		Name: "starting", Duration: 4500 * time.Millisecond,
		tones: []tone{
			{wave: waveSaw, from: 60, to: 480, length: 2900 * time.Millisecond, attack: time.Second, release: 100 * time.Millisecond, gain: 0.25},
			{wave: waveNoise, start: 2900 * time.Millisecond, length: 1600 * time.Millisecond, release: 1400 * time.Millisecond, gain: 0.35},
			{wave: waveSine, from: 880, to: 220, start: 2900 * time.Millisecond, length: 1600 * time.Millisecond, release: 1200 * time.Millisecond, gain: 0.3},
		},
	},
	SoundEnding: {
		Name: "ending", Duration: 10500 * time.Millisecond,
		tones: []tone{
			{wave: waveNoise, length: time.Second, release: 800 * time.Millisecond, gain: 0.3},
			{wave: waveSaw, from: 40, to: 400, start: 2 * time.Second, length: 4 * time.Second, attack: time.Second, gain: 0.2},
			{wave: waveNoise, start: 6 * time.Second, length: 4500 * time.Millisecond, release: 4 * time.Second, gain: 0.5},
			{wave: waveSine, from: 90, to: 30, start: 6 * time.Second, length: 4500 * time.Millisecond, release: 4 * time.Second, gain: 0.4},
		},
	},
	SoundFootsteps: {
		Name: "footsteps", Duration: 700 * time.Millisecond,
		tones: []tone{
			{wave: waveNoise, length: 60 * time.Millisecond, release: 50 * time.Millisecond, gain: 0.3},
			{wave: waveNoise, start: 350 * time.Millisecond, length: 60 * time.Millisecond, release: 50 * time.Millisecond, gain: 0.3},
		},
	},
	SoundLaser: {
		Name: "laser1", Duration: 250 * time.Millisecond,
		tones: []tone{{wave: waveSquare, from: 1800, to: 300, length: 250 * time.Millisecond, release: 150 * time.Millisecond, gain: 0.2}},
	},
	SoundEnemyLaser: {
		Name: "laser2", Duration: 300 * time.Millisecond, MinDistance: 1500, MaxDistance: 3000,
		tones: []tone{{wave: waveSaw, from: 900, to: 200, length: 300 * time.Millisecond, release: 200 * time.Millisecond, gain: 0.25}},
	},
	SoundBlade1: {
		Name: "blade1", Duration: 300 * time.Millisecond,
		tones: []tone{{wave: waveNoise, length: 300 * time.Millisecond, attack: 80 * time.Millisecond, release: 200 * time.Millisecond, gain: 0.3}},
	},
	SoundBlade2: {
		Name: "blade2", Duration: 350 * time.Millisecond,
		tones: []tone{{wave: waveNoise, length: 350 * time.Millisecond, attack: 60 * time.Millisecond, release: 250 * time.Millisecond, gain: 0.35}},
	},
	SoundGrunt: {
		Name: "grunt", Duration: 250 * time.Millisecond,
		tones: []tone{{wave: waveSaw, from: 140, to: 90, length: 250 * time.Millisecond, attack: 20 * time.Millisecond, release: 150 * time.Millisecond, gain: 0.3}},
	},
	SoundHurt1: {
		Name: "hurt1", Duration: 300 * time.Millisecond,
		tones: []tone{{wave: waveSquare, from: 300, to: 120, length: 300 * time.Millisecond, release: 200 * time.Millisecond, gain: 0.3}},
	},
	SoundHurt2: {
		Name: "hurt2", Duration: 300 * time.Millisecond,
		tones: []tone{{wave: waveSquare, from: 260, to: 100, length: 300 * time.Millisecond, release: 200 * time.Millisecond, gain: 0.3}},
	},
	SoundExplosion: {
		Name: "explosion", Duration: time.Second, MinDistance: 1000, MaxDistance: 3000,
		tones: []tone{
			{wave: waveNoise, length: time.Second, release: 900 * time.Millisecond, gain: 0.5},
			{wave: waveSine, from: 80, to: 30, length: time.Second, release: 800 * time.Millisecond, gain: 0.4},
		},
	},
	SoundLevelUp: {
		Name: "levelup", Duration: 800 * time.Millisecond,
		tones: arpeggio(waveTriangle, []float64{523, 659, 784, 1047}, 800*time.Millisecond, 0.3),
	},
	SoundAlarm: {
		Name: "alarm", Duration: 1200 * time.Millisecond,
		tones: []tone{
			{wave: waveSquare, from: 700, to: 900, length: 400 * time.Millisecond, gain: 0.2},
			{wave: waveSquare, from: 700, to: 900, start: 400 * time.Millisecond, length: 400 * time.Millisecond, gain: 0.2},
			{wave: waveSquare, from: 700, to: 900, start: 800 * time.Millisecond, length: 400 * time.Millisecond, release: 100 * time.Millisecond, gain: 0.2},
		},
	},
	SoundFence: {
		Name: "fence", Duration: time.Second, MinDistance: 500, MaxDistance: 2000,
		tones: []tone{
			{wave: waveSaw, from: 60, to: 60, length: time.Second, gain: 0.2},
			{wave: waveNoise, length: time.Second, gain: 0.05},
		},
	},
	SoundNice: {
		Name: "nice", Duration: 600 * time.Millisecond,
		tones: arpeggio(waveSine, []float64{784, 1047, 1319}, 600*time.Millisecond, 0.3),
	},
}

// Definition returns the catalog entry for id.
func Definition(id SoundID) Sound { return catalog[id] }

// arpeggio splits total evenly over notes.
func arpeggio(w wave, notes []float64, total time.Duration, gain float64) []tone {
	step := total / time.Duration(len(notes))
	tones := make([]tone, 0, len(notes))
	for i, f := range notes {
		tones = append(tones, tone{
			wave:    w,
			from:    f,
			to:      f,
			start:   time.Duration(i) * step,
			length:  step,
			attack:  10 * time.Millisecond,
			release: step / 2,
			gain:    gain,
		})
	}
	return tones
}
