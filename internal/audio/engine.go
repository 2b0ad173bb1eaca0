// Package audio plays the game's sound catalog. Every sound is rendered once
// into a beep buffer at startup; playback runs through a beep mixer whose
// output is pulled by ebiten's audio player.
package audio

//go:generate go tool mockgen -destination=../mocks/player_mock.go -package=mocks . Player

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// Player is the audio capability consumed by the game. Volumes are on a
// 0..100 scale and frequencies are playback rates in Hz.
type Player interface {
	Play(id SoundID, loop bool)
	// PlayAt starts an untracked one-shot copy of a positional sound.
	PlayAt(id SoundID, pos mgl32.Vec3)
	Stop(id SoundID)
	StopAll()
	IsPlaying(id SoundID) bool
	SetVolume(id SoundID, volume float32)
	Volume(id SoundID) float32
	SetFrequency(id SoundID, hz float32)
	BaseFrequency(id SoundID) float32
	SetPosition(id SoundID, pos mgl32.Vec3)
	SetListener(pos, heading mgl32.Vec3)
}

// Options configures an Engine.
type Options struct {
	SampleRate int
	SFXVolume  float32
	BGMVolume  float32
	SoundsDir  string
	Muted      bool
}

const resampleQuality = 3

type voice struct {
	id        SoundID
	ctrl      *beep.Ctrl
	resampler *beep.Resampler
	volume    *effects.Volume
	pan       *effects.Pan
	pos       mgl32.Vec3
	level     float32
	freq      float32
	playing   bool
	gen       int
}

// Engine mixes the catalog. It implements Player and io.Reader; Read
// produces interleaved little-endian float32 stereo frames.
type Engine struct {
	mu       sync.Mutex
	format   beep.Format
	mixer    *beep.Mixer
	buffers  [soundCount]*beep.Buffer
	voices   [soundCount]voice
	listener mgl32.Vec3
	heading  mgl32.Vec3
	master   float64
	scratch  [][2]float64
}

// NewEngine renders the catalog and returns an engine ready to mix.
// A <name>.wav file in opts.SoundsDir replaces the synthesized sound.
func NewEngine(opts Options) (*Engine, error) {
	if opts.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", opts.SampleRate)
	}
	e := &Engine{
		format:  beep.Format{SampleRate: beep.SampleRate(opts.SampleRate), NumChannels: 2, Precision: 4},
		mixer:   &beep.Mixer{},
		heading: mgl32.Vec3{0, 0, 1},
		master:  1,
	}
	if opts.Muted {
		e.master = 0
	}

	for i := range catalog {
		id := SoundID(i)
		buf, err := e.load(id, opts.SoundsDir)
		if err != nil {
			return nil, err
		}
		e.buffers[id] = buf

		level := opts.SFXVolume
		if catalog[id].Music {
			level = opts.BGMVolume
		}
		e.voices[id] = voice{id: id, level: level, freq: float32(opts.SampleRate)}
	}
	return e, nil
}

func (e *Engine) load(id SoundID, dir string) (*beep.Buffer, error) {
	def := catalog[id]
	if dir == "" {
		return synthesize(id, def, e.format), nil
	}
	path := filepath.Join(dir, def.Name+".wav")
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return synthesize(id, def, e.format), nil
		}
		return nil, fmt.Errorf("failed to open sound %s: %w", path, err)
	}
	defer f.Close()

	s, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != e.format.SampleRate {
		src = beep.Resample(4, format.SampleRate, e.format.SampleRate, s)
	}
	buf := beep.NewBuffer(e.format)
	buf.Append(src)
	log.Printf("Loaded sound override %s", path)
	return buf, nil
}

// SampleRate returns the output rate.
func (e *Engine) SampleRate() int { return int(e.format.SampleRate) }

// Play (re)starts a tracked sound from the beginning.
func (e *Engine) Play(id SoundID, loop bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := &e.voices[id]
	e.stopLocked(v)
	v.gen++
	gen := v.gen

	buf := e.buffers[id]
	var src beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		src = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	v.resampler = beep.ResampleRatio(resampleQuality, e.ratio(v.freq), src)
	v.volume = &effects.Volume{Streamer: v.resampler, Base: 2}
	v.pan = &effects.Pan{Streamer: v.volume}
	v.ctrl = &beep.Ctrl{Streamer: beep.Seq(v.pan, beep.Callback(func() {
		// runs inside Read, which already holds e.mu
		if v.gen == gen {
			v.playing = false
		}
	}))}
	v.playing = true
	e.applyLocked(v)
	e.mixer.Add(v.ctrl)
}

// PlayAt starts an untracked copy of id at pos.
func (e *Engine) PlayAt(id SoundID, pos mgl32.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := voice{id: id, pos: pos, level: e.voices[id].level, freq: e.voices[id].freq}
	buf := e.buffers[id]
	v.resampler = beep.ResampleRatio(resampleQuality, e.ratio(v.freq), buf.Streamer(0, buf.Len()))
	v.volume = &effects.Volume{Streamer: v.resampler, Base: 2}
	v.pan = &effects.Pan{Streamer: v.volume}
	e.applyLocked(&v)
	e.mixer.Add(v.pan)
}

// Stop halts a tracked sound.
func (e *Engine) Stop(id SoundID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked(&e.voices[id])
}

// StopAll halts every sound, tracked or not.
func (e *Engine) StopAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.voices {
		e.stopLocked(&e.voices[i])
	}
	e.mixer.Clear()
}

func (e *Engine) stopLocked(v *voice) {
	if v.ctrl != nil {
		v.ctrl.Streamer = nil
		v.ctrl = nil
	}
	v.playing = false
}

// IsPlaying reports whether a tracked sound is still producing samples.
func (e *Engine) IsPlaying(id SoundID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.voices[id].playing
}

// SetVolume sets a sound's level in 0..100.
func (e *Engine) SetVolume(id SoundID, volume float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v := &e.voices[id]
	v.level = mgl32.Clamp(volume, 0, 100)
	e.applyLocked(v)
}

// Volume returns a sound's level.
func (e *Engine) Volume(id SoundID) float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.voices[id].level
}

// SetFrequency sets the playback rate of a sound in Hz.
func (e *Engine) SetFrequency(id SoundID, hz float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v := &e.voices[id]
	v.freq = hz
	if v.resampler != nil {
		v.resampler.SetRatio(e.ratio(hz))
	}
}

// BaseFrequency returns the rate at which a sound plays unaltered.
func (e *Engine) BaseFrequency(SoundID) float32 { return float32(e.format.SampleRate) }

// SetPosition moves a tracked positional sound.
func (e *Engine) SetPosition(id SoundID, pos mgl32.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v := &e.voices[id]
	v.pos = pos
	e.applyLocked(v)
}

// SetListener places the listener. Tracked positional sounds are
// re-attenuated immediately.
func (e *Engine) SetListener(pos, heading mgl32.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listener = pos
	if heading.Len() > 0 {
		e.heading = heading.Normalize()
	}
	for i := range e.voices {
		if catalog[i].Positional() {
			e.applyLocked(&e.voices[i])
		}
	}
}

// SetMuted silences the output without stopping playback.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if muted {
		e.master = 0
	} else {
		e.master = 1
	}
	for i := range e.voices {
		e.applyLocked(&e.voices[i])
	}
}

func (e *Engine) ratio(hz float32) float64 {
	r := float64(hz) / float64(e.format.SampleRate)
	if r < 0.01 {
		r = 0.01
	}
	return r
}

func (e *Engine) applyLocked(v *voice) {
	if v.volume == nil {
		return
	}
	gain := float64(v.level) / 100 * e.master
	pan := 0.0
	if def := catalog[v.id]; def.Positional() {
		g, p := Spatialize(e.listener, e.heading, v.pos, def.MinDistance, def.MaxDistance)
		gain *= float64(g)
		pan = float64(p)
	}
	if gain <= 0 {
		v.volume.Silent = true
		v.volume.Volume = 0
	} else {
		v.volume.Silent = false
		v.volume.Volume = math.Log2(gain)
	}
	v.pan.Pan = pan
}

// Read mixes the next len(p)/8 stereo frames into p.
func (e *Engine) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}

	e.mu.Lock()
	if cap(e.scratch) < frames {
		e.scratch = make([][2]float64, frames)
	}
	samples := e.scratch[:frames]
	n, _ := e.mixer.Stream(samples)
	e.mu.Unlock()

	for i := 0; i < frames; i++ {
		var l, r float64
		if i < n {
			l, r = samples[i][0], samples[i][1]
		}
		binary.LittleEndian.PutUint32(p[i*8:], math.Float32bits(float32(clip(l))))
		binary.LittleEndian.PutUint32(p[i*8+4:], math.Float32bits(float32(clip(r))))
	}
	return frames * 8, nil
}

func clip(s float64) float64 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}
