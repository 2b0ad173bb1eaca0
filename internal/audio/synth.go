package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveTriangle
	waveNoise
)

// tone is one voice of a synthesized sound: a gliding oscillator shaped by a
// linear attack and release.
type tone struct {
	wave     wave
	from, to float64
	start    time.Duration
	length   time.Duration
	attack   time.Duration
	release  time.Duration
	gain     float64
}

// oscillator generates a wave whose frequency glides from tone.from to
// tone.to over the tone's length.
type oscillator struct {
	t        tone
	rate     beep.SampleRate
	rng      *rand.Rand
	phase    float64
	position int
	total    int
	attack   int
	release  int
}

func newOscillator(t tone, rate beep.SampleRate, rng *rand.Rand) *oscillator {
	return &oscillator{
		t:       t,
		rate:    rate,
		rng:     rng,
		total:   rate.N(t.length),
		attack:  rate.N(t.attack),
		release: rate.N(t.release),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}
		p := float64(o.position) / float64(o.total)
		freq := o.t.from + (o.t.to-o.t.from)*p

		var val float64
		switch o.t.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2 * (o.phase - 0.5)
		case waveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		val *= o.t.gain * o.envelope()

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func (o *oscillator) envelope() float64 {
	if o.attack > 0 && o.position < o.attack {
		return float64(o.position) / float64(o.attack)
	}
	if o.release > 0 {
		if left := o.total - o.position; left < o.release {
			return float64(left) / float64(o.release)
		}
	}
	return 1
}

// synthesize renders s into a buffer of exactly s.Duration.
func synthesize(id SoundID, s Sound, format beep.Format) *beep.Buffer {
	rng := rand.New(rand.NewPCG(uint64(id)+1, 0x0e6a))
	streams := make([]beep.Streamer, 0, len(s.tones)+1)
	for _, t := range s.tones {
		streams = append(streams, beep.Seq(
			beep.Silence(format.SampleRate.N(t.start)),
			newOscillator(t, format.SampleRate, rng),
		))
	}
	streams = append(streams, beep.Silence(-1))

	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(format.SampleRate.N(s.Duration), beep.Mix(streams...)))
	return buf
}
