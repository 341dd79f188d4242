package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/stellar-assault/core"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, gliding linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch glides from start to end over the duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = math.Max(0, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream with linear gain; math.Log2(0) is -Inf so zero is Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func note(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateExplosionSound is a short noise burst over a low thump
func CreateExplosionSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ExplosionSoundDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)
	thump := NewEnvelope(NewSweep(140, 40, d, WaveSine, rate), d, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)
	return beep.Mix(newVolume(noise, 0.5), newVolume(thump, 0.5))
}

// CreateHitSound is a falling saw buzz
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.HitSoundDuration
	return NewEnvelope(NewSweep(320, 90, d, WaveSaw, rate), d, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
}

// CreateBlockSound is a metallic ping with an octave overtone
func CreateBlockSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.BlockSoundDuration
	fund := note(1046.5, d, parameter.BlockSoundAttack, parameter.BlockSoundRelease, WaveSine, rate)
	over := note(2093.0, d, parameter.BlockSoundAttack, parameter.BlockSoundRelease/2, WaveSine, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// CreatePickupSound is a rising three-note arpeggio (C6 E6 G6)
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	d, a, r := parameter.PickupNoteDuration, parameter.PickupNoteAttack, parameter.PickupNoteRelease
	return beep.Seq(
		note(1046.5, d, a, r, WaveSquare, rate),
		note(1318.5, d, a, r, WaveSquare, rate),
		note(1568.0, d, a, r, WaveSquare, rate),
	)
}

// CreateBombSound is a long rumble with a sweeping noise tail
func CreateBombSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.BombSoundDuration
	rumble := NewEnvelope(NewSweep(90, 30, d, WaveSaw, rate), d, parameter.BombSoundAttack, parameter.BombSoundRelease, rate)
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.BombSoundAttack, parameter.BombSoundRelease, rate)
	return beep.Mix(newVolume(rumble, 0.6), newVolume(noise, 0.4))
}

// CreateUpgradeSound is a two-note chime (B5 E6)
func CreateUpgradeSound(rate beep.SampleRate) beep.Streamer {
	d, a, r := parameter.UpgradeNoteDuration, parameter.UpgradeNoteAttack, parameter.UpgradeNoteRelease
	return beep.Seq(
		note(987.77, d, a, r, WaveSquare, rate),
		note(1318.51, 2*d, a, 2*r, WaveSquare, rate),
	)
}

// CreateGameOverSound is a falling three-note phrase (G4 E4 C4)
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	d, a, r := parameter.GameOverNoteDuration, parameter.GameOverNoteAttack, parameter.GameOverNoteRelease
	return beep.Seq(
		note(392.0, d, a, r, WaveSaw, rate),
		note(329.63, d, a, r, WaveSaw, rate),
		note(261.63, 2*d, a, 2*r, WaveSaw, rate),
	)
}

// GetSoundEffect returns the streamer for a sound at the configured volume, nil if unknown
func GetSoundEffect(st core.SoundType, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch st {
	case core.SoundExplosion:
		s = CreateExplosionSound(rate)
	case core.SoundPlayerHit:
		s = CreateHitSound(rate)
	case core.SoundShieldBlock:
		s = CreateBlockSound(rate)
	case core.SoundPickup:
		s = CreatePickupSound(rate)
	case core.SoundBomb:
		s = CreateBombSound(rate)
	case core.SoundUpgrade:
		s = CreateUpgradeSound(rate)
	case core.SoundGameOver:
		s = CreateGameOverSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.EffectVolumes[st]*cfg.MasterVolume)
}
