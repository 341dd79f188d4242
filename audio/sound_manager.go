package audio

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/stellar-assault/core"
	"github.com/lixenwraith/stellar-assault/parameter"
)

// ErrNotInitialized is returned by Start before a successful Init
var ErrNotInitialized = errors.New("audio: not initialized")

// output is the device a SoundManager mixes into
type output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerOutput drives the system speaker
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }
func (speakerOutput) Close()               { speaker.Close() }

// SoundManager plays one-shot effects through a shared mixer
// A failed device init leaves the manager silent rather than failing startup
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	out         output
	mixer       *beep.Mixer
	logger      *log.Logger
	now         func() time.Time
	lastPlayed  [core.SoundTypeCount]time.Time
	initialized bool
	running     bool
	disabled    bool

	muted atomic.Bool
}

// NewSoundManager creates a manager for the speaker; nil config uses defaults
func NewSoundManager(cfg *AudioConfig, logger *log.Logger) *SoundManager {
	return newSoundManager(cfg, speakerOutput{}, logger)
}

func newSoundManager(cfg *AudioConfig, out output, logger *log.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		config: cfg,
		out:    out,
		mixer:  &beep.Mixer{},
		logger: logger,
		now:    time.Now,
	}
}

func (sm *SoundManager) Name() string {
	return "audio"
}

func (sm *SoundManager) Dependencies() []string {
	return nil
}

// Init opens the output device
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	sm.initialized = true

	if !sm.config.Enabled {
		sm.disabled = true
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := sm.out.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		sm.logger.Printf("audio: device unavailable, running silent: %v", err)
		sm.disabled = true
	}
	return nil
}

func (sm *SoundManager) Start(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.disabled || sm.running {
		return nil
	}
	sm.out.Play(sm.mixer)
	sm.running = true
	return nil
}

// Stop clears pending sounds and closes the device
func (sm *SoundManager) Stop() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.running {
		return nil
	}
	sm.out.Lock()
	sm.mixer.Clear()
	sm.out.Unlock()
	sm.out.Close()
	sm.running = false
	return nil
}

// Play queues an effect, reporting whether it was mixed in
func (sm *SoundManager) Play(st core.SoundType) bool {
	if st < 0 || st >= core.SoundTypeCount || sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.running {
		return false
	}

	now := sm.now()
	if last := sm.lastPlayed[st]; !last.IsZero() && now.Sub(last) < parameter.MinSoundGap {
		return false
	}

	streamer := GetSoundEffect(st, sm.config)
	if streamer == nil {
		return false
	}
	sm.lastPlayed[st] = now

	sm.out.Lock()
	sm.mixer.Add(streamer)
	sm.out.Unlock()
	return true
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Enabled reports whether sounds reach an output device
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.running
}
