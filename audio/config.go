package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/stellar-assault/core"
	"github.com/lixenwraith/stellar-assault/parameter"
)

// AudioConfig holds output and mixing settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes [core.SoundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	// Frequent sounds sit lower in the mix
	cfg.EffectVolumes[core.SoundExplosion] = 0.6
	cfg.EffectVolumes[core.SoundPickup] = 0.8
	return cfg
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	return loadAudioConfig(DefaultAudioConfig(), os.Getenv)
}

// ApplyEnv overlays environment variables on an existing config
func ApplyEnv(cfg *AudioConfig) *AudioConfig {
	return loadAudioConfig(cfg, os.Getenv)
}

func loadAudioConfig(cfg *AudioConfig, getenv func(string) string) *AudioConfig {
	if enabled := getenv("STELLAR_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := getenv("STELLAR_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Per-effect volumes as JSON keyed by sound name
	if effectVols := getenv("STELLAR_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := getenv("STELLAR_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
