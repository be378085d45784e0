package synth

import (
	"github.com/cwbudde/algo-wavetable/interp"
	"github.com/cwbudde/algo-wavetable/wavetable"
)

// Config defines the fixed construction-time settings of an Engine.
type Config struct {
	SampleRate float64
	Polyphony  int
	TableSize  int
	Harmonics  []wavetable.Harmonic
	Gain       float64
	Interp     interp.Mode
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the stock engine settings: 44.1 kHz, four voices,
// a 2048-sample table with the default harmonic bank, unity gain.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Polyphony:  4,
		TableSize:  2048,
		Gain:       1,
	}
}

// WithSampleRate sets the initial sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithPolyphony sets the fixed voice count.
func WithPolyphony(voices int) Option {
	return func(cfg *Config) {
		if voices > 0 {
			cfg.Polyphony = voices
		}
	}
}

// WithTableSize sets the wavetable resolution.
func WithTableSize(size int) Option {
	return func(cfg *Config) {
		if size > 1 {
			cfg.TableSize = size
		}
	}
}

// WithHarmonics sets the additive harmonic bank used to build the table.
func WithHarmonics(harmonics []wavetable.Harmonic) Option {
	return func(cfg *Config) {
		if len(harmonics) > 0 {
			cfg.Harmonics = harmonics
		}
	}
}

// WithGain sets the master output gain applied after voice summing.
func WithGain(gain float64) Option {
	return func(cfg *Config) {
		if gain >= 0 {
			cfg.Gain = gain
		}
	}
}

// WithInterpMode selects the oscillator interpolation mode.
func WithInterpMode(mode interp.Mode) Option {
	return func(cfg *Config) {
		cfg.Interp = mode
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
