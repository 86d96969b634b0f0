package core

// SynthConfig defines common synthesis settings.
type SynthConfig struct {
	SampleRate int
	Damping    float64
}

// SynthOption mutates a SynthConfig.
type SynthOption func(*SynthConfig)

// DefaultSynthConfig returns CD-rate defaults with gentle string damping.
func DefaultSynthConfig() SynthConfig {
	return SynthConfig{
		SampleRate: 44100,
		Damping:    0.999,
	}
}

// WithSampleRate sets the synthesis sample rate in Hz.
func WithSampleRate(sampleRate int) SynthOption {
	return func(cfg *SynthConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithDamping sets the per-cycle energy loss factor in (0, 1].
func WithDamping(damping float64) SynthOption {
	return func(cfg *SynthConfig) {
		if damping > 0 && damping <= 1 {
			cfg.Damping = damping
		}
	}
}

// ApplySynthOptions applies zero or more options to the default config.
func ApplySynthOptions(opts ...SynthOption) SynthConfig {
	cfg := DefaultSynthConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
