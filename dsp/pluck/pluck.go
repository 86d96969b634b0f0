package pluck

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-pluck/dsp/core"
	"github.com/cwbudde/algo-pluck/dsp/delay"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by pluck synthesis.
var (
	ErrInvalidFrequency = errors.New("pluck: frequency must be in [1, sample rate]")
	ErrInvalidDuration  = errors.New("pluck: sample count must be >= 0")
)

// Generator synthesizes plucked-string waveforms from a shared configuration.
type Generator struct {
	cfg  core.SynthConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for the noise excitation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured pluck generator.
func NewGenerator(opts ...core.SynthOption) *Generator {
	return &Generator{
		cfg:  core.ApplySynthOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured pluck generator with
// pluck-specific options.
func NewGeneratorWithOptions(coreOpts []core.SynthOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplySynthOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator synthesis configuration.
func (g *Generator) Config() core.SynthConfig {
	return g.cfg
}

// SetSeed sets the excitation seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Seed returns the excitation seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate synthesizes one pluck of nsamples samples at freqHz, scaled by
// volume.
//
// The delay-line length is SampleRate/freqHz using integer division, so the
// pitch resolution is limited to integer period lengths. Volume is an
// unchecked precondition: values outside [0, 1] are applied as-is, without
// clamping.
func (g *Generator) Generate(freqHz int, volume float64, nsamples int) ([]float64, error) {
	if nsamples < 0 {
		return nil, ErrInvalidDuration
	}
	if freqHz <= 0 || freqHz > g.cfg.SampleRate {
		return nil, ErrInvalidFrequency
	}

	period := g.cfg.SampleRate / freqHz
	line, err := delay.NewNoise(period, rand.New(rand.NewSource(g.seed)))
	if err != nil {
		return nil, fmt.Errorf("pluck: excitation failed: %w", err)
	}

	out := make([]float64, nsamples)
	for i := range out {
		// Emit the pre-update sample, then recirculate the damped average
		// of it and its successor. Both reads see the state left by the
		// previous period's update, which is what shapes the decay.
		cur := line.Read(period)
		next := line.Read(period - 1)
		out[i] = cur
		line.Write(core.FlushDenormals(g.cfg.Damping * 0.5 * (cur + next)))
	}

	vecmath.ScaleBlockInPlace(out, volume)
	return out, nil
}
