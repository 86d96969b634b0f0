package pitch

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by pitch estimation.
var (
	ErrEmptySignal       = errors.New("pitch: signal must not be empty")
	ErrInvalidSampleRate = errors.New("pitch: sample rate must be positive")
	ErrEmptyBand         = errors.New("pitch: search band contains no FFT bins")
)

const maxFFTSize = 1 << 20

// Config holds pitch estimation parameters.
type Config struct {
	SampleRate float64
	FFTSize    int     // rounded up to a power of two; 0 picks from signal length
	MinFreq    float64 // search band lower bound in Hz; 0 means 20 Hz
	MaxFreq    float64 // search band upper bound in Hz; 0 means Nyquist
}

// Result holds the estimated fundamental.
type Result struct {
	Frequency float64 // interpolated peak frequency in Hz
	Bin       int     // FFT bin of the spectral peak
	Level     float64 // peak magnitude, linear
}

// Estimate finds the dominant spectral peak of a time-domain signal.
//
// The signal is Hann-windowed, zero-padded to the FFT size, and transformed;
// the strongest bin within [MinFreq, MaxFreq] is refined by parabolic
// interpolation over its neighbors. For quasi-periodic signals with a strong
// fundamental this tracks the perceived pitch to a fraction of a bin.
func Estimate(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}
	if cfg.SampleRate <= 0 {
		return Result{}, ErrInvalidSampleRate
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = len(signal)
	}
	fftSize = nextPowerOf2(fftSize)
	if fftSize > maxFFTSize {
		fftSize = maxFFTSize
	}

	n := len(signal)
	if n > fftSize {
		n = fftSize
	}

	padded := make([]complex128, fftSize)
	if n == 1 {
		padded[0] = complex(signal[0], 0)
	} else {
		for i := 0; i < n; i++ {
			w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
			padded[i] = complex(signal[i]*w, 0)
		}
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("pitch: failed to create FFT plan: %w", err)
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, padded); err != nil {
		return Result{}, fmt.Errorf("pitch: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	parts := make([]float64, 3*bins)
	re := parts[:bins]
	im := parts[bins : 2*bins]
	mag := parts[2*bins:]
	for i := 0; i < bins; i++ {
		re[i] = real(spec[i])
		im[i] = imag(spec[i])
	}
	vecmath.Magnitude(mag, re, im)

	binHz := cfg.SampleRate / float64(fftSize)

	minFreq := cfg.MinFreq
	if minFreq <= 0 {
		minFreq = 20
	}
	maxFreq := cfg.MaxFreq
	if maxFreq <= 0 || maxFreq > cfg.SampleRate/2 {
		maxFreq = cfg.SampleRate / 2
	}

	lowerBin := int(math.Ceil(minFreq / binHz))
	if lowerBin < 1 {
		lowerBin = 1
	}
	upperBin := int(math.Floor(maxFreq / binHz))
	if upperBin > bins-1 {
		upperBin = bins - 1
	}
	if lowerBin > upperBin {
		return Result{}, ErrEmptyBand
	}

	peak := lowerBin
	for i := lowerBin + 1; i <= upperBin; i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}

	freq := float64(peak) * binHz
	if peak > 0 && peak < bins-1 {
		a, b, c := mag[peak-1], mag[peak], mag[peak+1]
		den := a - 2*b + c
		if den != 0 {
			delta := 0.5 * (a - c) / den
			if delta > -1 && delta < 1 {
				freq = (float64(peak) + delta) * binHz
			}
		}
	}

	return Result{Frequency: freq, Bin: peak, Level: mag[peak]}, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
