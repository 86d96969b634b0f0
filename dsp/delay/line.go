package delay

import (
	"fmt"
	"math/rand"
)

// Line is a circular delay line.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a zero-initialized delay line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// NewNoise returns a delay line filled with uniform random samples in [-1, 1].
// This is the excitation used by string-synthesis feedback loops.
func NewNoise(size int, rng *rand.Rand) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	if rng == nil {
		return nil, fmt.Errorf("delay noise source must not be nil")
	}
	d := &Line{buffer: make([]float64, size)}
	for i := range d.buffer {
		d.buffer[i] = rng.Float64()*2 - 1
	}
	return d, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Write overwrites the oldest sample and advances the write position.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read reads an integer delay in samples behind the write position.
// Read(Len()) is the oldest sample, the one the next Write replaces.
func (d *Line) Read(delay int) float64 {
	size := len(d.buffer)
	if size == 0 {
		return 0
	}
	readPos := (d.writePos - delay + size) % size
	return d.buffer[readPos]
}

// Reset clears line state.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.writePos = 0
}
