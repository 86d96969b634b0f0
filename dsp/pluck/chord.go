package pluck

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// chordNoteVolume is the fixed per-note level used when mixing chords.
// Summing notes at half volume keeps small chords clear of full scale.
const chordNoteVolume = 0.5

// GenerateChord synthesizes the element-wise sum of one pluck per frequency,
// each at half volume and nsamples long.
//
// Notes are generated sequentially in input order so results are
// reproducible for a given seed. A failing note aborts the chord: no partial
// mix is returned, and the error names the offending frequency.
func (g *Generator) GenerateChord(freqsHz []int, nsamples int) ([]float64, error) {
	if nsamples < 0 {
		return nil, ErrInvalidDuration
	}

	out := make([]float64, nsamples)
	for _, freqHz := range freqsHz {
		note, err := g.Generate(freqHz, chordNoteVolume, nsamples)
		if err != nil {
			return nil, fmt.Errorf("pluck: chord note %d Hz: %w", freqHz, err)
		}
		vecmath.AddBlockInPlace(out, note)
	}
	return out, nil
}
