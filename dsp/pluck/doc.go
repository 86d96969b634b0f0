// Package pluck provides Karplus-Strong plucked-string synthesis.
//
// A pluck is modeled as a burst of white noise loaded into a delay line
// whose length sets the fundamental period. Each synthesis step emits the
// oldest delay-line sample and feeds back the damped average of that sample
// and its successor, so every position is low-pass filtered and attenuated
// once per period. The result is a bright attack decaying into a mellow,
// string-like tone.
//
// # Usage
//
// Generate a single note and a strummed chord:
//
//	g := pluck.NewGenerator(core.WithSampleRate(44100))
//	note, _ := g.Generate(440, 0.5, 5*44100)
//	strum, _ := g.GenerateChord([]int{220, 275, 330, 440}, 5*44100)
//
// The noise excitation is seeded per call, so equal configurations produce
// identical waveforms. Use WithSeed or SetSeed for alternative excitations.
package pluck
