// Package pitch estimates the fundamental frequency of a time-domain
// signal via an FFT spectral peak with parabolic bin interpolation.
//
// It is intended for verifying synthesized material: given a rendered note,
// Estimate reports where its energy actually peaks, which for plucked-string
// synthesis sits slightly below the nominal sample-rate/period pitch because
// the feedback averaging adds roughly half a sample of delay per cycle.
package pitch
