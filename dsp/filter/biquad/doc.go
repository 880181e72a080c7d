// Package biquad provides second-order IIR sections and cascades.
//
// A [Section] runs Direct Form II Transposed recursion for one set of
// [Coefficients]. A [Chain] cascades sections to realise higher-order
// designs such as the Butterworth high-pass used to turn sea-surface height
// into sea-surface elevation.
//
// Besides sample and block processing the package exposes the steady-state
// delay-line values a section settles to under a constant input. Zero-phase
// filtering seeds both passes with these values so that edge transients are
// suppressed the same way lfilter_zi-based implementations do.
//
// Coefficient design lives in dsp/filter/design/pass.
package biquad
