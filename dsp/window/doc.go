// Package window generates tapering windows for segment-based spectral
// estimation.
//
// Windows come in two forms. The symmetric form (default) has
// w[0] == w[n-1] and suits filter design. The periodic form, selected with
// [WithPeriodic], is the first n samples of an n+1-point symmetric window
// and is the one to use for FFT framing such as Welch's method.
package window
