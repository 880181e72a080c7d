// Package spectrum estimates power spectral densities.
//
// [Welch] implements Welch's averaged, modified periodogram: the input is
// cut into overlapping segments, each segment is detrended and windowed,
// its one-sided power spectrum is computed with an FFT, and the segment
// spectra are averaged. Defaults match the common reference implementation
// (Hann periodic window, 256-sample segments, 50 % overlap, per-segment
// mean removal, density scaling) so estimates can be compared bin for bin.
package spectrum
