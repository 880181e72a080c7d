// Package frequency computes descriptors of one-sided power spectra given
// as parallel frequency and power slices: spectral moments and the peak bin.
package frequency
