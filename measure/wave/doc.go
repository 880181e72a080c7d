// Package wave derives sea-state descriptors from a sea-surface-height (SSH)
// record.
//
// The processing chain is
//
//   - SSE: scale, remove the linear trend and apply a zero-phase Butterworth
//     high-pass filter, turning SSH into sea-surface elevation
//   - SWH: significant wave height, 4 times the sample standard deviation of
//     consecutive SSE windows
//   - Period: mean wave period m0/m1 from the spectral moments of a Welch PSD
//   - Wavelength: inverse of the frequency of the Welch PSD peak
//
// # Usage
//
//	spec := wave.NewFilterSpec(4, 100, 1)
//	sse, err := wave.SSE(ssh, spec)
//	swh, err := wave.SWH(sse, 600)
//	tm, err := wave.Period(sse, 1)
//
// Wavelength returns 1/f_peak with f in cycles per sample, which is the
// dominant period in samples rather than a spatial length. The value is kept
// as computed so results stay comparable with existing processing chains.
//
// All functions are pure: inputs are never modified and no state is kept
// between calls, so independent records may be processed concurrently.
package wave
