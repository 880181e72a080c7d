// Package pass designs Butterworth high-pass filters as cascades of biquad
// sections.
//
// Designs use the bilinear transform with frequency pre-warping at the
// cutoff, so the digital magnitude response is exactly -3 dB at freq. The
// pole pairs of the analog prototype map to second-order sections with
// Q_k = 1/(2*sin((2k+1)*pi/(2N))); odd orders add one first-order section.
//
// Frequencies are given in the same unit as sampleRate. Passing
// sampleRate = 2 lets callers use cutoffs normalized to the Nyquist
// frequency, the convention of classic filter-design tools.
package pass
