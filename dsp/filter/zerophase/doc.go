// Package zerophase implements forward-backward (filtfilt) filtering of a
// finished sequence through a biquad cascade.
//
// The sequence is extended at both ends by odd reflection about its end
// samples, each pass starts from the cascade's steady state for its first
// input sample (Gustafsson's initial-state method), and the padding is
// discarded afterwards. The result has zero phase distortion and a
// magnitude response equal to the square of the cascade's.
package zerophase
