// Package signal synthesizes deterministic sea-surface-height records for
// testing and calibration: swell components, a tide, instrument drift,
// sensor noise and isolated spikes.
package signal
