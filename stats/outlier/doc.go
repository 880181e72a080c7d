// Package outlier flags and replaces samples that deviate from their local
// neighbourhood by more than a robust z-score threshold.
//
// For every index i the local window is [max(0, i-h), min(n, i+h)) with
// h = step/2. The window median and interquartile range give
//
//	z = (x[i] - median) / (0.7413 * iqr)
//
// and samples with |z| >= zmax are replaced according to a [Fill] policy.
//
// A window with zero spread (iqr == 0) cannot produce a z-score. Such a
// window keeps a sample equal to its median and flags every other value.
// Each occurrence is counted in [Result.Degenerate]; [WithStrictWindows]
// turns the first one into [ErrDegenerateWindow] instead.
//
// Each window is sorted independently, so the cost is O(n * step log step).
package outlier
