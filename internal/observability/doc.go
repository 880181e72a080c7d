// Package observability builds the slog logger and the Prometheus metrics
// used by the batch runner and the wavecalc CLI.
package observability
