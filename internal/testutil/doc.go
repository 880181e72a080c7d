// Package testutil holds tolerance assertions and deterministic test
// signals shared by the package tests. It is not part of the public API.
package testutil
