// Package time provides time-domain statistics over sample sequences:
// mean, unbiased variance and standard deviation, and least-squares linear
// trend fitting and removal.
//
// The package name shadows the standard library; import it under an alias
// such as timestats.
package time
