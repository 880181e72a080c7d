// Command wavecalc derives significant wave height, mean period and dominant
// wavelength from sea-surface-height records, and cleans noisy sequences
// with a local IQR outlier test.
//
// Usage:
//
//	wavecalc analyze [flags] file...
//	wavecalc clean [flags] file...
//	wavecalc psd [flags] file
//	wavecalc synth [flags]
//	wavecalc version
//
// Each file holds one sequence, one sample per row; "-" reads stdin.
// Settings come from flags, WAVECALC_* environment variables and
// .wavecalc.yaml in the working or home directory.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/cwbudde/algo-wave/cmd/wavecalc/commands"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := commands.NewRootCommand(commands.BuildInfo{Version: version, Commit: commit, Date: date})

	err := root.ExecuteContext(ctx)
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "Error: ")
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
