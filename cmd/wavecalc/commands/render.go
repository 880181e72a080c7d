package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-wave/internal/batch"
	"github.com/cwbudde/algo-wave/internal/config"
	"github.com/cwbudde/algo-wave/measure/wave"
	"github.com/cwbudde/algo-wave/stats/outlier"
)

// ErrJobsFailed is returned when at least one input could not be processed.
var ErrJobsFailed = errors.New("jobs failed")

type analyzeReport struct {
	File       string    `json:"file" yaml:"file"`
	Samples    int       `json:"samples" yaml:"samples"`
	SWH        []float64 `json:"swh,omitempty" yaml:"swh,omitempty"`
	SWHMean    float64   `json:"swh_mean" yaml:"swh_mean"`
	SWHMax     float64   `json:"swh_max" yaml:"swh_max"`
	Period     float64   `json:"period" yaml:"period"`
	Wavelength float64   `json:"wavelength" yaml:"wavelength"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
}

func newAnalyzeReport(job batch.Job, res batch.Result[wave.Report]) analyzeReport {
	rep := analyzeReport{File: job.Name, Samples: len(job.Values)}
	if res.Err != nil {
		rep.Error = res.Err.Error()
		return rep
	}

	rep.SWH = res.Value.SWH
	rep.Period = res.Value.Period
	rep.Wavelength = res.Value.Wavelength
	if len(rep.SWH) > 0 {
		var sum float64
		for _, h := range rep.SWH {
			sum += h
		}
		rep.SWHMean = sum / float64(len(rep.SWH))
		rep.SWHMax = slices.Max(rep.SWH)
	}

	return rep
}

type cleanReport struct {
	File       string    `json:"file" yaml:"file"`
	Samples    int       `json:"samples" yaml:"samples"`
	Outliers   []int     `json:"outliers" yaml:"outliers"`
	Degenerate int       `json:"degenerate" yaml:"degenerate"`
	Values     []float64 `json:"values,omitempty" yaml:"values,omitempty"`
	Output     string    `json:"output,omitempty" yaml:"output,omitempty"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
}

func newCleanReport(job batch.Job, res batch.Result[outlier.Result]) cleanReport {
	rep := cleanReport{File: job.Name, Samples: len(job.Values)}
	if res.Err != nil {
		rep.Error = res.Err.Error()
		return rep
	}

	rep.Outliers = res.Value.Outliers
	rep.Degenerate = res.Value.Degenerate
	rep.Values = res.Value.Values

	return rep
}

type psdReport struct {
	File       string    `json:"file" yaml:"file"`
	Samples    int       `json:"samples" yaml:"samples"`
	Resolution float64   `json:"resolution" yaml:"resolution"`
	PeakFreq   float64   `json:"peak_freq" yaml:"peak_freq"`
	Centroid   float64   `json:"centroid" yaml:"centroid"`
	Freqs      []float64 `json:"freqs" yaml:"freqs"`
	Power      []float64 `json:"power" yaml:"power"`
}

// render writes v as JSON, YAML or a go-pretty table built by toTable.
func render[T any](w io.Writer, format string, v T, toTable func(T) table.Writer) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatTable, "":
		_, err := fmt.Fprintln(w, toTable(v).Render())
		return err
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}

func errorCell(msg string) string {
	return color.RedString(msg)
}

func analyzeTable(reports []analyzeReport) table.Writer {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"File", "Samples", "Windows", "SWH mean", "SWH max", "Period", "Wavelength", "Status"})

	for _, r := range reports {
		if r.Error != "" {
			tbl.AppendRow(table.Row{r.File, humanize.Comma(int64(r.Samples)), "", "", "", "", "", errorCell(r.Error)})
			continue
		}

		tbl.AppendRow(table.Row{
			r.File,
			humanize.Comma(int64(r.Samples)),
			len(r.SWH),
			formatFloat(r.SWHMean),
			formatFloat(r.SWHMax),
			formatFloat(r.Period),
			formatFloat(r.Wavelength),
			"ok",
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d files", len(reports))})

	return tbl
}

func cleanTable(reports []cleanReport) table.Writer {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"File", "Samples", "Outliers", "Degenerate", "Kept", "Output", "Status"})

	for _, r := range reports {
		if r.Error != "" {
			tbl.AppendRow(table.Row{r.File, humanize.Comma(int64(r.Samples)), "", "", "", "", errorCell(r.Error)})
			continue
		}

		tbl.AppendRow(table.Row{
			r.File,
			humanize.Comma(int64(r.Samples)),
			humanize.Comma(int64(len(r.Outliers))),
			humanize.Comma(int64(r.Degenerate)),
			humanize.Comma(int64(len(r.Values))),
			r.Output,
			"ok",
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d files", len(reports))})

	return tbl
}

func psdTable(rep psdReport) table.Writer {
	tbl := newTable()
	tbl.SetTitle(fmt.Sprintf("%s: %s samples, peak %s, centroid %s",
		rep.File, humanize.Comma(int64(rep.Samples)), formatFloat(rep.PeakFreq), formatFloat(rep.Centroid)))
	tbl.AppendHeader(table.Row{"Bin", "Frequency", "Power"})

	for k := range rep.Freqs {
		tbl.AppendRow(table.Row{k, formatFloat(rep.Freqs[k]), fmt.Sprintf("%.6g", rep.Power[k])})
	}

	return tbl
}

func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}

	return humanize.FtoaWithDigits(v, 4)
}

// failures reports how many jobs returned an error.
func failures[T any](results []batch.Result[T]) error {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}

	if failed == 0 {
		return nil
	}

	return fmt.Errorf("%w: %d of %d", ErrJobsFailed, failed, len(results))
}
