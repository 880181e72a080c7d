// Package series loads single-channel numeric sequences from CSV or plain
// text, one sample per row.
package series

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrNoData is returned when a source holds no samples.
	ErrNoData = errors.New("series: no data")
	// ErrTooLarge is returned when a source exceeds Options.MaxBytes.
	ErrTooLarge = errors.New("series: input too large")
	// ErrMissingValue is returned for empty or NA cells. Skipping them would
	// break uniform sampling.
	ErrMissingValue = errors.New("series: missing value")
	// ErrInvalidValue is returned for cells that are not numbers.
	ErrInvalidValue = errors.New("series: invalid value")
	// ErrColumnOutOfRange is returned when a row has too few fields.
	ErrColumnOutOfRange = errors.New("series: column out of range")
)

// Stdin is the path that selects standard input in [Load].
const Stdin = "-"

// Series is a named sample sequence.
type Series struct {
	Name   string
	Values []float64
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.Values) }

// Options holds options for loading.
type Options struct {
	Column    int   // Zero-based value column
	Delimiter rune  // Field delimiter; 0 picks ',' or '\t' from the file extension
	MaxBytes  int64 // Upper bound on input size; 0 disables the check
}

// Load reads the file at path, or standard input for [Stdin].
func Load(path string, opts Options) (Series, error) {
	if opts.Delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		opts.Delimiter = '\t'
	}

	if path == Stdin {
		values, err := Read(os.Stdin, opts)
		return Series{Name: "stdin", Values: values}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Series{}, err
	}
	defer file.Close()

	values, err := Read(file, opts)
	if err != nil {
		return Series{}, fmt.Errorf("%s: %w", path, err)
	}

	return Series{Name: filepath.Base(path), Values: values}, nil
}

// Read parses one value per row from r. A first row whose value cell is
// not numeric is treated as a header. Lines starting with '#' are ignored.
func Read(r io.Reader, opts Options) ([]float64, error) {
	if opts.Column < 0 {
		return nil, fmt.Errorf("%w: %d", ErrColumnOutOfRange, opts.Column)
	}

	src := r
	var limited *io.LimitedReader
	if opts.MaxBytes > 0 {
		limited = &io.LimitedReader{R: r, N: opts.MaxBytes + 1}
		src = limited
	}

	reader := csv.NewReader(src)
	reader.Comma = ','
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var values []float64
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if limited != nil && limited.N <= 0 {
			return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, opts.MaxBytes)
		}

		line, _ := reader.FieldPos(0)
		if opts.Column >= len(record) {
			return nil, fmt.Errorf("line %d: %w: %d of %d fields", line, ErrColumnOutOfRange, opts.Column, len(record))
		}

		cell := strings.TrimSpace(strings.Trim(record[opts.Column], "\""))
		v, err := parseCell(cell)
		if err != nil {
			if row == 0 && errors.Is(err, ErrInvalidValue) {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		values = append(values, v)
	}

	if limited != nil && limited.N <= 0 {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, opts.MaxBytes)
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}

	return values, nil
}

func parseCell(cell string) (float64, error) {
	switch strings.ToLower(cell) {
	case "", "na", "nan", "null":
		return 0, fmt.Errorf("%w: %q", ErrMissingValue, cell)
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, cell)
	}

	return v, nil
}

// Write writes one value per line using the shortest representation that
// round-trips.
func Write(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
