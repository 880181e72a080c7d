package outlier

import (
	"fmt"
	"strings"
)

// Fill selects how a flagged sample appears in the cleaned output.
type Fill int

const (
	// FillZero replaces an outlier with 0.
	FillZero Fill = iota
	// FillMedian replaces an outlier with its local window median.
	FillMedian
	// FillDelete omits the outlier; the output shrinks by one per outlier.
	FillDelete
)

func (f Fill) String() string {
	switch f {
	case FillZero:
		return "zero"
	case FillMedian:
		return "median"
	case FillDelete:
		return "delete"
	default:
		return fmt.Sprintf("Fill(%d)", int(f))
	}
}

// Valid reports whether f is one of the defined policies.
func (f Fill) Valid() bool {
	return f >= FillZero && f <= FillDelete
}

// ParseFill maps "zero", "median" or "delete" (case-insensitive) to a Fill.
func ParseFill(s string) (Fill, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero":
		return FillZero, nil
	case "median":
		return FillMedian, nil
	case "delete":
		return FillDelete, nil
	default:
		return 0, fmt.Errorf("%w: fill %q (want zero, median or delete)", ErrInvalidArgument, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Fill) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: fill %d", ErrInvalidArgument, int(f))
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fill) UnmarshalText(text []byte) error {
	v, err := ParseFill(string(text))
	if err != nil {
		return err
	}

	*f = v
	return nil
}
