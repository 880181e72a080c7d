package observability_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-wave/internal/observability"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	var quiet bytes.Buffer
	observability.NewLogger(&quiet, false).Debug("hidden", "job", "a.csv")
	assert.Empty(t, quiet.String())

	var verbose bytes.Buffer
	observability.NewLogger(&verbose, true).Debug("shown", "job", "a.csv", "samples", 10)
	assert.Contains(t, verbose.String(), "msg=shown")
	assert.Contains(t, verbose.String(), "job=a.csv")
	assert.Contains(t, verbose.String(), "samples=10")
}

func TestDiscardLogger(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		observability.DiscardLogger().Error("dropped")
	})
}
