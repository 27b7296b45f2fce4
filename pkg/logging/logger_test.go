package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_LevelFiltering(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(Config{Level: "warn"}, buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `"level":"warn"`)
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(Config{Level: "loud"}, buf)

	logger.Info().Msg("visible")
	logger.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "visible")
	assert.NotContains(t, out, "hidden")
}
