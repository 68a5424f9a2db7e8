package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerDefaults(t *testing.T) {
	// A partial config must be filled in, not taken at face value; a nil
	// Output would make the console writer panic on first write.
	log := NewLogger(&Config{Level: InfoLevel})
	assert.NotPanics(t, func() {
		log.Info("created", "id", "a1")
		log.Error(errors.New("boom"), "failed")
	})

	assert.NotPanics(t, func() {
		NewLogger(nil).Info("default config")
	})
}

func TestLoggerWritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: DebugLevel, Output: &buf})

	log.Info("appointment created", "id", "a1")
	assert.Contains(t, buf.String(), "appointment created")

	buf.Reset()
	log.Debug("cache miss")
	assert.Contains(t, buf.String(), "cache miss")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
	assert.Equal(t, InfoLevel, ParseLevel("nonsense"))
}
