package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Schedule.WorkStartHour)
	assert.Equal(t, 20, cfg.Schedule.WorkEndHour)
	assert.Equal(t, 80.0, cfg.Schedule.HourHeight)
	assert.Equal(t, "data", cfg.Storage.Dir)
	assert.Equal(t, time.Duration(0), cfg.Auth.LoginDelay)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("MIO_SCHEDULE_WORK_START_HOUR", "8")
	t.Setenv("MIO_AUTH_LOGIN_DELAY", "500ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Schedule.WorkStartHour)
	assert.Equal(t, 500*time.Millisecond, cfg.Auth.LoginDelay)
}

func TestLoadConfigRejectsInvertedWindow(t *testing.T) {
	t.Setenv("MIO_SCHEDULE_WORK_START_HOUR", "21")

	_, err := LoadConfig()
	require.Error(t, err)
}
