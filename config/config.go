package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ScheduleConfig struct {
	// WorkStartHour and WorkEndHour bound the daily grid, inclusive labels.
	WorkStartHour int `mapstructure:"work_start_hour"`
	WorkEndHour   int `mapstructure:"work_end_hour"`
	// HourHeight is the rendered pixel height of one hour row.
	HourHeight float64 `mapstructure:"hour_height"`
}

type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

type AuthConfig struct {
	LoginDelay time.Duration `mapstructure:"login_delay"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// LoadConfig reads an optional config.yaml, applies MIO_* environment
// overrides, and falls back to the baked defaults of the original salon app
// (work window 9–20, 80px per hour).
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("schedule.work_start_hour", 9)
	viper.SetDefault("schedule.work_end_hour", 20)
	viper.SetDefault("schedule.hour_height", 80.0)
	viper.SetDefault("storage.dir", "data")
	viper.SetDefault("auth.login_delay", time.Duration(0))
	viper.SetDefault("logging.level", "info")

	viper.SetEnvPrefix("MIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Schedule.WorkStartHour >= config.Schedule.WorkEndHour {
		return nil, fmt.Errorf("work window start %d must precede end %d",
			config.Schedule.WorkStartHour, config.Schedule.WorkEndHour)
	}

	return &config, nil
}
