package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Settings represents process settings taken from the environment
type Settings struct {
	Editor    string `mapstructure:"editor"`     // EDITOR
	ConfigDir string `mapstructure:"config_dir"` // OFFICEDAYS_CONFIG_DIR, overrides the user config dir
	LogLevel  string `mapstructure:"log_level"`  // OFFICEDAYS_LOG_LEVEL
	LogFile   string `mapstructure:"log_file"`   // OFFICEDAYS_LOG_FILE, enables rotating file logs
}

// LoadSettings reads settings from environment variables
func LoadSettings() (*Settings, error) {
	v := viper.New()

	v.SetDefault("log_level", LogLevelWarn)

	bindings := map[string]string{
		"editor":     "EDITOR",
		"config_dir": "OFFICEDAYS_CONFIG_DIR",
		"log_level":  "OFFICEDAYS_LOG_LEVEL",
		"log_file":   "OFFICEDAYS_LOG_FILE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return &settings, nil
}

// Validate validates the settings
func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.LogLevel,
			validation.Required,
			validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
		),
	)
}
