package config

import (
	"fmt"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/officedays/officedays/internal/quarter"
	"github.com/officedays/officedays/pkg/dateutil"
)

const (
	keyRequiredAttendance = "required_quarterly_attendance"

	SectionBankHolidays = "bank_holidays"
	SectionLeave        = "leave"
	SectionOfficeDays   = "office_days"
)

// MaxQuarterlyAttendance caps the configured requirement at one byte's range
const MaxQuarterlyAttendance = 255

// Config represents one year's attendance configuration
type Config struct {
	RequiredQuarterlyAttendance int
	BankHolidays                Schedule
	Leave                       Schedule
	OfficeDays                  Schedule
}

// fileConfig mirrors the on-disk layout before dates are parsed
type fileConfig struct {
	RequiredQuarterlyAttendance int                      `mapstructure:"required_quarterly_attendance"`
	BankHolidays                map[string][]interface{} `mapstructure:"bank_holidays"`
	Leave                       map[string][]interface{} `mapstructure:"leave"`
	OfficeDays                  map[string][]interface{} `mapstructure:"office_days"`
}

// Load loads configuration from a TOML file.
// Malformed date entries are logged and dropped; structural problems are errors.
func Load(configPath string, logger *zap.Logger) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if !v.IsSet(keyRequiredAttendance) {
		return nil, fmt.Errorf("invalid config: %s is required", keyRequiredAttendance)
	}

	switch v.Get(keyRequiredAttendance).(type) {
	case int64, int:
	default:
		return nil, fmt.Errorf("invalid config: %s must be an integer", keyRequiredAttendance)
	}

	var raw fileConfig
	if err := v.Unmarshal(&raw, strictDecoding); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config := &Config{
		RequiredQuarterlyAttendance: raw.RequiredQuarterlyAttendance,
		BankHolidays:                buildSchedule(SectionBankHolidays, raw.BankHolidays, logger),
		Leave:                       buildSchedule(SectionLeave, raw.Leave, logger),
		OfficeDays:                  buildSchedule(SectionOfficeDays, raw.OfficeDays, logger),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger.Debug("Config loaded",
		zap.String("file", configPath),
		zap.Int("required_quarterly_attendance", config.RequiredQuarterlyAttendance))

	return config, nil
}

// strictDecoding turns off viper's weak typing and string-to-slice hook so a
// mistyped value fails the load instead of being coerced
func strictDecoding(c *mapstructure.DecoderConfig) {
	c.WeaklyTypedInput = false
	c.DecodeHook = nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.RequiredQuarterlyAttendance,
			validation.Min(0),
			validation.Max(MaxQuarterlyAttendance),
		),
	)
}

func buildSchedule(section string, raw map[string][]interface{}, logger *zap.Logger) Schedule {
	schedule := make(Schedule, len(raw))

	labels := make([]string, 0, len(raw))
	for label := range raw {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		q, ok := quarter.Parse(label)
		if !ok {
			logger.Warn("Ignoring unknown quarter",
				zap.String("section", section),
				zap.String("quarter", label))
			continue
		}

		entries := raw[label]
		dates := make([]time.Time, 0, len(entries))
		for _, entry := range entries {
			date, err := toDate(entry)
			if err != nil {
				logger.Warn("Dropping invalid date",
					zap.String("section", section),
					zap.String("quarter", label),
					zap.Any("value", entry),
					zap.Error(err))
				continue
			}
			dates = append(dates, date)
		}
		schedule[q] = dates
	}

	return schedule
}

// toDate accepts quoted ISO dates as well as native TOML dates
func toDate(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case string:
		return dateutil.ParseDate(v)
	case toml.LocalDate:
		return time.Date(v.Year, time.Month(v.Month), v.Day, 0, 0, 0, 0, time.Local), nil
	case time.Time:
		return dateutil.StartOfDay(v), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported date value of type %T", value)
	}
}
