package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
	"github.com/username/dni-robocze/internal/calendar"
	"go.uber.org/zap"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
	Daemon   DaemonConfig   `mapstructure:"daemon"`
}

// CalendarConfig overrides parts of the built-in Polish holiday table.
type CalendarConfig struct {
	// EasterDates maps years to Easter Sunday (YYYY-MM-DD). When set it
	// replaces the built-in Easter table entirely.
	EasterDates map[string]string `mapstructure:"easter_dates"`

	// TableFile points to a local easter table file (see LoadEasterFile).
	// Takes precedence over EasterDates.
	TableFile string `mapstructure:"table_file"`

	// ChristmasEveFrom overrides the first year Christmas Eve applies.
	// Zero keeps the built-in threshold.
	ChristmasEveFrom int `mapstructure:"christmas_eve_from"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DaemonConfig represents daemon mode configuration
type DaemonConfig struct {
	DailyTime  string `mapstructure:"daily_time"`  // Time of the daily report (HH:MM, local)
	SystemTray bool   `mapstructure:"system_tray"` // Show system tray icon (Windows only)
}

// Load loads configuration from file. Without an explicit path a missing
// config file is not an error; the built-in defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.dni-robocze")
		v.AddConfigPath("/etc/dni-robocze")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && errors.As(err, &notFound) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for yearStr, dateStr := range c.Calendar.EasterDates {
		if _, err := strconv.Atoi(yearStr); err != nil {
			return fmt.Errorf("calendar.easter_dates: invalid year %q", yearStr)
		}
		if _, err := time.Parse("2006-01-02", dateStr); err != nil {
			return fmt.Errorf("calendar.easter_dates: invalid date %q for year %s", dateStr, yearStr)
		}
	}

	if c.Calendar.ChristmasEveFrom < 0 {
		return fmt.Errorf("calendar.christmas_eve_from must not be negative")
	}

	if c.Daemon.DailyTime != "" {
		var h, m int
		if _, err := fmt.Sscanf(c.Daemon.DailyTime, "%d:%d", &h, &m); err != nil || h < 0 || h > 23 || m < 0 || m > 59 {
			return fmt.Errorf("daemon.daily_time must be HH:MM, got %q", c.Daemon.DailyTime)
		}
	}

	return nil
}

// Table builds the holiday table: the built-in Polish table with the
// configured overrides applied.
func (c *CalendarConfig) Table(logger *zap.Logger) (calendar.Table, error) {
	table := calendar.PolandTable()

	switch {
	case c.TableFile != "":
		easter, err := calendar.LoadEasterFile(c.TableFile, logger)
		if err != nil {
			return calendar.Table{}, err
		}
		table.Easter = easter

	case len(c.EasterDates) > 0:
		easter := make(map[int]time.Time, len(c.EasterDates))
		for yearStr, dateStr := range c.EasterDates {
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				return calendar.Table{}, fmt.Errorf("invalid easter_dates year %q", yearStr)
			}
			date, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return calendar.Table{}, fmt.Errorf("invalid easter_dates date %q: %w", dateStr, err)
			}
			easter[year] = date
		}
		table.Easter = easter
	}

	if c.ChristmasEveFrom != 0 {
		for i := range table.Fixed {
			if table.Fixed[i].From != 0 {
				table.Fixed[i].From = c.ChristmasEveFrom
			}
		}
	}

	return table, nil
}

// GetDailyTime returns the configured daily report time (local timezone).
// Returns hour and minute (0-23, 0-59). Default: 08:00
func (c *DaemonConfig) GetDailyTime() (hour, minute int) {
	if c.DailyTime == "" {
		return 8, 0
	}

	var h, m int
	_, err := fmt.Sscanf(c.DailyTime, "%d:%d", &h, &m)
	if err != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 8, 0
	}
	return h, m
}
