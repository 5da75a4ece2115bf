package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/temps/internal/timecalc"
)

// Environment variables consulted by Load. They take precedence over the
// config file.
const (
	EnvConfig         = "TEMPS_CONFIG"
	EnvFile           = "TEMPS_FILE"
	EnvMidnightOffset = "TEMPS_MIDNIGHT_OFFSET"
	EnvWeekStart      = "TEMPS_WEEK_START"
)

// DefaultFile is the tracking file used when none is configured.
const DefaultFile = "~/temps.tsv"

// Config is the resolved configuration handed to the commands.
type Config struct {
	// File is the tracking file path; a leading ~ is expanded by Validate.
	File string
	// MidnightOffset is the time of day at which a logical day ends.
	MidnightOffset time.Duration
	// WeekStart is the first day of a weekly report.
	WeekStart time.Weekday
}

// fileConfig mirrors config.yaml. Durations are written as "HH:MM".
type fileConfig struct {
	File           string `yaml:"file"`
	MidnightOffset string `yaml:"midnight_offset"`
	WeekStart      string `yaml:"week_start"`
}

// Error reports an invalid configuration value.
type Error struct {
	Key   string
	Value string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Key, e.Value, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{File: DefaultFile, WeekStart: time.Monday}
}

const configTemplate = `# temps configuration
#
# All settings are optional. Environment variables (TEMPS_FILE,
# TEMPS_MIDNIGHT_OFFSET, TEMPS_WEEK_START) override this file, and
# command-line flags override both.

# Path of the tab-separated tracking file.
file: ~/temps.tsv

# Time at which the current day is considered to have ended, as HH:MM.
# Work done before this time counts towards the previous day.
midnight_offset: "00:00"

# First day of the week for weekly summaries.
week_start: monday
`

// DefaultPath returns $TEMPS_CONFIG, or config.yaml in the user config
// directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, "temps", "config.yaml"), nil
}

// Load reads the config file at path, if it exists, and applies environment
// overrides. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Default(), fmt.Errorf("reading config file %s: %w", path, err)
		default:
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return Default(), fmt.Errorf("%w\nTip: run `temps config init --force` to regenerate defaults",
					&Error{Key: "config file", Value: path, Err: err})
			}
			if err := cfg.apply(fc.File, fc.MidnightOffset, fc.WeekStart); err != nil {
				return Default(), fmt.Errorf("config file %s: %w", path, err)
			}
		}
	}

	if err := cfg.apply(os.Getenv(EnvFile), os.Getenv(EnvMidnightOffset), os.Getenv(EnvWeekStart)); err != nil {
		return Default(), fmt.Errorf("environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// apply overrides fields with the non-empty raw values.
func (c *Config) apply(file, offset, weekStart string) error {
	if file != "" {
		c.File = file
	}
	if offset != "" {
		d, err := timecalc.ParseClock(offset)
		if err != nil {
			return &Error{Key: "midnight_offset", Value: offset, Err: err}
		}
		c.MidnightOffset = d
	}
	if weekStart != "" {
		wd, err := ParseWeekday(weekStart)
		if err != nil {
			return &Error{Key: "week_start", Value: weekStart, Err: err}
		}
		c.WeekStart = wd
	}
	return nil
}

// Validate checks value ranges and expands a leading ~ in File.
func (c *Config) Validate() error {
	if err := timecalc.ValidateOffset(c.MidnightOffset); err != nil {
		return &Error{Key: "midnight_offset", Value: c.MidnightOffset.String(), Err: err}
	}
	if c.File == "" {
		return &Error{Key: "file", Value: c.File, Err: errors.New("path must not be empty")}
	}
	path, err := ExpandHome(c.File)
	if err != nil {
		return &Error{Key: "file", Value: c.File, Err: err}
	}
	c.File = path
	return nil
}

// Calendar returns the day-window calculator for this configuration in the
// local time zone.
func (c Config) Calendar() (timecalc.Calendar, error) {
	return timecalc.NewCalendar(c.MidnightOffset, c.WeekStart, time.Local)
}

// YAML renders the configuration in the config file format.
func (c Config) YAML() ([]byte, error) {
	fc := fileConfig{
		File:           c.File,
		MidnightOffset: fmt.Sprintf("%02d:%02d", int(c.MidnightOffset/time.Hour), int(c.MidnightOffset%time.Hour/time.Minute)),
		WeekStart:      strings.ToLower(c.WeekStart.String()),
	}
	data, err := yaml.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// ParseWeekday accepts English day names, case-insensitive, full or
// three-letter.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday")
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

// WriteTemplate writes the annotated default config to path. An existing
// file is only replaced when force is set.
func WriteTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
