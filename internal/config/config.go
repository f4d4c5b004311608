// Package config resolves travelboard settings from defaults, an optional
// YAML file and TRAVELBOARD_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/travelboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config holds all travelboard settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`

	// Seed controls whether a session starts with destinations at all.
	Seed bool `yaml:"seed"`

	// Seeds replaces the built-in start-up destinations when non-empty.
	Seeds []SeedDestination `yaml:"seeds"`
}

// LoggingConfig configures the use-case log. The TUI owns the terminal,
// so logs only go to a file, and only when File is set.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// SeedDestination is the YAML form of a start-up destination.
type SeedDestination struct {
	Name       string   `yaml:"name"`
	Country    string   `yaml:"country"`
	Start      string   `yaml:"start"`
	End        string   `yaml:"end"`
	Budget     float64  `yaml:"budget"`
	Status     string   `yaml:"status"`
	Activities []string `yaml:"activities"`
	Notes      string   `yaml:"notes"`
}

// DefaultConfig returns the settings used when nothing is configured:
// built-in seeds, no logging.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Seed:    true,
	}
}

// Load builds the effective configuration. path may be empty, in which
// case TRAVELBOARD_CONFIG is consulted; a missing file named only by the
// environment is ignored, a missing explicit path is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("TRAVELBOARD_CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TRAVELBOARD_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("TRAVELBOARD_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("TRAVELBOARD_NO_SEED"); v != "" {
		if noSeed, err := strconv.ParseBool(v); err == nil {
			c.Seed = !noSeed
		}
	}
}

// Validate checks the log level and every configured seed.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	for i, s := range c.Seeds {
		if _, err := s.toDestination(); err != nil {
			return fmt.Errorf("seeds[%d]: %w", i, err)
		}
	}
	return nil
}

// SeedDestinations returns the destinations a new session starts with.
func (c Config) SeedDestinations() []*domain.Destination {
	if !c.Seed {
		return nil
	}
	if len(c.Seeds) == 0 {
		return domain.SeedDestinations()
	}
	out := make([]*domain.Destination, 0, len(c.Seeds))
	for _, s := range c.Seeds {
		// Validate has already rejected bad entries.
		d, _ := s.toDestination()
		out = append(out, d)
	}
	return out
}

func (s SeedDestination) toDestination() (*domain.Destination, error) {
	draft := domain.NewDraft()
	draft.SetName(s.Name)
	draft.SetCountry(s.Country)
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	start, err := domain.ParseDate(s.Start)
	if err != nil {
		return nil, fmt.Errorf("start date %q: use YYYY-MM-DD", s.Start)
	}
	end, err := domain.ParseDate(s.End)
	if err != nil {
		return nil, fmt.Errorf("end date %q: use YYYY-MM-DD", s.End)
	}
	if s.Budget < 0 || math.IsNaN(s.Budget) || math.IsInf(s.Budget, 0) {
		return nil, fmt.Errorf("budget must be a non-negative number")
	}
	status := domain.StatusPlanned
	if s.Status != "" {
		if status, err = domain.ParseStatus(s.Status); err != nil {
			return nil, err
		}
	}

	draft.SetStart(start)
	draft.SetEnd(end)
	draft.SetBudget(s.Budget)
	draft.SetStatus(status)
	draft.SetNotes(s.Notes)
	for _, a := range s.Activities {
		draft.SetPendingActivity(a)
		draft.AddActivity()
	}

	d, _ := draft.Commit()
	return d, nil
}
