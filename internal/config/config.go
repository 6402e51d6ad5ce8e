package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/derekprior/rrsched/internal/schedule"
	"github.com/derekprior/rrsched/internal/strategy"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ByeName is how a bye is written in place of an opponent.
const ByeName = "BYE"

// Seed is an RNG seed that may be deferred to the wall clock.
type Seed struct {
	Value int64
	Time  bool
}

// ParseSeed accepts "TIME" or a non-negative integer.
func ParseSeed(s string) (Seed, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "TIME") {
		return Seed{Time: true}, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("failed to parse rng seed from [%s]", s)
	}
	if n < 0 {
		return Seed{}, fmt.Errorf("rng seed must be a non-negative integer, but received %d", n)
	}
	return Seed{Value: n}, nil
}

func (s *Seed) UnmarshalYAML(value *yaml.Node) error {
	seed, err := ParseSeed(value.Value)
	if err != nil {
		return err
	}
	*s = seed
	return nil
}

// Int64 returns the seed in schedule.Params form: negative means clock.
func (s Seed) Int64() int64 {
	if s.Time {
		return -1
	}
	return s.Value
}

func (s Seed) String() string {
	if s.Time {
		return "TIME"
	}
	return strconv.FormatInt(s.Value, 10)
}

// League holds the structural parameters. Game counts left unset are
// filled in from the strategy.
type League struct {
	Divisions          int  `yaml:"divisions"`
	TeamsPerDivision   int  `yaml:"teams_per_division"`
	GamesVsDivision    *int `yaml:"games_vs_division"`
	GamesVsNonDivision *int `yaml:"games_vs_non_division"`
}

// Division optionally names a division and its teams.
type Division struct {
	Name  string   `yaml:"name"`
	Teams []string `yaml:"teams"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Store struct {
	Path string `yaml:"path"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	League    League     `yaml:"league"`
	Divisions []Division `yaml:"divisions"`
	Strategy  string     `yaml:"strategy"`
	RNG       Seed       `yaml:"rng"`
	Logging   Logging    `yaml:"logging"`
	Store     Store      `yaml:"store"`
	Server    Server     `yaml:"server"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		RNG:     Seed{Time: true},
		Logging: Logging{Level: "warn", Format: "text"},
		Store:   Store{Path: "rrsched.db"},
		Server:  Server{Addr: ":8080"},
	}
}

// FromParams builds a config for a league given directly on the command line.
func FromParams(p schedule.Params) (*Config, error) {
	cfg := Default()
	cfg.League = League{
		Divisions:          p.Divisions,
		TeamsPerDivision:   p.TeamsPerDivision,
		GamesVsDivision:    &p.GamesVsDivision,
		GamesVsNonDivision: &p.GamesVsNonDivision,
	}
	if p.Seed >= 0 {
		cfg.RNG = Seed{Value: p.Seed}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromBytes parses YAML bytes into a Config and validates it.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads and parses a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// Params returns the schedule parameters described by the config.
func (c *Config) Params() schedule.Params {
	p := schedule.Params{
		Divisions:        c.League.Divisions,
		TeamsPerDivision: c.League.TeamsPerDivision,
		Seed:             c.RNG.Int64(),
	}
	if c.Strategy != "" {
		if s, err := strategy.Get(c.Strategy); err == nil {
			p.GamesVsDivision, p.GamesVsNonDivision = s.Rounds()
		}
	}
	if c.League.GamesVsDivision != nil {
		p.GamesVsDivision = *c.League.GamesVsDivision
	}
	if c.League.GamesVsNonDivision != nil {
		p.GamesVsNonDivision = *c.League.GamesVsNonDivision
	}
	return p
}

// ValidateParams performs the checks the schedule builder leaves to its
// callers. Division counts above schedule.MaxDivisions pass through so the
// builder can reject them itself.
func ValidateParams(p schedule.Params) error {
	if p.Divisions <= 0 {
		return fmt.Errorf("%w: number of divisions must be positive, got %d", ErrInvalidConfig, p.Divisions)
	}
	if p.TeamsPerDivision <= 0 {
		return fmt.Errorf("%w: number of teams per division must be positive, got %d", ErrInvalidConfig, p.TeamsPerDivision)
	}
	if p.GamesVsDivision < 0 {
		return fmt.Errorf("%w: number of games vs division opponents must not be negative, got %d", ErrInvalidConfig, p.GamesVsDivision)
	}
	if p.GamesVsNonDivision < 0 {
		return fmt.Errorf("%w: number of games vs non-division opponents must not be negative, got %d", ErrInvalidConfig, p.GamesVsNonDivision)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Strategy != "" {
		if _, err := strategy.Get(c.Strategy); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	// Named divisions determine the league shape unless counts are given,
	// in which case they must agree.
	if len(c.Divisions) > 0 {
		if c.League.Divisions == 0 {
			c.League.Divisions = len(c.Divisions)
		}
		if c.League.TeamsPerDivision == 0 {
			c.League.TeamsPerDivision = len(c.Divisions[0].Teams)
		}
		if len(c.Divisions) != c.League.Divisions {
			return fmt.Errorf("%w: %d divisions named but league has %d", ErrInvalidConfig, len(c.Divisions), c.League.Divisions)
		}

		seen := make(map[string]string)
		for _, div := range c.Divisions {
			if len(div.Teams) != c.League.TeamsPerDivision {
				return fmt.Errorf("%w: division %q has %d teams, want %d", ErrInvalidConfig, div.Name, len(div.Teams), c.League.TeamsPerDivision)
			}
			for _, team := range div.Teams {
				if strings.EqualFold(strings.TrimSpace(team), ByeName) {
					return fmt.Errorf("%w: team name %q is reserved for byes", ErrInvalidConfig, team)
				}
				if prevDiv, ok := seen[team]; ok {
					return fmt.Errorf("%w: team %q appears in both %q and %q divisions", ErrInvalidConfig, team, prevDiv, div.Name)
				}
				seen[team] = div.Name
			}
		}
	}

	if c.Strategy == "" && (c.League.GamesVsDivision == nil || c.League.GamesVsNonDivision == nil) {
		return fmt.Errorf("%w: games_vs_division and games_vs_non_division are required without a strategy", ErrInvalidConfig)
	}

	if c.Logging.Format != "" && c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Logging.Format)
	}

	return ValidateParams(c.Params())
}
