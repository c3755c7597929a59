package aco

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("config error")

// Selection policies for pheromone-guided construction.
const (
	SelectArgmax   = "argmax"
	SelectRoulette = "roulette"
)

// Config stores the parameters of a colony run.
type Config struct {
	Distances DistancesConfig `toml:"distances"`
	Colony    ColonyConfig    `toml:"colony"`
	Heuristic HeuristicConfig `toml:"heuristic"`
}

// DistancesConfig describes how the distance model is produced.
type DistancesConfig struct {
	NumVertices  int     `ini:"num_vertices" toml:"num_vertices"`
	MinCost      float64 `ini:"min_cost" toml:"min_cost"`
	MaxCost      float64 `ini:"max_cost" toml:"max_cost"`
	IntegerCosts bool    `ini:"integer_costs" toml:"integer_costs"`
	File         string  `ini:"file" toml:"file"` // precomputed matrix, overrides generation
}

// ColonyConfig holds the size and scheduling of the colony.
type ColonyConfig struct {
	NumAnts     int    `ini:"num_ants" toml:"num_ants"`
	Generations int    `ini:"generations" toml:"generations"`
	Workers     int    `ini:"workers" toml:"workers"` // walkers built concurrently per generation
	Seed        int64  `ini:"seed" toml:"seed"`
	Selection   string `ini:"selection" toml:"selection"` // "argmax" or "roulette"
}

// HeuristicConfig holds the scoring exponents and the evaporation rate.
type HeuristicConfig struct {
	Alpha       float64 `ini:"alpha" toml:"alpha"`
	Beta        float64 `ini:"beta" toml:"beta"`
	Evaporation float64 `ini:"evaporation" toml:"evaporation"`
}

// DefaultConfig returns the stock parameters: 150 vertices with integer
// costs in [5, 50], 35 ants over 20 generations, α=2, β=3, ρ=0.4.
func DefaultConfig() *Config {
	return &Config{
		Distances: DistancesConfig{
			NumVertices:  150,
			MinCost:      5,
			MaxCost:      50,
			IntegerCosts: true,
		},
		Colony: ColonyConfig{
			NumAnts:     35,
			Generations: 20,
			Workers:     1,
			Selection:   SelectArgmax,
		},
		Heuristic: HeuristicConfig{
			Alpha:       2,
			Beta:        3,
			Evaporation: 0.4,
		},
	}
}

// LoadConfig loads a configuration file on top of DefaultConfig. Files with
// a .toml extension are decoded as TOML, anything else as INI.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	if strings.EqualFold(filepath.Ext(filePath), ".toml") {
		if _, err := toml.DecodeFile(filePath, config); err != nil {
			return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
		}
	} else if err := loadINI(filePath, config); err != nil {
		return nil, err
	}

	config.Colony.Selection = strings.ToLower(cleanIniString(config.Colony.Selection))
	config.Distances.File = cleanIniString(config.Distances.File)
	if config.Colony.Selection == "" {
		config.Colony.Selection = SelectArgmax
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadINI(filePath string, config *Config) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	if err := cfg.Section("Distances").MapTo(&config.Distances); err != nil {
		return fmt.Errorf("failed to map [Distances] section: %w", err)
	}
	if err := cfg.Section("Colony").MapTo(&config.Colony); err != nil {
		return fmt.Errorf("failed to map [Colony] section: %w", err)
	}
	if err := cfg.Section("Heuristic").MapTo(&config.Heuristic); err != nil {
		return fmt.Errorf("failed to map [Heuristic] section: %w", err)
	}

	// MapTo silently skips bool values carrying a trailing comment.
	if key, err := cfg.Section("Distances").GetKey("integer_costs"); err == nil {
		if v, perr := strconv.ParseBool(cleanIniString(key.String())); perr == nil {
			config.Distances.IntegerCosts = v
		}
	}
	return nil
}

// Validate rejects configurations the colony cannot run.
func (c *Config) Validate() error {
	if c.Distances.NumVertices < 1 {
		return fmt.Errorf("%w: num_vertices must be positive", ErrInvalidConfig)
	}
	if c.Distances.File == "" {
		minCost, maxCost := c.Distances.MinCost, c.Distances.MaxCost
		if !isFinite(minCost) || !isFinite(maxCost) {
			return fmt.Errorf("%w: min_cost and max_cost must be finite", ErrInvalidConfig)
		}
		if minCost <= 0 {
			return fmt.Errorf("%w: min_cost must be positive", ErrInvalidConfig)
		}
		if maxCost < minCost {
			return fmt.Errorf("%w: max_cost cannot be less than min_cost", ErrInvalidConfig)
		}
		if c.Distances.IntegerCosts && math.Ceil(minCost) > math.Floor(maxCost) {
			return fmt.Errorf("%w: no whole number between min_cost %g and max_cost %g", ErrInvalidConfig, minCost, maxCost)
		}
	}
	if c.Colony.NumAnts < 1 {
		return fmt.Errorf("%w: num_ants must be positive", ErrInvalidConfig)
	}
	if c.Colony.Generations < 1 {
		return fmt.Errorf("%w: generations must be positive", ErrInvalidConfig)
	}
	if c.Colony.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive", ErrInvalidConfig)
	}
	switch c.Colony.Selection {
	case SelectArgmax, SelectRoulette:
	default:
		return fmt.Errorf("%w: invalid selection '%s', must be one of 'argmax', 'roulette'", ErrInvalidConfig, c.Colony.Selection)
	}
	if !isFinite(c.Heuristic.Alpha) || !isFinite(c.Heuristic.Beta) || !isFinite(c.Heuristic.Evaporation) {
		return fmt.Errorf("%w: alpha, beta and evaporation must be finite", ErrInvalidConfig)
	}
	if c.Heuristic.Alpha < 0 {
		return fmt.Errorf("%w: alpha cannot be negative", ErrInvalidConfig)
	}
	if c.Heuristic.Beta < 0 {
		return fmt.Errorf("%w: beta cannot be negative", ErrInvalidConfig)
	}
	if c.Heuristic.Evaporation < 0 || c.Heuristic.Evaporation >= 1 {
		return fmt.Errorf("%w: evaporation must be in [0, 1)", ErrInvalidConfig)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
