package tabstitch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/tabstitch/model"
	"github.com/tsawler/tabstitch/stitch"
	"github.com/tsawler/tabstitch/tables"
)

// Config centralises every tunable, grouped by the stage that reads it.
type Config struct {
	// Tables holds row, column, classification and title settings
	Tables tables.Config `yaml:"tables" json:"tables"`

	// Stitch holds the continuation settings
	Stitch stitch.Config `yaml:"stitch" json:"stitch"`

	// Ruled holds the layout provider's ruled-line detection settings
	Ruled model.RuledSettings `yaml:"ruled" json:"ruled"`
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Tables: tables.DefaultConfig(),
		Stitch: stitch.DefaultConfig(),
		Ruled:  model.DefaultRuledSettings(),
	}
}

// Validate checks every section
func (c Config) Validate() error {
	if err := c.Tables.Validate(); err != nil {
		return err
	}
	if err := c.Stitch.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Ruled.Strategy {
	case model.StrategyLines, model.StrategyText:
	default:
		return fmt.Errorf("%w: unknown ruled strategy %q", ErrInvalidConfig, c.Ruled.Strategy)
	}
	return nil
}

func (c Config) clone() Config {
	out := c
	out.Tables.NoisePatterns = append([]string(nil), c.Tables.NoisePatterns...)
	return out
}

// LoadConfigFile reads YAML or JSON over the defaults. Keys missing from
// the file keep their default values.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			if jerr := json.Unmarshal(b, &cfg); jerr != nil {
				return cfg, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
