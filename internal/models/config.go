package models

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the run configuration for a solve batch
type Config struct {
	// QualityBudgetMinutes is the time budget used for the quality-level
	// pass (sum of blueprint_id * max_geodes over all blueprints).
	QualityBudgetMinutes int `yaml:"quality_budget_minutes"`

	// ProductBudgetMinutes is the longer budget used for the product pass
	// (product of max_geodes over the leading blueprints).
	ProductBudgetMinutes int `yaml:"product_budget_minutes"`

	// SubsetMaxID limits the product pass to blueprints with ID <= SubsetMaxID
	SubsetMaxID int `yaml:"subset_max_id"`

	// Workers is the number of concurrent blueprint searches.
	// Zero means one worker per CPU.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the canonical budgets: 24 minutes for the
// quality pass, 32 minutes for the product pass over blueprints 1-3.
func DefaultConfig() Config {
	return Config{
		QualityBudgetMinutes: 24,
		ProductBudgetMinutes: 32,
		SubsetMaxID:          3,
		Workers:              0,
	}
}

// LoadConfig reads a YAML config file, applying defaults for absent keys.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for impossible budgets
func (c Config) Validate() error {
	if c.QualityBudgetMinutes < 1 {
		return fmt.Errorf("quality_budget_minutes must be >= 1, got %d", c.QualityBudgetMinutes)
	}
	if c.ProductBudgetMinutes < 1 {
		return fmt.Errorf("product_budget_minutes must be >= 1, got %d", c.ProductBudgetMinutes)
	}
	if c.SubsetMaxID < 1 {
		return fmt.Errorf("subset_max_id must be >= 1, got %d", c.SubsetMaxID)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}
