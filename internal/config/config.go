package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/accounts"
)

// Config represents the top-level fleetledger.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Chart    ChartConfig    `yaml:"chart"`
	Posting  PostingConfig  `yaml:"posting"`
	Report   ReportConfig   `yaml:"report"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"`
}

// ChartConfig locates the chart-of-accounts file.
type ChartConfig struct {
	Path string `yaml:"path"`
}

// PostingConfig overrides the default settlement accounts used by the
// posting rules.
type PostingConfig struct {
	BankAccount    string `yaml:"bank_account"`
	PayableAccount string `yaml:"payable_account"`
}

// ReportConfig controls report presentation.
type ReportConfig struct {
	CurrencyLabel string `yaml:"currency_label"`
}

// Load reads a fleetledger.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: "rental_fleet",
		},
		Chart: ChartConfig{
			Path: "accounts/chart-of-accounts.csv",
		},
		Posting: PostingConfig{
			BankAccount:    accounts.CodeBank,
			PayableAccount: accounts.CodePayable,
		},
		Report: ReportConfig{
			CurrencyLabel: "Rp",
		},
	}
}
