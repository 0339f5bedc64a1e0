package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for docqa.
type Config struct {
	Analyzer    AnalyzerConfig `yaml:"analyzer"`
	Rank        RankConfig     `yaml:"rank"`
	Corpus      CorpusConfig   `yaml:"corpus"`
	Suggestions []string       `yaml:"suggestions" validate:"dive,required"`
	Logging     LoggingConfig  `yaml:"logging"`
}

// AnalyzerConfig selects the alphabet filter and stemmer.
type AnalyzerConfig struct {
	Language string `yaml:"language" validate:"required,oneof=auto spanish english french russian swedish norwegian hungarian"`
}

// RankConfig holds ranking and display configuration.
type RankConfig struct {
	ConfidenceThreshold float64 `yaml:"confidence_threshold" validate:"gte=0,lte=1"`
	TopK                int     `yaml:"top_k" validate:"gte=1"`
	MMRLambda           float64 `yaml:"mmr_lambda" validate:"gte=0,lte=1"`
	DedupJaccard        float64 `yaml:"dedup_jaccard" validate:"gte=0,lte=1"`
}

// CorpusConfig controls how documents are read from a directory.
type CorpusConfig struct {
	Includes   []string `yaml:"includes"`
	Excludes   []string `yaml:"excludes"`
	SplitLines bool     `yaml:"split_lines"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{
			Language: "spanish",
		},
		Rank: RankConfig{
			ConfidenceThreshold: 0.01,
			TopK:                3,
			MMRLambda:           0.7,
			DedupJaccard:        0.8,
		},
		Corpus: CorpusConfig{
			Includes:   []string{"**/*.txt", "**/*.md"},
			Excludes:   []string{"**/.git/**", "**/node_modules/**", "**/vendor/**"},
			SplitLines: true,
		},
		Suggestions: DefaultSuggestions(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for docqa.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "docqa.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".docqa", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var validate = validator.New()

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
