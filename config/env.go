package config

import (
	"fmt"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// envOverrides lists the settings that can be overridden from the environment.
type envOverrides struct {
	Language            string  `env:"DOCQA_LANGUAGE"`
	ConfidenceThreshold float64 `env:"DOCQA_CONFIDENCE_THRESHOLD"`
	TopK                int     `env:"DOCQA_TOP_K"`
	LogLevel            string  `env:"DOCQA_LOG_LEVEL"`
	LogFormat           string  `env:"DOCQA_LOG_FORMAT"`
}

// LoadDotEnv loads variables from the given .env files into the environment, without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// ApplyEnv overrides c with the DOCQA_* variables present in the environment.
func (c *Config) ApplyEnv() error {
	o := envOverrides{
		Language:            c.Analyzer.Language,
		ConfidenceThreshold: c.Rank.ConfidenceThreshold,
		TopK:                c.Rank.TopK,
		LogLevel:            c.Logging.Level,
		LogFormat:           c.Logging.Format,
	}
	if _, err := env.UnmarshalFromEnviron(&o); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}

	c.Analyzer.Language = o.Language
	c.Rank.ConfidenceThreshold = o.ConfidenceThreshold
	c.Rank.TopK = o.TopK
	c.Logging.Level = o.LogLevel
	c.Logging.Format = o.LogFormat
	return nil
}
