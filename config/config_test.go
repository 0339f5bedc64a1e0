package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "spanish", cfg.Analyzer.Language)
	assert.Equal(t, 0.01, cfg.Rank.ConfidenceThreshold)
	assert.Equal(t, 3, cfg.Rank.TopK)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Len(t, cfg.Suggestions, 5)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultDocuments(t *testing.T) {
	docs := DefaultDocuments()
	require.Len(t, docs, 6)
	assert.Equal(t, "El perro y el gato juegan juntos en el jardín.", docs[2])
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "docqa.yaml")

	content := `
analyzer:
  language: english
rank:
  confidence_threshold: 0.2
suggestions:
  - "Where do the dog and the cat play?"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "english", cfg.Analyzer.Language)
	assert.Equal(t, 0.2, cfg.Rank.ConfidenceThreshold)
	assert.Equal(t, 3, cfg.Rank.TopK, "unset keys keep their defaults")
	assert.Equal(t, []string{"Where do the dog and the cat play?"}, cfg.Suggestions)
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "docqa.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("rank: [1, 2"), 0644))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".docqa"), 0755))
	content := `
rank:
  top_k: 6
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".docqa", "config.yaml"), []byte(content), 0644))

	cfg, err := LoadFromDir(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Rank.TopK)

	cfg, err = LoadFromDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docqa.yaml")
	cfg := DefaultConfig()
	cfg.Analyzer.Language = "french"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown language", func(c *Config) { c.Analyzer.Language = "klingon" }},
		{"threshold above one", func(c *Config) { c.Rank.ConfidenceThreshold = 1.5 }},
		{"negative threshold", func(c *Config) { c.Rank.ConfidenceThreshold = -0.1 }},
		{"zero top k", func(c *Config) { c.Rank.TopK = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"blank suggestion", func(c *Config) { c.Suggestions = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DOCQA_LANGUAGE", "auto")
	t.Setenv("DOCQA_CONFIDENCE_THRESHOLD", "0.25")
	t.Setenv("DOCQA_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "auto", cfg.Analyzer.Language)
	assert.Equal(t, 0.25, cfg.Rank.ConfidenceThreshold)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.Rank.TopK, "unset variables leave the value alone")
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestApplyEnv_BadNumber(t *testing.T) {
	t.Setenv("DOCQA_TOP_K", "many")

	assert.Error(t, DefaultConfig().ApplyEnv())
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOCQA_TOP_K=9\n"), 0644))
	t.Setenv("DOCQA_TOP_K", "")
	require.NoError(t, os.Unsetenv("DOCQA_TOP_K"))

	LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env"))
	t.Cleanup(func() { os.Unsetenv("DOCQA_TOP_K") })

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, 9, cfg.Rank.TopK)
}
