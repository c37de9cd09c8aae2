package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the hickory service configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Scrape    ScrapeConfig    `yaml:"scrape"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Features  FeaturesConfig  `yaml:"features"`
	Training  TrainingConfig  `yaml:"training"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// ScrapeConfig holds website harvest settings.
type ScrapeConfig struct {
	BaseURL         string `yaml:"base_url"`
	TimeoutSec      int    `yaml:"timeout_sec"`
	DialTimeoutSec  int    `yaml:"dial_timeout_sec"`
	MaxBodyKilobyte int    `yaml:"max_body_kb"`
}

// CorpusConfig holds corpus storage settings.
type CorpusConfig struct {
	Dir string `yaml:"dir"`
}

// FeaturesConfig holds feature encoder settings.
type FeaturesConfig struct {
	MaxVocabulary int `yaml:"max_vocabulary"`
	OutputDim     int `yaml:"output_dim"`
}

// TrainingConfig holds training run settings.
type TrainingConfig struct {
	TestFraction float64 `yaml:"test_fraction"`
	Seed         int64   `yaml:"seed"`
}

// ArtifactsConfig holds artifact storage settings.
type ArtifactsConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Scrape.TimeoutSec <= 0 {
		c.Scrape.TimeoutSec = 15
	}
	if c.Scrape.DialTimeoutSec <= 0 {
		c.Scrape.DialTimeoutSec = 5
	}
	if c.Scrape.MaxBodyKilobyte <= 0 {
		c.Scrape.MaxBodyKilobyte = 2048
	}
	if c.Corpus.Dir == "" {
		c.Corpus.Dir = "data"
	}
	if c.Features.MaxVocabulary <= 0 {
		c.Features.MaxVocabulary = 500
	}
	if c.Features.OutputDim <= 0 {
		c.Features.OutputDim = 50
	}
	if c.Training.TestFraction <= 0 || c.Training.TestFraction >= 1 {
		c.Training.TestFraction = 0.2
	}
	if c.Training.Seed == 0 {
		c.Training.Seed = 42
	}
	if c.Artifacts.Dir == "" {
		c.Artifacts.Dir = "artifacts"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Training.TestFraction <= 0 || c.Training.TestFraction >= 1 {
		return fmt.Errorf("training.test_fraction must be in (0, 1), got %v", c.Training.TestFraction)
	}
	if c.Features.OutputDim > c.Features.MaxVocabulary {
		return fmt.Errorf("features.output_dim %d exceeds features.max_vocabulary %d",
			c.Features.OutputDim, c.Features.MaxVocabulary)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
