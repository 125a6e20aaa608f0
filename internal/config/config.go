package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration settings
type Config struct {
	// FocusEntity is the identifier used as the default calculation target
	// when a command omits one. Empty means "detect from the data" (the
	// depth-0 entity of the input file).
	FocusEntity string `mapstructure:"focus_entity" yaml:"focus_entity"`

	// Bound selects which share-range reading weights the graph:
	// "lower", "average" or "upper".
	Bound string `mapstructure:"bound" yaml:"bound"`

	// IncludeInactive folds inactive relations into the graph.
	IncludeInactive bool `mapstructure:"include_inactive" yaml:"include_inactive"`

	// MaxPaths caps how many contributing paths a calculation enumerates
	// before giving up with an error. 0 means unbounded; ownership
	// structures in practice are shallow, but path counts are exponential
	// in degenerate dense graphs.
	MaxPaths int `mapstructure:"max_paths" yaml:"max_paths"`

	// Output controls presentation.
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

type OutputConfig struct {
	// Format is "text", "quiet" or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Bound:    "average",
		MaxPaths: 100000,
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load loads configuration from file, environment and defaults, in the
// usual precedence order (env over file over defaults).
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("focus_entity", cfg.FocusEntity)
	v.SetDefault("bound", cfg.Bound)
	v.SetDefault("include_inactive", cfg.IncludeInactive)
	v.SetDefault("max_paths", cfg.MaxPaths)
	v.SetDefault("output", cfg.Output)

	v.SetEnvPrefix("OWNERCALC")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".ownercalc")
		v.AddConfigPath(".")
		homeDir, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(homeDir, ".ownercalc"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// loadEnvFiles loads .env files in order of precedence
func loadEnvFiles() {
	envFiles := []string{
		".env.local", // Local overrides (highest precedence)
		".env",       // Main environment file
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}
