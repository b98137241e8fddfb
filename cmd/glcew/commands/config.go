package commands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the default configuration file name.
const ConfigFile = "glcew.toml"

// ProjectConfig represents the glcew.toml configuration file
type ProjectConfig struct {
	Library  LibraryConfig  `toml:"library"`
	Resolve  ResolveConfig  `toml:"resolve"`
	Generate GenerateConfig `toml:"generate"`
}

type LibraryConfig struct {
	// Library names or paths tried in order. Empty means the platform defaults.
	Paths []string `toml:"paths"`
}

type ResolveConfig struct {
	// Panic on the first symbol missing from the library
	Strict bool `toml:"strict"`
	// Log library loading to stderr
	Debug bool `toml:"debug"`
}

type GenerateConfig struct {
	// Symbol table read by the generator
	Symbols string `toml:"symbols"`
	// Go file written by the generator
	Output string `toml:"output"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Generate: GenerateConfig{
			Symbols: "symbols.toml",
			Output:  "gl_generated.go",
		},
	}
}

// LoadConfig loads the configuration from path.
// If the file doesn't exist, returns default config
func LoadConfig(path string) (ProjectConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for empty values
	if config.Generate.Symbols == "" {
		config.Generate.Symbols = "symbols.toml"
	}
	if config.Generate.Output == "" {
		config.Generate.Output = "gl_generated.go"
	}

	return config, nil
}

// SaveConfig writes the configuration to path
func SaveConfig(path string, config ProjectConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
