package configs

import (
	"fmt"
	"os"
)

// DefaultPasswordLength is the generator length used until the user picks another.
const DefaultPasswordLength = 16

type Config struct {
	Vault     VaultConfig     `toml:"vault"`
	Generator GeneratorConfig `toml:"generator"`
}

type VaultConfig struct {
	KeyFile  string `toml:"key_file"`
	Database string `toml:"database"`
}

// GeneratorConfig holds the password generator settings remembered between runs.
type GeneratorConfig struct {
	Length           int  `toml:"length"`
	IncludeSpecial   bool `toml:"include_special"`
	IncludeDigits    bool `toml:"include_digits"`
	IncludeUppercase bool `toml:"include_uppercase"`
	IncludeLowercase bool `toml:"include_lowercase"`
}

func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Length:           DefaultPasswordLength,
			IncludeSpecial:   true,
			IncludeDigits:    true,
			IncludeUppercase: true,
			IncludeLowercase: true,
		},
	}
}

// LoadConfig loads config.toml, returning defaults if it does not exist.
func LoadConfig(s *Settings) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(s.ConfigFile()); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(s.ConfigFile(), config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if config.Generator.Length <= 0 {
		config.Generator.Length = DefaultPasswordLength
	}

	return config, nil
}

// SaveConfig writes config.toml.
func SaveConfig(s *Settings, config *Config) error {
	if err := SaveTOML(s.ConfigFile(), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// EnsureConfig loads the config and writes the defaults on first use.
func EnsureConfig(s *Settings) (*Config, error) {
	if _, err := os.Stat(s.ConfigFile()); err == nil {
		return LoadConfig(s)
	}

	config := DefaultConfig()
	if err := SaveConfig(s, config); err != nil {
		return nil, err
	}
	return config, nil
}
