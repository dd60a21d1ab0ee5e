package configs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// HomeEnv overrides both the data and the config directory when set.
const HomeEnv = "PASSVAULT_HOME"

const (
	configFileName   = "config.toml"
	keyFileName      = "secret.key"
	databaseFileName = "passwords.sqlite3"
	lockFileName     = "passvault.lock"
)

type Settings struct {
	ConfigPath   string
	DataPath     string
	KeyFilePath  string
	DatabasePath string
	LockPath     string
}

var PassvaultSettings *Settings

func init() {
	settings, err := DefaultSettings()
	if err != nil {
		log.Fatalf("error resolving passvault directories: %s", err)
	}
	PassvaultSettings = settings
}

// DefaultSettings resolves the standard locations for the config and vault files.
func DefaultSettings() (*Settings, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return SettingsFor(home, home), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("error getting home directory: %w", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("error getting config directory: %w", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return SettingsFor(filepath.Join(configDir, "passvault"), filepath.Join(dataDir, "passvault")), nil
}

// SettingsFor builds settings rooted at the given config and data directories.
func SettingsFor(configPath, dataPath string) *Settings {
	return &Settings{
		ConfigPath:   configPath,
		DataPath:     dataPath,
		KeyFilePath:  filepath.Join(dataPath, keyFileName),
		DatabasePath: filepath.Join(dataPath, databaseFileName),
		LockPath:     filepath.Join(dataPath, lockFileName),
	}
}

// ConfigFile returns the path of config.toml.
func (s *Settings) ConfigFile() string {
	return filepath.Join(s.ConfigPath, configFileName)
}

// WithOverrides returns a copy of s with the key file and database paths from
// cfg applied. Relative paths are resolved against the data directory.
func (s *Settings) WithOverrides(cfg *Config) *Settings {
	out := *s
	if cfg == nil {
		return &out
	}
	if cfg.Vault.KeyFile != "" {
		out.KeyFilePath = s.resolve(cfg.Vault.KeyFile)
	}
	if cfg.Vault.Database != "" {
		out.DatabasePath = s.resolve(cfg.Vault.Database)
		out.LockPath = out.DatabasePath + ".lock"
	}
	return &out
}

func (s *Settings) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.DataPath, path)
}
