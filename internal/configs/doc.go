// Package configs manages passvault's settings and configuration file.
//
// # Settings
//
// Settings resolves where passvault keeps its files:
//
//   - Config directory: os.UserConfigDir()/passvault (config.toml)
//   - Data directory: $XDG_DATA_HOME/passvault or ~/.local/share/passvault
//     (secret.key, passwords.sqlite3, passvault.lock)
//
// Setting PASSVAULT_HOME puts everything in that single directory, which is
// convenient for portable vaults and for tests.
//
// PassvaultSettings is initialized at startup from DefaultSettings.
//
// # Configuration
//
// config.toml is stored in TOML format:
//
//	[vault]
//	key_file = ""    # optional override, relative to the data directory
//	database = ""    # optional override, relative to the data directory
//
//	[generator]
//	length = 16
//	include_special = true
//	include_digits = true
//	include_uppercase = true
//	include_lowercase = true
//
// The generator section remembers the last settings used by
// `passvault generate`. A missing file behaves like the defaults.
package configs
