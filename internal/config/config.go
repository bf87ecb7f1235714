// Package config handles the qquotes configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "qquotes"
	// ConfigFile is the config file name.
	ConfigFile = "config.toml"

	// DefaultLogFile and DefaultDataFile are used when the config file is
	// absent or a key is missing.
	DefaultLogFile  = "~/qquotes.log"
	DefaultDataFile = "~/qquotes_data.json"

	// EnvLogFile and EnvDataFile override the config file when set.
	EnvLogFile  = "QQUOTES_PATH_LOG_FILE"
	EnvDataFile = "QQUOTES_PATH_DATA_FILE"
)

// Config holds the paths qquotes works with. Both values may contain a
// leading ~ until ExpandPath is applied.
type Config struct {
	PathLogFile  string `toml:"path_log_file"`
	PathDataFile string `toml:"path_data_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PathLogFile:  DefaultLogFile,
		PathDataFile: DefaultDataFile,
	}
}

// Path returns the config file location. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/qquotes/config.toml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the config file and applies environment overrides.
//
// Config failures never abort the run: a missing file, a missing key or a
// file that fails to parse all fall back to the defaults. The returned
// warning (nil when everything loaded cleanly) lets the caller report the
// fallback once logging is up.
func Load() (Config, error) {
	cfg := Default()
	var warn error

	path := Path()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			var fileCfg Config
			if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
				warn = fmt.Errorf("config file %s ignored: %w", path, err)
			} else {
				// Keys fall back to defaults individually.
				if fileCfg.PathLogFile != "" {
					cfg.PathLogFile = fileCfg.PathLogFile
				}
				if fileCfg.PathDataFile != "" {
					cfg.PathDataFile = fileCfg.PathDataFile
				}
			}
		}
	}

	// Environment wins over the file. A .env in the working directory is
	// picked up if present.
	_ = godotenv.Load()
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.PathLogFile = v
	}
	if v := os.Getenv(EnvDataFile); v != "" {
		cfg.PathDataFile = v
	}

	return cfg, warn
}

// ExpandPath expands a leading ~ to the user's home directory.
// Returns the path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
