package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level ctxforge configuration.
type Config struct {
	ScanPaths []string `mapstructure:"scan_paths"`
	Scan      Scan     `mapstructure:"scan"`
	GitHub    GitHub   `mapstructure:"github"`
	Output    Output   `mapstructure:"output"`
}

// Scan tunes project scanning.
type Scan struct {
	// IgnoreDirs are extra directory names excluded on top of the
	// built-in denylist.
	IgnoreDirs []string `mapstructure:"ignore_dirs"`
	// ContentScanLimit is the largest source file, in bytes, that
	// framework content matching will read.
	ContentScanLimit int64 `mapstructure:"content_scan_limit"`
}

// GitHub holds settings for the backup integration.
type GitHub struct {
	Token    string `mapstructure:"token"`
	Username string `mapstructure:"username"`
	Private  bool   `mapstructure:"private"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("scan_paths", DefaultScanPaths)
	v.SetDefault("scan.ignore_dirs", DefaultScan.IgnoreDirs)
	v.SetDefault("scan.content_scan_limit", DefaultScan.ContentScanLimit)
	v.SetDefault("github.private", DefaultGitHub.Private)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	v.SetEnvPrefix("CTXFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	for i, p := range cfg.ScanPaths {
		cfg.ScanPaths[i] = expandPath(p)
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
