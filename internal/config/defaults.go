// Package config provides configuration loading and defaults for ctxforge.
package config

// DefaultScanPaths are the default directories searched for projects.
var DefaultScanPaths = []string{"~/code"}

// DefaultConfigDir is the default location for ctxforge configuration.
const DefaultConfigDir = "~/.config/ctxforge"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "ctxforge.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultContentScanLimit is the maximum size in bytes of a source file
// that content pattern matching will read.
const DefaultContentScanLimit = 1 << 20

// DefaultScan holds the default scan settings.
var DefaultScan = Scan{
	IgnoreDirs:       nil,
	ContentScanLimit: DefaultContentScanLimit,
}

// DefaultGitHub holds the default GitHub integration settings. The token
// is intentionally empty; it is read from config or CTXFORGE_GITHUB_TOKEN.
var DefaultGitHub = GitHub{
	Private: true,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
