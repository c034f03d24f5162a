package analyzer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// manifestFiles are the dependency-declaration files inspected for
// framework evidence, in a fixed check order.
var manifestFiles = []string{
	"package.json",
	"composer.json",
	"requirements.txt",
	"Cargo.toml",
	"pubspec.yaml",
}

// extractDependencies returns the dependency names declared in the given
// manifest file. Parse failures of any kind yield an empty set: a broken
// manifest contributes no evidence but never aborts detection.
func extractDependencies(path string) map[string]bool {
	deps := make(map[string]bool)

	data, err := os.ReadFile(path)
	if err != nil {
		return deps
	}

	switch filepath.Base(path) {
	case "package.json":
		var pkg struct {
			Dependencies    map[string]json.RawMessage `json:"dependencies"`
			DevDependencies map[string]json.RawMessage `json:"devDependencies"`
		}
		if err := json.Unmarshal(data, &pkg); err != nil {
			return deps
		}
		for name := range pkg.Dependencies {
			deps[name] = true
		}
		for name := range pkg.DevDependencies {
			deps[name] = true
		}

	case "composer.json":
		var pkg struct {
			Require    map[string]json.RawMessage `json:"require"`
			RequireDev map[string]json.RawMessage `json:"require-dev"`
		}
		if err := json.Unmarshal(data, &pkg); err != nil {
			return deps
		}
		for name := range pkg.Require {
			deps[name] = true
		}
		for name := range pkg.RequireDev {
			deps[name] = true
		}

	case "requirements.txt":
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			// Strip the version specifier: "Django>=4.2" -> "Django".
			if i := strings.IndexAny(line, "=<>!~; ["); i >= 0 {
				line = line[:i]
			}
			if line != "" {
				deps[line] = true
			}
		}

	case "Cargo.toml":
		var cargo struct {
			Dependencies map[string]any `toml:"dependencies"`
		}
		if err := toml.Unmarshal(data, &cargo); err != nil {
			return deps
		}
		for name := range cargo.Dependencies {
			deps[name] = true
		}

	case "pubspec.yaml":
		var pub struct {
			Dependencies    map[string]any `yaml:"dependencies"`
			DevDependencies map[string]any `yaml:"dev_dependencies"`
		}
		if err := yaml.Unmarshal(data, &pub); err != nil {
			return deps
		}
		for name := range pub.Dependencies {
			deps[name] = true
		}
		for name := range pub.DevDependencies {
			deps[name] = true
		}
	}

	return deps
}

// packageJSONDeps returns the combined dependencies and devDependencies of
// the project's package.json, or an empty set when absent or malformed.
func packageJSONDeps(root string) map[string]bool {
	return extractDependencies(filepath.Join(root, "package.json"))
}
