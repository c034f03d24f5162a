package analyzer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDependencies_PackageJSON(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{
		"dependencies": {"react": "^18", "react-dom": "^18"},
		"devDependencies": {"vite": "^5"}
	}`)

	deps := extractDependencies(filepath.Join(root, "package.json"))
	assert.True(t, deps["react"])
	assert.True(t, deps["react-dom"])
	assert.True(t, deps["vite"])
	assert.False(t, deps["vue"])
}

func TestExtractDependencies_ComposerJSON(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "composer.json", `{
		"require": {"laravel/framework": "^10", "php": ">=8.1"},
		"require-dev": {"phpunit/phpunit": "^10"}
	}`)

	deps := extractDependencies(filepath.Join(root, "composer.json"))
	assert.True(t, deps["laravel/framework"])
	assert.True(t, deps["phpunit/phpunit"])
}

func TestExtractDependencies_RequirementsTxt(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "requirements.txt", `
# web stack
Django>=4.2
flask==2.3.1
fastapi~=0.100
uvicorn[standard]>=0.23
tornado
`)

	deps := extractDependencies(filepath.Join(root, "requirements.txt"))
	assert.True(t, deps["Django"])
	assert.True(t, deps["flask"])
	assert.True(t, deps["fastapi"])
	assert.True(t, deps["uvicorn"])
	assert.True(t, deps["tornado"])
	assert.False(t, deps["# web stack"])
}

func TestExtractDependencies_CargoToml(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Cargo.toml", `
[package]
name = "demo"

[dependencies]
tauri = "1.5"
serde = { version = "1", features = ["derive"] }

[dev-dependencies]
criterion = "0.5"
`)

	deps := extractDependencies(filepath.Join(root, "Cargo.toml"))
	assert.True(t, deps["tauri"])
	assert.True(t, deps["serde"])
	assert.False(t, deps["criterion"])
}

func TestExtractDependencies_PubspecYaml(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pubspec.yaml", `
name: demo
dependencies:
  flutter:
    sdk: flutter
  http: ^1.1.0
dev_dependencies:
  flutter_test:
    sdk: flutter
`)

	deps := extractDependencies(filepath.Join(root, "pubspec.yaml"))
	assert.True(t, deps["flutter"])
	assert.True(t, deps["http"])
	assert.True(t, deps["flutter_test"])
}

func TestExtractDependencies_MalformedReturnsEmpty(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": [not json`)
	writeFile(t, root, "Cargo.toml", "[dependencies\nbroken")
	writeFile(t, root, "pubspec.yaml", "dependencies: [:")

	for _, name := range []string{"package.json", "Cargo.toml", "pubspec.yaml"} {
		assert.Empty(t, extractDependencies(filepath.Join(root, name)), name)
	}
}

func TestExtractDependencies_MissingFileReturnsEmpty(t *testing.T) {
	assert.Empty(t, extractDependencies(filepath.Join(t.TempDir(), "package.json")))
}
