package analyzer

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/phuslu/log"
)

// typeSpec declares the evidence indicators for one candidate project
// type. Indicators ending in "/" match root directory names by substring
// containment, indicators containing a glob character match file base
// names anywhere in the tree, and the rest are exact root file names.
type typeSpec struct {
	name       string
	indicators []string
}

// projectTypes is the ordered candidate list. Declaration order breaks
// score ties: the earlier candidate wins.
var projectTypes = []typeSpec{
	{"web", []string{"index.html", "package.json", "webpack.config.js", "vite.config.js"}},
	{"api", []string{"api/", "routes/", "controllers/", "app.py", "server.js"}},
	{"mobile", []string{"android/", "ios/", "react-native/", "flutter/"}},
	{"desktop", []string{"electron/", "main.py", "setup.py", "Cargo.toml"}},
	{"library", []string{"lib/", "src/lib/", "setup.py", "pyproject.toml", "Cargo.toml"}},
	{"documentation", []string{"docs/", "README.md", "mkdocs.yml", "docusaurus.config.js"}},
	{"data", []string{"notebooks/", "*.ipynb", "data/", "datasets/"}},
	{"game", []string{"unity/", "godot/", "assets/textures/", "src/game/"}},
	{"blockchain", []string{"contracts/", "truffle-config.js", "hardhat.config.js"}},
	{"ai", []string{"models/", "training/", "ml/", "ai/", "*.ipynb", "requirements.txt"}},
}

// Indicator weights for project-type scoring.
const (
	weightTypeDir  = 2
	weightTypeGlob = 1
	weightTypeFile = 3
	weightTypeDeps = 3
	weightTypeAPI  = 2
)

// complexityIndicators are root directory names (trailing "/") or root
// files whose presence raises the complexity score.
var (
	highComplexityIndicators   = []string{"microservices/", "kubernetes/", "docker-compose.yml", "terraform/"}
	mediumComplexityIndicators = []string{"tests/", "docs/", "config/", "scripts/"}
)

// Dependency files mapped to their package manager names, in check order.
var dependencyFiles = []struct {
	file    string
	manager string
}{
	{"package.json", "npm/yarn"},
	{"composer.json", "composer"},
	{"requirements.txt", "pip"},
	{"Pipfile", "pipenv"},
	{"poetry.lock", "poetry"},
	{"Cargo.toml", "cargo"},
	{"go.mod", "go modules"},
	{"Gemfile", "bundler"},
	{"pom.xml", "maven"},
	{"build.gradle", "gradle"},
}

// ClassifyStructure derives the project type, complexity bucket,
// architecture pattern, and dependency summary from one scan.
func ClassifyStructure(root string, scan *ScanResult) *Structure {
	s := &Structure{
		ProjectType:  detectProjectType(root, scan),
		Complexity:   classifyComplexity(root, scan),
		Architecture: detectArchitecture(scan),
		Dependencies: analyzeDependencies(root),
		HasTests:     hasTests(root, scan),
		HasDocs:      hasDocs(root),
		HasConfig:    hasConfig(root),
	}

	log.Debug().
		Str("type", s.ProjectType).
		Str("complexity", string(s.Complexity)).
		Str("architecture", s.Architecture.Pattern).
		Msg("structure classification complete")

	return s
}

// detectProjectType scores every candidate type against its indicator set
// and returns the arg-max, Unknown when nothing scores above zero.
func detectProjectType(root string, scan *ScanResult) string {
	best := Unknown
	bestScore := 0

	pkgDeps := packageJSONDeps(root)

	for _, candidate := range projectTypes {
		score := 0
		for _, indicator := range candidate.indicators {
			switch {
			case strings.HasSuffix(indicator, "/"):
				name := strings.TrimSuffix(indicator, "/")
				if anyRootDirContains(scan, name) {
					score += weightTypeDir
				}
			case strings.Contains(indicator, "*"):
				if anyFileMatchesGlob(scan, indicator) {
					score += weightTypeGlob
				}
			default:
				if fileExists(filepath.Join(root, indicator)) {
					score += weightTypeFile
				}
			}
		}

		// package.json dependency boosts.
		switch candidate.name {
		case "web":
			if anyDep(pkgDeps, "react", "vue", "angular", "svelte") {
				score += weightTypeDeps
			}
		case "api":
			if anyDep(pkgDeps, "express", "koa", "fastify") {
				score += weightTypeDeps
			}
			if anyRootDirContains(scan, "api") {
				score += weightTypeAPI
			}
		case "desktop":
			if anyDep(pkgDeps, "electron", "tauri") {
				score += weightTypeDeps
			}
		}

		// Strict greater-than keeps the first candidate on ties.
		if score > bestScore {
			bestScore = score
			best = candidate.name
		}
	}

	return best
}

// classifyComplexity buckets the project into low/medium/high from file
// count, directory depth, and structural indicators.
func classifyComplexity(root string, scan *ScanResult) Complexity {
	score := 0

	switch {
	case scan.TotalFiles > 1000:
		score += 3
	case scan.TotalFiles > 100:
		score += 2
	case scan.TotalFiles > 20:
		score += 1
	}

	switch {
	case scan.MaxDepth > 8:
		score += 3
	case scan.MaxDepth > 5:
		score += 2
	case scan.MaxDepth > 3:
		score += 1
	}

	for _, indicator := range highComplexityIndicators {
		if structuralIndicatorPresent(root, scan, indicator) {
			score += 3
		}
	}
	for _, indicator := range mediumComplexityIndicators {
		if structuralIndicatorPresent(root, scan, indicator) {
			score += 2
		}
	}

	switch {
	case score >= 8:
		return ComplexityHigh
	case score >= 4:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

// detectArchitecture applies the pattern rules in fixed precedence order;
// the first matching rule wins and only one pattern is ever returned.
func detectArchitecture(scan *ScanResult) Architecture {
	rootDirs := make([]string, len(scan.RootDirectories))
	for i, d := range scan.RootDirectories {
		rootDirs[i] = strings.ToLower(d)
	}
	joined := strings.Join(rootDirs, " ")

	switch {
	case containsAll(rootDirs, "models", "views", "controllers"):
		return Architecture{
			Pattern:       "mvc",
			Layers:        []string{"models", "views", "controllers"},
			HasSeparation: true,
		}
	case strings.Contains(joined, "controller") && strings.Contains(joined, "service") && strings.Contains(joined, "repository"):
		return Architecture{
			Pattern:       "layered",
			Layers:        []string{"controller", "service", "repository"},
			HasSeparation: true,
		}
	case containsAny(rootDirs, "modules", "components", "features"):
		return Architecture{Pattern: "modular", HasModules: true}
	case containsAny(rootDirs, "services", "microservices"):
		return Architecture{Pattern: "microservices", HasModules: true}
	default:
		return Architecture{Pattern: Unknown}
	}
}

// analyzeDependencies reports which package managers are evident at the
// project root.
func analyzeDependencies(root string) Dependencies {
	var deps Dependencies
	for _, df := range dependencyFiles {
		if !fileExists(filepath.Join(root, df.file)) {
			continue
		}
		deps.PackageManagers = append(deps.PackageManagers, df.manager)
		deps.DependencyFiles = append(deps.DependencyFiles, df.file)
		if df.file == "package.json" {
			deps.TotalDependencies += len(packageJSONDeps(root))
		}
	}
	return deps
}

func hasTests(root string, scan *ScanResult) bool {
	for _, dir := range []string{"test", "tests", "__tests__", "spec", "specs"} {
		if dirExists(filepath.Join(root, dir)) {
			return true
		}
	}
	for _, glob := range []string{"test_*.py", "*_test.py", "*_test.go", "*.test.js", "*.spec.js"} {
		if anyFileMatchesGlob(scan, glob) {
			return true
		}
	}
	return false
}

func hasDocs(root string) bool {
	for _, name := range []string{"docs", "documentation", "README.md", "readme.md", "CHANGELOG.md", "API.md", "mkdocs.yml"} {
		if fileExists(filepath.Join(root, name)) {
			return true
		}
	}
	return false
}

func hasConfig(root string) bool {
	for _, name := range []string{"config", "configuration", ".env", ".env.example", "settings.py", "config.js", "app.config.js"} {
		if fileExists(filepath.Join(root, name)) {
			return true
		}
	}
	return false
}

// anyRootDirContains reports whether any depth-1 directory name contains
// the given name as a case-insensitive substring.
func anyRootDirContains(scan *ScanResult, name string) bool {
	name = strings.ToLower(name)
	for _, d := range scan.RootDirectories {
		if strings.Contains(strings.ToLower(d), name) {
			return true
		}
	}
	return false
}

// anyFileMatchesGlob matches the glob against the base name of every
// scanned file.
func anyFileMatchesGlob(scan *ScanResult, glob string) bool {
	for _, f := range scan.Files {
		if ok, err := path.Match(glob, path.Base(f)); err == nil && ok {
			return true
		}
	}
	return false
}

// structuralIndicatorPresent checks a complexity indicator: trailing "/"
// means root-directory-name containment, otherwise root file existence.
func structuralIndicatorPresent(root string, scan *ScanResult, indicator string) bool {
	if strings.HasSuffix(indicator, "/") {
		return anyRootDirContains(scan, strings.TrimSuffix(indicator, "/"))
	}
	return fileExists(filepath.Join(root, indicator))
}

func anyDep(deps map[string]bool, names ...string) bool {
	for _, n := range names {
		if deps[n] {
			return true
		}
	}
	return false
}

func containsAll(haystack []string, needles ...string) bool {
	set := make(map[string]bool, len(haystack))
	for _, h := range haystack {
		set[h] = true
	}
	for _, n := range needles {
		if !set[n] {
			return false
		}
	}
	return true
}

func containsAny(haystack []string, needles ...string) bool {
	for _, h := range haystack {
		for _, n := range needles {
			if h == n {
				return true
			}
		}
	}
	return false
}

func dirExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
