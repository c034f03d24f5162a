package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

// patternKind distinguishes how a catalog pattern is evaluated.
type patternKind int

const (
	// patternDir checks a directory's existence at the project root.
	patternDir patternKind = iota
	// patternPath checks a file's existence at the project root.
	patternPath
	// patternRegex searches source file contents, case-insensitively.
	patternRegex
)

// pattern is one content/structure signal for a framework.
type pattern struct {
	kind patternKind
	raw  string
	re   *regexp.Regexp // compiled for patternRegex, nil otherwise
}

// frameworkSpec declares the evidence criteria for one framework. The
// catalog is pure data; the scoring algorithm never special-cases entries.
type frameworkSpec struct {
	name        string
	category    string
	modern      bool
	markerFiles []string
	deps        []string
	patterns    []string
	configFiles []string
}

// regexMetaChars marks a raw pattern as a content regex rather than a
// literal path. Patterns ending in "/" are directory checks.
const regexMetaChars = "*?[]()"

// frameworkCatalog is the ordered framework table. Declaration order is the
// tie-break order for primary selection, so the slice order is part of the
// contract.
var frameworkCatalog = []frameworkSpec{
	// Frontend.
	{
		name: "react", category: "frontend", modern: true,
		markerFiles: []string{"package.json"},
		deps:        []string{"react", "react-dom"},
		patterns:    []string{`import.*from.*react`, "jsx", "tsx"},
		configFiles: []string{"webpack.config.js", "vite.config.js", "craco.config.js"},
	},
	{
		name: "vue", category: "frontend", modern: true,
		markerFiles: []string{"package.json"},
		deps:        []string{"vue", "@vue/cli"},
		patterns:    []string{`<template(>|\s)`, `<script setup`},
		configFiles: []string{"vue.config.js", "vite.config.js"},
	},
	{
		name: "angular", category: "frontend", modern: true,
		markerFiles: []string{"package.json", "angular.json"},
		deps:        []string{"@angular/core", "@angular/cli"},
		patterns:    []string{`@Component\(`, `@Injectable\(`, `@NgModule\(`},
		configFiles: []string{"angular.json", "tsconfig.json"},
	},
	{
		name: "svelte", category: "frontend", modern: true,
		markerFiles: []string{"package.json"},
		deps:        []string{"svelte"},
		patterns:    []string{`from ['"]svelte`},
		configFiles: []string{"svelte.config.js", "vite.config.js"},
	},
	{
		name: "next", category: "frontend", modern: true,
		markerFiles: []string{"package.json"},
		deps:        []string{"next"},
		patterns:    []string{"pages/", "app/", `getServerSideProps\(`},
		configFiles: []string{"next.config.js"},
	},
	{
		name: "nuxt", category: "frontend", modern: true,
		markerFiles: []string{"package.json"},
		deps:        []string{"nuxt"},
		patterns:    []string{"pages/", "layouts/", "plugins/"},
		configFiles: []string{"nuxt.config.js"},
	},

	// Backend.
	{
		name: "express", category: "backend",
		markerFiles: []string{"package.json"},
		deps:        []string{"express"},
		patterns:    []string{`app\.use\(`, `app\.get\(`, `app\.post\(`, `require\(.*express`},
		configFiles: []string{"server.js", "app.js", "index.js"},
	},
	{
		name: "fastify", category: "backend",
		markerFiles: []string{"package.json"},
		deps:        []string{"fastify"},
		patterns:    []string{`fastify\.register\(`, `fastify\.get\(`, `fastify\.post\(`},
		configFiles: []string{"server.js", "app.js"},
	},
	{
		name: "koa", category: "backend",
		markerFiles: []string{"package.json"},
		deps:        []string{"koa"},
		patterns:    []string{`ctx\.body\s*=`, `require\(.*koa`},
		configFiles: []string{"app.js", "server.js"},
	},
	{
		name: "nestjs", category: "backend", modern: true,
		markerFiles: []string{"package.json"},
		deps:        []string{"@nestjs/core", "@nestjs/common"},
		patterns:    []string{`@Controller\(`, `@Injectable\(`, `@Module\(`},
		configFiles: []string{"nest-cli.json", "main.ts"},
	},
	{
		name: "laravel", category: "backend",
		markerFiles: []string{"composer.json", "artisan"},
		deps:        []string{"laravel/framework"},
		patterns:    []string{`namespace App(\\|;)`, `use Illuminate`},
		configFiles: []string{"config/app.php", "routes/web.php", ".env"},
	},
	{
		name: "symfony", category: "backend",
		markerFiles: []string{"composer.json"},
		deps:        []string{"symfony/framework-bundle"},
		patterns:    []string{`use Symfony`},
		configFiles: []string{"config/services.yaml", "bin/console"},
	},
	{
		name: "codeigniter", category: "backend",
		markerFiles: []string{"composer.json"},
		deps:        []string{"codeigniter4/framework"},
		patterns:    []string{`extends\s+(BaseController|CI_Controller)`},
		configFiles: []string{"app/Config/", "system/"},
	},
	{
		name: "django", category: "backend",
		markerFiles: []string{"requirements.txt", "manage.py"},
		deps:        []string{"Django"},
		patterns:    []string{`from django`, `import django`, `INSTALLED_APPS\s*=`},
		configFiles: []string{"settings.py", "urls.py", "wsgi.py"},
	},
	{
		name: "flask", category: "backend",
		markerFiles: []string{"requirements.txt"},
		deps:        []string{"Flask"},
		patterns:    []string{`from flask`, `app\s*=\s*Flask\(`, `@app\.route\(`},
		configFiles: []string{"app.py", "main.py", "run.py"},
	},
	{
		name: "fastapi", category: "backend", modern: true,
		markerFiles: []string{"requirements.txt"},
		deps:        []string{"fastapi"},
		patterns:    []string{`from fastapi`, `app\s*=\s*FastAPI\(`, `@app\.get\(`},
		configFiles: []string{"main.py", "app.py"},
	},
	{
		name: "tornado", category: "backend",
		markerFiles: []string{"requirements.txt"},
		deps:        []string{"tornado"},
		patterns:    []string{`import tornado`, `tornado\.web`},
		configFiles: []string{"app.py", "main.py"},
	},

	// Mobile.
	{
		name: "react-native", category: "mobile",
		markerFiles: []string{"package.json"},
		deps:        []string{"react-native"},
		patterns:    []string{`import.*react-native`, `AppRegistry\.`},
		configFiles: []string{"metro.config.js", "index.js"},
	},
	{
		name: "flutter", category: "mobile",
		markerFiles: []string{"pubspec.yaml"},
		deps:        []string{"flutter"},
		patterns:    []string{`StatelessWidget`, `StatefulWidget`},
		configFiles: []string{"pubspec.yaml", "analysis_options.yaml"},
	},

	// Desktop.
	{
		name: "electron", category: "desktop",
		markerFiles: []string{"package.json"},
		deps:        []string{"electron"},
		patterns:    []string{`require\(.*electron`, `BrowserWindow\(`},
		configFiles: []string{"main.js", "preload.js"},
	},
	{
		name: "tauri", category: "desktop", modern: true,
		markerFiles: []string{"Cargo.toml", "tauri.conf.json"},
		deps:        []string{"tauri"},
		patterns:    []string{`#\[tauri::command\]`, `tauri::`},
		configFiles: []string{"tauri.conf.json"},
	},

	// CSS.
	{
		name: "tailwind", category: "css", modern: true,
		markerFiles: []string{"package.json"},
		deps:        []string{"tailwindcss"},
		patterns:    []string{`@tailwind`, `tailwind\.config`},
		configFiles: []string{"tailwind.config.js"},
	},
	{
		name: "bootstrap", category: "css",
		markerFiles: []string{"package.json"},
		deps:        []string{"bootstrap"},
		patterns:    []string{`import.*bootstrap`},
		configFiles: nil,
	},

	// Build tools.
	{
		name: "webpack", category: "build_tools",
		markerFiles: []string{"package.json"},
		deps:        []string{"webpack"},
		patterns:    []string{`module\.exports\s*=\s*\{[^}]*entry`},
		configFiles: []string{"webpack.config.js"},
	},
	{
		name: "vite", category: "build_tools", modern: true,
		markerFiles: []string{"package.json"},
		deps:        []string{"vite"},
		patterns:    []string{`import\.meta\.env`, `defineConfig\(`},
		configFiles: []string{"vite.config.js", "vite.config.ts"},
	},
	{
		name: "rollup", category: "build_tools",
		markerFiles: []string{"package.json"},
		deps:        []string{"rollup"},
		patterns:    []string{`rollup\.config`},
		configFiles: []string{"rollup.config.js"},
	},
}

// compiledPatterns holds the per-framework resolved patterns, indexed in
// catalog order. Built once at init; invalid regexes are dropped there and
// reported by ValidateCatalog so tests catch catalog defects.
var compiledPatterns [][]pattern

func init() {
	compiledPatterns = make([][]pattern, len(frameworkCatalog))
	for i, spec := range frameworkCatalog {
		for _, raw := range spec.patterns {
			p, err := compilePattern(raw)
			if err != nil {
				continue
			}
			compiledPatterns[i] = append(compiledPatterns[i], p)
		}
	}
}

// compilePattern resolves a raw catalog pattern into its evaluated form.
func compilePattern(raw string) (pattern, error) {
	if strings.HasSuffix(raw, "/") {
		return pattern{kind: patternDir, raw: strings.TrimSuffix(raw, "/")}, nil
	}
	if !strings.ContainsAny(raw, regexMetaChars) && !strings.Contains(raw, `\`) {
		return pattern{kind: patternPath, raw: raw}, nil
	}
	re, err := regexp.Compile("(?i)" + raw)
	if err != nil {
		return pattern{}, fmt.Errorf("framework pattern %q: %w", raw, err)
	}
	return pattern{kind: patternRegex, raw: raw, re: re}, nil
}

// ValidateCatalog compiles every catalog pattern and returns the first
// error found. A failure here is a defect in the static catalog data, not
// in user input; the test suite asserts it is nil.
func ValidateCatalog() error {
	for _, spec := range frameworkCatalog {
		for _, raw := range spec.patterns {
			if _, err := compilePattern(raw); err != nil {
				return fmt.Errorf("%s: %w", spec.name, err)
			}
		}
	}
	return nil
}

// modernScoreDefault is returned when no frameworks were detected.
const modernScoreDefault = 5
