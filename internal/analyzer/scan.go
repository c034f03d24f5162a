package analyzer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/phuslu/log"
)

// ErrNotFound is returned when the analysis root does not exist.
var ErrNotFound = errors.New("project path does not exist")

// ErrPermission is returned when the analysis root cannot be read.
// Unreadable files below the root are skipped, never fatal.
var ErrPermission = errors.New("project path is not readable")

// ignoredDirs are directory names pruned from traversal entirely:
// dependency caches, VCS internals, build outputs, virtual envs.
var ignoredDirs = map[string]bool{
	"node_modules":  true,
	".git":          true,
	"__pycache__":   true,
	".pytest_cache": true,
	"venv":          true,
	"env":           true,
	"vendor":        true,
	"dist":          true,
	"build":         true,
	".next":         true,
	".nuxt":         true,
	".cache":        true,
	"coverage":      true,
	".tox":          true,
	".mypy_cache":   true,
}

// ignoredFiles are OS metadata files excluded from counts.
var ignoredFiles = map[string]bool{
	".DS_Store": true,
	"Thumbs.db": true,
}

// contentScanExts are the extensions the framework detector inspects for
// content patterns. Files matching these are recorded during the scan so
// detection never walks the tree a second time.
var contentScanExts = map[string]bool{
	".js":     true,
	".jsx":    true,
	".ts":     true,
	".tsx":    true,
	".py":     true,
	".php":    true,
	".vue":    true,
	".svelte": true,
}

// maxScanDepth caps traversal so symlink cycles cannot run away.
const maxScanDepth = 64

// Scan walks the tree under root exactly once and returns its aggregate
// counts. Denylisted directories and dot-entries below the root are pruned
// from descent; their contents appear in no count. Per-entry read errors
// are skipped so one unreadable file never aborts the scan.
func Scan(root string, opts ...Option) (*ScanResult, error) {
	o := buildOptions(opts)

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		if os.IsPermission(err) {
			return nil, ErrPermission
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrNotFound
	}
	if _, err := os.ReadDir(root); err != nil {
		if os.IsPermission(err) {
			return nil, ErrPermission
		}
		return nil, err
	}

	result := &ScanResult{
		ExtensionCounts: make(map[string]int),
		AllDirectories:  make(map[string]int),
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry mid-scan: contribute nothing, keep going.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		depth := strings.Count(rel, "/") + 1

		if d.IsDir() {
			if ignoredDirs[d.Name()] || o.ignoreDirs[d.Name()] || strings.HasPrefix(d.Name(), ".") || depth > maxScanDepth {
				return filepath.SkipDir
			}
			result.TotalDirectories++
			if depth > result.MaxDepth {
				result.MaxDepth = depth
			}
			if depth == 1 {
				result.RootDirectories = append(result.RootDirectories, rel)
			}
			if entries, readErr := os.ReadDir(path); readErr == nil {
				result.AllDirectories[rel] = len(entries)
			} else {
				result.AllDirectories[rel] = 0
			}
			return nil
		}

		if ignoredFiles[d.Name()] {
			return nil
		}
		// Dotfiles below the root are excluded; root-level dotfiles
		// (.env, .gitignore) still count.
		if depth > 1 && strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		fi, statErr := d.Info()
		if statErr != nil {
			return nil
		}

		result.TotalFiles++
		result.TotalSizeBytes += fi.Size()
		result.Files = append(result.Files, rel)

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != "" {
			result.ExtensionCounts[ext]++
		}
		if contentScanExts[ext] {
			result.SourceFiles = append(result.SourceFiles, SourceFile{Path: path, Size: fi.Size()})
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	log.Debug().
		Str("root", root).
		Int("files", result.TotalFiles).
		Int("dirs", result.TotalDirectories).
		Int("max_depth", result.MaxDepth).
		Msg("scan complete")

	return result, nil
}
