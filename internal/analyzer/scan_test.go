package analyzer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with parent directories under root.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScan_NotFound(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScan_FileAsRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "plain.txt", "x")

	_, err := Scan(filepath.Join(root, "plain.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScan_EmptyDirectory(t *testing.T) {
	result, err := Scan(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalFiles)
	assert.Equal(t, 0, result.TotalDirectories)
	assert.Equal(t, 0, result.MaxDepth)
	assert.Empty(t, result.RootDirectories)
}

func TestScan_DenylistExclusion(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", "<html></html>")
	// A big generated file inside node_modules must not appear anywhere.
	writeFile(t, root, "node_modules/big_file.js", strings.Repeat("var x = 1;\n", 10000))

	result, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalFiles)
	assert.Equal(t, 1, result.ExtensionCounts[".html"])
	assert.Zero(t, result.ExtensionCounts[".js"])
	assert.NotContains(t, result.RootDirectories, "node_modules")
	assert.Empty(t, result.SourceFiles)
}

func TestScan_DotEntriesBelowRootExcluded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".env", "SECRET=1")
	writeFile(t, root, "src/.hidden", "x")
	writeFile(t, root, "src/main.py", "print('hi')")
	writeFile(t, root, ".github/workflows/ci.yml", "on: push")

	result, err := Scan(root)
	require.NoError(t, err)

	// Root-level dotfiles count; dot-directories and nested dotfiles do not.
	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 1, result.ExtensionCounts[".py"])
	assert.Zero(t, result.ExtensionCounts[".yml"])
	assert.Equal(t, []string{"src"}, result.RootDirectories)
}

func TestScan_DepthAndDirectoryCounts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b/c/d/deep.go", "package d")
	writeFile(t, root, "a/top.go", "package a")

	result, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, 4, result.MaxDepth)
	assert.Equal(t, 4, result.TotalDirectories)
	assert.Equal(t, []string{"a"}, result.RootDirectories)
	assert.Equal(t, 2, result.AllDirectories["a"]) // b/ and top.go
	assert.Equal(t, 2, result.ExtensionCounts[".go"])
}

func TestScan_SourceFileCollection(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/App.jsx", "export default function App() {}")
	writeFile(t, root, "src/util.py", "x = 1")
	writeFile(t, root, "README.md", "# readme")

	result, err := Scan(root)
	require.NoError(t, err)

	require.Len(t, result.SourceFiles, 2)
	for _, sf := range result.SourceFiles {
		assert.True(t, filepath.IsAbs(sf.Path))
		assert.Greater(t, sf.Size, int64(0))
	}
	assert.Contains(t, result.Files, "README.md")
	assert.Contains(t, result.Files, "src/App.jsx")
}

func TestScan_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "zeta/z.go", "package zeta")
	writeFile(t, root, "alpha/a.go", "package alpha")
	writeFile(t, root, "mid/m.go", "package mid")

	first, err := Scan(root)
	require.NoError(t, err)
	second, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// WalkDir is lexical, so root directory order is stable.
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, first.RootDirectories)
}
