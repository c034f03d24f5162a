package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_WithIgnoreDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.js", "console.log(1)")
	writeFile(t, root, "generated/out.js", "console.log(2)")

	result, err := Scan(root, WithIgnoreDirs("generated"))
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalFiles)
	assert.Equal(t, []string{"src"}, result.RootDirectories)
}

func TestDetectFrameworks_WithContentScanLimit(t *testing.T) {
	root := t.TempDir()
	// Content pattern evidence only, no manifest or config file.
	writeFile(t, root, "service.py", "from flask import Flask\n")

	scan, err := Scan(root)
	require.NoError(t, err)

	// Default limit sees the file.
	result := DetectFrameworks(root, scan)
	assert.Contains(t, result.Scores(), "flask")

	// A tiny limit excludes it from content scanning.
	result = DetectFrameworks(root, scan, WithContentScanLimit(4))
	assert.NotContains(t, result.Scores(), "flask")
}

func TestWithContentScanLimit_IgnoresNonPositive(t *testing.T) {
	o := buildOptions([]Option{WithContentScanLimit(0)})
	assert.Equal(t, int64(maxContentBytes), o.contentLimit)
}
