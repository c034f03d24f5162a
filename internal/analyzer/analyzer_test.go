package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadinessScore_Truncation(t *testing.T) {
	// 5 + 2 (rules file) - 1 (high complexity) + 1 (framework) - 0.5 = 6.5,
	// which truncates to 6 rather than rounding to 7.
	probe := RulesProbe{HasRulesFile: true, Issues: []string{"CLAUDE.md too short"}}
	assert.Equal(t, 6, readinessScore(probe, ComplexityHigh, "react"))
}

func TestReadinessScore_ClampLow(t *testing.T) {
	probe := RulesProbe{Issues: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}}
	assert.Equal(t, 1, readinessScore(probe, ComplexityHigh, Unknown))
}

func TestReadinessScore_ClampHigh(t *testing.T) {
	probe := RulesProbe{HasRulesFile: true}
	// 5 + 2 + 1 + 1 = 9; the score cannot exceed 10 by construction, so
	// pin the arithmetic at the top of the range instead.
	assert.Equal(t, 9, readinessScore(probe, ComplexityLow, "react"))
}

func TestProbeRules(t *testing.T) {
	root := t.TempDir()
	probe := ProbeRules(root)
	assert.False(t, probe.HasRulesFile)
	assert.Contains(t, probe.Issues, "CLAUDE.md missing")

	writeFile(t, root, RulesFileName, "short")
	probe = ProbeRules(root)
	assert.True(t, probe.HasRulesFile)
	assert.Contains(t, probe.Issues, "CLAUDE.md too short")

	writeFile(t, root, RulesFileName, strings.Repeat("# Rules\n", 50))
	probe = ProbeRules(root)
	assert.True(t, probe.HasRulesFile)
	assert.Empty(t, probe.Issues)
}

func TestAnalyze_NotFound(t *testing.T) {
	_, err := Analyze("/definitely/not/a/real/path")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalyze_EmptyDirectory(t *testing.T) {
	c, err := Analyze(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Unknown, c.ProjectType)
	assert.Equal(t, ComplexityLow, c.Complexity)
	assert.Equal(t, Unknown, c.ArchitecturePattern)
	assert.Equal(t, Unknown, c.PrimaryFramework)
	assert.Empty(t, c.AllFrameworks)
	assert.Empty(t, c.Languages)
	assert.Equal(t, 0, c.FileCount)

	// 5 (base) + 1 (low complexity) - 0.5 (missing rules file) = 5.5 -> 5.
	assert.Equal(t, 5, c.ReadinessScore)
}

func TestAnalyze_ReactWebProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies":{"react":"^18"}}`)
	writeFile(t, root, "src/App.jsx", `import React from 'react';`)

	c, err := Analyze(root)
	require.NoError(t, err)

	assert.Equal(t, "web", c.ProjectType)
	assert.Equal(t, "react", c.PrimaryFramework)
	assert.Contains(t, c.Languages, "javascript")
	assert.Contains(t, c.Languages, "json")
	assert.Equal(t, 2, c.FileCount)
}

func TestAnalyze_LaravelProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "artisan", "#!/usr/bin/env php")
	writeFile(t, root, "composer.json", `{"require":{"laravel/framework":"^10"}}`)
	writeFile(t, root, "app/Http/Kernel.php", "<?php")
	writeFile(t, root, "routes/web.php", "<?php")
	writeFile(t, root, "resources/views/welcome.blade.php", "<html></html>")

	c, err := Analyze(root)
	require.NoError(t, err)

	assert.Equal(t, "laravel", c.PrimaryFramework)
	// app/, routes/, resources/ are not models/views/controllers root
	// directories, so no pattern is recognized.
	assert.Equal(t, Unknown, c.ArchitecturePattern)
	assert.Equal(t, "api", c.ProjectType)
}

func TestAnalyze_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies":{"vue":"^3","vite":"^5"}}`)
	writeFile(t, root, "src/main.ts", `import { createApp } from 'vue';`)
	writeFile(t, root, "components/Button.vue", "<template><button/></template>")
	writeFile(t, root, "README.md", "# demo")

	first, err := Analyze(root)
	require.NoError(t, err)
	second, err := Analyze(root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_RulesFileRaisesReadiness(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies":{"react":"^18"}}`)

	without, err := Analyze(root)
	require.NoError(t, err)

	writeFile(t, root, RulesFileName, strings.Repeat("# Project rules\n", 20))
	with, err := Analyze(root)
	require.NoError(t, err)

	assert.Greater(t, with.ReadinessScore, without.ReadinessScore)
	assert.True(t, with.HasRulesFile)
}
