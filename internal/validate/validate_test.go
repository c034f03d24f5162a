package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// completeRules is a rules file that satisfies every content check.
var completeRules = `# shop

**Project Type**: Web Application
**Framework**: react
**Languages**: javascript, css

## Project Description

A description of the shop storefront.

## Working Rules

### Code Conventions
- Use descriptive names

### Best Practices
- Handle errors explicitly

### Workflow
1. Understand the requirement
2. First plan, then implement
3. Write tests

## Development Setup

Install dependencies and run the environment:

` + "```bash" + `
npm install
npm run dev
` + "```" + `
` + strings.Repeat("Additional project guidance line.\n", 20)

func TestSetup_EmptyProject(t *testing.T) {
	report := Setup(t.TempDir())

	assert.Equal(t, 1, report.Score)
	assert.Equal(t, "F", report.Grade)
	assert.Contains(t, report.Warnings, "CLAUDE.md not found")
	assert.NotEmpty(t, report.Suggestions)
}

func TestSetup_CompleteProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "CLAUDE.md", completeRules)
	writeFile(t, root, "INITIAL.md", "# FEATURE: checkout")
	writeFile(t, root, "README.md", "# shop")
	writeFile(t, root, ".claude/examples/component.md", "example")

	report := Setup(root)

	assert.Equal(t, 10, report.Score)
	assert.Equal(t, "A", report.Grade)
	assert.Empty(t, report.Warnings)
}

func TestSetup_MinimalRulesFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "CLAUDE.md", "## Project Description\nA thing.")

	report := Setup(root)

	assert.Equal(t, 1, report.Score)
	assert.Contains(t, report.Warnings, "CLAUDE.md is too short")
	assert.Contains(t, report.Warnings, "CLAUDE.md is missing a Workflow section")
}

func TestSetup_ChecksCoverEveryProbe(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "CLAUDE.md", completeRules)

	report := Setup(root)

	require.Len(t, report.Checks, 11)
	for _, check := range report.Checks[:7] {
		assert.True(t, check.Passed, check.Name)
	}
}

func TestGrade(t *testing.T) {
	assert.Equal(t, "A", grade(9, 10))
	assert.Equal(t, "B", grade(7.5, 10))
	assert.Equal(t, "C", grade(6, 10))
	assert.Equal(t, "D", grade(4.5, 10))
	assert.Equal(t, "F", grade(2, 10))
}
