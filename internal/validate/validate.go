// Package validate checks how well a project is set up for AI-assisted
// work: rules file quality, supporting directories, and documentation.
package validate

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Check is one validation check with the points it earned.
type Check struct {
	Name   string  `json:"name"`
	Passed bool    `json:"passed"`
	Points float64 `json:"points"`
	Max    float64 `json:"max"`
	Note   string  `json:"note,omitempty"`
}

// Report is the outcome of validating a project's setup.
type Report struct {
	Score       int      `json:"score"`
	Grade       string   `json:"grade"`
	Checks      []Check  `json:"checks"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// requiredSections are the headings a complete rules file carries.
var requiredSections = []string{
	"Project Description",
	"Working Rules",
	"Best Practices",
	"Workflow",
}

var (
	projectInfoPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)project.*type`),
		regexp.MustCompile(`(?i)framework`),
		regexp.MustCompile(`(?i)languages`),
		regexp.MustCompile(`(?i)description`),
	}
	setupPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)setup|installation`),
		regexp.MustCompile(`(?i)command|run`),
		regexp.MustCompile(`(?i)environment`),
		regexp.MustCompile(`(?i)dependencies`),
	}
	workflowPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)workflow`),
		regexp.MustCompile(`(?i)step|process`),
		regexp.MustCompile(`1\.|2\.|3\.`),
		regexp.MustCompile(`(?i)first|then|finally`),
	}
)

// Setup validates the project at root and returns a scored report.
// Rules file checks contribute up to 7 points, supporting structure up
// to 3, clamped to a 1-10 score.
func Setup(root string) *Report {
	r := &Report{}

	rulesScore := r.checkRulesFile(root)
	if rulesScore > 7 {
		rulesScore = 7
	}
	structScore := r.checkStructure(root)
	if structScore > 3 {
		structScore = 3
	}

	total := rulesScore + structScore
	score := int(total)
	if score > 10 {
		score = 10
	}
	if score < 1 {
		score = 1
	}
	r.Score = score
	r.Grade = grade(total, 10)
	return r
}

func (r *Report) add(name string, points, max float64, note string) float64 {
	r.Checks = append(r.Checks, Check{
		Name:   name,
		Passed: points >= max/2,
		Points: points,
		Max:    max,
		Note:   note,
	})
	return points
}

func (r *Report) checkRulesFile(root string) float64 {
	path := filepath.Join(root, "CLAUDE.md")

	data, err := os.ReadFile(path)
	if err != nil {
		r.add("CLAUDE.md exists", 0, 1, "")
		r.Warnings = append(r.Warnings, "CLAUDE.md not found")
		r.Suggestions = append(r.Suggestions, "Run init to generate a rules file")
		return 0
	}
	content := string(data)
	score := r.add("CLAUDE.md exists", 1, 1, "")

	switch {
	case len(content) > 1000:
		score += r.add("CLAUDE.md length", 1, 1, "")
	case len(content) > 500:
		score += r.add("CLAUDE.md length", 0.5, 1, "could be more detailed")
	default:
		score += r.add("CLAUDE.md length", 0, 1, "too short")
		r.Warnings = append(r.Warnings, "CLAUDE.md is too short")
	}

	lower := strings.ToLower(content)
	sectionPoints := 0.0
	for _, section := range requiredSections {
		if strings.Contains(lower, strings.ToLower(section)) {
			sectionPoints += 0.5
		} else {
			r.Warnings = append(r.Warnings, "CLAUDE.md is missing a "+section+" section")
		}
	}
	if sectionPoints > 2 {
		sectionPoints = 2
	}
	score += r.add("Required sections", sectionPoints, 2, "")

	score += r.add("Project information", patternPoints(content, projectInfoPatterns, 0.25, 1), 1, "")
	score += r.add("Setup instructions", patternPoints(content, setupPatterns, 0.25, 1), 1, "")

	practicePoints := 0.0
	if strings.Contains(lower, "best practices") {
		practicePoints += 0.5
	}
	if strings.Contains(lower, "conventions") {
		practicePoints += 0.5
	}
	score += r.add("Best practices", practicePoints, 1, "")

	score += r.add("Workflow defined", patternPoints(content, workflowPatterns, 0.25, 1), 1, "")

	return score
}

func (r *Report) checkStructure(root string) float64 {
	score := 0.0

	if dirExists(filepath.Join(root, ".claude")) {
		score += r.add(".claude directory", 1, 1, "")
		if dirExists(filepath.Join(root, ".claude", "examples")) {
			score += r.add(".claude/examples", 1, 1, "")
		} else {
			r.add(".claude/examples", 0, 1, "")
			r.Suggestions = append(r.Suggestions, "Add representative examples under .claude/examples/")
		}
	} else {
		r.add(".claude directory", 0, 1, "")
		r.add(".claude/examples", 0, 1, "")
		r.Suggestions = append(r.Suggestions, "Create a .claude/ directory for assistant settings")
	}

	if fileExists(filepath.Join(root, "INITIAL.md")) {
		score += r.add("INITIAL.md", 0.5, 0.5, "")
	} else {
		r.add("INITIAL.md", 0, 0.5, "")
		r.Suggestions = append(r.Suggestions, "Create INITIAL.md to document the current feature")
	}

	if fileExists(filepath.Join(root, "README.md")) || fileExists(filepath.Join(root, "readme.md")) {
		score += r.add("README", 0.5, 0.5, "")
	} else {
		r.add("README", 0, 0.5, "")
		r.Suggestions = append(r.Suggestions, "Create README.md with basic project information")
	}

	return score
}

func patternPoints(content string, patterns []*regexp.Regexp, each, max float64) float64 {
	points := 0.0
	for _, p := range patterns {
		if p.MatchString(content) {
			points += each
		}
	}
	if points > max {
		points = max
	}
	return points
}

func grade(score, max float64) string {
	pct := score / max * 100
	switch {
	case pct >= 90:
		return "A"
	case pct >= 75:
		return "B"
	case pct >= 60:
		return "C"
	case pct >= 45:
		return "D"
	default:
		return "F"
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
