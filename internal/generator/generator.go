// Package generator renders project rules files (CLAUDE.md) and feature
// request files (INITIAL.md) from a project classification.
package generator

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/blackwell-systems/ctxforge/internal/analyzer"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
}

// typeTemplates maps a project type to its rules template. Types without
// an entry fall back to the generic template.
var typeTemplates = map[string]string{
	"web":     "web.md.tmpl",
	"api":     "api.md.tmpl",
	"mobile":  "mobile.md.tmpl",
	"desktop": "desktop.md.tmpl",
	"library": "library.md.tmpl",
	"data":    "data.md.tmpl",
}

// RulesFile is a rendered CLAUDE.md.
type RulesFile struct {
	Content      string    `json:"content"`
	TemplateUsed string    `json:"template_used"`
	Sections     []string  `json:"sections"`
	GeneratedAt  time.Time `json:"generated_at"`
}

type rulesContext struct {
	Name       string
	Type       string
	Framework  string
	Languages  []string
	HasTests   bool
	HasDocs    bool
	Complexity string
	Date       string
	Setup      string
	Testing    string
	Deployment string
}

// GenerateRules renders a CLAUDE.md for the classified project. The
// template is chosen by project type, with framework-specific setup,
// testing, and deployment sections filled in.
func GenerateRules(c *analyzer.Classification) (*RulesFile, error) {
	name, ok := typeTemplates[c.ProjectType]
	if !ok {
		name = "generic.md.tmpl"
	}

	tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}

	ctx := rulesContext{
		Name:       c.Name,
		Type:       c.ProjectType,
		Framework:  c.PrimaryFramework,
		Languages:  c.Languages,
		HasTests:   c.HasTests,
		HasDocs:    c.HasDocs,
		Complexity: string(c.Complexity),
		Date:       time.Now().Format("2006-01-02"),
		Setup:      setupSection(c.PrimaryFramework),
		Testing:    testingSection(c),
		Deployment: deploymentSection(c.PrimaryFramework),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, ctx); err != nil {
		return nil, fmt.Errorf("render template %s: %w", name, err)
	}

	content := sb.String()
	if section, ok := frameworkSections[c.PrimaryFramework]; ok {
		content += "\n" + section
	}

	return &RulesFile{
		Content:      content,
		TemplateUsed: strings.TrimSuffix(name, ".md.tmpl"),
		Sections:     extractSections(content),
		GeneratedAt:  time.Now(),
	}, nil
}

// extractSections lists the level-two markdown headings of a document.
func extractSections(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "## ") {
			sections = append(sections, strings.TrimSpace(strings.TrimPrefix(line, "## ")))
		}
	}
	return sections
}
