package generator

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/blackwell-systems/ctxforge/internal/analyzer"
)

// FeatureFile is a rendered INITIAL.md.
type FeatureFile struct {
	Content       string    `json:"content"`
	FeatureType   string    `json:"feature_type"`
	Complexity    string    `json:"complexity"`
	EstimatedTime string    `json:"estimated_time"`
	Sections      []string  `json:"sections"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// featureKeywords classify a feature description by keyword hits. Order
// breaks score ties.
var featureKeywords = []struct {
	name  string
	words []string
}{
	{"crud", []string{"create", "read", "update", "delete", "crud", "manage", "table", "form"}},
	{"api", []string{"api", "endpoint", "rest", "graphql", "service", "microservice", "integration"}},
	{"ui", []string{"ui", "interface", "component", "page", "design", "layout", "frontend", "view"}},
	{"auth", []string{"auth", "login", "register", "user", "permission", "role", "security", "session"}},
	{"integration", []string{"integrate", "connect", "sync", "import", "export", "webhook", "third-party"}},
	{"optimization", []string{"optimize", "performance", "speed", "cache", "faster", "improve"}},
	{"security", []string{"security", "secure", "protect", "encrypt", "vulnerability", "ssl", "https"}},
	{"testing", []string{"test", "testing", "unit", "integration", "coverage", "quality"}},
	{"documentation", []string{"doc", "document", "readme", "guide", "tutorial", "help"}},
}

var featureTypeTitles = map[string]string{
	"crud":          "CRUD Operations",
	"api":           "API / Service",
	"ui":            "UI / Frontend",
	"auth":          "Authentication",
	"integration":   "Integration",
	"optimization":  "Optimization",
	"security":      "Security",
	"testing":       "Testing",
	"documentation": "Documentation",
	"generic":       "Feature",
}

var knownEntities = []string{
	"user", "admin", "product", "order", "customer", "payment",
	"article", "post", "category", "tag", "comment", "file",
	"image", "video", "document", "report", "dashboard",
}

var knownActions = []string{
	"create", "add", "insert", "new",
	"read", "view", "show", "display", "list",
	"update", "edit", "modify", "change",
	"delete", "remove", "cancel",
	"search", "filter", "sort",
	"upload", "download", "export", "import",
	"send", "receive", "process", "validate",
}

var knownComponents = []string{
	"form", "table", "modal", "button", "menu", "navbar",
	"sidebar", "footer", "header", "card", "list", "grid",
	"chart", "graph", "calendar", "datepicker", "dropdown",
}

var knownIntegrations = []string{
	"email", "sms", "notification", "payment", "stripe", "paypal",
	"social", "facebook", "google", "twitter", "api", "rest",
	"database", "redis", "cache", "queue", "webhook",
}

var requirementMarkers = []string{
	"should", "must", "required", "need", "necessary",
	"important", "essential", "mandatory",
}

var complexKeywords = []string{
	"integration", "security", "authentication", "authorization",
	"real-time", "sync", "async", "microservice", "api",
	"complex", "advanced", "multiple", "system",
}

// estimatedTimes maps feature type and complexity to a rough effort range.
var estimatedTimes = map[string]map[string]string{
	"crud":          {"very_low": "2-4 hours", "low": "4-8 hours", "medium": "1-2 days", "high": "2-3 days", "very_high": "3-5 days"},
	"api":           {"very_low": "3-6 hours", "low": "6-12 hours", "medium": "1-3 days", "high": "3-5 days", "very_high": "5-7 days"},
	"ui":            {"very_low": "2-4 hours", "low": "4-8 hours", "medium": "1-2 days", "high": "2-4 days", "very_high": "4-6 days"},
	"auth":          {"very_low": "4-8 hours", "low": "8-16 hours", "medium": "2-3 days", "high": "3-5 days", "very_high": "5-8 days"},
	"integration":   {"very_low": "4-8 hours", "low": "8-16 hours", "medium": "2-4 days", "high": "4-7 days", "very_high": "7-10 days"},
	"optimization":  {"very_low": "2-4 hours", "low": "4-8 hours", "medium": "1-2 days", "high": "2-3 days", "very_high": "3-5 days"},
	"security":      {"very_low": "4-8 hours", "low": "8-16 hours", "medium": "2-3 days", "high": "3-5 days", "very_high": "5-8 days"},
	"testing":       {"very_low": "2-4 hours", "low": "4-8 hours", "medium": "1-2 days", "high": "2-3 days", "very_high": "3-5 days"},
	"documentation": {"very_low": "1-2 hours", "low": "2-4 hours", "medium": "4-8 hours", "high": "1-2 days", "very_high": "2-3 days"},
	"generic":       {"very_low": "2-4 hours", "low": "4-8 hours", "medium": "1-2 days", "high": "2-4 days", "very_high": "4-6 days"},
}

type featureDetails struct {
	Entities     []string
	Actions      []string
	Components   []string
	Integrations []string
	Requirements []string
}

type featureContext struct {
	Name          string
	Framework     string
	Description   string
	TypeTitle     string
	Complexity    string
	EstimatedTime string
	Date          string
	featureDetails
}

// GenerateFeature renders an INITIAL.md feature request for the given
// description against the classified project.
func GenerateFeature(c *analyzer.Classification, description string) (*FeatureFile, error) {
	featureType := classifyFeature(description)
	details := analyzeDescription(description)
	complexity := estimateComplexity(description, details)
	estimate := estimateTime(featureType, complexity)

	tmpl, err := template.New("feature.md.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/feature.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse feature template: %w", err)
	}

	ctx := featureContext{
		Name:           c.Name,
		Framework:      c.PrimaryFramework,
		Description:    description,
		TypeTitle:      featureTypeTitles[featureType],
		Complexity:     complexity,
		EstimatedTime:  estimate,
		Date:           time.Now().Format("2006-01-02 15:04:05"),
		featureDetails: details,
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, ctx); err != nil {
		return nil, fmt.Errorf("render feature template: %w", err)
	}

	content := sb.String()
	return &FeatureFile{
		Content:       content,
		FeatureType:   featureType,
		Complexity:    complexity,
		EstimatedTime: estimate,
		Sections:      extractSections(content),
		GeneratedAt:   time.Now(),
	}, nil
}

// classifyFeature picks the feature type with the most keyword hits in
// the description, or generic when nothing matches.
func classifyFeature(description string) string {
	lower := strings.ToLower(description)

	best, bestScore := "generic", 0
	for _, entry := range featureKeywords {
		score := 0
		for _, word := range entry.words {
			if strings.Contains(lower, word) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = entry.name, score
		}
	}
	return best
}

func analyzeDescription(description string) featureDetails {
	lower := strings.ToLower(description)

	contained := func(words []string) []string {
		var found []string
		for _, w := range words {
			if strings.Contains(lower, w) {
				found = append(found, w)
			}
		}
		return found
	}

	var requirements []string
	for _, sentence := range strings.Split(description, ".") {
		s := strings.TrimSpace(sentence)
		if s == "" {
			continue
		}
		sl := strings.ToLower(s)
		for _, marker := range requirementMarkers {
			if strings.Contains(sl, marker) {
				requirements = append(requirements, s)
				break
			}
		}
	}

	return featureDetails{
		Entities:     contained(knownEntities),
		Actions:      contained(knownActions),
		Components:   contained(knownComponents),
		Integrations: contained(knownIntegrations),
		Requirements: requirements,
	}
}

// estimateComplexity scores description length, extracted detail counts,
// and complexity keywords into a five-tier bucket.
func estimateComplexity(description string, details featureDetails) string {
	score := 0.0

	switch {
	case len(description) > 500:
		score += 2
	case len(description) > 200:
		score += 1
	}

	score += float64(len(details.Entities)) * 0.5
	score += float64(len(details.Actions)) * 0.3
	score += float64(len(details.Integrations)) * 1.5

	lower := strings.ToLower(description)
	for _, keyword := range complexKeywords {
		if strings.Contains(lower, keyword) {
			score++
		}
	}

	switch {
	case score >= 8:
		return "very_high"
	case score >= 6:
		return "high"
	case score >= 4:
		return "medium"
	case score >= 2:
		return "low"
	default:
		return "very_low"
	}
}

func estimateTime(featureType, complexity string) string {
	times, ok := estimatedTimes[featureType]
	if !ok {
		times = estimatedTimes["generic"]
	}
	if t, ok := times[complexity]; ok {
		return t
	}
	return "1-2 days"
}
