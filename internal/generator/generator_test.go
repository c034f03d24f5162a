package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/ctxforge/internal/analyzer"
)

func webClassification() *analyzer.Classification {
	return &analyzer.Classification{
		Name:             "shop",
		ProjectType:      "web",
		PrimaryFramework: "react",
		Languages:        []string{"javascript", "css"},
		Complexity:       analyzer.ComplexityMedium,
		HasTests:         true,
	}
}

func TestGenerateRules_WebReact(t *testing.T) {
	rules, err := GenerateRules(webClassification())
	require.NoError(t, err)

	assert.Equal(t, "web", rules.TemplateUsed)
	assert.True(t, strings.HasPrefix(rules.Content, "# shop"))
	assert.Contains(t, rules.Content, "Web Application")
	assert.Contains(t, rules.Content, "javascript, css")
	assert.Contains(t, rules.Content, "## React Conventions")
	assert.Contains(t, rules.Content, "npm install")
	assert.Contains(t, rules.Sections, "Project Description")
	assert.Contains(t, rules.Sections, "Testing")
	assert.False(t, rules.GeneratedAt.IsZero())
}

func TestGenerateRules_UnknownTypeFallsBackToGeneric(t *testing.T) {
	c := &analyzer.Classification{
		Name:             "thing",
		ProjectType:      analyzer.Unknown,
		PrimaryFramework: analyzer.Unknown,
		Complexity:       analyzer.ComplexityLow,
	}

	rules, err := GenerateRules(c)
	require.NoError(t, err)

	assert.Equal(t, "generic", rules.TemplateUsed)
	assert.Contains(t, rules.Content, "No test suite detected")
	assert.NotContains(t, rules.Content, "## Development Setup")
}

func TestGenerateRules_NoTestingSectionWithoutTests(t *testing.T) {
	c := webClassification()
	c.HasTests = false

	rules, err := GenerateRules(c)
	require.NoError(t, err)
	assert.NotContains(t, rules.Sections, "Testing")
}

func TestGenerateRules_APITemplate(t *testing.T) {
	c := &analyzer.Classification{
		Name:             "billing",
		ProjectType:      "api",
		PrimaryFramework: "laravel",
		Languages:        []string{"php"},
		Complexity:       analyzer.ComplexityHigh,
		HasTests:         true,
	}

	rules, err := GenerateRules(c)
	require.NoError(t, err)

	assert.Equal(t, "api", rules.TemplateUsed)
	assert.Contains(t, rules.Content, "php artisan serve")
	assert.Contains(t, rules.Content, "## Laravel Conventions")
	assert.Contains(t, rules.Sections, "Main Endpoints")
}

func TestClassifyFeature(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Add login and user registration with roles", "auth"},
		{"Build a REST endpoint for the orders service", "api"},
		{"Improve performance of the cache to make pages faster", "optimization"},
		{"", "generic"},
		{"Refactor internals", "generic"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, classifyFeature(tc.description), tc.description)
	}
}

func TestAnalyzeDescription(t *testing.T) {
	details := analyzeDescription("The form must validate input. Users can create and update products.")

	assert.Contains(t, details.Entities, "user")
	assert.Contains(t, details.Entities, "product")
	assert.Contains(t, details.Actions, "create")
	assert.Contains(t, details.Actions, "update")
	assert.Contains(t, details.Components, "form")
	require.Len(t, details.Requirements, 1)
	assert.Equal(t, "The form must validate input", details.Requirements[0])
}

func TestEstimateComplexity(t *testing.T) {
	// One entity (0.5), three actions (0.9), no integrations, short text.
	simple := "Add a form to create and update products"
	assert.Equal(t, "very_low", estimateComplexity(simple, analyzeDescription(simple)))

	complex := "Integrate a real-time sync microservice with the payment api. " +
		"Security and authentication are required, with webhook and queue integrations " +
		"across multiple systems."
	assert.Equal(t, "very_high", estimateComplexity(complex, analyzeDescription(complex)))
}

func TestEstimateTime(t *testing.T) {
	assert.Equal(t, "2-4 hours", estimateTime("crud", "very_low"))
	assert.Equal(t, "5-7 days", estimateTime("api", "very_high"))
	assert.Equal(t, "1-2 days", estimateTime("nope", "medium"))
	assert.Equal(t, "1-2 days", estimateTime("crud", "nope"))
}

func TestGenerateFeature(t *testing.T) {
	feature, err := GenerateFeature(webClassification(),
		"Add login and user registration with roles. Sessions must expire.")
	require.NoError(t, err)

	assert.Equal(t, "auth", feature.FeatureType)
	assert.True(t, strings.HasPrefix(feature.Content, "# FEATURE:"))
	assert.Contains(t, feature.Content, "**Type**: Authentication")
	assert.Contains(t, feature.Content, "Sessions must expire")
	assert.Contains(t, feature.Sections, "Implementation Plan")
	assert.NotEmpty(t, feature.EstimatedTime)
}
