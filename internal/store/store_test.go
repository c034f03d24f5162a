package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/ctxforge/internal/analyzer"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPreferences_RoundTrip(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SetPreference("user.github_username", "octocat"))

	value, ok, err := db.GetPreference("user.github_username")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "octocat", value)

	// Overwrite.
	require.NoError(t, db.SetPreference("user.github_username", "hubot"))
	value, _, err = db.GetPreference("user.github_username")
	require.NoError(t, err)
	assert.Equal(t, "hubot", value)
}

func TestPreferences_DefaultsAndUnknownKeys(t *testing.T) {
	db := openTestDB(t)

	value, ok, err := db.GetPreference("programming.coding_style")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pragmatic", value)

	_, ok, err = db.GetPreference("no.such.key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPreferences_DeleteFallsBackToDefault(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SetPreference("programming.coding_style", "strict"))
	require.NoError(t, db.DeletePreference("programming.coding_style"))

	value, ok, err := db.GetPreference("programming.coding_style")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pragmatic", value)
}

func TestPreferences_EmptyKeyRejected(t *testing.T) {
	db := openTestDB(t)
	assert.Error(t, db.SetPreference("  ", "x"))
}

func TestPreferences_AllMergesDefaults(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SetPreference("custom.key", "v"))
	require.NoError(t, db.SetPreference("programming.coding_style", "strict"))

	keys, merged, err := db.AllPreferences()
	require.NoError(t, err)

	assert.Contains(t, keys, "custom.key")
	assert.Equal(t, "strict", merged["programming.coding_style"])
	assert.Equal(t, "session", merged["integrations.backup_frequency"])
	assert.IsIncreasing(t, keys)
}

func TestHistory_RecordAndList(t *testing.T) {
	db := openTestDB(t)

	c := &analyzer.Classification{
		Path:                "/home/user/shop",
		Name:                "shop",
		ProjectType:         "web",
		PrimaryFramework:    "react",
		Languages:           []string{"javascript", "css"},
		Complexity:          analyzer.ComplexityMedium,
		ArchitecturePattern: "modular",
		ReadinessScore:      7,
		FileCount:           240,
	}

	id, err := db.RecordAnalysis(c)
	require.NoError(t, err)
	assert.Positive(t, id)

	records, err := db.ListAnalyses(10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "shop", got.Name)
	assert.Equal(t, "web", got.ProjectType)
	assert.Equal(t, "react", got.Framework)
	assert.Equal(t, []string{"javascript", "css"}, got.Languages)
	assert.Equal(t, 7, got.Readiness)
	assert.False(t, got.AnalyzedAt.IsZero())
}

func TestHistory_LatestForPath(t *testing.T) {
	db := openTestDB(t)

	first := &analyzer.Classification{Path: "/p", Name: "p", ProjectType: "api",
		PrimaryFramework: "express", Complexity: analyzer.ComplexityLow,
		ArchitecturePattern: analyzer.Unknown, ReadinessScore: 5}
	second := &analyzer.Classification{Path: "/p", Name: "p", ProjectType: "api",
		PrimaryFramework: "express", Complexity: analyzer.ComplexityLow,
		ArchitecturePattern: analyzer.Unknown, ReadinessScore: 8}

	_, err := db.RecordAnalysis(first)
	require.NoError(t, err)
	_, err = db.RecordAnalysis(second)
	require.NoError(t, err)

	latest, err := db.LatestAnalysisForPath("/p")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 8, latest.Readiness)

	missing, err := db.LatestAnalysisForPath("/never")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSnippets_FrameworkSpecificSortFirst(t *testing.T) {
	db := openTestDB(t)

	_, err := db.AddSnippet(&Snippet{Topic: "testing", Title: "generic", Content: "use a test pyramid"})
	require.NoError(t, err)
	_, err = db.AddSnippet(&Snippet{Topic: "testing", Framework: "react", Title: "react", Content: "use testing-library"})
	require.NoError(t, err)
	_, err = db.AddSnippet(&Snippet{Topic: "deploy", Framework: "react", Title: "other topic", Content: "x"})
	require.NoError(t, err)

	snippets, err := db.SnippetsFor("testing", "react")
	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, "react", snippets[0].Framework)
	assert.Equal(t, "", snippets[1].Framework)
}
