// Package store provides SQLite-backed persistence for user preferences,
// analysis history, and best-practice snippets.
package store

import "time"

// AnalysisRecord is one stored project classification.
type AnalysisRecord struct {
	ID           int64     `json:"id"`
	Path         string    `json:"path"`
	Name         string    `json:"name"`
	ProjectType  string    `json:"project_type"`
	Framework    string    `json:"framework"`
	Languages    []string  `json:"languages"`
	Complexity   string    `json:"complexity"`
	Architecture string    `json:"architecture"`
	Readiness    int       `json:"readiness"`
	FileCount    int       `json:"file_count"`
	AnalyzedAt   time.Time `json:"analyzed_at"`
}

// Snippet is a stored best-practice snippet, keyed by topic and optionally
// scoped to a language or framework.
type Snippet struct {
	ID        int64     `json:"id"`
	Topic     string    `json:"topic"`
	Language  string    `json:"language,omitempty"`
	Framework string    `json:"framework,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
