package store

import (
	"strings"
	"time"

	"github.com/blackwell-systems/ctxforge/internal/analyzer"
)

// RecordAnalysis stores one classification in the history table and
// returns its row ID.
func (db *DB) RecordAnalysis(c *analyzer.Classification) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO analyses
		(path, name, project_type, framework, languages, complexity, architecture,
		 readiness, file_count, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Path, c.Name, c.ProjectType, c.PrimaryFramework,
		strings.Join(c.Languages, ","), string(c.Complexity), c.ArchitecturePattern,
		c.ReadinessScore, c.FileCount, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListAnalyses returns the most recent analyses, newest first, up to limit
// (all rows when limit <= 0).
func (db *DB) ListAnalyses(limit int) ([]AnalysisRecord, error) {
	query := `SELECT id, path, name, project_type, framework, languages, complexity,
		architecture, readiness, file_count, analyzed_at
		FROM analyses ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var r AnalysisRecord
		var languages, analyzedAt string
		if err := rows.Scan(&r.ID, &r.Path, &r.Name, &r.ProjectType, &r.Framework,
			&languages, &r.Complexity, &r.Architecture, &r.Readiness, &r.FileCount,
			&analyzedAt); err != nil {
			return nil, err
		}
		if languages != "" {
			r.Languages = strings.Split(languages, ",")
		}
		r.AnalyzedAt, _ = time.Parse(time.RFC3339, analyzedAt)
		records = append(records, r)
	}
	return records, rows.Err()
}

// LatestAnalysisForPath returns the most recent stored analysis for a
// project path, or nil when the path was never analyzed.
func (db *DB) LatestAnalysisForPath(path string) (*AnalysisRecord, error) {
	records, err := db.listForPath(path, 1)
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return &records[0], nil
}

func (db *DB) listForPath(path string, limit int) ([]AnalysisRecord, error) {
	rows, err := db.conn.Query(
		`SELECT id, path, name, project_type, framework, languages, complexity,
		 architecture, readiness, file_count, analyzed_at
		 FROM analyses WHERE path = ? ORDER BY id DESC LIMIT ?`,
		path, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var r AnalysisRecord
		var languages, analyzedAt string
		if err := rows.Scan(&r.ID, &r.Path, &r.Name, &r.ProjectType, &r.Framework,
			&languages, &r.Complexity, &r.Architecture, &r.Readiness, &r.FileCount,
			&analyzedAt); err != nil {
			return nil, err
		}
		if languages != "" {
			r.Languages = strings.Split(languages, ",")
		}
		r.AnalyzedAt, _ = time.Parse(time.RFC3339, analyzedAt)
		records = append(records, r)
	}
	return records, rows.Err()
}
