package store

import "time"

// AddSnippet stores a best-practice snippet and returns its row ID.
func (db *DB) AddSnippet(s *Snippet) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO snippets (topic, language, framework, title, content, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.Topic, s.Language, s.Framework, s.Title, s.Content, s.Source,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// SnippetsFor returns snippets matching a topic, optionally narrowed to a
// framework. Framework-specific snippets sort before generic ones.
func (db *DB) SnippetsFor(topic, framework string) ([]Snippet, error) {
	rows, err := db.conn.Query(
		`SELECT id, topic, language, framework, title, content, source, created_at
		 FROM snippets
		 WHERE topic = ? AND (framework = ? OR framework = '' OR framework IS NULL)
		 ORDER BY CASE WHEN framework = ? THEN 0 ELSE 1 END, id`,
		topic, framework, framework,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snippets []Snippet
	for rows.Next() {
		var s Snippet
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Topic, &s.Language, &s.Framework,
			&s.Title, &s.Content, &s.Source, &createdAt); err != nil {
			return nil, err
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		snippets = append(snippets, s)
	}
	return snippets, rows.Err()
}
