package store

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultPreferences seeds the well-known preference keys. Keys use
// dotted-path form; a Get on an unset key falls back to this table.
var DefaultPreferences = map[string]string{
	"user.name":                     "",
	"user.email":                    "",
	"user.github_username":          "",
	"programming.coding_style":      "pragmatic",
	"programming.structure":         "modular",
	"interface.show_welcome":        "true",
	"integrations.auto_backup":      "true",
	"integrations.backup_frequency": "session",
}

// SetPreference stores a preference value under a dotted-path key, creating
// or replacing it.
func (db *DB) SetPreference(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("preference key cannot be empty")
	}
	_, err := db.conn.Exec(
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetPreference returns the stored value for a dotted-path key, falling
// back to DefaultPreferences. The second return reports whether the key is
// known at all (stored or defaulted).
func (db *DB) GetPreference(key string) (string, bool, error) {
	row := db.conn.QueryRow("SELECT value FROM preferences WHERE key = ?", key)

	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		def, ok := DefaultPreferences[key]
		return def, ok, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// DeletePreference removes a stored preference; subsequent reads fall back
// to the default, if any.
func (db *DB) DeletePreference(key string) error {
	_, err := db.conn.Exec("DELETE FROM preferences WHERE key = ?", key)
	return err
}

// AllPreferences returns the effective preference map: defaults overlaid
// with stored values, keys sorted for deterministic listing.
func (db *DB) AllPreferences() ([]string, map[string]string, error) {
	merged := make(map[string]string, len(DefaultPreferences))
	for k, v := range DefaultPreferences {
		merged[k] = v
	}

	rows, err := db.conn.Query("SELECT key, value FROM preferences")
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, nil, err
		}
		merged[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys, merged, nil
}
