package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	m "promptgen.dev/pkg/promptgen/internal/model"
)

// SQLiteSettingsStore implements SettingsStore on a SQLite database.
// Template bodies are stored as YAML documents.
type SQLiteSettingsStore struct {
	db *sql.DB
}

// NewSQLiteSettingsStore opens (or creates) the database at dbPath and
// creates its tables.
func NewSQLiteSettingsStore(dbPath string) (*SQLiteSettingsStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteSettingsStore{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteSettingsStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS lists (
		key TEXT NOT NULL,
		position INTEGER NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (key, position)
	);

	CREATE TABLE IF NOT EXISTS texts (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS templates (
		name TEXT PRIMARY KEY,
		body TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)

	return err
}

// GetList returns the list stored under key in position order.
func (s *SQLiteSettingsStore) GetList(ctx context.Context, key string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT value FROM lists WHERE key = ? ORDER BY position`, key)
	if err != nil {
		return nil, fmt.Errorf("query list %s: %w", key, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan list %s: %w", key, err)
		}

		values = append(values, v)
	}

	return values, rows.Err()
}

// SetList replaces the list stored under key.
func (s *SQLiteSettingsStore) SetList(ctx context.Context, key string, values []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clear list %s: %w", key, err)
	}

	for i, v := range values {
		if _, err := tx.ExecContext(ctx, `INSERT INTO lists (key, position, value) VALUES (?, ?, ?)`, key, i, v); err != nil {
			return fmt.Errorf("insert list %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// GetText returns the text stored under key and whether it was set.
func (s *SQLiteSettingsStore) GetText(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := s.db.QueryRowContext(ctx, `SELECT value FROM texts WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("query text %s: %w", key, err)
	}

	return value, true, nil
}

// SetText stores value under key.
func (s *SQLiteSettingsStore) SetText(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO texts (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("store text %s: %w", key, err)
	}

	return nil
}

// GetTemplate returns the named template.
func (s *SQLiteSettingsStore) GetTemplate(ctx context.Context, name string) (m.Template, bool, error) {
	var body string

	err := s.db.QueryRowContext(ctx, `SELECT body FROM templates WHERE name = ?`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return m.Template{}, false, nil
	}

	if err != nil {
		return m.Template{}, false, fmt.Errorf("query template %s: %w", name, err)
	}

	var t m.Template
	if err := yaml.Unmarshal([]byte(body), &t); err != nil {
		return m.Template{}, false, fmt.Errorf("decode template %s: %w", name, err)
	}

	t.Name = name

	return t, true, nil
}

// SetTemplate stores t, replacing any template with the same name.
func (s *SQLiteSettingsStore) SetTemplate(ctx context.Context, t m.Template) error {
	body, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode template %s: %w", t.Name, err)
	}

	_, err = s.db.ExecContext(ctx, `
	INSERT INTO templates (name, body) VALUES (?, ?)
	ON CONFLICT(name) DO UPDATE SET body = excluded.body
	`, t.Name, string(body))
	if err != nil {
		return fmt.Errorf("store template %s: %w", t.Name, err)
	}

	return nil
}

// DeleteTemplate removes the named template. Missing names are ignored.
func (s *SQLiteSettingsStore) DeleteTemplate(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM templates WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete template %s: %w", name, err)
	}

	return nil
}

// ListTemplateNames returns template names in sorted order.
func (s *SQLiteSettingsStore) ListTemplateNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}

		names = append(names, name)
	}

	return names, rows.Err()
}

// Close closes the database.
func (s *SQLiteSettingsStore) Close() error {
	return s.db.Close()
}
