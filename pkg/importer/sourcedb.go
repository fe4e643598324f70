// CLAUDE:SUMMARY SQLite table of import sources: where a word list lives, how to read it, which pack it builds, last availability check.
package importer

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hazyhaar/voicenorm/pkg/lexicon"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

// ErrUnknownSource is returned for source IDs missing from import_sources.
var ErrUnknownSource = errors.New("unknown import source")

// Source represents a row from the import_sources table.
// The yaml tags let sources be registered from a file.
type Source struct {
	ID          string             `yaml:"id" json:"id"`
	PackID      string             `yaml:"pack_id" json:"pack_id"`
	Description string             `yaml:"description" json:"description"`
	URL         string             `yaml:"url" json:"url"`
	License     string             `yaml:"license" json:"license"`
	Language    string             `yaml:"language" json:"language"`
	Format      lexicon.FormatSpec `yaml:"format" json:"format"`
	LastCheck   *int64             `yaml:"-" json:"last_check,omitempty"`
	LastStatus  *int               `yaml:"-" json:"last_status,omitempty"`
	LastError   *string            `yaml:"-" json:"last_error,omitempty"`
	UpdatedAt   int64              `yaml:"-" json:"updated_at"`
}

// LoadSources reads a YAML list of sources.
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources %s: %w", path, err)
	}
	var sources []Source
	if err := yaml.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("parse sources %s: %w", path, err)
	}
	return sources, nil
}

// SourceDB manages the import_sources SQLite table.
type SourceDB struct {
	db *sql.DB
}

// OpenSourceDB opens (or creates) the SQLite database at path and ensures the
// import_sources table exists.
func OpenSourceDB(path string) (*SourceDB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open source db: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS import_sources (
		id           TEXT PRIMARY KEY,
		pack_id      TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		source_url   TEXT NOT NULL,
		license      TEXT NOT NULL DEFAULT '',
		language     TEXT NOT NULL DEFAULT '',
		format       TEXT NOT NULL DEFAULT '',
		last_check   INTEGER,
		last_status  INTEGER,
		last_error   TEXT,
		updated_at   INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create import_sources table: %w", err)
	}

	return &SourceDB{db: db}, nil
}

func (s *SourceDB) Close() error {
	return s.db.Close()
}

// Seed inserts sources that are not registered yet. Existing rows are left
// untouched so manual URL overrides survive restarts.
func (s *SourceDB) Seed(sources []Source) error {
	for _, src := range sources {
		if err := s.insert(`INSERT OR IGNORE`, src); err != nil {
			return err
		}
	}
	return nil
}

// Put registers src, replacing any source with the same ID.
func (s *SourceDB) Put(src Source) error {
	return s.insert(`INSERT OR REPLACE`, src)
}

func (s *SourceDB) insert(verb string, src Source) error {
	if src.ID == "" || src.URL == "" {
		return fmt.Errorf("source needs an id and a url")
	}
	if src.PackID == "" {
		src.PackID = src.ID
	}
	format, err := yaml.Marshal(src.Format)
	if err != nil {
		return fmt.Errorf("encode format for %s: %w", src.ID, err)
	}
	q := verb + ` INTO import_sources
		(id, pack_id, description, source_url, license, language, format, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.db.Exec(q, src.ID, src.PackID, src.Description, src.URL,
		src.License, src.Language, string(format), time.Now().Unix()); err != nil {
		return fmt.Errorf("store source %s: %w", src.ID, err)
	}
	return nil
}

// Get returns the source registered under id.
func (s *SourceDB) Get(id string) (*Source, error) {
	row := s.db.QueryRow(selectSources+` WHERE id = ?`, id)
	src, err := scanSource(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get source %s: %w", id, err)
	}
	return src, nil
}

// SetURL updates the source URL and records the change timestamp.
func (s *SourceDB) SetURL(id, url string) error {
	res, err := s.db.Exec(
		`UPDATE import_sources SET source_url = ?, updated_at = ? WHERE id = ?`,
		url, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("set url for %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("set url: %w: %q", ErrUnknownSource, id)
	}
	return nil
}

// UpdateCheck persists the result of an availability check.
func (s *SourceDB) UpdateCheck(id string, status int, checkErr string) error {
	var errPtr *string
	if checkErr != "" {
		errPtr = &checkErr
	}
	_, err := s.db.Exec(
		`UPDATE import_sources SET last_check = ?, last_status = ?, last_error = ? WHERE id = ?`,
		time.Now().Unix(), status, errPtr, id,
	)
	if err != nil {
		return fmt.Errorf("update check for %s: %w", id, err)
	}
	return nil
}

const selectSources = `SELECT id, pack_id, description, source_url, license, language, format,
	last_check, last_status, last_error, updated_at FROM import_sources`

// ListSources returns all sources ordered by id.
func (s *SourceDB) ListSources() ([]Source, error) {
	rows, err := s.db.Query(selectSources + ` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	defer rows.Close()

	var sources []Source
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		sources = append(sources, *src)
	}
	return sources, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSource(sc rowScanner) (*Source, error) {
	var (
		src    Source
		format string
	)
	if err := sc.Scan(&src.ID, &src.PackID, &src.Description, &src.URL, &src.License,
		&src.Language, &format, &src.LastCheck, &src.LastStatus, &src.LastError, &src.UpdatedAt); err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal([]byte(format), &src.Format); err != nil {
		return nil, fmt.Errorf("decode format for %s: %w", src.ID, err)
	}
	return &src, nil
}
