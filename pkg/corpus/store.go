// CLAUDE:SUMMARY SQLite store of regression phrases (input, expected output) with the last check result per phrase.
package corpus

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a phrase ID is not in the store.
var ErrNotFound = errors.New("corpus: phrase not found")

// phraseSpace namespaces phrase IDs so the same input always gets the same ID.
var phraseSpace = uuid.MustParse("6f1c2b8e-5d0a-4c3e-9b7f-2a41d6e8c905")

// PhraseID returns the stable ID of an input utterance.
func PhraseID(input string) string {
	return uuid.NewSHA1(phraseSpace, []byte(input)).String()
}

// Phrase is a row of the phrases table.
type Phrase struct {
	ID         string  `json:"id"`
	Input      string  `json:"input"`
	Expected   string  `json:"expected"`
	Note       string  `json:"note,omitempty"`
	LastCheck  *int64  `json:"last_check,omitempty"`
	LastOutput *string `json:"last_output,omitempty"`
	LastPass   *bool   `json:"last_pass,omitempty"`
	UpdatedAt  int64   `json:"updated_at"`
}

// Store manages the phrases table.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the phrases
// table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open corpus db: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS phrases (
		id           TEXT PRIMARY KEY,
		input        TEXT NOT NULL,
		expected     TEXT NOT NULL,
		note         TEXT NOT NULL DEFAULT '',
		last_check   INTEGER,
		last_output  TEXT,
		last_pass    INTEGER,
		updated_at   INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create phrases table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Seed inserts phrases that are not stored yet. Existing rows keep their
// expectation so edits survive restarts.
func (s *Store) Seed(phrases []Phrase) error {
	const q = `INSERT OR IGNORE INTO phrases (id, input, expected, note, updated_at)
		VALUES (?, ?, ?, ?, ?)`

	now := time.Now().Unix()
	for _, p := range phrases {
		if _, err := s.db.Exec(q, PhraseID(p.Input), p.Input, p.Expected, p.Note, now); err != nil {
			return fmt.Errorf("seed %q: %w", p.Input, err)
		}
	}
	return nil
}

// Put stores a phrase, replacing the expectation of an existing one and
// clearing its last result.
func (s *Store) Put(input, expected, note string) (string, error) {
	id := PhraseID(input)
	_, err := s.db.Exec(`INSERT INTO phrases (id, input, expected, note, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			expected = excluded.expected,
			note = excluded.note,
			last_check = NULL, last_output = NULL, last_pass = NULL,
			updated_at = excluded.updated_at`,
		id, input, expected, note, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("put %q: %w", input, err)
	}
	return id, nil
}

// Delete removes a phrase by ID.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM phrases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	return nil
}

// RecordCheck persists the result of normalizing a phrase.
func (s *Store) RecordCheck(id, output string, pass bool) error {
	res, err := s.db.Exec(
		`UPDATE phrases SET last_check = ?, last_output = ?, last_pass = ? WHERE id = ?`,
		time.Now().Unix(), output, pass, id,
	)
	if err != nil {
		return fmt.Errorf("record check for %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("record check for %s: %w", id, ErrNotFound)
	}
	return nil
}

const selectPhrases = `SELECT id, input, expected, note,
	last_check, last_output, last_pass, updated_at FROM phrases`

// Get returns one phrase by ID.
func (s *Store) Get(id string) (*Phrase, error) {
	row := s.db.QueryRow(selectPhrases+` WHERE id = ?`, id)
	p, err := scanPhrase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", id, err)
	}
	return p, nil
}

// List returns all phrases ordered by input.
func (s *Store) List() ([]Phrase, error) {
	return s.query(selectPhrases + ` ORDER BY input`)
}

// Failures returns the phrases whose last check did not match.
func (s *Store) Failures() ([]Phrase, error) {
	return s.query(selectPhrases + ` WHERE last_pass = 0 ORDER BY input`)
}

func (s *Store) query(q string) ([]Phrase, error) {
	rows, err := s.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list phrases: %w", err)
	}
	defer rows.Close()

	phrases := []Phrase{}
	for rows.Next() {
		p, err := scanPhrase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan phrase: %w", err)
		}
		phrases = append(phrases, *p)
	}
	return phrases, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPhrase(sc scanner) (*Phrase, error) {
	var (
		p    Phrase
		pass sql.NullBool
	)
	if err := sc.Scan(&p.ID, &p.Input, &p.Expected, &p.Note,
		&p.LastCheck, &p.LastOutput, &pass, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if pass.Valid {
		p.LastPass = &pass.Bool
	}
	return &p, nil
}
