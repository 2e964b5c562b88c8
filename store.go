package blogbuild

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = sql.ErrNoRows

// Store wraps the SQLite catalog a build exports its posts into. The catalog
// is rewritten from scratch on every build.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures its
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    tags TEXT NOT NULL, -- JSON array
    description TEXT NOT NULL,
    author TEXT NOT NULL,
    content TEXT NOT NULL,
    filename TEXT NOT NULL
);
`)
	return err
}

// ReplaceAll clears the catalog and stores docs in a single transaction.
func (s *Store) ReplaceAll(docs []Document) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM posts`); err != nil {
		return err
	}
	for _, d := range docs {
		tags, err := json.Marshal(nonNil(d.Tags))
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT OR REPLACE INTO posts (slug, title, date, tags, description, author, content, filename) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			d.Slug(), d.Title, d.Date, string(tags), d.Description, d.Author, d.Content, d.Filename); err != nil {
			return err
		}
	}
	return tx.Commit()
}

const postColumns = `title, date, tags, description, author, content, filename`

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (Document, error) {
	var d Document
	var tags string
	if err := row.Scan(&d.Title, &d.Date, &tags, &d.Description, &d.Author, &d.Content, &d.Filename); err != nil {
		return Document{}, err
	}
	if err := json.Unmarshal([]byte(tags), &d.Tags); err != nil {
		return Document{}, err
	}
	return d, nil
}

// ListPosts returns posts ordered by date descending. If tag is non-empty,
// results are filtered to posts carrying that tag, compared case-insensitively.
func (s *Store) ListPosts(tag string) ([]Document, error) {
	var rows *sql.Rows
	var err error
	if tag == "" {
		rows, err = s.db.Query(`SELECT ` + postColumns + ` FROM posts ORDER BY date DESC, slug`)
	} else {
		rows, err = s.db.Query(`SELECT `+postColumns+` FROM posts
WHERE EXISTS (SELECT 1 FROM json_each(posts.tags) WHERE lower(json_each.value) = lower(?))
ORDER BY date DESC, slug`, strings.TrimSpace(tag))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Document
	for rows.Next() {
		d, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, d)
	}
	return posts, rows.Err()
}

// ListTags returns every distinct tag, sorted, as written in the posts.
func (s *Store) ListTags() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT json_each.value FROM posts, json_each(posts.tags) ORDER BY 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// GetPost returns a single post by slug, or ErrNotFound.
func (s *Store) GetPost(slug string) (Document, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = ?`, strings.TrimSpace(slug))
	return scanPost(row)
}
