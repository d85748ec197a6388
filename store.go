package newsblog

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = sql.ErrNoRows

// ErrStoreUnavailable is returned by every Store operation when the
// database could not be opened at startup. The server stays up in that
// case; requests fail individually instead.
var ErrStoreUnavailable = errors.New("newsblog: database unavailable")

// timeLayout has fixed-width fractional seconds so created_at strings
// sort lexicographically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps a SQLite database and provides the persistence operations
// for news posts and image-library metadata.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write access, busy_timeout so writers wait
	// instead of returning SQLITE_BUSY, synchronous=NORMAL is safe with
	// WAL and avoids an fsync per transaction.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    image_url TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS images (
    filename TEXT PRIMARY KEY,
    original_name TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    size INTEGER NOT NULL,
    uploaded_at TEXT NOT NULL
);
`)
	return err
}

// InsertPost stores a new post and returns its assigned ID. A zero Date
// is replaced with the current time; an empty ID gets a fresh UUID.
func (s *Store) InsertPost(p Post) (string, error) {
	if s.db == nil {
		return "", ErrStoreUnavailable
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	_, err := s.db.Exec(`INSERT INTO posts (id, title, image_url, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.ImageURL, p.Content, p.Date.UTC().Format(timeLayout))
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// ListPosts returns all posts ordered by creation date descending.
func (s *Store) ListPosts() ([]Post, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	rows, err := s.db.Query(`SELECT id, title, image_url, content, created_at FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns a single post by ID, or ErrNotFound.
func (s *Store) GetPost(id string) (Post, error) {
	if s.db == nil {
		return Post{}, ErrStoreUnavailable
	}
	row := s.db.QueryRow(`SELECT id, title, image_url, content, created_at FROM posts WHERE id = ?`, id)
	return scanPost(row.Scan)
}

// DeletePost removes a post by ID. Deleting an ID that does not exist is
// not an error.
func (s *Store) DeletePost(id string) error {
	if s.db == nil {
		return ErrStoreUnavailable
	}
	_, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	return err
}

func scanPost(scan func(dest ...any) error) (Post, error) {
	var p Post
	var created string
	if err := scan(&p.ID, &p.Title, &p.ImageURL, &p.Content, &created); err != nil {
		return Post{}, err
	}
	// timeLayout strings are valid RFC3339Nano, so one parse layout covers both.
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Post{}, err
	}
	p.Date = t
	return p, nil
}

// SaveImage upserts metadata for an uploaded image.
func (s *Store) SaveImage(img Image) error {
	if s.db == nil {
		return ErrStoreUnavailable
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO images (filename, original_name, width, height, size, uploaded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		img.Filename, img.OriginalName, img.Width, img.Height, img.Size, img.UploadedAt)
	return err
}

// ListImages returns image metadata, newest upload first.
func (s *Store) ListImages() ([]Image, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	rows, err := s.db.Query(`SELECT filename, original_name, width, height, size, uploaded_at FROM images ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.Filename, &img.OriginalName, &img.Width, &img.Height, &img.Size, &img.UploadedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// DeleteImage removes image metadata by filename.
func (s *Store) DeleteImage(filename string) error {
	if s.db == nil {
		return ErrStoreUnavailable
	}
	_, err := s.db.Exec(`DELETE FROM images WHERE filename = ?`, filename)
	return err
}
