// Package store is the persistence boundary: a SQLite database holding
// ingested news items and generated drafts. Ingestion idempotence lives
// here (news URLs are unique) and so does the forward-only draft lifecycle.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"newsstudio/internal/core"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// ErrInvalidTransition is returned when a draft status change would move
// backwards or to an unknown status.
var ErrInvalidTransition = errors.New("store: invalid status transition")

// Store wraps the SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "newsstudio.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return store, nil
}

// initialize creates the necessary tables
func (s *Store) initialize() error {
	newsTable := `
	CREATE TABLE IF NOT EXISTS news (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		source TEXT,
		url TEXT UNIQUE NOT NULL,
		published_at DATETIME,
		category TEXT,
		raw_summary TEXT,
		studio_summary TEXT,
		tags TEXT,
		domain TEXT,
		relevance_score INTEGER DEFAULT 0,
		provincia TEXT,
		poblacion TEXT,
		used_in_social INTEGER DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`

	draftsTable := `
	CREATE TABLE IF NOT EXISTS drafts (
		id TEXT PRIMARY KEY,
		news_id TEXT NOT NULL,
		hook TEXT,
		slides TEXT,
		caption TEXT,
		hashtags TEXT,
		cta TEXT,
		source_line TEXT,
		disclaimer TEXT,
		tone TEXT,
		language TEXT,
		status TEXT NOT NULL,
		editor_notes TEXT,
		variant_of TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		FOREIGN KEY (news_id) REFERENCES news (id)
	);`

	for _, table := range []string{newsTable, draftsTable} {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertNews stores a news item unless its URL is already present.
// It reports whether a row was inserted, making re-ingestion idempotent.
func (s *Store) InsertNews(item core.NewsItem) (bool, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	query := `
	INSERT OR IGNORE INTO news
	(id, title, source, url, published_at, category, raw_summary, studio_summary,
	 tags, domain, relevance_score, provincia, poblacion, used_in_social, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := s.db.Exec(query,
		item.ID, item.Title, item.Source, item.URL, item.PublishedAt,
		item.Category, item.RawSummary, item.StudioSummary, item.Tags,
		item.Domain, item.RelevanceScore, item.Provincia, item.Poblacion,
		boolToInt(item.UsedInSocial), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert news: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}
	return n > 0, nil
}

// GetNews retrieves a news item by ID.
func (s *Store) GetNews(id string) (*core.NewsItem, error) {
	return s.scanNews(s.db.QueryRow(selectNews+" WHERE id = ?", id))
}

// GetNewsByURL retrieves a news item by its URL, the ingestion dedupe key.
func (s *Store) GetNewsByURL(url string) (*core.NewsItem, error) {
	return s.scanNews(s.db.QueryRow(selectNews+" WHERE url = ?", url))
}

const selectNews = `
	SELECT id, title, source, url, published_at, category, raw_summary, studio_summary,
	       tags, domain, relevance_score, provincia, poblacion, used_in_social, created_at, updated_at
	FROM news`

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanNews(row rowScanner) (*core.NewsItem, error) {
	var item core.NewsItem
	var used int
	err := row.Scan(
		&item.ID, &item.Title, &item.Source, &item.URL, &item.PublishedAt,
		&item.Category, &item.RawSummary, &item.StudioSummary, &item.Tags,
		&item.Domain, &item.RelevanceScore, &item.Provincia, &item.Poblacion,
		&used, &item.CreatedAt, &item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan news: %w", err)
	}
	item.UsedInSocial = used != 0
	return &item, nil
}

// ListNewsFilter narrows ListNews results. Zero values mean no filter.
type ListNewsFilter struct {
	Domain   string
	Category string
	Limit    int
	Offset   int
}

// ListNews returns news items newest first.
func (s *Store) ListNews(f ListNewsFilter) ([]core.NewsItem, error) {
	var conds []string
	var args []any
	if f.Domain != "" {
		conds = append(conds, "domain = ?")
		args = append(args, f.Domain)
	}
	if f.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, f.Category)
	}
	query := selectNews
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY published_at DESC"
	if f.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer rows.Close()

	var items []core.NewsItem
	for rows.Next() {
		item, err := s.scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// UpdateNewsStudioSummary stores the three-line editorial summary computed
// at draft generation time.
func (s *Store) UpdateNewsStudioSummary(id, summary string) error {
	res, err := s.db.Exec("UPDATE news SET studio_summary = ?, updated_at = ? WHERE id = ?", summary, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update studio summary: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkNewsUsed flags a news item as already used in a published draft.
func (s *Store) MarkNewsUsed(id string) error {
	res, err := s.db.Exec("UPDATE news SET used_in_social = 1, updated_at = ? WHERE id = ?", time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to mark news used: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountNews returns the number of stored news items per domain.
func (s *Store) CountNews() (map[string]int, error) {
	rows, err := s.db.Query("SELECT domain, COUNT(*) FROM news GROUP BY domain")
	if err != nil {
		return nil, fmt.Errorf("failed to count news: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var domain string
		var n int
		if err := rows.Scan(&domain, &n); err != nil {
			return nil, err
		}
		counts[domain] = n
	}
	return counts, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// marshalJSON is a helper for columns storing JSON-encoded slices.
func marshalJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}
