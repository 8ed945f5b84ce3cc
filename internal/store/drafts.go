package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"newsstudio/internal/core"
)

const selectDraft = `
	SELECT id, news_id, hook, slides, caption, hashtags, cta, source_line,
	       disclaimer, tone, language, status, editor_notes, variant_of,
	       created_at, updated_at
	FROM drafts`

// SaveDraft inserts or replaces a draft by ID.
func (s *Store) SaveDraft(d core.Draft) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	query := `
	INSERT OR REPLACE INTO drafts
	(id, news_id, hook, slides, caption, hashtags, cta, source_line,
	 disclaimer, tone, language, status, editor_notes, variant_of, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		d.ID, d.NewsID, d.Hook, marshalJSON(d.Slides), d.Caption,
		marshalJSON(d.Hashtags), d.CTA, d.SourceLine, d.Disclaimer,
		d.Tone, d.Language, d.Status, d.EditorNotes, d.VariantOf,
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// UpsertMainDraft replaces the main (non-variant) draft for a news item,
// keeping its ID and creation time so regeneration updates in place.
func (s *Store) UpsertMainDraft(d core.Draft) (string, error) {
	existing, err := s.mainDraftForNews(d.NewsID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return "", err
	}
	if existing != nil {
		d.ID = existing.ID
		d.CreatedAt = existing.CreatedAt
		d.Status = existing.Status
	}
	d.VariantOf = ""
	if err := s.SaveDraft(d); err != nil {
		return "", err
	}
	return d.ID, nil
}

func (s *Store) mainDraftForNews(newsID string) (*core.Draft, error) {
	row := s.db.QueryRow(selectDraft+" WHERE news_id = ? AND (variant_of IS NULL OR variant_of = '')", newsID)
	return s.scanDraft(row)
}

// GetDraft retrieves a draft by ID.
func (s *Store) GetDraft(id string) (*core.Draft, error) {
	return s.scanDraft(s.db.QueryRow(selectDraft+" WHERE id = ?", id))
}

// ListDrafts returns drafts newest first, optionally filtered by status.
func (s *Store) ListDrafts(status string, limit, offset int) ([]core.Draft, error) {
	query := selectDraft
	var args []any
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []core.Draft
	for rows.Next() {
		d, err := s.scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, *d)
	}
	return drafts, rows.Err()
}

// TransitionDraft moves a draft to a new status. The lifecycle only moves
// forward; anything else is rejected.
func (s *Store) TransitionDraft(id, to string) error {
	d, err := s.GetDraft(id)
	if err != nil {
		return err
	}
	if !core.CanTransition(d.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.Status, to)
	}
	_, err = s.db.Exec("UPDATE drafts SET status = ?, updated_at = ? WHERE id = ?", to, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update draft status: %w", err)
	}
	return nil
}

func (s *Store) scanDraft(row rowScanner) (*core.Draft, error) {
	var d core.Draft
	var slides, hashtags string
	err := row.Scan(
		&d.ID, &d.NewsID, &d.Hook, &slides, &d.Caption, &hashtags, &d.CTA,
		&d.SourceLine, &d.Disclaimer, &d.Tone, &d.Language, &d.Status,
		&d.EditorNotes, &d.VariantOf, &d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan draft: %w", err)
	}
	if slides != "" {
		if err := json.Unmarshal([]byte(slides), &d.Slides); err != nil {
			return nil, fmt.Errorf("failed to decode slides: %w", err)
		}
	}
	if hashtags != "" {
		if err := json.Unmarshal([]byte(hashtags), &d.Hashtags); err != nil {
			return nil, fmt.Errorf("failed to decode hashtags: %w", err)
		}
	}
	return &d, nil
}
