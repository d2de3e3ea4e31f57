/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateEntryInput defines data for creating a journal entry.
type CreateEntryInput struct {
	ChildID   *uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	Body      string
	EntryDate time.Time
	Favorite  bool
}

// EntryFilter narrows entry listings.
type EntryFilter struct {
	ChildID       *string
	Year          *int
	FavoritesOnly bool
	Limit         int
}

// CreateEntry creates a journal entry and returns its ID.
func CreateEntry(ctx context.Context, input CreateEntryInput) (string, error) {
	if pool == nil {
		return "", ErrDatabaseConnectionNotInitialized
	}
	if input.Title == "" {
		return "", fmt.Errorf("entry title is required")
	}

	var id string
	query := `
		INSERT INTO entries (child_id, author_id, title, body, entry_date, favorite)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := pool.QueryRow(ctx, query, input.ChildID, input.AuthorID, input.Title, input.Body, input.EntryDate, input.Favorite).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create entry: %w", err)
	}

	return id, nil
}

// GetEntry returns a single entry by ID, or nil if none exists.
func GetEntry(ctx context.Context, id string) (*Entry, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var entry Entry
	query := `
		SELECT id, child_id, author_id, title, body, entry_date, favorite, created_at, updated_at
		FROM entries
		WHERE id = $1
	`
	err := pool.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.ChildID, &entry.AuthorID, &entry.Title, &entry.Body,
		&entry.EntryDate, &entry.Favorite, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return &entry, nil
}

// ListEntries returns entries matching the filter, newest first.
func ListEntries(ctx context.Context, filter EntryFilter) ([]EntrySummary, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT e.id, e.child_id, e.author_id, e.title, e.body, e.entry_date, e.favorite,
			e.created_at, e.updated_at,
			u.display_name AS author_name,
			c.name AS child_name,
			(SELECT COUNT(*) FROM entry_media em WHERE em.entry_id = e.id) AS media_count
		FROM entries e
		JOIN users u ON u.id = e.author_id
		LEFT JOIN children c ON c.id = e.child_id
		WHERE 1=1
	`

	var args []interface{}
	argN := 1

	if filter.ChildID != nil {
		query += fmt.Sprintf(" AND e.child_id = $%d", argN)
		args = append(args, *filter.ChildID)
		argN++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM e.entry_date) = $%d", argN)
		args = append(args, *filter.Year)
		argN++
	}
	if filter.FavoritesOnly {
		query += " AND e.favorite"
	}

	query += " ORDER BY e.entry_date DESC, e.created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argN)
		args = append(args, filter.Limit)
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []EntrySummary
	for rows.Next() {
		var e EntrySummary
		if err := rows.Scan(
			&e.ID, &e.ChildID, &e.AuthorID, &e.Title, &e.Body, &e.EntryDate, &e.Favorite,
			&e.CreatedAt, &e.UpdatedAt,
			&e.AuthorName, &e.ChildName, &e.MediaCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// UpdateEntry updates an entry's title, body and date.
func UpdateEntry(ctx context.Context, id, title, body string, entryDate time.Time) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}
	if title == "" {
		return fmt.Errorf("entry title is required")
	}

	query := `
		UPDATE entries
		SET title = $1, body = $2, entry_date = $3, updated_at = NOW()
		WHERE id = $4
	`
	command, err := pool.Exec(ctx, query, title, body, entryDate, id)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	if command.RowsAffected() == 0 {
		return fmt.Errorf("entry not found")
	}

	return nil
}

// ToggleEntryFavorite flips an entry's favorite flag and returns the
// new value.
func ToggleEntryFavorite(ctx context.Context, id string) (bool, error) {
	if pool == nil {
		return false, ErrDatabaseConnectionNotInitialized
	}

	var favorite bool
	query := `
		UPDATE entries
		SET favorite = NOT favorite, updated_at = NOW()
		WHERE id = $1
		RETURNING favorite
	`
	if err := pool.QueryRow(ctx, query, id).Scan(&favorite); err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	return favorite, nil
}

// DeleteEntry removes an entry (cascades to media).
func DeleteEntry(ctx context.Context, id string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	command, err := pool.Exec(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if command.RowsAffected() == 0 {
		return fmt.Errorf("entry not found")
	}

	return nil
}

// ========== Entry Media ==========

// AddEntryMedia attaches a photo or video reference to an entry.
func AddEntryMedia(ctx context.Context, entryID string, kind MediaKind, location string, caption *string, position int) (string, error) {
	if pool == nil {
		return "", ErrDatabaseConnectionNotInitialized
	}
	if kind != MediaPhoto && kind != MediaVideo {
		return "", fmt.Errorf("unknown media kind %q", kind)
	}
	if location == "" {
		return "", fmt.Errorf("media location is required")
	}

	var id string
	query := `
		INSERT INTO entry_media (entry_id, kind, location, caption, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := pool.QueryRow(ctx, query, entryID, kind, location, caption, position).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to add entry media: %w", err)
	}

	return id, nil
}

// ListEntryMedia returns an entry's media in display order.
func ListEntryMedia(ctx context.Context, entryID string) ([]EntryMedia, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, entry_id, kind, location, caption, position, created_at
		FROM entry_media
		WHERE entry_id = $1
		ORDER BY position ASC, created_at ASC
	`
	rows, err := pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entry media: %w", err)
	}
	defer rows.Close()

	var media []EntryMedia
	for rows.Next() {
		var m EntryMedia
		if err := rows.Scan(&m.ID, &m.EntryID, &m.Kind, &m.Location, &m.Caption, &m.Position, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry media: %w", err)
		}
		media = append(media, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry media: %w", err)
	}

	return media, nil
}

// DeleteEntryMedia removes a media reference by ID.
func DeleteEntryMedia(ctx context.Context, id string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	command, err := pool.Exec(ctx, `DELETE FROM entry_media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry media: %w", err)
	}
	if command.RowsAffected() == 0 {
		return fmt.Errorf("entry media not found")
	}

	return nil
}

// ========== Entry Drafts ==========

// SaveEntryDraft upserts the autosaved draft for (user, child). A nil
// child holds the family-wide draft.
func SaveEntryDraft(ctx context.Context, userID uuid.UUID, childID *uuid.UUID, title, body string, entryDate *time.Time) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	query := `
		INSERT INTO entry_drafts (user_id, child_id, title, body, entry_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, COALESCE(child_id, '00000000-0000-0000-0000-000000000000'::uuid))
		DO UPDATE SET
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			entry_date = EXCLUDED.entry_date,
			updated_at = NOW()
	`
	if _, err := pool.Exec(ctx, query, userID, childID, title, body, entryDate); err != nil {
		return fmt.Errorf("failed to save entry draft: %w", err)
	}

	return nil
}

// GetEntryDraft returns the autosaved draft for (user, child), or nil
// if none exists.
func GetEntryDraft(ctx context.Context, userID uuid.UUID, childID *uuid.UUID) (*EntryDraft, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var draft EntryDraft
	query := `
		SELECT id, user_id, child_id, title, body, entry_date, updated_at
		FROM entry_drafts
		WHERE user_id = $1
		AND COALESCE(child_id, '00000000-0000-0000-0000-000000000000'::uuid)
			= COALESCE($2, '00000000-0000-0000-0000-000000000000'::uuid)
	`
	err := pool.QueryRow(ctx, query, userID, childID).Scan(
		&draft.ID, &draft.UserID, &draft.ChildID, &draft.Title, &draft.Body, &draft.EntryDate, &draft.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entry draft: %w", err)
	}

	return &draft, nil
}

// ClearEntryDraft removes the autosaved draft for (user, child).
func ClearEntryDraft(ctx context.Context, userID uuid.UUID, childID *uuid.UUID) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	query := `
		DELETE FROM entry_drafts
		WHERE user_id = $1
		AND COALESCE(child_id, '00000000-0000-0000-0000-000000000000'::uuid)
			= COALESCE($2, '00000000-0000-0000-0000-000000000000'::uuid)
	`
	if _, err := pool.Exec(ctx, query, userID, childID); err != nil {
		return fmt.Errorf("failed to clear entry draft: %w", err)
	}

	return nil
}

// PublishEntryDraft converts a draft into an entry in one transaction
// and clears the draft. Returns the new entry ID.
func PublishEntryDraft(ctx context.Context, userID uuid.UUID, childID *uuid.UUID) (string, error) {
	if pool == nil {
		return "", ErrDatabaseConnectionNotInitialized
	}

	draft, err := GetEntryDraft(ctx, userID, childID)
	if err != nil {
		return "", err
	}
	if draft == nil {
		return "", fmt.Errorf("no draft to publish")
	}
	if draft.Title == "" {
		return "", fmt.Errorf("draft title is required")
	}

	entryDate := time.Now().UTC()
	if draft.EntryDate != nil {
		entryDate = *draft.EntryDate
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var entryID string
	err = tx.QueryRow(ctx, `
		INSERT INTO entries (child_id, author_id, title, body, entry_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, childID, userID, draft.Title, draft.Body, entryDate).Scan(&entryID)
	if err != nil {
		return "", fmt.Errorf("failed to publish draft: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM entry_drafts WHERE id = $1`, draft.ID); err != nil {
		return "", fmt.Errorf("failed to clear published draft: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit draft publish: %w", err)
	}

	return entryID, nil
}
