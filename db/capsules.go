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

// SealTimeCapsuleInput defines data for sealing a time capsule letter.
type SealTimeCapsuleInput struct {
	ChildID  string
	AuthorID uuid.UUID
	Title    string
	Body     string
	UnlockOn time.Time
}

// SealTimeCapsule creates a new sealed capsule. The unlock date must be
// strictly after the sealing day.
func SealTimeCapsule(ctx context.Context, input SealTimeCapsuleInput) (string, error) {
	if pool == nil {
		return "", ErrDatabaseConnectionNotInitialized
	}
	if input.Title == "" {
		return "", fmt.Errorf("capsule title is required")
	}
	if input.Body == "" {
		return "", fmt.Errorf("capsule body is required")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !input.UnlockOn.UTC().Truncate(24 * time.Hour).After(today) {
		return "", ErrUnlockDateNotFuture
	}

	var id string
	query := `
		INSERT INTO time_capsules (child_id, author_id, title, body, unlock_on)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := pool.QueryRow(ctx, query, input.ChildID, input.AuthorID, input.Title, input.Body, input.UnlockOn).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to seal time capsule: %w", err)
	}

	return id, nil
}

// UnlockOnBirthday returns the date of the child's Nth birthday, used
// to seal capsules addressed to a future birthday.
func UnlockOnBirthday(dateOfBirth time.Time, birthday int) time.Time {
	return time.Date(
		dateOfBirth.Year()+birthday, dateOfBirth.Month(), dateOfBirth.Day(),
		0, 0, 0, 0, time.UTC,
	)
}

// ListTimeCapsules returns a child's capsules ordered by unlock date.
// Bodies are omitted; use OpenTimeCapsule to read an unlocked capsule.
func ListTimeCapsules(ctx context.Context, childID string) ([]CapsuleSummary, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT tc.id, tc.child_id, tc.author_id, u.display_name AS author_name,
			tc.title, tc.sealed_at, tc.unlock_on, tc.opened_at
		FROM time_capsules tc
		JOIN users u ON u.id = tc.author_id
		WHERE tc.child_id = $1
		ORDER BY tc.unlock_on ASC, tc.sealed_at ASC
	`
	rows, err := pool.Query(ctx, query, childID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time capsules: %w", err)
	}
	defer rows.Close()

	var capsules []CapsuleSummary
	for rows.Next() {
		var c CapsuleSummary
		if err := rows.Scan(
			&c.ID, &c.ChildID, &c.AuthorID, &c.AuthorName,
			&c.Title, &c.SealedAt, &c.UnlockOn, &c.OpenedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time capsule: %w", err)
		}
		capsules = append(capsules, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time capsules: %w", err)
	}

	return capsules, nil
}

// OpenTimeCapsule returns a capsule with its body if it has unlocked,
// recording the first open time. ErrCapsuleLocked is returned while the
// unlock date is still in the future.
func OpenTimeCapsule(ctx context.Context, id string) (*TimeCapsule, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var capsule TimeCapsule
	query := `
		SELECT id, child_id, author_id, title, body, sealed_at, unlock_on, opened_at, created_at
		FROM time_capsules
		WHERE id = $1
	`
	err := pool.QueryRow(ctx, query, id).Scan(
		&capsule.ID, &capsule.ChildID, &capsule.AuthorID, &capsule.Title, &capsule.Body,
		&capsule.SealedAt, &capsule.UnlockOn, &capsule.OpenedAt, &capsule.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get time capsule: %w", err)
	}

	if !capsule.Unlocked(time.Now()) {
		return nil, ErrCapsuleLocked
	}

	// Record the first open only; opening is idempotent afterwards.
	if capsule.OpenedAt == nil {
		var openedAt time.Time
		err := pool.QueryRow(ctx,
			`UPDATE time_capsules SET opened_at = NOW() WHERE id = $1 AND opened_at IS NULL RETURNING opened_at`,
			id,
		).Scan(&openedAt)
		if err == nil {
			capsule.OpenedAt = &openedAt
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to record capsule open: %w", err)
		}
	}

	return &capsule, nil
}

// DeleteTimeCapsule removes a capsule, but only for its author.
func DeleteTimeCapsule(ctx context.Context, id string, authorID uuid.UUID) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	command, err := pool.Exec(ctx, `DELETE FROM time_capsules WHERE id = $1 AND author_id = $2`, id, authorID)
	if err != nil {
		return fmt.Errorf("failed to delete time capsule: %w", err)
	}
	if command.RowsAffected() == 0 {
		return fmt.Errorf("time capsule not found")
	}

	return nil
}
