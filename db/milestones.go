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

	"github.com/jackc/pgx/v5"
)

// CreateMilestoneInput defines data for recording a milestone.
type CreateMilestoneInput struct {
	ChildID    string
	Title      string
	Category   MilestoneCategory
	AchievedOn time.Time
	Note       *string
}

func validMilestoneCategory(category MilestoneCategory) bool {
	switch category {
	case MilestoneMotor, MilestoneLanguage, MilestoneSocial, MilestoneCognitive, MilestoneOther:
		return true
	}
	return false
}

// CreateMilestone records an achieved milestone and returns its ID.
func CreateMilestone(ctx context.Context, input CreateMilestoneInput) (string, error) {
	if pool == nil {
		return "", ErrDatabaseConnectionNotInitialized
	}
	if input.Title == "" {
		return "", fmt.Errorf("milestone title is required")
	}
	if !validMilestoneCategory(input.Category) {
		return "", fmt.Errorf("unknown milestone category %q", input.Category)
	}

	var id string
	query := `
		INSERT INTO milestones (child_id, title, category, achieved_on, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := pool.QueryRow(ctx, query, input.ChildID, input.Title, input.Category, input.AchievedOn, input.Note).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create milestone: %w", err)
	}

	return id, nil
}

// GetMilestone returns a milestone by ID, or nil if none exists.
func GetMilestone(ctx context.Context, id string) (*Milestone, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var m Milestone
	query := `
		SELECT id, child_id, title, category, achieved_on, note, created_at
		FROM milestones
		WHERE id = $1
	`
	err := pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.ChildID, &m.Title, &m.Category, &m.AchievedOn, &m.Note, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get milestone: %w", err)
	}

	return &m, nil
}

// ListMilestones returns a child's milestones ordered by achieved date.
func ListMilestones(ctx context.Context, childID string) ([]Milestone, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, child_id, title, category, achieved_on, note, created_at
		FROM milestones
		WHERE child_id = $1
		ORDER BY achieved_on ASC, created_at ASC
	`
	rows, err := pool.Query(ctx, query, childID)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	defer rows.Close()

	var milestones []Milestone
	for rows.Next() {
		var m Milestone
		if err := rows.Scan(&m.ID, &m.ChildID, &m.Title, &m.Category, &m.AchievedOn, &m.Note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan milestone: %w", err)
		}
		milestones = append(milestones, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating milestones: %w", err)
	}

	return milestones, nil
}

// UpdateMilestone updates a milestone's achieved date and note.
func UpdateMilestone(ctx context.Context, id string, achievedOn time.Time, note *string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	query := `
		UPDATE milestones
		SET achieved_on = $1, note = $2
		WHERE id = $3
	`
	command, err := pool.Exec(ctx, query, achievedOn, note, id)
	if err != nil {
		return fmt.Errorf("failed to update milestone: %w", err)
	}
	if command.RowsAffected() == 0 {
		return fmt.Errorf("milestone not found")
	}

	return nil
}

// DeleteMilestone removes a milestone by ID.
func DeleteMilestone(ctx context.Context, id string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	command, err := pool.Exec(ctx, `DELETE FROM milestones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete milestone: %w", err)
	}
	if command.RowsAffected() == 0 {
		return fmt.Errorf("milestone not found")
	}

	return nil
}

// ListMilestoneSuggestions returns catalog milestones the child has not
// yet achieved, limited to those typical around the child's age.
func ListMilestoneSuggestions(ctx context.Context, childID string, ageMonths int) ([]MilestoneSuggestion, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	// Offer suggestions whose typical window overlaps the child's age
	// with a six month grace period either side.
	query := `
		SELECT s.id, s.title, s.category, s.typical_from_months, s.typical_to_months, s.sort_order
		FROM milestone_suggestions s
		WHERE s.typical_from_months <= $2 + 6
		AND s.typical_to_months >= $2 - 6
		AND NOT EXISTS (
			SELECT 1 FROM milestones m
			WHERE m.child_id = $1 AND m.title = s.title
		)
		ORDER BY s.sort_order ASC
	`
	rows, err := pool.Query(ctx, query, childID, ageMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestone suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []MilestoneSuggestion
	for rows.Next() {
		var s MilestoneSuggestion
		if err := rows.Scan(&s.ID, &s.Title, &s.Category, &s.TypicalFromMonths, &s.TypicalToMonths, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan milestone suggestion: %w", err)
		}
		suggestions = append(suggestions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating milestone suggestions: %w", err)
	}

	return suggestions, nil
}

// SyncMilestoneCatalog upserts the built-in milestone catalog. Called
// after migrations so the catalog stays the source of truth.
func SyncMilestoneCatalog(ctx context.Context) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	query := `
		INSERT INTO milestone_suggestions (title, category, typical_from_months, typical_to_months, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (title) DO UPDATE SET
			category = EXCLUDED.category,
			typical_from_months = EXCLUDED.typical_from_months,
			typical_to_months = EXCLUDED.typical_to_months,
			sort_order = EXCLUDED.sort_order
	`

	for _, def := range GetMilestoneCatalog() {
		if _, err := pool.Exec(ctx, query, def.Title, def.Category, def.TypicalFromMonths, def.TypicalToMonths, def.SortOrder); err != nil {
			return fmt.Errorf("failed to sync milestone %q: %w", def.Title, err)
		}
	}

	return nil
}
