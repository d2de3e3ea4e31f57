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

	"github.com/sproutbook/sproutbook/growth"
)

// CreateChildInput defines data for creating a child profile.
type CreateChildInput struct {
	Name        string
	DateOfBirth time.Time
	Sex         growth.Sex
	Color       *string
	Note        *string
}

// CreateChild creates a new child profile and returns its ID.
func CreateChild(ctx context.Context, input CreateChildInput) (string, error) {
	if pool == nil {
		return "", ErrDatabaseConnectionNotInitialized
	}
	if input.Name == "" {
		return "", fmt.Errorf("child name is required")
	}
	if input.Sex != growth.SexMale && input.Sex != growth.SexFemale {
		return "", fmt.Errorf("unknown sex %q", input.Sex)
	}

	var id string
	query := `
		INSERT INTO children (name, date_of_birth, sex, color, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := pool.QueryRow(ctx, query, input.Name, input.DateOfBirth, input.Sex, input.Color, input.Note).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create child: %w", err)
	}

	return id, nil
}

// GetChild returns a single child profile by ID.
func GetChild(ctx context.Context, id string) (*Child, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var child Child
	query := `
		SELECT id, name, date_of_birth, sex, color, note, created_at, updated_at
		FROM children
		WHERE id = $1
	`
	err := pool.QueryRow(ctx, query, id).Scan(
		&child.ID, &child.Name, &child.DateOfBirth, &child.Sex, &child.Color, &child.Note,
		&child.CreatedAt, &child.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get child: %w", err)
	}

	return &child, nil
}

// ListChildren returns all children with record counts, oldest first.
func ListChildren(ctx context.Context) ([]ChildSummary, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT c.id, c.name, c.date_of_birth, c.sex, c.color, c.note, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM measurements m WHERE m.child_id = c.id) AS measurement_count,
			(SELECT COUNT(*) FROM entries e WHERE e.child_id = c.id) AS entry_count,
			(SELECT COUNT(*) FROM milestones ms WHERE ms.child_id = c.id) AS milestone_count,
			(SELECT MAX(e.entry_date) FROM entries e WHERE e.child_id = c.id) AS last_entry_date
		FROM children c
		ORDER BY c.date_of_birth ASC
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	defer rows.Close()

	var children []ChildSummary
	for rows.Next() {
		var child ChildSummary
		if err := rows.Scan(
			&child.ID, &child.Name, &child.DateOfBirth, &child.Sex, &child.Color, &child.Note,
			&child.CreatedAt, &child.UpdatedAt,
			&child.MeasurementCount, &child.EntryCount, &child.MilestoneCount, &child.LastEntryDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan child: %w", err)
		}
		children = append(children, child)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating children: %w", err)
	}

	return children, nil
}

// UpdateChild updates a child profile.
func UpdateChild(ctx context.Context, id string, input CreateChildInput) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}
	if input.Name == "" {
		return fmt.Errorf("child name is required")
	}
	if input.Sex != growth.SexMale && input.Sex != growth.SexFemale {
		return fmt.Errorf("unknown sex %q", input.Sex)
	}

	query := `
		UPDATE children
		SET name = $1, date_of_birth = $2, sex = $3, color = $4, note = $5, updated_at = NOW()
		WHERE id = $6
	`
	command, err := pool.Exec(ctx, query, input.Name, input.DateOfBirth, input.Sex, input.Color, input.Note, id)
	if err != nil {
		return fmt.Errorf("failed to update child: %w", err)
	}
	if command.RowsAffected() == 0 {
		return fmt.Errorf("child not found")
	}

	return nil
}

// DeleteChild deletes a child profile (cascades to measurements,
// entries, milestones and time capsules).
func DeleteChild(ctx context.Context, id string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	command, err := pool.Exec(ctx, `DELETE FROM children WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete child: %w", err)
	}
	if command.RowsAffected() == 0 {
		return fmt.Errorf("child not found")
	}

	return nil
}
