/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateFamilyInvite creates a new single-use invite token.
func CreateFamilyInvite(ctx context.Context, createdBy string, displayName string, role Role) (*FamilyInvite, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}
	if !role.CanEdit() && role != RoleRelative {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	token, err := generateInviteToken()
	if err != nil {
		return nil, err
	}

	var createdByID *uuid.UUID
	if strings.TrimSpace(createdBy) != "" {
		parsed, err := uuid.Parse(createdBy)
		if err != nil {
			return nil, fmt.Errorf("invalid creator ID")
		}
		createdByID = &parsed
	}

	var displayNamePtr *string
	if name := strings.TrimSpace(displayName); name != "" {
		displayNamePtr = &name
	}

	var invite FamilyInvite
	query := `
		INSERT INTO family_invites (token, display_name, suggested_role, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, token, display_name, suggested_role, created_by, created_at, used_at
	`
	if err := pool.QueryRow(ctx, query, token, displayNamePtr, role, createdByID).Scan(
		&invite.ID,
		&invite.Token,
		&invite.DisplayName,
		&invite.SuggestedRole,
		&invite.CreatedBy,
		&invite.CreatedAt,
		&invite.UsedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	return &invite, nil
}

// ListPendingFamilyInvites returns all unused invites.
func ListPendingFamilyInvites(ctx context.Context) ([]FamilyInvite, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, token, display_name, suggested_role, created_by, created_at, used_at
		FROM family_invites
		WHERE used_at IS NULL
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var invites []FamilyInvite
	for rows.Next() {
		var invite FamilyInvite
		if err := rows.Scan(
			&invite.ID,
			&invite.Token,
			&invite.DisplayName,
			&invite.SuggestedRole,
			&invite.CreatedBy,
			&invite.CreatedAt,
			&invite.UsedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, invite)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invites: %w", err)
	}

	return invites, nil
}

// GetFamilyInviteByToken returns an invite by its token, or nil if none exists.
func GetFamilyInviteByToken(ctx context.Context, token string) (*FamilyInvite, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var invite FamilyInvite
	query := `
		SELECT id, token, display_name, suggested_role, created_by, created_at, used_at
		FROM family_invites
		WHERE token = $1
	`
	err := pool.QueryRow(ctx, query, token).Scan(
		&invite.ID,
		&invite.Token,
		&invite.DisplayName,
		&invite.SuggestedRole,
		&invite.CreatedBy,
		&invite.CreatedAt,
		&invite.UsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return &invite, nil
}

// MarkFamilyInviteUsed marks an invite as used. Invites are single-use;
// marking an already-used invite fails.
func MarkFamilyInviteUsed(ctx context.Context, id string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	command, err := pool.Exec(ctx, `UPDATE family_invites SET used_at = NOW() WHERE id = $1 AND used_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to mark invite used: %w", err)
	}
	if command.RowsAffected() == 0 {
		return fmt.Errorf("invite not found")
	}

	return nil
}

// DeleteFamilyInvite removes an invite by ID.
func DeleteFamilyInvite(ctx context.Context, id string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	command, err := pool.Exec(ctx, `DELETE FROM family_invites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete invite: %w", err)
	}
	if command.RowsAffected() == 0 {
		return fmt.Errorf("invite not found")
	}

	return nil
}

func generateInviteToken() (string, error) {
	buffer := make([]byte, 32)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("failed to generate invite token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buffer), nil
}
