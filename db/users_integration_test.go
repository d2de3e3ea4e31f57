// SPDX-FileCopyrightText: 2025 Sproutbook Authors
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"testing"
)

func TestUserLifecycle(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	count, err := CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 users, got %d", count)
	}

	user := mustCreateUser(t, "Maya", "maya@example.com", RoleParent)
	if user.Email != "maya@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if !user.Role.CanEdit() {
		t.Fatalf("expected parent role to be able to edit")
	}

	fetched, err := GetUserByID(ctx, user.ID.String())
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if fetched == nil || fetched.DisplayName != "Maya" {
		t.Fatalf("expected to fetch Maya back")
	}

	byEmail, err := GetUserByEmail(ctx, "MAYA@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail == nil || byEmail.ID != user.ID {
		t.Fatalf("expected email lookup to be case insensitive")
	}

	if err := UpdateUserRole(ctx, user.ID.String(), RoleRelative); err != nil {
		t.Fatalf("UpdateUserRole failed: %v", err)
	}

	users, err := ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].Role != RoleRelative {
		t.Fatalf("expected one relative user, got %+v", users)
	}
	if users[0].Role.CanEdit() {
		t.Fatalf("expected relative role to be read-only")
	}

	if err := DeleteUser(ctx, user.ID.String()); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	resetDatabase(t)

	mustCreateUser(t, "First", "shared@example.com", RoleParent)

	_, err := CreateUser(testContext(), CreateUserInput{
		DisplayName: "Second",
		Email:       "Shared@Example.com",
		Password:    "another password",
		Role:        RoleGuardian,
	})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuthenticateUser(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	mustCreateUser(t, "Maya", "maya@example.com", RoleParent)

	user, err := AuthenticateUser(ctx, "maya@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("AuthenticateUser failed: %v", err)
	}
	if user.DisplayName != "Maya" {
		t.Fatalf("expected Maya, got %q", user.DisplayName)
	}

	if _, err := AuthenticateUser(ctx, "maya@example.com", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}

	if _, err := AuthenticateUser(ctx, "nobody@example.com", "correct horse battery"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestFamilyInviteFlow(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	creator := mustCreateUser(t, "Maya", "maya@example.com", RoleParent)

	invite, err := CreateFamilyInvite(ctx, creator.ID.String(), "Grandma", RoleRelative)
	if err != nil {
		t.Fatalf("CreateFamilyInvite failed: %v", err)
	}
	if invite.Token == "" {
		t.Fatalf("expected invite token to be generated")
	}

	pending, err := ListPendingFamilyInvites(ctx)
	if err != nil {
		t.Fatalf("ListPendingFamilyInvites failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending invite, got %d", len(pending))
	}

	byToken, err := GetFamilyInviteByToken(ctx, invite.Token)
	if err != nil {
		t.Fatalf("GetFamilyInviteByToken failed: %v", err)
	}
	if byToken == nil || byToken.SuggestedRole != RoleRelative {
		t.Fatalf("expected relative invite, got %+v", byToken)
	}

	if err := MarkFamilyInviteUsed(ctx, invite.ID.String()); err != nil {
		t.Fatalf("MarkFamilyInviteUsed failed: %v", err)
	}

	// An invite is single use.
	if err := MarkFamilyInviteUsed(ctx, invite.ID.String()); err == nil {
		t.Fatalf("expected second use of invite to fail")
	}

	pending, err = ListPendingFamilyInvites(ctx)
	if err != nil {
		t.Fatalf("ListPendingFamilyInvites failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending invites after use, got %d", len(pending))
	}
}
