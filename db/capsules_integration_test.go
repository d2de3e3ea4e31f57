// SPDX-FileCopyrightText: 2025 Sproutbook Authors
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"testing"
	"time"

	"github.com/sproutbook/sproutbook/growth"
)

func TestTimeCapsuleSealAndList(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	author := mustCreateUser(t, "Maya", "maya@example.com", RoleParent)
	childID := mustCreateChild(t, "Noah", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), growth.SexMale)

	unlockOn := time.Now().UTC().AddDate(1, 0, 0)
	capsuleID, err := SealTimeCapsule(ctx, SealTimeCapsuleInput{
		ChildID:  childID,
		AuthorID: author.ID,
		Title:    "For your first birthday",
		Body:     "We love you very much.",
		UnlockOn: unlockOn,
	})
	if err != nil {
		t.Fatalf("SealTimeCapsule failed: %v", err)
	}

	capsules, err := ListTimeCapsules(ctx, childID)
	if err != nil {
		t.Fatalf("ListTimeCapsules failed: %v", err)
	}
	if len(capsules) != 1 {
		t.Fatalf("expected 1 capsule, got %d", len(capsules))
	}
	if capsules[0].AuthorName != "Maya" {
		t.Fatalf("expected author name Maya, got %q", capsules[0].AuthorName)
	}
	if capsules[0].OpenedAt != nil {
		t.Fatalf("expected sealed capsule to be unopened")
	}

	// Locked capsules never return their body.
	if _, err := OpenTimeCapsule(ctx, capsuleID); !errors.Is(err, ErrCapsuleLocked) {
		t.Fatalf("expected ErrCapsuleLocked, got %v", err)
	}
}

func TestSealTimeCapsuleRejectsPastUnlock(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	author := mustCreateUser(t, "Maya", "maya@example.com", RoleParent)
	childID := mustCreateChild(t, "Noah", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), growth.SexMale)

	for _, unlockOn := range []time.Time{
		time.Now().UTC().AddDate(0, 0, -1),
		time.Now().UTC(),
	} {
		_, err := SealTimeCapsule(ctx, SealTimeCapsuleInput{
			ChildID:  childID,
			AuthorID: author.ID,
			Title:    "Too soon",
			Body:     "x",
			UnlockOn: unlockOn,
		})
		if !errors.Is(err, ErrUnlockDateNotFuture) {
			t.Fatalf("expected ErrUnlockDateNotFuture for %v, got %v", unlockOn, err)
		}
	}
}

func TestOpenTimeCapsuleAfterUnlock(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	author := mustCreateUser(t, "Maya", "maya@example.com", RoleParent)
	childID := mustCreateChild(t, "Noah", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), growth.SexMale)

	// Seal with a future date, then backdate the unlock in the database to
	// simulate the passage of time.
	capsuleID, err := SealTimeCapsule(ctx, SealTimeCapsuleInput{
		ChildID:  childID,
		AuthorID: author.ID,
		Title:    "From the past",
		Body:     "Hello from last year.",
		UnlockOn: time.Now().UTC().AddDate(1, 0, 0),
	})
	if err != nil {
		t.Fatalf("SealTimeCapsule failed: %v", err)
	}

	if _, err := pool.Exec(ctx,
		`UPDATE time_capsules SET unlock_on = NOW() - INTERVAL '1 day' WHERE id = $1`,
		capsuleID,
	); err != nil {
		t.Fatalf("failed to backdate capsule: %v", err)
	}

	capsule, err := OpenTimeCapsule(ctx, capsuleID)
	if err != nil {
		t.Fatalf("OpenTimeCapsule failed: %v", err)
	}
	if capsule.Body != "Hello from last year." {
		t.Fatalf("expected capsule body, got %q", capsule.Body)
	}
	if capsule.OpenedAt == nil {
		t.Fatalf("expected first open to be recorded")
	}

	firstOpen := *capsule.OpenedAt

	// Opening again is idempotent and keeps the original open time.
	capsule, err = OpenTimeCapsule(ctx, capsuleID)
	if err != nil {
		t.Fatalf("second OpenTimeCapsule failed: %v", err)
	}
	if capsule.OpenedAt == nil || !capsule.OpenedAt.Equal(firstOpen) {
		t.Fatalf("expected open time to be stable, got %v then %v", firstOpen, capsule.OpenedAt)
	}
}

func TestDeleteTimeCapsuleAuthorOnly(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	author := mustCreateUser(t, "Maya", "maya@example.com", RoleParent)
	other := mustCreateUser(t, "Sam", "sam@example.com", RoleGuardian)
	childID := mustCreateChild(t, "Noah", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), growth.SexMale)

	capsuleID, err := SealTimeCapsule(ctx, SealTimeCapsuleInput{
		ChildID:  childID,
		AuthorID: author.ID,
		Title:    "Private letter",
		Body:     "x",
		UnlockOn: time.Now().UTC().AddDate(0, 6, 0),
	})
	if err != nil {
		t.Fatalf("SealTimeCapsule failed: %v", err)
	}

	if err := DeleteTimeCapsule(ctx, capsuleID, other.ID); err == nil {
		t.Fatalf("expected non-author delete to fail")
	}

	if err := DeleteTimeCapsule(ctx, capsuleID, author.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
}
