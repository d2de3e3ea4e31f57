// SPDX-FileCopyrightText: 2025 Sproutbook Authors
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"testing"
	"time"

	"github.com/sproutbook/sproutbook/growth"
)

func TestMilestoneLifecycle(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	childID := mustCreateChild(t, "Noah", time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), growth.SexMale)

	milestoneID := mustCreateMilestone(t, childID, "First steps", MilestoneMotor, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))

	milestone, err := GetMilestone(ctx, milestoneID)
	if err != nil {
		t.Fatalf("GetMilestone failed: %v", err)
	}
	if milestone == nil || milestone.Title != "First steps" {
		t.Fatalf("expected milestone back, got %+v", milestone)
	}

	newDate := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)
	if err := UpdateMilestone(ctx, milestoneID, newDate, stringPtr("In the garden")); err != nil {
		t.Fatalf("UpdateMilestone failed: %v", err)
	}

	milestones, err := ListMilestones(ctx, childID)
	if err != nil {
		t.Fatalf("ListMilestones failed: %v", err)
	}
	if len(milestones) != 1 || milestones[0].Note == nil || *milestones[0].Note != "In the garden" {
		t.Fatalf("expected updated milestone, got %+v", milestones)
	}

	if err := DeleteMilestone(ctx, milestoneID); err != nil {
		t.Fatalf("DeleteMilestone failed: %v", err)
	}

	if _, err := CreateMilestone(ctx, CreateMilestoneInput{
		ChildID:    childID,
		Title:      "Invalid",
		Category:   "athletic",
		AchievedOn: time.Now(),
	}); err == nil {
		t.Fatalf("expected unknown category to be rejected")
	}
}

func TestMilestoneSuggestions(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	childID := mustCreateChild(t, "Noah", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), growth.SexMale)

	suggestions, err := ListMilestoneSuggestions(ctx, childID, 12)
	if err != nil {
		t.Fatalf("ListMilestoneSuggestions failed: %v", err)
	}
	if len(suggestions) == 0 {
		t.Fatalf("expected suggestions for a one year old")
	}

	containsFirstSteps := func(list []MilestoneSuggestion) bool {
		for _, s := range list {
			if s.Title == "First steps" {
				return true
			}
		}
		return false
	}

	if !containsFirstSteps(suggestions) {
		t.Fatalf("expected First steps to be suggested at 12 months")
	}

	// Recording the milestone removes it from suggestions.
	mustCreateMilestone(t, childID, "First steps", MilestoneMotor, time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC))

	suggestions, err = ListMilestoneSuggestions(ctx, childID, 12)
	if err != nil {
		t.Fatalf("ListMilestoneSuggestions failed: %v", err)
	}
	if containsFirstSteps(suggestions) {
		t.Fatalf("expected achieved milestone to drop out of suggestions")
	}

	// A newborn should not be offered toddler milestones.
	newbornSuggestions, err := ListMilestoneSuggestions(ctx, childID, 0)
	if err != nil {
		t.Fatalf("ListMilestoneSuggestions failed: %v", err)
	}
	for _, s := range newbornSuggestions {
		if s.Title == "Two-word sentences" {
			t.Fatalf("did not expect toddler language milestone for a newborn")
		}
	}
}

func TestSyncMilestoneCatalogIdempotent(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	if err := SyncMilestoneCatalog(ctx); err != nil {
		t.Fatalf("SyncMilestoneCatalog failed: %v", err)
	}
	if err := SyncMilestoneCatalog(ctx); err != nil {
		t.Fatalf("second SyncMilestoneCatalog failed: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM milestone_suggestions`).Scan(&count); err != nil {
		t.Fatalf("failed to count suggestions: %v", err)
	}
	if count != len(GetMilestoneCatalog()) {
		t.Fatalf("expected %d catalog rows, got %d", len(GetMilestoneCatalog()), count)
	}
}
