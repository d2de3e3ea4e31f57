// SPDX-FileCopyrightText: 2025 Sproutbook Authors
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sproutbook/sproutbook/growth"
)

func testContext() context.Context {
	return context.Background()
}

func stringPtr(value string) *string {
	return &value
}

func mustCreateUser(t *testing.T, displayName, email string, role Role) *User {
	t.Helper()
	user, err := CreateUser(testContext(), CreateUserInput{
		DisplayName: displayName,
		Email:       email,
		Password:    "correct horse battery",
		Role:        role,
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func mustCreateChild(t *testing.T, name string, dateOfBirth time.Time, sex growth.Sex) string {
	t.Helper()
	childID, err := CreateChild(testContext(), CreateChildInput{
		Name:        name,
		DateOfBirth: dateOfBirth,
		Sex:         sex,
	})
	if err != nil {
		t.Fatalf("failed to create child: %v", err)
	}
	return childID
}

func mustCreateMeasurement(t *testing.T, childID string, metric growth.Metric, value float64, takenOn time.Time) string {
	t.Helper()
	measurementID, err := CreateMeasurement(testContext(), CreateMeasurementInput{
		ChildID: childID,
		Metric:  metric,
		Value:   value,
		TakenOn: takenOn,
	})
	if err != nil {
		t.Fatalf("failed to create measurement: %v", err)
	}
	return measurementID
}

func mustCreateEntry(t *testing.T, childID *uuid.UUID, author *User, title string, entryDate time.Time) string {
	t.Helper()
	entryID, err := CreateEntry(testContext(), CreateEntryInput{
		ChildID:   childID,
		AuthorID:  author.ID,
		Title:     title,
		Body:      "Body of " + title,
		EntryDate: entryDate,
	})
	if err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}
	return entryID
}

func mustCreateMilestone(t *testing.T, childID, title string, category MilestoneCategory, achievedOn time.Time) string {
	t.Helper()
	milestoneID, err := CreateMilestone(testContext(), CreateMilestoneInput{
		ChildID:    childID,
		Title:      title,
		Category:   category,
		AchievedOn: achievedOn,
	})
	if err != nil {
		t.Fatalf("failed to create milestone: %v", err)
	}
	return milestoneID
}

func mustParseUUID(t *testing.T, value string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(value)
	if err != nil {
		t.Fatalf("failed to parse uuid %q: %v", value, err)
	}
	return id
}
