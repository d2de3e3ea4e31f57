// SPDX-FileCopyrightText: 2025 Sproutbook Authors
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"testing"
	"time"
)

func TestReminderSettingDefaults(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	user := mustCreateUser(t, "Maya", "maya@example.com", RoleParent)

	setting, err := GetReminderSetting(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetReminderSetting failed: %v", err)
	}
	if setting.Frequency != ReminderOff {
		t.Fatalf("expected default frequency off, got %q", setting.Frequency)
	}
	if setting.HourOfDay != 20 {
		t.Fatalf("expected default hour 20, got %d", setting.HourOfDay)
	}
	if next := setting.NextReminder(time.Now()); next != nil {
		t.Fatalf("expected no next reminder when off, got %v", next)
	}
}

func TestSaveReminderSetting(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	user := mustCreateUser(t, "Maya", "maya@example.com", RoleParent)

	setting := ReminderSetting{
		UserID:     user.ID,
		Frequency:  ReminderWeekly,
		HourOfDay:  19,
		Weekday:    time.Saturday,
		DayOfMonth: 1,
	}
	if err := SaveReminderSetting(ctx, setting); err != nil {
		t.Fatalf("SaveReminderSetting failed: %v", err)
	}

	// Saving again updates in place.
	setting.Frequency = ReminderMonthly
	setting.DayOfMonth = 15
	if err := SaveReminderSetting(ctx, setting); err != nil {
		t.Fatalf("second SaveReminderSetting failed: %v", err)
	}

	loaded, err := GetReminderSetting(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetReminderSetting failed: %v", err)
	}
	if loaded.Frequency != ReminderMonthly || loaded.DayOfMonth != 15 {
		t.Fatalf("expected updated setting, got %+v", loaded)
	}
	if loaded.Weekday != time.Saturday {
		t.Fatalf("expected weekday to persist, got %v", loaded.Weekday)
	}

	notifiedAt := time.Date(2026, time.August, 1, 19, 0, 0, 0, time.UTC)
	if err := MarkReminderNotified(ctx, user.ID, notifiedAt); err != nil {
		t.Fatalf("MarkReminderNotified failed: %v", err)
	}

	loaded, err = GetReminderSetting(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetReminderSetting failed: %v", err)
	}
	if loaded.LastNotifiedAt == nil || !loaded.LastNotifiedAt.Equal(notifiedAt) {
		t.Fatalf("expected last notified time, got %v", loaded.LastNotifiedAt)
	}
}

func TestSaveReminderSettingValidation(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	user := mustCreateUser(t, "Maya", "maya@example.com", RoleParent)

	cases := []ReminderSetting{
		{UserID: user.ID, Frequency: "hourly", HourOfDay: 9, DayOfMonth: 1},
		{UserID: user.ID, Frequency: ReminderDaily, HourOfDay: 24, DayOfMonth: 1},
		{UserID: user.ID, Frequency: ReminderMonthly, HourOfDay: 9, DayOfMonth: 31},
	}
	for i, setting := range cases {
		if err := SaveReminderSetting(ctx, setting); err == nil {
			t.Errorf("case %d: expected validation error, got nil", i)
		}
	}
}
