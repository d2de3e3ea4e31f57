// SPDX-FileCopyrightText: 2025 Sproutbook Authors
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"testing"
	"time"
)

func TestRoleCanEdit(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleParent, true},
		{RoleGuardian, true},
		{RoleRelative, false},
		{Role("stranger"), false},
	}
	for _, tc := range cases {
		if got := tc.role.CanEdit(); got != tc.want {
			t.Errorf("%q.CanEdit() = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestChildAgeDisplay(t *testing.T) {
	now := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		dob  time.Time
		want string
	}{
		{time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), "0 months"},
		{time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC), "1 month"},
		{time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), "5 months"},
		{time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), "1 year"},
		{time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), "1 year 3 months"},
		{time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), "2 years"},
		{time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), "3 years 2 months"},
	}
	for _, tc := range cases {
		child := Child{DateOfBirth: tc.dob}
		if got := child.AgeDisplay(now); got != tc.want {
			t.Errorf("AgeDisplay(dob=%v) = %q, want %q", tc.dob, got, tc.want)
		}
	}
}

func TestTimeCapsuleUnlocked(t *testing.T) {
	unlockOn := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	capsule := TimeCapsule{UnlockOn: unlockOn}

	cases := []struct {
		now  time.Time
		want bool
	}{
		{time.Date(2026, time.August, 31, 23, 59, 0, 0, time.UTC), false},
		{time.Date(2026, time.September, 1, 0, 0, 1, 0, time.UTC), true},
		{time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC), true},
	}
	for _, tc := range cases {
		if got := capsule.Unlocked(tc.now); got != tc.want {
			t.Errorf("Unlocked(%v) = %v, want %v", tc.now, got, tc.want)
		}
	}
}

func TestTimeCapsuleDaysUntilUnlock(t *testing.T) {
	unlockOn := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	capsule := TimeCapsule{UnlockOn: unlockOn}

	now := time.Date(2026, time.September, 1, 15, 30, 0, 0, time.UTC)
	if got := capsule.DaysUntilUnlock(now); got != 9 {
		t.Errorf("DaysUntilUnlock = %d, want 9", got)
	}

	after := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	if got := capsule.DaysUntilUnlock(after); got != 0 {
		t.Errorf("DaysUntilUnlock after unlock = %d, want 0", got)
	}
}

func TestNextReminderDaily(t *testing.T) {
	setting := ReminderSetting{Frequency: ReminderDaily, HourOfDay: 20}

	morning := time.Date(2026, time.August, 25, 8, 0, 0, 0, time.UTC)
	next := setting.NextReminder(morning)
	if next == nil {
		t.Fatalf("expected a next reminder")
	}
	want := time.Date(2026, time.August, 25, 20, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("NextReminder = %v, want %v", next, want)
	}

	evening := time.Date(2026, time.August, 25, 21, 0, 0, 0, time.UTC)
	next = setting.NextReminder(evening)
	want = time.Date(2026, time.August, 26, 20, 0, 0, 0, time.UTC)
	if next == nil || !next.Equal(want) {
		t.Errorf("NextReminder past hour = %v, want %v", next, want)
	}
}

func TestNextReminderWeekly(t *testing.T) {
	setting := ReminderSetting{Frequency: ReminderWeekly, HourOfDay: 9, Weekday: time.Sunday}

	// Tuesday 2026-08-25; the following Sunday is the 30th.
	now := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)
	next := setting.NextReminder(now)
	want := time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)
	if next == nil || !next.Equal(want) {
		t.Errorf("NextReminder = %v, want %v", next, want)
	}

	// On the reminder day after the hour, the next occurrence is a week out.
	sunday := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	next = setting.NextReminder(sunday)
	want = time.Date(2026, time.September, 6, 9, 0, 0, 0, time.UTC)
	if next == nil || !next.Equal(want) {
		t.Errorf("NextReminder same day = %v, want %v", next, want)
	}
}

func TestNextReminderMonthly(t *testing.T) {
	setting := ReminderSetting{Frequency: ReminderMonthly, HourOfDay: 18, DayOfMonth: 15}

	before := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	next := setting.NextReminder(before)
	want := time.Date(2026, time.August, 15, 18, 0, 0, 0, time.UTC)
	if next == nil || !next.Equal(want) {
		t.Errorf("NextReminder = %v, want %v", next, want)
	}

	after := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)
	next = setting.NextReminder(after)
	want = time.Date(2026, time.September, 15, 18, 0, 0, 0, time.UTC)
	if next == nil || !next.Equal(want) {
		t.Errorf("NextReminder rollover = %v, want %v", next, want)
	}
}

func TestNextReminderOff(t *testing.T) {
	setting := ReminderSetting{Frequency: ReminderOff, HourOfDay: 20}
	if next := setting.NextReminder(time.Now()); next != nil {
		t.Errorf("expected nil next reminder when off, got %v", next)
	}
}
