/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sproutbook/sproutbook/growth"
)

// Role represents a family member's role
type Role string

// Role values represent supported family roles.
const (
	RoleParent   Role = "parent"
	RoleGuardian Role = "guardian"
	RoleRelative Role = "relative"
)

// CanEdit reports whether the role may modify children and measurements.
func (r Role) CanEdit() bool {
	return r == RoleParent || r == RoleGuardian
}

// User represents an authenticated family member.
type User struct {
	ID           uuid.UUID `db:"id"`
	DisplayName  string    `db:"display_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// FamilyInvite represents an invitation token for joining the family.
type FamilyInvite struct {
	ID            uuid.UUID  `db:"id"`
	Token         string     `db:"token"`
	DisplayName   *string    `db:"display_name"`
	SuggestedRole Role       `db:"suggested_role"`
	CreatedBy     *uuid.UUID `db:"created_by"`
	CreatedAt     time.Time  `db:"created_at"`
	UsedAt        *time.Time `db:"used_at"`
}

// Child represents a child profile
type Child struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	DateOfBirth time.Time  `db:"date_of_birth"`
	Sex         growth.Sex `db:"sex"`
	Color       *string    `db:"color"`
	Note        *string    `db:"note"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// AgeInMonthsAt returns the child's whole-month age at the given time,
// clamped to zero for dates before birth.
func (c *Child) AgeInMonthsAt(at time.Time) int {
	return growth.AgeInMonths(c.DateOfBirth, at)
}

// AgeDisplay returns a human-readable age like "1 year 3 months".
func (c *Child) AgeDisplay(now time.Time) string {
	months := c.AgeInMonthsAt(now)
	years := months / 12
	months = months % 12

	switch {
	case years == 0 && months == 1:
		return "1 month"
	case years == 0:
		return fmt.Sprintf("%d months", months)
	case years == 1 && months == 0:
		return "1 year"
	case months == 0:
		return fmt.Sprintf("%d years", years)
	case years == 1:
		return fmt.Sprintf("1 year %d months", months)
	}
	return fmt.Sprintf("%d years %d months", years, months)
}

// ChildSummary is a child profile with record counts for list pages.
type ChildSummary struct {
	Child
	MeasurementCount int        `db:"measurement_count"`
	EntryCount       int        `db:"entry_count"`
	MilestoneCount   int        `db:"milestone_count"`
	LastEntryDate    *time.Time `db:"last_entry_date"`
}

// Measurement represents a single growth observation. Measurements are
// immutable once recorded; they are created and deleted, never edited.
type Measurement struct {
	ID        uuid.UUID     `db:"id"`
	ChildID   uuid.UUID     `db:"child_id"`
	Metric    growth.Metric `db:"metric"`
	Value     float64       `db:"value"`
	TakenOn   time.Time     `db:"taken_on"`
	Note      *string       `db:"note"`
	CreatedBy *uuid.UUID    `db:"created_by"`
	CreatedAt time.Time     `db:"created_at"`
}

// MediaKind represents the type of an entry attachment
type MediaKind string

// MediaKind values represent supported attachment types.
const (
	MediaPhoto MediaKind = "photo"
	MediaVideo MediaKind = "video"
)

// Entry represents a journal entry. ChildID is nil for family-wide
// entries that are not about a specific child.
type Entry struct {
	ID        uuid.UUID  `db:"id"`
	ChildID   *uuid.UUID `db:"child_id"`
	AuthorID  uuid.UUID  `db:"author_id"`
	Title     string     `db:"title"`
	Body      string     `db:"body"`
	EntryDate time.Time  `db:"entry_date"`
	Favorite  bool       `db:"favorite"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// EntryMedia represents a photo or video reference attached to an entry.
type EntryMedia struct {
	ID        uuid.UUID `db:"id"`
	EntryID   uuid.UUID `db:"entry_id"`
	Kind      MediaKind `db:"kind"`
	Location  string    `db:"location"`
	Caption   *string   `db:"caption"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}

// EntrySummary is an entry with author/child names and media count for
// list pages.
type EntrySummary struct {
	Entry
	AuthorName string  `db:"author_name"`
	ChildName  *string `db:"child_name"`
	MediaCount int     `db:"media_count"`
}

// EntryDraft holds autosaved entry text. At most one draft exists per
// (user, child) pair; family-wide drafts use a nil child.
type EntryDraft struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	ChildID   *uuid.UUID `db:"child_id"`
	Title     string     `db:"title"`
	Body      string     `db:"body"`
	EntryDate *time.Time `db:"entry_date"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// MilestoneCategory represents the developmental area of a milestone
type MilestoneCategory string

// MilestoneCategory values represent supported milestone categories.
const (
	MilestoneMotor     MilestoneCategory = "motor"
	MilestoneLanguage  MilestoneCategory = "language"
	MilestoneSocial    MilestoneCategory = "social"
	MilestoneCognitive MilestoneCategory = "cognitive"
	MilestoneOther     MilestoneCategory = "other"
)

// Milestone represents an achieved developmental milestone.
type Milestone struct {
	ID         uuid.UUID         `db:"id"`
	ChildID    uuid.UUID         `db:"child_id"`
	Title      string            `db:"title"`
	Category   MilestoneCategory `db:"category"`
	AchievedOn time.Time         `db:"achieved_on"`
	Note       *string           `db:"note"`
	CreatedAt  time.Time         `db:"created_at"`
}

// MilestoneSuggestion is a catalog milestone offered on the child page
// until it is recorded as achieved.
type MilestoneSuggestion struct {
	ID                uuid.UUID         `db:"id"`
	Title             string            `db:"title"`
	Category          MilestoneCategory `db:"category"`
	TypicalFromMonths int               `db:"typical_from_months"`
	TypicalToMonths   int               `db:"typical_to_months"`
	SortOrder         int               `db:"sort_order"`
}

// TimeCapsule represents a letter sealed until its unlock date. The
// body is never rendered while locked.
type TimeCapsule struct {
	ID        uuid.UUID  `db:"id"`
	ChildID   uuid.UUID  `db:"child_id"`
	AuthorID  uuid.UUID  `db:"author_id"`
	Title     string     `db:"title"`
	Body      string     `db:"body"`
	SealedAt  time.Time  `db:"sealed_at"`
	UnlockOn  time.Time  `db:"unlock_on"`
	OpenedAt  *time.Time `db:"opened_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// Unlocked reports whether the capsule may be opened at the given time.
// Comparison is at day granularity in UTC.
func (tc *TimeCapsule) Unlocked(now time.Time) bool {
	today := now.UTC().Truncate(24 * time.Hour)
	unlock := tc.UnlockOn.UTC().Truncate(24 * time.Hour)
	return !today.Before(unlock)
}

// DaysUntilUnlock returns the number of whole days until the capsule
// unlocks, or zero if it is already unlocked.
func (tc *TimeCapsule) DaysUntilUnlock(now time.Time) int {
	today := now.UTC().Truncate(24 * time.Hour)
	unlock := tc.UnlockOn.UTC().Truncate(24 * time.Hour)
	if !today.Before(unlock) {
		return 0
	}
	return int(unlock.Sub(today) / (24 * time.Hour))
}

// CapsuleSummary is a capsule listing row; Body is omitted so locked
// capsule text never leaves the database layer by accident.
type CapsuleSummary struct {
	ID         uuid.UUID  `db:"id"`
	ChildID    uuid.UUID  `db:"child_id"`
	AuthorID   uuid.UUID  `db:"author_id"`
	AuthorName string     `db:"author_name"`
	Title      string     `db:"title"`
	SealedAt   time.Time  `db:"sealed_at"`
	UnlockOn   time.Time  `db:"unlock_on"`
	OpenedAt   *time.Time `db:"opened_at"`
}

// ReminderFrequency represents how often a user wants journal reminders
type ReminderFrequency string

// ReminderFrequency values represent supported reminder cadences.
const (
	ReminderOff     ReminderFrequency = "off"
	ReminderDaily   ReminderFrequency = "daily"
	ReminderWeekly  ReminderFrequency = "weekly"
	ReminderMonthly ReminderFrequency = "monthly"
)

// Valid reports whether the frequency is a recognized value.
func (f ReminderFrequency) Valid() bool {
	switch f {
	case ReminderOff, ReminderDaily, ReminderWeekly, ReminderMonthly:
		return true
	}
	return false
}

// ReminderSetting holds a user's journal reminder preferences. Delivery
// is out of scope; only the schedule arithmetic lives here.
type ReminderSetting struct {
	UserID         uuid.UUID         `db:"user_id"`
	Frequency      ReminderFrequency `db:"frequency"`
	HourOfDay      int               `db:"hour_of_day"`
	Weekday        time.Weekday      `db:"weekday"`
	DayOfMonth     int               `db:"day_of_month"`
	LastNotifiedAt *time.Time        `db:"last_notified_at"`
	UpdatedAt      time.Time         `db:"updated_at"`
}

// NextReminder returns the next occurrence strictly after now, or nil
// when reminders are off.
func (r *ReminderSetting) NextReminder(now time.Time) *time.Time {
	if r.Frequency == ReminderOff || !r.Frequency.Valid() {
		return nil
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), r.HourOfDay, 0, 0, 0, now.Location())

	switch r.Frequency {
	case ReminderDaily:
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
	case ReminderWeekly:
		for next.Weekday() != r.Weekday || !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
	case ReminderMonthly:
		// Day-of-month is clamped to 28 so every month has the day.
		day := r.DayOfMonth
		if day < 1 {
			day = 1
		}
		if day > 28 {
			day = 28
		}
		next = time.Date(now.Year(), now.Month(), day, r.HourOfDay, 0, 0, 0, now.Location())
		if !next.After(now) {
			next = next.AddDate(0, 1, 0)
		}
	}

	return &next
}
