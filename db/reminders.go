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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetReminderSetting returns a user's reminder setting, or defaults
// (off, 20:00) if none has been saved yet.
func GetReminderSetting(ctx context.Context, userID uuid.UUID) (*ReminderSetting, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var setting ReminderSetting
	var weekday int
	query := `
		SELECT user_id, frequency, hour_of_day, weekday, day_of_month, last_notified_at, updated_at
		FROM reminder_settings
		WHERE user_id = $1
	`
	err := pool.QueryRow(ctx, query, userID).Scan(
		&setting.UserID, &setting.Frequency, &setting.HourOfDay, &weekday,
		&setting.DayOfMonth, &setting.LastNotifiedAt, &setting.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &ReminderSetting{
				UserID:     userID,
				Frequency:  ReminderOff,
				HourOfDay:  20,
				Weekday:    time.Sunday,
				DayOfMonth: 1,
			}, nil
		}
		return nil, fmt.Errorf("failed to get reminder setting: %w", err)
	}

	setting.Weekday = time.Weekday(weekday)
	return &setting, nil
}

// SaveReminderSetting upserts a user's reminder setting.
func SaveReminderSetting(ctx context.Context, setting ReminderSetting) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}
	if !setting.Frequency.Valid() {
		return fmt.Errorf("unknown reminder frequency %q", setting.Frequency)
	}
	if setting.HourOfDay < 0 || setting.HourOfDay > 23 {
		return fmt.Errorf("hour of day out of range")
	}
	if setting.DayOfMonth < 1 || setting.DayOfMonth > 28 {
		return fmt.Errorf("day of month out of range")
	}

	query := `
		INSERT INTO reminder_settings (user_id, frequency, hour_of_day, weekday, day_of_month)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			frequency = EXCLUDED.frequency,
			hour_of_day = EXCLUDED.hour_of_day,
			weekday = EXCLUDED.weekday,
			day_of_month = EXCLUDED.day_of_month,
			updated_at = NOW()
	`
	_, err := pool.Exec(ctx, query,
		setting.UserID, setting.Frequency, setting.HourOfDay, int(setting.Weekday), setting.DayOfMonth,
	)
	if err != nil {
		return fmt.Errorf("failed to save reminder setting: %w", err)
	}

	return nil
}

// MarkReminderNotified records that a reminder fired for the user.
func MarkReminderNotified(ctx context.Context, userID uuid.UUID, at time.Time) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	command, err := pool.Exec(ctx,
		`UPDATE reminder_settings SET last_notified_at = $1 WHERE user_id = $2`,
		at, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark reminder notified: %w", err)
	}
	if command.RowsAffected() == 0 {
		return fmt.Errorf("reminder setting not found")
	}

	return nil
}
