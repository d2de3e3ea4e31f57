/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/sproutbook/sproutbook/growth"
)

// CreateMeasurementInput defines data for recording a measurement.
type CreateMeasurementInput struct {
	ChildID   string
	Metric    growth.Metric
	Value     float64
	TakenOn   time.Time
	Note      *string
	CreatedBy *uuid.UUID
}

// CreateMeasurement records a new growth measurement and returns its
// ID. Measurements are immutable: there is no update operation.
func CreateMeasurement(ctx context.Context, input CreateMeasurementInput) (string, error) {
	if pool == nil {
		return "", ErrDatabaseConnectionNotInitialized
	}

	switch input.Metric {
	case growth.MetricHeight, growth.MetricWeight, growth.MetricHeadCircumference:
	default:
		return "", fmt.Errorf("unknown metric %q", input.Metric)
	}

	if input.Value <= 0 || math.IsNaN(input.Value) || math.IsInf(input.Value, 0) {
		return "", fmt.Errorf("measurement value must be a positive finite number")
	}

	var id string
	query := `
		INSERT INTO measurements (child_id, metric, value, taken_on, note, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := pool.QueryRow(ctx, query, input.ChildID, input.Metric, input.Value, input.TakenOn, input.Note, input.CreatedBy).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create measurement: %w", err)
	}

	return id, nil
}

// ListMeasurements returns all measurements for a child, newest first.
func ListMeasurements(ctx context.Context, childID string) ([]Measurement, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, child_id, metric, value, taken_on, note, created_by, created_at
		FROM measurements
		WHERE child_id = $1
		ORDER BY taken_on DESC, created_at DESC
	`
	return queryMeasurements(ctx, query, childID)
}

// ListMeasurementsByMetric returns a child's measurements for one
// metric, oldest first for charting.
func ListMeasurementsByMetric(ctx context.Context, childID string, metric growth.Metric) ([]Measurement, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, child_id, metric, value, taken_on, note, created_by, created_at
		FROM measurements
		WHERE child_id = $1 AND metric = $2
		ORDER BY taken_on ASC, created_at ASC
	`
	return queryMeasurements(ctx, query, childID, metric)
}

func queryMeasurements(ctx context.Context, query string, args ...interface{}) ([]Measurement, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}
	defer rows.Close()

	var measurements []Measurement
	for rows.Next() {
		var m Measurement
		if err := rows.Scan(
			&m.ID, &m.ChildID, &m.Metric, &m.Value, &m.TakenOn, &m.Note, &m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan measurement: %w", err)
		}
		measurements = append(measurements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating measurements: %w", err)
	}

	return measurements, nil
}

// DeleteMeasurement removes a measurement by ID.
func DeleteMeasurement(ctx context.Context, id string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	command, err := pool.Exec(ctx, `DELETE FROM measurements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete measurement: %w", err)
	}
	if command.RowsAffected() == 0 {
		return fmt.Errorf("measurement not found")
	}

	return nil
}

// MetricExtremes holds a child's first and latest measurement for one
// metric within a period.
type MetricExtremes struct {
	Metric growth.Metric
	First  Measurement
	Latest Measurement
}

// GetMeasurementExtremes returns, per metric, the first and latest
// measurement for a child between from and to (inclusive).
func GetMeasurementExtremes(ctx context.Context, childID string, from, to time.Time) ([]MetricExtremes, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, child_id, metric, value, taken_on, note, created_by, created_at
		FROM measurements
		WHERE child_id = $1 AND taken_on BETWEEN $2 AND $3
		ORDER BY metric ASC, taken_on ASC, created_at ASC
	`
	measurements, err := queryMeasurements(ctx, query, childID, from, to)
	if err != nil {
		return nil, err
	}

	var extremes []MetricExtremes
	for _, m := range measurements {
		if len(extremes) == 0 || extremes[len(extremes)-1].Metric != m.Metric {
			extremes = append(extremes, MetricExtremes{Metric: m.Metric, First: m, Latest: m})
			continue
		}
		extremes[len(extremes)-1].Latest = m
	}

	return extremes, nil
}
