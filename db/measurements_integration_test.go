// SPDX-FileCopyrightText: 2025 Sproutbook Authors
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"testing"
	"time"

	"github.com/sproutbook/sproutbook/growth"
)

func TestMeasurementLifecycle(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	childID := mustCreateChild(t, "Noah", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), growth.SexMale)

	first := mustCreateMeasurement(t, childID, growth.MetricHeight, 52.3, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	mustCreateMeasurement(t, childID, growth.MetricHeight, 58.1, time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC))
	mustCreateMeasurement(t, childID, growth.MetricWeight, 4.2, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))

	all, err := ListMeasurements(ctx, childID)
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 measurements, got %d", len(all))
	}

	// Newest first for the history view.
	if !all[0].TakenOn.After(all[len(all)-1].TakenOn) {
		t.Fatalf("expected newest measurement first")
	}

	heights, err := ListMeasurementsByMetric(ctx, childID, growth.MetricHeight)
	if err != nil {
		t.Fatalf("ListMeasurementsByMetric failed: %v", err)
	}
	if len(heights) != 2 {
		t.Fatalf("expected 2 height measurements, got %d", len(heights))
	}

	// Oldest first for charting.
	if !heights[0].TakenOn.Before(heights[1].TakenOn) {
		t.Fatalf("expected oldest height first")
	}
	if heights[0].Value != 52.3 {
		t.Fatalf("expected first height 52.3, got %v", heights[0].Value)
	}

	if err := DeleteMeasurement(ctx, first); err != nil {
		t.Fatalf("DeleteMeasurement failed: %v", err)
	}

	heights, err = ListMeasurementsByMetric(ctx, childID, growth.MetricHeight)
	if err != nil {
		t.Fatalf("ListMeasurementsByMetric failed: %v", err)
	}
	if len(heights) != 1 {
		t.Fatalf("expected 1 height after delete, got %d", len(heights))
	}
}

func TestCreateMeasurementRejectsInvalidValues(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	childID := mustCreateChild(t, "Noah", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), growth.SexMale)

	cases := []struct {
		name  string
		input CreateMeasurementInput
	}{
		{"zero value", CreateMeasurementInput{ChildID: childID, Metric: growth.MetricHeight, Value: 0, TakenOn: time.Now()}},
		{"negative value", CreateMeasurementInput{ChildID: childID, Metric: growth.MetricWeight, Value: -3.2, TakenOn: time.Now()}},
		{"unknown metric", CreateMeasurementInput{ChildID: childID, Metric: "girth", Value: 10, TakenOn: time.Now()}},
	}

	for _, tc := range cases {
		if _, err := CreateMeasurement(ctx, tc.input); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestGetMeasurementExtremes(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	childID := mustCreateChild(t, "Noah", time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), growth.SexMale)

	mustCreateMeasurement(t, childID, growth.MetricHeight, 75.0, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))
	mustCreateMeasurement(t, childID, growth.MetricHeight, 80.2, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
	mustCreateMeasurement(t, childID, growth.MetricHeight, 84.9, time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC))
	mustCreateMeasurement(t, childID, growth.MetricWeight, 9.8, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))

	// Outside the window, must not influence extremes.
	mustCreateMeasurement(t, childID, growth.MetricHeight, 70.0, time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC))

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	extremes, err := GetMeasurementExtremes(ctx, childID, from, to)
	if err != nil {
		t.Fatalf("GetMeasurementExtremes failed: %v", err)
	}
	if len(extremes) != 2 {
		t.Fatalf("expected extremes for 2 metrics, got %d", len(extremes))
	}

	for _, e := range extremes {
		switch e.Metric {
		case growth.MetricHeight:
			if e.First.Value != 75.0 || e.Latest.Value != 84.9 {
				t.Fatalf("expected height extremes 75.0/84.9, got %v/%v", e.First.Value, e.Latest.Value)
			}
		case growth.MetricWeight:
			if e.First.Value != 9.8 || e.Latest.Value != 9.8 {
				t.Fatalf("expected single weight measurement as both extremes, got %v/%v", e.First.Value, e.Latest.Value)
			}
		default:
			t.Fatalf("unexpected metric %q", e.Metric)
		}
	}
}
