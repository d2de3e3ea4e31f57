// SPDX-FileCopyrightText: 2025 Sproutbook Authors
// SPDX-License-Identifier: Apache-2.0

package growth

import (
	"testing"
	"time"
)

func TestAgeInMonths(t *testing.T) {
	t.Parallel()

	birth := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{name: "same month", at: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "next month", at: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), want: 1},
		{name: "one year", at: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), want: 12},
		{name: "year and a half", at: time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC), want: 18},
		{name: "before birth clamps to zero", at: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := AgeInMonths(birth, tt.at); got != tt.want {
				t.Fatalf("expected %d months, got %d", tt.want, got)
			}
		})
	}
}
