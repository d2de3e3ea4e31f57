/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "time"

// AgeInMonths returns the whole-month age at the given time for a child
// born at birth. The result is clamped to zero, so a measurement dated
// before the recorded birth date is treated as a newborn measurement.
func AgeInMonths(birth, at time.Time) int {
	months := (at.Year()-birth.Year())*12 + int(at.Month()) - int(birth.Month())
	if months < 0 {
		return 0
	}
	return months
}
