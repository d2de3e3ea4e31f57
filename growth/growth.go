/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package growth classifies child growth measurements against
// population reference curves (WHO and Singapore standards).
//
// The package is pure and stateless: classification is a table lookup
// with no I/O, and identical inputs always produce identical results.
package growth

import "fmt"

// Sex represents biological sex for growth reference tables.
type Sex string

// Sex values supported by the reference tables.
const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Metric represents a tracked growth measurement type.
type Metric string

// Metric values supported by the reference tables.
const (
	MetricHeight            Metric = "height"
	MetricWeight            Metric = "weight"
	MetricHeadCircumference Metric = "head_circumference"
)

// Unit returns the measurement unit for the metric.
func (m Metric) Unit() string {
	if m == MetricWeight {
		return "kg"
	}
	return "cm"
}

// DisplayName returns a human-readable name for the metric.
func (m Metric) DisplayName() string {
	switch m {
	case MetricHeight:
		return "Height"
	case MetricWeight:
		return "Weight"
	case MetricHeadCircumference:
		return "Head circumference"
	}
	return string(m)
}

// Standard represents the reference population used for comparison.
type Standard string

// Standard values supported by the reference tables.
const (
	StandardWHO       Standard = "who"
	StandardSingapore Standard = "singapore"
)

// DisplayName returns a human-readable name for the standard.
func (s Standard) DisplayName() string {
	switch s {
	case StandardWHO:
		return "WHO"
	case StandardSingapore:
		return "Singapore"
	}
	return string(s)
}

// Band is one of six ordered percentile classification buckets.
// Higher values always correspond to higher measurements.
type Band int

// Band values, ordered from lowest to highest.
const (
	BandBelow3rd Band = iota
	Band3rdTo15th
	Band15thTo50th
	Band50thTo85th
	Band85thTo97th
	BandAbove97th
)

// Label returns the display label for the band.
func (b Band) Label() string {
	switch b {
	case BandBelow3rd:
		return "Below 3rd percentile"
	case Band3rdTo15th:
		return "3rd-15th percentile"
	case Band15thTo50th:
		return "15th-50th percentile"
	case Band50thTo85th:
		return "50th-85th percentile"
	case Band85thTo97th:
		return "85th-97th percentile"
	case BandAbove97th:
		return "Above 97th percentile"
	}
	return "Unknown"
}

// Breakpoint holds the five percentile boundary values for one
// tabulated age. Within a table, AgeMonths is strictly increasing and
// P3 <= P15 <= P50 <= P85 <= P97.
type Breakpoint struct {
	AgeMonths int
	P3        float64
	P15       float64
	P50       float64
	P85       float64
	P97       float64
}

// Result is the derived classification of a single measurement. It is
// computed on demand and never persisted.
type Result struct {
	Band              Band
	WithinNormalRange bool
	Description       string
}

// Classify maps a measurement to a percentile band using the reference
// table for (metric, sex, standard).
//
// Percentile boundaries are read from the single breakpoint nearest to
// ageMonths; ages are not interpolated. When two breakpoints are
// equidistant, the lower age wins. Ages beyond the oldest breakpoint
// use the oldest breakpoint, and negative ages are clamped to zero.
//
// An error is returned only for unrecognized enum values.
func Classify(value float64, ageMonths int, sex Sex, metric Metric, standard Standard) (Result, error) {
	table, err := lookupTable(metric, sex, standard)
	if err != nil {
		return Result{}, err
	}

	if ageMonths < 0 {
		ageMonths = 0
	}

	bp := nearestBreakpoint(table, ageMonths)
	band := classifyValue(value, bp)

	return Result{
		Band:              band,
		WithinNormalRange: band != BandBelow3rd && band != BandAbove97th,
		Description:       describe(band, metric),
	}, nil
}

// classifyValue assigns a band by comparing the value against the
// breakpoint boundaries in ascending order. Bands are closed on the
// lower side and open on the upper side.
func classifyValue(value float64, bp Breakpoint) Band {
	switch {
	case value < bp.P3:
		return BandBelow3rd
	case value < bp.P15:
		return Band3rdTo15th
	case value < bp.P50:
		return Band15thTo50th
	case value < bp.P85:
		return Band50thTo85th
	case value < bp.P97:
		return Band85thTo97th
	}
	return BandAbove97th
}

// nearestBreakpoint returns the breakpoint whose age is closest to
// ageMonths, preferring the lower age on ties. The table must be
// non-empty and sorted by age ascending.
func nearestBreakpoint(table []Breakpoint, ageMonths int) Breakpoint {
	best := table[0]
	bestDist := distance(best.AgeMonths, ageMonths)

	for _, bp := range table[1:] {
		if d := distance(bp.AgeMonths, ageMonths); d < bestDist {
			best = bp
			bestDist = d
		}
	}

	return best
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func describe(band Band, metric Metric) string {
	name := metric.DisplayName()

	switch band {
	case BandBelow3rd:
		return fmt.Sprintf("%s is below the typical range for age. Consider discussing with your pediatrician.", name)
	case BandAbove97th:
		return fmt.Sprintf("%s is above the typical range for age. Consider discussing with your pediatrician.", name)
	}

	return fmt.Sprintf("%s is within the typical range for age (%s).", name, band.Label())
}

// ReferenceCurve returns the reference breakpoints for (metric, sex,
// standard), sorted by age ascending. The returned slice is a copy and
// may be modified freely. Charts use this to draw percentile curves.
func ReferenceCurve(metric Metric, sex Sex, standard Standard) ([]Breakpoint, error) {
	table, err := lookupTable(metric, sex, standard)
	if err != nil {
		return nil, err
	}

	curve := make([]Breakpoint, len(table))
	copy(curve, table)

	return curve, nil
}

// lookupTable selects the reference table for (metric, sex, standard).
func lookupTable(metric Metric, sex Sex, standard Standard) ([]Breakpoint, error) {
	var tables map[Metric]map[Sex][]Breakpoint

	switch standard {
	case StandardWHO:
		tables = whoTables
	case StandardSingapore:
		tables = singaporeTables
	default:
		return nil, fmt.Errorf("unknown standard %q", standard)
	}

	bySex, ok := tables[metric]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q", metric)
	}

	table, ok := bySex[sex]
	if !ok {
		return nil, fmt.Errorf("unknown sex %q", sex)
	}

	return table, nil
}
