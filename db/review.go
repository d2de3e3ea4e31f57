/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sproutbook/sproutbook/growth"
)

// GrowthDelta summarizes how one metric changed over a review year.
type GrowthDelta struct {
	Metric     growth.Metric
	FirstValue float64
	FirstDate  time.Time
	LastValue  float64
	LastDate   time.Time
}

// Change returns the signed difference between the last and first
// values of the year.
func (d GrowthDelta) Change() float64 {
	return d.LastValue - d.FirstValue
}

// SlideshowItemKind distinguishes slideshow moments.
type SlideshowItemKind string

// SlideshowItemKind values.
const (
	SlideEntry     SlideshowItemKind = "entry"
	SlideMilestone SlideshowItemKind = "milestone"
)

// SlideshowItem is one moment in the year-in-review slideshow, either a
// journal entry or a milestone, in chronological order.
type SlideshowItem struct {
	Kind      SlideshowItemKind
	Date      time.Time
	Title     string
	Body      string
	Favorite  bool
	EntryID   *uuid.UUID
	MediaKind *MediaKind
}

// YearInReview aggregates a child's year for the review page.
type YearInReview struct {
	Child           *Child
	Year            int
	EntryCount      int
	PhotoCount      int
	VideoCount      int
	MilestoneCount  int
	FavoriteEntries []EntrySummary
	GrowthDeltas    []GrowthDelta
	Slideshow       []SlideshowItem
}

// GetYearInReview builds the year-in-review summary for a child. The
// review covers the calendar year in UTC.
func GetYearInReview(ctx context.Context, childID string, year int) (*YearInReview, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	child, err := GetChild(ctx, childID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, fmt.Errorf("child not found")
	}

	review := &YearInReview{Child: child, Year: year}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	countsQuery := `
		SELECT
			(SELECT COUNT(*) FROM entries e
				WHERE e.child_id = $1 AND e.entry_date BETWEEN $2 AND $3),
			(SELECT COUNT(*) FROM entry_media em
				JOIN entries e ON e.id = em.entry_id
				WHERE e.child_id = $1 AND e.entry_date BETWEEN $2 AND $3 AND em.kind = 'photo'),
			(SELECT COUNT(*) FROM entry_media em
				JOIN entries e ON e.id = em.entry_id
				WHERE e.child_id = $1 AND e.entry_date BETWEEN $2 AND $3 AND em.kind = 'video'),
			(SELECT COUNT(*) FROM milestones m
				WHERE m.child_id = $1 AND m.achieved_on BETWEEN $2 AND $3)
	`
	err = pool.QueryRow(ctx, countsQuery, childID, from, to).Scan(
		&review.EntryCount, &review.PhotoCount, &review.VideoCount, &review.MilestoneCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count year activity: %w", err)
	}

	favorites, err := ListEntries(ctx, EntryFilter{ChildID: &childID, Year: &year, FavoritesOnly: true})
	if err != nil {
		return nil, err
	}
	review.FavoriteEntries = favorites

	extremes, err := GetMeasurementExtremes(ctx, childID, from, to)
	if err != nil {
		return nil, err
	}
	for _, e := range extremes {
		// A single measurement in the year has no delta to report.
		if e.First.ID == e.Latest.ID {
			continue
		}
		review.GrowthDeltas = append(review.GrowthDeltas, GrowthDelta{
			Metric:     e.Metric,
			FirstValue: e.First.Value,
			FirstDate:  e.First.TakenOn,
			LastValue:  e.Latest.Value,
			LastDate:   e.Latest.TakenOn,
		})
	}

	slideshow, err := buildSlideshow(ctx, childID, year)
	if err != nil {
		return nil, err
	}
	review.Slideshow = slideshow

	return review, nil
}

// buildSlideshow interleaves the year's entries and milestones into a
// single chronological sequence.
func buildSlideshow(ctx context.Context, childID string, year int) ([]SlideshowItem, error) {
	entries, err := ListEntries(ctx, EntryFilter{ChildID: &childID, Year: &year})
	if err != nil {
		return nil, err
	}

	milestones, err := ListMilestones(ctx, childID)
	if err != nil {
		return nil, err
	}

	var items []SlideshowItem
	for _, e := range entries {
		entryID := e.ID
		items = append(items, SlideshowItem{
			Kind:     SlideEntry,
			Date:     e.EntryDate,
			Title:    e.Title,
			Body:     e.Body,
			Favorite: e.Favorite,
			EntryID:  &entryID,
		})
	}
	for _, m := range milestones {
		if m.AchievedOn.Year() != year {
			continue
		}
		body := ""
		if m.Note != nil {
			body = *m.Note
		}
		items = append(items, SlideshowItem{
			Kind:  SlideMilestone,
			Date:  m.AchievedOn,
			Title: m.Title,
			Body:  body,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})

	return items, nil
}
