/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

// MilestoneDefinition represents a catalog milestone to be synced to
// the database.
type MilestoneDefinition struct {
	Title             string
	Category          MilestoneCategory
	TypicalFromMonths int
	TypicalToMonths   int
	SortOrder         int
}

// GetMilestoneCatalog returns the built-in milestone suggestions.
// This is the authoritative source of truth for the catalog; rows in
// milestone_suggestions are overwritten from here on every sync.
func GetMilestoneCatalog() []MilestoneDefinition {
	return []MilestoneDefinition{
		// ===== SOCIAL =====
		{Title: "First smile", Category: MilestoneSocial, TypicalFromMonths: 1, TypicalToMonths: 3, SortOrder: 10},
		{Title: "Laughs out loud", Category: MilestoneSocial, TypicalFromMonths: 3, TypicalToMonths: 5, SortOrder: 20},
		{Title: "Plays peek-a-boo", Category: MilestoneSocial, TypicalFromMonths: 6, TypicalToMonths: 10, SortOrder: 30},
		{Title: "Waves bye-bye", Category: MilestoneSocial, TypicalFromMonths: 8, TypicalToMonths: 12, SortOrder: 40},
		{Title: "Plays alongside other children", Category: MilestoneSocial, TypicalFromMonths: 18, TypicalToMonths: 30, SortOrder: 50},

		// ===== MOTOR =====
		{Title: "Holds head up", Category: MilestoneMotor, TypicalFromMonths: 2, TypicalToMonths: 4, SortOrder: 110},
		{Title: "Rolls over", Category: MilestoneMotor, TypicalFromMonths: 3, TypicalToMonths: 6, SortOrder: 120},
		{Title: "Sits without support", Category: MilestoneMotor, TypicalFromMonths: 5, TypicalToMonths: 9, SortOrder: 130},
		{Title: "Crawls", Category: MilestoneMotor, TypicalFromMonths: 6, TypicalToMonths: 11, SortOrder: 140},
		{Title: "Pulls to stand", Category: MilestoneMotor, TypicalFromMonths: 8, TypicalToMonths: 12, SortOrder: 150},
		{Title: "First steps", Category: MilestoneMotor, TypicalFromMonths: 9, TypicalToMonths: 18, SortOrder: 160},
		{Title: "Walks steadily", Category: MilestoneMotor, TypicalFromMonths: 12, TypicalToMonths: 18, SortOrder: 170},
		{Title: "Climbs stairs with help", Category: MilestoneMotor, TypicalFromMonths: 16, TypicalToMonths: 24, SortOrder: 180},
		{Title: "Kicks a ball", Category: MilestoneMotor, TypicalFromMonths: 18, TypicalToMonths: 30, SortOrder: 190},

		// ===== LANGUAGE =====
		{Title: "Coos and gurgles", Category: MilestoneLanguage, TypicalFromMonths: 1, TypicalToMonths: 4, SortOrder: 210},
		{Title: "Babbles", Category: MilestoneLanguage, TypicalFromMonths: 4, TypicalToMonths: 8, SortOrder: 220},
		{Title: "First word", Category: MilestoneLanguage, TypicalFromMonths: 9, TypicalToMonths: 14, SortOrder: 230},
		{Title: "Says mama or dada", Category: MilestoneLanguage, TypicalFromMonths: 9, TypicalToMonths: 14, SortOrder: 240},
		{Title: "Points at things", Category: MilestoneLanguage, TypicalFromMonths: 10, TypicalToMonths: 16, SortOrder: 250},
		{Title: "Two-word sentences", Category: MilestoneLanguage, TypicalFromMonths: 18, TypicalToMonths: 30, SortOrder: 260},

		// ===== COGNITIVE =====
		{Title: "Follows moving objects with eyes", Category: MilestoneCognitive, TypicalFromMonths: 1, TypicalToMonths: 4, SortOrder: 310},
		{Title: "Reaches for toys", Category: MilestoneCognitive, TypicalFromMonths: 3, TypicalToMonths: 6, SortOrder: 320},
		{Title: "Finds hidden objects", Category: MilestoneCognitive, TypicalFromMonths: 7, TypicalToMonths: 12, SortOrder: 330},
		{Title: "Stacks two blocks", Category: MilestoneCognitive, TypicalFromMonths: 12, TypicalToMonths: 20, SortOrder: 340},
		{Title: "Pretend play", Category: MilestoneCognitive, TypicalFromMonths: 18, TypicalToMonths: 30, SortOrder: 350},

		// ===== OTHER =====
		{Title: "First tooth", Category: MilestoneOther, TypicalFromMonths: 4, TypicalToMonths: 12, SortOrder: 410},
		{Title: "First solid food", Category: MilestoneOther, TypicalFromMonths: 4, TypicalToMonths: 8, SortOrder: 420},
		{Title: "Sleeps through the night", Category: MilestoneOther, TypicalFromMonths: 3, TypicalToMonths: 12, SortOrder: 430},
		{Title: "First haircut", Category: MilestoneOther, TypicalFromMonths: 6, TypicalToMonths: 24, SortOrder: 440},
		{Title: "First birthday", Category: MilestoneOther, TypicalFromMonths: 12, TypicalToMonths: 12, SortOrder: 450},
	}
}
