/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"log"
	"net/http"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"

	"github.com/sproutbook/sproutbook/db"
)

// RecordMilestone records a milestone for a child, either picked from
// the suggestions catalog or entered freely.
func RecordMilestone(c flamego.Context, s session.Session) {
	childID := c.Param("id")
	redirect := "/children/" + childID

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing milestone form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	title := strings.TrimSpace(c.Request().Form.Get("title"))
	if title == "" {
		SetErrorFlash(s, "Milestone title is required")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	achievedOn, err := parseDateField(c.Request().Form.Get("achieved_on"))
	if err != nil {
		SetErrorFlash(s, "Please provide the achievement date")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	category := db.MilestoneCategory(c.Request().Form.Get("category"))
	if category == "" {
		category = db.MilestoneOther
	}

	if _, err := db.CreateMilestone(c.Request().Context(), db.CreateMilestoneInput{
		ChildID:    childID,
		Title:      title,
		Category:   category,
		AchievedOn: achievedOn,
		Note:       optionalFormValue(c.Request().Form.Get("note")),
	}); err != nil {
		log.Printf("Error recording milestone: %v", err)
		SetErrorFlash(s, "Failed to record milestone")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Milestone recorded")
	c.Redirect(redirect, http.StatusSeeOther)
}

// UpdateMilestone updates a milestone's date and note.
func UpdateMilestone(c flamego.Context, s session.Session) {
	childID := c.Param("id")
	milestoneID := c.Param("mid")
	redirect := "/children/" + childID

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing milestone form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	achievedOn, err := parseDateField(c.Request().Form.Get("achieved_on"))
	if err != nil {
		SetErrorFlash(s, "Please provide the achievement date")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	note := optionalFormValue(c.Request().Form.Get("note"))

	if err := db.UpdateMilestone(c.Request().Context(), milestoneID, achievedOn, note); err != nil {
		log.Printf("Error updating milestone %s: %v", milestoneID, err)
		SetErrorFlash(s, "Failed to update milestone")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Milestone updated")
	c.Redirect(redirect, http.StatusSeeOther)
}

// DeleteMilestone removes a recorded milestone.
func DeleteMilestone(c flamego.Context, s session.Session) {
	childID := c.Param("id")
	milestoneID := c.Param("mid")

	if err := db.DeleteMilestone(c.Request().Context(), milestoneID); err != nil {
		log.Printf("Error deleting milestone %s: %v", milestoneID, err)
		SetErrorFlash(s, "Failed to delete milestone")
	} else {
		SetSuccessFlash(s, "Milestone deleted")
	}

	c.Redirect("/children/"+childID, http.StatusSeeOther)
}
