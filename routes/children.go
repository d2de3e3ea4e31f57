/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/sproutbook/sproutbook/db"
	"github.com/sproutbook/sproutbook/growth"
)

func parseDateField(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errMissingDate
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errInvalidDate
	}

	return parsed, nil
}

func optionalFormValue(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func parseChildForm(c flamego.Context) (db.CreateChildInput, error) {
	var input db.CreateChildInput

	if err := c.Request().ParseForm(); err != nil {
		return input, err
	}

	input.Name = strings.TrimSpace(c.Request().Form.Get("name"))

	dob, err := parseDateField(c.Request().Form.Get("date_of_birth"))
	if err != nil {
		return input, err
	}
	input.DateOfBirth = dob

	switch c.Request().Form.Get("sex") {
	case "male":
		input.Sex = growth.SexMale
	case "female":
		input.Sex = growth.SexFemale
	default:
		return input, errInvalidValue
	}

	input.Color = optionalFormValue(c.Request().Form.Get("color"))
	input.Note = optionalFormValue(c.Request().Form.Get("note"))

	return input, nil
}

// ListChildrenPage displays all child profiles with activity counts.
func ListChildrenPage(c flamego.Context, t template.Template, data template.Data) {
	children, err := db.ListChildren(c.Request().Context())
	if err != nil {
		log.Printf("Error fetching children: %v", err)
		data["Error"] = "Failed to load children"
	} else {
		data["Children"] = children

		now := time.Now()
		ages := make(map[string]string, len(children))
		for i := range children {
			ages[children[i].ID.String()] = children[i].AgeDisplay(now)
		}
		data["ChildAges"] = ages
	}

	data["IsChildren"] = true
	t.HTML(http.StatusOK, "children")
}

// NewChildForm renders the add child form.
func NewChildForm(c flamego.Context, t template.Template, data template.Data) {
	data["IsChildren"] = true
	t.HTML(http.StatusOK, "child_new")
}

// CreateChild handles child profile creation.
func CreateChild(c flamego.Context, s session.Session) {
	input, err := parseChildForm(c)
	if err != nil {
		log.Printf("Error parsing child form: %v", err)
		SetErrorFlash(s, "Please fill in name, date of birth, and sex")
		c.Redirect("/children/new", http.StatusSeeOther)
		return
	}
	if input.Name == "" {
		SetErrorFlash(s, "Name is required")
		c.Redirect("/children/new", http.StatusSeeOther)
		return
	}

	childID, err := db.CreateChild(c.Request().Context(), input)
	if err != nil {
		log.Printf("Error creating child: %v", err)
		SetErrorFlash(s, "Failed to create child profile")
		c.Redirect("/children/new", http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Child profile created")
	c.Redirect("/children/"+childID, http.StatusSeeOther)
}

// ViewChild displays a child profile with measurements, milestones, and
// recent entries.
func ViewChild(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	ctx := c.Request().Context()
	childID := c.Param("id")

	child, err := db.GetChild(ctx, childID)
	if err != nil || child == nil {
		if err != nil {
			log.Printf("Error fetching child %s: %v", childID, err)
		}
		SetErrorFlash(s, "Child not found")
		c.Redirect("/children", http.StatusSeeOther)
		return
	}

	now := time.Now()
	data["Child"] = child
	data["ChildAge"] = child.AgeDisplay(now)
	data["IsChildren"] = true

	measurements, err := db.ListMeasurements(ctx, childID)
	if err != nil {
		log.Printf("Error fetching measurements: %v", err)
	} else {
		data["Measurements"] = measurements
		data["MeasurementBands"] = classifyMeasurements(child, measurements, growth.StandardWHO)
	}

	milestones, err := db.ListMilestones(ctx, childID)
	if err != nil {
		log.Printf("Error fetching milestones: %v", err)
	} else {
		data["Milestones"] = milestones
	}

	suggestions, err := db.ListMilestoneSuggestions(ctx, childID, child.AgeInMonthsAt(now))
	if err != nil {
		log.Printf("Error fetching milestone suggestions: %v", err)
	} else {
		data["Suggestions"] = suggestions
	}

	entries, err := db.ListEntries(ctx, db.EntryFilter{ChildID: &childID, Limit: 10})
	if err != nil {
		log.Printf("Error fetching entries: %v", err)
	} else {
		data["Entries"] = entries
	}

	capsules, err := db.ListTimeCapsules(ctx, childID)
	if err != nil {
		log.Printf("Error fetching capsules: %v", err)
	} else {
		data["Capsules"] = capsules
	}

	t.HTML(http.StatusOK, "child_view")
}

// EditChildForm renders the edit form for a child profile.
func EditChildForm(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	childID := c.Param("id")

	child, err := db.GetChild(c.Request().Context(), childID)
	if err != nil || child == nil {
		if err != nil {
			log.Printf("Error fetching child %s: %v", childID, err)
		}
		SetErrorFlash(s, "Child not found")
		c.Redirect("/children", http.StatusSeeOther)
		return
	}

	data["Child"] = child
	data["IsChildren"] = true
	t.HTML(http.StatusOK, "child_edit")
}

// UpdateChild handles the child edit form submission.
func UpdateChild(c flamego.Context, s session.Session) {
	childID := c.Param("id")

	input, err := parseChildForm(c)
	if err != nil || input.Name == "" {
		if err != nil {
			log.Printf("Error parsing child form: %v", err)
		}
		SetErrorFlash(s, "Please fill in name, date of birth, and sex")
		c.Redirect("/children/"+childID+"/edit", http.StatusSeeOther)
		return
	}

	if err := db.UpdateChild(c.Request().Context(), childID, input); err != nil {
		log.Printf("Error updating child %s: %v", childID, err)
		SetErrorFlash(s, "Failed to update child profile")
		c.Redirect("/children/"+childID+"/edit", http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Child profile updated")
	c.Redirect("/children/"+childID, http.StatusSeeOther)
}

// DeleteChild removes a child profile and all its records.
func DeleteChild(c flamego.Context, s session.Session) {
	childID := c.Param("id")

	if err := db.DeleteChild(c.Request().Context(), childID); err != nil {
		log.Printf("Error deleting child %s: %v", childID, err)
		SetErrorFlash(s, "Failed to delete child profile")
		c.Redirect("/children/"+childID, http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Child profile deleted")
	c.Redirect("/children", http.StatusSeeOther)
}
