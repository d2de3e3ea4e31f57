/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/sproutbook/sproutbook/db"
)

// CapsulesPage lists a child's time capsules with their countdowns.
func CapsulesPage(c flamego.Context, s session.Session, t template.Template, data template.Data) {
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

	capsules, err := db.ListTimeCapsules(ctx, childID)
	if err != nil {
		log.Printf("Error fetching capsules: %v", err)
		data["Error"] = "Failed to load time capsules"
	} else {
		data["Capsules"] = capsules

		now := time.Now().UTC().Truncate(24 * time.Hour)
		countdowns := make(map[string]int, len(capsules))
		for _, capsule := range capsules {
			unlock := capsule.UnlockOn.UTC().Truncate(24 * time.Hour)
			days := 0
			if now.Before(unlock) {
				days = int(unlock.Sub(now) / (24 * time.Hour))
			}
			countdowns[capsule.ID.String()] = days
		}
		data["Countdowns"] = countdowns
	}

	data["Child"] = child
	data["IsChildren"] = true
	t.HTML(http.StatusOK, "capsules")
}

// SealCapsule handles the capsule sealing form.
func SealCapsule(c flamego.Context, s session.Session) {
	ctx := c.Request().Context()
	childID := c.Param("id")
	redirect := "/children/" + childID + "/capsules"

	user, err := resolveSessionUser(ctx, s)
	if err != nil {
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing capsule form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	title := strings.TrimSpace(c.Request().Form.Get("title"))
	body := strings.TrimSpace(c.Request().Form.Get("body"))
	if title == "" || body == "" {
		SetErrorFlash(s, "Title and letter text are required")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	// The unlock date comes either from an explicit date or a "Nth
	// birthday" shortcut.
	var unlockOn time.Time
	if birthdayStr := strings.TrimSpace(c.Request().Form.Get("birthday")); birthdayStr != "" {
		child, err := db.GetChild(ctx, childID)
		if err != nil || child == nil {
			SetErrorFlash(s, "Child not found")
			c.Redirect("/children", http.StatusSeeOther)
			return
		}
		birthday, err := strconv.Atoi(birthdayStr)
		if err != nil || birthday < 1 {
			SetErrorFlash(s, "Invalid birthday")
			c.Redirect(redirect, http.StatusSeeOther)
			return
		}
		unlockOn = db.UnlockOnBirthday(child.DateOfBirth, birthday)
	} else {
		parsed, err := parseDateField(c.Request().Form.Get("unlock_on"))
		if err != nil {
			SetErrorFlash(s, "Please provide an unlock date")
			c.Redirect(redirect, http.StatusSeeOther)
			return
		}
		unlockOn = parsed
	}

	_, err = db.SealTimeCapsule(ctx, db.SealTimeCapsuleInput{
		ChildID:  childID,
		AuthorID: user.ID,
		Title:    title,
		Body:     body,
		UnlockOn: unlockOn,
	})
	if err != nil {
		if errors.Is(err, db.ErrUnlockDateNotFuture) {
			SetErrorFlash(s, "The unlock date must be in the future")
		} else {
			log.Printf("Error sealing capsule: %v", err)
			SetErrorFlash(s, "Failed to seal time capsule")
		}
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Time capsule sealed")
	c.Redirect(redirect, http.StatusSeeOther)
}

// OpenCapsule displays an unlocked capsule's letter.
func OpenCapsule(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	ctx := c.Request().Context()
	childID := c.Param("id")
	capsuleID := c.Param("cid")
	redirect := "/children/" + childID + "/capsules"

	capsule, err := db.OpenTimeCapsule(ctx, capsuleID)
	if err != nil {
		if errors.Is(err, db.ErrCapsuleLocked) {
			SetInfoFlash(s, "This capsule is still sealed")
		} else {
			log.Printf("Error opening capsule %s: %v", capsuleID, err)
			SetErrorFlash(s, "Failed to open capsule")
		}
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}
	if capsule == nil {
		SetErrorFlash(s, "Capsule not found")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	if author, err := db.GetUserByID(ctx, capsule.AuthorID.String()); err == nil && author != nil {
		data["AuthorName"] = author.DisplayName
	}

	data["Capsule"] = capsule
	data["ChildID"] = childID
	data["IsChildren"] = true
	t.HTML(http.StatusOK, "capsule_view")
}

// DeleteCapsule removes a capsule; only its author may do so.
func DeleteCapsule(c flamego.Context, s session.Session) {
	childID := c.Param("id")
	capsuleID := c.Param("cid")
	redirect := "/children/" + childID + "/capsules"

	user, err := resolveSessionUser(c.Request().Context(), s)
	if err != nil {
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	if err := db.DeleteTimeCapsule(c.Request().Context(), capsuleID, user.ID); err != nil {
		log.Printf("Error deleting capsule %s: %v", capsuleID, err)
		SetErrorFlash(s, "Only the author can delete a capsule")
	} else {
		SetSuccessFlash(s, "Capsule deleted")
	}

	c.Redirect(redirect, http.StatusSeeOther)
}
