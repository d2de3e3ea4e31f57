/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/sproutbook/sproutbook/db"
)

// Home renders the family dashboard: children, recent entries, and
// capsules that have come due.
func Home(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	ctx := c.Request().Context()
	now := time.Now()

	children, err := db.ListChildren(ctx)
	if err != nil {
		log.Printf("Error fetching children: %v", err)
		data["Error"] = "Failed to load children"
	} else {
		data["Children"] = children

		ages := make(map[string]string, len(children))
		for i := range children {
			ages[children[i].ID.String()] = children[i].AgeDisplay(now)
		}
		data["ChildAges"] = ages
	}

	recent, err := db.ListEntries(ctx, db.EntryFilter{Limit: 5})
	if err != nil {
		log.Printf("Error fetching recent entries: %v", err)
	} else {
		data["RecentEntries"] = recent
	}

	// Surface capsules that have unlocked but were never opened.
	var due []db.CapsuleSummary
	for i := range children {
		capsules, err := db.ListTimeCapsules(ctx, children[i].ID.String())
		if err != nil {
			log.Printf("Error fetching capsules for child %s: %v", children[i].ID, err)
			continue
		}
		for _, capsule := range capsules {
			unlocked := !now.UTC().Truncate(24 * time.Hour).Before(capsule.UnlockOn.UTC().Truncate(24 * time.Hour))
			if unlocked && capsule.OpenedAt == nil {
				due = append(due, capsule)
			}
		}
	}
	data["DueCapsules"] = due

	if user, err := resolveSessionUser(ctx, s); err == nil {
		draft, err := db.GetEntryDraft(ctx, user.ID, nil)
		if err != nil {
			log.Printf("Error fetching draft: %v", err)
		} else if draft != nil {
			data["HasDraft"] = true
		}
	}

	data["IsHome"] = true
	t.HTML(http.StatusOK, "home")
}
