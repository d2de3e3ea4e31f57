/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/sproutbook/sproutbook/db"
)

func parseOptionalChildID(value string) *uuid.UUID {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return nil
	}

	return &id
}

// ListEntriesPage renders the journal with optional child, year, and
// favorites filters.
func ListEntriesPage(c flamego.Context, t template.Template, data template.Data) {
	ctx := c.Request().Context()

	var filter db.EntryFilter

	if childID := strings.TrimSpace(c.Query("child")); childID != "" {
		filter.ChildID = &childID
		data["FilterChild"] = childID
	}
	if yearStr := strings.TrimSpace(c.Query("year")); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			filter.Year = &year
			data["FilterYear"] = year
		}
	}
	if c.Query("favorites") == "1" {
		filter.FavoritesOnly = true
		data["FilterFavorites"] = true
	}

	entries, err := db.ListEntries(ctx, filter)
	if err != nil {
		log.Printf("Error fetching entries: %v", err)
		data["Error"] = "Failed to load journal entries"
	} else {
		data["Entries"] = entries
	}

	children, err := db.ListChildren(ctx)
	if err != nil {
		log.Printf("Error fetching children: %v", err)
	} else {
		data["Children"] = children
	}

	data["IsJournal"] = true
	t.HTML(http.StatusOK, "entries")
}

// NewEntryForm renders the entry composer, restoring any autosaved
// draft for the selected child.
func NewEntryForm(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	ctx := c.Request().Context()

	children, err := db.ListChildren(ctx)
	if err != nil {
		log.Printf("Error fetching children: %v", err)
	} else {
		data["Children"] = children
	}

	childID := parseOptionalChildID(c.Query("child"))
	if childID != nil {
		data["SelectedChild"] = childID.String()
	}

	if user, err := resolveSessionUser(ctx, s); err == nil {
		draft, err := db.GetEntryDraft(ctx, user.ID, childID)
		if err != nil {
			log.Printf("Error fetching draft: %v", err)
		} else if draft != nil {
			data["Draft"] = draft
		}
	}

	data["Today"] = time.Now().Format("2006-01-02")
	data["IsJournal"] = true
	t.HTML(http.StatusOK, "entry_new")
}

// CreateEntry handles the entry composer submission and clears the
// matching draft.
func CreateEntry(c flamego.Context, s session.Session) {
	ctx := c.Request().Context()

	user, err := resolveSessionUser(ctx, s)
	if err != nil {
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing entry form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/entries/new", http.StatusSeeOther)
		return
	}

	title := strings.TrimSpace(c.Request().Form.Get("title"))
	body := strings.TrimSpace(c.Request().Form.Get("body"))
	if title == "" || body == "" {
		SetErrorFlash(s, "Title and text are required")
		c.Redirect("/entries/new", http.StatusSeeOther)
		return
	}

	entryDate, err := parseDateField(c.Request().Form.Get("entry_date"))
	if err != nil {
		SetErrorFlash(s, "Please provide the entry date")
		c.Redirect("/entries/new", http.StatusSeeOther)
		return
	}

	childID := parseOptionalChildID(c.Request().Form.Get("child_id"))

	entryID, err := db.CreateEntry(ctx, db.CreateEntryInput{
		ChildID:   childID,
		AuthorID:  user.ID,
		Title:     title,
		Body:      body,
		EntryDate: entryDate,
	})
	if err != nil {
		log.Printf("Error creating entry: %v", err)
		SetErrorFlash(s, "Failed to save entry")
		c.Redirect("/entries/new", http.StatusSeeOther)
		return
	}

	if err := db.ClearEntryDraft(ctx, user.ID, childID); err != nil {
		log.Printf("Error clearing draft: %v", err)
	}

	SetSuccessFlash(s, "Entry saved")
	c.Redirect("/entries/"+entryID, http.StatusSeeOther)
}

// requireEntryAccess loads an entry and checks the session user may
// modify it. Parents and guardians can modify any entry; relatives
// only their own.
func requireEntryAccess(c flamego.Context, s session.Session, entryID string) (*db.Entry, bool) {
	ctx := c.Request().Context()

	user, err := resolveSessionUser(ctx, s)
	if err != nil {
		c.Redirect("/login", http.StatusSeeOther)
		return nil, false
	}

	entry, err := db.GetEntry(ctx, entryID)
	if err != nil || entry == nil {
		if err != nil {
			log.Printf("Error fetching entry %s: %v", entryID, err)
		}
		SetErrorFlash(s, "Entry not found")
		c.Redirect("/entries", http.StatusSeeOther)
		return nil, false
	}

	if !user.Role.CanEdit() && entry.AuthorID != user.ID {
		logAccessDenied(c, s, "not_entry_author", http.StatusSeeOther, "/entries/"+entryID)
		SetErrorFlash(s, "Only the author can change this entry")
		c.Redirect("/entries/"+entryID, http.StatusSeeOther)
		return nil, false
	}

	return entry, true
}

// ViewEntry displays a single journal entry with its media.
func ViewEntry(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	ctx := c.Request().Context()
	entryID := c.Param("id")

	entry, err := db.GetEntry(ctx, entryID)
	if err != nil || entry == nil {
		if err != nil {
			log.Printf("Error fetching entry %s: %v", entryID, err)
		}
		SetErrorFlash(s, "Entry not found")
		c.Redirect("/entries", http.StatusSeeOther)
		return
	}

	data["Entry"] = entry

	if entry.ChildID != nil {
		child, err := db.GetChild(ctx, entry.ChildID.String())
		if err != nil {
			log.Printf("Error fetching child: %v", err)
		} else if child != nil {
			data["Child"] = child
		}
	}

	if author, err := db.GetUserByID(ctx, entry.AuthorID.String()); err == nil && author != nil {
		data["AuthorName"] = author.DisplayName
	}

	media, err := db.ListEntryMedia(ctx, entryID)
	if err != nil {
		log.Printf("Error fetching entry media: %v", err)
	} else {
		data["Media"] = media
	}

	if user, err := resolveSessionUser(ctx, s); err == nil {
		data["CanModify"] = user.Role.CanEdit() || entry.AuthorID == user.ID
	}

	data["IsJournal"] = true
	t.HTML(http.StatusOK, "entry_view")
}

// EditEntryForm renders the edit form for an entry.
func EditEntryForm(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	entry, ok := requireEntryAccess(c, s, c.Param("id"))
	if !ok {
		return
	}

	data["Entry"] = entry
	data["IsJournal"] = true
	t.HTML(http.StatusOK, "entry_edit")
}

// UpdateEntry handles the entry edit submission.
func UpdateEntry(c flamego.Context, s session.Session) {
	entryID := c.Param("id")

	if _, ok := requireEntryAccess(c, s, entryID); !ok {
		return
	}

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing entry form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/entries/"+entryID+"/edit", http.StatusSeeOther)
		return
	}

	title := strings.TrimSpace(c.Request().Form.Get("title"))
	body := strings.TrimSpace(c.Request().Form.Get("body"))
	entryDate, err := parseDateField(c.Request().Form.Get("entry_date"))
	if title == "" || body == "" || err != nil {
		SetErrorFlash(s, "Title, text, and date are required")
		c.Redirect("/entries/"+entryID+"/edit", http.StatusSeeOther)
		return
	}

	if err := db.UpdateEntry(c.Request().Context(), entryID, title, body, entryDate); err != nil {
		log.Printf("Error updating entry %s: %v", entryID, err)
		SetErrorFlash(s, "Failed to update entry")
		c.Redirect("/entries/"+entryID+"/edit", http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Entry updated")
	c.Redirect("/entries/"+entryID, http.StatusSeeOther)
}

// ToggleFavorite flips the favorite flag on an entry.
func ToggleFavorite(c flamego.Context, s session.Session) {
	entryID := c.Param("id")

	if _, ok := requireEntryAccess(c, s, entryID); !ok {
		return
	}

	favorite, err := db.ToggleEntryFavorite(c.Request().Context(), entryID)
	if err != nil {
		log.Printf("Error toggling favorite on %s: %v", entryID, err)
		SetErrorFlash(s, "Failed to update favorite")
	} else if favorite {
		SetSuccessFlash(s, "Added to favorites")
	} else {
		SetInfoFlash(s, "Removed from favorites")
	}

	c.Redirect("/entries/"+entryID, http.StatusSeeOther)
}

// DeleteEntry removes an entry and its media references.
func DeleteEntry(c flamego.Context, s session.Session) {
	entryID := c.Param("id")

	if _, ok := requireEntryAccess(c, s, entryID); !ok {
		return
	}

	if err := db.DeleteEntry(c.Request().Context(), entryID); err != nil {
		log.Printf("Error deleting entry %s: %v", entryID, err)
		SetErrorFlash(s, "Failed to delete entry")
		c.Redirect("/entries/"+entryID, http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Entry deleted")
	c.Redirect("/entries", http.StatusSeeOther)
}

// AddEntryMedia attaches a photo or video reference to an entry.
func AddEntryMedia(c flamego.Context, s session.Session) {
	entryID := c.Param("id")

	if _, ok := requireEntryAccess(c, s, entryID); !ok {
		return
	}

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing media form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/entries/"+entryID, http.StatusSeeOther)
		return
	}

	kind := db.MediaKind(c.Request().Form.Get("kind"))
	location := strings.TrimSpace(c.Request().Form.Get("location"))
	if location == "" {
		SetErrorFlash(s, "Media location is required")
		c.Redirect("/entries/"+entryID, http.StatusSeeOther)
		return
	}

	position := 0
	if existing, err := db.ListEntryMedia(c.Request().Context(), entryID); err == nil {
		position = len(existing)
	}

	caption := optionalFormValue(c.Request().Form.Get("caption"))

	if _, err := db.AddEntryMedia(c.Request().Context(), entryID, kind, location, caption, position); err != nil {
		log.Printf("Error adding media to entry %s: %v", entryID, err)
		SetErrorFlash(s, "Failed to attach media")
	} else {
		SetSuccessFlash(s, "Media attached")
	}

	c.Redirect("/entries/"+entryID, http.StatusSeeOther)
}

// DeleteEntryMedia removes a media reference from an entry.
func DeleteEntryMedia(c flamego.Context, s session.Session) {
	entryID := c.Param("id")
	mediaID := c.Param("mid")

	if _, ok := requireEntryAccess(c, s, entryID); !ok {
		return
	}

	if err := db.DeleteEntryMedia(c.Request().Context(), mediaID); err != nil {
		log.Printf("Error deleting media %s: %v", mediaID, err)
		SetErrorFlash(s, "Failed to remove media")
	} else {
		SetSuccessFlash(s, "Media removed")
	}

	c.Redirect("/entries/"+entryID, http.StatusSeeOther)
}

// AutosaveDraft persists composer text without publishing. Called from
// the composer in the background; responds with no content.
func AutosaveDraft(c flamego.Context, s session.Session) {
	ctx := c.Request().Context()

	user, err := resolveSessionUser(ctx, s)
	if err != nil {
		c.ResponseWriter().WriteHeader(http.StatusUnauthorized)
		return
	}

	if err := c.Request().ParseForm(); err != nil {
		c.ResponseWriter().WriteHeader(http.StatusBadRequest)
		return
	}

	childID := parseOptionalChildID(c.Request().Form.Get("child_id"))
	title := c.Request().Form.Get("title")
	body := c.Request().Form.Get("body")

	var entryDate *time.Time
	if parsed, err := parseDateField(c.Request().Form.Get("entry_date")); err == nil {
		entryDate = &parsed
	}

	if strings.TrimSpace(title) == "" && strings.TrimSpace(body) == "" {
		if err := db.ClearEntryDraft(ctx, user.ID, childID); err != nil {
			log.Printf("Error clearing empty draft: %v", err)
		}
		c.ResponseWriter().WriteHeader(http.StatusNoContent)
		return
	}

	if err := db.SaveEntryDraft(ctx, user.ID, childID, title, body, entryDate); err != nil {
		log.Printf("Error autosaving draft: %v", err)
		c.ResponseWriter().WriteHeader(http.StatusInternalServerError)
		return
	}

	c.ResponseWriter().WriteHeader(http.StatusNoContent)
}
