/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/sproutbook/sproutbook/db"
)

func getSessionUserID(s session.Session) (string, bool) {
	if val := s.Get("user_id"); val != nil {
		if userID, ok := val.(string); ok && userID != "" {
			return userID, true
		}
	}

	return "", false
}

func setSessionUser(s session.Session, user *db.User) {
	s.Set("authenticated", true)
	s.Set("user_id", user.ID.String())
	s.Set("user_display_name", user.DisplayName)
	s.Set("user_role", string(user.Role))
	s.Set("user_is_admin", user.IsAdmin)
}

// UserContextInjector loads session user metadata into templates.
func UserContextInjector() flamego.Handler {
	return func(c flamego.Context, s session.Session, data template.Data) {
		authenticated, _ := s.Get("authenticated").(bool)
		data["IsAuthenticated"] = authenticated
		if !authenticated {
			return
		}

		user, err := resolveSessionUser(c.Request().Context(), s)
		if err != nil {
			requestLogger.Error("Failed to resolve session user", "error", err)
			return
		}

		data["UserDisplayName"] = user.DisplayName
		data["UserRole"] = user.Role
		data["CanEdit"] = user.Role.CanEdit()
		data["IsAdmin"] = user.IsAdmin
	}
}

// RequireEditor blocks modification routes for read-only family members.
func RequireEditor(s session.Session, c flamego.Context) {
	user, err := resolveSessionUser(c.Request().Context(), s)
	if err != nil || !user.Role.CanEdit() {
		if err != nil {
			logAccessDenied(c, s, "not_editor", http.StatusSeeOther, "/", "error", err)
		} else {
			logAccessDenied(c, s, "not_editor", http.StatusSeeOther, "/")
		}
		SetErrorFlash(s, "Your role does not allow changes")
		c.Redirect("/", http.StatusSeeOther)
		return
	}
	c.Next()
}

// RequireAdmin blocks access for non-admin users.
func RequireAdmin(s session.Session, c flamego.Context) {
	user, err := resolveSessionUser(c.Request().Context(), s)
	if err != nil || !user.IsAdmin {
		if err != nil {
			logAccessDenied(c, s, "not_admin", http.StatusSeeOther, "/", "error", err)
		} else {
			logAccessDenied(c, s, "not_admin", http.StatusSeeOther, "/")
		}
		SetErrorFlash(s, "Access restricted")
		c.Redirect("/", http.StatusSeeOther)
		return
	}
	c.Next()
}

func resolveSessionUser(ctx context.Context, s session.Session) (*db.User, error) {
	userID, ok := getSessionUserID(s)
	if !ok {
		return nil, errSessionUserMissing
	}

	displayName, hasName := s.Get("user_display_name").(string)
	role, hasRole := s.Get("user_role").(string)
	isAdmin, hasAdmin := s.Get("user_is_admin").(bool)
	if hasName && hasRole && hasAdmin {
		if parsedID, err := uuid.Parse(userID); err == nil {
			return &db.User{
				ID:          parsedID,
				DisplayName: displayName,
				Role:        db.Role(role),
				IsAdmin:     isAdmin,
			}, nil
		}
	}

	user, err := db.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errSessionUserMissing
	}

	setSessionUser(s, user)

	return user, nil
}
