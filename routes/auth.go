/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/sproutbook/sproutbook/db"
)

// LoginForm renders the login page. When no users exist yet, the visitor
// is sent to first-run setup instead.
func LoginForm(c flamego.Context, t template.Template, data template.Data) {
	count, err := db.CountUsers(c.Request().Context())
	if err == nil && count == 0 {
		c.Redirect("/setup", http.StatusSeeOther)
		return
	}

	data["HeaderOnly"] = true
	t.HTML(http.StatusOK, "login")
}

// Login handles the login form submission.
func Login(c flamego.Context, s session.Session) {
	ctx := c.Request().Context()

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing login form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(c.Request().Form.Get("email"))
	password := c.Request().Form.Get("password")

	user, err := db.AuthenticateUser(ctx, email, password)
	if err != nil {
		if errors.Is(err, db.ErrInvalidCredentials) {
			logAccessDenied(c, s, "invalid_credentials", http.StatusSeeOther, "/login")
			SetErrorFlash(s, "Incorrect email or password")
		} else {
			log.Printf("Error authenticating user: %v", err)
			SetErrorFlash(s, "Failed to sign in")
		}
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	setSessionUser(s, user)
	c.Redirect("/", http.StatusSeeOther)
}

// Logout handles logout request
func Logout(s session.Session, c flamego.Context) {
	s.Delete("authenticated")
	s.Delete("user_id")
	s.Delete("user_display_name")
	s.Delete("user_role")
	s.Delete("user_is_admin")
	c.Redirect("/login")
}

// RequireAuth is a middleware that checks if user is authenticated
func RequireAuth(s session.Session, c flamego.Context) {
	authenticated, ok := s.Get("authenticated").(bool)
	if !ok || !authenticated {
		c.Redirect("/login")
		return
	}
	c.Next()
}

// SetupForm renders the first-run setup page for creating the first
// parent account. It is only reachable while no users exist.
func SetupForm(c flamego.Context, t template.Template, data template.Data) {
	count, err := db.CountUsers(c.Request().Context())
	if err != nil {
		log.Printf("Error counting users: %v", err)
	}
	if count > 0 {
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	data["HeaderOnly"] = true
	t.HTML(http.StatusOK, "setup")
}

// SetupSubmit creates the first account as an admin parent.
func SetupSubmit(c flamego.Context, s session.Session) {
	ctx := c.Request().Context()

	count, err := db.CountUsers(ctx)
	if err != nil {
		log.Printf("Error counting users: %v", err)
		SetErrorFlash(s, "Failed to set up account")
		c.Redirect("/setup", http.StatusSeeOther)
		return
	}
	if count > 0 {
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing setup form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/setup", http.StatusSeeOther)
		return
	}

	user, err := db.CreateUser(ctx, db.CreateUserInput{
		DisplayName: strings.TrimSpace(c.Request().Form.Get("display_name")),
		Email:       strings.TrimSpace(c.Request().Form.Get("email")),
		Password:    c.Request().Form.Get("password"),
		Role:        db.RoleParent,
		IsAdmin:     true,
	})
	if err != nil {
		log.Printf("Error creating first user: %v", err)
		SetErrorFlash(s, "Failed to create account")
		c.Redirect("/setup", http.StatusSeeOther)
		return
	}

	setSessionUser(s, user)
	SetSuccessFlash(s, "Welcome to Sproutbook")
	c.Redirect("/", http.StatusSeeOther)
}

// JoinForm renders the registration page behind a family invite token.
func JoinForm(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	token := c.Param("token")

	invite, err := db.GetFamilyInviteByToken(c.Request().Context(), token)
	if err != nil {
		log.Printf("Error looking up invite: %v", err)
	}
	if invite == nil {
		logAccessDenied(c, s, "invalid_invite", http.StatusSeeOther, "/login")
		SetErrorFlash(s, "This invite link is not valid")
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	data["HeaderOnly"] = true
	data["Invite"] = invite
	if invite.DisplayName != nil {
		data["SuggestedName"] = *invite.DisplayName
	}
	t.HTML(http.StatusOK, "join")
}

// JoinSubmit creates an account from a family invite and consumes the
// invite token.
func JoinSubmit(c flamego.Context, s session.Session) {
	ctx := c.Request().Context()
	token := c.Param("token")

	invite, err := db.GetFamilyInviteByToken(ctx, token)
	if err != nil {
		log.Printf("Error looking up invite: %v", err)
	}
	if invite == nil {
		SetErrorFlash(s, "This invite link is not valid")
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing join form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/join/"+token, http.StatusSeeOther)
		return
	}

	user, err := db.CreateUser(ctx, db.CreateUserInput{
		DisplayName: strings.TrimSpace(c.Request().Form.Get("display_name")),
		Email:       strings.TrimSpace(c.Request().Form.Get("email")),
		Password:    c.Request().Form.Get("password"),
		Role:        invite.SuggestedRole,
	})
	if err != nil {
		if errors.Is(err, db.ErrEmailAlreadyRegistered) {
			SetErrorFlash(s, "That email is already registered")
		} else {
			log.Printf("Error creating user from invite: %v", err)
			SetErrorFlash(s, "Failed to create account")
		}
		c.Redirect("/join/"+token, http.StatusSeeOther)
		return
	}

	if err := db.MarkFamilyInviteUsed(ctx, invite.ID.String()); err != nil {
		log.Printf("Error marking invite used: %v", err)
	}

	setSessionUser(s, user)
	SetSuccessFlash(s, "Welcome to the family journal")
	c.Redirect("/", http.StatusSeeOther)
}
