/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/skip2/go-qrcode"

	"github.com/sproutbook/sproutbook/db"
)

func parseRole(value string) (db.Role, bool) {
	switch db.Role(value) {
	case db.RoleParent:
		return db.RoleParent, true
	case db.RoleGuardian:
		return db.RoleGuardian, true
	case db.RoleRelative:
		return db.RoleRelative, true
	}
	return "", false
}

func inviteURL(c flamego.Context, token string) string {
	scheme := "https"
	if c.Request().TLS == nil && c.Request().Header.Get("X-Forwarded-Proto") != "https" {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s/join/%s", scheme, c.Request().Host, token)
}

func generateQRCodeBase64(value string) (string, error) {
	png, err := qrcode.Encode(value, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate qr code: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}

// FamilyPage renders family members and pending invites.
func FamilyPage(c flamego.Context, t template.Template, data template.Data) {
	ctx := c.Request().Context()

	users, err := db.ListUsers(ctx)
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		data["Error"] = "Failed to load family members"
	} else {
		data["Members"] = users
	}

	invites, err := db.ListPendingFamilyInvites(ctx)
	if err != nil {
		log.Printf("Error fetching invites: %v", err)
	} else {
		data["Invites"] = invites

		links := make(map[string]string, len(invites))
		qrCodes := make(map[string]string, len(invites))
		for _, invite := range invites {
			link := inviteURL(c, invite.Token)
			links[invite.ID.String()] = link

			qr, err := generateQRCodeBase64(link)
			if err != nil {
				log.Printf("Error generating invite QR: %v", err)
				continue
			}
			qrCodes[invite.ID.String()] = qr
		}
		data["InviteLinks"] = links
		data["InviteQRCodes"] = qrCodes
	}

	data["Roles"] = []db.Role{db.RoleParent, db.RoleGuardian, db.RoleRelative}
	data["IsFamily"] = true
	t.HTML(http.StatusOK, "family")
}

// CreateInvite creates a new family invite token.
func CreateInvite(c flamego.Context, s session.Session) {
	ctx := c.Request().Context()

	user, err := resolveSessionUser(ctx, s)
	if err != nil {
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing invite form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/family", http.StatusSeeOther)
		return
	}

	role, ok := parseRole(c.Request().Form.Get("role"))
	if !ok {
		SetErrorFlash(s, "Please pick a role for the invite")
		c.Redirect("/family", http.StatusSeeOther)
		return
	}

	displayName := strings.TrimSpace(c.Request().Form.Get("display_name"))

	if _, err := db.CreateFamilyInvite(ctx, user.ID.String(), displayName, role); err != nil {
		log.Printf("Error creating invite: %v", err)
		SetErrorFlash(s, "Failed to create invite")
		c.Redirect("/family", http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Invite created")
	c.Redirect("/family", http.StatusSeeOther)
}

// DeleteInvite revokes a pending invite.
func DeleteInvite(c flamego.Context, s session.Session) {
	inviteID := c.Param("id")

	if err := db.DeleteFamilyInvite(c.Request().Context(), inviteID); err != nil {
		log.Printf("Error deleting invite %s: %v", inviteID, err)
		SetErrorFlash(s, "Failed to revoke invite")
	} else {
		SetSuccessFlash(s, "Invite revoked")
	}

	c.Redirect("/family", http.StatusSeeOther)
}

// UpdateMemberRole changes a family member's role.
func UpdateMemberRole(c flamego.Context, s session.Session) {
	userID := c.Param("id")

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing role form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/family", http.StatusSeeOther)
		return
	}

	role, ok := parseRole(c.Request().Form.Get("role"))
	if !ok {
		SetErrorFlash(s, "Unknown role")
		c.Redirect("/family", http.StatusSeeOther)
		return
	}

	if err := db.UpdateUserRole(c.Request().Context(), userID, role); err != nil {
		log.Printf("Error updating role for %s: %v", userID, err)
		SetErrorFlash(s, "Failed to update role")
		c.Redirect("/family", http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Role updated")
	c.Redirect("/family", http.StatusSeeOther)
}

// RemoveMember deletes a family member's account. The current user
// cannot remove themselves.
func RemoveMember(c flamego.Context, s session.Session) {
	userID := c.Param("id")

	if currentID, ok := getSessionUserID(s); ok && currentID == userID {
		SetErrorFlash(s, "You cannot remove your own account")
		c.Redirect("/family", http.StatusSeeOther)
		return
	}

	if err := db.DeleteUser(c.Request().Context(), userID); err != nil {
		log.Printf("Error removing member %s: %v", userID, err)
		SetErrorFlash(s, "Failed to remove member")
	} else {
		SetSuccessFlash(s, "Member removed")
	}

	c.Redirect("/family", http.StatusSeeOther)
}
