/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/sproutbook/sproutbook/db"
)

// YearInReviewPage renders the year-in-review summary and slideshow for
// a child. The year defaults to the previous calendar year.
func YearInReviewPage(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	ctx := c.Request().Context()
	childID := c.Param("id")

	year := time.Now().Year() - 1
	if yearStr := c.Query("year"); yearStr != "" {
		if parsed, err := strconv.Atoi(yearStr); err == nil {
			year = parsed
		}
	}

	review, err := db.GetYearInReview(ctx, childID, year)
	if err != nil {
		log.Printf("Error building year in review for %s: %v", childID, err)
		SetErrorFlash(s, "Failed to build the year in review")
		c.Redirect("/children/"+childID, http.StatusSeeOther)
		return
	}

	// Offer year links from the child's birth year up to last year.
	var years []int
	for y := review.Child.DateOfBirth.Year(); y < time.Now().Year(); y++ {
		years = append(years, y)
	}

	data["Review"] = review
	data["Years"] = years
	data["IsChildren"] = true
	t.HTML(http.StatusOK, "review")
}
