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

// ReminderSettingsPage renders the journal reminder preferences.
func ReminderSettingsPage(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	ctx := c.Request().Context()

	user, err := resolveSessionUser(ctx, s)
	if err != nil {
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	setting, err := db.GetReminderSetting(ctx, user.ID)
	if err != nil {
		log.Printf("Error fetching reminder setting: %v", err)
		data["Error"] = "Failed to load reminder settings"
	} else {
		data["Setting"] = setting
		if next := setting.NextReminder(time.Now()); next != nil {
			data["NextReminder"] = *next
		}
	}

	data["Frequencies"] = []db.ReminderFrequency{
		db.ReminderOff, db.ReminderDaily, db.ReminderWeekly, db.ReminderMonthly,
	}
	data["IsSettings"] = true
	t.HTML(http.StatusOK, "reminders")
}

// SaveReminderSettings handles the reminder preferences form.
func SaveReminderSettings(c flamego.Context, s session.Session) {
	ctx := c.Request().Context()

	user, err := resolveSessionUser(ctx, s)
	if err != nil {
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing reminder form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/settings/reminders", http.StatusSeeOther)
		return
	}

	form := c.Request().Form

	hour, err := strconv.Atoi(form.Get("hour_of_day"))
	if err != nil {
		hour = 20
	}
	weekday, err := strconv.Atoi(form.Get("weekday"))
	if err != nil {
		weekday = int(time.Sunday)
	}
	dayOfMonth, err := strconv.Atoi(form.Get("day_of_month"))
	if err != nil {
		dayOfMonth = 1
	}

	setting := db.ReminderSetting{
		UserID:     user.ID,
		Frequency:  db.ReminderFrequency(form.Get("frequency")),
		HourOfDay:  hour,
		Weekday:    time.Weekday(weekday),
		DayOfMonth: dayOfMonth,
	}

	if err := db.SaveReminderSetting(ctx, setting); err != nil {
		log.Printf("Error saving reminder setting: %v", err)
		SetErrorFlash(s, "Failed to save reminder settings")
		c.Redirect("/settings/reminders", http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Reminder settings saved")
	c.Redirect("/settings/reminders", http.StatusSeeOther)
}
