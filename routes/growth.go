/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"

	"github.com/sproutbook/sproutbook/db"
	"github.com/sproutbook/sproutbook/growth"
)

func parseMetric(value string) (growth.Metric, bool) {
	switch growth.Metric(value) {
	case growth.MetricHeight:
		return growth.MetricHeight, true
	case growth.MetricWeight:
		return growth.MetricWeight, true
	case growth.MetricHeadCircumference:
		return growth.MetricHeadCircumference, true
	}
	return "", false
}

// parseStandard defaults to WHO when the query value is absent or
// unrecognized. The toggle is per request; nothing is persisted.
func parseStandard(value string) growth.Standard {
	if growth.Standard(value) == growth.StandardSingapore {
		return growth.StandardSingapore
	}
	return growth.StandardWHO
}

// classifyMeasurements derives the percentile band for each measurement
// against the given standard, keyed by measurement ID.
func classifyMeasurements(child *db.Child, measurements []db.Measurement, standard growth.Standard) map[uuid.UUID]growth.Result {
	results := make(map[uuid.UUID]growth.Result, len(measurements))
	for _, m := range measurements {
		age := growth.AgeInMonths(child.DateOfBirth, m.TakenOn)
		result, err := growth.Classify(m.Value, age, child.Sex, m.Metric, standard)
		if err != nil {
			log.Printf("Error classifying measurement %s: %v", m.ID, err)
			continue
		}
		results[m.ID] = result
	}
	return results
}

// generateGrowthChart renders a line chart of the child's measurements
// for one metric, with the standard's percentile curves behind it.
func generateGrowthChart(child *db.Child, measurements []db.Measurement, metric growth.Metric, standard growth.Standard) (string, error) {
	curve, err := growth.ReferenceCurve(metric, child.Sex, standard)
	if err != nil {
		return "", err
	}

	// X axis in months, spanning the reference curve so the percentile
	// context is always visible even with few measurements.
	maxAge := curve[len(curve)-1].AgeMonths
	for _, m := range measurements {
		if age := growth.AgeInMonths(child.DateOfBirth, m.TakenOn); age > maxAge {
			maxAge = age
		}
	}

	xAxis := make([]string, 0, maxAge+1)
	for age := 0; age <= maxAge; age++ {
		xAxis = append(xAxis, strconv.Itoa(age))
	}

	// Percentile curves carry values only at tabulated ages; echarts
	// connects across the gaps.
	p3Data := make([]opts.LineData, maxAge+1)
	p50Data := make([]opts.LineData, maxAge+1)
	p97Data := make([]opts.LineData, maxAge+1)
	for i := range p3Data {
		p3Data[i] = opts.LineData{Value: nil}
		p50Data[i] = opts.LineData{Value: nil}
		p97Data[i] = opts.LineData{Value: nil}
	}
	for _, bp := range curve {
		if bp.AgeMonths > maxAge {
			continue
		}
		p3Data[bp.AgeMonths] = opts.LineData{Value: bp.P3}
		p50Data[bp.AgeMonths] = opts.LineData{Value: bp.P50}
		p97Data[bp.AgeMonths] = opts.LineData{Value: bp.P97}
	}

	childData := make([]opts.LineData, maxAge+1)
	for i := range childData {
		childData[i] = opts.LineData{Value: nil}
	}
	for _, m := range measurements {
		age := growth.AgeInMonths(child.DateOfBirth, m.TakenOn)
		childData[age] = opts.LineData{Value: m.Value}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    metric.DisplayName() + " (" + standard.DisplayName() + ")",
			Subtitle: child.Name,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Age (months)",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  metric.Unit(),
			Scale: opts.Bool(true),
		}),
	)

	percentileStyle := charts.WithLineStyleOpts(opts.LineStyle{
		Color: "rgba(128, 128, 128, 0.6)",
		Type:  "dashed",
		Width: 1.5,
	})
	connectGaps := charts.WithLineChartOpts(opts.LineChart{
		Smooth:       opts.Bool(true),
		ConnectNulls: opts.Bool(true),
		ShowSymbol:   opts.Bool(false),
	})

	line.SetXAxis(xAxis).
		AddSeries("3rd percentile", p3Data, percentileStyle, connectGaps).
		AddSeries("50th percentile", p50Data, percentileStyle, connectGaps).
		AddSeries("97th percentile", p97Data, percentileStyle, connectGaps).
		AddSeries(child.Name, childData,
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:       opts.Bool(true),
				ConnectNulls: opts.Bool(true),
				ShowSymbol:   opts.Bool(true),
			}),
		)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// GrowthPage renders the growth tracking page for a child and metric,
// with a query toggle between the WHO and Singapore standards.
func GrowthPage(c flamego.Context, s session.Session, t template.Template, data template.Data) {
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

	metric, ok := parseMetric(c.Query("metric"))
	if !ok {
		metric = growth.MetricHeight
	}
	standard := parseStandard(c.Query("standard"))

	data["Child"] = child
	data["ChildAge"] = child.AgeDisplay(time.Now())
	data["Metric"] = metric
	data["Standard"] = standard
	data["Metrics"] = []growth.Metric{growth.MetricHeight, growth.MetricWeight, growth.MetricHeadCircumference}
	data["Standards"] = []growth.Standard{growth.StandardWHO, growth.StandardSingapore}
	data["IsChildren"] = true

	measurements, err := db.ListMeasurementsByMetric(ctx, childID, metric)
	if err != nil {
		log.Printf("Error fetching measurements: %v", err)
		data["Error"] = "Failed to load measurements"
		t.HTML(http.StatusOK, "growth")
		return
	}
	data["Measurements"] = measurements
	data["Bands"] = classifyMeasurements(child, measurements, standard)

	if len(measurements) > 0 {
		latest := measurements[len(measurements)-1]
		age := growth.AgeInMonths(child.DateOfBirth, latest.TakenOn)
		if result, err := growth.Classify(latest.Value, age, child.Sex, metric, standard); err == nil {
			data["LatestResult"] = result
		}
	}

	chart, err := generateGrowthChart(child, measurements, metric, standard)
	if err != nil {
		log.Printf("Error generating growth chart: %v", err)
	} else {
		data["Chart"] = chart
	}

	t.HTML(http.StatusOK, "growth")
}

// AddMeasurement records a new measurement for a child.
func AddMeasurement(c flamego.Context, s session.Session) {
	ctx := c.Request().Context()
	childID := c.Param("id")
	redirect := "/children/" + childID + "/growth"

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing measurement form: %v", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	metric, ok := parseMetric(c.Request().Form.Get("metric"))
	if !ok {
		SetErrorFlash(s, "Unknown measurement type")
		c.Redirect(redirect, http.StatusSeeOther)
		return
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(c.Request().Form.Get("value")), 64)
	if err != nil || value <= 0 {
		SetErrorFlash(s, "Measurement value must be a positive number")
		c.Redirect(redirect+"?metric="+string(metric), http.StatusSeeOther)
		return
	}

	takenOn, err := parseDateField(c.Request().Form.Get("taken_on"))
	if err != nil {
		SetErrorFlash(s, "Please provide the measurement date")
		c.Redirect(redirect+"?metric="+string(metric), http.StatusSeeOther)
		return
	}

	input := db.CreateMeasurementInput{
		ChildID: childID,
		Metric:  metric,
		Value:   value,
		TakenOn: takenOn,
		Note:    optionalFormValue(c.Request().Form.Get("note")),
	}
	if user, err := resolveSessionUser(ctx, s); err == nil {
		input.CreatedBy = &user.ID
	}

	if _, err := db.CreateMeasurement(ctx, input); err != nil {
		log.Printf("Error creating measurement: %v", err)
		SetErrorFlash(s, "Failed to record measurement")
		c.Redirect(redirect+"?metric="+string(metric), http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Measurement recorded")
	c.Redirect(redirect+"?metric="+string(metric), http.StatusSeeOther)
}

// DeleteMeasurement removes a measurement. Measurements cannot be
// edited; a wrong reading is deleted and re-entered.
func DeleteMeasurement(c flamego.Context, s session.Session) {
	childID := c.Param("id")
	measurementID := c.Param("mid")

	if err := db.DeleteMeasurement(c.Request().Context(), measurementID); err != nil {
		log.Printf("Error deleting measurement %s: %v", measurementID, err)
		SetErrorFlash(s, "Failed to delete measurement")
	} else {
		SetSuccessFlash(s, "Measurement deleted")
	}

	c.Redirect("/children/"+childID+"/growth", http.StatusSeeOther)
}
