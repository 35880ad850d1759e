package ui

import (
	"fmt"
	"strings"
	"time"

	"leetdash/internal/models"
)

const heatmapWeeks = 53

// heatmapCell is one day in the submission calendar grid.
type heatmapCell struct {
	date  time.Time
	count int
}

// buildCalendarGrid lays the per-day submission counts out as 53 week columns
// of 7 days, ending at today and aligned so each column starts on Sunday.
// Upstream keys days by the UTC midnight unix timestamp.
func buildCalendarGrid(counts map[int64]int, today time.Time) [][]heatmapCell {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	// Last column is the current week, so the grid always contains today.
	weekStart := day.AddDate(0, 0, -int(day.Weekday())) // Sunday of this week
	start := weekStart.AddDate(0, 0, -(heatmapWeeks-1)*7)

	weeks := make([][]heatmapCell, 0, heatmapWeeks)
	for week := 0; week < heatmapWeeks; week++ {
		cells := make([]heatmapCell, 0, 7)
		for weekday := 0; weekday < 7; weekday++ {
			date := start.AddDate(0, 0, week*7+weekday)
			cells = append(cells, heatmapCell{date: date, count: counts[date.Unix()]})
		}
		weeks = append(weeks, cells)
	}

	return weeks
}

// intensityBucket maps a day's submission count to a palette heat bucket.
func intensityBucket(count int) int {
	switch {
	case count >= 10:
		return 4
	case count >= 5:
		return 3
	case count >= 2:
		return 2
	case count >= 1:
		return 1
	default:
		return 0
	}
}

// renderHeatmap draws the calendar as seven weekday rows of colored blocks.
func renderHeatmap(cal *models.CalendarData, today time.Time) string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Submission Activity"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("streak %d • %d active days\n\n", cal.Streak, cal.TotalActiveDays))

	grid := buildCalendarGrid(cal.Counts, today)
	labels := [7]string{"   ", "Mon", "   ", "Wed", "   ", "Fri", "   "}

	for weekday := 0; weekday < 7; weekday++ {
		b.WriteString(styles.help.Render(labels[weekday]))
		b.WriteString(" ")
		for _, week := range grid {
			cell := week[weekday]
			b.WriteString(styles.heat[intensityBucket(cell.count)].Render("■"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.help.Render("less "))
	for _, style := range styles.heat {
		b.WriteString(style.Render("■"))
	}
	b.WriteString(styles.help.Render(" more"))

	return b.String()
}
