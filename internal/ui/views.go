package ui

import (
	"fmt"
	"sort"
	"strings"

	"leetdash/internal/models"
)

// renderStats draws the profile card, solved-by-difficulty counts, and
// contest standing.
func renderStats(profile *models.UserProfile, stats *models.SolvedStats, contest *models.ContestRanking) string {
	var b strings.Builder

	b.WriteString(styles.title.Render(profile.Username))
	b.WriteString("\n")

	if profile.RealName != "" {
		b.WriteString(profile.RealName)
		if profile.CountryName != "" {
			b.WriteString(" • " + profile.CountryName)
		}
		b.WriteString("\n")
	}
	if profile.Company != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", profile.JobTitle, "@ "+profile.Company))
	}
	b.WriteString(fmt.Sprintf("rank #%d • reputation %d • %d solutions\n", profile.Ranking, profile.Reputation, profile.SolutionCount))

	if stats != nil {
		b.WriteString("\n")
		b.WriteString(styles.title.Render("Problems Solved"))
		b.WriteString("\n")
		b.WriteString(renderSolvedRow(styles.easy.Render("Easy  "), stats.Easy))
		b.WriteString(renderSolvedRow(styles.medium.Render("Medium"), stats.Medium))
		b.WriteString(renderSolvedRow(styles.hard.Render("Hard  "), stats.Hard))
		b.WriteString(renderSolvedRow("Total ", stats.Total))
	}

	if contest != nil {
		b.WriteString("\n")
		b.WriteString(styles.title.Render("Contest"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("rating %.0f • global #%d • top %.1f%% • %d attended\n",
			contest.Rating, contest.GlobalRanking, contest.TopPercentage, contest.AttendedContestsCount))
		if contest.Badge != "" {
			b.WriteString(styles.ok.Render(contest.Badge) + "\n")
		}
	}

	return b.String()
}

func renderSolvedRow(label string, count models.SolvedCount) string {
	return fmt.Sprintf("%s %5d / %d\n", label, count.Solved, count.Total)
}

// renderTopics draws the three skill tiers, each ordered by solved count.
func renderTopics(topics *models.TopicStats) string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Topic Mastery"))
	b.WriteString("\n")

	tiers := []struct {
		name  string
		stats []models.TopicStat
	}{
		{"Fundamental", topics.Fundamental},
		{"Intermediate", topics.Intermediate},
		{"Advanced", topics.Advanced},
	}

	for _, tier := range tiers {
		total := 0
		for _, t := range tier.stats {
			total += t.ProblemsSolved
		}
		b.WriteString(fmt.Sprintf("\n%s (%d solved)\n", styles.ok.Render(tier.name), total))

		ordered := make([]models.TopicStat, len(tier.stats))
		copy(ordered, tier.stats)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].ProblemsSolved > ordered[j].ProblemsSolved
		})

		for _, t := range ordered {
			b.WriteString(fmt.Sprintf("  %-28s %d\n", t.TagName, t.ProblemsSolved))
		}
	}

	return b.String()
}
