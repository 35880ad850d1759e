package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"leetdash/internal/models"
	"leetdash/internal/shared"
)

// resolveUser picks the handle to query: the --user flag when set, otherwise
// the session handle.
func (r *Runner) resolveUser(cmd *cli.Command) (string, error) {
	if user := cmd.String("user"); user != "" {
		return user, nil
	}

	sess, _, err := r.openSession()
	if err != nil {
		return "", err
	}
	if sess.Handle() == "" {
		return "", fmt.Errorf("%w: pass --user or log in first", shared.ErrNotLoggedIn)
	}
	return sess.Handle(), nil
}

// StatsProfile prints the public profile and solved-by-difficulty counts.
func (r *Runner) StatsProfile(ctx context.Context, cmd *cli.Command) error {
	user, err := r.resolveUser(cmd)
	if err != nil {
		return err
	}

	profile, err := r.remote.PublicProfile(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	stats, err := r.remote.ProblemsSolved(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{"profile": profile, "solved": stats}, true)
	}

	r.writePlainln("%s", profile.Username)
	if profile.RealName != "" {
		r.writePlainln("  name:       %s", profile.RealName)
	}
	if profile.CountryName != "" {
		r.writePlainln("  country:    %s", profile.CountryName)
	}
	r.writePlainln("  ranking:    #%d", profile.Ranking)
	r.writePlainln("  reputation: %d", profile.Reputation)
	r.writePlainln("  solved:     %d/%d total", stats.Total.Solved, stats.Total.Total)
	r.writePlainln("    easy:     %d/%d", stats.Easy.Solved, stats.Easy.Total)
	r.writePlainln("    medium:   %d/%d", stats.Medium.Solved, stats.Medium.Total)
	return r.writePlainln("    hard:     %d/%d", stats.Hard.Solved, stats.Hard.Total)
}

// StatsCalendar prints the submission calendar summary.
func (r *Runner) StatsCalendar(ctx context.Context, cmd *cli.Command) error {
	user, err := r.resolveUser(cmd)
	if err != nil {
		return err
	}

	calendar, err := r.remote.ProfileCalendar(ctx, user, cmd.Int("year"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(calendar, true)
	}

	total := 0
	for _, count := range calendar.Counts {
		total += count
	}

	r.writePlainln("%s", user)
	r.writePlainln("  submissions: %d", total)
	r.writePlainln("  streak:      %d days", calendar.Streak)
	r.writePlainln("  active days: %d", calendar.TotalActiveDays)
	return r.writePlainln("  active years: %v", calendar.ActiveYears)
}

// StatsTopics prints topic mastery across the three skill tiers.
func (r *Runner) StatsTopics(ctx context.Context, cmd *cli.Command) error {
	user, err := r.resolveUser(cmd)
	if err != nil {
		return err
	}

	topics, err := r.remote.SkillStats(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(topics, true)
	}

	tiers := []struct {
		name  string
		stats []models.TopicStat
	}{
		{"Advanced", topics.Advanced},
		{"Intermediate", topics.Intermediate},
		{"Fundamental", topics.Fundamental},
	}
	for _, tier := range tiers {
		r.writePlainln("%s:", tier.name)
		for _, stat := range tier.stats {
			r.writePlainln("  %-30s %d", stat.TagName, stat.ProblemsSolved)
		}
	}
	return nil
}

// StatsContest prints contest standing and attendance history.
func (r *Runner) StatsContest(ctx context.Context, cmd *cli.Command) error {
	user, err := r.resolveUser(cmd)
	if err != nil {
		return err
	}

	ranking, history, err := r.remote.ContestRanking(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{"ranking": ranking, "history": history}, true)
	}

	if ranking == nil {
		return r.writePlainln("%s has no contest history", user)
	}

	r.writePlainln("%s", user)
	r.writePlainln("  rating:   %.1f", ranking.Rating)
	r.writePlainln("  ranking:  #%d (top %.2f%%)", ranking.GlobalRanking, ranking.TopPercentage)
	r.writePlainln("  attended: %d contests", ranking.AttendedContestsCount)
	if ranking.Badge != "" {
		r.writePlainln("  badge:    %s", ranking.Badge)
	}

	attended := 0
	for _, entry := range history {
		if entry.Attended {
			attended++
		}
	}
	return r.writePlainln("  history:  %d entries (%d attended)", len(history), attended)
}
