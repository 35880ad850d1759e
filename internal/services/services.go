// package services defines interface Service for interacting with the remote progress API
//
// LeetCode GraphQL (via the local forwarding proxy)
package services

import (
	"context"

	"leetdash/internal/models"
)

// Service defines the fixed set of named queries the dashboard issues against
// the remote progress API. Implementations are stateless request/response
// wrappers; every call stands alone and may fail independently.
type Service interface {
	// PublicProfile retrieves the public profile for a handle.
	PublicProfile(ctx context.Context, username string) (*models.UserProfile, error)

	// ProblemsSolved retrieves solved-by-difficulty counts combined with the
	// global totals per difficulty.
	ProblemsSolved(ctx context.Context, username string) (*models.SolvedStats, error)

	// ProfileCalendar retrieves the submission calendar. A zero year means the
	// upstream default (current year window).
	ProfileCalendar(ctx context.Context, username string, year int) (*models.CalendarData, error)

	// SkillStats retrieves topic solved counts in three tiers.
	SkillStats(ctx context.Context, username string) (*models.TopicStats, error)

	// ContestRanking retrieves the aggregate contest standing and history.
	ContestRanking(ctx context.Context, username string) (*models.ContestRanking, []models.ContestHistoryEntry, error)

	// RecentAcceptedSubmissions retrieves the bounded recent-accepted window.
	RecentAcceptedSubmissions(ctx context.Context, username string, limit int) ([]models.RecentSubmission, error)

	// Name returns the service name (e.g. "LeetCode").
	Name() string
}

// SolvedSlugs collects the unique problem slugs from the recent-accepted
// window. The upstream API caps the window (typically 50), so the result is a
// recent-activity sample, never the complete solved history.
func SolvedSlugs(ctx context.Context, svc Service, username string, limit int) (map[string]struct{}, error) {
	submissions, err := svc.RecentAcceptedSubmissions(ctx, username, limit)
	if err != nil {
		return nil, err
	}

	slugs := make(map[string]struct{}, len(submissions))
	for _, sub := range submissions {
		slugs[sub.TitleSlug] = struct{}{}
	}
	return slugs, nil
}
