// LeetCode GraphQL API [Service] implementation
//
// Communicates with the local forwarding proxy (internal/server) which relays
// {query, variables} payloads to the upstream GraphQL endpoint. The proxy hop
// exists only to sidestep cross-origin restrictions; this client treats it as
// the API itself.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"leetdash/internal/models"
	"leetdash/internal/shared"
)

const defaultProxyURL string = "http://127.0.0.1:8080"

// DefaultSyncLimit is the recent-accepted window requested during solved-set
// sync. The upstream API caps the window around this size.
const DefaultSyncLimit = 50

// LeetCodeService implements [Service] against the forwarding proxy.
type LeetCodeService struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewLeetCodeService creates a new LeetCode service instance.
func NewLeetCodeService(baseURL string, client *http.Client, logger *log.Logger) *LeetCodeService {
	if baseURL == "" {
		baseURL = defaultProxyURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &LeetCodeService{
		baseURL:    baseURL,
		httpClient: client,
		logger:     logger,
	}
}

// Name returns the service name.
func (l *LeetCodeService) Name() string {
	return "LeetCode"
}

// graphqlError is one entry in a GraphQL response's error list.
type graphqlError struct {
	Message string `json:"message"`
}

// graphql posts a named query to the proxy and decodes the data payload into
// result. A response that carries a GraphQL error list despite HTTP success is
// treated as a failed call, surfacing the first error message.
func (l *LeetCodeService) graphql(ctx context.Context, query string, variables map[string]any, result any) error {
	payload, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/api/leetcode", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errBody) == nil && errBody.Error != "" {
			return fmt.Errorf("%w: %s", shared.ErrAPIRequest, errBody.Error)
		}
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return fmt.Errorf("%w: %s", shared.ErrGraphQL, envelope.Errors[0].Message)
	}

	if result != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, result); err != nil {
			return fmt.Errorf("failed to parse data: %w", err)
		}
	}

	return nil
}

const userPublicProfileQuery = `
    query userPublicProfile($username: String!) {
      matchedUser(username: $username) {
        username
        githubUrl
        twitterUrl
        linkedinUrl
        profile {
          ranking
          userAvatar
          realName
          aboutMe
          school
          countryName
          company
          jobTitle
          skillTags
          reputation
          solutionCount
        }
      }
    }`

// PublicProfile retrieves the public profile for a handle.
func (l *LeetCodeService) PublicProfile(ctx context.Context, username string) (*models.UserProfile, error) {
	var data struct {
		MatchedUser *struct {
			Username string `json:"username"`
			Profile  *struct {
				Ranking       int    `json:"ranking"`
				UserAvatar    string `json:"userAvatar"`
				RealName      string `json:"realName"`
				AboutMe       string `json:"aboutMe"`
				School        string `json:"school"`
				CountryName   string `json:"countryName"`
				Company       string `json:"company"`
				JobTitle      string `json:"jobTitle"`
				Reputation    int    `json:"reputation"`
				SolutionCount int    `json:"solutionCount"`
			} `json:"profile"`
		} `json:"matchedUser"`
	}

	if err := l.graphql(ctx, userPublicProfileQuery, map[string]any{"username": username}, &data); err != nil {
		return nil, err
	}

	if data.MatchedUser == nil || data.MatchedUser.Profile == nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, username)
	}

	p := data.MatchedUser.Profile
	return &models.UserProfile{
		Username:      data.MatchedUser.Username,
		Ranking:       p.Ranking,
		UserAvatar:    p.UserAvatar,
		RealName:      p.RealName,
		AboutMe:       p.AboutMe,
		School:        p.School,
		CountryName:   p.CountryName,
		Company:       p.Company,
		JobTitle:      p.JobTitle,
		Reputation:    p.Reputation,
		SolutionCount: p.SolutionCount,
	}, nil
}

const userProblemsSolvedQuery = `
    query userProblemsSolved($username: String!) {
      allQuestionsCount {
        difficulty
        count
      }
      matchedUser(username: $username) {
        submitStats {
          acSubmissionNum {
            difficulty
            count
            submissions
          }
        }
      }
    }`

// ProblemsSolved retrieves solved-by-difficulty counts with global totals.
func (l *LeetCodeService) ProblemsSolved(ctx context.Context, username string) (*models.SolvedStats, error) {
	type difficultyCount struct {
		Difficulty string `json:"difficulty"`
		Count      int    `json:"count"`
	}

	var data struct {
		AllQuestionsCount []difficultyCount `json:"allQuestionsCount"`
		MatchedUser       *struct {
			SubmitStats *struct {
				AcSubmissionNum []difficultyCount `json:"acSubmissionNum"`
			} `json:"submitStats"`
		} `json:"matchedUser"`
	}

	if err := l.graphql(ctx, userProblemsSolvedQuery, map[string]any{"username": username}, &data); err != nil {
		return nil, err
	}

	if data.MatchedUser == nil || data.MatchedUser.SubmitStats == nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, username)
	}

	totals := make(map[string]int, len(data.AllQuestionsCount))
	for _, item := range data.AllQuestionsCount {
		totals[item.Difficulty] = item.Count
	}
	solved := make(map[string]int, len(data.MatchedUser.SubmitStats.AcSubmissionNum))
	for _, item := range data.MatchedUser.SubmitStats.AcSubmissionNum {
		solved[item.Difficulty] = item.Count
	}

	stats := &models.SolvedStats{
		Easy:   models.SolvedCount{Solved: solved["Easy"], Total: totals["Easy"]},
		Medium: models.SolvedCount{Solved: solved["Medium"], Total: totals["Medium"]},
		Hard:   models.SolvedCount{Solved: solved["Hard"], Total: totals["Hard"]},
	}
	stats.Total = models.SolvedCount{
		Solved: stats.Easy.Solved + stats.Medium.Solved + stats.Hard.Solved,
		Total:  stats.Easy.Total + stats.Medium.Total + stats.Hard.Total,
	}
	return stats, nil
}

const userProfileCalendarQuery = `
    query userProfileCalendar($username: String!, $year: Int) {
      matchedUser(username: $username) {
        userCalendar(year: $year) {
          activeYears
          streak
          totalActiveDays
          submissionCalendar
        }
      }
    }`

// ProfileCalendar retrieves the per-day submission calendar.
//
// The upstream encodes the calendar as a JSON string mapping decimal unix
// timestamps to counts. A malformed calendar string is logged and yields empty
// counts rather than an error.
func (l *LeetCodeService) ProfileCalendar(ctx context.Context, username string, year int) (*models.CalendarData, error) {
	variables := map[string]any{"username": username}
	if year != 0 {
		variables["year"] = year
	}

	var data struct {
		MatchedUser *struct {
			UserCalendar *struct {
				ActiveYears        []int  `json:"activeYears"`
				Streak             int    `json:"streak"`
				TotalActiveDays    int    `json:"totalActiveDays"`
				SubmissionCalendar string `json:"submissionCalendar"`
			} `json:"userCalendar"`
		} `json:"matchedUser"`
	}

	if err := l.graphql(ctx, userProfileCalendarQuery, variables, &data); err != nil {
		return nil, err
	}

	if data.MatchedUser == nil || data.MatchedUser.UserCalendar == nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, username)
	}

	cal := data.MatchedUser.UserCalendar
	result := &models.CalendarData{
		Counts:          map[int64]int{},
		Streak:          cal.Streak,
		TotalActiveDays: cal.TotalActiveDays,
		ActiveYears:     cal.ActiveYears,
	}

	if cal.SubmissionCalendar != "" {
		var raw map[string]int
		if err := json.Unmarshal([]byte(cal.SubmissionCalendar), &raw); err != nil {
			l.logger.Warn("malformed submission calendar", "user", username, "err", err)
			return result, nil
		}
		for ts, count := range raw {
			sec, err := strconv.ParseInt(ts, 10, 64)
			if err != nil {
				l.logger.Warn("malformed calendar timestamp", "user", username, "ts", ts)
				continue
			}
			result.Counts[sec] = count
		}
	}

	return result, nil
}

const skillStatsQuery = `
    query skillStats($username: String!) {
      matchedUser(username: $username) {
        tagProblemCounts {
          advanced {
            tagName
            tagSlug
            problemsSolved
          }
          intermediate {
            tagName
            tagSlug
            problemsSolved
          }
          fundamental {
            tagName
            tagSlug
            problemsSolved
          }
        }
      }
    }`

// SkillStats retrieves topic solved counts in three tiers.
func (l *LeetCodeService) SkillStats(ctx context.Context, username string) (*models.TopicStats, error) {
	var data struct {
		MatchedUser *struct {
			TagProblemCounts *struct {
				Advanced     []models.TopicStat `json:"advanced"`
				Intermediate []models.TopicStat `json:"intermediate"`
				Fundamental  []models.TopicStat `json:"fundamental"`
			} `json:"tagProblemCounts"`
		} `json:"matchedUser"`
	}

	if err := l.graphql(ctx, skillStatsQuery, map[string]any{"username": username}, &data); err != nil {
		return nil, err
	}

	if data.MatchedUser == nil || data.MatchedUser.TagProblemCounts == nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, username)
	}

	counts := data.MatchedUser.TagProblemCounts
	return &models.TopicStats{
		Fundamental:  counts.Fundamental,
		Intermediate: counts.Intermediate,
		Advanced:     counts.Advanced,
	}, nil
}

const userContestRankingQuery = `
    query userContestRankingInfo($username: String!) {
      userContestRanking(username: $username) {
        attendedContestsCount
        rating
        globalRanking
        topPercentage
        badge {
          name
        }
      }
      userContestRankingHistory(username: $username) {
        attended
        trendDirection
        problemsSolved
        totalProblems
        finishTimeInSeconds
        rating
        ranking
        contest {
          title
          startTime
        }
      }
    }`

// ContestRanking retrieves the aggregate contest standing and per-contest history.
func (l *LeetCodeService) ContestRanking(ctx context.Context, username string) (*models.ContestRanking, []models.ContestHistoryEntry, error) {
	var data struct {
		UserContestRanking *struct {
			AttendedContestsCount int     `json:"attendedContestsCount"`
			Rating                float64 `json:"rating"`
			GlobalRanking         int     `json:"globalRanking"`
			TopPercentage         float64 `json:"topPercentage"`
			Badge                 *struct {
				Name string `json:"name"`
			} `json:"badge"`
		} `json:"userContestRanking"`
		UserContestRankingHistory []struct {
			Attended            bool    `json:"attended"`
			TrendDirection      string  `json:"trendDirection"`
			ProblemsSolved      int     `json:"problemsSolved"`
			TotalProblems       int     `json:"totalProblems"`
			FinishTimeInSeconds int     `json:"finishTimeInSeconds"`
			Rating              float64 `json:"rating"`
			Ranking             int     `json:"ranking"`
			Contest             struct {
				Title     string `json:"title"`
				StartTime int64  `json:"startTime"`
			} `json:"contest"`
		} `json:"userContestRankingHistory"`
	}

	if err := l.graphql(ctx, userContestRankingQuery, map[string]any{"username": username}, &data); err != nil {
		return nil, nil, err
	}

	if data.UserContestRanking == nil {
		return nil, nil, fmt.Errorf("%w: %s has no contest history", shared.ErrUserNotFound, username)
	}

	ranking := &models.ContestRanking{
		AttendedContestsCount: data.UserContestRanking.AttendedContestsCount,
		Rating:                data.UserContestRanking.Rating,
		GlobalRanking:         data.UserContestRanking.GlobalRanking,
		TopPercentage:         data.UserContestRanking.TopPercentage,
	}
	if data.UserContestRanking.Badge != nil {
		ranking.Badge = data.UserContestRanking.Badge.Name
	}

	history := make([]models.ContestHistoryEntry, 0, len(data.UserContestRankingHistory))
	for _, entry := range data.UserContestRankingHistory {
		history = append(history, models.ContestHistoryEntry{
			Attended:            entry.Attended,
			TrendDirection:      entry.TrendDirection,
			ProblemsSolved:      entry.ProblemsSolved,
			TotalProblems:       entry.TotalProblems,
			FinishTimeInSeconds: entry.FinishTimeInSeconds,
			Rating:              entry.Rating,
			Ranking:             entry.Ranking,
			ContestTitle:        entry.Contest.Title,
			ContestStartTime:    entry.Contest.StartTime,
		})
	}

	return ranking, history, nil
}

const recentAcSubmissionsQuery = `
    query recentAcSubmissions($username: String!, $limit: Int!) {
      recentAcSubmissionList(username: $username, limit: $limit) {
        id
        title
        titleSlug
        timestamp
      }
    }`

// RecentAcceptedSubmissions retrieves the bounded recent-accepted window.
func (l *LeetCodeService) RecentAcceptedSubmissions(ctx context.Context, username string, limit int) ([]models.RecentSubmission, error) {
	if limit <= 0 {
		limit = DefaultSyncLimit
	}

	var data struct {
		RecentAcSubmissionList []models.RecentSubmission `json:"recentAcSubmissionList"`
	}

	if err := l.graphql(ctx, recentAcSubmissionsQuery, map[string]any{"username": username, "limit": limit}, &data); err != nil {
		return nil, err
	}

	return data.RecentAcSubmissionList, nil
}
