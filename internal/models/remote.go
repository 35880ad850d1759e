package models

// UserProfile is the public profile for a handle as returned by the remote API.
type UserProfile struct {
	Username      string `json:"username"`
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
}

// SolvedCount pairs a user's accepted count with the global total for one difficulty.
type SolvedCount struct {
	Solved int `json:"solved"`
	Total  int `json:"total"`
}

// SolvedStats aggregates problems-solved-by-difficulty counts.
type SolvedStats struct {
	Easy   SolvedCount `json:"easy"`
	Medium SolvedCount `json:"medium"`
	Hard   SolvedCount `json:"hard"`
	Total  SolvedCount `json:"total"`
}

// CalendarData is the parsed submission calendar for a handle.
//
// Counts maps per-day unix timestamps (seconds, as decimal strings upstream)
// to submission counts for that day.
type CalendarData struct {
	Counts          map[int64]int `json:"counts"`
	Streak          int           `json:"streak"`
	TotalActiveDays int           `json:"totalActiveDays"`
	ActiveYears     []int         `json:"activeYears"`
}

// TopicStat is one tag's solved count within a skill tier.
type TopicStat struct {
	TagName        string `json:"tagName"`
	TagSlug        string `json:"tagSlug"`
	ProblemsSolved int    `json:"problemsSolved"`
}

// TopicStats groups tag solved counts by skill tier.
type TopicStats struct {
	Fundamental  []TopicStat `json:"fundamental"`
	Intermediate []TopicStat `json:"intermediate"`
	Advanced     []TopicStat `json:"advanced"`
}

// ContestRanking is a handle's aggregate contest standing.
type ContestRanking struct {
	AttendedContestsCount int     `json:"attendedContestsCount"`
	Rating                float64 `json:"rating"`
	GlobalRanking         int     `json:"globalRanking"`
	TopPercentage         float64 `json:"topPercentage"`
	Badge                 string  `json:"badge"`
}

// ContestHistoryEntry is one attended (or skipped) contest in the ranking history.
type ContestHistoryEntry struct {
	Attended            bool    `json:"attended"`
	TrendDirection      string  `json:"trendDirection"`
	ProblemsSolved      int     `json:"problemsSolved"`
	TotalProblems       int     `json:"totalProblems"`
	FinishTimeInSeconds int     `json:"finishTimeInSeconds"`
	Rating              float64 `json:"rating"`
	Ranking             int     `json:"ranking"`
	ContestTitle        string  `json:"contestTitle"`
	ContestStartTime    int64   `json:"contestStartTime"`
}

// RecentSubmission is one accepted submission from the bounded recent window.
type RecentSubmission struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TitleSlug string `json:"titleSlug"`
	Timestamp string `json:"timestamp"`
}
