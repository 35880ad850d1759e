// package models defines the data model for the practice dashboard
package models

import "strings"

// Difficulty is the problem difficulty enum used by the catalog and filters.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Rank returns the severity order used by difficulty sorting: Easy(1) < Medium(2) < Hard(3).
func (d Difficulty) Rank() int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 2
	case Hard:
		return 3
	default:
		return 0
	}
}

// Problem is one immutable record from the static catalog.
//
// QuestionID is the stable identifier used as the solved-set key and is unique
// across the catalog. TopicTags is the raw semicolon-delimited tag string as
// shipped in the catalog file.
type Problem struct {
	QuestionID         string     `json:"questionId"`
	Title              string     `json:"title"`
	TitleSlug          string     `json:"titleSlug"`
	IsPaidOnly         bool       `json:"isPaidOnly"`
	Difficulty         Difficulty `json:"difficulty"`
	Likes              int        `json:"likes"`
	Dislikes           int        `json:"dislikes"`
	CategoryTitle      string     `json:"categoryTitle"`
	AcRate             string     `json:"acRate"`
	FrontendQuestionID string     `json:"frontendQuestionId"`
	PaidOnly           bool       `json:"paidOnly"`
	TopicTags          string     `json:"topicTags"`
	HasSolution        bool       `json:"hasSolution"`
	HasVideoSolution   bool       `json:"hasVideoSolution"`
	AcRateRaw          float64    `json:"acRateRaw"`
	TotalAccepted      int        `json:"totalAccepted"`
	TotalSubmission    int        `json:"totalSubmission"`
}

// Tags splits the semicolon-delimited tag string into trimmed, non-empty tags.
func (p Problem) Tags() []string {
	parts := strings.Split(p.TopicTags, ";")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// SortOption selects the comparator for the visible problem list.
type SortOption string

const (
	SortLikes          SortOption = "likes"
	SortAcceptanceRate SortOption = "acceptance-rate"
	SortDifficulty     SortOption = "difficulty"
	SortTotalAccepted  SortOption = "total-accepted"
	SortTitle          SortOption = "title"
	SortSolved         SortOption = "solved"
	SortAccess         SortOption = "access"
)

// DefaultSort is the sort applied when no preference is stored, and the sort
// the session collapses to when logout invalidates [SortSolved].
const DefaultSort = SortLikes

// ValidSort reports whether s is a known sort option.
func ValidSort(s SortOption) bool {
	switch s {
	case SortLikes, SortAcceptanceRate, SortDifficulty, SortTotalAccepted, SortTitle, SortSolved, SortAccess:
		return true
	default:
		return false
	}
}

// DifficultyFilter is "All" or one of the [Difficulty] values.
type DifficultyFilter string

const FilterAll DifficultyFilter = "All"

// FilterState holds the persisted filter criteria.
//
// Tags use OR semantics: a problem matches when it carries any selected tag.
// SearchQuery matches case-insensitively against title, display id, and the
// raw tag string.
type FilterState struct {
	Difficulty  DifficultyFilter `json:"difficulty"`
	Tags        []string         `json:"tags"`
	SearchQuery string           `json:"searchQuery"`
}

// DefaultFilters returns the filter state used when nothing is persisted.
func DefaultFilters() FilterState {
	return FilterState{Difficulty: FilterAll, Tags: []string{}, SearchQuery: ""}
}
