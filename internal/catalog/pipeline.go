package catalog

import (
	"sort"
	"strings"

	"leetdash/internal/models"
)

// View is the full input tuple for one derivation of the visible list.
//
// The pipeline is a pure function of this struct: the same inputs always
// produce the same ordered output, and no input is mutated.
type View struct {
	Filters    models.FilterState
	HideSolved bool
	Solved     map[string]struct{} // solved question ids
	SortBy     models.SortOption
	Handle     string // empty when anonymous
}

// Visible filters and sorts the catalog for the given view.
//
// Filters are AND-combined, except tag selection which is OR within itself.
// Sorting is stable so catalog order breaks ties deterministically.
func (c *Catalog) Visible(view View) []models.Problem {
	filtered := make([]models.Problem, 0, len(c.problems))
	for _, p := range c.problems {
		if matches(p, view) {
			filtered = append(filtered, p)
		}
	}

	sortProblems(filtered, view)
	return filtered
}

func matches(p models.Problem, view View) bool {
	f := view.Filters

	if f.Difficulty != models.FilterAll && string(f.Difficulty) != string(p.Difficulty) {
		return false
	}

	if len(f.Tags) > 0 && !hasAnyTag(p, f.Tags) {
		return false
	}

	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		matchesTitle := strings.Contains(strings.ToLower(p.Title), query)
		matchesID := strings.Contains(p.FrontendQuestionID, query)
		matchesTags := strings.Contains(strings.ToLower(p.TopicTags), query)
		if !matchesTitle && !matchesID && !matchesTags {
			return false
		}
	}

	if view.HideSolved {
		if _, solved := view.Solved[p.QuestionID]; solved {
			return false
		}
	}

	return true
}

// hasAnyTag implements the OR semantics of the tag filter.
func hasAnyTag(p models.Problem, selected []string) bool {
	tags := p.Tags()
	for _, want := range selected {
		for _, tag := range tags {
			if tag == want {
				return true
			}
		}
	}
	return false
}

func sortProblems(problems []models.Problem, view View) {
	less := comparator(view)
	if less == nil {
		return
	}
	sort.SliceStable(problems, func(i, j int) bool {
		return less(problems[i], problems[j])
	})
}

// comparator returns the less function for the view's sort key, or nil when
// the key is a no-op ordering (unknown key, or solved-sort while anonymous).
func comparator(view View) func(a, b models.Problem) bool {
	switch view.SortBy {
	case models.SortLikes:
		return func(a, b models.Problem) bool { return a.Likes > b.Likes }
	case models.SortAcceptanceRate:
		return func(a, b models.Problem) bool { return a.AcRateRaw > b.AcRateRaw }
	case models.SortDifficulty:
		return func(a, b models.Problem) bool { return a.Difficulty.Rank() < b.Difficulty.Rank() }
	case models.SortTotalAccepted:
		return func(a, b models.Problem) bool { return a.TotalAccepted > b.TotalAccepted }
	case models.SortTitle:
		return func(a, b models.Problem) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case models.SortSolved:
		if view.Handle == "" {
			return nil
		}
		return func(a, b models.Problem) bool {
			_, aSolved := view.Solved[a.QuestionID]
			_, bSolved := view.Solved[b.QuestionID]
			return aSolved && !bSolved // solved before unsolved
		}
	case models.SortAccess:
		return func(a, b models.Problem) bool {
			return !a.IsPaidOnly && b.IsPaidOnly // free before premium
		}
	default:
		return nil
	}
}
