package models

import (
	"reflect"
	"testing"
)

func TestDifficultyRank(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		want       int
	}{
		{Easy, 1},
		{Medium, 2},
		{Hard, 3},
		{Difficulty("Unknown"), 0},
	}

	for _, tc := range cases {
		if got := tc.difficulty.Rank(); got != tc.want {
			t.Errorf("Rank(%s): expected %d, got %d", tc.difficulty, tc.want, got)
		}
	}
}

func TestProblemTags(t *testing.T) {
	t.Run("Splits And Trims", func(t *testing.T) {
		p := Problem{TopicTags: "Array; Hash Table ;Math"}
		want := []string{"Array", "Hash Table", "Math"}
		if got := p.Tags(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Drops Empty Segments", func(t *testing.T) {
		p := Problem{TopicTags: "Array;;  ;Math"}
		want := []string{"Array", "Math"}
		if got := p.Tags(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Empty String", func(t *testing.T) {
		p := Problem{}
		if got := p.Tags(); len(got) != 0 {
			t.Errorf("expected no tags, got %v", got)
		}
	})
}

func TestValidSort(t *testing.T) {
	for _, sortBy := range []SortOption{
		SortLikes, SortAcceptanceRate, SortDifficulty, SortTotalAccepted, SortTitle, SortSolved, SortAccess,
	} {
		if !ValidSort(sortBy) {
			t.Errorf("expected %s to be valid", sortBy)
		}
	}

	if ValidSort(SortOption("bogus")) {
		t.Error("expected unknown sort to be invalid")
	}
	if ValidSort(SortOption("")) {
		t.Error("expected empty sort to be invalid")
	}
}

func TestDefaultFilters(t *testing.T) {
	filters := DefaultFilters()
	if filters.Difficulty != FilterAll {
		t.Errorf("expected All difficulty, got %s", filters.Difficulty)
	}
	if filters.Tags == nil || len(filters.Tags) != 0 {
		t.Errorf("expected empty non-nil tags, got %v", filters.Tags)
	}
	if filters.SearchQuery != "" {
		t.Errorf("expected empty search, got %q", filters.SearchQuery)
	}
}
