package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"leetdash/internal/models"
	"leetdash/internal/shared"
)

func TestCatalog(t *testing.T) {
	t.Run("Parse", func(t *testing.T) {
		t.Run("Valid Array", func(t *testing.T) {
			data := []byte(`[
				{"questionId": "1", "title": "Two Sum", "titleSlug": "two-sum", "difficulty": "Easy", "topicTags": "Array;Hash Table"},
				{"questionId": "2", "title": "Add Two Numbers", "titleSlug": "add-two-numbers", "difficulty": "Medium", "topicTags": "Linked List;Math"}
			]`)

			cat, err := Parse(data)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if cat.Len() != 2 {
				t.Errorf("expected 2 problems, got %d", cat.Len())
			}
			if cat.Problems()[0].QuestionID != "1" {
				t.Errorf("expected source order preserved, got %s first", cat.Problems()[0].QuestionID)
			}
		})

		t.Run("Duplicate Question ID", func(t *testing.T) {
			data := []byte(`[
				{"questionId": "1", "title": "Two Sum"},
				{"questionId": "1", "title": "Two Sum Again"}
			]`)

			_, err := Parse(data)
			if err == nil {
				t.Fatal("expected error for duplicate question id")
			}
			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("Malformed JSON", func(t *testing.T) {
			if _, err := Parse([]byte(`{"not": "an array"}`)); err == nil {
				t.Error("expected error for non-array JSON")
			}
		})
	})

	t.Run("Load", func(t *testing.T) {
		t.Run("Missing File", func(t *testing.T) {
			_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
			if !errors.Is(err, shared.ErrCatalogNotFound) {
				t.Errorf("expected ErrCatalogNotFound, got %v", err)
			}
		})

		t.Run("From File", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.json")
			content := `[{"questionId": "1", "title": "Two Sum", "titleSlug": "two-sum"}]`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}

			cat, err := Load(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if cat.Len() != 1 {
				t.Errorf("expected 1 problem, got %d", cat.Len())
			}
		})
	})

	t.Run("SlugIndex", func(t *testing.T) {
		cat := &Catalog{problems: []models.Problem{
			{QuestionID: "1", TitleSlug: "two-sum"},
			{QuestionID: "2", TitleSlug: "add-two-numbers"},
		}}

		index := cat.SlugIndex()
		if index["two-sum"] != "1" {
			t.Errorf("expected slug two-sum to resolve to 1, got %s", index["two-sum"])
		}
		if index["add-two-numbers"] != "2" {
			t.Errorf("expected slug add-two-numbers to resolve to 2, got %s", index["add-two-numbers"])
		}
	})

	t.Run("AvailableTags", func(t *testing.T) {
		cat := &Catalog{problems: []models.Problem{
			{QuestionID: "1", TopicTags: "Array;Hash Table"},
			{QuestionID: "2", TopicTags: "Math;Array"},
		}}

		tags := cat.AvailableTags()
		want := []string{"Array", "Hash Table", "Math"}
		if !reflect.DeepEqual(tags, want) {
			t.Errorf("expected %v, got %v", want, tags)
		}
	})
}
