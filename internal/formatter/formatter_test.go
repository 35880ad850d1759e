package formatter

import (
	"encoding/csv"
	"strings"
	"testing"

	"leetdash/internal/models"
)

func sampleProblems() []models.Problem {
	return []models.Problem{
		{
			QuestionID:         "1",
			FrontendQuestionID: "1",
			Title:              "Two Sum",
			TitleSlug:          "two-sum",
			Difficulty:         models.Easy,
			Likes:              100,
			AcRate:             "55.1%",
			TotalAccepted:      5000,
			TopicTags:          "Array;Hash Table",
		},
		{
			QuestionID:         "3",
			FrontendQuestionID: "3",
			Title:              "Median of Two Sorted Arrays",
			TitleSlug:          "median-of-two-sorted-arrays",
			Difficulty:         models.Hard,
			Likes:              60,
			AcRate:             "38.9%",
			IsPaidOnly:         true,
			TopicTags:          "Array",
		},
	}
}

func TestExportToCSV(t *testing.T) {
	solved := map[string]struct{}{"1": {}}

	data, err := ExportToCSV(sampleProblems(), solved)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[0][0] != "ID" || records[0][8] != "Solved" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][1] != "Two Sum" || records[1][8] != "true" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	if records[2][7] != "Premium" || records[2][8] != "false" {
		t.Errorf("unexpected second row: %v", records[2])
	}
	if records[1][6] != "Array; Hash Table" {
		t.Errorf("expected joined tags, got %q", records[1][6])
	}
}

func TestExportToMarkdown(t *testing.T) {
	solved := map[string]struct{}{"1": {}}

	data, err := ExportToMarkdown("Practice Problems", sampleProblems(), solved)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "# Practice Problems") {
		t.Errorf("expected title heading, got %q", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, "2 problems") {
		t.Error("expected problem count line")
	}
	if !strings.Contains(out, "[Two Sum](https://leetcode.com/problems/two-sum/) ✓") {
		t.Error("expected solved marker on linked title")
	}
	if !strings.Contains(out, "| Premium |") {
		t.Error("expected premium access label")
	}
}

func TestExportToText(t *testing.T) {
	solved := map[string]struct{}{"1": {}}

	out := string(ExportToText(sampleProblems(), solved))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "✓") {
		t.Errorf("expected solved marker on first line, got %q", lines[0])
	}
	if strings.HasPrefix(lines[1], "✓") {
		t.Errorf("expected no marker on unsolved line, got %q", lines[1])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 60); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}

	long := strings.Repeat("a", 80)
	got := truncate(long, 60)
	if len([]rune(got)) != 60 {
		t.Errorf("expected 60 runes, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}
