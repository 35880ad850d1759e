package main

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"testing"

	"leetdash/internal/catalog"
	"leetdash/internal/shared"
	tu "leetdash/internal/testing"
)

func TestNewRunner(t *testing.T) {
	t.Run("Applies Defaults", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})

		if runner.config == nil {
			t.Error("expected default config")
		}
		if runner.logger == nil {
			t.Error("expected default logger")
		}
		if runner.httpClient != http.DefaultClient {
			t.Error("expected http.DefaultClient")
		}
		if runner.remote == nil {
			t.Error("expected remote service constructed from config")
		}
	})

	t.Run("Keeps Provided Remote", func(t *testing.T) {
		mock := &tu.MockService{}
		runner := NewRunner(RunnerOpts{Remote: mock})

		if runner.remote != mock {
			t.Error("expected provided remote to be kept")
		}
	})
}

func TestRunnerOutput(t *testing.T) {
	t.Run("WriteJSON Pretty", func(t *testing.T) {
		var buf bytes.Buffer
		runner := NewRunner(RunnerOpts{Output: &buf})

		if err := runner.writeJSON(map[string]int{"solved": 3}, true); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, `"solved": 3`) {
			t.Errorf("expected indented JSON, got %s", out)
		}
		if !strings.HasSuffix(out, "\n") {
			t.Error("expected trailing newline")
		}
	})

	t.Run("WriteJSON Compact", func(t *testing.T) {
		var buf bytes.Buffer
		runner := NewRunner(RunnerOpts{Output: &buf})

		if err := runner.writeJSON(map[string]int{"solved": 3}, false); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := buf.String(); got != "{\"solved\":3}\n" {
			t.Errorf("expected compact JSON, got %q", got)
		}
	})

	t.Run("WriteJSON Unmarshalable", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
		if err := runner.writeJSON(make(chan int), false); err == nil {
			t.Error("expected error for unmarshalable value")
		}
	})

	t.Run("WritePlain Failure", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
		if err := runner.writePlainln("hello"); err == nil {
			t.Error("expected error from failing writer")
		}
	})
}

func TestResolveQuestionID(t *testing.T) {
	cat, err := catalog.Parse([]byte(`[
		{"questionId": "q-1", "frontendQuestionId": "1", "title": "Two Sum", "titleSlug": "two-sum"},
		{"questionId": "q-2", "frontendQuestionId": "2", "title": "Add Two Numbers", "titleSlug": "add-two-numbers"}
	]`))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}

	t.Run("By Question ID", func(t *testing.T) {
		p, err := resolveQuestionID(cat, "q-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if p.Title != "Two Sum" {
			t.Errorf("expected Two Sum, got %s", p.Title)
		}
	})

	t.Run("By Display ID", func(t *testing.T) {
		p, err := resolveQuestionID(cat, "2")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if p.QuestionID != "q-2" {
			t.Errorf("expected q-2, got %s", p.QuestionID)
		}
	})

	t.Run("By Slug", func(t *testing.T) {
		p, err := resolveQuestionID(cat, "two-sum")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if p.QuestionID != "q-1" {
			t.Errorf("expected q-1, got %s", p.QuestionID)
		}
	})

	t.Run("Unknown Reference", func(t *testing.T) {
		_, err := resolveQuestionID(cat, "nope")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}
