package repositories

import (
	"database/sql"
	"reflect"
	"testing"

	"leetdash/internal/shared"
)

// setupTestDB creates an in-memory SQLite database
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestPrefRepository(t *testing.T) {
	t.Run("New Creates Schema", func(t *testing.T) {
		db := setupTestDB(t)

		if _, err := NewPrefRepository(db); err != nil {
			t.Fatalf("failed to create repository: %v", err)
		}

		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'prefs'").Scan(&name)
		if err != nil {
			t.Fatalf("prefs table not created: %v", err)
		}
	})

	t.Run("Get Missing Key", func(t *testing.T) {
		db := setupTestDB(t)
		repo, err := NewPrefRepository(db)
		if err != nil {
			t.Fatalf("failed to create repository: %v", err)
		}

		value, ok, err := repo.Get("nope")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if ok {
			t.Error("expected missing key to report not present")
		}
		if value != "" {
			t.Errorf("expected empty value, got %q", value)
		}
	})

	t.Run("Set And Get", func(t *testing.T) {
		db := setupTestDB(t)
		repo, err := NewPrefRepository(db)
		if err != nil {
			t.Fatalf("failed to create repository: %v", err)
		}

		if err := repo.Set("leetcode_username", "alice"); err != nil {
			t.Fatalf("failed to set pref: %v", err)
		}

		value, ok, err := repo.Get("leetcode_username")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !ok {
			t.Fatal("expected key to be present")
		}
		if value != "alice" {
			t.Errorf("expected 'alice', got %q", value)
		}
	})

	t.Run("Set Upserts", func(t *testing.T) {
		db := setupTestDB(t)
		repo, err := NewPrefRepository(db)
		if err != nil {
			t.Fatalf("failed to create repository: %v", err)
		}

		if err := repo.Set("leetcode_sort_by", "likes"); err != nil {
			t.Fatalf("failed to set pref: %v", err)
		}
		if err := repo.Set("leetcode_sort_by", "title"); err != nil {
			t.Fatalf("failed to overwrite pref: %v", err)
		}

		value, _, err := repo.Get("leetcode_sort_by")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if value != "title" {
			t.Errorf("expected last write to win, got %q", value)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM prefs").Scan(&count); err != nil {
			t.Fatalf("failed to count rows: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 row after upsert, got %d", count)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		db := setupTestDB(t)
		repo, err := NewPrefRepository(db)
		if err != nil {
			t.Fatalf("failed to create repository: %v", err)
		}

		if err := repo.Set("leetcode_username", "alice"); err != nil {
			t.Fatalf("failed to set pref: %v", err)
		}
		if err := repo.Remove("leetcode_username"); err != nil {
			t.Fatalf("failed to remove pref: %v", err)
		}

		if _, ok, _ := repo.Get("leetcode_username"); ok {
			t.Error("expected key to be gone after remove")
		}

		if err := repo.Remove("leetcode_username"); err != nil {
			t.Errorf("removing a missing key should not error, got %v", err)
		}
	})

	t.Run("Keys", func(t *testing.T) {
		db := setupTestDB(t)
		repo, err := NewPrefRepository(db)
		if err != nil {
			t.Fatalf("failed to create repository: %v", err)
		}

		if err := repo.Set("leetcode_username", "alice"); err != nil {
			t.Fatalf("failed to set pref: %v", err)
		}
		if err := repo.Set("leetcode_sort_by", "likes"); err != nil {
			t.Fatalf("failed to set pref: %v", err)
		}

		keys, err := repo.Keys()
		if err != nil {
			t.Fatalf("failed to list keys: %v", err)
		}

		want := []string{"leetcode_sort_by", "leetcode_username"}
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("expected %v, got %v", want, keys)
		}
	})
}
