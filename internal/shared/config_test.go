package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Catalog.Path != "data.json" {
			t.Errorf("expected catalog path 'data.json', got %s", config.Catalog.Path)
		}
		if config.Database.Path != "leetdash.db" {
			t.Errorf("expected database path 'leetdash.db', got %s", config.Database.Path)
		}
		if config.Server.Port != 8080 {
			t.Errorf("expected port 8080, got %d", config.Server.Port)
		}
		if config.LeetCode.Endpoint != "https://leetcode.com/graphql" {
			t.Errorf("expected upstream endpoint, got %s", config.LeetCode.Endpoint)
		}
		if config.LeetCode.SyncLimit != 50 {
			t.Errorf("expected sync limit 50, got %d", config.LeetCode.SyncLimit)
		}
		if config.LeetCode.RateLimit != 2.0 {
			t.Errorf("expected rate limit 2.0, got %v", config.LeetCode.RateLimit)
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("Valid File", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			content := `
[catalog]
path = "/tmp/problems.json"

[server]
host = "0.0.0.0"
port = 9090

[leetcode]
sync_limit = 25
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.Catalog.Path != "/tmp/problems.json" {
				t.Errorf("expected catalog path override, got %s", config.Catalog.Path)
			}
			if config.Server.Port != 9090 {
				t.Errorf("expected port 9090, got %d", config.Server.Port)
			}
			if config.LeetCode.SyncLimit != 25 {
				t.Errorf("expected sync limit 25, got %d", config.LeetCode.SyncLimit)
			}
		})

		t.Run("Missing File", func(t *testing.T) {
			if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
				t.Error("expected error for missing file")
			}
		})

		t.Run("Malformed TOML", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error for malformed TOML")
			}
		})
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		t.Run("Creates From Template", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")

			if err := CreateConfigFile(path); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("created config does not parse: %v", err)
			}
			if config.Server.Port != 8080 {
				t.Errorf("expected template defaults, got port %d", config.Server.Port)
			}
		})

		t.Run("Refuses To Overwrite", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte("# existing"), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			if err := CreateConfigFile(path); err == nil {
				t.Error("expected error when config already exists")
			}
		})
	})

	t.Run("Addr", func(t *testing.T) {
		config := &Config{Server: ServerConfig{Host: "localhost", Port: 3000}}
		if addr := config.Addr(); addr != "localhost:3000" {
			t.Errorf("expected 'localhost:3000', got %s", addr)
		}
	})
}
