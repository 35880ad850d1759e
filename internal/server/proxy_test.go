package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body.Error
}

func TestGraphQLProxy(t *testing.T) {
	t.Run("Rejects Non POST", func(t *testing.T) {
		proxy := NewGraphQLProxy("http://example.com", nil, nil)
		rec := httptest.NewRecorder()

		proxy.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leetcode", nil))

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})

	t.Run("Rejects Invalid JSON", func(t *testing.T) {
		proxy := NewGraphQLProxy("http://example.com", nil, nil)
		rec := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodPost, "/api/leetcode", strings.NewReader("{broken"))
		proxy.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("Rejects Missing Query", func(t *testing.T) {
		proxy := NewGraphQLProxy("http://example.com", nil, nil)
		rec := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodPost, "/api/leetcode", strings.NewReader(`{"variables": {}}`))
		proxy.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if msg := decodeError(t, rec); msg != "Query is required" {
			t.Errorf("expected 'Query is required', got %q", msg)
		}
	})

	t.Run("Forwards Payload With Browser Headers", func(t *testing.T) {
		var captured struct {
			contentType string
			referer     string
			origin      string
			body        map[string]any
		}

		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured.contentType = r.Header.Get("Content-Type")
			captured.referer = r.Header.Get("Referer")
			captured.origin = r.Header.Get("Origin")
			json.NewDecoder(r.Body).Decode(&captured.body)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data": {"ok": true}}`))
		}))
		defer upstream.Close()

		proxy := NewGraphQLProxy(upstream.URL, nil, nil)
		rec := httptest.NewRecorder()

		payload := `{"query": "query { x }", "variables": {"username": "alice"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/leetcode", strings.NewReader(payload))
		proxy.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured.contentType != "application/json" {
			t.Errorf("expected application/json content type, got %q", captured.contentType)
		}
		if captured.referer != "https://leetcode.com" {
			t.Errorf("expected leetcode referer, got %q", captured.referer)
		}
		if captured.origin != "https://leetcode.com" {
			t.Errorf("expected leetcode origin, got %q", captured.origin)
		}
		if captured.body["query"] != "query { x }" {
			t.Errorf("expected query forwarded verbatim, got %v", captured.body["query"])
		}
		if !strings.Contains(rec.Body.String(), `"ok": true`) && !strings.Contains(rec.Body.String(), `"ok":true`) {
			t.Errorf("expected upstream body passed through, got %s", rec.Body.String())
		}
	})

	t.Run("Defaults Missing Variables To Empty Object", func(t *testing.T) {
		var body map[string]any
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"data": {}}`))
		}))
		defer upstream.Close()

		proxy := NewGraphQLProxy(upstream.URL, nil, nil)
		rec := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodPost, "/api/leetcode", strings.NewReader(`{"query": "query { x }"}`))
		proxy.ServeHTTP(rec, req)

		variables, ok := body["variables"].(map[string]any)
		if !ok {
			t.Fatalf("expected variables object, got %T", body["variables"])
		}
		if len(variables) != 0 {
			t.Errorf("expected empty variables, got %v", variables)
		}
	})

	t.Run("Mirrors Upstream Error Status", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer upstream.Close()

		proxy := NewGraphQLProxy(upstream.URL, nil, nil)
		rec := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodPost, "/api/leetcode", strings.NewReader(`{"query": "query { x }"}`))
		proxy.ServeHTTP(rec, req)

		if rec.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429 passed through, got %d", rec.Code)
		}
		if msg := decodeError(t, rec); !strings.Contains(msg, "HTTP error! status:") {
			t.Errorf("expected upstream status message, got %q", msg)
		}
	})

	t.Run("Unreachable Upstream Is 500", func(t *testing.T) {
		proxy := NewGraphQLProxy("http://127.0.0.1:1", nil, nil)
		rec := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodPost, "/api/leetcode", strings.NewReader(`{"query": "query { x }"}`))
		proxy.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rec.Code)
		}
	})

	t.Run("Routes", func(t *testing.T) {
		proxy := NewGraphQLProxy("", nil, nil)
		routes := proxy.Routes()
		if len(routes) != 1 || routes[0] != "/api/leetcode" {
			t.Errorf("expected [/api/leetcode], got %v", routes)
		}
	})
}

func TestHealthHandler(t *testing.T) {
	handler := &HealthHandler{}
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("expected ok status in body, got %s", rec.Body.String())
	}
}

func TestRouter(t *testing.T) {
	t.Run("Method Filter", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodPost, "/only-post", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/only-post", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405 for wrong method, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/only-post", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200 for matching method, got %d", rec.Code)
		}
	})

	t.Run("Middleware Applied In Order", func(t *testing.T) {
		var order []string
		mark := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		router := NewBasicRouter()
		router.Use(mark("first"), mark("second"))
		router.Handle(http.MethodGet, "/x", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Errorf("expected [first second], got %v", order)
		}
	})

	t.Run("Handler Registers All Routes", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handler(&HealthHandler{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("expected health route registered, got %d", rec.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("Non Positive RPS Is Passthrough", func(t *testing.T) {
		middleware := RateLimit(0)
		called := false
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		if !called {
			t.Error("expected handler to be called")
		}
	})

	t.Run("Allows Requests Within Limit", func(t *testing.T) {
		middleware := RateLimit(1000)
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}
