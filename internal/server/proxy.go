package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"leetdash/internal/shared"
)

// DefaultUpstream is the GraphQL endpoint the proxy forwards to.
const DefaultUpstream = "https://leetcode.com/graphql"

// GraphQLProxy forwards {query, variables} payloads verbatim to the upstream
// GraphQL endpoint and returns the upstream JSON response unchanged.
//
// The proxy performs no GraphQL processing of its own. It exists so the
// dashboard talks to a same-origin endpoint; the only added behavior is input
// validation and error-code mapping:
//
//   - missing query        → 400 {"error": "Query is required"}
//   - upstream non-success → same status {"error": ...}
//   - anything else        → 500 {"error": message}
type GraphQLProxy struct {
	upstream   string
	httpClient *http.Client
	logger     *log.Logger
}

// NewGraphQLProxy creates a proxy handler for the given upstream endpoint.
func NewGraphQLProxy(upstream string, client *http.Client, logger *log.Logger) *GraphQLProxy {
	if upstream == "" {
		upstream = DefaultUpstream
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &GraphQLProxy{
		upstream:   upstream,
		httpClient: client,
		logger:     logger,
	}
}

// Routes returns the path patterns this handler serves.
func (p *GraphQLProxy) Routes() []string {
	return []string{"/api/leetcode"}
}

// ServeHTTP implements [http.Handler].
func (p *GraphQLProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var payload struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if payload.Query == "" {
		writeError(w, http.StatusBadRequest, "Query is required")
		return
	}

	if payload.Variables == nil {
		payload.Variables = map[string]any{}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, p.upstream, bytes.NewReader(body))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// The upstream rejects requests that do not look browser-originated.
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")
	req.Header.Set("Origin", "https://leetcode.com")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Error("upstream request failed", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Warn("upstream returned non-success status", "status", resp.StatusCode)
		writeError(w, resp.StatusCode, "HTTP error! status: "+resp.Status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, resp.Body); err != nil {
		p.logger.Error("failed to write upstream response", "err", err)
	}
}

// HealthHandler responds to liveness probes.
type HealthHandler struct{}

// Routes returns the path patterns this handler serves.
func (h *HealthHandler) Routes() []string {
	return []string{"/health"}
}

// ServeHTTP implements [http.Handler].
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
