// package session owns the user session aggregate: handle lifecycle, persisted
// preferences, the solved-problem set, and its reconciliation with remote
// submission data.
package session

import (
	"encoding/json"
	"sort"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"leetdash/internal/catalog"
	"leetdash/internal/models"
	"leetdash/internal/services"
	"leetdash/internal/shared"
)

// Session is the single owned state aggregate for one dashboard process.
//
// All mutation goes through the documented operations; the presentation layer
// only reads. A mutex guards the state because the TUI fetches remote data
// from goroutines while the update loop keeps servicing user input. The
// in-flight flag and sync guard (not the mutex) are what deduplicate syncs.
type Session struct {
	mu      sync.Mutex
	store   Store
	catalog *catalog.Catalog
	remote  services.Service
	logger  *log.Logger

	handle     string
	solved     map[string]struct{}
	filters    models.FilterState
	sortBy     models.SortOption
	hideTags   bool
	hideSolved bool

	syncing   bool
	syncLimit int
	synced    map[string]struct{} // composite (handle, catalog-size) keys attempted this process
}

// Opts contains the dependencies for creating a Session.
type Opts struct {
	Store     Store
	Catalog   *catalog.Catalog
	Remote    services.Service
	Logger    *log.Logger
	SyncLimit int
}

// New creates a Session with defaults applied and preferences loaded from the
// store. Malformed persisted values are logged and fall back to defaults;
// they never fail construction.
func New(opts Opts) *Session {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.SyncLimit <= 0 {
		opts.SyncLimit = services.DefaultSyncLimit
	}

	s := &Session{
		store:      opts.Store,
		catalog:    opts.Catalog,
		remote:     opts.Remote,
		logger:     opts.Logger,
		solved:     make(map[string]struct{}),
		filters:    models.DefaultFilters(),
		sortBy:     models.DefaultSort,
		hideTags:   true,
		hideSolved: false,
		syncLimit:  opts.SyncLimit,
		synced:     make(map[string]struct{}),
	}
	s.loadPreferences()
	return s
}

// loadPreferences restores filters, sort, display toggles, handle, and the
// solved set from the store.
func (s *Session) loadPreferences() {
	if raw, ok := s.get(KeyFilters); ok {
		var filters models.FilterState
		if err := json.Unmarshal([]byte(raw), &filters); err != nil {
			s.logger.Warn("malformed stored filters, using defaults", "err", err)
		} else {
			if filters.Difficulty == "" {
				filters.Difficulty = models.FilterAll
			}
			if filters.Tags == nil {
				filters.Tags = []string{}
			}
			s.filters = filters
		}
	}

	if raw, ok := s.get(KeySortBy); ok {
		if models.ValidSort(models.SortOption(raw)) {
			s.sortBy = models.SortOption(raw)
		} else {
			s.logger.Warn("unknown stored sort option, using default", "sort", raw)
		}
	}

	if raw, ok := s.get(KeyHideTags); ok {
		s.hideTags = raw == "true"
	}
	if raw, ok := s.get(KeyHideSolved); ok {
		s.hideSolved = raw == "true"
	}

	if raw, ok := s.get(KeyUsername); ok && raw != "" {
		s.handle = raw
		s.solved = s.loadSolvedLocked()
	}

	// Stored solved-sort is only meaningful with a handle present.
	if s.handle == "" && s.sortBy == models.SortSolved {
		s.sortBy = models.DefaultSort
	}
}

// get wraps Store.Get, demoting store failures to log lines per the
// parse-error policy: missing data is an empty state, never a crash.
func (s *Session) get(key string) (string, bool) {
	value, ok, err := s.store.Get(key)
	if err != nil {
		s.logger.Warn("preference read failed", "key", key, "err", err)
		return "", false
	}
	return value, ok
}

func (s *Session) set(key, value string) {
	if err := s.store.Set(key, value); err != nil {
		s.logger.Warn("preference write failed", "key", key, "err", err)
	}
}

func (s *Session) remove(key string) {
	if err := s.store.Remove(key); err != nil {
		s.logger.Warn("preference remove failed", "key", key, "err", err)
	}
}

// loadSolvedLocked reads the persisted solved set. Malformed JSON yields an
// empty set.
func (s *Session) loadSolvedLocked() map[string]struct{} {
	solved := make(map[string]struct{})
	raw, ok := s.get(KeySolved)
	if !ok {
		return solved
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("malformed stored solved set", "err", err)
		return solved
	}
	for _, id := range ids {
		solved[id] = struct{}{}
	}
	return solved
}

// persistSolvedLocked writes the in-memory solved set, sorted for stable
// on-disk form. An empty set is never written so a zero-activity sync cannot
// clobber previously persisted progress.
func (s *Session) persistSolvedLocked() {
	if len(s.solved) == 0 {
		return
	}

	ids := make([]string, 0, len(s.solved))
	for id := range s.solved {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		s.logger.Warn("failed to encode solved set", "err", err)
		return
	}
	s.set(KeySolved, string(data))
}

// SetHandle transitions the session to a new handle, or to anonymous when
// newHandle trims to empty.
//
// Setting the current handle again is a no-op, so reactive re-invocations
// cannot trigger redundant downstream effects. A handle change clears the
// sync guard and loads the persisted solved set; logout clears the solved
// set, the guard, and collapses a solved-status sort to the default.
func (s *Session) SetHandle(newHandle string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newHandle = trimHandle(newHandle)
	if newHandle == s.handle {
		return
	}

	if newHandle == "" {
		s.handle = ""
		s.solved = make(map[string]struct{})
		s.synced = make(map[string]struct{})
		s.remove(KeyUsername)
		if s.sortBy == models.SortSolved {
			s.sortBy = models.DefaultSort
			s.set(KeySortBy, string(s.sortBy))
		}
		s.logger.Info("logged out")
		return
	}

	s.handle = newHandle
	s.synced = make(map[string]struct{})
	s.solved = s.loadSolvedLocked()
	s.set(KeyUsername, newHandle)
	s.logger.Info("logged in", "handle", newHandle)
}

// ToggleSolved adds or removes a manual solved mark for a question id.
//
// Requires an active handle. The write is a direct user action, so it
// persists immediately and is not gated by an in-flight sync.
func (s *Session) ToggleSolved(questionID string, makeSolved bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == "" {
		return shared.ErrNotLoggedIn
	}

	if makeSolved {
		s.solved[questionID] = struct{}{}
	} else {
		delete(s.solved, questionID)
	}
	s.persistSolvedLocked()
	return nil
}

// SetFilters replaces the filter criteria and persists them.
func (s *Session) SetFilters(filters models.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if filters.Difficulty == "" {
		filters.Difficulty = models.FilterAll
	}
	if filters.Tags == nil {
		filters.Tags = []string{}
	}
	s.filters = filters

	data, err := json.Marshal(filters)
	if err != nil {
		s.logger.Warn("failed to encode filters", "err", err)
		return
	}
	s.set(KeyFilters, string(data))
}

// SetSortBy selects the sort key and persists it. Unknown keys are ignored.
func (s *Session) SetSortBy(sortBy models.SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !models.ValidSort(sortBy) {
		s.logger.Warn("ignoring unknown sort option", "sort", sortBy)
		return
	}
	s.sortBy = sortBy
	s.set(KeySortBy, string(sortBy))
}

// SetHideTags persists the hide-tags display toggle.
func (s *Session) SetHideTags(hide bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hideTags = hide
	s.set(KeyHideTags, strconv.FormatBool(hide))
}

// SetHideSolved persists the hide-solved display toggle.
func (s *Session) SetHideSolved(hide bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hideSolved = hide
	s.set(KeyHideSolved, strconv.FormatBool(hide))
}

// Handle returns the current handle, or "" when anonymous.
func (s *Session) Handle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle
}

// Filters returns the current filter criteria.
func (s *Session) Filters() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SortBy returns the current sort key.
func (s *Session) SortBy() models.SortOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortBy
}

// HideTags returns the hide-tags display toggle.
func (s *Session) HideTags() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hideTags
}

// HideSolved returns the hide-solved display toggle.
func (s *Session) HideSolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hideSolved
}

// Syncing reports whether a solved-set sync is in flight.
func (s *Session) Syncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncing
}

// IsSolved reports whether a question id is in the solved set.
func (s *Session) IsSolved(questionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.solved[questionID]
	return ok
}

// Solved returns a copy of the solved set.
func (s *Session) Solved() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	solved := make(map[string]struct{}, len(s.solved))
	for id := range s.solved {
		solved[id] = struct{}{}
	}
	return solved
}

// SolvedCount returns the size of the solved set.
func (s *Session) SolvedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.solved)
}

// View captures the current derivation inputs for the filter/sort pipeline.
func (s *Session) View() catalog.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	solved := make(map[string]struct{}, len(s.solved))
	for id := range s.solved {
		solved[id] = struct{}{}
	}

	return catalog.View{
		Filters:    s.filters,
		HideSolved: s.hideSolved,
		Solved:     solved,
		SortBy:     s.sortBy,
		Handle:     s.handle,
	}
}

// VisibleProblems derives the ordered visible list from the current state.
func (s *Session) VisibleProblems() []models.Problem {
	return s.catalog.Visible(s.View())
}
