package session

import (
	"context"
	"fmt"
	"strings"

	"leetdash/internal/services"
	"leetdash/internal/shared"
)

// SyncResult reports what one reconciliation pass did.
type SyncResult struct {
	Performed bool // false when preconditions short-circuited the call
	Fetched   int  // slugs returned by the remote window
	Resolved  int  // slugs resolved against the local catalog
	Added     int  // ids newly added to the solved set
	Total     int  // solved-set size after the merge
}

// syncKey builds the composite (handle, catalog-size) guard key.
func syncKey(handle string, catalogSize int) string {
	return fmt.Sprintf("%s-%d", handle, catalogSize)
}

func trimHandle(handle string) string {
	return strings.TrimSpace(handle)
}

// Sync reconciles the solved set with the remote recent-accepted window.
//
// The call is idempotent per (handle, catalog-size) pair: the guard records
// every attempted key for the process lifetime, and a call while another sync
// is in flight is a no-op. A failed attempt removes its guard key so one
// retry becomes possible, and falls back to the persisted solved set so a
// transient network failure cannot leave the in-memory set empty.
//
// The merge is additive only (set union); manual marks absent from the remote
// window are always retained. The merged set is persisted unless empty. If
// the handle changed while the fetch was in flight, the late result is
// discarded instead of merging into the wrong session.
func (s *Session) Sync(ctx context.Context) (*SyncResult, error) {
	s.mu.Lock()

	if s.handle == "" {
		s.mu.Unlock()
		return nil, shared.ErrNotLoggedIn
	}
	if s.catalog.Len() == 0 {
		s.mu.Unlock()
		return nil, shared.ErrEmptyCatalog
	}
	if s.syncing {
		s.mu.Unlock()
		return &SyncResult{}, nil
	}

	key := syncKey(s.handle, s.catalog.Len())
	if _, attempted := s.synced[key]; attempted {
		s.mu.Unlock()
		return &SyncResult{}, nil
	}

	// Mark attempted and in flight before any network call so a re-entrant
	// trigger from the same reactive cycle cannot start a second fetch.
	s.synced[key] = struct{}{}
	s.syncing = true
	handle := s.handle
	s.mu.Unlock()

	slugs, err := services.SolvedSlugs(ctx, s.remote, handle, s.syncLimit)

	s.mu.Lock()
	defer func() {
		s.syncing = false
		s.mu.Unlock()
	}()

	if s.handle != handle {
		// Logout or relogin raced the fetch; the result belongs to a session
		// that no longer exists. SetHandle already cleared the guard.
		s.logger.Warn("discarding stale sync result", "started_for", handle)
		return &SyncResult{}, nil
	}

	if err != nil {
		delete(s.synced, key)
		s.solved = s.loadSolvedLocked()
		s.logger.Error("solved-set sync failed", "handle", handle, "err", err)
		return nil, fmt.Errorf("sync failed: %w", err)
	}

	// Resolve remote slugs through the catalog; slugs for problems outside
	// the local catalog are silently dropped.
	index := s.catalog.SlugIndex()
	result := &SyncResult{Performed: true, Fetched: len(slugs)}
	for slug := range slugs {
		id, ok := index[slug]
		if !ok {
			continue
		}
		result.Resolved++
		if _, exists := s.solved[id]; !exists {
			s.solved[id] = struct{}{}
			result.Added++
		}
	}

	result.Total = len(s.solved)
	s.persistSolvedLocked()
	s.logger.Info("solved-set sync complete",
		"handle", handle, "fetched", result.Fetched, "resolved", result.Resolved, "added", result.Added)
	return result, nil
}
