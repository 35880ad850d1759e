// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"leetdash/internal/models"
)

// MockService is a configurable test double for [services.Service]. Each
// method delegates to the matching function field when set and returns an
// empty value otherwise.
type MockService struct {
	ProfileFn  func(ctx context.Context, username string) (*models.UserProfile, error)
	SolvedFn   func(ctx context.Context, username string) (*models.SolvedStats, error)
	CalendarFn func(ctx context.Context, username string, year int) (*models.CalendarData, error)
	SkillsFn   func(ctx context.Context, username string) (*models.TopicStats, error)
	ContestFn  func(ctx context.Context, username string) (*models.ContestRanking, []models.ContestHistoryEntry, error)
	RecentFn   func(ctx context.Context, username string, limit int) ([]models.RecentSubmission, error)

	mu          sync.Mutex
	recentCalls int
}

func (m *MockService) PublicProfile(ctx context.Context, username string) (*models.UserProfile, error) {
	if m.ProfileFn != nil {
		return m.ProfileFn(ctx, username)
	}
	return &models.UserProfile{Username: username}, nil
}

func (m *MockService) ProblemsSolved(ctx context.Context, username string) (*models.SolvedStats, error) {
	if m.SolvedFn != nil {
		return m.SolvedFn(ctx, username)
	}
	return &models.SolvedStats{}, nil
}

func (m *MockService) ProfileCalendar(ctx context.Context, username string, year int) (*models.CalendarData, error) {
	if m.CalendarFn != nil {
		return m.CalendarFn(ctx, username, year)
	}
	return &models.CalendarData{Counts: map[int64]int{}}, nil
}

func (m *MockService) SkillStats(ctx context.Context, username string) (*models.TopicStats, error) {
	if m.SkillsFn != nil {
		return m.SkillsFn(ctx, username)
	}
	return &models.TopicStats{}, nil
}

func (m *MockService) ContestRanking(ctx context.Context, username string) (*models.ContestRanking, []models.ContestHistoryEntry, error) {
	if m.ContestFn != nil {
		return m.ContestFn(ctx, username)
	}
	return &models.ContestRanking{}, nil, nil
}

func (m *MockService) RecentAcceptedSubmissions(ctx context.Context, username string, limit int) ([]models.RecentSubmission, error) {
	m.mu.Lock()
	m.recentCalls++
	m.mu.Unlock()

	if m.RecentFn != nil {
		return m.RecentFn(ctx, username, limit)
	}
	return nil, nil
}

func (m *MockService) Name() string { return "mock" }

// RecentCalls reports how many times RecentAcceptedSubmissions was invoked.
func (m *MockService) RecentCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recentCalls
}

// MemStore is an in-memory preference store implementing the session's Store
// contract, with injectable failures.
type MemStore struct {
	mu   sync.Mutex
	Data map[string]string

	GetErr    error
	SetErr    error
	RemoveErr error
}

func NewMemStore() *MemStore {
	return &MemStore{Data: map[string]string{}}
}

func (s *MemStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	value, ok := s.Data[key]
	return value, ok, nil
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Data[key] = value
	return nil
}

func (s *MemStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	delete(s.Data, key)
	return nil
}

// Has reports whether key is present without going through Get error injection.
func (s *MemStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.Data[key]
	return ok
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
