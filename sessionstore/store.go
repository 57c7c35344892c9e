package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
)

// Store is the server-side source of truth for sessions. Get returns
// (nil, nil) for a missing or expired token.
type Store interface {
	Get(ctx context.Context, token string) (*models.Session, error)
	Set(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, token string) error
}

// MemoryStore keeps sessions in process memory. Suitable for tests and
// single-instance deployments where logins may not survive restarts.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
	nowFunc  func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		nowFunc:  time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if sess.Expired(s.nowFunc()) {
		delete(s.sessions, token)
		return nil, nil
	}
	return &sess, nil
}

func (s *MemoryStore) Set(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = *session
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
