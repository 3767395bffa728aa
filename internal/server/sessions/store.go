// Package sessions tracks authentication attempts between the challenge and
// the answer.
package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/platonfloria/chaum-pedersen-auth/internal/common"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/models"
)

type Store interface {
	// Create stores a copy of session under a fresh auth id and returns it.
	Create(ctx context.Context, session *models.Session) (string, error)
	// Get returns a copy of the session or common.ErrorNotFound.
	Get(ctx context.Context, authID string) (*models.Session, error)
	// MarkVerified records sessionID unless one is already set and returns
	// whichever id ends up recorded.
	MarkVerified(ctx context.Context, authID, sessionID string) (string, error)
	// Sweep drops expired sessions and reports how many were removed.
	Sweep(ctx context.Context, now time.Time) int
}

// MemoryStore is a Store backed by a mutex-guarded map. With a positive ttl
// a session older than ttl is treated as absent and removed by Sweep.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
	ttl      time.Duration
	now      func() time.Time
	newID    func() (uuid.UUID, error)
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
		newID:    uuid.NewRandom,
	}
}

func (s *MemoryStore) Create(ctx context.Context, session *models.Session) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id, err := s.newID()
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	authID := id.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[authID]; ok {
		return "", fmt.Errorf("%w: auth id collision", common.ErrorInternal)
	}

	stored := *session
	stored.AuthID = authID
	stored.CreatedAt = s.now()
	stored.SessionID = ""
	s.sessions[authID] = stored

	return authID, nil
}

func (s *MemoryStore) Get(ctx context.Context, authID string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.lookup(authID)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &session, nil
}

func (s *MemoryStore) MarkVerified(ctx context.Context, authID, sessionID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.lookup(authID)
	if !ok {
		return "", common.ErrorNotFound
	}
	if session.Verified() {
		return session.SessionID, nil
	}

	session.SessionID = sessionID
	s.sessions[authID] = session
	return sessionID, nil
}

func (s *MemoryStore) Sweep(ctx context.Context, now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if ctx.Err() != nil {
			break
		}
		if s.expired(session, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// lookup must be called with mu held.
func (s *MemoryStore) lookup(authID string) (models.Session, bool) {
	session, ok := s.sessions[authID]
	if !ok || s.expired(session, s.now()) {
		return models.Session{}, false
	}
	return session, true
}

func (s *MemoryStore) expired(session models.Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(session.CreatedAt) >= s.ttl
}
