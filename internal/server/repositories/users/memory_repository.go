package users

import (
	"context"
	"sync"
	"time"

	"github.com/platonfloria/chaum-pedersen-auth/internal/common"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/models"
)

// MemoryRepository keeps users in a map guarded by a RWMutex. Lookups run
// concurrently; registrations are serialized.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User), now: time.Now}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.CreatedAt = r.now()
	r.users[user.UserName] = stored

	user.CreatedAt = stored.CreatedAt
	return user, nil
}

func (r *MemoryRepository) GetUserByName(ctx context.Context, userName string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}
