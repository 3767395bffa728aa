package sessions

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/platonfloria/chaum-pedersen-auth/internal/common"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/models"
	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(ttl time.Duration) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewMemoryStore(ttl)
	s.now = clock.Now
	return s, clock
}

func pendingSession() *models.Session {
	return &models.Session{
		UserName:   "alice",
		Commitment: zkp.DLPair{First: big.NewInt(254414293247193407), Second: big.NewInt(320950112331669597)},
		Challenge:  zkp.DLScalar{Value: big.NewInt(4051888)},
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	s, _ := newTestStore(0)
	ctx := context.Background()

	in := pendingSession()
	id, err := s.Create(ctx, in)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)
	assert.Empty(t, in.AuthID, "input must not be modified")

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.AuthID)
	assert.Equal(t, "alice", got.UserName)
	assert.False(t, got.Verified())
	assert.Equal(t, int64(4051888), got.Challenge.(zkp.DLScalar).Value.Int64())
}

func TestMemoryStore_DistinctIDs(t *testing.T) {
	s, _ := newTestStore(0)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := s.Create(ctx, pendingSession())
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
	assert.Equal(t, 100, s.Len())
}

func TestMemoryStore_Create_IDFailure(t *testing.T) {
	s, _ := newTestStore(0)
	s.newID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("entropy exhausted") }

	_, err := s.Create(context.Background(), pendingSession())
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestMemoryStore_Create_Collision(t *testing.T) {
	s, _ := newTestStore(0)
	fixed := uuid.MustParse("6f1a8c8e-3a5c-4f37-9f59-0d6f4a8b2c11")
	s.newID = func() (uuid.UUID, error) { return fixed, nil }

	_, err := s.Create(context.Background(), pendingSession())
	require.NoError(t, err)
	_, err = s.Create(context.Background(), pendingSession())
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	s, _ := newTestStore(0)
	_, err := s.Get(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.MarkVerified(context.Background(), uuid.NewString(), "x")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryStore_MarkVerified_FirstWriterWins(t *testing.T) {
	s, _ := newTestStore(0)
	ctx := context.Background()

	id, err := s.Create(ctx, pendingSession())
	require.NoError(t, err)

	recorded, err := s.MarkVerified(ctx, id, "first")
	require.NoError(t, err)
	assert.Equal(t, "first", recorded)

	recorded, err = s.MarkVerified(ctx, id, "second")
	require.NoError(t, err)
	assert.Equal(t, "first", recorded)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "first", got.SessionID)
}

func TestMemoryStore_MarkVerified_Concurrent(t *testing.T) {
	s, _ := newTestStore(0)
	ctx := context.Background()

	id, err := s.Create(ctx, pendingSession())
	require.NoError(t, err)

	const n = 64
	results := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := s.MarkVerified(ctx, id, fmt.Sprintf("session-%d", i))
			assert.NoError(t, err)
			results[i] = r
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	ctx := context.Background()

	id, err := s.Create(ctx, pendingSession())
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	_, err = s.Get(ctx, id)
	require.NoError(t, err)

	clock.Advance(time.Second)
	_, err = s.Get(ctx, id)
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = s.MarkVerified(ctx, id, "late")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryStore_Sweep(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	ctx := context.Background()

	_, err := s.Create(ctx, pendingSession())
	require.NoError(t, err)
	clock.Advance(30 * time.Second)
	fresh, err := s.Create(ctx, pendingSession())
	require.NoError(t, err)

	assert.Equal(t, 0, s.Sweep(ctx, clock.Now()))
	assert.Equal(t, 1, s.Sweep(ctx, clock.Now().Add(40*time.Second)))
	assert.Equal(t, 1, s.Len())

	_, err = s.Get(ctx, fresh)
	require.NoError(t, err)
}

func TestMemoryStore_SweepDisabled(t *testing.T) {
	s, clock := newTestStore(0)
	ctx := context.Background()

	id, err := s.Create(ctx, pendingSession())
	require.NoError(t, err)

	assert.Equal(t, 0, s.Sweep(ctx, clock.Now().Add(24*time.Hour)))
	clock.Advance(24 * time.Hour)
	_, err = s.Get(ctx, id)
	require.NoError(t, err)
}
