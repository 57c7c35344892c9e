package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
)

func testSession(token string, expiresAt time.Time) *models.Session {
	return &models.Session{
		Token:     token,
		AdminID:   7,
		Username:  "desk",
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, testSession("tok", time.Now().Add(time.Hour))))

	got, err := store.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, uint(7), got.AdminID)
	assert.Equal(t, models.RoleAdmin, got.Role)
}

func TestMemoryStore_MissingToken(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get(context.Background(), "nothing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_ExpiredSessionBehavesLikeMissing(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, testSession("tok", time.Now().Add(time.Hour))))

	// Move the clock past the expiry.
	store.nowFunc = func() time.Time { return time.Now().Add(2 * time.Hour) }

	got, err := store.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.Nil(t, got)

	// The expired entry is pruned, so a later read at the original clock
	// still misses.
	store.nowFunc = time.Now
	got, err = store.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_DeleteIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, testSession("tok", time.Now().Add(time.Hour))))
	assert.NoError(t, store.Delete(ctx, "tok"))
	assert.NoError(t, store.Delete(ctx, "tok"))

	got, err := store.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
