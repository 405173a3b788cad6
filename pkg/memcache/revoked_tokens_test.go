package mem

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevokedTokens_RevokeAndExpire(t *testing.T) {
	store := NewRevokedTokens()
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = store.IsRevoked(ctx, "jti-2")
	assert.False(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, _ = store.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)

	// expired entries are swept on the next write
	require.NoError(t, store.Revoke(ctx, "jti-3", time.Minute))
	assert.Equal(t, 1, store.Len())
}

func TestRevokedTokens_NonPositiveTTLIgnored(t *testing.T) {
	store := NewRevokedTokens()
	require.NoError(t, store.Revoke(context.Background(), "jti", 0))
	assert.Equal(t, 0, store.Len())
}

func TestRevokedTokens_Concurrent(t *testing.T) {
	store := NewRevokedTokens()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%26))
			_ = store.Revoke(ctx, id, time.Minute)
			_, _ = store.IsRevoked(ctx, id)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 26, store.Len())
}
