package redisclient_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisclient "github.com/campusmatch/campusmatch/internal/datastore/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *redisclient.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return mr, redisclient.New(mr.Addr(), "")
}

func TestSessionRoundtrip(t *testing.T) {
	ctx := context.Background()
	_, client := setup(t)

	require.NoError(t, client.PutSession(ctx, "tok", 42))

	id, err := client.GetSession(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	// a miss is not an error
	id, err = client.GetSession(ctx, "unknown")
	require.NoError(t, err)
	assert.Equal(t, uint(0), id)

	require.NoError(t, client.DeleteSession(ctx, "tok"))
	id, err = client.GetSession(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, uint(0), id)
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()
	mr, client := setup(t)

	require.NoError(t, client.PutSession(ctx, "tok", 7))
	mr.FastForward(redisclient.SessionTTL + time.Minute)

	id, err := client.GetSession(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, uint(0), id)
}

func TestLikeCountCache(t *testing.T) {
	ctx := context.Background()
	_, client := setup(t)

	_, ok, err := client.GetLikeCount(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, client.SetLikeCount(ctx, 1, 5))
	require.NoError(t, client.IncrLikeCount(ctx, 1))
	require.NoError(t, client.DecrLikeCount(ctx, 1))

	n, ok, err := client.GetLikeCount(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5), n)
}

func TestDailyLikesResetAtMidnight(t *testing.T) {
	ctx := context.Background()
	mr, client := setup(t)
	now := time.Now()

	n, err := client.IncrDailyLikes(ctx, 1, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = client.IncrDailyLikes(ctx, 1, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, client.DecrDailyLikes(ctx, 1, now))

	// past midnight the key is gone and the count starts over
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	mr.FastForward(midnight.Sub(now) + time.Minute)

	n, err = client.IncrDailyLikes(ctx, 1, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
