package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricepulse/pricepulse-api/internal/testutil"
)

func TestRedisRunLockRepo_AcquireRelease(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	repo := NewRedisRunLockRepo(client)
	ctx := context.Background()

	ok, err := repo.Acquire(ctx, "cfg-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// second acquire while held reports busy, not an error
	ok, err = repo.Acquire(ctx, "cfg-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// an unrelated configuration is unaffected
	ok, err = repo.Acquire(ctx, "cfg-2", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Release(ctx, "cfg-1"))

	ok, err = repo.Acquire(ctx, "cfg-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisRunLockRepo_LeaseExpires(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	repo := NewRedisRunLockRepo(client)
	ctx := context.Background()

	ok, err := repo.Acquire(ctx, "cfg-ttl", 50*time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(120 * time.Millisecond)

	// a crashed holder frees the configuration once the TTL elapses
	ok, err = repo.Acquire(ctx, "cfg-ttl", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisRunLockRepo_EmptyConfigID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	repo := NewRedisRunLockRepo(client)

	_, err := repo.Acquire(context.Background(), "", time.Minute)
	require.Error(t, err)
	require.Error(t, repo.Release(context.Background(), ""))
}
