package lock

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storeradar/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// fakeStore emulates SET NX and the compare-and-delete script in memory.
type fakeStore struct {
	values map[string]string
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (f *fakeStore) SetNX(ctx context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)

		return cmd
	}
	if _, exists := f.values[key]; exists {
		cmd.SetVal(false)

		return cmd
	}
	f.values[key] = value.(string)
	cmd.SetVal(true)

	return cmd
}

func (f *fakeStore) evalDelete(ctx context.Context, keys []string, args ...any) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if f.values[keys[0]] == args[0] {
		delete(f.values, keys[0])
		cmd.SetVal(int64(1))

		return cmd
	}
	cmd.SetVal(int64(0))

	return cmd
}

func (f *fakeStore) Eval(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.evalDelete(ctx, keys, args...)
}

func (f *fakeStore) EvalSha(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.evalDelete(ctx, keys, args...)
}

func (f *fakeStore) EvalRO(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	return f.Eval(ctx, script, keys, args...)
}

func (f *fakeStore) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	return f.EvalSha(ctx, sha1, keys, args...)
}

func (f *fakeStore) ScriptExists(ctx context.Context, _ ...string) *redis.BoolSliceCmd {
	cmd := redis.NewBoolSliceCmd(ctx)
	cmd.SetVal([]bool{true})

	return cmd
}

func (f *fakeStore) ScriptLoad(ctx context.Context, _ string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	cmd.SetVal("sha")

	return cmd
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRedisLock_AcquireIsExclusive(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	first, err := NewRedisLock(store, "storeradar:sync", time.Minute, discardLogger())
	require.NoError(t, err)
	second, err := NewRedisLock(store, "storeradar:sync", time.Minute, discardLogger())
	require.NoError(t, err)

	ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// A non-owner release leaves the holder's key alone.
	require.NoError(t, second.Release(ctx))
	assert.Contains(t, store.values, "storeradar:sync")

	require.NoError(t, first.Release(ctx))
	assert.NotContains(t, store.values, "storeradar:sync")

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLock_AcquireError(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused")

	lock, err := NewRedisLock(store, "k", 0, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, defaultLockTTL, lock.ttl)

	ok, err := lock.Acquire(context.Background())
	assert.False(t, ok)
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewRedisLock_Validation(t *testing.T) {
	_, err := NewRedisLock(nil, "k", time.Minute, nil)
	assert.Error(t, err)

	_, err = NewRedisLock(newFakeStore(), "", time.Minute, nil)
	assert.Error(t, err)
}

func TestNew_WithoutRedisUsesNoop(t *testing.T) {
	cfg := &config.Config{Sync: &config.SyncConfig{LockKey: "k"}}

	lock, err := New(Params{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: discardLogger()})
	require.NoError(t, err)

	ok, err := lock.Acquire(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, lock.Release(context.Background()))
}
