//go:build integration

package antispam

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/linskybing/forms-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var redisAddr string

func TestMain(m *testing.M) {
	addr, cleanup := testutils.SetupRedisForIntegration()
	redisAddr = addr
	code := m.Run()
	cleanup()
	os.Exit(code)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	rdb, err := NewRedisClient(ctx, redisAddr, "", 0)
	require.NoError(t, err)
	defer rdb.Close()
	s := NewRedisStore(rdb)

	key := Key("sess", "contact", checkDuplicate)
	require.NoError(t, s.Set(ctx, key, "tok", time.Minute))

	v, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)

	v, ok, err = s.Consume(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)

	_, ok, err = s.Consume(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChecker_WithRedisStore(t *testing.T) {
	ctx := context.Background()
	rdb, err := NewRedisClient(ctx, redisAddr, "", 0)
	require.NoError(t, err)
	defer rdb.Close()

	c := NewChecker(NewRedisStore(rdb), staticPolicy(Policy{DuplicateCheckEnabled: true}))
	req := Request{SessionID: "redis-sess", FormHandle: "contact"}
	fields, err := c.Render(ctx, req)
	require.NoError(t, err)

	ok, err := c.Verify(ctx, Attempt{Request: req, Params: fields})
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.Verify(ctx, Attempt{Request: req, Params: fields})
	require.NoError(t, err)
	assert.False(t, ok)
}
