//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"arcana/internal/session"
	redisstore "arcana/internal/session/store/redis"
	"arcana/pkg/platform/sentinel"
	"arcana/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *redisstore.Store
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = redisstore.New(s.redis.Client, 30*time.Minute)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	sess := session.Session{
		ID:        uuid.NewString(),
		Pool:      []int{12, 0, 44, 7, 3, 61, 29, 18},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	s.Require().NoError(s.store.Create(ctx, sess))

	found, err := s.store.Get(ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(sess.Pool, found.Pool)
	s.True(sess.CreatedAt.Equal(found.CreatedAt))
}

func (s *RedisStoreSuite) TestGetUnknownID() {
	_, err := s.store.Get(context.Background(), uuid.NewString())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisStoreSuite) TestDelete() {
	ctx := context.Background()
	sess := session.Session{ID: uuid.NewString(), Pool: []int{1}, CreatedAt: time.Now().UTC()}
	s.Require().NoError(s.store.Create(ctx, sess))
	s.Require().NoError(s.store.Delete(ctx, sess.ID))

	_, err := s.store.Get(ctx, sess.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisStoreSuite) TestNativeExpiry() {
	ctx := context.Background()
	shortLived := redisstore.New(s.redis.Client, time.Second)

	sess := session.Session{ID: uuid.NewString(), Pool: []int{5}, CreatedAt: time.Now().UTC()}
	s.Require().NoError(shortLived.Create(ctx, sess))

	_, err := shortLived.Get(ctx, sess.ID)
	s.Require().NoError(err)

	time.Sleep(1500 * time.Millisecond)

	_, err = shortLived.Get(ctx, sess.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisStoreSuite) TestSweepIsNoOp() {
	removed, err := s.store.Sweep(context.Background(), time.Now())
	s.Require().NoError(err)
	s.Zero(removed)
}
