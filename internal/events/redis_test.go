package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/shivaram19/gorbagana-plinko/internal/common/clock/mocks"
)

type RedisNotifierTestSuite struct {
	suite.Suite
	mr        *miniredis.Miniredis
	client    *redis.Client
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	notifier  Notifier
	ctx       context.Context
	testNow   time.Time
}

func (s *RedisNotifierTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	s.notifier, err = NewRedis(&Config{RedisClient: s.client, Clock: s.mockClock})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *RedisNotifierTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisNotifierTestSuite(t *testing.T) {
	suite.Run(t, new(RedisNotifierTestSuite))
}

func (s *RedisNotifierTestSuite) subscribe() *redis.PubSub {
	sub := s.client.Subscribe(s.ctx, Channel)
	_, err := sub.Receive(s.ctx)
	s.Require().NoError(err)
	return sub
}

func (s *RedisNotifierTestSuite) receive(sub *redis.PubSub) Event {
	ctx, cancel := context.WithTimeout(s.ctx, 2*time.Second)
	defer cancel()
	msg, err := sub.ReceiveMessage(ctx)
	s.Require().NoError(err)
	ev, err := Decode(msg.Payload)
	s.Require().NoError(err)
	return ev
}

func (s *RedisNotifierTestSuite) TestPublishWrapsPayload() {
	sub := s.subscribe()
	defer sub.Close()

	err := s.notifier.Publish(s.ctx, "room-1", TypeBallResult, map[string]int{"winning_slot": 8})
	s.Require().NoError(err)

	ev := s.receive(sub)
	s.Equal(TypeBallResult, ev.Type)
	s.Equal("room-1", ev.RoomID)
	s.True(ev.At.Equal(s.testNow))

	var data map[string]int
	s.Require().NoError(json.Unmarshal(ev.Data, &data))
	s.Equal(8, data["winning_slot"])
}

func (s *RedisNotifierTestSuite) TestSystemMessage() {
	sub := s.subscribe()
	defer sub.Close()

	s.Require().NoError(s.notifier.SystemMessage(s.ctx, "room-2", "Ball landed in slot 3"))

	ev := s.receive(sub)
	s.Equal(TypeSystemMessage, ev.Type)
	s.Equal("Ball landed in slot 3", ev.Message)
	s.Empty(ev.Data)
}

func (s *RedisNotifierTestSuite) TestCacheOutcomeExpires() {
	err := s.notifier.CacheOutcome(s.ctx, "round-1", map[string]int{"slot": 4}, time.Minute)
	s.Require().NoError(err)
	s.Equal(time.Minute, s.mr.TTL("round:round-1:outcome"))

	raw, err := s.notifier.CachedOutcome(s.ctx, "round-1")
	s.Require().NoError(err)
	s.JSONEq(`{"slot":4}`, string(raw))

	s.mr.FastForward(2 * time.Minute)
	_, err = s.notifier.CachedOutcome(s.ctx, "round-1")
	s.ErrorIs(err, ErrNotCached)
}

func (s *RedisNotifierTestSuite) TestNewRedisRequiresClient() {
	_, err := NewRedis(&Config{})
	s.Error(err)
}
