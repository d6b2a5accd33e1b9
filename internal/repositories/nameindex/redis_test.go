package nameindex_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/fitd/internal/checksum"
	"github.com/KirkDiggler/fitd/internal/errors"
	"github.com/KirkDiggler/fitd/internal/names"
	mockclock "github.com/KirkDiggler/fitd/internal/pkg/clock/mock"
	"github.com/KirkDiggler/fitd/internal/redis"
	"github.com/KirkDiggler/fitd/internal/repositories/nameindex"
	"github.com/KirkDiggler/fitd/internal/testutils"
)

const testRoot = "/data/fighter/mario/motion"

type RedisNameIndexTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	client    redis.Client
	mr        *miniredis.Miniredis
	repo      nameindex.Repository
	ctx       context.Context
	now       time.Time
}

func TestRedisNameIndexSuite(t *testing.T) {
	suite.Run(t, new(RedisNameIndexTestSuite))
}

func (s *RedisNameIndexTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	repo, err := nameindex.NewRedis(&nameindex.RedisConfig{
		Client: s.client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisNameIndexTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisNameIndexTestSuite) entries(ns ...string) []names.Entry {
	idx := names.NewIndex()
	idx.InsertAll(ns)
	return idx.Entries()
}

func (s *RedisNameIndexTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *nameindex.RedisConfig
		errMsg string
	}{
		{name: "success with valid config", config: &nameindex.RedisConfig{Client: s.client}},
		{name: "error with nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "error with nil client", config: &nameindex.RedisConfig{}, errMsg: "client cannot be nil"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := nameindex.NewRedis(tc.config)
			if tc.errMsg != "" {
				s.Require().Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.NotNil(repo)
		})
	}
}

func (s *RedisNameIndexTestSuite) TestSaveThenGet() {
	s.mockClock.EXPECT().Now().Return(s.now)
	entries := s.entries("Wait1", "Wait1_C2", "AttackS4s", "AttackS4")

	saved, err := s.repo.Save(s.ctx, nameindex.SaveInput{
		Root:        testRoot,
		Fingerprint: "abc123",
		Entries:     entries,
		TTL:         time.Hour,
	})
	s.Require().NoError(err)
	s.Equal(nameindex.Key(testRoot), saved.Key)
	s.Equal(s.now, saved.BuiltAt)
	s.Equal(s.now.Add(time.Hour), saved.ExpiresAt)
	s.Equal(time.Hour, s.mr.TTL(saved.Key))

	got, err := s.repo.Get(s.ctx, nameindex.GetInput{Root: testRoot})
	s.Require().NoError(err)
	s.Equal(testRoot, got.Root)
	s.Equal("abc123", got.Fingerprint)
	s.Equal(entries, got.Entries)
	s.True(s.now.Equal(got.BuiltAt))

	idx := got.Index()
	s.Equal(len(entries), idx.Len())
	s.Equal("AttackS4s", idx.Resolve(checksum.Name("AttackS4s")))
}

func (s *RedisNameIndexTestSuite) TestSaveDefaultTTL() {
	s.mockClock.EXPECT().Now().Return(s.now)

	saved, err := s.repo.Save(s.ctx, nameindex.SaveInput{Root: testRoot})
	s.Require().NoError(err)
	s.Equal(nameindex.DefaultTTL, s.mr.TTL(saved.Key))
}

func (s *RedisNameIndexTestSuite) TestGetExpired() {
	s.mockClock.EXPECT().Now().Return(s.now)

	_, err := s.repo.Save(s.ctx, nameindex.SaveInput{
		Root:    testRoot,
		Entries: s.entries("Wait1"),
		TTL:     time.Minute,
	})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, nameindex.GetInput{Root: testRoot})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisNameIndexTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, nameindex.GetInput{Root: testRoot})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisNameIndexTestSuite) TestGetCorruptRecord() {
	s.Require().NoError(s.mr.Set(nameindex.Key(testRoot), "{not json"))

	_, err := s.repo.Get(s.ctx, nameindex.GetInput{Root: testRoot})
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *RedisNameIndexTestSuite) TestInvalidInput() {
	_, err := s.repo.Get(s.ctx, nameindex.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, nameindex.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, nameindex.SaveInput{Root: testRoot, TTL: -time.Second})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisNameIndexTestSuite) TestStorageFailure() {
	s.mr.Close()

	_, err := s.repo.Get(s.ctx, nameindex.GetInput{Root: testRoot})
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *RedisNameIndexTestSuite) TestKeyIsStableForRelativeRoots() {
	s.Equal(nameindex.Key("motion"), nameindex.Key("./motion/"))
}
