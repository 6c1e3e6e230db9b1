package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePurger struct {
	calls  int
	maxAge time.Duration
	err    error
}

func (f *fakePurger) Purge(_ context.Context, maxAge time.Duration) (int64, error) {
	f.calls++
	f.maxAge = maxAge
	return 3, f.err
}

func TestRunPurgeNow(t *testing.T) {
	p := &fakePurger{}
	s := NewScheduler(context.Background(), p, 48*time.Hour, zap.NewNop())

	n, err := s.RunPurgeNow()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.Equal(t, 48*time.Hour, p.maxAge)
}

func TestRegisterPurge(t *testing.T) {
	s := NewScheduler(context.Background(), &fakePurger{}, time.Hour, zap.NewNop())

	assert.Error(t, s.RegisterPurge("not a cron spec"))
	require.NoError(t, s.RegisterPurge("0 0 3 * * *"))

	s.Start()
	s.Stop()
}

func TestPurgeTask_SkipsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := &fakePurger{err: errors.New("db locked")}
	s := NewScheduler(ctx, p, time.Hour, zap.NewNop())

	s.purgeTask()
	assert.Equal(t, 1, p.calls)

	cancel()
	s.purgeTask()
	assert.Equal(t, 1, p.calls)
}
