package cronjob

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	cutoff time.Time
	calls  int
	err    error
}

func (f *fakePurger) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	f.calls++
	f.cutoff = cutoff
	return 3, f.err
}

func TestRunOnce_UsesRetentionWindow(t *testing.T) {
	p := &fakePurger{}
	s := NewScheduler(p, 30)
	now := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), p.cutoff)
}

func TestRunOnce_ZeroRetentionKeepsEverything(t *testing.T) {
	p := &fakePurger{}
	s := NewScheduler(p, 0)

	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, p.calls)
}

func TestRunOnce_Error(t *testing.T) {
	s := NewScheduler(&fakePurger{err: errors.New("db down")}, 7)

	_, err := s.RunOnce(context.Background())
	assert.Error(t, err)
}

func TestNightlySpecParses(t *testing.T) {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	sched, err := parser.Parse(NightlySpec)
	require.NoError(t, err)

	next := sched.Next(time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), next)
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(&fakePurger{}, 1)
	require.NoError(t, s.Start())
	s.Stop()
}
