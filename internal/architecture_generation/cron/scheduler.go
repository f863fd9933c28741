package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// NightlySpec runs at 12:00 AM every day.
const NightlySpec = "0 0 0 * * *"

// Purger deletes archive entries created before cutoff.
type Purger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type Scheduler struct {
	purger    Purger
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
}

func NewScheduler(purger Purger, retentionDays int) *Scheduler {
	return &Scheduler{
		purger:    purger,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
	}
}

// Start registers the nightly retention job and starts the cron runner.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(NightlySpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := s.RunOnce(ctx); err != nil {
			log.Printf("[error] operation=archive_purge error=%v", err)
		}
	})
	if err != nil {
		return err
	}

	log.Println("Cron scheduler started (archive purge nightly at 12:00AM)")
	s.cron.Start()
	return nil
}

// Stop stops the runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce purges entries older than the retention window. A zero retention
// keeps everything.
func (s *Scheduler) RunOnce(ctx context.Context) (int64, error) {
	if s.retention <= 0 {
		return 0, nil
	}

	cutoff := s.now().UTC().Add(-s.retention)
	n, err := s.purger.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	log.Printf("[info] operation=archive_purge cutoff=%s deleted=%d", cutoff.Format(time.RFC3339), n)
	return n, nil
}
