package jobs

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
)

// ResetSweeper deletes password reset tokens that already expired.
type ResetSweeper struct {
	repo domain.Repository
	now  func() time.Time
}

func NewResetSweeper(repo domain.Repository) *ResetSweeper {
	return &ResetSweeper{repo: repo, now: time.Now}
}

func (s *ResetSweeper) Run(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpiredResets(ctx, s.now())
	if err != nil {
		log.Printf("reset sweep failed err=%v", err)
		return 0, err
	}
	log.Printf("reset sweep done deleted=%d", n)
	return n, nil
}

// Scheduler runs the periodic jobs of the API process.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler registers the reset sweep on schedule (standard five-field
// cron syntax) in loc. Overlapping runs are skipped.
func NewScheduler(schedule string, loc *time.Location, sweeper *ResetSweeper) (*Scheduler, error) {
	logger := cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if _, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		_, _ = sweeper.Run(ctx)
	}); err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
