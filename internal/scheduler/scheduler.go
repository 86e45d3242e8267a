package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Reconciler fills realized spend into elapsed predictions
type Reconciler interface {
	ReconcilePredictions(ctx context.Context, asOf time.Time) (int, error)
}

// Scheduler runs prediction reconciliation on a cron schedule
type Scheduler struct {
	cron       *cron.Cron
	reconciler Reconciler
	log        *logrus.Logger
	timeout    time.Duration
}

// NewScheduler registers the reconciliation job. The schedule accepts standard
// five-field cron expressions and descriptors such as @daily.
func NewScheduler(reconciler Reconciler, schedule string, log *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		reconciler: reconciler,
		log:        log,
		timeout:    5 * time.Minute,
	}
	if _, err := s.cron.AddFunc(schedule, s.RunOnce); err != nil {
		return nil, fmt.Errorf("invalid reconcile schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Prediction reconciliation scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Prediction reconciliation scheduler stopped")
}

// RunOnce reconciles predictions whose target period has elapsed
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.reconciler.ReconcilePredictions(ctx, time.Now().UTC())
	if err != nil {
		s.log.Errorf("Prediction reconciliation finished with errors (%d reconciled): %v", n, err)
		return
	}
	s.log.Debugf("Prediction reconciliation finished: %d reconciled", n)
}
