package scheduler

import (
	"context"
	"log"
	"time"

	"goldloan-backend/internal/usecase/master"
	"goldloan-backend/internal/usecase/overdue"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the two background jobs: the midnight overdue sweep and
// the morning market-rate refresh.
type Scheduler struct {
	cron    *cron.Cron
	overdue *overdue.Usecase
	masters *master.Usecase
}

func New(overdueUC *overdue.Usecase, masterUC *master.Usecase) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		overdue: overdueUC,
		masters: masterUC,
	}
}

// Start registers the jobs and begins the cron loop. Job errors are logged,
// never fatal; the next tick retries from scratch.
func (s *Scheduler) Start(sweepSpec, refreshSpec string) error {
	if _, err := s.cron.AddFunc(sweepSpec, s.runSweep); err != nil {
		return err
	}
	if refreshSpec != "" && s.masters != nil {
		if _, err := s.cron.AddFunc(refreshSpec, s.runRateRefresh); err != nil {
			return err
		}
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	n, err := s.overdue.Sweep(ctx, time.Now())
	if err != nil {
		log.Printf("scheduler: overdue sweep: %v", err)
		return
	}
	log.Printf("scheduler: overdue sweep flagged %d loans", n)
}

func (s *Scheduler) runRateRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.masters.RefreshMarketRate(ctx); err != nil {
		log.Printf("scheduler: rate refresh: %v", err)
	}
}
